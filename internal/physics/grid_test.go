package physics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridCandidatesDescending(t *testing.T) {
	g := NewSpatialGrid(400, 400, 128)
	g.Insert(Rect{10, 10, 40, 40}, 0)
	g.Insert(Rect{60, 20, 40, 40}, 3)
	g.Insert(Rect{20, 80, 40, 40}, 1)
	g.Insert(Rect{390, 390, 40, 40}, 2)

	got := g.Candidates(Rect{30, 30, 5, 10})
	assert.Equal(t, []int{3, 1, 0}, got)
}

func TestGridClearEmptiesCells(t *testing.T) {
	g := NewSpatialGrid(200, 200, 64)
	g.Insert(Rect{10, 10, 5, 5}, 7)
	g.Clear()
	assert.Empty(t, g.Candidates(Rect{10, 10, 5, 5}))
}

func TestGridFindsEveryOverlap(t *testing.T) {
	const field = 600.0
	rng := rand.New(rand.NewSource(7))
	g := NewSpatialGrid(field, field, 128)

	boxes := make([]Rect, 200)
	for i := range boxes {
		// Include positions above and beside the field like spawning enemies.
		boxes[i] = Rect{rng.Float64()*700 - 50, rng.Float64()*800 - 200, 40 + rng.Float64()*60, 40 + rng.Float64()*60}
		g.Insert(boxes[i], i)
	}

	for i := 0; i < 500; i++ {
		probe := Rect{rng.Float64()*700 - 50, rng.Float64()*700 - 50, 15, 15}
		want := map[int]bool{}
		for j, b := range boxes {
			if Collides(probe, b) {
				want[j] = true
			}
		}
		got := map[int]bool{}
		for _, j := range g.Candidates(probe) {
			if Collides(probe, boxes[j]) {
				got[j] = true
			}
		}
		require.Equal(t, want, got)
	}
}
