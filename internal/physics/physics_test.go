package physics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollidesOverlapAndSeparation(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"identical", Rect{0, 0, 10, 10}, Rect{0, 0, 10, 10}, true},
		{"far apart", Rect{0, 0, 10, 10}, Rect{100, 100, 10, 10}, false},
		// Raw edges touch but the 1px tolerance pulls them apart.
		{"raw touch", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		// Shrunk edges meet exactly: 9 == 9.
		{"shrunk touch", Rect{0, 0, 10, 10}, Rect{8, 0, 10, 10}, true},
		{"bullet inside enemy", Rect{18, 20, 5, 10}, Rect{0, 0, 40, 40}, true},
		{"bullet grazing enemy", Rect{39.8, 0, 5, 10}, Rect{0, 0, 40, 40}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Collides(tt.a, tt.b))
		})
	}
}

func TestCollidesIsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	for i := 0; i < 5000; i++ {
		a := Rect{rng.Float64() * 200, rng.Float64() * 200, 1 + rng.Float64()*100, 1 + rng.Float64()*100}
		b := Rect{rng.Float64() * 200, rng.Float64() * 200, 1 + rng.Float64()*100, 1 + rng.Float64()*100}
		if Collides(a, b) != Collides(b, a) {
			t.Fatalf("asymmetric result for %+v and %+v", a, b)
		}
	}
}

func TestCollidesOneSidedUsesFirstRect(t *testing.T) {
	big := Rect{0, 0, 100, 100}
	small := Rect{95, 0, 10, 10}

	// Tolerance 10 from the big rect separates them; tolerance 1 from the
	// small rect does not.
	assert.False(t, CollidesOneSided(big, small))
	assert.True(t, CollidesOneSided(small, big))
	assert.True(t, Collides(big, small))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 10))
	assert.Equal(t, 10.0, Clamp(15, 0, 10))
	assert.Equal(t, 7.5, Clamp(7.5, 0, 10))
	assert.Equal(t, 0.0, Clamp(3, 0, -1))
}
