package object

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/tomz197/skyraid/internal/assets"
	"github.com/tomz197/skyraid/internal/draw"
)

var testField = Field{Width: 800, Height: 600}

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func testContext(now time.Time, sp Spawner) UpdateContext {
	return UpdateContext{Now: now, Field: testField, Spawner: sp, Rand: testRNG()}
}

// projectileSink collects projectiles spawned during updates.
type projectileSink struct {
	shots []*Projectile
}

func (s *projectileSink) SpawnProjectile(p *Projectile) {
	s.shots = append(s.shots, p)
}

// surfaceSpy records which primitives were called.
type surfaceSpy struct {
	rects  int
	images []assets.Name
	alphas []float64
}

func (s *surfaceSpy) Clear() {}

func (s *surfaceSpy) FillRect(x, y, w, h float64, c color.Color) {
	s.rects++
}

func (s *surfaceSpy) DrawImage(name assets.Name, x, y, w, h, alpha float64) {
	s.images = append(s.images, name)
	s.alphas = append(s.alphas, alpha)
}

func (s *surfaceSpy) DrawText(text string, x, y float64, align draw.Align, c color.Color) {}
