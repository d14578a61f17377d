package object

import (
	"math/rand"

	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/loop/config"
)

// Star is a single background point.
type Star struct {
	X, Y  float64
	Speed float64
}

// Starfield is the scrolling background.
type Starfield struct {
	Stars []Star
}

// NewStarfield scatters count stars over the field.
func NewStarfield(field Field, rng *rand.Rand, count int) *Starfield {
	sf := &Starfield{Stars: make([]Star, count)}
	for i := range sf.Stars {
		sf.Stars[i] = Star{
			X:     rng.Float64() * field.Width,
			Y:     rng.Float64() * field.Height,
			Speed: config.StarSpeed * (0.5 + rng.Float64()),
		}
	}
	return sf
}

// Update scrolls the stars down. Stars leaving the bottom re-enter at the
// top at a new column.
func (sf *Starfield) Update(ctx UpdateContext) {
	for i := range sf.Stars {
		st := &sf.Stars[i]
		st.Y += st.Speed
		if st.Y > ctx.Field.Height {
			st.Y -= ctx.Field.Height
			st.X = ctx.Rand.Float64() * ctx.Field.Width
		}
	}
}

// Draw fills the background and plots every star.
func (sf *Starfield) Draw(s draw.Surface, field Field) {
	s.FillRect(0, 0, field.Width, field.Height, config.ColorBackground)
	for _, st := range sf.Stars {
		s.FillRect(st.X, st.Y, 1, 1, config.ColorStar)
	}
}
