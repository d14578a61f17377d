package object

import (
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/loop/config"
	"github.com/tomz197/skyraid/internal/physics"
)

// Missile is the player's secondary weapon. It flies straight up and does
// not home.
type Missile struct {
	destroyable

	X, Y          float64
	Width, Height float64
	Speed         float64
	Active        bool // True while in flight
}

// NewMissile creates an active missile at (x, y).
func NewMissile(x, y float64) *Missile {
	return &Missile{
		X:      x,
		Y:      y,
		Width:  config.MissileWidth,
		Height: config.MissileHeight,
		Speed:  config.MissileSpeed,
		Active: true,
	}
}

// Update moves the missile up. Once it leaves the top of the field it is
// deactivated and removed.
func (m *Missile) Update(_ UpdateContext) (bool, error) {
	m.Y -= m.Speed
	if m.Y+m.Height < 0 {
		m.Active = false
		return true, nil
	}
	return false, nil
}

// Draw renders the missile as a red rectangle.
func (m *Missile) Draw(s draw.Surface) {
	s.FillRect(m.X, m.Y, m.Width, m.Height, config.ColorMissile)
}

// Bounds returns the missile hitbox.
func (m *Missile) Bounds() physics.Rect {
	return physics.Rect{X: m.X, Y: m.Y, W: m.Width, H: m.Height}
}
