package object

import (
	"math/rand"

	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/loop/config"
	"github.com/tomz197/skyraid/internal/physics"
)

// PowerUp is a pickup dropped by destroyed enemies.
type PowerUp struct {
	destroyable

	X, Y          float64
	Width, Height float64
	Kind          Weapon
	Speed         float64
}

// NewPowerUp creates a power-up of the given kind at (x, y).
func NewPowerUp(x, y float64, kind Weapon) *PowerUp {
	return &PowerUp{
		X:      x,
		Y:      y,
		Width:  config.PowerUpSize,
		Height: config.PowerUpSize,
		Kind:   kind,
		Speed:  config.PowerUpSpeed,
	}
}

// RollPowerUp decides whether a kill drops a power-up. With probability
// config.PowerUpDropChance it returns one of a uniformly chosen kind,
// otherwise nil.
func RollPowerUp(rng *rand.Rand, x, y float64) *PowerUp {
	if rng.Float64() >= config.PowerUpDropChance {
		return nil
	}
	kind := powerUpKinds[rng.Intn(len(powerUpKinds))]
	return NewPowerUp(x, y, kind)
}

// Update makes the power-up fall. It is removed below the field.
func (p *PowerUp) Update(ctx UpdateContext) (bool, error) {
	p.Y += p.Speed
	return p.Y > ctx.Field.Height, nil
}

// Draw renders the power-up icon.
func (p *PowerUp) Draw(s draw.Surface) {
	s.DrawImage(p.Kind.PowerUpAsset(), p.X, p.Y, p.Width, p.Height, 1)
}

// Bounds returns the power-up hitbox.
func (p *PowerUp) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}
