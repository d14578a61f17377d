package object

import (
	"math"

	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/loop/config"
	"github.com/tomz197/skyraid/internal/physics"
)

// Projectile is a shot travelling in a straight line.
type Projectile struct {
	destroyable

	X, Y          float64
	Width, Height float64
	Speed         float64
	Angle         float64 // Radians, 0 = straight up, clockwise positive
	Weapon        Weapon
	Level         int
	Damage        int
	Hostile       bool // Fired by an enemy
}

// NewProjectile creates a projectile at (x, y) heading angle degrees from
// straight up. Size and damage depend on the weapon and level.
func NewProjectile(x, y, angle float64, weapon Weapon, level int) *Projectile {
	p := &Projectile{
		X:      x,
		Y:      y,
		Speed:  config.ProjectileSpeed,
		Angle:  angle * math.Pi / 180,
		Weapon: weapon,
		Level:  level,
	}

	switch weapon {
	case WeaponScatter:
		p.Width, p.Height, p.Damage = 4, 8, 1
	case WeaponLaser:
		p.Width, p.Height, p.Damage = 5*float64(level), 15, 2
	default:
		p.Width, p.Height, p.Damage = 5, 10, 1
	}
	return p
}

// newHostileProjectile creates an enemy shot.
func newHostileProjectile(x, y, angle float64, weapon Weapon) *Projectile {
	p := NewProjectile(x, y, angle, weapon, 1)
	p.Hostile = true
	return p
}

// Update moves the projectile along its heading. It is removed once it
// leaves the field on any side.
func (p *Projectile) Update(ctx UpdateContext) (bool, error) {
	p.X += math.Sin(p.Angle) * p.Speed
	p.Y -= math.Cos(p.Angle) * p.Speed

	out := p.Y+p.Height < 0 ||
		p.Y > ctx.Field.Height ||
		p.X+p.Width < 0 ||
		p.X > ctx.Field.Width
	return out, nil
}

// Draw renders the projectile as a rectangle in its weapon's color.
func (p *Projectile) Draw(s draw.Surface) {
	s.FillRect(p.X, p.Y, p.Width, p.Height, p.Weapon.Color())
}

// Pierces reports whether the projectile keeps going after a hit.
func (p *Projectile) Pierces() bool {
	return p.Weapon == WeaponLaser
}

// Bounds returns the projectile hitbox.
func (p *Projectile) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}
