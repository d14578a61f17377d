package object

import (
	"errors"
	"time"

	"github.com/tomz197/skyraid/internal/assets"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/loop/config"
	"github.com/tomz197/skyraid/internal/physics"
)

// ErrNoMissiles is returned when firing a missile with an empty inventory.
var ErrNoMissiles = errors.New("no missiles left")

// scatterAngles are the headings of one scatter volley, in degrees.
var scatterAngles = [...]float64{-30, 0, 30}

// Player is the ship controlled by the user.
type Player struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64

	Score    int
	Lives    int
	Missiles int

	Weapon      Weapon
	WeaponLevel int // 1..config.MaxWeaponLevel

	LastShot      time.Time
	ShootInterval time.Duration

	Invincible bool
	Visible    bool
}

// NewPlayer creates a player centered horizontally near the bottom of the field.
func NewPlayer(field Field) *Player {
	return &Player{
		X:             field.Width/2 - config.PlayerSize/2,
		Y:             field.Height - config.PlayerBottomOffset,
		Width:         config.PlayerSize,
		Height:        config.PlayerSize,
		Speed:         config.PlayerSpeed,
		Lives:         config.InitialLives,
		Missiles:      config.InitialMissiles,
		Weapon:        WeaponNormal,
		WeaponLevel:   1,
		ShootInterval: config.PlayerShootInterval,
		Visible:       true,
	}
}

// Move applies one frame of keyboard movement and keeps the ship inside
// the field.
func (p *Player) Move(in Input, field Field) {
	var dx, dy float64
	if in.Left {
		dx -= p.Speed
	}
	if in.Right {
		dx += p.Speed
	}
	if in.Up {
		dy -= p.Speed
	}
	if in.Down {
		dy += p.Speed
	}
	p.Nudge(dx, dy, field)
}

// Nudge moves the ship by a pointer or touch delta, clamped to the field.
func (p *Player) Nudge(dx, dy float64, field Field) {
	p.X = physics.Clamp(p.X+dx, 0, field.Width-p.Width)
	p.Y = physics.Clamp(p.Y+dy, 0, field.Height-p.Height)
}

// Shoot fires the current weapon if the shot interval has passed since the
// last shot. It returns the new projectiles, or nil while reloading.
func (p *Player) Shoot(now time.Time) []*Projectile {
	if now.Sub(p.LastShot) < p.ShootInterval {
		return nil
	}
	p.LastShot = now

	centerX := p.X + p.Width/2
	switch p.Weapon {
	case WeaponScatter:
		shots := make([]*Projectile, 0, p.WeaponLevel*len(scatterAngles))
		for i := 0; i < p.WeaponLevel; i++ {
			for _, angle := range scatterAngles {
				shots = append(shots, NewProjectile(centerX-2.5, p.Y, angle, WeaponScatter, p.WeaponLevel))
			}
		}
		return shots
	case WeaponLaser:
		x := centerX - 2.5*float64(p.WeaponLevel)
		return []*Projectile{NewProjectile(x, p.Y, 0, WeaponLaser, p.WeaponLevel)}
	default:
		return []*Projectile{NewProjectile(centerX-2.5, p.Y, 0, WeaponNormal, p.WeaponLevel)}
	}
}

// FireMissile launches a missile from the ship's nose into pool. With an
// empty inventory it returns ErrNoMissiles and changes nothing.
func (p *Player) FireMissile(pool *[]*Missile) error {
	if p.Missiles <= 0 {
		return ErrNoMissiles
	}
	p.Missiles--
	*pool = append(*pool, NewMissile(p.X+p.Width/2-config.MissileWidth/2, p.Y))
	return nil
}

// ApplyPowerUp applies a collected power-up. A missile pickup adds one
// missile; the current weapon levels up to the cap; any other weapon
// replaces the current one at level 1.
func (p *Player) ApplyPowerUp(kind Weapon) {
	switch {
	case kind == WeaponMissile:
		p.Missiles++
	case kind == p.Weapon:
		p.WeaponLevel = min(p.WeaponLevel+1, config.MaxWeaponLevel)
	default:
		p.Weapon = kind
		p.WeaponLevel = 1
	}
}

// Bounds returns the player hitbox.
func (p *Player) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Draw renders the ship, faded while invincible.
func (p *Player) Draw(s draw.Surface) {
	if !p.Visible {
		return
	}
	alpha := 1.0
	if p.Invincible {
		alpha = config.PlayerInvincibleFade
	}
	s.DrawImage(assets.Player, p.X, p.Y, p.Width, p.Height, alpha)
}
