package object

import (
	"image/color"

	"github.com/tomz197/skyraid/internal/assets"
	"github.com/tomz197/skyraid/internal/loop/config"
)

// Weapon is a shot pattern or, for power-ups, the kind of pickup.
type Weapon int

const (
	WeaponNormal Weapon = iota
	WeaponScatter
	WeaponLaser
	WeaponMissile // Power-up only: adds one missile
)

// powerUpKinds lists every kind a power-up can roll.
var powerUpKinds = []Weapon{WeaponNormal, WeaponScatter, WeaponLaser, WeaponMissile}

func (w Weapon) String() string {
	switch w {
	case WeaponNormal:
		return "NORMAL"
	case WeaponScatter:
		return "SCATTER"
	case WeaponLaser:
		return "LASER"
	case WeaponMissile:
		return "MISSILE"
	default:
		return "UNKNOWN"
	}
}

// PowerUpAsset returns the icon drawn for a power-up of this kind.
func (w Weapon) PowerUpAsset() assets.Name {
	switch w {
	case WeaponScatter:
		return assets.PowerUpScatter
	case WeaponLaser:
		return assets.PowerUpLaser
	case WeaponMissile:
		return assets.PowerUpMissile
	default:
		return assets.PowerUpNormal
	}
}

// Color returns the fill color of a projectile of this weapon.
func (w Weapon) Color() color.RGBA {
	switch w {
	case WeaponScatter:
		return config.ColorScatter
	case WeaponLaser:
		return config.ColorLaser
	case WeaponMissile:
		return config.ColorMissile
	default:
		return config.ColorNormalShot
	}
}
