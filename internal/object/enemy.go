package object

import (
	"math"
	"math/rand"
	"time"

	"github.com/tomz197/skyraid/internal/assets"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/loop/config"
	"github.com/tomz197/skyraid/internal/physics"
)

// EnemyKind selects an enemy variant.
type EnemyKind int

const (
	EnemyNormal EnemyKind = iota
	EnemyElite
	EnemyBoss
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyNormal:
		return "normal"
	case EnemyElite:
		return "elite"
	case EnemyBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Wander is the elite's planned course change. Movement does not use it yet.
type Wander struct {
	Angle    float64   // Radians in [0, 2π)
	ChangeAt time.Time // When the course would next change
}

// AttackMode is one step of the boss attack cycle.
type AttackMode int

const (
	AttackNormal AttackMode = iota
	AttackScatter
	AttackLaser
	attackModeCount
)

// Attack is the boss attack cycle state.
type Attack struct {
	Mode       AttackMode
	LastSwitch time.Time
}

// bossScatterAngles are the headings of a boss scatter volley, in degrees.
var bossScatterAngles = [...]float64{160, 180, 200}

// Enemy is a hostile ship. Variant-specific data is only set for the
// variant that uses it.
type Enemy struct {
	destroyable

	Kind          EnemyKind
	X, Y          float64
	Width, Height float64
	Speed         float64
	Health        int
	MaxHealth     int

	Wander *Wander // Elite only
	Attack *Attack // Boss only

	LastShot      time.Time     // Elite only
	ShootInterval time.Duration // Elite only
}

// NewEnemy creates an enemy of the given kind above the top of the field at
// a random horizontal position that keeps clear of the side edges.
func NewEnemy(kind EnemyKind, field Field, rng *rand.Rand, now time.Time) *Enemy {
	e := &Enemy{Kind: kind}
	switch kind {
	case EnemyElite:
		e.Width, e.Speed, e.Health = config.EliteEnemySize, config.EliteEnemySpeed, config.EliteEnemyHealth
	case EnemyBoss:
		e.Width, e.Speed, e.Health = config.BossEnemySize, config.BossEnemySpeed, config.BossEnemyHealth
	default:
		e.Width, e.Speed, e.Health = config.NormalEnemySize, config.NormalEnemySpeed, config.NormalEnemyHealth
	}
	e.Height = e.Width
	e.MaxHealth = e.Health

	e.Y = -2 * e.Height
	e.X = config.SpawnMargin + rng.Float64()*(field.Width-e.Width-2*config.SpawnMargin)

	switch kind {
	case EnemyElite:
		jitter := time.Duration(rng.Float64() * float64(config.EliteWanderJitter))
		e.Wander = &Wander{
			Angle:    rng.Float64() * 2 * math.Pi,
			ChangeAt: now.Add(config.EliteWanderMinDelay + jitter),
		}
		e.ShootInterval = config.EliteShootInterval
	case EnemyBoss:
		e.Attack = &Attack{Mode: AttackNormal, LastSwitch: now}
	}
	return e
}

// NewBoss creates a boss enemy. Bosses are never spawned on a timer.
func NewBoss(field Field, rng *rand.Rand, now time.Time) *Enemy {
	return NewEnemy(EnemyBoss, field, rng, now)
}

// Update moves the enemy down and runs its attack. Enemies that fall past
// the bottom of the field are removed without reward.
func (e *Enemy) Update(ctx UpdateContext) (bool, error) {
	e.Y += e.Speed

	switch e.Kind {
	case EnemyElite:
		if ctx.Now.Sub(e.LastShot) > e.ShootInterval {
			e.fire(ctx.Spawner, WeaponNormal, 180)
			e.LastShot = ctx.Now
		}
	case EnemyBoss:
		if ctx.Now.Sub(e.Attack.LastSwitch) > config.BossModeInterval {
			e.Attack.Mode = (e.Attack.Mode + 1) % attackModeCount
			e.Attack.LastSwitch = ctx.Now
		}
		e.bossVolley(ctx.Spawner)
	}

	return e.Y > ctx.Field.Height, nil
}

// bossVolley fires the current attack mode. Bosses fire every frame.
func (e *Enemy) bossVolley(sp Spawner) {
	switch e.Attack.Mode {
	case AttackNormal:
		e.fire(sp, WeaponNormal, 180)
	case AttackScatter:
		for _, angle := range bossScatterAngles {
			e.fire(sp, WeaponScatter, angle)
		}
	case AttackLaser:
		e.fire(sp, WeaponLaser, 180)
	}
}

// fire spawns a hostile shot from the enemy's bottom center.
func (e *Enemy) fire(sp Spawner, weapon Weapon, angle float64) {
	if sp == nil {
		return
	}
	sp.SpawnProjectile(newHostileProjectile(e.X+e.Width/2, e.Y+e.Height, angle, weapon))
}

// TakeDamage subtracts n health and reports whether the enemy is destroyed.
func (e *Enemy) TakeDamage(n int) bool {
	e.Health -= n
	return e.Health <= 0
}

// Reward returns the score for destroying the enemy.
func (e *Enemy) Reward() int {
	switch e.Kind {
	case EnemyElite:
		return config.ScoreEliteEnemy
	case EnemyBoss:
		return config.ScoreBossEnemy
	default:
		return config.ScoreNormalEnemy
	}
}

// Bounds returns the enemy hitbox.
func (e *Enemy) Bounds() physics.Rect {
	return physics.Rect{X: e.X, Y: e.Y, W: e.Width, H: e.Height}
}

// Draw renders the sprite with an outline and a health bar above it.
func (e *Enemy) Draw(s draw.Surface) {
	name := assets.Enemy
	if e.Kind == EnemyElite {
		name = assets.EnemyElite
	}
	s.DrawImage(name, e.X, e.Y, e.Width, e.Height, 1)

	const lw = config.EnemyOutlineWidth
	s.FillRect(e.X, e.Y, e.Width, lw, config.ColorOutline)
	s.FillRect(e.X, e.Y+e.Height-lw, e.Width, lw, config.ColorOutline)
	s.FillRect(e.X, e.Y, lw, e.Height, config.ColorOutline)
	s.FillRect(e.X+e.Width-lw, e.Y, lw, e.Height, config.ColorOutline)

	barY := e.Y - config.HealthBarOffset
	s.FillRect(e.X, barY, e.Width, config.HealthBarHeight, config.ColorHealthBack)
	if e.Health > 0 {
		frac := float64(e.Health) / float64(e.MaxHealth)
		s.FillRect(e.X, barY, e.Width*frac, config.HealthBarHeight, config.ColorHealth)
	}
}
