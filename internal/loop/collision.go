package loop

import (
	"math/rand"
	"time"

	"github.com/tomz197/skyraid/internal/loop/config"
	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/physics"
)

// gridCellSize must cover the largest center distance at which two hitboxes
// can overlap: a boss (100) against a level 3 laser (15 wide, 15 tall).
const gridCellSize = 128

// resolver applies the per-frame collision rules. It owns only scratch
// memory; the pools are passed in on every call.
type resolver struct {
	grid *physics.SpatialGrid
}

func newResolver(field object.Field) *resolver {
	return &resolver{grid: physics.NewSpatialGrid(field.Width, field.Height, gridCellSize)}
}

// hitResult summarizes what a resolve pass changed.
type hitResult struct {
	Destroyed int  // Enemies destroyed by projectiles
	Collected int  // Power-ups picked up
	LifeLost  bool // The player lost a life
}

// resolve runs, in order: shots against enemies, player against power-ups,
// player against enemies. At most one life is lost per call. Destroyed
// entities are removed from w.
func (r *resolver) resolve(w *World, st *State, sched *Schedule, now time.Time, rng *rand.Rand) hitResult {
	var res hitResult
	player := w.Player

	res.Destroyed = r.shotsVsEnemies(w, st, rng)
	res.Collected = playerVsPowerUps(w, st)

	if !player.Invincible {
		if e := firstHit(player.Bounds(), w.Enemies); e != nil {
			e.MarkDestroyed()
			loseLife(player, sched, now)
			res.LifeLost = true
		}
	}

	w.Projectiles = compact(w.Projectiles)
	w.Enemies = compact(w.Enemies)
	w.PowerUps = compact(w.PowerUps)
	return res
}

// shotsVsEnemies scans every projectile against enemies, both in reverse
// pool order. Enemy shots share the pool and hit enemies too; kills score
// for the player either way. Lasers keep going after a hit; other shots
// stop at the first.
func (r *resolver) shotsVsEnemies(w *World, st *State, rng *rand.Rand) int {
	destroyed := 0
	if len(w.Enemies) == 0 {
		return 0
	}

	r.grid.Clear()
	defer r.grid.Clear()
	for j, e := range w.Enemies {
		r.grid.Insert(e.Bounds(), j)
	}

	for i := len(w.Projectiles) - 1; i >= 0; i-- {
		p := w.Projectiles[i]
		if p.IsDestroyed() {
			continue
		}
		pb := p.Bounds()

		// Candidates come back in descending index order.
		for _, j := range r.grid.Candidates(pb) {
			e := w.Enemies[j]
			if e.IsDestroyed() || !physics.Collides(pb, e.Bounds()) {
				continue
			}

			if e.TakeDamage(p.Damage) {
				e.MarkDestroyed()
				player := w.Player
				player.Score += e.Reward()
				st.Stats.EnemiesDestroyed++
				destroyed++
				if drop := object.RollPowerUp(rng, e.X, e.Y); drop != nil {
					w.PowerUps = append(w.PowerUps, drop)
				}
			}

			if !p.Pierces() {
				p.MarkDestroyed()
				break
			}
		}
	}
	return destroyed
}

// playerVsPowerUps applies every power-up the player touches.
func playerVsPowerUps(w *World, st *State) int {
	collected := 0
	pb := w.Player.Bounds()
	for i := len(w.PowerUps) - 1; i >= 0; i-- {
		pu := w.PowerUps[i]
		if pu.IsDestroyed() || !physics.Collides(pb, pu.Bounds()) {
			continue
		}
		w.Player.ApplyPowerUp(pu.Kind)
		st.Stats.PowerUpsCollected++
		pu.MarkDestroyed()
		collected++
	}
	return collected
}

// hittable is an entity the player can crash into.
type hittable interface {
	object.Collider
	object.Destructible
}

// firstHit returns the last entity in pool, scanning backwards, that
// overlaps b.
func firstHit[T hittable](b physics.Rect, pool []T) T {
	var zero T
	for i := len(pool) - 1; i >= 0; i-- {
		obj := pool[i]
		if obj.IsDestroyed() {
			continue
		}
		if physics.Collides(b, obj.Bounds()) {
			return obj
		}
	}
	return zero
}

// loseLife takes one life and makes the player invincible for a while.
func loseLife(p *object.Player, sched *Schedule, now time.Time) {
	p.Lives--
	p.Invincible = true
	sched.After(now, config.InvincibleTime, func() {
		p.Invincible = false
	})
}
