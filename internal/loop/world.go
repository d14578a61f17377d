package loop

import (
	"fmt"
	"math/rand"

	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/loop/config"
	"github.com/tomz197/skyraid/internal/object"
)

// World holds the entity pools of one game.
type World struct {
	Field       object.Field
	Player      *object.Player
	Stars       *object.Starfield
	Projectiles []*object.Projectile
	Enemies     []*object.Enemy
	PowerUps    []*object.PowerUp
	Missiles    []*object.Missile

	toSpawn []*object.Projectile // Shots fired during the current update pass
}

// NewWorld creates a world with a fresh player and empty pools.
func NewWorld(field object.Field, rng *rand.Rand) *World {
	return &World{
		Field:  field,
		Player: object.NewPlayer(field),
		Stars:  object.NewStarfield(field, rng, config.StarCount),
	}
}

// SpawnProjectile queues a projectile to be added after the current update
// pass. Implements object.Spawner.
func (w *World) SpawnProjectile(p *object.Projectile) {
	w.toSpawn = append(w.toSpawn, p)
}

// FlushSpawned adds all queued projectiles to the pool and clears the queue.
func (w *World) FlushSpawned() {
	w.Projectiles = append(w.Projectiles, w.toSpawn...)
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
}

// Draw draws the background, the player and every pooled entity without
// advancing anything.
func (w *World) Draw(s draw.Surface) {
	w.Stars.Draw(s, w.Field)
	w.Player.Draw(s)
	for _, p := range w.Projectiles {
		p.Draw(s)
	}
	for _, e := range w.Enemies {
		e.Draw(s)
	}
	for _, p := range w.PowerUps {
		p.Draw(s)
	}
	for _, m := range w.Missiles {
		m.Draw(s)
	}
}

// faultFunc is told about entities dropped because their update failed.
type faultFunc func(obj object.Object, err error)

// updatePool updates and draws every entity in pool and returns the
// entities that stay. Entities are drawn before pruning so one leaving the
// field is shown on its last frame. An entity whose update fails is dropped
// and reported to onFault.
func updatePool[T object.Object](pool []T, ctx object.UpdateContext, s draw.Surface, onFault faultFunc) []T {
	kept := pool[:0]
	for _, obj := range pool {
		remove, err := safeUpdate(obj, ctx)
		if err != nil {
			onFault(obj, err)
			continue
		}
		obj.Draw(s)
		if !remove {
			kept = append(kept, obj)
		}
	}
	clear(pool[len(kept):])
	return kept
}

// safeUpdate runs obj.Update, turning a panic into an error so one faulty
// entity cannot take down the frame.
func safeUpdate(obj object.Object, ctx object.UpdateContext) (remove bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("update %T: panic: %v", obj, r)
		}
	}()
	return obj.Update(ctx)
}

// compact removes destroyed entities from pool, keeping order.
func compact[T object.Destructible](pool []T) []T {
	kept := pool[:0]
	for _, obj := range pool {
		if !obj.IsDestroyed() {
			kept = append(kept, obj)
		}
	}
	clear(pool[len(kept):])
	return kept
}
