// Package object holds the entities of the game field and their
// per-frame behavior.
package object

import (
	"math/rand"
	"time"

	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/physics"
)

// Spawner accepts entities created during another entity's update.
// Spawned entities join their pool after the current update pass.
type Spawner interface {
	SpawnProjectile(p *Projectile)
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// Field is the size of the playing field in logical units.
type Field struct {
	Width  float64
	Height float64
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Now     time.Time
	Field   Field
	Spawner Spawner
	Rand    *rand.Rand
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update advances the object by one frame. Returns true if the object
	// should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object onto s.
	Draw(s draw.Surface)
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal on the next prune.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Collider is implemented by objects with a hitbox.
type Collider interface {
	Bounds() physics.Rect
}

// destroyable is embedded by pooled entities.
type destroyable struct {
	destroyed bool
}

func (d *destroyable) MarkDestroyed() {
	d.destroyed = true
}

func (d *destroyable) IsDestroyed() bool {
	return d.destroyed
}
