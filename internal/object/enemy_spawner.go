package object

import (
	"math/rand"
	"time"

	"github.com/tomz197/skyraid/internal/loop/config"
)

// SpawnTimers holds the last spawn time of each timed enemy kind.
// A zero time means the kind has not spawned yet, so it spawns at once.
type SpawnTimers struct {
	LastNormalSpawn time.Time
	LastEliteSpawn  time.Time
}

// EnemySpawner releases enemies on fixed intervals.
type EnemySpawner struct {
	NormalInterval time.Duration
	EliteInterval  time.Duration
	BossInterval   time.Duration
}

// NewEnemySpawner creates a spawner with the configured intervals.
func NewEnemySpawner() *EnemySpawner {
	return &EnemySpawner{
		NormalInterval: config.SpawnNormalEnemy,
		EliteInterval:  config.SpawnEliteEnemy,
		BossInterval:   config.SpawnBoss,
	}
}

// Spawn returns the enemies due at now and records their spawn times in
// timers. At most one normal and one elite spawn per call.
func (s *EnemySpawner) Spawn(now time.Time, timers *SpawnTimers, field Field, rng *rand.Rand) []*Enemy {
	var spawned []*Enemy
	if now.Sub(timers.LastNormalSpawn) > s.NormalInterval {
		spawned = append(spawned, NewEnemy(EnemyNormal, field, rng, now))
		timers.LastNormalSpawn = now
	}
	if now.Sub(timers.LastEliteSpawn) > s.EliteInterval {
		spawned = append(spawned, NewEnemy(EnemyElite, field, rng, now))
		timers.LastEliteSpawn = now
	}
	return spawned
}

// BossDue reports whether a boss should enter, given the current time, the
// game start and whether a boss already came. Bosses are not scheduled, so
// this is always false; BossInterval is kept for when they are.
func (s *EnemySpawner) BossDue(_, _ time.Time, _ bool) bool {
	return false
}
