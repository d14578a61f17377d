package loop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/skyraid/internal/loop/config"
	"github.com/tomz197/skyraid/internal/object"
)

type resolveFixture struct {
	world *World
	state *State
	sched *Schedule
	r     *resolver
}

func newResolveFixture() *resolveFixture {
	return &resolveFixture{
		world: NewWorld(testField, testRNG()),
		state: NewState(testStart),
		sched: &Schedule{},
		r:     newResolver(testField),
	}
}

func (f *resolveFixture) resolve() hitResult {
	return f.r.resolve(f.world, f.state, f.sched, testStart, testRNG())
}

func enemyAt(kind object.EnemyKind, x, y float64) *object.Enemy {
	e := object.NewEnemy(kind, testField, testRNG(), testStart)
	e.X, e.Y = x, y
	return e
}

func TestTwoHitsDestroyNormalEnemy(t *testing.T) {
	f := newResolveFixture()
	e := enemyAt(object.EnemyNormal, 100, 100)
	f.world.Enemies = []*object.Enemy{e}
	f.world.Projectiles = []*object.Projectile{
		object.NewProjectile(118, 120, 0, object.WeaponNormal, 1),
	}

	res := f.resolve()
	assert.Zero(t, res.Destroyed)
	assert.Equal(t, config.NormalEnemyHealth-1, e.Health)
	assert.Empty(t, f.world.Projectiles, "a normal shot is spent on hit")
	require.Len(t, f.world.Enemies, 1)

	f.world.Projectiles = []*object.Projectile{
		object.NewProjectile(118, 120, 0, object.WeaponNormal, 1),
	}
	res = f.resolve()
	assert.Equal(t, 1, res.Destroyed)
	assert.Empty(t, f.world.Enemies)
	assert.Equal(t, config.ScoreNormalEnemy, f.world.Player.Score)
	assert.Equal(t, 1, f.state.Stats.EnemiesDestroyed)
	assert.LessOrEqual(t, len(f.world.PowerUps), 1)
}

func TestEliteRewardsMore(t *testing.T) {
	f := newResolveFixture()
	e := enemyAt(object.EnemyElite, 100, 100)
	e.Health = 1
	f.world.Enemies = []*object.Enemy{e}
	f.world.Projectiles = []*object.Projectile{
		object.NewProjectile(128, 130, 0, object.WeaponNormal, 1),
	}

	f.resolve()
	assert.Equal(t, config.ScoreEliteEnemy, f.world.Player.Score)
}

func TestNormalShotStopsAtFirstEnemy(t *testing.T) {
	f := newResolveFixture()
	front := enemyAt(object.EnemyNormal, 100, 100)
	back := enemyAt(object.EnemyNormal, 100, 100)
	f.world.Enemies = []*object.Enemy{front, back}
	f.world.Projectiles = []*object.Projectile{
		object.NewProjectile(118, 120, 0, object.WeaponNormal, 1),
	}

	f.resolve()
	assert.Equal(t, config.NormalEnemyHealth, front.Health)
	assert.Equal(t, config.NormalEnemyHealth-1, back.Health, "later enemies are checked first")
	assert.Empty(t, f.world.Projectiles)
}

func TestLaserPiercesEnemies(t *testing.T) {
	f := newResolveFixture()
	f.world.Enemies = []*object.Enemy{
		enemyAt(object.EnemyNormal, 100, 100),
		enemyAt(object.EnemyNormal, 100, 100),
	}
	laser := object.NewProjectile(118, 110, 0, object.WeaponLaser, 1)
	f.world.Projectiles = []*object.Projectile{laser}

	res := f.resolve()
	assert.Equal(t, 2, res.Destroyed)
	assert.Empty(t, f.world.Enemies)
	assert.Equal(t, 2*config.ScoreNormalEnemy, f.world.Player.Score)
	require.Len(t, f.world.Projectiles, 1)
	assert.Same(t, laser, f.world.Projectiles[0])
}

func TestEnemyShotsHitEnemies(t *testing.T) {
	f := newResolveFixture()
	e := enemyAt(object.EnemyNormal, 100, 100)
	e.Health = 1
	f.world.Enemies = []*object.Enemy{e}
	shot := object.NewProjectile(118, 120, 180, object.WeaponNormal, 1)
	shot.Hostile = true
	f.world.Projectiles = []*object.Projectile{shot}

	res := f.resolve()
	assert.Equal(t, 1, res.Destroyed)
	assert.Empty(t, f.world.Enemies)
	assert.Empty(t, f.world.Projectiles)
	assert.Equal(t, config.ScoreNormalEnemy, f.world.Player.Score)
}

func TestPlayerCollectsPowerUps(t *testing.T) {
	f := newResolveFixture()
	p := f.world.Player
	f.world.PowerUps = []*object.PowerUp{
		object.NewPowerUp(p.X+10, p.Y+10, object.WeaponScatter),
		object.NewPowerUp(p.X+20, p.Y+20, object.WeaponMissile),
		object.NewPowerUp(10, 10, object.WeaponLaser),
	}

	res := f.resolve()
	assert.Equal(t, 2, res.Collected)
	assert.Equal(t, object.WeaponScatter, p.Weapon)
	assert.Equal(t, config.InitialMissiles+1, p.Missiles)
	assert.Equal(t, 2, f.state.Stats.PowerUpsCollected)
	require.Len(t, f.world.PowerUps, 1)
	assert.Equal(t, object.WeaponLaser, f.world.PowerUps[0].Kind)
}

func TestAtMostOneLifeLostPerFrame(t *testing.T) {
	f := newResolveFixture()
	p := f.world.Player
	first := enemyAt(object.EnemyNormal, p.X, p.Y)
	second := enemyAt(object.EnemyNormal, p.X+5, p.Y+5)
	f.world.Enemies = []*object.Enemy{first, second}

	res := f.resolve()
	assert.True(t, res.LifeLost)
	assert.Equal(t, config.InitialLives-1, p.Lives)
	assert.True(t, p.Invincible)
	require.Len(t, f.world.Enemies, 1, "only the crashed enemy dies")
	assert.Same(t, first, f.world.Enemies[0], "later enemies are checked first")
	assert.Equal(t, 1, f.sched.Len())

	f.sched.RunDue(testStart.Add(config.InvincibleTime))
	assert.False(t, p.Invincible)
}

func TestEnemyShotsNeverCostLives(t *testing.T) {
	f := newResolveFixture()
	p := f.world.Player
	shot := object.NewProjectile(p.X+20, p.Y+20, 180, object.WeaponNormal, 1)
	shot.Hostile = true
	f.world.Projectiles = []*object.Projectile{shot}

	res := f.resolve()
	assert.False(t, res.LifeLost)
	assert.Equal(t, config.InitialLives, p.Lives)
	assert.False(t, p.Invincible)
	assert.Len(t, f.world.Projectiles, 1)
}

func TestInvinciblePlayerIgnoresHits(t *testing.T) {
	f := newResolveFixture()
	p := f.world.Player
	p.Invincible = true
	f.world.Enemies = []*object.Enemy{enemyAt(object.EnemyNormal, p.X, p.Y)}

	res := f.resolve()
	assert.False(t, res.LifeLost)
	assert.Equal(t, config.InitialLives, p.Lives)
	assert.Len(t, f.world.Enemies, 1)
	assert.Zero(t, f.sched.Len())
}

func TestCompactKeepsOrder(t *testing.T) {
	a := enemyAt(object.EnemyNormal, 0, 0)
	b := enemyAt(object.EnemyNormal, 0, 0)
	c := enemyAt(object.EnemyNormal, 0, 0)
	b.MarkDestroyed()

	pool := compact([]*object.Enemy{a, b, c})
	require.Len(t, pool, 2)
	assert.Same(t, a, pool[0])
	assert.Same(t, c, pool[1])
}
