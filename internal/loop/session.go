// Package loop runs the game simulation and drives it from a terminal.
package loop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyraid/internal/clock"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/object"
)

// Input is the per-frame input shared by every frontend.
type Input = object.Input

// Next tells the frontend whether the simulation wants another frame.
type Next int

const (
	NextFrame Next = iota // Keep calling Frame
	Halt                  // Game over: the simulation no longer advances
)

// Options configures a Session.
type Options struct {
	Field  object.Field
	Clock  clock.Clock // Defaults to the wall clock
	Rand   *rand.Rand  // Defaults to a time-seeded source
	Logger *log.Logger // Defaults to discarding
}

// Session is one game from start to game over and any number of restarts.
// It is driven by a single goroutine calling Frame.
type Session struct {
	field   object.Field
	clock   clock.Clock
	rng     *rand.Rand
	logger  *log.Logger
	spawner *object.EnemySpawner
	resolve *resolver

	state    *State
	world    *World
	schedule Schedule

	// Previous frame's edge-triggered inputs
	prevMissile bool
	prevPause   bool
}

// NewSession creates a session and starts its first game.
func NewSession(opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := &Session{
		field:   opts.Field,
		clock:   opts.Clock,
		rng:     opts.Rand,
		logger:  opts.Logger,
		spawner: object.NewEnemySpawner(),
		resolve: newResolver(opts.Field),
	}
	s.start()
	return s
}

// start builds a fresh game.
func (s *Session) start() {
	now := s.clock.Now()
	s.state = NewState(now)
	s.world = NewWorld(s.field, s.rng)
	s.schedule.Reset()
	s.prevMissile = false
	s.prevPause = false
	s.logger.Debug("game started", "width", s.field.Width, "height", s.field.Height)
}

// State returns the game-state record of the current game.
func (s *Session) State() *State {
	return s.state
}

// World returns the entity pools of the current game.
func (s *Session) World() *World {
	return s.world
}

// Field returns the size of the playing field.
func (s *Session) Field() object.Field {
	return s.field
}

// TogglePause switches between running and paused. It has no effect after
// game over.
func (s *Session) TogglePause() {
	switch s.state.Phase {
	case PhaseRunning:
		s.state.Phase = PhasePaused
	case PhasePaused:
		s.state.Phase = PhaseRunning
	default:
		return
	}
	s.logger.Debug("pause toggled", "phase", s.state.Phase)
}

// Restart starts a new game. It is only accepted after game over and
// reports whether the game was restarted.
func (s *Session) Restart() bool {
	if s.state.Phase != PhaseGameOver {
		return false
	}
	s.logger.Info("restart", "previous_score", s.world.Player.Score)
	s.start()
	return true
}

// SpawnBoss sends a boss into the field.
func (s *Session) SpawnBoss() {
	s.world.Enemies = append(s.world.Enemies, object.NewBoss(s.field, s.rng, s.clock.Now()))
	s.state.BossSpawned = true
	s.logger.Info("boss spawned")
}

// Step runs one frame and answers the restart prompt after a game over.
// Frontends call Step once per display refresh.
func (s *Session) Step(in Input, surf draw.Surface) Next {
	if s.Frame(in, surf) == NextFrame {
		return NextFrame
	}
	if in.Restart && s.Restart() {
		return NextFrame
	}
	return Halt
}

// Frame advances the simulation by one frame and draws it onto surf.
// While paused the scene is redrawn without advancing. After game over only
// the overlay is drawn and Halt is returned.
func (s *Session) Frame(in Input, surf draw.Surface) Next {
	missilePressed := in.Missile && !s.prevMissile
	pausePressed := in.Pause && !s.prevPause
	s.prevMissile = in.Missile
	s.prevPause = in.Pause

	if s.state.Phase == PhaseGameOver {
		s.drawFrozen(surf)
		drawGameOver(surf, s.field, s.world.Player)
		return Halt
	}

	if pausePressed {
		s.TogglePause()
	}
	if s.state.Phase == PhasePaused {
		s.drawFrozen(surf)
		drawPaused(surf, s.field)
		return NextFrame
	}

	now := s.clock.Now()
	s.state.Frame++
	s.schedule.RunDue(now)

	ctx := object.UpdateContext{
		Now:     now,
		Field:   s.field,
		Spawner: s.world,
		Rand:    s.rng,
	}

	surf.Clear()
	s.world.Stars.Update(ctx)
	s.world.Stars.Draw(surf, s.field)

	player := s.world.Player
	player.Move(in, s.field)
	if in.PointerDX != 0 || in.PointerDY != 0 {
		player.Nudge(in.PointerDX, in.PointerDY, s.field)
	}
	player.Draw(surf)

	if player.Lives <= 0 {
		s.state.Phase = PhaseGameOver
		s.logger.Info("game over",
			"score", player.Score,
			"enemies", s.state.Stats.EnemiesDestroyed,
			"powerups", s.state.Stats.PowerUpsCollected,
			"missiles", s.state.Stats.MissilesUsed,
			"frames", s.state.Frame,
		)
		s.drawFrozen(surf)
		drawGameOver(surf, s.field, player)
		return Halt
	}

	if missilePressed {
		if err := player.FireMissile(&s.world.Missiles); err != nil {
			s.logger.Debug("missile not fired", "err", err)
		} else {
			s.state.Stats.MissilesUsed++
		}
	}

	s.world.Projectiles = append(s.world.Projectiles, player.Shoot(now)...)

	s.world.Enemies = append(s.world.Enemies, s.spawner.Spawn(now, &s.state.SpawnTimers, s.field, s.rng)...)
	if s.spawner.BossDue(now, s.state.StartTime, s.state.BossSpawned) {
		s.SpawnBoss()
	}

	s.world.Projectiles = updatePool(s.world.Projectiles, ctx, surf, s.dropFaulty)
	s.world.Enemies = updatePool(s.world.Enemies, ctx, surf, s.dropFaulty)
	s.world.FlushSpawned()
	s.world.PowerUps = updatePool(s.world.PowerUps, ctx, surf, s.dropFaulty)
	s.world.Missiles = updatePool(s.world.Missiles, ctx, surf, s.dropFaulty)

	if res := s.resolve.resolve(s.world, s.state, &s.schedule, now, s.rng); res.LifeLost {
		s.logger.Debug("life lost", "lives", player.Lives)
	}

	drawHUD(surf, s.state, player)
	return NextFrame
}

// dropFaulty logs an entity removed because its update failed.
func (s *Session) dropFaulty(obj object.Object, err error) {
	s.logger.Warn("dropping entity", "type", typeName(obj), "err", err)
}

// drawFrozen redraws the current scene without advancing it.
func (s *Session) drawFrozen(surf draw.Surface) {
	surf.Clear()
	s.world.Draw(surf)
	drawHUD(surf, s.state, s.world.Player)
}
