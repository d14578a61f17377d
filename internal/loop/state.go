package loop

import (
	"time"

	"github.com/tomz197/skyraid/internal/object"
)

// Phase is the lifecycle phase of a game.
type Phase int

const (
	PhaseRunning  Phase = iota // Simulation advancing
	PhasePaused                // Frozen, waiting for unpause
	PhaseGameOver              // Life pool empty, waiting for restart
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Stats counts events over one game.
type Stats struct {
	EnemiesDestroyed  int
	PowerUpsCollected int
	MissilesUsed      int
}

// State is the game-state record of one session. It is created when a
// game starts and rebuilt on restart.
type State struct {
	Phase       Phase
	Wave        int
	BossSpawned bool
	StartTime   time.Time
	object.SpawnTimers
	Stats Stats
	Frame uint64 // Frames simulated since start
}

// NewState creates the record for a game starting at now.
func NewState(now time.Time) *State {
	return &State{
		Phase:     PhaseRunning,
		Wave:      1,
		StartTime: now,
	}
}

// Running reports whether the game has not ended. A paused game is still
// running.
func (s *State) Running() bool {
	return s.Phase != PhaseGameOver
}

// Paused reports whether the game is paused.
func (s *State) Paused() bool {
	return s.Phase == PhasePaused
}
