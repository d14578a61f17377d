// Package clock provides the wall-clock source used by the simulation.
package clock

import (
	"sync"
	"time"
)

// Clock returns the current time. Shot intervals, invincibility and enemy
// timers are all measured against it.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock, including its monotonic reading.
type Real struct{}

// Now returns time.Now().
func (Real) Now() time.Time {
	return time.Now()
}

// Mock is a controllable clock for tests and replays.
type Mock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMock creates a mock clock starting at start.
func NewMock(start time.Time) *Mock {
	return &Mock{now: start}
}

// Now returns the mocked time.
func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set jumps to t.
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
