package loop

import (
	"bytes"
	"image/color"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyraid/internal/assets"
	"github.com/tomz197/skyraid/internal/clock"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/object"
)

var testField = object.Field{Width: 800, Height: 600}

var testStart = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// textSpy is a Surface that keeps the text drawn since the last Clear.
type textSpy struct {
	clears int
	texts  []string
}

func (s *textSpy) Clear() {
	s.clears++
	s.texts = s.texts[:0]
}

func (s *textSpy) FillRect(x, y, w, h float64, c color.Color) {}

func (s *textSpy) DrawImage(name assets.Name, x, y, w, h, alpha float64) {}

func (s *textSpy) DrawText(text string, x, y float64, align draw.Align, c color.Color) {
	s.texts = append(s.texts, text)
}

func (s *textSpy) has(prefix string) bool {
	for _, t := range s.texts {
		if strings.HasPrefix(t, prefix) {
			return true
		}
	}
	return false
}

// testSession bundles a session with its mock clock and log output.
type testSession struct {
	*Session
	clock *clock.Mock
	logs  *bytes.Buffer
	surf  *textSpy
}

// newTestSession creates a session on testField whose enemy timers have
// just fired, so nothing spawns for the first two seconds.
func newTestSession(t *testing.T) *testSession {
	t.Helper()
	clk := clock.NewMock(testStart)
	logs := &bytes.Buffer{}
	s := NewSession(Options{
		Field:  testField,
		Clock:  clk,
		Rand:   testRNG(),
		Logger: log.New(logs),
	})
	s.State().LastNormalSpawn = testStart
	s.State().LastEliteSpawn = testStart
	return &testSession{Session: s, clock: clk, logs: logs, surf: &textSpy{}}
}

// frame advances the clock by one frame time and runs a frame.
func (ts *testSession) frame(in Input) Next {
	ts.clock.Advance(16 * time.Millisecond)
	return ts.Frame(in, ts.surf)
}

func friendlyShots(w *World) int {
	n := 0
	for _, p := range w.Projectiles {
		if !p.Hostile {
			n++
		}
	}
	return n
}

// enemyOnPlayer returns a normal enemy placed over the player.
func enemyOnPlayer(w *World) *object.Enemy {
	e := object.NewEnemy(object.EnemyNormal, w.Field, testRNG(), testStart)
	e.X, e.Y = w.Player.X, w.Player.Y
	return e
}
