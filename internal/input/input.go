// Package input turns raw terminal bytes into per-frame input signals.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals report no key releases, so a held key is one whose auto-repeat
// keeps arriving within this window.
const keyHoldDuration = 60 * time.Millisecond

// Input is the frame's input state shared by every frontend.
type Input struct {
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Missile bool // Secondary weapon
	Pause   bool
	Restart bool
	Quit    bool

	// Pointer or touch movement since the previous frame, in field units.
	PointerDX float64
	PointerDY float64
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	left    time.Time
	right   time.Time
	up      time.Time
	down    time.Time
	missile time.Time
	pause   time.Time
	restart time.Time
	quit    time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has hit EOF or an error.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream (non-blocking).
func ReadInput(s *Stream, now time.Time) Input {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	s.apply(buf, now)
	in := s.snapshot(now)
	if s.closed {
		in.Quit = true
	}
	return in
}

// Reset forgets all held keys, e.g. after a restart so the restart key is
// not also read as the first frame's input.
func (s *Stream) Reset() {
	s.state = keyState{}
}

// apply parses buf and updates key timestamps.
func (s *Stream) apply(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI arrow sequences: ESC [ A..D
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'B':
				s.state.down = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}
}

// snapshot builds the frame input: keys count as pressed if seen within
// the hold window.
func (s *Stream) snapshot(now time.Time) Input {
	held := func(t time.Time) bool {
		return !t.IsZero() && now.Sub(t) < keyHoldDuration
	}
	return Input{
		Left:    held(s.state.left),
		Right:   held(s.state.right),
		Up:      held(s.state.up),
		Down:    held(s.state.down),
		Missile: held(s.state.missile),
		Pause:   held(s.state.pause),
		Restart: held(s.state.restart),
		Quit:    held(s.state.quit),
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', 0x03: // Ctrl-C arrives as a byte in raw mode
		state.quit = now
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 's', 'S', 'j', 'J':
		state.down = now
	case 'm', 'M':
		state.missile = now
	case 'p', 'P':
		state.pause = now
	case ' ', '\r', '\n':
		state.restart = now
	}
}
