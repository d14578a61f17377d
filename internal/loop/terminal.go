package loop

import (
	"bufio"
	"context"
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyraid/internal/assets"
	"github.com/tomz197/skyraid/internal/clock"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/loop/config"
	"github.com/tomz197/skyraid/internal/object"
)

// ErrIdle is returned by Terminal.Run when the player sent no input for
// longer than the idle timeout.
var ErrIdle = errors.New("idle timeout")

// TerminalOptions configures a Terminal.
type TerminalOptions struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of stdout
	Assets       *assets.Library   // Defaults to the builtin sprites
	Logger       *log.Logger
	Clock        clock.Clock
	Rand         *rand.Rand
	IdleTimeout  time.Duration // Zero disables
}

// Terminal plays one game session on a character terminal.
type Terminal struct {
	session      *Session
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	clock        clock.Clock
	logger       *log.Logger
	idleTimeout  time.Duration
	lastInput    time.Time
	termWidth    int
	termHeight   int
	drawBorder   bool // Border is drawn once and after each resize
}

// FieldForTerminal returns the logical field for a terminal of the given
// size: each half-block pixel of the clamped render area covers
// config.FieldScale field units.
func FieldForTerminal(termWidth, termHeight int) object.Field {
	w, h, _, _ := draw.FitTerminal(termWidth, termHeight, config.MaxRenderWidth, config.MaxRenderHeight)
	return object.Field{
		Width:  float64(max(w, 1) * config.FieldScale),
		Height: float64(max(h, 1) * 2 * config.FieldScale),
	}
}

// NewTerminal creates a terminal frontend reading keys from r and drawing to w.
// The field size is fixed from the terminal size at creation; later resizes
// rescale the picture.
func NewTerminal(r *bufio.Reader, w io.Writer, opts TerminalOptions) *Terminal {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	lib := opts.Assets
	if lib == nil {
		lib = assets.Builtin()
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.Real{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		logger.Warn("terminal size unavailable, using 80x24", "err", err)
		termWidth, termHeight = 80, 24
	}
	field := FieldForTerminal(termWidth, termHeight)

	renderWidth, renderHeight, offsetCol, offsetRow := draw.FitTerminal(termWidth, termHeight, config.MaxRenderWidth, config.MaxRenderHeight)
	canvas := draw.NewCanvas(renderWidth, renderHeight, field.Width, field.Height, lib)
	canvas.SetBackground(config.ColorBackground)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Terminal{
		session: NewSession(Options{
			Field:  field,
			Clock:  clk,
			Rand:   opts.Rand,
			Logger: logger,
		}),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w),
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		clock:        clk,
		logger:       logger,
		idleTimeout:  opts.IdleTimeout,
		lastInput:    clk.Now(),
		termWidth:    termWidth,
		termHeight:   termHeight,
		drawBorder:   true,
	}
}

// Session returns the game session driven by the terminal.
func (t *Terminal) Session() *Session {
	return t.session
}

// Run drives the session at the target frame rate until the player quits,
// the input closes, ctx is cancelled or the idle timeout expires.
func (t *Terminal) Run(ctx context.Context) error {
	draw.HideCursor(t.writer)
	defer draw.ShowCursor(t.writer)
	draw.ClearScreen(t.writer)
	defer draw.ClearScreen(t.writer)

	for {
		frameStart := t.clock.Now()

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		in := input.ReadInput(t.inputStream, frameStart)
		if in.Quit {
			t.logger.Debug("quit requested")
			return nil
		}
		if err := t.checkIdle(in, frameStart); err != nil {
			return err
		}

		t.updateScreen()

		game := t.session.State()
		t.session.Step(in, t.canvas)
		if t.session.State() != game {
			// Keys held across a restart must not leak into the new game.
			t.inputStream.Reset()
		}

		if err := t.drawFrame(); err != nil {
			return err
		}

		elapsed := t.clock.Now().Sub(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}
}

// checkIdle tracks the last input and fails once the player has been idle
// for longer than the timeout.
func (t *Terminal) checkIdle(in Input, now time.Time) error {
	if in != (Input{}) {
		t.lastInput = now
		return nil
	}
	if t.idleTimeout > 0 && now.Sub(t.lastInput) > t.idleTimeout {
		t.logger.Info("disconnecting idle player", "idle", now.Sub(t.lastInput).Round(time.Second))
		return ErrIdle
	}
	return nil
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On resize the terminal is cleared so nothing outside the new canvas area
// remains.
func (t *Terminal) updateScreen() {
	termWidth, termHeight, err := t.termSizeFunc()
	if err != nil || (termWidth == t.termWidth && termHeight == t.termHeight) {
		return
	}
	t.termWidth, t.termHeight = termWidth, termHeight

	renderWidth, renderHeight, offsetCol, offsetRow := draw.FitTerminal(termWidth, termHeight, config.MaxRenderWidth, config.MaxRenderHeight)
	t.chunkWriter.WriteString("\033[0m\033[H\033[2J")
	t.canvas.Resize(renderWidth, renderHeight)
	t.canvas.SetOffset(offsetCol, offsetRow)
	t.canvas.ForceRedraw()
	t.drawBorder = true
}

// drawFrame renders the canvas and border and flushes the frame.
func (t *Terminal) drawFrame() error {
	if err := t.canvas.Render(t.chunkWriter); err != nil {
		return err
	}
	if t.drawBorder {
		if err := t.canvas.RenderBorder(t.chunkWriter); err != nil {
			return err
		}
		t.drawBorder = false
	}
	return t.chunkWriter.Flush()
}
