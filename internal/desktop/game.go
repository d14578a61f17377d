// Package desktop runs a game session in an ebiten window.
package desktop

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/skyraid/internal/assets"
	"github.com/tomz197/skyraid/internal/clock"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/loop"
	"github.com/tomz197/skyraid/internal/object"
)

// Options configures a Game.
type Options struct {
	Field  object.Field
	Assets *assets.Library // Defaults to the builtin sprites
	Clock  clock.Clock
	Rand   *rand.Rand
	Logger *log.Logger
}

// Game adapts a loop.Session to ebiten.Game. Update advances the session
// and records its drawing; Draw replays the recording on the screen.
type Game struct {
	session *loop.Session
	frame   draw.Recorder
	surface *surface
	input   inputReader
	logger  *log.Logger
}

// NewGame creates a game and uploads the sprites to the GPU.
func NewGame(opts Options) *Game {
	lib := opts.Assets
	if lib == nil {
		lib = assets.Builtin()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	images := make(map[assets.Name]*ebiten.Image, len(assets.All))
	for _, name := range assets.All {
		if img := lib.Image(name); img != nil {
			images[name] = ebiten.NewImageFromImage(img)
		}
	}

	return &Game{
		session: loop.NewSession(loop.Options{
			Field:  opts.Field,
			Clock:  opts.Clock,
			Rand:   opts.Rand,
			Logger: logger,
		}),
		surface: &surface{images: images},
		input:   inputReader{pressed: ebiten.IsKeyPressed},
		logger:  logger,
	}
}

// Session returns the game session driven by the window.
func (g *Game) Session() *loop.Session {
	return g.session
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	in := g.input.read()
	if in.Quit {
		g.logger.Debug("quit requested")
		return ebiten.Termination
	}

	g.frame.Reset()
	g.session.Step(in, &g.frame)
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	g.frame.Replay(g.surface)
}

// Layout implements ebiten.Game. The screen is the playing field; ebiten
// scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	field := g.session.Field()
	return int(field.Width), int(field.Height)
}

var _ ebiten.Game = (*Game)(nil)
