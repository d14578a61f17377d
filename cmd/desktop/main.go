package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/skyraid/internal/assets"
	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/desktop"
	"github.com/tomz197/skyraid/internal/logging"
	gameconfig "github.com/tomz197/skyraid/internal/loop/config"
	"github.com/tomz197/skyraid/internal/object"
)

func main() {
	logger := logging.New(os.Stderr, "desktop")

	lib, err := assets.LoadOrBuiltin(config.GetEnv("SKYRAID_ASSETS", ""))
	if err != nil {
		logger.Fatal("failed to load assets", "err", err)
	}

	width := config.GetEnvInt("SKYRAID_WIDTH", gameconfig.DesktopFieldWidth)
	height := config.GetEnvInt("SKYRAID_HEIGHT", gameconfig.DesktopFieldHeight)
	if width <= 0 || height <= 0 {
		logger.Fatal("invalid window size", "width", width, "height", height)
	}

	game := desktop.NewGame(desktop.Options{
		Field:  object.Field{Width: float64(width), Height: float64(height)},
		Assets: lib,
		Logger: logger,
	})

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Skyraid")
	ebiten.SetWindowResizable(true)
	ebiten.SetFullscreen(config.GetEnvBool("SKYRAID_FULLSCREEN", false))

	logger.Info("starting", "width", width, "height", height)
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game error", "err", err)
	}
	logger.Info("exited", "score", game.Session().World().Player.Score)
}
