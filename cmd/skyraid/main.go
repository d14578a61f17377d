package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/skyraid/internal/assets"
	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/logging"
	"github.com/tomz197/skyraid/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "skyraid: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fd := int(os.Stdin.Fd())
	if err := draw.CheckTerminal(fd); err != nil {
		return err
	}

	// Log lines on stdout would corrupt the canvas, so logs go to a file.
	logger := logging.Discard()
	if path := config.GetEnv("SKYRAID_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = logging.New(f, "skyraid")
	}

	lib, err := assets.LoadOrBuiltin(config.GetEnv("SKYRAID_ASSETS", ""))
	if err != nil {
		return err
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	t := loop.NewTerminal(bufio.NewReader(os.Stdin), os.Stdout, loop.TerminalOptions{
		Assets: lib,
		Logger: logger,
	})
	logger.Info("session started", "field", fmt.Sprintf("%.0fx%.0f", t.Session().Field().Width, t.Session().Field().Height))
	if err := t.Run(ctx); err != nil {
		logger.Error("game error", "err", err)
		return fmt.Errorf("game: %w", err)
	}
	logSummary(logger, t.Session())
	return nil
}

func logSummary(logger *log.Logger, s *loop.Session) {
	st := s.State()
	logger.Info("session ended",
		"score", s.World().Player.Score,
		"phase", st.Phase,
		"enemies", st.Stats.EnemiesDestroyed,
	)
}
