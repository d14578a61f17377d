// Package logging builds the structured loggers used by the binaries.
package logging

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyraid/internal/config"
)

// LevelEnv names the environment variable holding the log level.
const LevelEnv = "SKYRAID_LOG_LEVEL"

// New returns a logger writing to w with timestamps and the given prefix.
// The level comes from SKYRAID_LOG_LEVEL and defaults to info; an unknown
// level is reported once at warn level.
func New(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
	})

	name := config.GetEnv(LevelEnv, "")
	if name == "" {
		return logger
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", name)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
