// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel)) // stderr, colored
//	logging.SetupWriter(f, slog.LevelDebug)                  // e.g. a log file while a TUI owns the screen
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// SetupWithLevel configures colored logging to stderr at the given level.
func SetupWithLevel(level slog.Level) {
	SetupWriter(os.Stderr, level)
}

// SetupWriter configures logging to w. Colors are disabled unless w is stderr.
func SetupWriter(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
			NoColor:    w != io.Writer(os.Stderr),
		}),
	))
}

// ParseLevel maps a level name to a slog.Level, defaulting to INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
