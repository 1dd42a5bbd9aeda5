// Package logging builds slog loggers for the server and the CLI.
//
// Environment variables (read by callers through config):
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
//	LOG_FORMAT: json or text (colored, via tint)
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Форматы вывода
const (
	FormatJSON = "json"
	FormatText = "text"
)

// New creates a logger writing to w in the given format and level.
// Unknown formats fall back to JSON.
func New(w io.Writer, format, level string) *slog.Logger {
	lvl := ParseLevel(level)

	if strings.ToLower(format) == FormatText {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			TimeFormat: time.Kitchen,
		}))
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// Setup creates a logger and installs it as the slog default.
func Setup(w io.Writer, format, level string) *slog.Logger {
	logger := New(w, format, level)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a level name to slog.Level (default: INFO).
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
