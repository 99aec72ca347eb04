package main

import (
	"io"
	"log/slog"

	"github.com/spicery/tproj/pkg/config"
)

// newLogger builds the diagnostics logger for a run. An unknown level falls
// back to warn.
func newLogger(settings *config.Settings, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}

	var level slog.Level
	if err := level.UnmarshalText([]byte(settings.LogLevel)); err == nil {
		opts.Level = level
	}

	if settings.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
