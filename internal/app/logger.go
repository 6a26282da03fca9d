package app

import (
	"io"
	"log/slog"
)

// newLogger builds the run's logger from the validated configuration.
// Unrecognized levels fall back to warn, the same default the CLI seeds, so
// a typo never turns on debug tracing. The global logger is left untouched;
// each App instance keeps its own.
func newLogger(cfg *Config, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
