// Package app wires the engine, loader and logger together and drives one
// invocation of the tool from configuration to printed output.
package app

import (
	"io"
	"log/slog"

	"github.com/Arsolitt/yeth/internal/config"
	"github.com/Arsolitt/yeth/internal/engine"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
	engine *engine.Engine
}

// NewApp is the constructor for the main application. Results go to outW;
// the logger writes to logW so that result lines and log lines never
// interleave on the same stream.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg, logW)
	logger.Debug("Logger configured successfully.")

	eng := engine.New(engine.Config{
		Root:            cfg.Root,
		Workers:         cfg.WorkerCount,
		ShortHash:       cfg.ShortHash,
		ShortHashLength: cfg.ShortHashLength,
	}, loader)

	return &App{
		outW:   outW,
		logger: logger,
		cfg:    cfg,
		engine: eng,
	}
}

// Engine returns the application's engine. This is primarily for testing.
func (a *App) Engine() *engine.Engine {
	return a.engine
}
