// Package app wires the planner together: manifest in, validated registry,
// genome discovery, target enumeration, task graph, plan document out. Each
// subcommand calls one method here.
package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/methylgrid/methylgrid/internal/ctxlog"
	"github.com/methylgrid/methylgrid/internal/profile"
)

// App encapsulates the planner's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
	prof   *profile.Profile
}

// NewApp constructs an App with its own isolated logger. The resource
// profile is loaded eagerly: a broken profile should fail the command before
// any manifest work starts.
func NewApp(outW io.Writer, errW io.Writer, cfg *Config) (*App, error) {
	logger := ctxlog.New(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	prof := profile.Default()
	if cfg.ProfilePath != "" {
		var err error
		prof, err = profile.Load(ctx, cfg.ProfilePath)
		if err != nil {
			return nil, err
		}
		logger.Debug("Resource profile loaded.", "path", cfg.ProfilePath)
	}

	return &App{outW: outW, logger: logger, cfg: cfg, prof: prof}, nil
}

// Logger exposes the app logger, primarily for the CLI layer.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
