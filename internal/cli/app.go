// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/subdivide/internal/cli/styles"
	"github.com/bnema/subdivide/internal/domain/build"
	"github.com/bnema/subdivide/internal/infrastructure/config"
	"github.com/bnema/subdivide/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration and builds the CLI dependencies. An empty
// configPath uses the XDG config directory.
func NewApp(configPath string) (*App, error) {
	mgr, err := newManager(configPath)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	// CLI commands log to stderr; the workspace swaps in a file logger.
	logger := logging.New(cfg.Logging.LoggerConfig())
	ctx := logging.WithContext(context.Background(), logger)
	logger.Debug().Str("config_file", mgr.ConfigFile()).Msg("config loaded")

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(cfg),
		ctx:        ctx,
		logCleanup: func() {},
	}, nil
}

func newManager(configPath string) (*config.Manager, error) {
	if configPath != "" {
		return config.NewManagerWithFile(configPath)
	}
	return config.NewManager()
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// SetContext replaces the application context, with the cleanup to run on
// Close.
func (a *App) SetContext(ctx context.Context, cleanup func()) {
	a.logCleanup()
	a.ctx = ctx
	a.logCleanup = cleanup
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}
