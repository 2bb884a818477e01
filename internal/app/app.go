package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/thoriumgroup/thorium/internal/activator"
	"github.com/thoriumgroup/thorium/internal/config"
	"github.com/thoriumgroup/thorium/internal/ctxlog"
	"github.com/thoriumgroup/thorium/internal/registry"
)

// AppConfig holds all the necessary configuration for an App instance to run.
type AppConfig struct {
	// ConfigPath points at the activation config file. Empty means every
	// registered module activates per the default policy.
	ConfigPath string

	// GUI selects an interactive session with menu registration.
	GUI bool

	LogFormat string
	LogLevel  string

	// MenuName is the top-level menu GUI commands register under.
	MenuName string

	// IconDirs are external icon folders handed to the icon panel.
	IconDirs []string
}

// App encapsulates the suite's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	registry  *registry.Registry
	activator *activator.Activator
	appConfig *AppConfig
}

// NewApp is the constructor for the application. It returns a fully
// initialized App instance with its own isolated logger and registry.
// Configuration errors are fatal and panic; callers recover at the process
// boundary.
func NewApp(outW io.Writer, appConfig *AppConfig, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	activation := config.DefaultActivation()
	if appConfig.ConfigPath != "" {
		var err error
		activation, err = config.LoadFile(appConfig.ConfigPath)
		if err != nil {
			// A failure to load config is a fatal startup error.
			panic(fmt.Errorf("failed to load activation config: %w", err))
		}
	}
	logger.Debug("Activation config loaded.",
		"path", appConfig.ConfigPath, "default", activation.Default)

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules(appConfig)
	}
	for _, mod := range modules {
		reg.Register(mod)
	}
	logger.Debug("All modules registered.", "count", reg.Len())

	return &App{
		outW:      outW,
		logger:    logger,
		registry:  reg,
		activator: activator.New(reg, activation),
		appConfig: appConfig,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Activator returns the application's activator. Primarily for testing.
func (a *App) Activator() *activator.Activator {
	return a.activator
}

// Context returns ctx with the application's logger bound to it.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
