// Package cli wires configuration, adapters and use cases for the commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/hyprminimizer/internal/application/port"
	"github.com/bnema/hyprminimizer/internal/application/usecase"
	"github.com/bnema/hyprminimizer/internal/cli/model"
	"github.com/bnema/hyprminimizer/internal/cli/styles"
	"github.com/bnema/hyprminimizer/internal/domain/build"
	"github.com/bnema/hyprminimizer/internal/infrastructure/config"
	"github.com/bnema/hyprminimizer/internal/infrastructure/hyprland"
	"github.com/bnema/hyprminimizer/internal/infrastructure/launcher"
	"github.com/bnema/hyprminimizer/internal/infrastructure/persistence/stackfile"
	"github.com/bnema/hyprminimizer/internal/infrastructure/tray"
	"github.com/bnema/hyprminimizer/internal/logging"
)

const logTimeFormat = "15:04:05"

// App holds CLI dependencies.
type App struct {
	Config     *config.Config
	ConfigFile string
	Theme      *styles.Theme
	BuildInfo  build.Info
	Out        io.Writer

	Stack      *stackfile.Store
	Compositor port.Compositor

	// Use cases
	MinimizeUC *usecase.MinimizeWindowUseCase
	RestoreUC  *usecase.RestoreWindowUseCase
	ListUC     *usecase.ListMinimizedUseCase
	MenuUC     *usecase.RestoreFromMenuUseCase

	ctx context.Context
}

// Deps overrides the system adapters, mainly for tests.
type Deps struct {
	Compositor port.Compositor
	Publisher  port.TrayPublisher
	Out        io.Writer
}

// NewApp loads configuration from mgr and builds every dependency.
func NewApp(parent context.Context, mgr *config.Manager, deps Deps) (*App, error) {
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: logTimeFormat,
		Output:     os.Stderr,
	})
	ctx := logging.WithContext(parent, logger)

	stackPath, err := stackfile.DefaultPath(cfg.StackBaseDirectory)
	if err != nil {
		return nil, fmt.Errorf("resolve stack path: %w", err)
	}
	stack := stackfile.New(stackPath)
	logger.Debug().Str("stack", stackPath).Str("config", mgr.GetConfigFile()).Msg("app initialized")

	compositor := deps.Compositor
	if compositor == nil {
		compositor = hyprland.NewClient(nil)
	}
	publisher := deps.Publisher
	if publisher == nil {
		publisher = tray.NewPublisher()
	}
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	restoreUC := usecase.NewRestoreWindowUseCase(stack, compositor)
	listUC := usecase.NewListMinimizedUseCase(stack, compositor)
	minimizeUC := usecase.NewMinimizeWindowUseCase(
		stack,
		compositor,
		publisher,
		usecase.NewWindowStatePoller(compositor, cfg.PollInterval()),
		usecase.MinimizeOptions{
			RegisterTimeout: cfg.RegisterTimeout(),
			RestartDelay:    cfg.RestartDelay(),
		},
	)

	return &App{
		Config:     cfg,
		ConfigFile: mgr.GetConfigFile(),
		Theme:      styles.NewTheme(),
		Out:        out,
		Stack:      stack,
		Compositor: compositor,
		MinimizeUC: minimizeUC,
		RestoreUC:  restoreUC,
		ListUC:     listUC,
		MenuUC:     usecase.NewRestoreFromMenuUseCase(listUC, restoreUC),
		ctx:        ctx,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return logging.FromContext(a.ctx)
}

// Launcher returns the configured external launcher, or the built-in
// terminal picker when interactive is set.
func (a *App) Launcher(interactive bool) port.Launcher {
	if interactive {
		return model.NewPicker(a.Theme)
	}
	return launcher.NewShell(a.Config.Launcher)
}

// Println writes a line to the app output.
func (a *App) Println(s string) {
	_, _ = fmt.Fprintln(a.Out, s)
}
