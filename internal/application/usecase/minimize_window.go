package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/hyprminimizer/internal/application/port"
	"github.com/bnema/hyprminimizer/internal/domain/dispatch"
	"github.com/bnema/hyprminimizer/internal/domain/entity"
	"github.com/bnema/hyprminimizer/internal/domain/repository"
	"github.com/bnema/hyprminimizer/internal/logging"
)

// MinimizeOptions tunes the tray session.
type MinimizeOptions struct {
	// RegisterTimeout bounds publishing and registering the tray icon. Zero disables it.
	RegisterTimeout time.Duration
	// RestartDelay is waited before re-registering with a restarted tray host.
	RestartDelay time.Duration
}

// MinimizeWindowUseCase hides a window on the special workspace behind a tray
// icon and blocks until the session ends.
type MinimizeWindowUseCase struct {
	stack      repository.WindowStackRepository
	compositor port.Compositor
	publisher  port.TrayPublisher
	watcher    port.WindowStateWatcher
	hostMon    *TrayHostMonitor
	opts       MinimizeOptions
}

func NewMinimizeWindowUseCase(
	stack repository.WindowStackRepository,
	compositor port.Compositor,
	publisher port.TrayPublisher,
	watcher port.WindowStateWatcher,
	opts MinimizeOptions,
) *MinimizeWindowUseCase {
	return &MinimizeWindowUseCase{
		stack:      stack,
		compositor: compositor,
		publisher:  publisher,
		watcher:    watcher,
		hostMon:    NewTrayHostMonitor(opts.RestartDelay),
		opts:       opts,
	}
}

type MinimizeInput struct {
	// Address of the window to minimize. Empty means the focused window.
	Address string
	// OnMinimized is called once the icon is registered, before waiting.
	OnMinimized func(window entity.Window)
}

type MinimizeOutput struct {
	Window entity.Window
	// Interrupted is set when ctx ended the session.
	Interrupted bool
	// MovedBack reports whether an interrupted window reached its origin workspace again.
	MovedBack bool
}

// Minimize runs the full session: push, hide, publish the icon, wait, clean up.
// If the tray icon cannot be set up the window is moved back and the stack
// entry dropped before the error is returned.
func (uc *MinimizeWindowUseCase) Minimize(ctx context.Context, input MinimizeInput) (*MinimizeOutput, error) {
	window, err := uc.resolveWindow(ctx, input.Address)
	if err != nil {
		return nil, err
	}

	ctx = logging.WithWindow(logging.WithComponent(ctx, "minimize"), window.Address)
	log := logging.FromContext(ctx)
	log.Info().
		Str("title", window.Title).
		Str("class", window.Class).
		Int("workspace", window.Workspace.ID).
		Msg("minimizing window")

	// The stack entry must exist before the window disappears.
	if err := uc.stack.Push(ctx, window.Address); err != nil {
		return nil, fmt.Errorf("push window: %w", err)
	}

	if err := uc.compositor.Dispatch(ctx, dispatch.Minimize(window.Address)); err != nil {
		if rmErr := uc.stack.Remove(ctx, window.Address); rmErr != nil {
			log.Warn().Err(rmErr).Msg("failed to drop stack entry after failed move")
		}
		return nil, fmt.Errorf("move window to %s: %w", dispatch.MinimizedWorkspace, err)
	}

	exit := NewExitSignal()
	actions := NewWindowTrayActions(uc.compositor, window, exit)

	reg, err := uc.publishTray(ctx, window, actions)
	if err != nil {
		uc.rollback(ctx, window)
		return nil, err
	}
	log.Info().Str("bus_name", reg.BusName()).Msg("tray icon registered")
	if input.OnMinimized != nil {
		input.OnMinimized(window)
	}

	monitorCtx, cancelMonitors := context.WithCancel(ctx)
	var monitors errgroup.Group
	monitors.Go(func() error {
		if err := uc.hostMon.Run(monitorCtx, reg); err != nil {
			log.Warn().Err(err).Msg("tray host monitor stopped")
		}
		return nil
	})
	monitors.Go(func() error {
		change, err := uc.watcher.Watch(monitorCtx, window.Address)
		if err != nil {
			return nil
		}
		log.Info().Str("change", string(change)).Msg("window left the minimized state")
		exit.Fire()
		return nil
	})

	out := &MinimizeOutput{Window: window}
	select {
	case <-ctx.Done():
		out.Interrupted = true
		log.Info().Msg("interrupted, moving window back")
		// ctx is already cancelled; the move-back must still reach the compositor.
		if err := uc.compositor.Dispatch(context.WithoutCancel(ctx), dispatch.MoveToWorkspace(window.Workspace.ID, window.Address)); err != nil {
			log.Warn().Err(err).Msg("failed to move window back")
		} else {
			out.MovedBack = true
		}
	case <-exit.Done():
		log.Debug().Msg("exit signal received")
	}

	cancelMonitors()
	_ = monitors.Wait()

	if err := reg.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close tray connection")
	}

	if err := uc.stack.Remove(context.WithoutCancel(ctx), window.Address); err != nil {
		log.Error().Err(err).Msg("failed to remove window from stack")
	}

	return out, nil
}

func (uc *MinimizeWindowUseCase) resolveWindow(ctx context.Context, address string) (entity.Window, error) {
	if address == "" {
		window, err := uc.compositor.ActiveWindow(ctx)
		if err != nil {
			return entity.Window{}, fmt.Errorf("get active window: %w", err)
		}
		return window, nil
	}

	clients, err := uc.compositor.Clients(ctx)
	if err != nil {
		return entity.Window{}, fmt.Errorf("list windows: %w", err)
	}
	window, ok := entity.FindWindow(clients, address)
	if !ok {
		return entity.Window{}, fmt.Errorf("%w: %s", entity.ErrWindowNotFound, address)
	}
	return window, nil
}

func (uc *MinimizeWindowUseCase) publishTray(ctx context.Context, window entity.Window, actions port.TrayActions) (port.TrayRegistration, error) {
	setupCtx := ctx
	if uc.opts.RegisterTimeout > 0 {
		var cancel context.CancelFunc
		setupCtx, cancel = context.WithTimeout(ctx, uc.opts.RegisterTimeout)
		defer cancel()
	}

	reg, err := uc.publisher.Publish(setupCtx, window, actions)
	if err != nil {
		return nil, ipcSetupError("publish tray icon", err)
	}

	if err := reg.Register(setupCtx); err != nil {
		if closeErr := reg.Close(); closeErr != nil {
			logging.FromContext(ctx).Debug().Err(closeErr).Msg("failed to close tray connection")
		}
		return nil, ipcSetupError("register tray icon", err)
	}
	return reg, nil
}

// rollback undoes the hide after a failed tray setup.
func (uc *MinimizeWindowUseCase) rollback(ctx context.Context, window entity.Window) {
	log := logging.FromContext(ctx)
	ctx = context.WithoutCancel(ctx)

	if err := uc.compositor.Dispatch(ctx, dispatch.MoveToWorkspace(window.Workspace.ID, window.Address)); err != nil {
		log.Error().Err(err).Msg("failed to move window back after tray setup failure")
	}
	if err := uc.stack.Remove(ctx, window.Address); err != nil {
		log.Error().Err(err).Msg("failed to drop stack entry after tray setup failure")
	}
}

func ipcSetupError(op string, err error) error {
	if errors.Is(err, entity.ErrIPCSetup) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, entity.ErrIPCSetup, err)
}
