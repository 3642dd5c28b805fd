package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/hyprminimizer/internal/application/port"
	"github.com/bnema/hyprminimizer/internal/domain/dispatch"
	"github.com/bnema/hyprminimizer/internal/domain/entity"
	"github.com/bnema/hyprminimizer/internal/logging"
)

// WindowTrayActions turns tray clicks into compositor dispatches for one window.
// Every action fires the exit signal once, whatever the dispatch outcome.
type WindowTrayActions struct {
	compositor port.Compositor
	window     entity.Window
	exit       *ExitSignal
}

var _ port.TrayActions = (*WindowTrayActions)(nil)

func NewWindowTrayActions(compositor port.Compositor, window entity.Window, exit *ExitSignal) *WindowTrayActions {
	return &WindowTrayActions{compositor: compositor, window: window, exit: exit}
}

// OpenOnActive moves the window to the active workspace and focuses it.
func (a *WindowTrayActions) OpenOnActive(ctx context.Context) {
	a.handle(ctx, "open on active workspace", func() error {
		ws, err := a.compositor.ActiveWorkspace(ctx)
		if err != nil {
			return fmt.Errorf("query active workspace: %w", err)
		}
		return a.moveAndFocus(ctx, ws.ID)
	})
}

// OpenOnOriginal moves the window back to the workspace it was minimized from.
func (a *WindowTrayActions) OpenOnOriginal(ctx context.Context) {
	a.handle(ctx, "open on original workspace", func() error {
		return a.moveAndFocus(ctx, a.window.Workspace.ID)
	})
}

// Close asks the compositor to close the window.
func (a *WindowTrayActions) Close(ctx context.Context) {
	a.handle(ctx, "close window", func() error {
		return a.compositor.Dispatch(ctx, dispatch.CloseWindow(a.window.Address))
	})
}

func (a *WindowTrayActions) moveAndFocus(ctx context.Context, workspaceID int) error {
	if err := a.compositor.Dispatch(ctx, dispatch.MoveToWorkspace(workspaceID, a.window.Address)); err != nil {
		return err
	}
	return a.compositor.Dispatch(ctx, dispatch.FocusWindow(a.window.Address))
}

func (a *WindowTrayActions) handle(ctx context.Context, name string, action func() error) {
	defer a.exit.Fire()

	log := logging.FromContext(ctx)
	if err := action(); err != nil {
		log.Error().Err(err).Str("action", name).Str("address", a.window.Address).Msg("tray action failed")
		return
	}
	log.Debug().Str("action", name).Str("address", a.window.Address).Msg("tray action handled")
}
