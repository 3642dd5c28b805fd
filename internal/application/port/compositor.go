package port

import (
	"context"

	"github.com/bnema/hyprminimizer/internal/domain/entity"
)

// Compositor is the narrow query/dispatch surface of the window manager.
// Calls are synchronous and may block for the duration of a subprocess.
type Compositor interface {
	// Clients returns every window known to the compositor.
	Clients(ctx context.Context) ([]entity.Window, error)

	// ActiveWindow returns the focused window.
	// Returns entity.ErrWindowNotFound when nothing is focused.
	ActiveWindow(ctx context.Context) (entity.Window, error)

	// ActiveWorkspace returns the workspace the user is currently on.
	ActiveWorkspace(ctx context.Context) (entity.Workspace, error)

	// Dispatch sends a one-shot command (see package dispatch).
	Dispatch(ctx context.Context, command string) error
}
