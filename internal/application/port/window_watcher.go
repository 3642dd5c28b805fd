package port

import (
	"context"

	"github.com/bnema/hyprminimizer/internal/domain/entity"
)

// WindowStateWatcher observes a minimized window until it stops being minimized.
// Polling and event-driven implementations are interchangeable.
type WindowStateWatcher interface {
	// Watch blocks until the window is closed, restored, or can no longer be
	// observed, and reports which. It returns ctx.Err() if ctx ends first.
	Watch(ctx context.Context, address string) (entity.WindowStateChange, error)
}
