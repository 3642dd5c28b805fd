package port

import (
	"context"

	"github.com/bnema/hyprminimizer/internal/domain/entity"
)

// TrayActions are the user decisions a tray icon can forward for its window.
// Every call ends the tray session, even when the underlying dispatch fails.
type TrayActions interface {
	// OpenOnActive moves the window to the active workspace and focuses it.
	OpenOnActive(ctx context.Context)

	// OpenOnOriginal moves the window back to the workspace it was minimized from and focuses it.
	OpenOnOriginal(ctx context.Context)

	// Close asks the window to close.
	Close(ctx context.Context)
}

// TrayPublisher exposes a tray icon (StatusNotifierItem plus its menu) for one window.
type TrayPublisher interface {
	// Publish connects to the bus, acquires a process-unique name and serves
	// the icon and menu objects. It does not register with the tray host.
	Publish(ctx context.Context, window entity.Window, actions TrayActions) (TrayRegistration, error)
}

// TrayRegistration is a published tray icon.
type TrayRegistration interface {
	// BusName returns the unique name the icon is served under.
	BusName() string

	// Register announces the icon to the tray host watcher.
	Register(ctx context.Context) error

	// HostRestarts emits a value every time the tray host watcher gains a new owner.
	// The channel is closed when the subscription ends (ctx done or bus closed).
	HostRestarts(ctx context.Context) (<-chan struct{}, error)

	// Close releases the bus connection and the objects served on it.
	Close() error
}
