package tray

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/hyprminimizer/internal/application/port"
	"github.com/bnema/hyprminimizer/internal/domain/entity"
	"github.com/bnema/hyprminimizer/internal/logging"
)

// Compile-time interface check.
var _ port.TrayRegistration = (*Registration)(nil)

// Registration owns the bus connection of a published icon.
type Registration struct {
	conn      *dbus.Conn
	busName   string
	closeOnce sync.Once
	closeErr  error
}

func newRegistration(conn *dbus.Conn, busName string) *Registration {
	return &Registration{conn: conn, busName: busName}
}

func (r *Registration) BusName() string {
	return r.busName
}

// Register calls RegisterStatusNotifierItem on the watcher.
func (r *Registration) Register(ctx context.Context) error {
	watcher := r.conn.Object(watcherName, watcherPath)
	if err := watcher.CallWithContext(ctx, registerItemCall, 0, r.busName).Err; err != nil {
		return fmt.Errorf("%w: register with %s: %w", entity.ErrIPCSetup, watcherName, err)
	}
	return nil
}

// HostRestarts subscribes to NameOwnerChanged for the watcher name and emits
// whenever it gains a new owner.
func (r *Registration) HostRestarts(ctx context.Context) (<-chan struct{}, error) {
	log := logging.FromContext(ctx)

	matchOpts := []dbus.MatchOption{
		dbus.WithMatchInterface(dbusInterface),
		dbus.WithMatchMember(nameOwnerChanged),
		dbus.WithMatchArg(0, watcherName),
	}
	if err := r.conn.AddMatchSignalContext(ctx, matchOpts...); err != nil {
		return nil, fmt.Errorf("subscribe to %s: %w", nameOwnerChanged, err)
	}

	signals := make(chan *dbus.Signal, 8)
	r.conn.Signal(signals)

	restarts := make(chan struct{}, 1)
	go func() {
		defer close(restarts)
		defer func() {
			r.conn.RemoveSignal(signals)
			// The connection may already be gone; nothing to do about it then.
			_ = r.conn.RemoveMatchSignal(matchOpts...)
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case sig, ok := <-signals:
				if !ok {
					return
				}
				if !isWatcherRestart(sig) {
					continue
				}
				log.Debug().Msg("tray watcher gained a new owner")
				select {
				case restarts <- struct{}{}:
				default:
				}
			}
		}
	}()

	return restarts, nil
}

// Close releases the bus name and every exported object. Safe to call twice.
func (r *Registration) Close() error {
	r.closeOnce.Do(func() {
		r.closeErr = r.conn.Close()
	})
	return r.closeErr
}

// isWatcherRestart reports whether sig is a NameOwnerChanged for the watcher
// with a non-empty new owner.
func isWatcherRestart(sig *dbus.Signal) bool {
	if sig == nil || sig.Name != nameOwnerSignal || len(sig.Body) != 3 {
		return false
	}
	name, _ := sig.Body[0].(string)
	newOwner, _ := sig.Body[2].(string)
	return name == watcherName && newOwner != ""
}
