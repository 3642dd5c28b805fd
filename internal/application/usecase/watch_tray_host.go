package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/hyprminimizer/internal/application/port"
	"github.com/bnema/hyprminimizer/internal/logging"
)

// DefaultRestartDelay gives a restarted tray host time to come up before we re-register.
const DefaultRestartDelay = 100 * time.Millisecond

// TrayHostMonitor keeps a published icon visible across tray host restarts.
// It never ends the session on its own.
type TrayHostMonitor struct {
	restartDelay time.Duration
}

func NewTrayHostMonitor(restartDelay time.Duration) *TrayHostMonitor {
	if restartDelay < 0 {
		restartDelay = DefaultRestartDelay
	}
	return &TrayHostMonitor{restartDelay: restartDelay}
}

// Run re-registers reg every time the watcher gains a new owner. It returns
// when ctx is done or the restart stream closes.
func (m *TrayHostMonitor) Run(ctx context.Context, reg port.TrayRegistration) error {
	log := logging.FromContext(ctx)

	restarts, err := reg.HostRestarts(ctx)
	if err != nil {
		return fmt.Errorf("subscribe to tray host restarts: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-restarts:
			if !ok {
				log.Debug().Msg("tray host restart stream closed")
				return nil
			}
		}

		timer := time.NewTimer(m.restartDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}

		if err := reg.Register(ctx); err != nil {
			log.Debug().Err(err).Msg("re-registration with tray host failed")
			continue
		}
		log.Info().Str("bus_name", reg.BusName()).Msg("re-registered with restarted tray host")
	}
}
