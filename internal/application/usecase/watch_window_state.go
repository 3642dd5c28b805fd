package usecase

import (
	"context"
	"time"

	"github.com/bnema/hyprminimizer/internal/application/port"
	"github.com/bnema/hyprminimizer/internal/domain/entity"
	"github.com/bnema/hyprminimizer/internal/logging"
)

// DefaultPollInterval is used when no positive interval is configured.
const DefaultPollInterval = 2 * time.Second

// WindowStatePoller re-queries the client list on a fixed interval until the
// tracked window leaves the special workspace or disappears.
type WindowStatePoller struct {
	compositor port.Compositor
	interval   time.Duration
}

var _ port.WindowStateWatcher = (*WindowStatePoller)(nil)

func NewWindowStatePoller(compositor port.Compositor, interval time.Duration) *WindowStatePoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &WindowStatePoller{compositor: compositor, interval: interval}
}

func (p *WindowStatePoller) Watch(ctx context.Context, address string) (entity.WindowStateChange, error) {
	log := logging.FromContext(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}

		clients, err := p.compositor.Clients(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			log.Warn().Err(err).Msg("window list unavailable, giving up on session")
			return entity.WindowUnobservable, nil
		}

		window, ok := entity.FindWindow(clients, address)
		if !ok {
			return entity.WindowClosed, nil
		}
		if !window.IsMinimized() {
			return entity.WindowRestored, nil
		}
	}
}
