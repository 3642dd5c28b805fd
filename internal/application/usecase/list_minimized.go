package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/hyprminimizer/internal/application/port"
	"github.com/bnema/hyprminimizer/internal/domain/entity"
	"github.com/bnema/hyprminimizer/internal/domain/repository"
)

type ListMinimizedUseCase struct {
	stack      repository.WindowStackRepository
	compositor port.Compositor
}

func NewListMinimizedUseCase(stack repository.WindowStackRepository, compositor port.Compositor) *ListMinimizedUseCase {
	return &ListMinimizedUseCase{stack: stack, compositor: compositor}
}

// List returns the stacked windows that are still minimized, most recent first.
// Stale entries and duplicates are skipped but left in the stack.
func (uc *ListMinimizedUseCase) List(ctx context.Context) ([]entity.Window, error) {
	entries, err := uc.stack.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("read stack: %w", err)
	}
	if len(entries) == 0 {
		return []entity.Window{}, nil
	}

	clients, err := uc.compositor.Clients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list windows: %w", err)
	}

	seen := make(map[string]struct{}, len(entries))
	windows := make([]entity.Window, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		address := entries[i]
		if _, dup := seen[address]; dup {
			continue
		}
		seen[address] = struct{}{}

		window, ok := entity.FindWindow(clients, address)
		if !ok || !window.IsMinimized() {
			continue
		}
		windows = append(windows, window)
	}
	return windows, nil
}
