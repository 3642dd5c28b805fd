package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/hyprminimizer/internal/application/port"
	"github.com/bnema/hyprminimizer/internal/domain/dispatch"
	"github.com/bnema/hyprminimizer/internal/domain/entity"
	"github.com/bnema/hyprminimizer/internal/domain/repository"
	"github.com/bnema/hyprminimizer/internal/logging"
)

// RestoreOutcome tells the caller what a restore attempt did.
type RestoreOutcome string

const (
	// RestoreNothing means the stack was empty.
	RestoreNothing RestoreOutcome = "nothing"
	// RestoreStale means the popped window was already closed or restored.
	RestoreStale RestoreOutcome = "stale"
	// RestoreDone means the window was brought back.
	RestoreDone RestoreOutcome = "restored"
)

type RestoreWindowUseCase struct {
	stack      repository.WindowStackRepository
	compositor port.Compositor
}

func NewRestoreWindowUseCase(stack repository.WindowStackRepository, compositor port.Compositor) *RestoreWindowUseCase {
	return &RestoreWindowUseCase{stack: stack, compositor: compositor}
}

type RestoreLastInput struct {
	Target entity.RestoreTarget
}

type RestoreOutput struct {
	Outcome RestoreOutcome
	Address string
	// WorkspaceID is the workspace the window was moved to. Only set when Moved is true.
	WorkspaceID int
	Moved       bool
}

// RestoreLast pops the most recently minimized window and brings it back.
// A popped entry is never re-queued, even when the window turned out stale.
//
// With RestoreTargetOriginal the window is only focused: it never left its
// origin workspace from the compositor's point of view.
func (uc *RestoreWindowUseCase) RestoreLast(ctx context.Context, input RestoreLastInput) (*RestoreOutput, error) {
	log := logging.FromContext(ctx)

	target := input.Target
	if target == "" {
		target = entity.RestoreTargetActive
	}

	address, ok, err := uc.stack.Pop(ctx)
	if err != nil {
		return nil, fmt.Errorf("pop window: %w", err)
	}
	if !ok {
		log.Debug().Msg("stack empty")
		return &RestoreOutput{Outcome: RestoreNothing}, nil
	}

	ctx = logging.WithWindow(ctx, address)
	log = logging.FromContext(ctx)

	clients, err := uc.compositor.Clients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list windows: %w", err)
	}
	window, found := entity.FindWindow(clients, address)
	if !found || !window.IsMinimized() {
		log.Info().Bool("exists", found).Msg("window no longer minimized, dropping stack entry")
		return &RestoreOutput{Outcome: RestoreStale, Address: address}, nil
	}

	out := &RestoreOutput{Outcome: RestoreDone, Address: address}
	if target == entity.RestoreTargetActive {
		ws, err := uc.compositor.ActiveWorkspace(ctx)
		if err != nil {
			return nil, fmt.Errorf("get active workspace: %w", err)
		}
		if err := uc.compositor.Dispatch(ctx, dispatch.MoveToWorkspace(ws.ID, address)); err != nil {
			return nil, fmt.Errorf("move window: %w", err)
		}
		out.WorkspaceID = ws.ID
		out.Moved = true
	}

	if err := uc.compositor.Dispatch(ctx, dispatch.FocusWindow(address)); err != nil {
		return nil, fmt.Errorf("focus window: %w", err)
	}

	log.Info().Str("target", string(target)).Msg("window restored")
	return out, nil
}

// RestoreAddress moves a chosen window to the active workspace, focuses it and
// drops it from the stack.
func (uc *RestoreWindowUseCase) RestoreAddress(ctx context.Context, address string) (*RestoreOutput, error) {
	ctx = logging.WithWindow(ctx, address)
	log := logging.FromContext(ctx)

	ws, err := uc.compositor.ActiveWorkspace(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active workspace: %w", err)
	}
	if err := uc.compositor.Dispatch(ctx, dispatch.MoveToWorkspace(ws.ID, address)); err != nil {
		return nil, fmt.Errorf("move window: %w", err)
	}
	if err := uc.compositor.Dispatch(ctx, dispatch.FocusWindow(address)); err != nil {
		return nil, fmt.Errorf("focus window: %w", err)
	}

	if err := uc.stack.Remove(ctx, address); err != nil {
		log.Error().Err(err).Msg("failed to remove window from stack")
	}

	log.Info().Int("workspace", ws.ID).Msg("window restored")
	return &RestoreOutput{Outcome: RestoreDone, Address: address, WorkspaceID: ws.ID, Moved: true}, nil
}
