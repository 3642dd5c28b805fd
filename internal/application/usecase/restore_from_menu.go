package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/hyprminimizer/internal/application/port"
	"github.com/bnema/hyprminimizer/internal/domain/entity"
	"github.com/bnema/hyprminimizer/internal/logging"
)

// MenuOutcome tells the caller how a menu selection ended.
type MenuOutcome string

const (
	MenuNoWindows        MenuOutcome = "no_windows"
	MenuNoSelection      MenuOutcome = "no_selection"
	MenuInvalidSelection MenuOutcome = "invalid_selection"
	MenuRestored         MenuOutcome = "restored"
)

// RestoreFromMenuUseCase lets the user pick a minimized window through a launcher.
type RestoreFromMenuUseCase struct {
	lister   *ListMinimizedUseCase
	restorer *RestoreWindowUseCase
}

func NewRestoreFromMenuUseCase(lister *ListMinimizedUseCase, restorer *RestoreWindowUseCase) *RestoreFromMenuUseCase {
	return &RestoreFromMenuUseCase{lister: lister, restorer: restorer}
}

type RestoreFromMenuOutput struct {
	Outcome   MenuOutcome
	Selection string
	Window    entity.Window
}

// Run lists minimized windows, asks launcher for one and restores it.
func (uc *RestoreFromMenuUseCase) Run(ctx context.Context, launcher port.Launcher) (*RestoreFromMenuOutput, error) {
	log := logging.FromContext(ctx)

	windows, err := uc.lister.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return &RestoreFromMenuOutput{Outcome: MenuNoWindows}, nil
	}

	choices := make([]string, len(windows))
	for i, w := range windows {
		choices[i] = FormatMenuChoice(w)
	}

	selection, err := launcher.Select(ctx, choices)
	if err != nil {
		return nil, fmt.Errorf("run launcher: %w", err)
	}
	if selection == "" {
		return &RestoreFromMenuOutput{Outcome: MenuNoSelection}, nil
	}

	address, ok := ParseMenuChoice(selection)
	if !ok {
		log.Warn().Str("selection", selection).Msg("could not parse window address")
		return &RestoreFromMenuOutput{Outcome: MenuInvalidSelection, Selection: selection}, nil
	}
	window, found := entity.FindWindow(windows, address)
	if !found {
		return &RestoreFromMenuOutput{Outcome: MenuInvalidSelection, Selection: selection}, nil
	}

	if _, err := uc.restorer.RestoreAddress(ctx, window.Address); err != nil {
		return nil, err
	}
	return &RestoreFromMenuOutput{Outcome: MenuRestored, Selection: selection, Window: window}, nil
}

// FormatMenuChoice renders a window as a launcher line: "Title (address)".
func FormatMenuChoice(w entity.Window) string {
	return fmt.Sprintf("%s (%s)", w.DisplayTitle(), w.Address)
}

// ParseMenuChoice extracts the address from the last parenthesized group of a launcher line.
func ParseMenuChoice(selection string) (string, bool) {
	end := strings.LastIndex(selection, ")")
	if end < 0 {
		return "", false
	}
	start := strings.LastIndex(selection[:end], "(")
	if start < 0 {
		return "", false
	}
	address := strings.TrimSpace(selection[start+1 : end])
	return address, address != ""
}
