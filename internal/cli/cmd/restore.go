package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/hyprminimizer/internal/application/usecase"
	"github.com/bnema/hyprminimizer/internal/cli"
)

var restoreCmd = &cobra.Command{
	Use:   "restore [address]",
	Short: "Restore the last minimized window",
	Long: `Restore the most recently minimized window, or the given one.

The last window goes to the target set by restore_to (or --restore-to):
  active    move it to the current workspace and focus it
  original  focus it without moving it

A window given by address always comes to the current workspace.

Examples:
  hyprminimizer restore                        # Restore the last window
  hyprminimizer restore --restore-to original  # Only focus it
  hyprminimizer restore 0x55d1c2a0             # Restore a specific window`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(_ *cobra.Command, args []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}
	if len(args) == 1 {
		return restoreAddress(a, args[0])
	}
	return restoreLast(a)
}

func restoreLast(a *cli.App) error {
	res, err := a.RestoreUC.RestoreLast(a.Ctx(), usecase.RestoreLastInput{Target: a.Config.RestoreTo})
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	switch res.Outcome {
	case usecase.RestoreNothing:
		a.Println(a.Theme.Info("No minimized windows in the stack to restore."))
	case usecase.RestoreStale:
		a.Println(a.Theme.Info(fmt.Sprintf("Window %s no longer exists or is not minimized. Stack is clean.", res.Address)))
	case usecase.RestoreDone:
		if res.Moved {
			a.Println(a.Theme.Success(fmt.Sprintf("Window %s restored to workspace %d.", res.Address, res.WorkspaceID)))
		} else {
			a.Println(a.Theme.Success(fmt.Sprintf("Window %s focused.", res.Address)))
		}
	}
	return nil
}

func restoreAddress(a *cli.App, address string) error {
	res, err := a.RestoreUC.RestoreAddress(a.Ctx(), address)
	if err != nil {
		return fmt.Errorf("restore %s: %w", address, err)
	}
	a.Println(a.Theme.Success(fmt.Sprintf("Window %s restored to workspace %d.", res.Address, res.WorkspaceID)))
	return nil
}
