package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/hyprminimizer/internal/application/port"
	"github.com/bnema/hyprminimizer/internal/application/usecase"
	"github.com/bnema/hyprminimizer/internal/cli"
)

var menuInteractive bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Choose a minimized window to restore",
	Long: `List minimized windows in a dmenu-style launcher and restore the chosen one
to the current workspace.

The launcher command comes from the launcher setting (or --launcher) and
receives one "Title (address)" line per window on stdin.

Examples:
  hyprminimizer menu                          # Use the configured launcher
  hyprminimizer menu --launcher "rofi -dmenu" # Use rofi for this run
  hyprminimizer menu --interactive            # Pick in the terminal`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
	menuCmd.Flags().BoolVarP(&menuInteractive, "interactive", "i", false, "use the built-in terminal picker")
}

func runMenu(_ *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}
	return restoreFromMenu(a, a.Launcher(menuInteractive))
}

func restoreFromMenu(a *cli.App, launcher port.Launcher) error {
	res, err := a.MenuUC.Run(a.Ctx(), launcher)
	if err != nil {
		return fmt.Errorf("menu: %w", err)
	}

	switch res.Outcome {
	case usecase.MenuNoWindows:
		a.Println(a.Theme.Info("No windows to restore."))
	case usecase.MenuNoSelection:
		a.Println(a.Theme.Info("No window selected."))
	case usecase.MenuInvalidSelection:
		a.Println(a.Theme.Info("No window selected or selection was invalid."))
	case usecase.MenuRestored:
		a.Println(a.Theme.Success("Restored window: " + res.Window.DisplayTitle()))
	}
	return nil
}
