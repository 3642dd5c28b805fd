package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/hyprminimizer/internal/application/usecase"
	"github.com/bnema/hyprminimizer/internal/cli"
	"github.com/bnema/hyprminimizer/internal/domain/dispatch"
	"github.com/bnema/hyprminimizer/internal/domain/entity"
)

var minimizeCmd = &cobra.Command{
	Use:   "minimize [address]",
	Short: "Minimize a window to the tray",
	Long: `Move a window to the special:minimized workspace and show a tray icon for it.

The command keeps running until the window is restored or closed (from the
tray icon or elsewhere). Ctrl+C moves the window back before exiting.

Examples:
  hyprminimizer minimize              # Minimize the focused window
  hyprminimizer minimize 0x55d1c2a0   # Minimize a window by address`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMinimize,
}

func init() {
	rootCmd.AddCommand(minimizeCmd)
}

func runMinimize(_ *cobra.Command, args []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}
	address := ""
	if len(args) == 1 {
		address = args[0]
	}
	return minimize(a, address)
}

func minimize(a *cli.App, address string) error {
	out, err := a.MinimizeUC.Minimize(a.Ctx(), usecase.MinimizeInput{
		Address: address,
		OnMinimized: func(w entity.Window) {
			a.Println(a.Theme.Success(fmt.Sprintf("Minimized %s (%s) to tray. Waiting for activation...", w.DisplayTitle(), w.Address)))
		},
	})
	if err != nil {
		return fmt.Errorf("minimize: %w", err)
	}

	switch {
	case out.Interrupted && out.MovedBack:
		a.Println(a.Theme.Info("Interrupted, window moved back to workspace " + workspaceLabel(out.Window.Workspace) + "."))
	case out.Interrupted:
		a.Println(a.Theme.Failure(fmt.Sprintf("Interrupted, but window %s could not be moved back. It is still on %s.",
			out.Window.Address, dispatch.MinimizedWorkspace)))
	}
	return nil
}

func workspaceLabel(ws entity.Workspace) string {
	if ws.Name != "" {
		return ws.Name
	}
	return fmt.Sprintf("%d", ws.ID)
}
