package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/hyprminimizer/internal/cli"
	"github.com/bnema/hyprminimizer/internal/cli/output"
	"github.com/bnema/hyprminimizer/internal/logging"
)

var statusFollow bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print minimized windows as waybar JSON",
	Long: `Print a waybar custom module payload: {"text","tooltip","class","count"}.

With --follow a new line is printed every time the stack file changes.

Waybar example:
  "custom/minimized": {
    "exec": "hyprminimizer status --follow",
    "return-type": "json",
    "on-click": "hyprminimizer menu"
  }`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVarP(&statusFollow, "follow", "F", false, "keep running and print on every change")
}

func runStatus(_ *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}
	if statusFollow {
		return followStatus(a.Ctx(), a)
	}
	return writeStatus(a)
}

func writeStatus(a *cli.App) error {
	windows, err := a.ListUC.List(a.Ctx())
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}
	return output.WriteJSON(a.Out, output.NewStatus(windows), false)
}

// followStatus prints the status now and after each stack change until ctx ends.
func followStatus(ctx context.Context, a *cli.App) error {
	log := logging.FromContext(ctx)

	changes, err := a.Stack.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch stack: %w", err)
	}
	if err := writeStatus(a); err != nil {
		return err
	}

	for range changes {
		if err := writeStatus(a); err != nil {
			log.Warn().Err(err).Msg("status refresh failed")
		}
	}
	return nil
}
