package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/hyprminimizer/internal/cli"
	"github.com/bnema/hyprminimizer/internal/cli/output"
	"github.com/bnema/hyprminimizer/internal/cli/styles"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List minimized windows",
	Long: `List windows that are still minimized, most recently minimized first.

Examples:
  hyprminimizer list                # Table
  hyprminimizer list --format json  # JSON array for scripts`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listFormat, "format", "f", string(output.FormatTable), "Output format: table, json, yaml")
}

func runList(_ *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}
	format, err := output.ParseFormat(listFormat)
	if err != nil {
		return err
	}
	return listWindows(a, format)
}

func listWindows(a *cli.App, format output.Format) error {
	windows, err := a.ListUC.List(a.Ctx())
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	switch format {
	case output.FormatJSON:
		return output.WriteJSON(a.Out, windows, true)
	case output.FormatYAML:
		return output.WriteYAML(a.Out, windows)
	default:
		if len(windows) == 0 {
			a.Println(a.Theme.Info("No minimized windows."))
			return nil
		}
		a.Println(a.Theme.AccentBadge(fmt.Sprintf("%d minimized", len(windows))))
		a.Println(styles.RenderWindowTable(a.Theme, windows))
		return nil
	}
}
