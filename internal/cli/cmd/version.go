package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/hyprminimizer/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), formatVersion(buildInfo))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func formatVersion(info build.Info) string {
	version := info.Version
	if version == "" {
		version = "dev"
	}
	s := fmt.Sprintf("hyprminimizer %s\n", version)
	if info.Commit != "" {
		s += fmt.Sprintf("  commit:  %s\n", info.Commit)
	}
	if info.BuildDate != "" {
		s += fmt.Sprintf("  built:   %s\n", info.BuildDate)
	}
	if info.GoVersion != "" {
		s += fmt.Sprintf("  go:      %s\n", info.GoVersion)
	}
	s += fmt.Sprintf("  repo:    %s\n", build.RepoURL())
	return s
}
