// Package cmd provides Cobra CLI commands for hyprminimizer.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/hyprminimizer/internal/cli"
	"github.com/bnema/hyprminimizer/internal/domain/build"
	"github.com/bnema/hyprminimizer/internal/infrastructure/config"
)

var (
	app       *cli.App
	appDeps   cli.Deps
	buildInfo build.Info

	configFile         string
	restoreLastFlag    bool
	menuFlag           bool
	generateConfigFlag bool

	rootCmd = &cobra.Command{
		Use:   "hyprminimizer [address]",
		Short: "Minimize Hyprland windows to the system tray",
		Long: `hyprminimizer hides a Hyprland window on a special workspace and shows a
tray icon for it. Clicking the icon brings the window back to the current
workspace, the icon menu can also restore it to its original workspace or
close it. Every minimized window gets its own process and icon.

Without arguments the focused window is minimized. Pass a window address
(as printed by 'hyprctl clients') to minimize another one.

Examples:
  hyprminimizer                  # Minimize the focused window
  hyprminimizer 0x55d1c2a0       # Minimize a window by address
  hyprminimizer -r               # Restore the last minimized window
  hyprminimizer -m               # Pick a window to restore with the launcher`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runRoot,
	}
)

// flagBindings maps persistent flags to the config keys they override.
var flagBindings = map[string]string{
	"launcher":      "launcher",
	"restore-to":    "restore_to",
	"poll-interval": "poll_interval_seconds",
}

func init() {
	// Assigned here: initApp refers back to rootCmd.
	rootCmd.PersistentPreRunE = initApp

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/hyprminimizer/config.toml)")
	pf.String("launcher", "", "dmenu-style launcher command for the menu")
	pf.String("restore-to", "", "where restore puts the window: active or original")
	pf.Int("poll-interval", 0, "seconds between checks of a minimized window")

	f := rootCmd.Flags()
	f.BoolVarP(&restoreLastFlag, "restore-last", "r", false, "restore the last minimized window")
	f.BoolVarP(&menuFlag, "menu", "m", false, "choose a minimized window to restore with the launcher")
	f.BoolVar(&generateConfigFlag, "generate-config-file", false, "write the default config file and exit")
	rootCmd.MarkFlagsMutuallyExclusive("restore-last", "menu", "generate-config-file")
}

// Execute runs the root command. ctx is cancelled on SIGINT/SIGTERM.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func initApp(cmd *cobra.Command, _ []string) error {
	// Skip initialization for commands that don't need app context
	switch cmd.Name() {
	case "help", "completion", "gen-docs", "version":
		return nil
	}
	if cmd.HasParent() && cmd.Parent().Name() == configCmd.Name() {
		return nil
	}
	if cmd == rootCmd && generateConfigFlag {
		return nil
	}

	mgr, err := newConfigManager()
	if err != nil {
		return err
	}
	for flag, key := range flagBindings {
		if err := mgr.BindFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind --%s: %w", flag, err)
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	app, err = cli.NewApp(ctx, mgr, appDeps)
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	app.BuildInfo = buildInfo
	return nil
}

func newConfigManager() (*config.Manager, error) {
	if configFile != "" {
		return config.NewManagerWithFile(configFile)
	}
	return config.NewManager()
}

func resolveConfigFile() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	return config.GetConfigFile()
}

func runRoot(cmd *cobra.Command, args []string) error {
	if generateConfigFlag {
		return writeDefaultConfig(cmd, nil)
	}
	if len(args) == 1 && (restoreLastFlag || menuFlag) {
		return errors.New("a window address cannot be combined with --restore-last or --menu")
	}

	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	switch {
	case menuFlag:
		return restoreFromMenu(a, a.Launcher(false))
	case restoreLastFlag:
		return restoreLast(a)
	default:
		address := ""
		if len(args) == 1 {
			address = args[0]
		}
		return minimize(a, address)
	}
}
