package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/bnema/hyprminimizer/internal/cli/cmd"
	"github.com/bnema/hyprminimizer/internal/domain/build"
	"github.com/bnema/hyprminimizer/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	// Ctrl+C cancels the context: a running minimize moves its window back.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Used until the config is loaded and the app installs its own logger.
	ctx = logging.WithContext(ctx, logging.NewFromEnv())

	cmd.Execute(ctx)
}
