// Package hyprland talks to the Hyprland compositor through hyprctl.
package hyprland

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

const defaultBinary = "hyprctl"

// Executor runs raw hyprctl invocations. It exists so tests can replace the subprocess.
type Executor interface {
	// Query runs `hyprctl -j <command>` and returns stdout.
	Query(ctx context.Context, command string) ([]byte, error)
	// Dispatch runs `hyprctl dispatch <command>` and returns stdout.
	Dispatch(ctx context.Context, command string) ([]byte, error)
}

// HyprctlExecutor runs the hyprctl binary.
type HyprctlExecutor struct {
	binary string
}

func NewHyprctlExecutor() *HyprctlExecutor {
	return &HyprctlExecutor{binary: defaultBinary}
}

func (e *HyprctlExecutor) Query(ctx context.Context, command string) ([]byte, error) {
	return e.run(ctx, "-j", command)
}

func (e *HyprctlExecutor) Dispatch(ctx context.Context, command string) ([]byte, error) {
	// hyprctl expects the dispatcher and its argument as separate words.
	args := append([]string{"dispatch"}, strings.Fields(command)...)
	return e.run(ctx, args...)
}

func (e *HyprctlExecutor) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, e.binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("%s %s: %w: %s", e.binary, strings.Join(args, " "), err, msg)
		}
		return nil, fmt.Errorf("%s %s: %w", e.binary, strings.Join(args, " "), err)
	}
	return out, nil
}
