// Package launcher runs a dmenu-style program (wofi, rofi, fuzzel, ...) to pick a line.
package launcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/hyprminimizer/internal/application/port"
	"github.com/bnema/hyprminimizer/internal/logging"
)

// Compile-time interface check.
var _ port.Launcher = (*Shell)(nil)

// Shell pipes choices to a launcher command run through `sh -c`.
type Shell struct {
	command string
}

func NewShell(command string) *Shell {
	return &Shell{command: command}
}

// Select writes one choice per line to the launcher and returns its trimmed
// output. A non-zero exit is how launchers report a dismissal and yields "".
func (s *Shell) Select(ctx context.Context, choices []string) (string, error) {
	log := logging.FromContext(ctx)

	if strings.TrimSpace(s.command) == "" {
		return "", errors.New("no launcher command configured")
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", s.command)
	cmd.Stdin = strings.NewReader(strings.Join(choices, "\n"))
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			log.Debug().Int("exit_code", exitErr.ExitCode()).Str("launcher", s.command).Msg("launcher dismissed")
			return "", nil
		}
		return "", fmt.Errorf("run launcher %q: %w", s.command, err)
	}

	selection := strings.TrimSpace(stdout.String())
	log.Debug().Str("launcher", s.command).Int("len", len(selection)).Msg("launcher selection")
	return selection, nil
}
