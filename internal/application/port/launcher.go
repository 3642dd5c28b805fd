package port

import "context"

// Launcher presents a list of choices through an external dmenu-style program.
type Launcher interface {
	// Select returns the chosen line, or "" when the user dismissed the launcher.
	Select(ctx context.Context, choices []string) (string, error)
}
