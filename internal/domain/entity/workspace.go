package entity

import "strings"

// Workspace identifies a compositor workspace.
// Negative IDs denote special (hidden) workspaces such as the minimized holding area.
type Workspace struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// IsSpecial reports whether the workspace is an off-screen special workspace.
func (w Workspace) IsSpecial() bool {
	return w.ID < 0 || strings.HasPrefix(w.Name, "special:")
}
