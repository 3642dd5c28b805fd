// Package dispatch builds the one-shot compositor commands used to move,
// focus and close windows.
package dispatch

import "fmt"

// MinimizedWorkspace is the special workspace used as the holding area for minimized windows.
const MinimizedWorkspace = "special:minimized"

// MoveToWorkspaceSilent moves a window to a named workspace without following it.
func MoveToWorkspaceSilent(workspace, address string) string {
	return fmt.Sprintf("movetoworkspacesilent %s,address:%s", workspace, address)
}

// Minimize moves a window to the minimized holding workspace.
func Minimize(address string) string {
	return MoveToWorkspaceSilent(MinimizedWorkspace, address)
}

// MoveToWorkspace moves a window to a workspace by numeric ID.
func MoveToWorkspace(workspaceID int, address string) string {
	return fmt.Sprintf("movetoworkspace %d,address:%s", workspaceID, address)
}

// FocusWindow focuses a window.
func FocusWindow(address string) string {
	return "focuswindow address:" + address
}

// CloseWindow asks the window to close.
func CloseWindow(address string) string {
	return "closewindow address:" + address
}
