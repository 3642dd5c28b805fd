package entity

// WindowStateChange describes why a minimized window stopped being minimized
// from the point of view of a running tray session.
type WindowStateChange string

const (
	// WindowClosed means the window no longer exists.
	WindowClosed WindowStateChange = "closed"
	// WindowRestored means the window is back on a regular workspace.
	WindowRestored WindowStateChange = "restored"
	// WindowUnobservable means the compositor could not be queried anymore.
	WindowUnobservable WindowStateChange = "unobservable"
)
