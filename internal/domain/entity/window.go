package entity

// Window is a snapshot of a compositor-managed window.
// It is taken once when a session starts and is not refreshed implicitly.
type Window struct {
	Address   string    `json:"address" yaml:"address"`
	Class     string    `json:"class" yaml:"class"`
	Title     string    `json:"title" yaml:"title"`
	Workspace Workspace `json:"workspace" yaml:"workspace"`
}

// IsMinimized reports whether the window currently sits on a special workspace.
func (w Window) IsMinimized() bool {
	return w.Workspace.ID < 0
}

// DisplayTitle returns the title, falling back to the class for untitled windows.
func (w Window) DisplayTitle() string {
	if w.Title != "" {
		return w.Title
	}
	return w.Class
}

// FindWindow returns the window with the given address from a client list.
func FindWindow(windows []Window, address string) (Window, bool) {
	for _, w := range windows {
		if w.Address == address {
			return w, true
		}
	}
	return Window{}, false
}
