package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconInfo    = "\uf05a" // info
	IconWindow  = "\uf2d2" // window
	IconRestore = "\uf0e2" // rotate-left
)

const (
	cursorEmpty    = "  "
	cursorSelected = "\u25b8 " // black right-pointing small triangle
)
