package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/hyprminimizer/internal/domain/entity"
)

// Status classes understood by bar stylesheets.
const (
	StatusClassEmpty     = "empty"
	StatusClassMinimized = "minimized"
)

// Status is a waybar custom module payload.
type Status struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip"`
	Class   string `json:"class"`
	Count   int    `json:"count"`
}

// NewStatus describes the minimized windows, most recent first.
func NewStatus(windows []entity.Window) Status {
	if len(windows) == 0 {
		return Status{Text: "", Tooltip: "No minimized windows", Class: StatusClassEmpty}
	}

	lines := make([]string, len(windows))
	for i, w := range windows {
		lines[i] = fmt.Sprintf("%s (%s)", w.DisplayTitle(), w.Address)
	}
	return Status{
		Text:    strconv.Itoa(len(windows)),
		Tooltip: strings.Join(lines, "\n"),
		Class:   StatusClassMinimized,
		Count:   len(windows),
	}
}
