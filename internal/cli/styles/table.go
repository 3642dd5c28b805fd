package styles

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/hyprminimizer/internal/domain/entity"
)

// NewStyledTable creates a themed, unfocused table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	// No row is selected in static output.
	s.Selected = s.Cell.Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// WindowTableColumns returns columns for the minimized window table.
func WindowTableColumns() []table.Column {
	return []table.Column{
		{Title: "Address", Width: 16},
		{Title: "Class", Width: 20},
		{Title: "Title", Width: 48},
		{Title: "Workspace", Width: 22},
	}
}

// WindowRow converts a window to a table row.
func WindowRow(w entity.Window) table.Row {
	ws := w.Workspace.Name
	if ws == "" {
		ws = strconv.Itoa(w.Workspace.ID)
	}
	return table.Row{w.Address, w.Class, w.Title, ws}
}

// RenderWindowTable renders windows as a static table.
func RenderWindowTable(theme *Theme, windows []entity.Window) string {
	rows := make([]table.Row, len(windows))
	for i, w := range windows {
		rows[i] = WindowRow(w)
	}
	return NewStyledTable(theme, WindowTableColumns(), rows).View()
}
