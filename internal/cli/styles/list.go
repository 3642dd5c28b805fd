package styles

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ChoiceItem is one launcher choice rendered in the picker.
type ChoiceItem struct {
	Label string
}

// FilterValue implements list.Item.
func (i ChoiceItem) FilterValue() string {
	return i.Label
}

// ChoiceDelegate renders picker choices with theme styling.
type ChoiceDelegate struct {
	Theme *Theme
}

// Height returns the height of each item.
func (d ChoiceDelegate) Height() int { return 1 }

// Spacing returns the spacing between items.
func (d ChoiceDelegate) Spacing() int { return 0 }

// Update handles item-level events.
func (d ChoiceDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single list item.
func (d ChoiceDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ci, ok := item.(ChoiceItem)
	if !ok {
		return
	}

	t := d.Theme
	const (
		maxLabelLength = 80
		ellipsisLength = 3
	)

	label := ci.Label
	if len(label) > maxLabelLength {
		label = label[:maxLabelLength-ellipsisLength] + "..."
	}

	cursor := cursorEmpty
	style := t.ListItemTitle
	if index == m.Index() {
		cursor = cursorSelected
		style = style.Foreground(t.Accent).Bold(true)
	}

	_, _ = fmt.Fprint(w, lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(cursor),
		style.Render(label),
	))
}

// NewChoiceList creates a themed list for picker choices.
func NewChoiceList(theme *Theme, choices []string, width, height int) list.Model {
	items := make([]list.Item, len(choices))
	for i, c := range choices {
		items[i] = ChoiceItem{Label: c}
	}

	l := list.New(items, ChoiceDelegate{Theme: theme}, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)

	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	l.Styles.ActivePaginationDot = lipgloss.NewStyle().Foreground(theme.Accent)
	l.Styles.InactivePaginationDot = lipgloss.NewStyle().Foreground(theme.Muted)

	return l
}

// FilterChoices returns the choices containing query, case-insensitively.
func FilterChoices(choices []string, query string) []string {
	if query == "" {
		return choices
	}
	query = strings.ToLower(query)
	filtered := make([]string, 0, len(choices))
	for _, c := range choices {
		if strings.Contains(strings.ToLower(c), query) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
