package model

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/hyprminimizer/internal/application/port"
	"github.com/bnema/hyprminimizer/internal/cli/styles"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 6 // search box + help
	minListHeight = 5
)

// PickerModel is the Bubble Tea model for the interactive window picker.
type PickerModel struct {
	list   list.Model
	search textinput.Model
	help   help.Model
	keys   styles.PickerKeyMap

	choices     []string
	selected    string
	searchQuery string
	width       int
	height      int

	theme *styles.Theme
}

// NewPickerModel creates a picker over the given choices.
func NewPickerModel(theme *styles.Theme, choices []string) PickerModel {
	search := styles.NewSearchInput(theme)
	search.Focus()

	m := PickerModel{
		search:  search,
		help:    styles.NewStyledHelp(theme),
		keys:    styles.DefaultPickerKeyMap(),
		choices: choices,
		theme:   theme,
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.updateList()
	return m
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateList()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Restore):
			if item, ok := m.list.SelectedItem().(styles.ChoiceItem); ok {
				m.selected = item.Label
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			cmds = append(cmds, cmd)

		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			cmds = append(cmds, cmd)

			if m.search.Value() != m.searchQuery {
				m.searchQuery = m.search.Value()
				m.updateList()
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *PickerModel) updateList() {
	listHeight := max(m.height-chromeHeight, minListHeight)
	m.list = styles.NewChoiceList(m.theme, styles.FilterChoices(m.choices, m.searchQuery), m.width, listHeight)
}

// View implements tea.Model.
func (m PickerModel) View() string {
	t := m.theme

	listView := m.list.View()
	if len(m.list.Items()) == 0 {
		listView = t.Subtle.Render("No matching windows")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		t.InputFocused.Render(m.search.View()),
		"",
		listView,
		"",
		m.help.View(m.keys),
	)
}

// Selected returns the chosen line, or "" if the picker was dismissed.
func (m PickerModel) Selected() string {
	return m.selected
}

// Ensure interface compliance.
var _ tea.Model = (*PickerModel)(nil)

// Picker is a terminal launcher that runs PickerModel.
type Picker struct {
	theme *styles.Theme
	opts  []tea.ProgramOption
}

var _ port.Launcher = (*Picker)(nil)

// NewPicker creates a terminal picker. Extra program options are appended to
// the defaults (alt screen, drawn on stderr).
func NewPicker(theme *styles.Theme, opts ...tea.ProgramOption) *Picker {
	return &Picker{theme: theme, opts: opts}
}

// Select runs the picker until the user chooses or dismisses.
func (p *Picker) Select(ctx context.Context, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", nil
	}

	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
	}, p.opts...)

	final, err := tea.NewProgram(NewPickerModel(p.theme, choices), opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("run picker: %w", err)
	}

	m, ok := final.(PickerModel)
	if !ok {
		return "", fmt.Errorf("unexpected picker model %T", final)
	}
	return m.Selected(), nil
}
