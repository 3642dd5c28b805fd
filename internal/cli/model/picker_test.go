package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hyprminimizer/internal/cli/styles"
)

func update(t *testing.T, m PickerModel, msg tea.Msg) (PickerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(PickerModel)
	require.True(t, ok)
	return pm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

var testChoices = []string{"Firefox (0x1)", "kitty (0x2)", "Files (0x3)"}

func TestPicker_EnterSelectsFirst(t *testing.T) {
	m := NewPickerModel(styles.NewTheme(), testChoices)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, isQuit(cmd))
	assert.Equal(t, "Firefox (0x1)", m.Selected())
}

func TestPicker_DownThenEnter(t *testing.T) {
	m := NewPickerModel(styles.NewTheme(), testChoices)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "kitty (0x2)", m.Selected())
}

func TestPicker_FilterNarrowsChoices(t *testing.T) {
	m := NewPickerModel(styles.NewTheme(), testChoices)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("0x3")})
	assert.Len(t, m.list.Items(), 1)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Files (0x3)", m.Selected())
}

func TestPicker_EnterWithNoMatchSelectsNothing(t *testing.T) {
	m := NewPickerModel(styles.NewTheme(), testChoices)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zzz")})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, isQuit(cmd))
	assert.Empty(t, m.Selected())
	assert.Contains(t, m.View(), "No matching windows")
}

func TestPicker_EscapeCancels(t *testing.T) {
	m := NewPickerModel(styles.NewTheme(), testChoices)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, isQuit(cmd))
	assert.Empty(t, m.Selected())
}

func TestPicker_ResizeKeepsChoices(t *testing.T) {
	m := NewPickerModel(styles.NewTheme(), testChoices)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Len(t, m.list.Items(), len(testChoices))
	assert.Contains(t, m.View(), "kitty (0x2)")
}

func TestPicker_SelectWithoutChoices(t *testing.T) {
	got, err := NewPicker(styles.NewTheme()).Select(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}
