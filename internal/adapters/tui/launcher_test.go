package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLauncher() launcherModel {
	items := []LauncherItem{
		{Label: "Countdown", Desc: "Count down", Prompt: "Duration:", Placeholder: "10m for default"},
		{Label: "Stopwatch", Desc: "Count up"},
		{Label: "Config", Desc: "Edit defaults"},
	}
	return newLauncherModel("Tock:", items, '█', resolveTheme(nil))
}

func pressLauncher(t *testing.T, m launcherModel, msg tea.KeyMsg) (launcherModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(launcherModel)
	require.True(t, ok)
	return model, cmd
}

func TestLauncherCursorMoves(t *testing.T) {
	m := newTestLauncher()

	m, _ = pressLauncher(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)

	m, _ = pressLauncher(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 2, m.cursor)

	// The cursor stops at the last item.
	m, _ = pressLauncher(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.cursor)

	m, _ = pressLauncher(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.cursor)
}

func TestLauncherSelectsPlainItem(t *testing.T) {
	m := newTestLauncher()

	m, _ = pressLauncher(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := pressLauncher(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.done)
	assert.False(t, m.aborted)
	assert.Equal(t, 1, m.cursor)
	assert.NotNil(t, cmd, "selection must quit the program")
}

func TestLauncherPromptFlow(t *testing.T) {
	m := newTestLauncher()

	// Enter on the countdown item opens the prompt instead of finishing.
	m, _ = pressLauncher(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, phasePrompt, m.phase)
	assert.False(t, m.done)
	assert.Equal(t, "10m for default", m.input.Placeholder)

	// Typed runes land in the input.
	m, _ = pressLauncher(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5m")})
	assert.Equal(t, "5m", m.input.Value())

	m, _ = pressLauncher(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.done)
}

func TestLauncherPromptEscReturnsToMenu(t *testing.T) {
	m := newTestLauncher()

	m, _ = pressLauncher(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, phasePrompt, m.phase)

	m, _ = pressLauncher(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, phaseMenu, m.phase)
	assert.False(t, m.aborted, "esc in the prompt backs out, not aborts")
}

func TestLauncherMenuAborts(t *testing.T) {
	m := newTestLauncher()

	m, cmd := pressLauncher(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.True(t, m.aborted)
	assert.NotNil(t, cmd)
}

func TestLauncherViewShowsCursorSymbol(t *testing.T) {
	m := newTestLauncher()

	view := m.View()
	assert.Contains(t, view, "Tock:")
	assert.Contains(t, view, "█", "the style glyph marks the selection")
	assert.Contains(t, view, "Countdown")
	assert.Contains(t, view, "enter select")
}
