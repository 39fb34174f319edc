package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/tock-cli/internal/config"
)

// LauncherItem is one entry in the start menu. An item with a non-empty
// Prompt asks for a text value after being selected.
type LauncherItem struct {
	Label       string
	Desc        string
	Prompt      string
	Placeholder string
}

// LauncherResult reports what the user picked. Value carries the prompt
// answer for items that asked for one; empty means the default applies.
type LauncherResult struct {
	Choice  int
	Value   string
	Aborted bool
}

const (
	phaseMenu = iota
	phasePrompt
)

// launcherModel walks two phases: the menu, and an optional text prompt
// for the selected item. Esc in the prompt returns to the menu rather
// than aborting.
type launcherModel struct {
	title   string
	items   []LauncherItem
	symbol  rune
	theme   config.ThemeConfig
	phase   int
	cursor  int
	input   textinput.Model
	done    bool
	aborted bool
}

func newLauncherModel(title string, items []LauncherItem, symbol rune, theme config.ThemeConfig) launcherModel {
	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 24

	return launcherModel{
		title:  title,
		items:  items,
		symbol: symbol,
		theme:  theme,
		input:  ti,
	}
}

func (m launcherModel) Init() tea.Cmd { return nil }

func (m launcherModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if m.phase == phaseMenu {
			return m.updateMenu(key)
		}
		return m.updatePrompt(key)
	}

	// Non-key messages keep the prompt cursor blinking.
	if m.phase == phasePrompt {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m launcherModel) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		if m.items[m.cursor].Prompt == "" {
			m.done = true
			return m, tea.Quit
		}
		m.phase = phasePrompt
		m.input.Placeholder = m.items[m.cursor].Placeholder
		m.input.SetValue("")
		return m, m.input.Focus()
	case "q", "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m launcherModel) updatePrompt(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		m.done = true
		return m, tea.Quit
	case "esc":
		m.phase = phaseMenu
		m.input.Blur()
		return m, nil
	case "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m launcherModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorRunning))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render(m.title) + "\n\n")

	if m.phase == phasePrompt {
		item := m.items[m.cursor]
		b.WriteString("  " + activeStyle.Render(item.Prompt) + " " + m.input.View() + "\n\n")
		b.WriteString(dimStyle.Render("  enter start · esc back") + "\n")
		return b.String()
	}

	for i, item := range m.items {
		line := fmt.Sprintf("%-10s %s", item.Label, item.Desc)
		if i == m.cursor {
			b.WriteString("  " + activeStyle.Render(string(m.symbol)) + " " + activeStyle.Render(line) + "\n")
		} else {
			b.WriteString("    " + dimStyle.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + dimStyle.Render("  ↑/↓ move · enter select · q quit") + "\n")
	return b.String()
}

// RunLauncher shows the start menu and blocks until a choice is made or
// the menu is dismissed. The symbol is drawn as the selection cursor, so
// the menu previews the configured digit style.
func RunLauncher(title string, items []LauncherItem, symbol rune, theme *config.ThemeConfig) LauncherResult {
	m := newLauncherModel(title, items, symbol, resolveTheme(theme))

	p := tea.NewProgram(m)
	out, err := p.Run()
	if err != nil {
		return LauncherResult{Aborted: true}
	}

	final := out.(launcherModel)
	if final.aborted {
		return LauncherResult{Aborted: true}
	}
	return LauncherResult{Choice: final.cursor, Value: strings.TrimSpace(final.input.Value())}
}
