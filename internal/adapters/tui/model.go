// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/xvierd/tock-cli/internal/config"
	"github.com/xvierd/tock-cli/internal/domain"
	"github.com/xvierd/tock-cli/internal/ports"
)

// Compile-time checks that both clock variants satisfy the driving port.
var (
	_ ports.Clock            = (*domain.Countdown)(nil)
	_ ports.Clock            = (*domain.Timer)(nil)
	_ ports.ProgressReporter = (*domain.Countdown)(nil)
)

// defaultTickInterval matches the clock's decisecond resolution.
const defaultTickInterval = 100 * time.Millisecond

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// tickMsg is sent on every clock tick.
type tickMsg time.Time

// Options configures a new TUI model.
type Options struct {
	// Title is shown above the clock.
	Title string
	// Theme overrides the default colors; nil uses defaults.
	Theme *config.ThemeConfig
	// TickInterval is how often the clock ticks; zero means the
	// decisecond default. The clock's tick value should match.
	TickInterval time.Duration
	// OnDone fires once when the clock transitions into its done state.
	OnDone func()
}

// Model represents the TUI state.
type Model struct {
	clock       ports.Clock
	widget      ClockWidget
	title       string
	theme       config.ThemeConfig
	progress    progress.Model
	hasProgress bool
	onDone      func()
	notified    bool
	tickEvery   time.Duration
	width       int
	height      int
	quitting    bool
}

// NewModel creates a new TUI model for the given clock.
func NewModel(clock ports.Clock, opts Options) Model {
	theme := resolveTheme(opts.Theme)
	interval := opts.TickInterval
	if interval <= 0 {
		interval = defaultTickInterval
	}

	_, hasProgress := clock.(ports.ProgressReporter)

	width, height := getTerminalSize()
	return Model{
		clock:       clock,
		title:       opts.Title,
		theme:       theme,
		progress:    progress.New(progress.WithGradient(theme.GradientStart, theme.GradientEnd)),
		hasProgress: hasProgress,
		onDone:      opts.OnDone,
		tickEvery:   interval,
		width:       width,
		height:      height,
	}
}

// getTerminalSize returns the terminal dimensions before the first
// WindowSizeMsg arrives, defaulting to 80x24.
func getTerminalSize() (int, int) {
	w, h, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ":
			m.clock.TogglePause()
		case "e":
			m.clock.ToggleEdit()
		case "left", "h":
			m.clock.EditPrev()
		case "right", "l":
			m.clock.EditNext()
		case "up", "k":
			m.clock.EditUp()
		case "down", "j":
			m.clock.EditDown()
		case "r":
			m.clock.Reset()
			m.notified = false
		case "s":
			m.clock.SetStyle(m.clock.Style().Next())
		case "d":
			m.clock.SetWithDecis(!m.clock.WithDecis())
		}
		return m, nil

	case tickMsg:
		wasDone := m.clock.IsDone()
		m.clock.Tick()
		switch {
		case !wasDone && m.clock.IsDone() && !m.notified:
			m.notified = true
			if m.onDone != nil {
				m.onDone()
			}
		case !m.clock.IsDone():
			// Re-arm once the clock is edited or reset away from done.
			m.notified = false
		}
		return m, m.tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the full-screen clock.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle)).MarginBottom(1)
	sections = append(sections, titleStyle.Render(fmt.Sprintf("%s %s", m.theme.IconApp, m.title)))

	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorPaused))
	sections = append(sections, statusStyle.Render(m.clock.Mode().String()))
	sections = append(sections, "")

	clockStyle := lipgloss.NewStyle().Foreground(m.clockColor())
	clockWidth := m.widget.Width(m.clock.Format(), m.clock.WithDecis())

	if clockWidth <= m.width {
		buf := NewBuffer(m.width, m.widget.Height())
		m.widget.Render(m.clock, Rect{Width: m.width, Height: m.widget.Height()}, buf)
		for _, line := range buf.Lines() {
			sections = append(sections, clockStyle.Render(line))
		}
	} else {
		// Not enough columns for block digits
		sections = append(sections, clockStyle.Render(m.plainValue()))
	}

	if m.hasProgress {
		if pr, ok := m.clock.(ports.ProgressReporter); ok && !m.clock.InitialValue().IsZero() {
			bar := m.progress
			bar.Width = min(clockWidth, m.width-4)
			if bar.Width > 0 {
				sections = append(sections, "")
				sections = append(sections, bar.ViewAs(float64(pr.PercentDone())/100))
			}
		}
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	help := "[space] run/pause  [e]dit  [r]eset  [s]tyle  [d]ecis  [q]uit"
	if m.clock.IsEditMode() {
		help = "←/→ field  ↑/↓ adjust  [e] done editing  [q]uit"
	}
	sections = append(sections, "")
	sections = append(sections, helpStyle.Render(help))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// clockColor picks the digit color for the clock's state.
func (m Model) clockColor() lipgloss.Color {
	switch {
	case m.clock.IsEditMode():
		return lipgloss.Color(m.theme.ColorEdit)
	case m.clock.IsDone():
		return lipgloss.Color(m.theme.ColorDone)
	case m.clock.IsRunning():
		return lipgloss.Color(m.theme.ColorRunning)
	default:
		return lipgloss.Color(m.theme.ColorPaused)
	}
}

// plainValue renders the clock value as text for narrow terminals.
func (m Model) plainValue() string {
	v := m.clock.CurrentValue()
	if m.clock.WithDecis() {
		return fmt.Sprintf("%s.%d", v, v.Decis())
	}
	return v.String()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tickEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
