package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xvierd/tock-cli/internal/adapters/tui"
	"github.com/xvierd/tock-cli/internal/config"
	"github.com/xvierd/tock-cli/internal/domain"
)

// driveUntil pumps the model's own tick commands through Update until stop
// returns true. Each round blocks for one real tick interval, so tests keep
// the configured durations short.
func driveUntil(t *testing.T, m tui.Model, stop func() bool, maxTicks int) tui.Model {
	t.Helper()

	cmd := m.Init()
	for i := 0; i < maxTicks && !stop(); i++ {
		if cmd == nil {
			t.Fatal("model stopped scheduling ticks")
		}
		msg := cmd()
		updated, next := m.Update(msg)
		model, ok := updated.(tui.Model)
		if !ok {
			t.Fatalf("Update returned %T, want tui.Model", updated)
		}
		m = model
		cmd = next
	}

	if !stop() {
		t.Fatalf("condition not reached after %d ticks", maxTicks)
	}
	return m
}

func pressKey(t *testing.T, m tui.Model, msg tea.KeyMsg) tui.Model {
	t.Helper()

	updated, _ := m.Update(msg)
	model, ok := updated.(tui.Model)
	if !ok {
		t.Fatalf("Update returned %T, want tui.Model", updated)
	}
	return model
}

// TestCountdownLifecycle runs a countdown from start to completion through
// the terminal model, the way the countdown command wires it up.
func TestCountdownLifecycle(t *testing.T) {
	notified := 0
	clock := domain.NewCountdown(domain.Args{
		InitialValue: 300 * time.Millisecond,
		CurrentValue: 300 * time.Millisecond,
		TickValue:    100 * time.Millisecond,
		Style:        domain.StyleFull,
	})

	m := tui.NewModel(clock, tui.Options{
		Title:        "Countdown",
		TickInterval: 20 * time.Millisecond,
		OnDone:       func() { notified++ },
	})

	// 1. Start the countdown
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !clock.IsRunning() {
		t.Fatal("expected clock to run after space")
	}

	// 2. Let it tick down to zero
	m = driveUntil(t, m, clock.IsDone, 20)

	if !clock.CurrentValue().IsZero() {
		t.Errorf("expected zero at completion, got %v", clock.CurrentValue())
	}

	// 3. Completion fires the callback exactly once
	if notified != 1 {
		t.Errorf("expected 1 completion callback, got %d", notified)
	}

	// 4. The view announces completion
	if !strings.Contains(m.View(), "done") {
		t.Error("expected view to show the done indicator")
	}

	// 5. Reset re-arms the countdown
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if clock.IsDone() {
		t.Error("expected reset to leave the done state")
	}
	if clock.CurrentValue() != domain.NewDuration(300*time.Millisecond) {
		t.Errorf("expected reset to restore the initial value, got %v", clock.CurrentValue())
	}
}

// TestPauseEditResumeFlow exercises the pause -> edit -> resume loop.
func TestPauseEditResumeFlow(t *testing.T) {
	clock := domain.NewCountdown(domain.Args{
		InitialValue: time.Minute,
		CurrentValue: 30 * time.Second,
		TickValue:    100 * time.Millisecond,
		Style:        domain.StyleFull,
	})

	m := tui.NewModel(clock, tui.Options{TickInterval: 20 * time.Millisecond})

	// Pause is where edits happen
	if clock.IsRunning() {
		t.Fatal("expected clock to start paused")
	}

	// Enter edit mode on the seconds field and bump it down twice
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	if !clock.IsEditMode() {
		t.Fatal("expected edit mode after e")
	}
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if clock.CurrentValue() != domain.NewDuration(28*time.Second) {
		t.Errorf("expected 28s after two downs, got %v", clock.CurrentValue())
	}

	// Leave edit mode and resume
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	if clock.IsEditMode() {
		t.Fatal("expected edit mode to end")
	}
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !clock.IsRunning() {
		t.Fatal("expected clock to resume")
	}

	// One tick moves the edited value
	m = driveUntil(t, m, func() bool {
		return clock.CurrentValue() < domain.NewDuration(28*time.Second)
	}, 5)
	_ = m
}

// TestStopwatchStopsAtLimit runs a stopwatch into its upper bound.
func TestStopwatchStopsAtLimit(t *testing.T) {
	notified := 0
	start := time.Duration(domain.MaxDuration) - 300*time.Millisecond
	clock := domain.NewTimer(domain.Args{
		InitialValue: start,
		CurrentValue: start,
		TickValue:    100 * time.Millisecond,
		Style:        domain.StyleFull,
	})

	m := tui.NewModel(clock, tui.Options{
		Title:        "Stopwatch",
		TickInterval: 20 * time.Millisecond,
		OnDone:       func() { notified++ },
	})

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = driveUntil(t, m, clock.IsDone, 20)

	if clock.CurrentValue() != domain.MaxDuration {
		t.Errorf("expected the stopwatch to stop at %v, got %v", domain.MaxDuration, clock.CurrentValue())
	}
	if notified != 1 {
		t.Errorf("expected 1 limit callback, got %d", notified)
	}
	_ = m
}

// TestConfigRoundTrip saves and reloads configuration under a temporary home.
func TestConfigRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// 1. First load creates the file with defaults
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	path, err := config.GetConfigPath()
	if err != nil {
		t.Fatalf("failed to get config path: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s: %v", path, err)
	}
	if filepath.Base(path) != "config.toml" {
		t.Errorf("unexpected config file name %q", path)
	}

	if time.Duration(cfg.Countdown.Duration) != 10*time.Minute {
		t.Errorf("expected default countdown 10m, got %v", cfg.Countdown.Duration)
	}

	// 2. Change settings and save
	cfg.Countdown.Duration = config.Duration(25 * time.Minute)
	cfg.Display.Style = domain.StyleBraille
	cfg.Display.WithDecis = true
	cfg.Notifications.Sound = true

	if err := config.Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	// 3. Reload and verify everything round-tripped
	reloaded, err := config.Load()
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if time.Duration(reloaded.Countdown.Duration) != 25*time.Minute {
		t.Errorf("expected countdown 25m, got %v", reloaded.Countdown.Duration)
	}
	if reloaded.Display.Style != domain.StyleBraille {
		t.Errorf("expected braille style, got %v", reloaded.Display.Style)
	}
	if !reloaded.Display.WithDecis {
		t.Error("expected deciseconds on")
	}
	if !reloaded.Notifications.Sound {
		t.Error("expected sound on")
	}
}
