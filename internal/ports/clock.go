package ports

import (
	"github.com/xvierd/tock-cli/internal/domain"
)

// Clock is the operation surface a clock variant exposes to the UI layer.
// This is a driving port (called by the TUI adapter); both domain variants
// satisfy it with static dispatch.
type Clock interface {
	// Tick advances the clock by one tick value while it is running.
	Tick()

	// TogglePause switches between running and paused.
	TogglePause()

	// ToggleEdit enters or leaves field-by-field editing.
	ToggleEdit()

	// EditNext moves the edit cursor toward the more significant field.
	EditNext()

	// EditPrev moves the edit cursor the opposite way.
	EditPrev()

	// EditUp increments the field under the cursor.
	EditUp()

	// EditDown decrements the field under the cursor.
	EditDown()

	// Reset returns the clock to its initial value and state.
	Reset()

	// Mode returns the current state machine mode.
	Mode() domain.Mode

	// Format returns the display format of the current value.
	Format() domain.Format

	// IsRunning reports whether ticks advance the clock.
	IsRunning() bool

	// IsEditMode reports whether the clock is being edited.
	IsEditMode() bool

	// IsDone reports whether the clock reached its terminal value.
	IsDone() bool

	// InitialValue returns the value the clock resets to.
	InitialValue() domain.Duration

	// CurrentValue returns the live clock value.
	CurrentValue() domain.Duration

	// Style returns the block-digit glyph style.
	Style() domain.Style

	// SetStyle changes the block-digit glyph style.
	SetStyle(domain.Style)

	// WithDecis reports whether the deciseconds digit is shown.
	WithDecis() bool

	// SetWithDecis toggles the deciseconds digit.
	SetWithDecis(bool)
}

// ProgressReporter is satisfied by clocks that can report how far along
// they are. Only the countdown variant implements it; the TUI shows a
// progress bar when the clock does.
type ProgressReporter interface {
	// PercentDone returns the elapsed share of the initial value as a
	// truncated percentage.
	PercentDone() int
}
