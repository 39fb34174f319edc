package domain

import "time"

// Args configures a new clock.
type Args struct {
	// InitialValue is the value the clock resets to: the full duration of
	// a countdown, the starting point of a stopwatch.
	InitialValue time.Duration
	// CurrentValue is the live value; pass InitialValue for a fresh clock.
	CurrentValue time.Duration
	// TickValue is the amount a single tick advances the clock by.
	TickValue time.Duration
	// Style selects the block-digit glyph set.
	Style Style
	// WithDecis shows and edits a trailing deciseconds digit.
	WithDecis bool
}

// clockState carries everything shared by the two clock variants. The
// variants differ only in tick direction, done condition and upward edit
// bounds.
type clockState struct {
	initial   Duration
	current   Duration
	tick      Duration
	mode      Mode
	format    Format
	style     Style
	withDecis bool
}

func newClockState(args Args) clockState {
	s := clockState{
		initial:   NewDuration(args.InitialValue),
		current:   NewDuration(args.CurrentValue),
		tick:      NewDuration(args.TickValue),
		style:     args.Style,
		withDecis: args.WithDecis,
	}
	s.refreshFormat()
	return s
}

// refreshFormat recomputes the cached format from the current value. Every
// mutation of current must be followed by a refresh; the format is never
// set independently.
func (c *clockState) refreshFormat() {
	c.format = FormatFor(c.current)
}

// TogglePause switches between running and paused. From any non-running
// mode, including Done and edit mode, the clock starts ticking; the edit
// context, if any, is abandoned.
func (c *clockState) TogglePause() {
	if c.mode.Kind == ModeTick {
		c.mode = Mode{Kind: ModePause}
	} else {
		c.mode = Mode{Kind: ModeTick}
	}
}

// ToggleEdit enters or leaves edit mode. Entering places the cursor on
// Seconds for second-sized values and on Minutes otherwise, remembering the
// mode to come back to. Leaving restores that mode, corrected for edits
// that crossed a boundary: a Done clock edited away from its terminal value
// becomes Initial, and a clock edited to zero becomes Done.
func (c *clockState) ToggleEdit() {
	if c.mode.Kind == ModeEditable {
		prev := *c.mode.Prev
		switch {
		case prev.Kind == ModeDone && !c.current.IsZero():
			c.mode = Mode{Kind: ModeInitial}
		case prev.Kind != ModeDone && c.current.IsZero():
			c.mode = Mode{Kind: ModeDone}
		default:
			c.mode = prev
		}
		return
	}

	prev := c.mode
	field := FieldMinutes
	if c.format <= FormatSs {
		field = FieldSeconds
	}
	c.mode = Mode{Kind: ModeEditable, Field: field, Prev: &prev}
}

// EditNext moves the edit cursor toward the more significant visible field,
// wrapping through the deciseconds digit when it is shown. Outside edit
// mode it does nothing.
func (c *clockState) EditNext() {
	if c.mode.Kind != ModeEditable {
		return
	}
	next := c.mode.Field
	switch c.mode.Field {
	case FieldDecis:
		next = FieldSeconds
	case FieldSeconds:
		switch {
		case c.format <= FormatSs && c.withDecis:
			next = FieldDecis
		case c.format <= FormatSs:
			next = FieldSeconds
		default:
			next = FieldMinutes
		}
	case FieldMinutes:
		switch {
		case c.format <= FormatMmSs && c.withDecis:
			next = FieldDecis
		case c.format <= FormatMmSs:
			next = FieldSeconds
		default:
			next = FieldHours
		}
	case FieldHours:
		if c.withDecis {
			next = FieldDecis
		} else {
			next = FieldSeconds
		}
	}
	c.mode.Field = next
	c.refreshFormat()
}

// EditPrev moves the edit cursor the opposite way around the same cycle
// EditNext walks.
func (c *clockState) EditPrev() {
	if c.mode.Kind != ModeEditable {
		return
	}
	prev := c.mode.Field
	switch c.mode.Field {
	case FieldDecis:
		switch {
		case c.format <= FormatSs:
			prev = FieldSeconds
		case c.format <= FormatMmSs:
			prev = FieldMinutes
		default:
			prev = FieldHours
		}
	case FieldSeconds:
		switch {
		case c.withDecis:
			prev = FieldDecis
		case c.format <= FormatSs:
			prev = FieldSeconds
		case c.format <= FormatMmSs:
			prev = FieldMinutes
		default:
			prev = FieldHours
		}
	case FieldMinutes:
		prev = FieldSeconds
	case FieldHours:
		prev = FieldMinutes
	}
	c.mode.Field = prev
	c.refreshFormat()
}

// editValueUp increments the field under the cursor by one unit. Each
// field has its own cap below MaxDuration; the hours bound is strict so a
// full hour always fits.
func (c *clockState) editValueUp() {
	if c.mode.Kind != ModeEditable {
		return
	}
	switch c.mode.Field {
	case FieldDecis:
		if c.current <= MaxDuration-OneDecisecond {
			c.current = c.current.SaturatingAdd(OneDecisecond)
		}
	case FieldSeconds:
		if c.current <= MaxDuration-OneSecond {
			c.current = c.current.SaturatingAdd(OneSecond)
		}
	case FieldMinutes:
		if c.current <= MaxDuration-OneMinute {
			c.current = c.current.SaturatingAdd(OneMinute)
		}
	case FieldHours:
		if c.current < MaxDuration-OneHour {
			c.current = c.current.SaturatingAdd(OneHour)
		}
	}
	c.refreshFormat()
}

// editValueDown decrements the field under the cursor by one unit,
// saturating at zero, then realigns the cursor with the narrower format.
func (c *clockState) editValueDown() {
	if c.mode.Kind != ModeEditable {
		return
	}
	switch c.mode.Field {
	case FieldDecis:
		c.current = c.current.SaturatingSub(OneDecisecond)
	case FieldSeconds:
		c.current = c.current.SaturatingSub(OneSecond)
	case FieldMinutes:
		c.current = c.current.SaturatingSub(OneMinute)
	case FieldHours:
		c.current = c.current.SaturatingSub(OneHour)
	}
	c.refreshFormat()
	c.realignEditField()
}

// realignEditField keeps the cursor on a visible field after the value
// shrank out of its previous format.
func (c *clockState) realignEditField() {
	if c.mode.Kind != ModeEditable {
		return
	}
	switch {
	case c.mode.Field == FieldHours && c.format <= FormatMmSs:
		c.mode.Field = FieldMinutes
	case c.mode.Field == FieldMinutes && c.format <= FormatSs:
		c.mode.Field = FieldSeconds
	}
}

// Reset returns the clock to its initial value and state.
func (c *clockState) Reset() {
	c.mode = Mode{Kind: ModeInitial}
	c.current = c.initial
	c.refreshFormat()
}

// Mode returns the current state machine mode.
func (c *clockState) Mode() Mode { return c.mode }

// Format returns the display format of the current value.
func (c *clockState) Format() Format { return c.format }

// IsRunning reports whether the clock advances on tick.
func (c *clockState) IsRunning() bool { return c.mode.Kind == ModeTick }

// IsEditMode reports whether the clock is being edited.
func (c *clockState) IsEditMode() bool { return c.mode.Kind == ModeEditable }

// IsDone reports whether the clock reached its terminal value.
func (c *clockState) IsDone() bool { return c.mode.Kind == ModeDone }

// InitialValue returns the value the clock resets to.
func (c *clockState) InitialValue() Duration { return c.initial }

// CurrentValue returns the live clock value.
func (c *clockState) CurrentValue() Duration { return c.current }

// Style returns the block-digit glyph style.
func (c *clockState) Style() Style { return c.style }

// SetStyle changes the block-digit glyph style.
func (c *clockState) SetStyle(s Style) { c.style = s }

// WithDecis reports whether the deciseconds digit is shown.
func (c *clockState) WithDecis() bool { return c.withDecis }

// SetWithDecis toggles the deciseconds digit.
func (c *clockState) SetWithDecis(on bool) { c.withDecis = on }

// Countdown counts from an initial duration down to zero.
type Countdown struct {
	clockState
}

// NewCountdown builds a countdown clock. The starting mode is inferred
// from the value: already at zero means Done, untouched means Initial,
// anything else resumes as Pause.
func NewCountdown(args Args) *Countdown {
	s := newClockState(args)
	switch {
	case s.current.IsZero():
		s.mode = Mode{Kind: ModeDone}
	case s.current == s.initial:
		s.mode = Mode{Kind: ModeInitial}
	default:
		s.mode = Mode{Kind: ModePause}
	}
	return &Countdown{clockState: s}
}

// Tick advances a running countdown by one tick value, finishing at zero.
func (c *Countdown) Tick() {
	if c.mode.Kind != ModeTick {
		return
	}
	c.current = c.current.SaturatingSub(c.tick)
	if c.current.IsZero() {
		c.mode = Mode{Kind: ModeDone}
	}
	c.refreshFormat()
}

// EditUp increments the field under the cursor, never past the initial
// value: a countdown cannot be edited longer than it started.
func (c *Countdown) EditUp() {
	c.editValueUp()
	if c.current > c.initial {
		c.current = c.initial
		c.refreshFormat()
	}
}

// EditDown decrements the field under the cursor, saturating at zero.
func (c *Countdown) EditDown() {
	c.editValueDown()
}

// PercentDone returns the elapsed share of the initial value as a
// truncated percentage. Callers must not invoke it on a zero-initial
// countdown.
func (c *Countdown) PercentDone() int {
	elapsed := c.initial.SaturatingSub(c.current)
	return int(elapsed.Millis() * 100 / c.initial.Millis())
}

// Timer counts up from its starting value until the displayable maximum.
type Timer struct {
	clockState
}

// NewTimer builds a count-up clock. An untouched value starts as Initial,
// a maxed-out one as Done, anything else resumes as Pause.
func NewTimer(args Args) *Timer {
	s := newClockState(args)
	switch {
	case s.current == s.initial:
		s.mode = Mode{Kind: ModeInitial}
	case s.current >= MaxDuration:
		s.mode = Mode{Kind: ModeDone}
	default:
		s.mode = Mode{Kind: ModePause}
	}
	return &Timer{clockState: s}
}

// Tick advances a running timer by one tick value, finishing when the
// displayable maximum is reached.
func (t *Timer) Tick() {
	if t.mode.Kind != ModeTick {
		return
	}
	t.current = t.current.SaturatingAdd(t.tick)
	if t.current >= MaxDuration {
		t.mode = Mode{Kind: ModeDone}
	}
	t.refreshFormat()
}

// EditUp increments the field under the cursor within the per-field caps.
func (t *Timer) EditUp() {
	t.editValueUp()
}

// EditDown decrements the field under the cursor, saturating at zero.
func (t *Timer) EditDown() {
	t.editValueDown()
}
