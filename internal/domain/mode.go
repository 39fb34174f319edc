package domain

// Field identifies the time field under the edit cursor.
type Field int

const (
	FieldDecis Field = iota
	FieldSeconds
	FieldMinutes
	FieldHours
)

func (f Field) String() string {
	switch f {
	case FieldDecis:
		return "deciseconds"
	case FieldSeconds:
		return "seconds"
	case FieldMinutes:
		return "minutes"
	case FieldHours:
		return "hours"
	default:
		return "unknown"
	}
}

// ModeKind enumerates the clock state machine's states.
type ModeKind int

const (
	// ModeInitial is the untouched state: current equals initial and the
	// clock has never run (or was just reset).
	ModeInitial ModeKind = iota
	// ModeTick is the running state; tick() advances the value.
	ModeTick
	// ModePause holds the value between runs.
	ModePause
	// ModeEditable is field-by-field editing of the current value.
	ModeEditable
	// ModeDone marks a finished clock: zero for countdowns, the maximum
	// for stopwatches.
	ModeDone
)

// Mode is the current state of a clock. Field and Prev carry the edit
// payload and are meaningful only when Kind is ModeEditable: Field is the
// cursor position and Prev the mode to restore when editing ends. Prev is
// boxed so a mode can in principle nest, though leaving edit mode is the
// only transition out of it.
type Mode struct {
	Kind  ModeKind
	Field Field
	Prev  *Mode
}

// String renders the status-line indicator for the mode.
func (m Mode) String() string {
	switch m.Kind {
	case ModeInitial:
		return "[]"
	case ModeTick:
		return ">"
	case ModePause:
		return "||"
	case ModeEditable:
		return "[edit " + m.Field.String() + "]"
	case ModeDone:
		return "done"
	default:
		return "unknown"
	}
}
