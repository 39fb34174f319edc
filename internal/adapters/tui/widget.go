package tui

import (
	"github.com/xvierd/tock-cli/internal/domain"
	"github.com/xvierd/tock-cli/internal/ports"
)

// Cell geometry of the block clock. Digits are 5x5 in a 6-row area; the
// extra bottom row carries the edit underline.
const (
	digitWidth  = 5
	digitHeight = 5
	colonWidth  = 4
	spaceWidth  = 1

	// ClockHeight is the number of rows a rendered clock occupies.
	ClockHeight = digitHeight + 1
)

// editUnderline is drawn across the bottom row of the digit under the
// edit cursor.
const editUnderline = '─'

type segKind int

const (
	segDigit segKind = iota
	segSpace
	segColon
	segDot
)

// segment is one column of the clock layout: a digit bound to a time
// field, or the filler between digits.
type segment struct {
	kind  segKind
	field domain.Field
	tens  bool
}

func (s segment) width() int {
	switch s.kind {
	case segDigit:
		return digitWidth
	case segColon, segDot:
		return colonWidth
	default:
		return spaceWidth
	}
}

// segmentsFor builds the left-to-right segment list for a format. Each
// format extends the narrower one by a more significant digit pair, so the
// list grows by descending rank; the deciseconds pair hangs off the right
// end when enabled.
func segmentsFor(f domain.Format, withDecis bool) []segment {
	var segs []segment
	if f >= domain.FormatHhMmSs {
		segs = append(segs,
			segment{kind: segDigit, field: domain.FieldHours, tens: true},
			segment{kind: segSpace},
		)
	}
	if f >= domain.FormatHMmSs {
		segs = append(segs,
			segment{kind: segDigit, field: domain.FieldHours},
			segment{kind: segColon},
		)
	}
	if f >= domain.FormatMmSs {
		segs = append(segs,
			segment{kind: segDigit, field: domain.FieldMinutes, tens: true},
			segment{kind: segSpace},
		)
	}
	if f >= domain.FormatMSs {
		segs = append(segs,
			segment{kind: segDigit, field: domain.FieldMinutes},
			segment{kind: segColon},
		)
	}
	if f >= domain.FormatSs {
		segs = append(segs,
			segment{kind: segDigit, field: domain.FieldSeconds, tens: true},
			segment{kind: segSpace},
		)
	}
	segs = append(segs, segment{kind: segDigit, field: domain.FieldSeconds})
	if withDecis {
		segs = append(segs,
			segment{kind: segDot},
			segment{kind: segDigit, field: domain.FieldDecis},
		)
	}
	return segs
}

// digitValue extracts the single digit a segment displays.
func digitValue(v domain.Duration, f domain.Field, tens bool) int {
	var n int
	switch f {
	case domain.FieldHours:
		n = v.Hours()
	case domain.FieldMinutes:
		n = v.Minutes()
	case domain.FieldSeconds:
		n = v.Seconds()
	case domain.FieldDecis:
		return v.Decis()
	}
	if tens {
		return n / 10
	}
	return n % 10
}

// ClockWidget draws a clock as block digits into a cell buffer.
type ClockWidget struct{}

// Width returns the total cell width of a clock in the given format.
func (ClockWidget) Width(f domain.Format, withDecis bool) int {
	total := 0
	for _, seg := range segmentsFor(f, withDecis) {
		total += seg.width()
	}
	return total
}

// Height returns the cell height of a rendered clock.
func (ClockWidget) Height() int { return ClockHeight }

// Render draws the clock's current value centered in area. The edited
// digit, if any, gets an underline across the bottom row of its column.
func (w ClockWidget) Render(clock ports.Clock, area Rect, buf *Buffer) {
	segs := segmentsFor(clock.Format(), clock.WithDecis())
	widths := make([]int, len(segs))
	total := 0
	for i, seg := range segs {
		widths[i] = seg.width()
		total += widths[i]
	}

	area = CenterHorizontal(area, total)
	cols := area.SplitFixed(widths...)

	var editField domain.Field
	editing := false
	if m := clock.Mode(); m.Kind == domain.ModeEditable {
		editField = m.Field
		editing = true
	}

	symbol := clock.Style().Symbol()
	value := clock.CurrentValue()

	for i, seg := range segs {
		col := cols[i]
		switch seg.kind {
		case segDigit:
			w.renderDigit(buf, col, digitValue(value, seg.field, seg.tens), symbol)
			if editing && seg.field == editField {
				w.renderUnderline(buf, col)
			}
		case segColon:
			w.renderColon(buf, col, symbol)
		case segDot:
			w.renderDot(buf, col, symbol)
		}
	}
}

func (ClockWidget) renderDigit(buf *Buffer, col Rect, digit int, symbol rune) {
	cells := errorCells
	if digit >= 0 && digit <= 9 {
		cells = digitCells[digit]
	}
	for y := 0; y < digitHeight; y++ {
		for x := 0; x < digitWidth; x++ {
			if cells[y*digitWidth+x] == 1 {
				buf.Set(col.X+x, col.Y+y, symbol)
			}
		}
	}
}

func (ClockWidget) renderColon(buf *Buffer, col Rect, symbol rune) {
	buf.Set(col.X+1, col.Y+1, symbol)
	buf.Set(col.X+2, col.Y+1, symbol)
	buf.Set(col.X+1, col.Y+3, symbol)
	buf.Set(col.X+2, col.Y+3, symbol)
}

func (ClockWidget) renderDot(buf *Buffer, col Rect, symbol rune) {
	buf.Set(col.X+1, col.Y+digitHeight-1, symbol)
	buf.Set(col.X+2, col.Y+digitHeight-1, symbol)
}

func (ClockWidget) renderUnderline(buf *Buffer, col Rect) {
	for x := 0; x < col.Width; x++ {
		buf.Set(col.X+x, col.Y+col.Height-1, editUnderline)
	}
}
