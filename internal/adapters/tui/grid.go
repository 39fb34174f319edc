package tui

// Rect is a rectangular area in cell coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// SplitFixed splits r into fixed-width columns laid out left to right.
// The columns keep r's vertical extent; width beyond the sum of the parts
// is left unused.
func (r Rect) SplitFixed(widths ...int) []Rect {
	cols := make([]Rect, 0, len(widths))
	x := r.X
	for _, w := range widths {
		cols = append(cols, Rect{X: x, Y: r.Y, Width: w, Height: r.Height})
		x += w
	}
	return cols
}

// CenterHorizontal returns a sub-rect of the given width centered in r.
// Widths larger than r collapse to r itself; drawing then clips at the
// buffer edges.
func CenterHorizontal(r Rect, width int) Rect {
	if width >= r.Width {
		return r
	}
	return Rect{
		X:      r.X + (r.Width-width)/2,
		Y:      r.Y,
		Width:  width,
		Height: r.Height,
	}
}

// Buffer is a fixed-size grid of cells the clock widget draws into. Rows
// flatten to strings for the view; writes outside the grid are dropped so
// a clock wider than the terminal clips instead of wrapping.
type Buffer struct {
	width  int
	height int
	cells  []rune
}

// NewBuffer returns a width x height buffer filled with spaces.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = ' '
	}
	return &Buffer{width: width, height: height, cells: cells}
}

// Set writes a single cell, ignoring out-of-range coordinates.
func (b *Buffer) Set(x, y int, r rune) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = r
}

// At reads a single cell; out-of-range coordinates read as space.
func (b *Buffer) At(x, y int) rune {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return ' '
	}
	return b.cells[y*b.width+x]
}

// Width returns the buffer width in cells.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in cells.
func (b *Buffer) Height() int { return b.height }

// Lines flattens the buffer into one string per row.
func (b *Buffer) Lines() []string {
	lines := make([]string, b.height)
	for y := 0; y < b.height; y++ {
		lines[y] = string(b.cells[y*b.width : (y+1)*b.width])
	}
	return lines
}
