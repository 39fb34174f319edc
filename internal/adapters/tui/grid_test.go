package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferSetAndLines(t *testing.T) {
	buf := NewBuffer(3, 2)
	buf.Set(0, 0, 'a')
	buf.Set(2, 0, 'b')
	buf.Set(1, 1, '█')

	lines := buf.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "a b", lines[0])
	assert.Equal(t, " █ ", lines[1])
}

func TestBufferDropsOutOfRangeWrites(t *testing.T) {
	buf := NewBuffer(2, 2)
	buf.Set(-1, 0, 'x')
	buf.Set(2, 0, 'x')
	buf.Set(0, -1, 'x')
	buf.Set(0, 2, 'x')

	for _, line := range buf.Lines() {
		assert.Equal(t, "  ", line)
	}
}

func TestBufferAt(t *testing.T) {
	buf := NewBuffer(2, 1)
	buf.Set(1, 0, 'y')

	assert.Equal(t, 'y', buf.At(1, 0))
	assert.Equal(t, ' ', buf.At(0, 0))
	assert.Equal(t, ' ', buf.At(5, 5), "out of range reads as space")
}

func TestBufferZeroSize(t *testing.T) {
	buf := NewBuffer(0, 0)
	buf.Set(0, 0, 'x') // must not panic
	assert.Empty(t, buf.Lines())

	neg := NewBuffer(-3, -1)
	assert.Equal(t, 0, neg.Width())
	assert.Equal(t, 0, neg.Height())
}

func TestSplitFixed(t *testing.T) {
	r := Rect{X: 2, Y: 1, Width: 20, Height: 6}
	cols := r.SplitFixed(5, 1, 5)

	require.Len(t, cols, 3)
	assert.Equal(t, Rect{X: 2, Y: 1, Width: 5, Height: 6}, cols[0])
	assert.Equal(t, Rect{X: 7, Y: 1, Width: 1, Height: 6}, cols[1])
	assert.Equal(t, Rect{X: 8, Y: 1, Width: 5, Height: 6}, cols[2])
}

func TestCenterHorizontal(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 100, Height: 6}

	centered := CenterHorizontal(r, 40)
	assert.Equal(t, 30, centered.X)
	assert.Equal(t, 40, centered.Width)
	assert.Equal(t, r.Height, centered.Height)

	// Wider than the area collapses to the area; drawing clips later.
	assert.Equal(t, r, CenterHorizontal(r, 120))
}
