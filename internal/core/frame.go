package core

import (
	"strings"
)

// Cell is a single drawable position of a frame.
type Cell struct {
	Rune  rune
	Color Color
}

// Blank is the empty cell every new frame is filled with.
var Blank = Cell{Rune: ' '}

// IsBlank returns true if the cell displays nothing.
func (c Cell) IsBlank() bool {
	return c.Rune == ' ' || c.Rune == 0
}

// Frame is one complete snapshot of the display grid for a single tick.
// Entities draw into it, the render worker compares it with the previous one.
// A frame must not be modified after it has been sent to the renderer.
type Frame struct {
	width  int
	height int
	cells  [][]Cell
}

// NewFrame creates a frame of the given dimensions with every cell blank.
func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f := &Frame{
		width:  width,
		height: height,
		cells:  make([][]Cell, height),
	}
	for y := range f.cells {
		row := make([]Cell, width)
		for x := range row {
			row[x] = Blank
		}
		f.cells[y] = row
	}
	return f
}

// Width returns the frame width in cells.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in cells.
func (f *Frame) Height() int {
	return f.height
}

// Size returns the frame dimensions.
func (f *Frame) Size() Size {
	return Size{W: f.width, H: f.height}
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (f *Frame) Set(x, y int, c Cell) {
	if !f.Size().Contains(Point{X: x, Y: y}) {
		return
	}
	f.cells[y][x] = c
}

// Get returns the cell at the given position.
// Returns Blank for out-of-bounds coordinates.
func (f *Frame) Get(x, y int) Cell {
	if !f.Size().Contains(Point{X: x, Y: y}) {
		return Blank
	}
	return f.cells[y][x]
}

// Clear fills the entire frame with blank cells.
func (f *Frame) Clear() {
	for y := range f.cells {
		for x := range f.cells[y] {
			f.cells[y][x] = Blank
		}
	}
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond frame bounds are clipped.
func (f *Frame) DrawText(x, y int, text string, color Color) {
	i := 0
	for _, r := range text {
		f.Set(x+i, y, Cell{Rune: r, Color: color})
		i++
	}
}

// SameShape reports whether both frames have identical dimensions.
func (f *Frame) SameShape(other *Frame) bool {
	if f == nil || other == nil {
		return false
	}
	return f.width == other.width && f.height == other.height
}

// Equal reports whether both frames have the same shape and the same cell at
// every position.
func (f *Frame) Equal(other *Frame) bool {
	if !f.SameShape(other) {
		return false
	}
	for y := range f.cells {
		for x := range f.cells[y] {
			if f.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// String converts the frame to plain text, one line per row.
// Colors are dropped.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow(f.width*f.height + f.height)

	for y := 0; y < f.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(f.Row(y))
	}
	return sb.String()
}

// Row returns row y as plain text. Rows outside the frame are all spaces.
func (f *Frame) Row(y int) string {
	if y < 0 || y >= f.height {
		return strings.Repeat(" ", f.width)
	}
	var sb strings.Builder
	for _, c := range f.cells[y] {
		sb.WriteRune(displayRune(c))
	}
	return sb.String()
}

func displayRune(c Cell) rune {
	if c.IsBlank() {
		return ' '
	}
	return c.Rune
}
