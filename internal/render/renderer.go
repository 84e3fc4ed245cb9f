// Package render turns frames into terminal output.
//
// Render diffs two frames and writes only the changed cells to a Display.
// Worker runs Render on its own goroutine, fed by a Queue the game loop sends
// completed frames into.
package render

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Display is the output device the renderer writes to.
// Implementations may buffer writes; nothing is guaranteed visible before Flush.
type Display interface {
	// Clear erases the whole device.
	Clear() error
	// MoveTo positions the cursor at a zero-based cell.
	MoveTo(x, y int) error
	// Put writes one cell at the cursor position.
	Put(c core.Cell) error
	// Flush pushes buffered output to the device.
	Flush() error
}

// Render writes cur to the display.
//
// With force set, a nil prev, or frames of different shape, the device is
// cleared and every non-blank cell of cur is written. Otherwise only the
// positions where cur differs from prev are written, a cell that became
// blank is written as a space. The display is flushed exactly once.
func Render(d Display, prev, cur *core.Frame, force bool) error {
	if cur == nil {
		return ErrNilFrame
	}

	if force || !cur.SameShape(prev) {
		if err := fullRedraw(d, cur); err != nil {
			return err
		}
	} else {
		for _, p := range Diff(prev, cur) {
			if err := putAt(d, p.X, p.Y, cur.Get(p.X, p.Y)); err != nil {
				return err
			}
		}
	}

	if err := d.Flush(); err != nil {
		return fmt.Errorf("render: flush: %w", err)
	}
	return nil
}

// Diff returns the positions where cur differs from prev, in row-major order.
// Frames of different shape are treated as entirely different.
func Diff(prev, cur *core.Frame) []core.Point {
	if cur == nil {
		return nil
	}
	var changed []core.Point
	sameShape := cur.SameShape(prev)
	if !sameShape {
		changed = make([]core.Point, 0, cur.Size().Area())
	}
	for y := 0; y < cur.Height(); y++ {
		for x := 0; x < cur.Width(); x++ {
			if sameShape && prev.Get(x, y) == cur.Get(x, y) {
				continue
			}
			changed = append(changed, core.Point{X: x, Y: y})
		}
	}
	return changed
}

func fullRedraw(d Display, cur *core.Frame) error {
	if err := d.Clear(); err != nil {
		return fmt.Errorf("render: clear: %w", err)
	}
	for y := 0; y < cur.Height(); y++ {
		for x := 0; x < cur.Width(); x++ {
			c := cur.Get(x, y)
			if c.IsBlank() {
				continue
			}
			if err := putAt(d, x, y, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func putAt(d Display, x, y int, c core.Cell) error {
	if c.IsBlank() {
		c = core.Blank
	}
	if err := d.MoveTo(x, y); err != nil {
		return fmt.Errorf("render: move to (%d, %d): %w", x, y, err)
	}
	if err := d.Put(c); err != nil {
		return fmt.Errorf("render: put (%d, %d): %w", x, y, err)
	}
	return nil
}
