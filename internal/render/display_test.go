package render

import (
	"errors"
	"sync"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// write is one cell written to a recordingDisplay.
type write struct {
	At   core.Point
	Cell core.Cell
}

// recordingDisplay records every operation instead of drawing.
type recordingDisplay struct {
	mu      sync.Mutex
	cursor  core.Point
	writes  []write
	clears  int
	flushes int

	// batches holds the writes made between two flushes.
	batches [][]write
	pending []write

	flushErr error
	putErr   error
}

func (d *recordingDisplay) Clear() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clears++
	return nil
}

func (d *recordingDisplay) MoveTo(x, y int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursor = core.Point{X: x, Y: y}
	return nil
}

func (d *recordingDisplay) Put(c core.Cell) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.putErr != nil {
		return d.putErr
	}
	w := write{At: d.cursor, Cell: c}
	d.writes = append(d.writes, w)
	d.pending = append(d.pending, w)
	d.cursor.X++
	return nil
}

func (d *recordingDisplay) Flush() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.flushes++
	if d.flushErr != nil {
		return d.flushErr
	}
	d.batches = append(d.batches, d.pending)
	d.pending = nil
	return nil
}

func (d *recordingDisplay) reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.writes = nil
	d.clears = 0
	d.flushes = 0
	d.batches = nil
	d.pending = nil
}

var errDevice = errors.New("device unplugged")
