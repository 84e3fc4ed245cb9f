package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Army is the invader formation. It marches sideways, steps down and
// speeds up whenever it reaches an edge.
type Army struct {
	invaders  []core.Point
	grid      core.Size
	moveTimer core.Timer
	direction int
	speed     float64
	moved     bool

	minInterval    time.Duration
	descentSpeedup time.Duration
}

// NewArmy fills the top rows of the grid with invaders on even cells,
// leaving a two-column margin at each side and the first row free.
func NewArmy(s Settings) *Army {
	a := &Army{
		grid:           s.Grid,
		moveTimer:      core.NewTimer(s.ArmyInterval),
		direction:      1,
		speed:          1,
		minInterval:    s.ArmyMinInterval,
		descentSpeedup: s.DescentSpeedup,
	}

	rows := min(s.ArmyRows, s.Grid.H-1)
	for y := 1; y < rows; y++ {
		for x := 2; x < s.Grid.W-2; x++ {
			if x%2 == 0 && y%2 == 0 {
				a.invaders = append(a.invaders, core.Point{X: x, Y: y})
			}
		}
	}
	return a
}

// SetSpeed scales how fast the army clock runs. Values below 1 are ignored.
func (a *Army) SetSpeed(speed float64) {
	a.speed = max(speed, 1)
}

// Interval returns the current time between steps.
func (a *Army) Interval() time.Duration {
	return a.moveTimer.Duration()
}

// Update advances the army clock and marches one step when it fires.
func (a *Army) Update(elapsed time.Duration) {
	a.moved = false
	a.moveTimer.Update(time.Duration(float64(elapsed) * a.speed))
	if !a.moveTimer.Ready() || len(a.invaders) == 0 {
		return
	}
	a.moveTimer.Reset()
	a.moved = true

	if a.atEdge() {
		a.direction = -a.direction
		interval := max(a.moveTimer.Duration()-a.descentSpeedup, a.minInterval)
		a.moveTimer = core.NewTimer(interval)
		for i := range a.invaders {
			a.invaders[i].Y++
		}
		return
	}
	for i := range a.invaders {
		a.invaders[i].X += a.direction
	}
}

// atEdge reports whether the next sideways step would leave the grid.
func (a *Army) atEdge() bool {
	for _, inv := range a.invaders {
		if (a.direction < 0 && inv.X == 0) || (a.direction > 0 && inv.X == a.grid.W-1) {
			return true
		}
	}
	return false
}

// Moved reports whether the last Update marched the army.
func (a *Army) Moved() bool {
	return a.moved
}

// KillAt removes the invader at (x, y), reporting whether there was one.
func (a *Army) KillAt(x, y int) bool {
	for i, inv := range a.invaders {
		if inv.X == x && inv.Y == y {
			a.invaders = append(a.invaders[:i], a.invaders[i+1:]...)
			return true
		}
	}
	return false
}

// Remaining returns the number of invaders alive.
func (a *Army) Remaining() int {
	return len(a.invaders)
}

// AllKilled reports whether the army has been wiped out.
func (a *Army) AllKilled() bool {
	return len(a.invaders) == 0
}

// ReachedBottom reports whether any invader reached the player's row.
func (a *Army) ReachedBottom() bool {
	for _, inv := range a.invaders {
		if inv.Y >= a.grid.H-1 {
			return true
		}
	}
	return false
}

// Draw writes the invaders; the glyph alternates with the march clock.
func (a *Army) Draw(f *core.Frame) {
	cell := core.Cell{Rune: '+', Color: core.ColorMagenta}
	if a.moveTimer.Fraction() > 0.5 {
		cell = core.Cell{Rune: 'x', Color: core.ColorCyan}
	}
	for _, inv := range a.invaders {
		f.Set(inv.X, inv.Y, cell)
	}
}
