package invaders

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Player is the cannon on the bottom row.
type Player struct {
	x, y     int
	grid     core.Size
	shots    []*Shot
	cooldown core.Timer
	settings Settings
}

// NewPlayer places the player at the bottom center of the grid.
// The first shot is available immediately.
func NewPlayer(s Settings) *Player {
	return &Player{
		x:        s.Grid.W / 2,
		y:        s.Grid.H - 1,
		grid:     s.Grid,
		cooldown: core.NewReadyTimer(s.Cooldown),
		settings: s,
	}
}

// Position returns the player's cell.
func (p *Player) Position() core.Point {
	return core.Point{X: p.x, Y: p.y}
}

// Shots returns the shots currently alive.
func (p *Player) Shots() []*Shot {
	return p.shots
}

// MoveLeft moves one column left, stopping at the edge.
func (p *Player) MoveLeft() {
	p.x = core.Clamp(p.x-1, 0, p.grid.W-1)
}

// MoveRight moves one column right, stopping at the edge.
func (p *Player) MoveRight() {
	p.x = core.Clamp(p.x+1, 0, p.grid.W-1)
}

// Shoot fires a shot from the cell above the player.
// It fails while the cooldown is running or too many shots are alive.
func (p *Player) Shoot() bool {
	if !p.cooldown.Ready() || len(p.shots) >= p.settings.MaxShots {
		return false
	}
	p.shots = append(p.shots, NewShot(p.x, p.y-1, p.settings.ShotStep, p.settings.Explosion))
	p.cooldown.Reset()
	return true
}

// Update advances the cooldown and the shots, dropping dead shots.
func (p *Player) Update(elapsed time.Duration) {
	p.cooldown.Update(elapsed)
	for _, s := range p.shots {
		s.Update(elapsed)
	}
	p.shots = slices.DeleteFunc(p.shots, (*Shot).Dead)
}

// DetectHits explodes every flying shot that hits an invader and returns the
// number of invaders killed.
func (p *Player) DetectHits(army *Army) int {
	hits := 0
	for _, s := range p.shots {
		if s.Exploding() {
			continue
		}
		if army.KillAt(s.X, s.Y) {
			s.Explode()
			hits++
		}
	}
	return hits
}

// Draw writes the player and its shots to the frame.
func (p *Player) Draw(f *core.Frame) {
	f.Set(p.x, p.y, core.Cell{Rune: 'A', Color: core.ColorBrightGreen})
	for _, s := range p.shots {
		s.Draw(f)
	}
}
