package invaders

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// HUD shows the score and play time on the top row.
type HUD struct {
	kills     int
	remaining int
	played    time.Duration
}

// Update accumulates play time.
func (h *HUD) Update(elapsed time.Duration) {
	h.played += elapsed
}

// SetScore updates the displayed counters.
func (h *HUD) SetScore(kills, remaining int) {
	h.kills = kills
	h.remaining = remaining
}

// Played returns the accumulated play time.
func (h *HUD) Played() time.Duration {
	return h.played
}

// Draw writes the HUD to row 0. The right-hand counters never cover the
// score: on narrow grids the timer is dropped first, then the counters.
func (h *HUD) Draw(f *core.Frame) {
	score := fmt.Sprintf("SCORE %d", h.kills)
	f.DrawText(0, 0, score, core.ColorYellow)

	secs := int(h.played / time.Second)
	for _, right := range []string{
		fmt.Sprintf("%d:%02d LEFT %d", secs/60, secs%60, h.remaining),
		fmt.Sprintf("LEFT %d", h.remaining),
	} {
		if x := f.Width() - len(right); x > len(score) {
			f.DrawText(x, 0, right, core.ColorGray)
			return
		}
	}
}
