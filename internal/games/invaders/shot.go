package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Shot is a projectile fired by the player. It climbs one row per step and,
// after hitting something, shows an explosion for a while before dying.
type Shot struct {
	X, Y      int
	exploding bool
	timer     core.Timer
	explosion time.Duration
}

// NewShot creates a shot at (x, y).
func NewShot(x, y int, step, explosion time.Duration) *Shot {
	return &Shot{
		X:         x,
		Y:         y,
		timer:     core.NewTimer(step),
		explosion: explosion,
	}
}

// Update moves the shot up when its step timer fires.
func (s *Shot) Update(elapsed time.Duration) {
	s.timer.Update(elapsed)
	if s.timer.Ready() && !s.exploding {
		if s.Y > 0 {
			s.Y--
		}
		s.timer.Reset()
	}
}

// Explode stops the shot and starts its explosion.
func (s *Shot) Explode() {
	s.exploding = true
	s.timer = core.NewTimer(s.explosion)
}

// Exploding reports whether the shot has hit something.
func (s *Shot) Exploding() bool {
	return s.exploding
}

// Dead reports whether the shot should be removed.
func (s *Shot) Dead() bool {
	return (s.exploding && s.timer.Ready()) || s.Y == 0
}

// Draw writes the shot to the frame.
func (s *Shot) Draw(f *core.Frame) {
	if s.exploding {
		f.Set(s.X, s.Y, core.Cell{Rune: '*', Color: core.ColorOrange})
		return
	}
	f.Set(s.X, s.Y, core.Cell{Rune: '|', Color: core.ColorBrightYellow})
}
