// Package engine runs a game session: the fixed-cadence game loop that
// produces frames, and the shutdown sequence that joins the render worker,
// waits for audio and gives the terminal back.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/render"
)

// Input is a pollable source of key events.
type Input interface {
	// Poll reports whether an event is ready, waiting at most timeout.
	Poll(timeout time.Duration) (bool, error)
	// Read consumes the next event.
	Read() (core.Event, error)
}

// FrameSender hands finished frames to the renderer.
type FrameSender interface {
	Send(f *core.Frame) error
}

// Game is the state the loop drives.
type Game interface {
	// Start runs once before the first tick.
	Start()
	// HandleKey applies a key press and reports whether to quit.
	HandleKey(k core.Key) bool
	// Entities returns the drawables in draw order.
	Entities() []core.Drawable
	// Resolve applies game rules after every entity was updated.
	Resolve()
	// Over reports whether the game has ended.
	Over() bool
}

// Stop tells why the loop ended.
type Stop int

const (
	StopQuit Stop = iota
	StopGameOver
	StopReceiverGone
	StopCanceled
	// StopError means the loop ended on an error or a panic.
	StopError
)

// String returns the stop reason name.
func (s Stop) String() string {
	switch s {
	case StopQuit:
		return "quit"
	case StopGameOver:
		return "game over"
	case StopReceiverGone:
		return "renderer gone"
	case StopCanceled:
		return "canceled"
	case StopError:
		return "error"
	default:
		return "unknown"
	}
}

// Options configures a Loop.
type Options struct {
	Grid     core.Size
	Throttle time.Duration // Sleep at the end of every tick
	Logger   *log.Logger

	// Clock hooks, time.Now and time.Sleep when nil.
	Now   func() time.Time
	Sleep func(time.Duration)
}

// Loop is the producer side of the render pipeline. It runs on the caller's
// goroutine and is the only writer of game state.
type Loop struct {
	input  Input
	frames FrameSender
	game   Game
	opts   Options

	ticks uint64
}

// NewLoop creates a loop reading input, driving game and sending frames.
func NewLoop(input Input, frames FrameSender, game Game, opts Options) *Loop {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Loop{input: input, frames: frames, game: game, opts: opts}
}

// Ticks returns the number of frames produced so far.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Run ticks until the player quits, the game ends, the renderer goes away or
// ctx is canceled. Only input and send failures are returned as errors.
func (l *Loop) Run(ctx context.Context) (Stop, error) {
	last := l.opts.Now()
	for {
		if ctx.Err() != nil {
			return StopCanceled, nil
		}

		frame := core.NewFrame(l.opts.Grid.W, l.opts.Grid.H)
		now := l.opts.Now()
		elapsed := now.Sub(last)
		last = now

		quit, err := l.drainInput()
		if err != nil {
			return StopError, err
		}
		if quit {
			return StopQuit, nil
		}

		entities := l.game.Entities()
		for _, e := range entities {
			e.Update(elapsed)
		}
		l.game.Resolve()
		for _, e := range entities {
			e.Draw(frame)
		}

		if err := l.frames.Send(frame); err != nil {
			if errors.Is(err, render.ErrReceiverGone) {
				l.opts.Logger.Warn("renderer gone, stopping game loop", "ticks", l.ticks)
				return StopReceiverGone, nil
			}
			return StopError, fmt.Errorf("engine: send frame: %w", err)
		}
		l.ticks++

		l.opts.Sleep(l.opts.Throttle)

		if l.game.Over() {
			return StopGameOver, nil
		}
	}
}

// drainInput handles every pending key without blocking.
func (l *Loop) drainInput() (bool, error) {
	for {
		ready, err := l.input.Poll(0)
		if err != nil {
			return false, fmt.Errorf("engine: poll input: %w", err)
		}
		if !ready {
			return false, nil
		}

		ev, err := l.input.Read()
		if err != nil {
			return false, fmt.Errorf("engine: read input: %w", err)
		}
		if ev.Key == core.KeyOther {
			l.opts.Logger.Debug("unbound key", "name", ev.Name)
		}
		if l.game.HandleKey(ev.Key) {
			return true, nil
		}
	}
}
