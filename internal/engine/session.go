package engine

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/render"
)

// Device is a terminal backend: a display for the render worker, an input
// for the loop, and Close to restore the terminal.
type Device interface {
	render.Display
	Input
	Close() error
}

// Audio is the sound service as seen by the session.
type Audio interface {
	Wait()
}

// Session is everything one game needs.
type Session struct {
	Device Device
	Game   Game
	Audio  Audio
	Grid   core.Size

	Throttle time.Duration
	Logger   *log.Logger
}

// Result summarizes a finished session.
type Result struct {
	Stop     Stop
	Ticks    uint64
	Sent     uint64
	Rendered uint64
}

// Run plays the session to the end. It owns the device: whatever happens,
// including a panic in the game, the queue is closed, the render worker
// joined, audio drained and the terminal restored, in that order.
func Run(ctx context.Context, s Session) (res Result, err error) {
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}

	queue := render.NewQueue()
	worker := render.StartWorker(s.Device, queue, s.Grid, logger.WithPrefix("render"))
	loop := NewLoop(s.Device, queue, s.Game, Options{
		Grid:     s.Grid,
		Throttle: s.Throttle,
		Logger:   logger,
	})

	defer func() {
		if r := recover(); r != nil {
			logger.Error("game loop panic", "panic", r, "stack", string(debug.Stack()))
			err = errors.Join(err, fmt.Errorf("engine: game loop panic: %v", r))
			res.Stop = StopError
		}

		queue.Close()
		if werr := worker.Wait(); werr != nil {
			err = errors.Join(err, werr)
		}
		if s.Audio != nil {
			s.Audio.Wait()
		}
		if cerr := s.Device.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("engine: restore terminal: %w", cerr))
		}

		res.Ticks = loop.Ticks()
		res.Sent = queue.Sent()
		res.Rendered = worker.Rendered()
		logger.Info("session finished", "stop", res.Stop, "ticks", res.Ticks, "sent", res.Sent, "rendered", res.Rendered)
	}()

	s.Game.Start()
	res.Stop, err = loop.Run(ctx)
	return res, err
}
