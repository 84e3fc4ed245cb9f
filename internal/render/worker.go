package render

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Worker renders frames received from a queue on its own goroutine.
// It owns the previous frame and is the only writer to its display.
type Worker struct {
	display Display
	queue   *Queue
	size    core.Size
	logger  *log.Logger

	done     chan struct{}
	err      error
	rendered uint64
}

// StartWorker primes the display with a blank frame of the given size and
// starts serving frames from the queue. The worker stops when the queue is
// closed and drained, or at the first render error.
func StartWorker(d Display, q *Queue, size core.Size, logger *log.Logger) *Worker {
	w := &Worker{
		display: d,
		queue:   q,
		size:    size,
		logger:  logger,
		done:    make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *Worker) run() {
	defer close(w.done)

	start := time.Now()
	err := w.serve()
	if err != nil {
		dropped := w.queue.Len()
		// Nobody will drain the queue anymore
		w.queue.Detach()
		w.err = err
		w.logger.Error("render worker stopped", "error", err, "rendered", w.rendered, "dropped", dropped)
		return
	}
	w.logger.Debug("render worker finished", "rendered", w.rendered, "uptime", time.Since(start))
}

func (w *Worker) serve() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render: worker panic: %v", r)
		}
	}()

	// Priming: establish the first previous frame
	prev := core.NewFrame(w.size.W, w.size.H)
	if err := Render(w.display, prev, prev, true); err != nil {
		return err
	}

	// Serving
	for {
		cur, ok := w.queue.Receive()
		if !ok {
			return nil
		}
		if err := Render(w.display, prev, cur, false); err != nil {
			return err
		}
		w.rendered++
		prev = cur
	}
}

// Done is closed when the worker has stopped.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

// Wait blocks until the worker has stopped and returns its render error, if any.
func (w *Worker) Wait() error {
	<-w.done
	return w.err
}

// Rendered returns how many received frames were rendered.
// Only meaningful after Wait returned.
func (w *Worker) Rendered() uint64 {
	select {
	case <-w.done:
		return w.rendered
	default:
		return 0
	}
}
