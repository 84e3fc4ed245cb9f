package render

import (
	"errors"
	"sync"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

var (
	// ErrClosed is returned when sending on a queue the sender already closed.
	ErrClosed = errors.New("render: queue closed")
	// ErrReceiverGone is returned when the worker has stopped receiving.
	ErrReceiverGone = errors.New("render: receiver gone")
	// ErrNilFrame is returned when a nil frame is sent or rendered.
	ErrNilFrame = errors.New("render: nil frame")
)

// Queue is an unbounded FIFO of frames with one sender and one receiver.
//
// Send never blocks. Receive blocks until a frame is available or the sender
// has closed the queue and every pending frame was received. A slow receiver
// makes the queue grow without bound.
type Queue struct {
	mu       sync.Mutex
	cond     *sync.Cond
	frames   []*core.Frame
	closed   bool
	detached bool
	sent     uint64
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Send appends a frame. Ownership of the frame passes to the receiver.
func (q *Queue) Send(f *core.Frame) error {
	if f == nil {
		return ErrNilFrame
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.detached {
		return ErrReceiverGone
	}
	if q.closed {
		return ErrClosed
	}
	q.frames = append(q.frames, f)
	q.sent++
	q.cond.Signal()
	return nil
}

// Close marks the end of the stream. Frames already sent are still delivered.
// Closing twice is a no-op.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.cond.Broadcast()
}

// Receive returns the oldest pending frame.
// It returns false once the queue is closed and drained, or detached.
func (q *Queue) Receive() (*core.Frame, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.frames) == 0 && !q.closed && !q.detached {
		q.cond.Wait()
	}
	if q.detached || len(q.frames) == 0 {
		return nil, false
	}

	f := q.frames[0]
	q.frames[0] = nil
	q.frames = q.frames[1:]
	return f, true
}

// Detach is called by the receiver when it stops for good.
// Pending frames are dropped and later sends fail with ErrReceiverGone.
func (q *Queue) Detach() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.detached = true
	q.frames = nil
	q.cond.Broadcast()
}

// Len returns the number of frames waiting to be received.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.frames)
}

// Sent returns the total number of frames accepted by Send.
func (q *Queue) Sent() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.sent
}
