package terminal

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// eventStream is the pollable side of an input goroutine.
// A producer goroutine sends on events and reports its terminal error on errc.
// Poll and Read are meant to be called from a single goroutine.
type eventStream struct {
	events chan core.Event
	errc   chan error

	pending []core.Event
	err     error
}

func newEventStream() eventStream {
	return eventStream{
		events: make(chan core.Event, 128),
		errc:   make(chan error, 1),
	}
}

// Poll reports whether an event is available, waiting at most timeout.
// A zero timeout never blocks.
func (s *eventStream) Poll(timeout time.Duration) (bool, error) {
	if len(s.pending) > 0 {
		return true, nil
	}
	if s.err != nil {
		return false, s.err
	}

	if timeout <= 0 {
		select {
		case ev := <-s.events:
			s.pending = append(s.pending, ev)
			return true, nil
		case err := <-s.errc:
			s.err = err
			return false, err
		default:
			return false, nil
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case ev := <-s.events:
		s.pending = append(s.pending, ev)
		return true, nil
	case err := <-s.errc:
		s.err = err
		return false, err
	case <-timer.C:
		return false, nil
	}
}

// Read consumes one event, blocking until one arrives.
func (s *eventStream) Read() (core.Event, error) {
	if len(s.pending) > 0 {
		ev := s.pending[0]
		s.pending = s.pending[1:]
		return ev, nil
	}
	if s.err != nil {
		return core.Event{}, s.err
	}

	select {
	case ev := <-s.events:
		return ev, nil
	case err := <-s.errc:
		s.err = err
		return core.Event{}, err
	}
}
