package render

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	frames := []*core.Frame{core.NewFrame(1, 1), core.NewFrame(2, 1), core.NewFrame(3, 1)}

	for _, f := range frames {
		if err := q.Send(f); err != nil {
			t.Fatalf("Send() failed: %v", err)
		}
	}
	if q.Len() != 3 || q.Sent() != 3 {
		t.Errorf("Len() = %d, Sent() = %d, expected 3 and 3", q.Len(), q.Sent())
	}

	q.Close()

	for i, want := range frames {
		got, ok := q.Receive()
		if !ok {
			t.Fatalf("Receive() %d reported closed before draining", i)
		}
		if got != want {
			t.Errorf("Receive() %d returned frame of width %d, expected %d", i, got.Width(), want.Width())
		}
	}

	if _, ok := q.Receive(); ok {
		t.Error("Receive() on closed, drained queue should report false")
	}
}

func TestQueueSendAfterClose(t *testing.T) {
	q := NewQueue()
	q.Close()
	q.Close() // idempotent

	if err := q.Send(core.NewFrame(1, 1)); !errors.Is(err, ErrClosed) {
		t.Errorf("Send() after Close error = %v, expected ErrClosed", err)
	}
}

func TestQueueRejectsNilFrame(t *testing.T) {
	q := NewQueue()
	if err := q.Send(nil); !errors.Is(err, ErrNilFrame) {
		t.Errorf("Send(nil) error = %v, expected ErrNilFrame", err)
	}
	if q.Len() != 0 {
		t.Error("Nil frame should not be queued")
	}
}

func TestQueueDetach(t *testing.T) {
	q := NewQueue()
	_ = q.Send(core.NewFrame(1, 1))

	q.Detach()

	if q.Len() != 0 {
		t.Errorf("Detach should drop pending frames, Len() = %d", q.Len())
	}
	if err := q.Send(core.NewFrame(1, 1)); !errors.Is(err, ErrReceiverGone) {
		t.Errorf("Send() after Detach error = %v, expected ErrReceiverGone", err)
	}
	if _, ok := q.Receive(); ok {
		t.Error("Receive() after Detach should report false")
	}
}

func TestQueueReceiveBlocksUntilSend(t *testing.T) {
	q := NewQueue()
	got := make(chan *core.Frame, 1)

	go func() {
		f, _ := q.Receive()
		got <- f
	}()

	select {
	case <-got:
		t.Fatal("Receive() returned before anything was sent")
	case <-time.After(20 * time.Millisecond):
	}

	want := core.NewFrame(4, 4)
	if err := q.Send(want); err != nil {
		t.Fatalf("Send() failed: %v", err)
	}

	select {
	case f := <-got:
		if f != want {
			t.Error("Receive() returned the wrong frame")
		}
	case <-time.After(time.Second):
		t.Fatal("Receive() did not wake up after Send()")
	}
}

func TestQueueCloseWakesReceiver(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		if _, ok := q.Receive(); ok {
			t.Error("Receive() on an empty closed queue should report false")
		}
	}()

	time.Sleep(10 * time.Millisecond)
	q.Close()
	wg.Wait()
}

func TestQueueSendNeverBlocks(t *testing.T) {
	q := NewQueue()
	done := make(chan struct{})

	go func() {
		for i := 0; i < 10000; i++ {
			_ = q.Send(core.NewFrame(1, 1))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Send() blocked without a receiver")
	}
	if q.Len() != 10000 {
		t.Errorf("Len() = %d, expected 10000", q.Len())
	}
}
