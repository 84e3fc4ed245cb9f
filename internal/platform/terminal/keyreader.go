package terminal

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/muesli/cancelreader"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// escTimeout is how long a trailing ESC waits for the rest of its sequence
// before it is reported as an Escape press.
const escTimeout = 50 * time.Millisecond

// KeyReader turns a blocking terminal input stream into pollable key events.
// One goroutine reads raw chunks and another decodes them; Poll and Read are
// meant to be called from the game loop goroutine only.
type KeyReader struct {
	eventStream

	r       cancelreader.CancelReader
	resolve KeyResolver

	quit    chan struct{}
	stopped chan struct{}

	closeOnce sync.Once
}

// NewKeyReader starts reading keys from in.
func NewKeyReader(in io.Reader, resolve KeyResolver) (*KeyReader, error) {
	r, err := cancelreader.NewReader(in)
	if err != nil {
		return nil, fmt.Errorf("terminal: cannot create input reader: %w", err)
	}

	kr := &KeyReader{
		eventStream: newEventStream(),
		r:           r,
		resolve:     resolve,
		quit:        make(chan struct{}),
		stopped:     make(chan struct{}),
	}
	chunks := make(chan inputChunk)
	go kr.readLoop(chunks)
	go kr.decodeLoop(chunks)
	return kr, nil
}

// inputChunk is one Read result handed from readLoop to decodeLoop.
type inputChunk struct {
	data []byte
	err  error
}

func (kr *KeyReader) readLoop(chunks chan<- inputChunk) {
	defer close(kr.stopped)

	buf := make([]byte, 256)
	for {
		n, err := kr.r.Read(buf)
		c := inputChunk{data: append([]byte(nil), buf[:n]...), err: err}
		select {
		case chunks <- c:
		case <-kr.quit:
			return
		}
		if err != nil {
			return
		}
	}
}

// decodeLoop joins escape sequences split across reads. An incomplete
// sequence is held back until the next chunk or until escTimeout passes.
func (kr *KeyReader) decodeLoop(chunks <-chan inputChunk) {
	var pending []byte
	flush := time.NewTimer(escTimeout)
	flush.Stop()
	defer flush.Stop()

	for {
		select {
		case c := <-chunks:
			flush.Stop()
			names, rest := decodeBuffer(append(pending, c.data...), c.err != nil)
			pending = rest
			if !kr.emit(names) {
				return
			}
			if c.err != nil {
				if !errors.Is(c.err, cancelreader.ErrCanceled) {
					kr.errc <- fmt.Errorf("terminal: read input: %w", c.err)
				}
				return
			}
			if len(pending) > 0 {
				flush.Reset(escTimeout)
			}
		case <-flush.C:
			names, _ := decodeBuffer(pending, true)
			pending = nil
			if !kr.emit(names) {
				return
			}
		case <-kr.quit:
			return
		}
	}
}

// emit resolves and queues names. It returns false once the reader is closed.
func (kr *KeyReader) emit(names []string) bool {
	for _, name := range names {
		ev := core.Event{Key: kr.resolve.Resolve(name), Name: name}
		select {
		case kr.events <- ev:
		case <-kr.quit:
			return false
		}
	}
	return true
}

// Close stops the reader goroutine and releases the input.
func (kr *KeyReader) Close() error {
	var err error
	kr.closeOnce.Do(func() {
		close(kr.quit)
		if kr.r.Cancel() {
			<-kr.stopped
		}
		err = kr.r.Close()
	})
	return err
}
