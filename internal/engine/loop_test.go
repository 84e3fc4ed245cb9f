package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/render"
)

func testOptions() Options {
	return Options{
		Grid:   core.Size{W: 4, H: 2},
		Logger: testLogger(),
		Sleep:  func(time.Duration) {},
	}
}

func TestLoopSendsOneFramePerTick(t *testing.T) {
	game := &counterGame{maxTicks: 3}
	sender := &fakeSender{}
	loop := NewLoop(&scriptInput{}, sender, game, testOptions())

	stop, err := loop.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if stop != StopGameOver {
		t.Errorf("Stop = %v, expected game over", stop)
	}
	if len(sender.frames) != 3 || loop.Ticks() != 3 {
		t.Fatalf("Sent %d frames in %d ticks, expected 3", len(sender.frames), loop.Ticks())
	}
	for i, f := range sender.frames {
		if got, want := f.Get(0, 0).Rune, rune('1'+i); got != want {
			t.Errorf("Frame %d shows %q, expected %q", i, got, want)
		}
	}
	// Frames are fresh every tick
	if sender.frames[0] == sender.frames[1] {
		t.Error("Loop reused a frame after sending it")
	}
}

func TestLoopDrainsBurstInOneTick(t *testing.T) {
	game := &counterGame{maxTicks: 2}
	input := &scriptInput{events: keys(core.KeyLeft, core.KeyLeft, core.KeyAction, core.KeyOther)}
	loop := NewLoop(input, &fakeSender{}, game, testOptions())

	if _, err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(game.keys) != 4 {
		t.Fatalf("Handled %d keys, expected 4", len(game.keys))
	}
	for i, tick := range game.keyTicks {
		if tick != 0 {
			t.Errorf("Key %d handled at tick %d, expected all before the first update", i, tick)
		}
	}
}

func TestLoopQuitStopsBeforeUpdate(t *testing.T) {
	game := &counterGame{}
	sender := &fakeSender{}
	input := &scriptInput{events: keys(core.KeyRight, core.KeyQuit, core.KeyLeft)}
	loop := NewLoop(input, sender, game, testOptions())

	stop, err := loop.Run(context.Background())
	if err != nil || stop != StopQuit {
		t.Fatalf("Run() = (%v, %v), expected quit", stop, err)
	}
	if game.ticks != 0 || len(sender.frames) != 0 {
		t.Errorf("Quit should end the loop at once, got %d ticks and %d frames", game.ticks, len(sender.frames))
	}
	if len(input.events) != 1 {
		t.Errorf("Keys after quit should stay unread, %d left", len(input.events))
	}
}

func TestLoopReceiverGoneIsNotAnError(t *testing.T) {
	sender := &fakeSender{limit: 2, err: render.ErrReceiverGone}
	loop := NewLoop(&scriptInput{}, sender, &counterGame{}, testOptions())

	stop, err := loop.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if stop != StopReceiverGone {
		t.Errorf("Stop = %v, expected renderer gone", stop)
	}
	if len(sender.frames) != 2 {
		t.Errorf("Sent %d frames, expected 2", len(sender.frames))
	}
}

func TestLoopErrors(t *testing.T) {
	inputErr := errors.New("tty gone")
	loop := NewLoop(&scriptInput{err: inputErr}, &fakeSender{}, &counterGame{}, testOptions())
	stop, err := loop.Run(context.Background())
	if !errors.Is(err, inputErr) {
		t.Errorf("Input failure = %v, expected to wrap %v", err, inputErr)
	}
	if stop != StopError {
		t.Errorf("Input failure stop = %v, expected error", stop)
	}

	sender := &fakeSender{limit: 1, err: render.ErrClosed}
	loop = NewLoop(&scriptInput{}, sender, &counterGame{}, testOptions())
	stop, err = loop.Run(context.Background())
	if !errors.Is(err, render.ErrClosed) {
		t.Errorf("Send failure = %v, expected to wrap ErrClosed", err)
	}
	if stop != StopError {
		t.Errorf("Send failure stop = %v, expected error", stop)
	}
}

func TestLoopElapsedAndThrottle(t *testing.T) {
	clock := &stepClock{t: time.Unix(0, 0), step: 5 * time.Millisecond}
	var slept []time.Duration

	opts := testOptions()
	opts.Throttle = time.Millisecond
	opts.Now = clock.Now
	opts.Sleep = func(d time.Duration) { slept = append(slept, d) }

	game := &counterGame{maxTicks: 3}
	if _, err := NewLoop(&scriptInput{}, &fakeSender{}, game, opts).Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	for i, e := range game.elapsed {
		if e != 5*time.Millisecond {
			t.Errorf("Tick %d elapsed = %v, expected 5ms", i, e)
		}
	}
	if len(slept) != 3 || slept[0] != time.Millisecond {
		t.Errorf("Slept %v, expected 1ms after each of 3 ticks", slept)
	}
}

func TestLoopCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stop, err := NewLoop(&scriptInput{}, &fakeSender{}, &counterGame{}, testOptions()).Run(ctx)
	if err != nil || stop != StopCanceled {
		t.Errorf("Run() = (%v, %v), expected canceled", stop, err)
	}
}
