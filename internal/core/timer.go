package core

import "time"

// Timer counts down elapsed game time.
//
// A timer becomes ready only from Update, once the accumulated elapsed time
// reaches its duration. Reset re-arms it, so a zero-duration timer that was
// just reset stays not ready until the next Update.
type Timer struct {
	duration  time.Duration
	remaining time.Duration
	ready     bool
}

// NewTimer creates an armed timer with the given duration.
func NewTimer(d time.Duration) Timer {
	if d < 0 {
		d = 0
	}
	return Timer{duration: d, remaining: d}
}

// NewReadyTimer creates a timer that starts out ready.
func NewReadyTimer(d time.Duration) Timer {
	t := NewTimer(d)
	t.Finish()
	return t
}

// Update advances the timer by elapsed time.
func (t *Timer) Update(elapsed time.Duration) {
	if t.ready {
		return
	}
	t.remaining -= elapsed
	if t.remaining <= 0 {
		t.remaining = 0
		t.ready = true
	}
}

// Reset re-arms the timer with its full duration.
func (t *Timer) Reset() {
	t.remaining = t.duration
	t.ready = false
}

// Finish marks the timer as ready immediately.
func (t *Timer) Finish() {
	t.remaining = 0
	t.ready = true
}

// Ready returns true once the duration has elapsed.
func (t Timer) Ready() bool {
	return t.ready
}

// Duration returns the configured duration.
func (t Timer) Duration() time.Duration {
	return t.duration
}

// Remaining returns the time left before the timer is ready.
func (t Timer) Remaining() time.Duration {
	return t.remaining
}

// Fraction returns remaining/duration in [0, 1]; 0 for zero-duration timers.
func (t Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 0
	}
	return float64(t.remaining) / float64(t.duration)
}
