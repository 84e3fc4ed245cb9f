package core

import (
	"testing"
	"time"
)

func TestTimerCountdown(t *testing.T) {
	timer := NewTimer(100 * time.Millisecond)

	if timer.Ready() {
		t.Fatal("New timer should not be ready")
	}

	timer.Update(40 * time.Millisecond)
	if timer.Ready() {
		t.Error("Timer should not be ready after 40ms of 100ms")
	}
	if timer.Remaining() != 60*time.Millisecond {
		t.Errorf("Remaining() = %v, expected 60ms", timer.Remaining())
	}

	timer.Update(80 * time.Millisecond)
	if !timer.Ready() {
		t.Error("Timer should be ready after 120ms of 100ms")
	}
	if timer.Remaining() != 0 {
		t.Errorf("Remaining() should saturate at 0, got %v", timer.Remaining())
	}
}

func TestTimerResetRearms(t *testing.T) {
	timer := NewReadyTimer(0)
	if !timer.Ready() {
		t.Fatal("NewReadyTimer should start ready")
	}

	timer.Reset()
	if timer.Ready() {
		t.Error("Reset timer should not be ready before the next Update, even with zero duration")
	}

	timer.Update(0)
	if !timer.Ready() {
		t.Error("Zero-duration timer should be ready after Update(0)")
	}
}

func TestTimerFraction(t *testing.T) {
	timer := NewTimer(2 * time.Second)
	if timer.Fraction() != 1 {
		t.Errorf("Fraction() = %f, expected 1", timer.Fraction())
	}

	timer.Update(500 * time.Millisecond)
	if timer.Fraction() != 0.75 {
		t.Errorf("Fraction() = %f, expected 0.75", timer.Fraction())
	}

	if NewTimer(0).Fraction() != 0 {
		t.Error("Zero-duration timer fraction should be 0")
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key      Key
		expected string
	}{
		{KeyOther, "Other"},
		{KeyLeft, "Left"},
		{KeyRight, "Right"},
		{KeyAction, "Action"},
		{KeyQuit, "Quit"},
		{Key(99), "Unknown"},
	}

	for _, tc := range tests {
		if tc.key.String() != tc.expected {
			t.Errorf("Key(%d).String() = %q, expected %q", tc.key, tc.key.String(), tc.expected)
		}
	}
}
