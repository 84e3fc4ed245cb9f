package tui

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestKeyMapResolve(t *testing.T) {
	km := NewKeyMap(config.Default().Keys)

	tests := []struct {
		name     string
		expected core.Key
	}{
		{"left", core.KeyLeft},
		{"a", core.KeyLeft},
		{"right", core.KeyRight},
		{"d", core.KeyRight},
		{"up", core.KeyAction},
		{"w", core.KeyAction},
		{"esc", core.KeyQuit},
		{"q", core.KeyQuit},
		{"ctrl+c", core.KeyQuit},
		{"x", core.KeyOther},
		{"unknown", core.KeyOther},
		{"", core.KeyOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Resolve(tt.name); got != tt.expected {
				t.Errorf("Resolve(%q) = %v, expected %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestKeyMapQuitWinsOverlap(t *testing.T) {
	km := NewKeyMap(config.KeysConfig{
		Left: []string{"q"},
		Quit: []string{"q"},
	})

	if got := km.Resolve("q"); got != core.KeyQuit {
		t.Errorf("Resolve(q) = %v, expected Quit", got)
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := NewKeyMap(config.Default().Keys)

	if got := len(km.ShortHelp()); got != 4 {
		t.Errorf("ShortHelp() has %d bindings, expected 4", got)
	}
	if got := km.Left.Help().Key; got != "←/a" {
		t.Errorf("Left help key = %q, expected %q", got, "←/a")
	}
	if got := km.Action.Help().Desc; got != "fire" {
		t.Errorf("Action help desc = %q, expected %q", got, "fire")
	}
}
