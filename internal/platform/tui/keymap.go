// Package tui holds the Bubble Tea side of the game: configurable key
// bindings with help text and the title screen shown before play.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// KeyMap binds key names to game keys.
// It implements help.KeyMap and terminal.KeyResolver.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Action key.Binding
	Quit   key.Binding
	Start  key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Left:   binding(cfg.Left, "move left"),
		Right:  binding(cfg.Right, "move right"),
		Action: binding(cfg.Action, "fire"),
		Quit:   binding(cfg.Quit, "quit"),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "start"),
		),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys renders key names the way the help bubble shows them.
func helpKeys(keys []string) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		switch k {
		case "left":
			k = "←"
		case "right":
			k = "→"
		case "up":
			k = "↑"
		case " ":
			k = "space"
		}
		names = append(names, k)
	}
	return strings.Join(names, "/")
}

// Resolve maps a key name to a game key. Unbound names are KeyOther.
// Quit wins when a name is bound to several keys.
func (k KeyMap) Resolve(name string) core.Key {
	switch {
	case bound(k.Quit, name):
		return core.KeyQuit
	case bound(k.Left, name):
		return core.KeyLeft
	case bound(k.Right, name):
		return core.KeyRight
	case bound(k.Action, name):
		return core.KeyAction
	}
	return core.KeyOther
}

func bound(b key.Binding, name string) bool {
	if !b.Enabled() {
		return false
	}
	for _, k := range b.Keys() {
		if k == name {
			return true
		}
	}
	return false
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Action, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Action},
		{k.Start, k.Quit},
	}
}
