package core

// Key is a semantic game key, abstracted from physical key presses.
// Backends decode raw input into key names, the key map turns names into keys.
type Key int

const (
	KeyOther  Key = iota // Any key without a binding
	KeyLeft              // Left arrow, A - move left
	KeyRight             // Right arrow, D - move right
	KeyAction            // Up arrow, W - fire
	KeyQuit              // Esc, Q, Ctrl+C - end the game
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyOther:
		return "Other"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyAction:
		return "Action"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is a single key press read from an input source.
type Event struct {
	Key  Key
	Name string // Raw key name, e.g. "left", "q", "ctrl+c"
}
