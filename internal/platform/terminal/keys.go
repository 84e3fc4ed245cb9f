// Package terminal owns the terminal device: raw mode and alternate screen
// management, the ANSI and tcell display backends, and keyboard input.
package terminal

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// KeyResolver maps a key name to a game key.
type KeyResolver interface {
	Resolve(name string) core.Key
}

// Byte values with special meaning in raw-mode input.
const (
	keyESC       = 0x1b
	keyDEL       = 0x7f
	keyCtrlC     = 0x03
	keyTab       = 0x09
	keyEnterCR   = 0x0d
	keyEnterLF   = 0x0a
	keyUnknown   = "unknown"
	csiIntroByte = '['
	ss3IntroByte = 'O'
)

// cursorKeys maps the final byte of CSI/SS3 cursor sequences to key names.
var cursorKeys = map[byte]string{
	'A': "up",
	'B': "down",
	'C': "right",
	'D': "left",
	'H': "home",
	'F': "end",
}

// DecodeKeys splits raw terminal input into key names.
// Names follow Bubble Tea's conventions ("left", "esc", "ctrl+c", " ", "q").
// The buffer is treated as complete: a trailing ESC decodes as "esc".
func DecodeKeys(buf []byte) []string {
	names, _ := decodeBuffer(buf, true)
	return names
}

// decodeBuffer decodes buf and returns the undecoded tail. Unless flush is set,
// an escape sequence cut short at the end of buf is left in the tail so the
// caller can prepend it to the next read.
func decodeBuffer(buf []byte, flush bool) ([]string, []byte) {
	var names []string
	for i := 0; i < len(buf); {
		if !flush && incompleteEscape(buf[i:]) {
			return names, buf[i:]
		}
		name, n := decodeOne(buf[i:])
		names = append(names, name)
		i += n
	}
	return names, nil
}

// incompleteEscape reports whether buf holds only the beginning of an
// ESC, CSI or SS3 sequence.
func incompleteEscape(buf []byte) bool {
	if buf[0] != keyESC {
		return false
	}
	if len(buf) == 1 {
		return true
	}
	switch buf[1] {
	case csiIntroByte:
		for _, c := range buf[2:] {
			if c >= 0x40 && c <= 0x7e {
				return false
			}
		}
		return true
	case ss3IntroByte:
		return len(buf) == 2
	}
	return false
}

// decodeOne decodes the key at the start of buf and reports how many bytes it used.
func decodeOne(buf []byte) (string, int) {
	b := buf[0]
	switch {
	case b == keyESC:
		return decodeEscape(buf)
	case b == keyCtrlC:
		return "ctrl+c", 1
	case b == keyTab:
		return "tab", 1
	case b == keyEnterCR || b == keyEnterLF:
		return "enter", 1
	case b == keyDEL || b == 0x08:
		return "backspace", 1
	case b == 0x00:
		return "ctrl+@", 1
	case b < 0x20:
		return "ctrl+" + string(rune('a'+b-1)), 1
	}

	r, n := utf8.DecodeRune(buf)
	if r == utf8.RuneError {
		return keyUnknown, 1
	}
	return string(r), n
}

func decodeEscape(buf []byte) (string, int) {
	if len(buf) == 1 {
		return "esc", 1
	}

	switch buf[1] {
	case csiIntroByte:
		// Parameters and intermediates run until a final byte in 0x40-0x7e
		for i := 2; i < len(buf); i++ {
			c := buf[i]
			if c >= 0x40 && c <= 0x7e {
				if i == 2 {
					if name, ok := cursorKeys[c]; ok {
						return name, i + 1
					}
				}
				return keyUnknown, i + 1
			}
		}
		return keyUnknown, len(buf)
	case ss3IntroByte:
		if len(buf) < 3 {
			break
		}
		if name, ok := cursorKeys[buf[2]]; ok {
			return name, 3
		}
		return keyUnknown, 3
	}

	// Escape followed by a plain key is two presses
	return "esc", 1
}
