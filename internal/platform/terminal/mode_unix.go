//go:build linux || darwin || freebsd || netbsd || openbsd

package terminal

import (
	"os"

	"github.com/pkg/term/termios"
)

// flushInput discards keys typed but not yet read so they don't leak into the shell.
func flushInput(f *os.File) error {
	return termios.Tcflush(f.Fd(), termios.TCIFLUSH)
}
