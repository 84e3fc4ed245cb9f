package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ErrTooSmall is returned when the terminal cannot fit the game grid.
var ErrTooSmall = errors.New("terminal: window too small")

// Mode holds the terminal state captured when the game took over the screen.
// Restore puts everything back and is safe to call more than once.
type Mode struct {
	in    *os.File
	out   io.Writer
	state *term.State

	restoreOnce sync.Once
	restoreErr  error
}

// EnterMode switches in to raw mode and out to the alternate screen with a hidden cursor.
// On failure everything already changed is restored before returning.
func EnterMode(in *os.File, out io.Writer) (*Mode, error) {
	state, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("terminal: cannot enter raw mode: %w", err)
	}

	m := &Mode{in: in, out: out, state: state}
	if _, err := io.WriteString(out, termenv.CSI+termenv.AltScreenSeq+termenv.CSI+termenv.HideCursorSeq); err != nil {
		return nil, errors.Join(fmt.Errorf("terminal: cannot enter alternate screen: %w", err), m.Restore())
	}
	return m, nil
}

// Restore flushes pending input, shows the cursor, leaves the alternate
// screen and restores the saved terminal state. Every step runs even if an
// earlier one fails; the errors are joined.
func (m *Mode) Restore() error {
	m.restoreOnce.Do(func() {
		var errs []error
		if err := flushInput(m.in); err != nil {
			errs = append(errs, fmt.Errorf("terminal: flush input: %w", err))
		}
		if _, err := io.WriteString(m.out, termenv.CSI+termenv.ShowCursorSeq); err != nil {
			errs = append(errs, fmt.Errorf("terminal: show cursor: %w", err))
		}
		if _, err := io.WriteString(m.out, termenv.CSI+termenv.ExitAltScreenSeq); err != nil {
			errs = append(errs, fmt.Errorf("terminal: leave alternate screen: %w", err))
		}
		if err := term.Restore(int(m.in.Fd()), m.state); err != nil {
			errs = append(errs, fmt.Errorf("terminal: restore mode: %w", err))
		}
		m.restoreErr = errors.Join(errs...)
	})
	return m.restoreErr
}

// CheckSize verifies that the terminal behind f can show a grid of the given size.
func CheckSize(f *os.File, grid core.Size) error {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return fmt.Errorf("terminal: cannot read window size: %w", err)
	}
	return fits(core.Size{W: w, H: h}, grid)
}

func fits(window, grid core.Size) error {
	if window.W < grid.W || window.H < grid.H {
		return fmt.Errorf("%w: need %dx%d, have %dx%d", ErrTooSmall, grid.W, grid.H, window.W, window.H)
	}
	return nil
}

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
