package terminal

import (
	"errors"
	"fmt"
	"os"

	"github.com/muesli/termenv"
)

// ANSIDevice is the default terminal backend: raw stdin, ANSI output.
type ANSIDevice struct {
	*ANSIDisplay
	*KeyReader

	mode *Mode
}

// OpenANSI takes over the terminal. The caller must Close the device on every
// exit path to give the terminal back.
func OpenANSI(in, out *os.File, resolve KeyResolver, color bool) (*ANSIDevice, error) {
	profile := termenv.Ascii
	if color {
		profile = termenv.NewOutput(out).EnvColorProfile()
	}

	mode, err := EnterMode(in, out)
	if err != nil {
		return nil, err
	}

	keys, err := NewKeyReader(in, resolve)
	if err != nil {
		return nil, errors.Join(err, mode.Restore())
	}

	return &ANSIDevice{
		ANSIDisplay: NewANSIDisplay(out, profile),
		KeyReader:   keys,
		mode:        mode,
	}, nil
}

// Close stops reading input and restores the terminal.
func (d *ANSIDevice) Close() error {
	var errs []error
	if err := d.KeyReader.Close(); err != nil {
		errs = append(errs, fmt.Errorf("terminal: close input: %w", err))
	}
	if err := d.mode.Restore(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
