package terminal

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ANSIDisplay writes cells to a terminal using ANSI escape sequences.
// Output is buffered until Flush so a whole frame reaches the terminal in one write.
type ANSIDisplay struct {
	buf    *bufio.Writer
	color  bool
	styles map[core.Color]lipgloss.Style
}

// NewANSIDisplay creates a display writing to w with the given color profile.
// termenv.Ascii disables colors.
func NewANSIDisplay(w io.Writer, profile termenv.Profile) *ANSIDisplay {
	buf := bufio.NewWriterSize(w, 16*1024)

	renderer := lipgloss.NewRenderer(buf)
	renderer.SetColorProfile(profile)

	d := &ANSIDisplay{
		buf:    buf,
		color:  profile != termenv.Ascii,
		styles: make(map[core.Color]lipgloss.Style),
	}
	for c := core.ColorRed; c <= core.ColorGray; c++ {
		d.styles[c] = renderer.NewStyle().Foreground(lipgloss.Color(c.ANSI()))
	}
	return d
}

// Clear erases the screen and homes the cursor.
func (d *ANSIDisplay) Clear() error {
	_, err := fmt.Fprintf(d.buf, termenv.CSI+termenv.EraseDisplaySeq+termenv.CSI+termenv.CursorPositionSeq, 2, 1, 1)
	return err
}

// MoveTo positions the cursor at a zero-based cell.
func (d *ANSIDisplay) MoveTo(x, y int) error {
	_, err := fmt.Fprintf(d.buf, termenv.CSI+termenv.CursorPositionSeq, y+1, x+1)
	return err
}

// Put writes one cell at the cursor position.
func (d *ANSIDisplay) Put(c core.Cell) error {
	r := c.Rune
	if c.IsBlank() {
		r = ' '
	}

	style, ok := d.styles[c.Color]
	if !d.color || !ok || r == ' ' {
		_, err := d.buf.WriteRune(r)
		return err
	}
	_, err := d.buf.WriteString(style.Render(string(r)))
	return err
}

// Flush writes buffered output to the terminal.
func (d *ANSIDisplay) Flush() error {
	return d.buf.Flush()
}
