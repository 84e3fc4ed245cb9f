package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c := core.ColorRed; c <= core.ColorGray; c++ {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.ANSI()))
	}
	return styles
}()

// RenderFrame converts a frame to a styled string for a Bubble Tea view.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderFrame(f *core.Frame) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(f.Width()*f.Height()*2 + f.Height())

	for y := 0; y < f.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color
		x := 0
		for x < f.Width() {
			startColor := f.Get(x, y).Color

			var run strings.Builder
			for x < f.Width() {
				cell := f.Get(x, y)
				if cell.Color != startColor {
					break
				}
				if cell.IsBlank() {
					run.WriteRune(' ')
				} else {
					run.WriteRune(cell.Rune)
				}
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
