package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the title screen styles.
type Theme struct {
	Logo     lipgloss.Style
	Subtitle lipgloss.Style
	Option   lipgloss.Style
	Selected lipgloss.Style
	Hint     lipgloss.Style
}

// DefaultTheme returns the title screen theme.
func DefaultTheme() Theme {
	return Theme{
		Logo:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Option:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
