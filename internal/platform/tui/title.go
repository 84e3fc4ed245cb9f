package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

const logo = `
 ___ _  ___   ___   ___  ___ ___  ___
|_ _| \| \ \ / /_\ |   \| __| _ \/ __|
 | || .  |\ V / _ \| |) | _||   /\__ \
|___|_|\_| \_/_/ \_\___/|___|_|_\|___/`

const invaderArt = `
  ▄██▄    x x x x x
 ██████    + + + +
 ▀▄  ▄▀       A`

// presets are the difficulty choices offered on the title screen, in order.
var presets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// TitleModel is the Bubble Tea model for the title screen.
// Left/right pick a difficulty, start begins the game, quit exits.
type TitleModel struct {
	keys    KeyMap
	help    help.Model
	preview *core.Frame
	theme   Theme
	cursor  int
	width   int
	height  int

	started  bool
	quitting bool
}

// NewTitleModel creates a title screen with the given preset preselected.
// preview, if not nil, is shown instead of the built-in artwork.
func NewTitleModel(keys KeyMap, preset config.DifficultyPreset, preview *core.Frame) TitleModel {
	cursor := 1
	for i, p := range presets {
		if p == preset {
			cursor = i
		}
	}

	h := help.New()
	h.ShowAll = true

	return TitleModel{
		keys:    keys,
		help:    h,
		preview: preview,
		theme:   DefaultTheme(),
		cursor:  cursor,
		width:   80,
		height:  24,
	}
}

// Init initializes the title model.
func (m TitleModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the title screen.
func (m TitleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m TitleModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Start):
		m.started = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor < len(presets)-1 {
			m.cursor++
		}
	}
	return m, nil
}

// View renders the title screen.
func (m TitleModel) View() string {
	if m.quitting || m.started {
		return ""
	}

	options := make([]string, 0, len(presets))
	for i, p := range presets {
		label := " " + string(p) + " "
		if i == m.cursor {
			options = append(options, m.theme.Selected.Render("["+string(p)+"]"))
		} else {
			options = append(options, m.theme.Option.Render(label))
		}
	}

	art := m.theme.Subtitle.Render(strings.TrimPrefix(invaderArt, "\n"))
	if m.preview != nil {
		art = RenderFrame(m.preview)
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Logo.Render(strings.TrimPrefix(logo, "\n")),
		"",
		art,
		"",
		m.theme.Subtitle.Render("difficulty"),
		strings.Join(options, " "),
		"",
		m.help.View(m.keys),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Preset returns the highlighted difficulty.
func (m TitleModel) Preset() config.DifficultyPreset {
	return presets[m.cursor]
}

// TitleResult holds the outcome of the title screen.
type TitleResult struct {
	Preset config.DifficultyPreset
	Quit   bool
}

// RunTitle shows the title screen until the player starts or quits.
func RunTitle(keys KeyMap, preset config.DifficultyPreset, preview *core.Frame) (TitleResult, error) {
	p := tea.NewProgram(
		NewTitleModel(keys, preset, preview),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return TitleResult{Preset: preset}, err
	}

	m, ok := finalModel.(TitleModel)
	if !ok || !m.started {
		return TitleResult{Preset: preset, Quit: true}, nil
	}
	return TitleResult{Preset: m.Preset()}, nil
}
