package terminal

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// TcellDevice renders through a tcell screen and reads its key events.
type TcellDevice struct {
	eventStream

	screen  tcell.Screen
	resolve KeyResolver
	styles  map[core.Color]tcell.Style
	color   bool

	x, y int

	quit      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// OpenTcell takes over the terminal with tcell.
func OpenTcell(resolve KeyResolver, color bool) (*TcellDevice, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: cannot create tcell screen: %w", err)
	}
	return NewTcellDevice(screen, resolve, color)
}

// NewTcellDevice initializes screen and starts polling its events.
func NewTcellDevice(screen tcell.Screen, resolve KeyResolver, color bool) (*TcellDevice, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal: cannot init tcell screen: %w", err)
	}
	screen.HideCursor()

	d := &TcellDevice{
		eventStream: newEventStream(),
		screen:      screen,
		resolve:     resolve,
		styles:      tcellStyles(),
		color:       color,
		quit:        make(chan struct{}),
		stopped:     make(chan struct{}),
	}
	go d.pollLoop()
	return d, nil
}

func tcellStyles() map[core.Color]tcell.Style {
	styles := make(map[core.Color]tcell.Style)
	for c := core.ColorRed; c <= core.ColorGray; c++ {
		n, err := strconv.Atoi(c.ANSI())
		if err != nil {
			continue
		}
		styles[c] = tcell.StyleDefault.Foreground(tcell.PaletteColor(n))
	}
	return styles
}

func (d *TcellDevice) pollLoop() {
	defer close(d.stopped)

	for {
		// PollEvent returns nil once the screen is finalized
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}

		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		name := tcellKeyName(key)
		select {
		case d.events <- core.Event{Key: d.resolve.Resolve(name), Name: name}:
		case <-d.quit:
			return
		}
	}
}

// tcellKeyName names a tcell key event the same way DecodeKeys does.
func tcellKeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		r := string(ev.Rune())
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return "alt+" + r
		}
		return r
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyHome:
		return "home"
	case tcell.KeyEnd:
		return "end"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	}

	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+k-tcell.KeyCtrlA))
	}
	return keyUnknown
}

// Clear erases the screen and homes the cursor.
func (d *TcellDevice) Clear() error {
	d.screen.Clear()
	d.x, d.y = 0, 0
	return nil
}

// MoveTo positions the cursor at a zero-based cell.
func (d *TcellDevice) MoveTo(x, y int) error {
	d.x, d.y = x, y
	return nil
}

// Put writes one cell at the cursor position and advances the cursor.
func (d *TcellDevice) Put(c core.Cell) error {
	r := c.Rune
	if c.IsBlank() {
		r = ' '
	}

	style := tcell.StyleDefault
	if s, ok := d.styles[c.Color]; ok && d.color {
		style = s
	}
	d.screen.SetContent(d.x, d.y, r, nil, style)
	d.x++
	return nil
}

// Flush makes the pending content visible.
func (d *TcellDevice) Flush() error {
	d.screen.Show()
	return nil
}

// Close finalizes the screen, which restores the terminal.
func (d *TcellDevice) Close() error {
	d.closeOnce.Do(func() {
		close(d.quit)
		d.screen.Fini()
		<-d.stopped
	})
	return nil
}
