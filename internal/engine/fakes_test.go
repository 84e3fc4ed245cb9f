package engine

import (
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

// journal records the order of shutdown-relevant events across goroutines.
type journal struct {
	mu      sync.Mutex
	entries []string
}

func (j *journal) add(s string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, s)
}

func (j *journal) list() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.entries...)
}

// scriptInput replays a fixed list of events, then reports none.
type scriptInput struct {
	events []core.Event
	polls  int
	err    error
}

func (in *scriptInput) Poll(time.Duration) (bool, error) {
	in.polls++
	if in.err != nil {
		return false, in.err
	}
	return len(in.events) > 0, nil
}

func (in *scriptInput) Read() (core.Event, error) {
	ev := in.events[0]
	in.events = in.events[1:]
	return ev, nil
}

func keys(ks ...core.Key) []core.Event {
	events := make([]core.Event, len(ks))
	for i, k := range ks {
		events[i] = core.Event{Key: k, Name: k.String()}
	}
	return events
}

// fakeDevice is a screen grid plus scripted input.
type fakeDevice struct {
	scriptInput

	j      *journal
	w, h   int
	cells  [][]rune
	x, y   int
	shown  []string
	closed bool
}

func newFakeDevice(j *journal, w, h int, events []core.Event) *fakeDevice {
	d := &fakeDevice{scriptInput: scriptInput{events: events}, j: j, w: w, h: h}
	d.reset()
	return d
}

func (d *fakeDevice) reset() {
	d.cells = make([][]rune, d.h)
	for y := range d.cells {
		d.cells[y] = []rune(strings.Repeat(" ", d.w))
	}
}

func (d *fakeDevice) Clear() error {
	d.reset()
	return nil
}

func (d *fakeDevice) MoveTo(x, y int) error {
	d.x, d.y = x, y
	return nil
}

func (d *fakeDevice) Put(c core.Cell) error {
	r := c.Rune
	if c.IsBlank() {
		r = ' '
	}
	d.cells[d.y][d.x] = r
	d.x++
	return nil
}

func (d *fakeDevice) Flush() error {
	rows := make([]string, d.h)
	for y := range d.cells {
		rows[y] = string(d.cells[y])
	}
	d.shown = append(d.shown, strings.Join(rows, "\n"))
	d.j.add("flush")
	return nil
}

func (d *fakeDevice) Close() error {
	d.closed = true
	d.j.add("close")
	return nil
}

type fakeAudio struct {
	j *journal
}

func (a fakeAudio) Wait() {
	a.j.add("audio")
}

// counterGame draws its tick number at (0,0) and ends after maxTicks.
type counterGame struct {
	maxTicks int
	ticks    int
	started  bool
	keys     []core.Key
	keyTicks []int
	elapsed  []time.Duration
	panicAt  int
}

func (g *counterGame) Start() { g.started = true }

func (g *counterGame) HandleKey(k core.Key) bool {
	g.keys = append(g.keys, k)
	g.keyTicks = append(g.keyTicks, g.ticks)
	return k == core.KeyQuit
}

func (g *counterGame) Entities() []core.Drawable {
	return []core.Drawable{counterEntity{g}}
}

func (g *counterGame) Resolve() {}

func (g *counterGame) Over() bool {
	return g.maxTicks > 0 && g.ticks >= g.maxTicks
}

type counterEntity struct {
	g *counterGame
}

func (e counterEntity) Update(elapsed time.Duration) {
	e.g.ticks++
	e.g.elapsed = append(e.g.elapsed, elapsed)
	if e.g.panicAt > 0 && e.g.ticks == e.g.panicAt {
		panic("entity exploded")
	}
}

func (e counterEntity) Draw(f *core.Frame) {
	f.Set(0, 0, core.Cell{Rune: rune('0' + e.g.ticks%10)})
}

// fakeSender collects frames and fails with err once limit frames were sent.
type fakeSender struct {
	frames []*core.Frame
	limit  int
	err    error
}

func (s *fakeSender) Send(f *core.Frame) error {
	if s.limit > 0 && len(s.frames) >= s.limit {
		return s.err
	}
	s.frames = append(s.frames, f)
	return nil
}

// stepClock advances by step on every Now call.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}
