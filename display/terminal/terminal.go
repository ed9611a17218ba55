// Package terminal runs the game in a text terminal on tcell.
//
// The simulation keeps the configured logical viewport; each frame is scaled
// onto the terminal's cell grid. Terminals report key presses and
// auto-repeats but never releases, so a control counts as held for a short
// window after its last key event.
package terminal

import (
	"context"
	"image/color"
	"math"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"github.com/jtestard/pong-duel/display"
	"github.com/jtestard/pong-duel/pong"
)

// Terminal is a tcell InputSampler and Surface.
type Terminal struct {
	screen tcell.Screen
	view   pong.Size
	fps    int
	hold   time.Duration

	clock    *display.Clock
	keys     display.Keys
	lastSeen [pong.NumControls]time.Time

	bg       tcell.Style
	textRows map[int]bool

	events    chan tcell.Event
	done      chan struct{}
	pumped    chan struct{}
	closeOnce sync.Once
}

// Open initialises the controlling terminal.
func Open(cfg pong.Config) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	return New(screen, cfg, nil)
}

// New wraps screen and initialises it. A nil now uses time.Now.
func New(screen tcell.Screen, cfg pong.Config, now func() time.Time) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	screen.HideCursor()
	t := &Terminal{
		screen:   screen,
		view:     cfg.Viewport(),
		fps:      cfg.Terminal.FPS,
		hold:     time.Duration(cfg.Terminal.HoldMillis) * time.Millisecond,
		clock:    display.NewClock(now),
		bg:       tcell.StyleDefault,
		textRows: make(map[int]bool),
		events:   make(chan tcell.Event, 64),
		done:     make(chan struct{}),
		pumped:   make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

// Close stops the event pump and restores the terminal. It is safe to call
// more than once.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
}

// Run ticks shell at the configured frame rate until ctx is done or the
// player quits with Esc, q or Ctrl-C.
func (t *Terminal) Run(ctx context.Context, shell *pong.Shell) error {
	ticker := time.NewTicker(time.Second / time.Duration(t.fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		if quit := t.drain(); quit {
			return nil
		}
		t.Step(shell)
	}
}

// pump forwards screen events until Close. Events queued while no Run
// drains them wait in the buffer for the next Run.
func (t *Terminal) pump() {
	defer close(t.pumped)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// drain handles every queued event without blocking.
func (t *Terminal) drain() (quit bool) {
	for {
		select {
		case ev := <-t.events:
			if t.HandleEvent(ev) {
				return true
			}
		default:
			return false
		}
	}
}

// HandleEvent applies one terminal event and reports whether it asks to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			t.see(pong.RightUp)
		case tcell.KeyDown:
			t.see(pong.RightDown)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case 'w', 'W':
				t.see(pong.LeftUp)
			case 's', 'S':
				t.see(pong.LeftDown)
			case ' ':
				t.see(pong.Start)
			}
		}
	}
	return false
}

func (t *Terminal) see(c pong.Control) {
	t.lastSeen[c] = t.clock.Now()
}

// Step samples input and time, then ticks shell once.
func (t *Terminal) Step(shell *pong.Shell) {
	now := t.clock.Now()
	t.keys.Advance(func(c pong.Control) bool {
		seen := t.lastSeen[c]
		return !seen.IsZero() && now.Sub(seen) < t.hold
	})
	t.clock.Tick()
	shell.Tick(t, t)
}

func (t *Terminal) Held(c pong.Control) bool    { return t.keys.Held(c) }
func (t *Terminal) Pressed(c pong.Control) bool { return t.keys.Pressed(c) }
func (t *Terminal) Viewport() pong.Size         { return t.view }
func (t *Terminal) Elapsed() float64            { return t.clock.Elapsed() }

// scale maps logical units to cells on each axis.
func (t *Terminal) scale() (sx, sy float64, cols, rows int) {
	cols, rows = t.screen.Size()
	return float64(cols) / t.view.W, float64(rows) / t.view.H, cols, rows
}

func (t *Terminal) Clear(c color.Color) {
	t.bg = tcell.StyleDefault.Background(tcellColor(c))
	t.screen.Fill(' ', t.bg)
	clear(t.textRows)
}

func (t *Terminal) FillRect(r pong.Rect, c color.Color) {
	sx, sy, cols, rows := t.scale()
	x0, x1 := span(r.X*sx, (r.X+r.W)*sx, cols)
	y0, y1 := span(r.Y*sy, (r.Y+r.H)*sy, rows)
	style := tcell.StyleDefault.Background(tcellColor(c))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (t *Terminal) FillCircle(center pong.Position, radius float64, c color.Color) {
	sx, sy, cols, rows := t.scale()
	x0, x1 := span((center.X-radius)*sx, (center.X+radius)*sx, cols)
	y0, y1 := span((center.Y-radius)*sy, (center.Y+radius)*sy, rows)
	style := tcell.StyleDefault.Background(tcellColor(c))
	filled := false
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			// Test the cell's center in logical units.
			dx := (float64(x)+0.5)/sx - center.X
			dy := (float64(y)+0.5)/sy - center.Y
			if dx*dx+dy*dy <= radius*radius {
				t.screen.SetContent(x, y, ' ', nil, style)
				filled = true
			}
		}
	}
	if !filled {
		x, y := int(center.X*sx), int(center.Y*sy)
		if x >= 0 && x < cols && y >= 0 && y < rows {
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Text writes s with its baseline on at.Y. Lines that would land on a row
// already used this frame move down one row, so stacked prompts stay
// readable on small terminals.
func (t *Terminal) Text(s string, at pong.Position, _ float64, c color.Color) {
	sx, sy, cols, rows := t.scale()
	y := int(math.Floor(at.Y * sy))
	for t.textRows[y] && y < rows-1 {
		y++
	}
	if y < 0 || y >= rows {
		return
	}
	t.textRows[y] = true

	x := int(math.Round(at.X * sx))
	if w := runewidth.StringWidth(s); x+w > cols {
		x = cols - w
	}
	if x < 0 {
		x = 0
	}
	style := t.bg.Foreground(tcellColor(c))
	for _, r := range s {
		if x >= cols {
			break
		}
		t.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func (t *Terminal) Present() {
	t.screen.Show()
}

// span converts a logical range to a half-open cell range clipped to [0, n).
// Any non-empty range covers at least one cell.
func span(from, to float64, n int) (int, int) {
	a := int(math.Floor(from))
	b := int(math.Ceil(to))
	if b <= a {
		b = a + 1
	}
	if a < 0 {
		a = 0
	}
	if b > n {
		b = n
	}
	return a, b
}

func tcellColor(c color.Color) tcell.Color {
	cc, _ := colorful.MakeColor(c)
	r, g, b := cc.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
