// Package canvas runs the game offscreen on a gg software canvas. Input comes
// from a script and time advances by a fixed step, so runs are reproducible.
package canvas

import (
	"image"
	"image/color"
	"log"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/jtestard/pong-duel/display"
	"github.com/jtestard/pong-duel/pong"
)

// DefaultStep is the simulated frame time.
const DefaultStep = 1.0 / 60

// Script reports whether control c is held on frame.
type Script func(frame int, c pong.Control) bool

// Idle holds nothing.
func Idle(int, pong.Control) bool { return false }

// Serve taps Start on frame 0 and then every `every` frames, which starts a
// match and restarts each round.
func Serve(every int) Script {
	return func(frame int, c pong.Control) bool {
		return c == pong.Start && (frame == 0 || (every > 0 && frame%every == 0))
	}
}

// Canvas is an offscreen InputSampler and Surface.
type Canvas struct {
	dc     *gg.Context
	view   pong.Size
	source *text.FontSource
	faces  map[float64]text.Face

	script Script
	keys   display.Keys
	step   float64
	frame  int
}

// New creates a canvas the size of the configured window.
func New(cfg pong.Config, script Script) (*Canvas, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "load font")
	}
	if script == nil {
		script = Idle
	}
	return &Canvas{
		dc:     gg.NewContext(cfg.Window.Width, cfg.Window.Height),
		view:   cfg.Viewport(),
		source: src,
		faces:  make(map[float64]text.Face),
		script: script,
		step:   DefaultStep,
	}, nil
}

// SetStep changes the simulated frame time.
func (c *Canvas) SetStep(seconds float64) { c.step = seconds }

// Run ticks shell for frames frames.
func (c *Canvas) Run(shell *pong.Shell, frames int) {
	for i := 0; i < frames; i++ {
		c.keys.Advance(func(ctl pong.Control) bool { return c.script(c.frame, ctl) })
		shell.Tick(c, c)
	}
}

// Frames is the number of presented frames.
func (c *Canvas) Frames() int { return c.frame }

// Image is the last presented frame.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

func (c *Canvas) SavePNG(path string) error {
	return errors.Wrap(c.dc.SavePNG(path), "save frame")
}

func (c *Canvas) Close() error { return c.dc.Close() }

func (c *Canvas) Held(ctl pong.Control) bool    { return c.keys.Held(ctl) }
func (c *Canvas) Pressed(ctl pong.Control) bool { return c.keys.Pressed(ctl) }
func (c *Canvas) Viewport() pong.Size           { return c.view }

// Elapsed is the fixed step, except on the first frame.
func (c *Canvas) Elapsed() float64 {
	if c.frame == 0 {
		return 0
	}
	return c.step
}

func (c *Canvas) Clear(col color.Color) {
	c.dc.ClearWithColor(gg.FromColor(col))
}

func (c *Canvas) FillRect(r pong.Rect, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	logFill("rect", c.dc.Fill())
}

func (c *Canvas) FillCircle(center pong.Position, radius float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawCircle(center.X, center.Y, radius)
	logFill("circle", c.dc.Fill())
}

// logFill reports a failed fill. The frame goes on without the shape.
func logFill(shape string, err error) {
	if err != nil {
		log.Printf("fill %s: %v", shape, err)
	}
}

func (c *Canvas) Text(s string, at pong.Position, size float64, col color.Color) {
	face, ok := c.faces[size]
	if !ok {
		face = c.source.Face(size)
		c.faces[size] = face
	}
	c.dc.SetFont(face)
	c.dc.SetColor(col)
	c.dc.DrawString(s, at.X, at.Y)
}

func (c *Canvas) Present() { c.frame++ }
