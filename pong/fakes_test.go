package pong

import (
	"image/color"
)

// scriptedInput is an InputSampler with fixed answers for one tick.
type scriptedInput struct {
	held    map[Control]bool
	pressed map[Control]bool
	view    Size
	dt      float64
}

func newInput(view Size, dt float64) *scriptedInput {
	return &scriptedInput{
		held:    make(map[Control]bool),
		pressed: make(map[Control]bool),
		view:    view,
		dt:      dt,
	}
}

func (in *scriptedInput) Held(c Control) bool    { return in.held[c] }
func (in *scriptedInput) Pressed(c Control) bool { return in.pressed[c] }
func (in *scriptedInput) Viewport() Size         { return in.view }
func (in *scriptedInput) Elapsed() float64       { return in.dt }

// hold sets c held and, when edge is true, newly pressed.
func (in *scriptedInput) hold(c Control, edge bool) {
	in.held[c] = true
	in.pressed[c] = edge
}

func (in *scriptedInput) release(c Control) {
	in.held[c] = false
	in.pressed[c] = false
}

type drawCall struct {
	op   string
	text string
	rect Rect
	at   Position
}

// recordingSurface keeps every draw call of the current frame.
type recordingSurface struct {
	calls    []drawCall
	presents int
	clears   int
}

func (s *recordingSurface) Clear(color.Color) {
	s.clears++
	s.calls = s.calls[:0]
}

func (s *recordingSurface) FillRect(r Rect, _ color.Color) {
	s.calls = append(s.calls, drawCall{op: "rect", rect: r})
}

func (s *recordingSurface) FillCircle(c Position, _ float64, _ color.Color) {
	s.calls = append(s.calls, drawCall{op: "circle", at: c})
}

func (s *recordingSurface) Text(str string, at Position, _ float64, _ color.Color) {
	s.calls = append(s.calls, drawCall{op: "text", text: str, at: at})
}

func (s *recordingSurface) Present() { s.presents++ }

func (s *recordingSurface) texts() []string {
	var out []string
	for _, c := range s.calls {
		if c.op == "text" {
			out = append(out, c.text)
		}
	}
	return out
}

func (s *recordingSurface) count(op string) int {
	n := 0
	for _, c := range s.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

var view800x600 = Size{W: 800, H: 600}
