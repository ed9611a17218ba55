package pong

import (
	"image/color"
)

// Control is a logical input the game reads. Backends map physical keys onto
// controls.
type Control byte

const (
	LeftUp Control = iota
	LeftDown
	RightUp
	RightDown
	Start

	NumControls
)

var controlNames = [NumControls]string{
	LeftUp:    "LeftUp",
	LeftDown:  "LeftDown",
	RightUp:   "RightUp",
	RightDown: "RightDown",
	Start:     "Start",
}

func (c Control) String() string {
	if c < NumControls {
		return controlNames[c]
	}
	return "Control(?)"
}

// InputSampler answers input and timing queries for the current tick.
type InputSampler interface {
	// Held reports whether c is down on this tick.
	Held(c Control) bool
	// Pressed reports whether c went down on this tick.
	Pressed(c Control) bool
	// Viewport returns the current drawable size. It can change between ticks.
	Viewport() Size
	// Elapsed returns seconds since the previous tick.
	Elapsed() float64
}

// Surface receives the draw calls for one tick. Present commits the frame and
// is called exactly once per tick.
type Surface interface {
	Clear(c color.Color)
	FillRect(r Rect, c color.Color)
	FillCircle(center Position, radius float64, c color.Color)
	Text(s string, at Position, size float64, c color.Color)
	Present()
}
