package pong

// Position is a set of coordinates in 2-D plan
type Position struct {
	X float64
	Y float64
}

// Add returns p translated by v scaled by k.
func (p Position) Add(v Velocity, k float64) Position {
	return Position{X: p.X + v.X*k, Y: p.Y + v.Y*k}
}

// Velocity is a 2-D vector in units per second. The sign of each axis is the
// direction of travel.
type Velocity struct {
	X float64
	Y float64
}

// Size is the width and height of a viewport or a box.
type Size struct {
	W float64
	H float64
}

// GetCenter returns the center position of the viewport
func GetCenter(view Size) Position {
	return Position{
		X: view.W / 2,
		Y: view.H / 2,
	}
}

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Overlaps reports whether r and o share any point. Touching edges count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X <= o.X+o.W && r.X+r.W >= o.X &&
		r.Y <= o.Y+o.H && r.Y+r.H >= o.Y
}

// Phase is an enum that represents the states of a match
type Phase byte

const (
	RoundActive Phase = iota
	RoundOver
)

func (p Phase) String() string {
	switch p {
	case RoundActive:
		return "RoundActive"
	case RoundOver:
		return "RoundOver"
	}
	return "Phase(?)"
}

// Mode is an enum for the top-level shell states
type Mode byte

const (
	Idle Mode = iota
	InMatch
)

func (m Mode) String() string {
	if m == InMatch {
		return "InMatch"
	}
	return "Idle"
}
