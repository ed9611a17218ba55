package display

import (
	"github.com/jtestard/pong-duel/pong"
)

// Keys keeps the held state of every control for the current and previous
// tick. Pressed is true on the tick a control goes from released to held.
type Keys struct {
	cur  [pong.NumControls]bool
	prev [pong.NumControls]bool
}

// Advance starts a new tick, reading the held state from held.
func (k *Keys) Advance(held func(pong.Control) bool) {
	k.prev = k.cur
	for c := pong.Control(0); c < pong.NumControls; c++ {
		k.cur[c] = held(c)
	}
}

func (k *Keys) Held(c pong.Control) bool {
	return c < pong.NumControls && k.cur[c]
}

func (k *Keys) Pressed(c pong.Control) bool {
	return c < pong.NumControls && k.cur[c] && !k.prev[c]
}
