// Package display holds what the presentation backends share: the frame
// clock and press-edge tracking for backends that only see raw key state.
package display

import (
	"time"
)

// Clock samples the time between ticks.
type Clock struct {
	now     func() time.Time
	last    time.Time
	elapsed float64
}

// NewClock returns a clock reading now. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Tick samples the clock once for a new frame and returns the seconds since
// the previous Tick. The first Tick returns 0.
func (c *Clock) Tick() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.elapsed = 0
	} else {
		c.elapsed = t.Sub(c.last).Seconds()
	}
	c.last = t
	return c.elapsed
}

// Elapsed is the value returned by the last Tick.
func (c *Clock) Elapsed() float64 { return c.elapsed }

// Now reads the clock without sampling a frame.
func (c *Clock) Now() time.Time { return c.now() }
