package display

import (
	"testing"
	"time"

	"github.com/jtestard/pong-duel/pong"
)

type fakeTime struct{ t time.Time }

func (f *fakeTime) now() time.Time          { return f.t }
func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestClockTick(t *testing.T) {
	ft := &fakeTime{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewClock(ft.now)

	if dt := c.Tick(); dt != 0 {
		t.Errorf("first tick = %v, want 0", dt)
	}
	ft.advance(250 * time.Millisecond)
	if dt := c.Tick(); dt != 0.25 {
		t.Errorf("tick = %v, want 0.25", dt)
	}
	if c.Elapsed() != 0.25 {
		t.Errorf("Elapsed() = %v, want the last tick", c.Elapsed())
	}
	ft.advance(time.Second)
	if got := c.Now(); !got.Equal(ft.t) {
		t.Errorf("Now() = %v", got)
	}
	if c.Elapsed() != 0.25 {
		t.Error("Now() must not sample a frame")
	}
}

func TestKeysEdges(t *testing.T) {
	var k Keys
	script := []struct {
		held        bool
		wantPressed bool
	}{
		{false, false},
		{true, true},
		{true, false},
		{true, false},
		{false, false},
		{true, true},
	}
	for i, step := range script {
		k.Advance(func(c pong.Control) bool { return c == pong.Start && step.held })
		if k.Held(pong.Start) != step.held {
			t.Errorf("tick %d: Held = %v", i, k.Held(pong.Start))
		}
		if k.Pressed(pong.Start) != step.wantPressed {
			t.Errorf("tick %d: Pressed = %v, want %v", i, k.Pressed(pong.Start), step.wantPressed)
		}
		if k.Held(pong.LeftUp) || k.Pressed(pong.LeftUp) {
			t.Errorf("tick %d: unrelated control reported", i)
		}
	}
	if k.Held(pong.NumControls) || k.Pressed(pong.NumControls + 3) {
		t.Error("out of range controls must read as released")
	}
}
