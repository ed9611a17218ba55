package pong

import (
	"log"
)

const TitlePrompt = "Press SPACE to start the game"

// Shell is the top-level loop body: a title screen that starts a fresh Match
// while Start is held, and the match itself until it finishes. After a match
// the title waits for Start to be released before it starts another.
type Shell struct {
	cfg     Config
	palette Palette

	mode  Mode
	match *Match
	// armed is false from a match end until Start is seen released.
	armed bool
}

// NewShell returns a shell on the title screen. cfg must be valid.
func NewShell(cfg Config) *Shell {
	return &Shell{
		cfg:     cfg,
		palette: cfg.MustPalette(),
		mode:    Idle,
		armed:   true,
	}
}

func (sh *Shell) Mode() Mode { return sh.mode }

// Match is the running match, nil on the title screen.
func (sh *Shell) Match() *Match { return sh.match }

// Tick runs one frame and presents it.
func (sh *Shell) Tick(in InputSampler, s Surface) {
	s.Clear(sh.palette.Background)

	switch sh.mode {
	case Idle:
		view := in.Viewport()
		s.Text(TitlePrompt, Position{X: view.W/2 - 100, Y: view.H / 2}, sh.cfg.Match.TextSize, sh.palette.Text)
		if !in.Held(Start) {
			sh.armed = true
		} else if sh.armed {
			sh.match = NewMatch(sh.cfg, view)
			sh.mode = InMatch
			log.Printf("match started on %.0fx%.0f", view.W, view.H)
		}
	case InMatch:
		sh.match.Tick(in, s)
		if sh.match.Finished() {
			sh.match = nil
			sh.mode = Idle
			sh.armed = false
		}
	}

	s.Present()
}
