package pong

import (
	"fmt"
	"log"
)

const (
	FirstPlayerWins  = "First Player is the Winner"
	SecondPlayerWins = "Second Player is the Winner"
	PlayAgainPrompt  = "Press Space to Play Again"
	ContinuePrompt   = "Press Space to Continue"
)

// Match drives one match: two paddles, a ball and the round state machine.
type Match struct {
	Left  *Paddle
	Right *Paddle
	Ball  *Ball

	phase    Phase
	winner   string
	finished bool

	winScore int
	textSize float64
	palette  Palette
}

// NewMatch creates a match with fresh paddles and ball for the viewport.
func NewMatch(cfg Config, view Size) *Match {
	return &Match{
		Left:     NewPaddle(Left, cfg.Paddle, view),
		Right:    NewPaddle(Right, cfg.Paddle, view),
		Ball:     NewBall(cfg.Ball, view),
		phase:    RoundActive,
		winScore: cfg.Match.WinScore,
		textSize: cfg.Match.TextSize,
		palette:  cfg.MustPalette(),
	}
}

func (m *Match) Phase() Phase { return m.phase }

// Winner is the label of the last finished round.
func (m *Match) Winner() string { return m.winner }

// Score returns the left and right scores.
func (m *Match) Score() (left, right int) {
	return m.Left.Score, m.Right.Score
}

// Finished reports whether the match reached its win score and the players
// acknowledged it.
func (m *Match) Finished() bool { return m.finished }

func (m *Match) decided() bool {
	return m.winScore > 0 && (m.Left.Score >= m.winScore || m.Right.Score >= m.winScore)
}

// Tick runs one frame. It issues draw calls on s but does not clear or present.
func (m *Match) Tick(in InputSampler, s Surface) {
	view := in.Viewport()
	switch m.phase {
	case RoundActive:
		m.play(in, s, view)
	case RoundOver:
		m.roundOver(in, s, view)
	}
}

func (m *Match) play(in InputSampler, s Surface, view Size) {
	dt := in.Elapsed()
	s.Text(fmt.Sprintf("%d:%d", m.Left.Score, m.Right.Score), Position{X: view.W / 2, Y: 20}, m.textSize, m.palette.Text)

	m.Left.Update(in, dt)
	m.Right.Update(in, dt)
	m.Ball.Update(dt, view, m.Left, m.Right)

	m.Left.Draw(s, m.palette)
	m.Right.Draw(s, m.palette)
	m.Ball.Draw(s, m.palette)

	// Left boundary first: a ball that overshoots both in one tick scores once.
	if m.Ball.Position.X < m.Left.Position.X {
		m.endRound(m.Right, SecondPlayerWins)
	} else if m.Ball.Position.X > m.Right.Position.X {
		m.endRound(m.Left, FirstPlayerWins)
	}
}

func (m *Match) endRound(scorer *Paddle, label string) {
	scorer.Score++
	m.phase = RoundOver
	m.winner = label
	log.Printf("round over: %s, score %d:%d", label, m.Left.Score, m.Right.Score)
}

func (m *Match) roundOver(in InputSampler, s Surface, view Size) {
	prompt := PlayAgainPrompt
	if m.decided() {
		prompt = ContinuePrompt
	}
	at := Position{X: view.W/2 - 100, Y: view.H / 2}
	s.Text(m.winner, at, m.textSize, m.palette.Text)
	s.Text(prompt, Position{X: at.X, Y: at.Y + m.textSize}, m.textSize, m.palette.Text)

	if !in.Pressed(Start) {
		return
	}
	if m.decided() {
		m.finished = true
		log.Printf("match over, final score %d:%d", m.Left.Score, m.Right.Score)
		return
	}
	m.phase = RoundActive
	m.Ball.Reset(view)
	m.Left.Reset(view)
	m.Right.Reset(view)
}
