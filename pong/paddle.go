package pong

// Side selects a paddle's key bindings and horizontal anchor.
type Side byte

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "Right"
	}
	return "Left"
}

// Paddle is one player's bat
type Paddle struct {
	Side     Side
	Position Position
	Size     Size
	Speed    float64
	Score    int
}

// NewPaddle creates a paddle anchored on its side and centered vertically.
func NewPaddle(side Side, cfg PaddleConfig, view Size) *Paddle {
	p := &Paddle{
		Side:  side,
		Size:  Size{W: cfg.Width, H: cfg.Height},
		Speed: cfg.Speed,
	}
	p.Reset(view)
	return p
}

func (p *Paddle) controls() (up, down Control) {
	if p.Side == Right {
		return RightUp, RightDown
	}
	return LeftUp, LeftDown
}

// Update moves the paddle along its bindings and keeps it on screen. The
// anchor and clamp follow the current viewport even when dt moves nothing.
func (p *Paddle) Update(in InputSampler, dt float64) {
	view := in.Viewport()
	if dt > 0 {
		up, down := p.controls()
		dir := 0.0
		if in.Held(up) {
			dir--
		}
		if in.Held(down) {
			dir++
		}
		p.Position.Y += dir * p.Speed * dt
	}
	p.anchor(view.W)
	p.clamp(view.H)
}

func (p *Paddle) anchor(viewWidth float64) {
	if p.Side == Right {
		p.Position.X = viewWidth - p.Size.W
	} else {
		p.Position.X = 0
	}
}

func (p *Paddle) clamp(viewHeight float64) {
	half := p.Size.H / 2
	if viewHeight < p.Size.H {
		p.Position.Y = viewHeight / 2
		return
	}
	if p.Position.Y < half {
		p.Position.Y = half
	}
	if p.Position.Y > viewHeight-half {
		p.Position.Y = viewHeight - half
	}
}

// Reset recenters the paddle and re-anchors it against the viewport. The
// score is kept.
func (p *Paddle) Reset(view Size) {
	p.Position.Y = view.H / 2
	p.anchor(view.W)
}

// Bounds is the paddle's box: X is the left edge, Y the vertical center.
func (p *Paddle) Bounds() Rect {
	return Rect{
		X: p.Position.X,
		Y: p.Position.Y - p.Size.H/2,
		W: p.Size.W,
		H: p.Size.H,
	}
}

// Draw fills the paddle's box.
func (p *Paddle) Draw(s Surface, pal Palette) {
	s.FillRect(p.Bounds(), pal.Paddle)
}
