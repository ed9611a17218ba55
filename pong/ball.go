package pong

// Ball is the puck both players hit
type Ball struct {
	Position Position
	Velocity Velocity
	Radius   float64

	serve    Velocity
	wallMode string
}

// NewBall creates a centered ball moving at the configured serve velocity.
func NewBall(cfg BallConfig, view Size) *Ball {
	b := &Ball{
		Radius:   cfg.Radius,
		serve:    Velocity{X: cfg.VelocityX, Y: cfg.VelocityY},
		wallMode: cfg.WallMode,
	}
	b.Reset(view)
	return b
}

// Reset recenters the ball and restores the serve velocity.
func (b *Ball) Reset(view Size) {
	b.Position = GetCenter(view)
	b.Velocity = b.serve
}

func (b *Ball) topBound() float64 {
	if b.wallMode == WallSymmetric {
		return b.Radius
	}
	return 0
}

// Update integrates the ball over dt seconds, then bounces it off the walls
// and the paddles. Bounces only flip the velocity sign; the ball is never
// pushed out of what it hit, so an overlap can flip it again on the next
// tick. Scoring is up to the caller.
func (b *Ball) Update(dt float64, view Size, left, right *Paddle) {
	if dt <= 0 {
		return
	}
	b.Position = b.Position.Add(b.Velocity, dt)

	if b.Position.Y <= b.topBound() || b.Position.Y >= view.H-b.Radius {
		b.Velocity.Y = -b.Velocity.Y
	}

	box := b.Bounds()
	if box.Overlaps(left.Bounds()) || box.Overlaps(right.Bounds()) {
		b.Velocity.X = -b.Velocity.X
	}
}

// Bounds is the 2r square around the ball's center.
func (b *Ball) Bounds() Rect {
	return Rect{
		X: b.Position.X - b.Radius,
		Y: b.Position.Y - b.Radius,
		W: b.Radius * 2,
		H: b.Radius * 2,
	}
}

// Draw fills the ball.
func (b *Ball) Draw(s Surface, pal Palette) {
	s.FillCircle(b.Position, b.Radius, pal.Ball)
}
