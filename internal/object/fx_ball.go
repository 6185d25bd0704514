package object

import "github.com/tomz197/pong/internal/draw"

// trailLength is the number of past positions an FxBall remembers.
const trailLength = 20

// trailGrowth is how much taller each newer trail segment is than the previous one.
const trailGrowth = 0.8

// FxBall wraps another ball and draws a fading trail of its recent positions.
// Everything except Draw is delegated to the inner ball.
type FxBall struct {
	Ball

	trail  [trailLength]draw.Point
	head   int // Index of the oldest entry
	primed bool
}

// NewFxBall creates a Body and wraps it with a trail.
func NewFxBall(spec BallSpec) (*FxBall, error) {
	body, err := NewBody(spec)
	if err != nil {
		return nil, err
	}
	return WrapFx(body), nil
}

// WrapFx adds a trail to an existing ball.
func WrapFx(inner Ball) *FxBall {
	return &FxBall{Ball: inner}
}

// Draw draws the inner ball, records its position and then draws the trail,
// oldest segment first, in the inner ball's colour.
func (f *FxBall) Draw(s Surface) {
	f.Ball.Draw(s)

	r := f.Ball.Bounds()
	if !f.primed {
		for i := range f.trail {
			f.trail[i] = draw.Point{X: r.CX, Y: r.CY}
		}
		f.primed = true
	}

	// Overwrite the oldest entry with the current position
	f.trail[f.head] = draw.Point{X: r.CX, Y: r.CY}
	f.head = (f.head + 1) % trailLength

	for i := 0; i < trailLength; i++ {
		p := f.trail[(f.head+i)%trailLength]
		s.FillRect(p.X, p.Y, r.Width/2, r.Height/4+trailGrowth*float64(i))
	}
}

// Trail returns the remembered positions, oldest first.
func (f *FxBall) Trail() []draw.Point {
	if !f.primed {
		return nil
	}
	out := make([]draw.Point, 0, trailLength)
	for i := 0; i < trailLength; i++ {
		out = append(out, f.trail[(f.head+i)%trailLength])
	}
	return out
}
