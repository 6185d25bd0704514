package object

import (
	"math"
	"time"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/physics"
)

// Body is the plain ball: a coloured rectangle moving at a fixed speed.
type Body struct {
	cx, cy        float64
	width, height float64
	color         draw.Color
	speed         float64
	vx, vy        float64
}

// NewBody creates a ball with velocity speed·unit(direction).
func NewBody(spec BallSpec) (*Body, error) {
	ux, uy, err := physics.Normalize(spec.DirX, spec.DirY)
	if err != nil {
		return nil, err
	}
	return &Body{
		cx:     spec.CX,
		cy:     spec.CY,
		width:  spec.Width,
		height: spec.Height,
		color:  spec.Color,
		speed:  spec.Speed,
		vx:     ux * spec.Speed,
		vy:     uy * spec.Speed,
	}, nil
}

// Update moves the body by velocity·(ms/2).
// The halving is part of the game's feel, so speeds are effectively per two milliseconds.
func (b *Body) Update(delta time.Duration) {
	half := float64(delta) / float64(time.Millisecond) / 2
	b.cx += b.vx * half
	b.cy += b.vy * half
}

// Draw fills the body's rectangle in its colour.
func (b *Body) Draw(s Surface) {
	s.SetColor(b.color)
	s.FillRect(b.cx, b.cy, b.width, b.height)
}

func (b *Body) Bounds() physics.Rect {
	return physics.Rect{CX: b.cx, CY: b.cy, Width: b.width, Height: b.height}
}

func (b *Body) Overlaps(r physics.Rect) bool {
	return physics.Overlaps(b.Bounds(), r)
}

// Reflect sets the velocity component on axis to sign·speed.
// Only the sign of sign is used, so repeated calls for one surface give the same result.
func (b *Body) Reflect(axis physics.Axis, sign float64) {
	v := math.Copysign(b.speed, sign)
	switch axis {
	case physics.AxisX:
		b.vx = v
	case physics.AxisY:
		b.vy = v
	}
}

func (b *Body) Speed() float64 {
	return b.speed
}

// SetSpeed changes the speed and rescales the velocity to match, keeping its direction.
func (b *Body) SetSpeed(v float64) {
	if b.speed != 0 {
		scale := v / b.speed
		b.vx *= scale
		b.vy *= scale
	}
	b.speed = v
}

func (b *Body) Position() (cx, cy float64) {
	return b.cx, b.cy
}

func (b *Body) Size() (width, height float64) {
	return b.width, b.height
}

func (b *Body) Velocity() (vx, vy float64) {
	return b.vx, b.vy
}

func (b *Body) Color() draw.Color {
	return b.color
}
