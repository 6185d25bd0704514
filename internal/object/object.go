// Package object holds the court entities and the balls that move between them.
package object

import (
	"time"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/physics"
)

//go:generate go tool mockgen -destination=./mocks/surface_mock.go -package=mocks . Surface

// Surface is the drawing target objects render onto.
// Coordinates are logical court units; *draw.Canvas implements it.
type Surface interface {
	SetColor(c draw.Color)
	FillRect(cx, cy, width, height float64)
	DrawText(text string, y float64, align draw.Align)
}

// Ball is anything the BallManager can move, draw and bounce.
type Ball interface {
	// Update advances the ball by delta of simulated time.
	Update(delta time.Duration)
	Draw(s Surface)
	Bounds() physics.Rect
	Overlaps(r physics.Rect) bool
	// Reflect forces the velocity component on axis to sign·speed.
	Reflect(axis physics.Axis, sign float64)
	Speed() float64
	SetSpeed(v float64)
}

// BallSpec describes a ball at creation time.
// The direction does not need to be normalised but must not be zero.
type BallSpec struct {
	CX, CY        float64
	Width, Height float64
	Color         draw.Color
	Speed         float64 // Logical pixels per millisecond
	DirX, DirY    float64
}
