// Package physics provides rectangle overlap tests and direction vectors.
package physics

import (
	"errors"
	"math"
)

// ErrDegenerateDirection is returned when a direction vector has zero length.
var ErrDegenerateDirection = errors.New("physics: degenerate direction vector")

// Axis selects a velocity component.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Rect is an axis-aligned rectangle described by its center and size.
type Rect struct {
	CX, CY        float64
	Width, Height float64
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.CX - r.Width/2 }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.CX + r.Width/2 }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.CY - r.Height/2 }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.CY + r.Height/2 }

// Overlaps reports whether the interiors of a and b intersect.
// All four comparisons are strict, so rectangles that only share an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.MinX() < b.MaxX() && a.MaxX() > b.MinX() &&
		a.MinY() < b.MaxY() && a.MaxY() > b.MinY()
}

// Normalize returns the unit vector pointing along (x, y).
func Normalize(x, y float64) (ux, uy float64, err error) {
	length := math.Hypot(x, y)
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return 0, 0, ErrDegenerateDirection
	}
	return x / length, y / length, nil
}
