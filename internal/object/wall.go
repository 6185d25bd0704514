package object

import (
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/physics"
)

// WallTag identifies which side of the court a wall bounds.
type WallTag int

const (
	WallLeft WallTag = iota
	WallRight
	WallTop
	WallBottom
)

func (t WallTag) String() string {
	switch t {
	case WallLeft:
		return "Left"
	case WallRight:
		return "Right"
	case WallTop:
		return "Top"
	case WallBottom:
		return "Bottom"
	}
	return "Unknown"
}

// Response returns the axis and sign a ball is sent towards after touching the wall.
// Every wall pushes balls back into the court.
func (t WallTag) Response() (physics.Axis, float64) {
	switch t {
	case WallLeft:
		return physics.AxisX, 1
	case WallRight:
		return physics.AxisX, -1
	case WallTop:
		return physics.AxisY, 1
	default:
		return physics.AxisY, -1
	}
}

// Wall is a static court boundary.
type Wall struct {
	tag   WallTag
	rect  physics.Rect
	color draw.Color
}

func NewWall(tag WallTag, rect physics.Rect, color draw.Color) *Wall {
	return &Wall{tag: tag, rect: rect, color: color}
}

func (w *Wall) Tag() WallTag         { return w.tag }
func (w *Wall) Bounds() physics.Rect { return w.rect }

func (w *Wall) Draw(s Surface) {
	s.SetColor(w.color)
	s.FillRect(w.rect.CX, w.rect.CY, w.rect.Width, w.rect.Height)
}
