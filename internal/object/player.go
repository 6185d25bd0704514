package object

import (
	"time"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/physics"
)

// PlayerTag identifies a paddle.
type PlayerTag int

const (
	Player1 PlayerTag = iota
	Player2
)

func (t PlayerTag) String() string {
	if t == Player1 {
		return "Player 1"
	}
	return "Player 2"
}

// Response returns the axis and sign a ball leaves the paddle with.
// Player 1 defends the left side and sends balls right, Player 2 the opposite.
func (t PlayerTag) Response() (physics.Axis, float64) {
	if t == Player1 {
		return physics.AxisX, 1
	}
	return physics.AxisX, -1
}

// Player is a paddle moved vertically by input.
type Player struct {
	tag   PlayerTag
	rect  physics.Rect
	speed float64 // Logical pixels per millisecond
	color draw.Color
}

func NewPlayer(tag PlayerTag, rect physics.Rect, speed float64, color draw.Color) *Player {
	return &Player{tag: tag, rect: rect, speed: speed, color: color}
}

func (p *Player) Tag() PlayerTag       { return p.tag }
func (p *Player) Bounds() physics.Rect { return p.rect }

// Move shifts the paddle along y by dir·speed·delta and keeps it between minY and maxY.
// dir is typically -1 (up), 0 or +1 (down).
func (p *Player) Move(dir float64, delta time.Duration, minY, maxY float64) {
	ms := float64(delta) / float64(time.Millisecond)
	p.rect.CY += dir * p.speed * ms

	half := p.rect.Height / 2
	if p.rect.CY-half < minY {
		p.rect.CY = minY + half
	}
	if p.rect.CY+half > maxY {
		p.rect.CY = maxY - half
	}
}

// Center puts the paddle back at the given vertical position.
func (p *Player) Center(cy float64) {
	p.rect.CY = cy
}

func (p *Player) Draw(s Surface) {
	s.SetColor(p.color)
	s.FillRect(p.rect.CX, p.rect.CY, p.rect.Width, p.rect.Height)
}
