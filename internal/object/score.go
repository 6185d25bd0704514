package object

import (
	"fmt"

	"github.com/tomz197/pong/internal/draw"
)

// Score counts the points of one player.
type Score struct {
	player PlayerTag
	value  int
}

func NewScore(player PlayerTag) *Score {
	return &Score{player: player}
}

func (s *Score) Player() PlayerTag { return s.player }
func (s *Score) Inc()              { s.value++ }
func (s *Score) Value() int        { return s.value }
func (s *Score) Reset()            { s.value = 0 }

// Draw writes "Player N: value" at height y, on the player's side of the court.
func (s *Score) Draw(surface Surface, y float64) {
	align := draw.AlignLeft
	if s.player == Player2 {
		align = draw.AlignRight
	}
	surface.SetColor(draw.ColorWhite)
	surface.DrawText(fmt.Sprintf("%s: %d", s.player, s.value), y, align)
}
