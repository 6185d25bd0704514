package loop

import (
	"fmt"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/object"
)

// Text rows in logical units.
const (
	scoreRow    = 2
	titleRow    = 24
	subtitleRow = 36
	controlsRow = 50
	hintRow     = 56
)

var _ object.Surface = (*draw.Canvas)(nil)

// drawScreen draws the current phase onto s.
func drawScreen(state *State, s object.Surface) {
	switch state.Phase {
	case PhaseStart:
		drawStartScreen(s)
	case PhasePlaying:
		drawCourt(state, s)
		drawHUD(state, s)
	case PhaseOver:
		drawCourt(state, s)
		drawHUD(state, s)
		drawOverScreen(state, s)
	}
}

// drawStartScreen draws the title screen.
func drawStartScreen(s object.Surface) {
	s.SetColor(draw.ColorCyan)
	s.DrawText("P O N G", titleRow, draw.AlignCenter)

	s.SetColor(draw.ColorWhite)
	s.DrawText("Press SPACE to Start", subtitleRow, draw.AlignCenter)

	s.SetColor(draw.ColorGray)
	s.DrawText("Player 1: W/S   Player 2: I/K or Arrows   Q to quit", controlsRow, draw.AlignCenter)
	s.DrawText("Yellow target boosts the ball, magenta target adds balls", hintRow, draw.AlignCenter)
}

// drawCourt draws walls, targets, paddles and balls.
func drawCourt(state *State, s object.Surface) {
	for _, w := range state.Walls {
		w.Draw(s)
	}
	for _, t := range state.Targets {
		t.Draw(s)
	}
	for _, p := range state.Players {
		p.Draw(s)
	}
	if state.Balls != nil {
		state.Balls.Draw(s)
	}
}

// drawHUD draws both scores and the active effects.
func drawHUD(state *State, s object.Surface) {
	for _, sc := range state.Scores {
		sc.Draw(s, scoreRow)
	}

	if state.Balls == nil {
		return
	}
	var status string
	switch {
	case state.Balls.Boosted() && state.Balls.BallCount() > 1:
		status = fmt.Sprintf("BOOST  x%d", state.Balls.BallCount())
	case state.Balls.Boosted():
		status = "BOOST"
	case state.Balls.BallCount() > 1:
		status = fmt.Sprintf("x%d", state.Balls.BallCount())
	}
	if status != "" {
		s.SetColor(draw.ColorYellow)
		s.DrawText(status, scoreRow, draw.AlignCenter)
	}
}

// drawOverScreen draws the result on top of the frozen court.
func drawOverScreen(state *State, s object.Surface) {
	s.SetColor(draw.ColorYellow)
	s.DrawText(fmt.Sprintf("%s wins!", state.Winner), titleRow, draw.AlignCenter)

	s.SetColor(draw.ColorWhite)
	s.DrawText("Press SPACE for a rematch, Q to quit", subtitleRow, draw.AlignCenter)
}
