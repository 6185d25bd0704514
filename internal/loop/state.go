package loop

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/effect"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/object"
	"github.com/tomz197/pong/internal/physics"
)

// Phase is the current screen of a match.
type Phase int

const (
	PhaseStart   Phase = iota // Title screen
	PhasePlaying              // Ball in play
	PhaseOver                 // Someone reached the winning score
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	}
	return "unknown"
}

// StateOptions configures a State. Zero values get defaults.
type StateOptions struct {
	Tuning config.Tuning
	Clock  effect.Clock
	Rand   *rand.Rand
	Logger *log.Logger
}

// State holds one local two-player match.
type State struct {
	ID      uuid.UUID
	Phase   Phase
	Winner  object.PlayerTag
	Walls   [4]*object.Wall // Indexed by object.WallTag
	Players [2]*object.Player
	Scores  [2]*object.Score
	Targets []*object.Target
	Balls   *object.BallManager // nil until the first match starts

	tuning   config.Tuning
	clock    effect.Clock
	rng      *rand.Rand
	baseLog  *log.Logger
	logger   *log.Logger
	contacts [4]int // Balls touching each wall after the previous step
}

// NewState builds the court and waits on the start screen.
func NewState(opts StateOptions) *State {
	if opts.Tuning == (config.Tuning{}) {
		opts.Tuning = config.DefaultTuning()
	}
	if opts.Clock == nil {
		opts.Clock = effect.SystemClock{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := &State{
		Phase:   PhaseStart,
		tuning:  opts.Tuning,
		clock:   opts.Clock,
		rng:     opts.Rand,
		baseLog: opts.Logger,
		logger:  opts.Logger,
	}
	s.buildCourt()
	return s
}

// Court edges of the playing field, inside the walls.
func fieldTop() float64    { return hudHeight + wallThickness }
func fieldBottom() float64 { return CourtHeight - wallThickness }
func fieldMidY() float64   { return (fieldTop() + fieldBottom()) / 2 }

func (s *State) buildCourt() {
	const t = wallThickness
	const sideHeight = CourtHeight - hudHeight

	s.Walls[object.WallLeft] = object.NewWall(object.WallLeft,
		physics.Rect{CX: t / 2, CY: hudHeight + sideHeight/2, Width: t, Height: sideHeight}, draw.ColorGray)
	s.Walls[object.WallRight] = object.NewWall(object.WallRight,
		physics.Rect{CX: CourtWidth - t/2, CY: hudHeight + sideHeight/2, Width: t, Height: sideHeight}, draw.ColorGray)
	s.Walls[object.WallTop] = object.NewWall(object.WallTop,
		physics.Rect{CX: CourtWidth / 2, CY: hudHeight + t/2, Width: CourtWidth, Height: t}, draw.ColorWhite)
	s.Walls[object.WallBottom] = object.NewWall(object.WallBottom,
		physics.Rect{CX: CourtWidth / 2, CY: CourtHeight - t/2, Width: CourtWidth, Height: t}, draw.ColorWhite)

	paddle := func(cx float64) physics.Rect {
		return physics.Rect{CX: cx, CY: fieldMidY(), Width: paddleWidth, Height: s.tuning.PaddleHeight}
	}
	s.Players[object.Player1] = object.NewPlayer(object.Player1, paddle(paddleInset), s.tuning.PaddleSpeed, draw.ColorGreen)
	s.Players[object.Player2] = object.NewPlayer(object.Player2, paddle(CourtWidth-paddleInset), s.tuning.PaddleSpeed, draw.ColorBlue)

	s.Scores[object.Player1] = object.NewScore(object.Player1)
	s.Scores[object.Player2] = object.NewScore(object.Player2)

	quarter := (fieldBottom() - fieldTop()) / 4
	s.Targets = []*object.Target{
		object.NewBoostTarget(
			physics.Rect{CX: CourtWidth / 2, CY: fieldTop() + quarter, Width: targetSize, Height: targetSize},
			s.tuning.BoostFactor, s.tuning.BoostDuration.Duration),
		object.NewDuplicatorTarget(
			physics.Rect{CX: CourtWidth / 2, CY: fieldBottom() - quarter, Width: targetSize, Height: targetSize},
			s.tuning.ExtraBallDuration.Duration),
	}
}

// StartMatch resets the court and serves the primary ball from the centre in a random diagonal.
// Effects armed during a previous match are dropped with its scheduler.
func (s *State) StartMatch() error {
	s.ID = uuid.New()
	s.logger = s.baseLog.With("match", s.ID.String())

	s.Balls = object.NewBallManager(s.tuning.BallType, object.ManagerOptions{
		Scheduler: effect.NewScheduler(s.clock),
		Rand:      s.rng,
		Logger:    s.logger,
	})

	for _, sc := range s.Scores {
		sc.Reset()
	}
	for _, t := range s.Targets {
		t.Restore()
	}
	for _, p := range s.Players {
		p.Center(fieldMidY())
	}
	s.contacts = [4]int{}

	dx, dy := 1.0, 1.0
	if s.rng.Intn(2) == 0 {
		dx = -dx
	}
	if s.rng.Intn(2) == 0 {
		dy = -dy
	}
	err := s.Balls.CreatePrimary(object.BallSpec{
		CX:     CourtWidth / 2,
		CY:     fieldMidY(),
		Width:  s.tuning.BallSize,
		Height: s.tuning.BallSize,
		Color:  draw.ColorCyan,
		Speed:  s.tuning.BallSpeed,
		DirX:   dx,
		DirY:   dy,
	})
	if err != nil {
		return fmt.Errorf("start match: %w", err)
	}

	s.Phase = PhasePlaying
	s.logger.Info("match started", "ball", s.Balls.BallType(), "winning_score", s.tuning.WinningScore)
	return nil
}

// Step advances the match by one frame.
func (s *State) Step(in input.Input, delta time.Duration) error {
	switch s.Phase {
	case PhaseStart, PhaseOver:
		if in.Start() {
			return s.StartMatch()
		}
	case PhasePlaying:
		s.movePaddles(in, delta)
		s.Balls.Update(delta)
		s.resolveCollisions()
	}
	return nil
}

func (s *State) movePaddles(in input.Input, delta time.Duration) {
	s.Players[object.Player1].Move(axisInput(in.P1Up, in.P1Down), delta, fieldTop(), fieldBottom())
	s.Players[object.Player2].Move(axisInput(in.P2Up, in.P2Down), delta, fieldTop(), fieldBottom())
}

// axisInput turns an up/down key pair into -1, 0 or +1. Both keys cancel out.
func axisInput(up, down bool) float64 {
	var d float64
	if up {
		d--
	}
	if down {
		d++
	}
	return d
}
