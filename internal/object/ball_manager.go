package object

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/effect"
	"github.com/tomz197/pong/internal/physics"
)

// DuplicateColor marks balls spawned by a Duplicator target.
const DuplicateColor = draw.ColorRed

// Duplicate balls leave at a shallow angle: |x| is drawn from [minDuplicateX, 1).
const minDuplicateX = 0.85

// ManagerOptions configures a BallManager. Zero values get sensible defaults.
type ManagerOptions struct {
	Registry  *Registry
	Scheduler *effect.Scheduler
	Rand      *rand.Rand
	Logger    *log.Logger
}

// BallManager owns the primary ball and every duplicate spawned during a match.
// All methods must be called from the goroutine that runs the match.
type BallManager struct {
	ballType string
	ctor     Constructor

	scheduler *effect.Scheduler
	rng       *rand.Rand
	logger    *log.Logger

	primary    Ball
	duplicates []Ball // Oldest first
	baseSpeed  float64
}

// NewBallManager creates a manager that builds balls of the given registered type.
// An unknown type is logged and replaced by DefaultBallType.
func NewBallManager(ballType string, opts ManagerOptions) *BallManager {
	if opts.Registry == nil {
		opts.Registry = DefaultRegistry()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = effect.NewScheduler(nil)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	ctor, ok := opts.Registry.Lookup(ballType)
	if !ok {
		opts.Logger.Warn("unknown ball type, using default", "type", ballType, "default", DefaultBallType)
		ballType = DefaultBallType
		ctor = newDefaultBall
	}

	return &BallManager{
		ballType:  ballType,
		ctor:      ctor,
		scheduler: opts.Scheduler,
		rng:       opts.Rand,
		logger:    opts.Logger,
	}
}

// BallType returns the name of the type the manager builds.
func (m *BallManager) BallType() string { return m.ballType }

// CreatePrimary builds the primary ball and records spec.Speed as the base speed.
// Only a zero direction is an error; a failing constructor falls back to a Body.
func (m *BallManager) CreatePrimary(spec BallSpec) error {
	ball, err := m.newBall(spec)
	if err != nil {
		return fmt.Errorf("create primary ball: %w", err)
	}
	m.primary = ball
	m.baseSpeed = spec.Speed
	return nil
}

func (m *BallManager) newBall(spec BallSpec) (Ball, error) {
	if _, _, err := physics.Normalize(spec.DirX, spec.DirY); err != nil {
		return nil, err
	}

	ball, err := construct(m.ctor, spec)
	if err == nil {
		return ball, nil
	}
	m.logger.Warn("ball construction failed, using default", "type", m.ballType, "err", err)
	return newDefaultBall(spec)
}

// construct runs ctor, turning a panic or a nil ball into an error.
func construct(ctor Constructor, spec BallSpec) (ball Ball, err error) {
	defer func() {
		if r := recover(); r != nil {
			ball, err = nil, fmt.Errorf("constructor panicked: %v", r)
		}
	}()
	ball, err = ctor(spec)
	if err == nil && ball == nil {
		err = errors.New("constructor returned no ball")
	}
	return ball, err
}

// Update runs the effects that are due and then advances every ball.
func (m *BallManager) Update(delta time.Duration) {
	m.scheduler.RunDue()

	if m.primary == nil {
		return
	}
	m.primary.Update(delta)
	for _, b := range m.duplicates {
		b.Update(delta)
	}
}

// Draw draws the primary ball and then the duplicates, oldest first.
func (m *BallManager) Draw(s Surface) {
	if m.primary == nil {
		return
	}
	m.primary.Draw(s)
	for _, b := range m.duplicates {
		b.Draw(s)
	}
}

// ResolveWallCollisions bounces every ball touching w and returns how many did.
func (m *BallManager) ResolveWallCollisions(w *Wall) int {
	axis, sign := w.Tag().Response()
	r := w.Bounds()

	hits := 0
	m.each(func(b Ball) {
		if b.Overlaps(r) {
			b.Reflect(axis, sign)
			hits++
		}
	})
	return hits
}

// ResolvePlayerCollisions sends every ball touching p back towards the opponent.
func (m *BallManager) ResolvePlayerCollisions(p *Player) {
	axis, sign := p.Tag().Response()
	r := p.Bounds()

	m.each(func(b Ball) {
		if b.Overlaps(r) {
			b.Reflect(axis, sign)
		}
	})
}

// ResolveTargetCollision applies t's effect if the primary ball touches it.
// Duplicates never trigger targets. It reports whether the primary hit an active target.
func (m *BallManager) ResolveTargetCollision(t *Target) bool {
	if m.primary == nil || !t.Active() || !m.primary.Overlaps(t.Bounds()) {
		return false
	}

	switch t.Kind {
	case TargetBoost:
		m.boost(t.BoostFactor, t.BoostDuration)
	case TargetDuplicator:
		m.duplicate(t.ExtraBallDuration)
	}
	return true
}

// boost speeds up the primary ball unless it is already boosted.
func (m *BallManager) boost(factor float64, duration time.Duration) {
	if m.primary.Speed() != m.baseSpeed {
		m.logger.Debug("boost ignored, already boosted")
		return
	}
	m.primary.SetSpeed(m.baseSpeed * factor)
	m.scheduler.Schedule(duration, m.restoreSpeed)
	m.logger.Debug("ball boosted", "speed", m.primary.Speed(), "duration", duration)
}

func (m *BallManager) restoreSpeed() {
	if m.primary != nil {
		m.primary.SetSpeed(m.baseSpeed)
	}
}

// duplicate spawns a red ball at the primary's position and arms the removal
// of the oldest duplicate after lifetime.
func (m *BallManager) duplicate(lifetime time.Duration) {
	dx := minDuplicateX + m.rng.Float64()*(1-minDuplicateX)
	dy := math.Sqrt(1 - dx*dx)
	if m.rng.Float64() < 0.5 {
		dx = -dx
	}

	r := m.primary.Bounds()
	ball, err := m.newBall(BallSpec{
		CX:     r.CX,
		CY:     r.CY,
		Width:  r.Width,
		Height: r.Height,
		Color:  DuplicateColor,
		Speed:  m.baseSpeed,
		DirX:   dx,
		DirY:   dy,
	})
	if err != nil {
		m.logger.Error("spawn duplicate", "err", err)
		return
	}

	m.duplicates = append(m.duplicates, ball)
	m.scheduler.Schedule(lifetime, m.expireOldest)
	m.logger.Debug("ball duplicated", "balls", m.BallCount(), "lifetime", lifetime)
}

// expireOldest removes the head of the duplicate queue, whichever hit armed the timer.
func (m *BallManager) expireOldest() {
	if len(m.duplicates) == 0 {
		return
	}
	m.duplicates[0] = nil
	m.duplicates = m.duplicates[1:]
}

func (m *BallManager) each(fn func(Ball)) {
	if m.primary == nil {
		return
	}
	fn(m.primary)
	for _, b := range m.duplicates {
		fn(b)
	}
}

func (m *BallManager) Primary() Ball { return m.primary }

// Duplicates returns a copy of the duplicate queue, oldest first.
func (m *BallManager) Duplicates() []Ball {
	return append([]Ball(nil), m.duplicates...)
}

// BallCount returns the number of balls in play.
func (m *BallManager) BallCount() int {
	if m.primary == nil {
		return 0
	}
	return 1 + len(m.duplicates)
}

// BaseSpeed is the primary ball's speed without a boost.
func (m *BallManager) BaseSpeed() float64 { return m.baseSpeed }

// Boosted reports whether the primary ball is running above its base speed.
func (m *BallManager) Boosted() bool {
	return m.primary != nil && m.primary.Speed() != m.baseSpeed
}

func (m *BallManager) Scheduler() *effect.Scheduler { return m.scheduler }

// ClearDuplicates removes every duplicate. Expiry timers that are already armed
// still fire and remove whatever is oldest at that point.
func (m *BallManager) ClearDuplicates() {
	clear(m.duplicates)
	m.duplicates = m.duplicates[:0]
}
