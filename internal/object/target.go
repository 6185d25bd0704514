package object

import (
	"time"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/physics"
)

// TargetKind selects what a target does when the primary ball hits it.
type TargetKind int

const (
	// TargetBoost multiplies the primary ball's speed for a while.
	TargetBoost TargetKind = iota
	// TargetDuplicator spawns an extra ball for a while.
	TargetDuplicator
)

func (k TargetKind) String() string {
	switch k {
	case TargetBoost:
		return "Boost"
	case TargetDuplicator:
		return "Duplicator"
	}
	return "Unknown"
}

// Target is a stationary power-up. Only the fields for its kind are used.
type Target struct {
	Kind              TargetKind
	BoostFactor       float64
	BoostDuration     time.Duration
	ExtraBallDuration time.Duration

	rect     physics.Rect
	consumed bool
}

func NewBoostTarget(rect physics.Rect, factor float64, duration time.Duration) *Target {
	return &Target{
		Kind:          TargetBoost,
		BoostFactor:   factor,
		BoostDuration: duration,
		rect:          rect,
	}
}

func NewDuplicatorTarget(rect physics.Rect, extraBallDuration time.Duration) *Target {
	return &Target{
		Kind:              TargetDuplicator,
		ExtraBallDuration: extraBallDuration,
		rect:              rect,
	}
}

func (t *Target) Bounds() physics.Rect { return t.rect }

// Active reports whether the target can currently be hit.
func (t *Target) Active() bool { return !t.consumed }

// Consume takes the target off the court until Restore is called.
func (t *Target) Consume() { t.consumed = true }

func (t *Target) Restore() { t.consumed = false }

// Draw draws active targets only.
func (t *Target) Draw(s Surface) {
	if t.consumed {
		return
	}
	if t.Kind == TargetBoost {
		s.SetColor(draw.ColorYellow)
	} else {
		s.SetColor(draw.ColorMagenta)
	}
	s.FillRect(t.rect.CX, t.rect.CY, t.rect.Width, t.rect.Height)
}
