package object

import (
	"bytes"
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"go.uber.org/mock/gomock"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/effect"
	"github.com/tomz197/pong/internal/object/mocks"
	"github.com/tomz197/pong/internal/physics"
)

type managerFixture struct {
	m     *BallManager
	clock *effect.ManualClock
	logs  *bytes.Buffer
}

func newManager(t *testing.T, ballType string, reg *Registry) managerFixture {
	t.Helper()
	clock := effect.NewManualClock(time.Unix(0, 0))
	logs := &bytes.Buffer{}
	m := NewBallManager(ballType, ManagerOptions{
		Registry:  reg,
		Scheduler: effect.NewScheduler(clock),
		Rand:      rand.New(rand.NewSource(1)),
		Logger:    log.New(logs),
	})
	return managerFixture{m: m, clock: clock, logs: logs}
}

// advance moves the scheduler clock and runs a zero-length tick so due effects fire.
func (f managerFixture) advance(d time.Duration) {
	f.clock.Advance(d)
	f.m.Update(0)
}

func primarySpec(speed float64) BallSpec {
	return BallSpec{CX: 60, CY: 40, Width: 2, Height: 2, Color: draw.ColorWhite, Speed: speed, DirX: 1, DirY: 1}
}

func targetRect() physics.Rect {
	return physics.Rect{CX: 60, CY: 40, Width: 4, Height: 4}
}

func TestBallManager_BoostRestoresAfterDuration(t *testing.T) {
	f := newManager(t, DefaultBallType, nil)
	if err := f.m.CreatePrimary(primarySpec(1.0)); err != nil {
		t.Fatalf("CreatePrimary: %v", err)
	}
	target := NewBoostTarget(targetRect(), 2.0, 5000*time.Millisecond)

	if !f.m.ResolveTargetCollision(target) {
		t.Fatal("boost target not hit")
	}
	if got := f.m.Primary().Speed(); got != 2.0 {
		t.Fatalf("speed after hit = %v, want 2", got)
	}
	if !f.m.Boosted() {
		t.Error("Boosted() = false after hit")
	}

	f.advance(4999 * time.Millisecond)
	if got := f.m.Primary().Speed(); got != 2.0 {
		t.Errorf("speed before expiry = %v, want 2", got)
	}

	f.advance(time.Millisecond)
	if got := f.m.Primary().Speed(); got != 1.0 {
		t.Errorf("speed after expiry = %v, want 1", got)
	}
	if f.m.Boosted() {
		t.Error("Boosted() = true after expiry")
	}
}

func TestBallManager_BoostDoesNotStack(t *testing.T) {
	f := newManager(t, DefaultBallType, nil)
	if err := f.m.CreatePrimary(primarySpec(1.5)); err != nil {
		t.Fatalf("CreatePrimary: %v", err)
	}
	target := NewBoostTarget(targetRect(), 2.0, 5*time.Second)

	for i := 0; i < 3; i++ {
		f.m.ResolveTargetCollision(target)
	}

	if got := f.m.Primary().Speed(); got != 3.0 {
		t.Errorf("speed = %v, want 3", got)
	}
	if got := f.m.Scheduler().Pending(); got != 1 {
		t.Errorf("pending restores = %d, want 1", got)
	}

	// Once restored, the boost can be triggered again.
	f.advance(5 * time.Second)
	f.m.ResolveTargetCollision(target)
	if got := f.m.Primary().Speed(); got != 3.0 {
		t.Errorf("speed after re-boost = %v, want 3", got)
	}
}

func TestBallManager_DuplicateExpiryIsFIFO(t *testing.T) {
	f := newManager(t, DefaultBallType, nil)
	if err := f.m.CreatePrimary(primarySpec(1.0)); err != nil {
		t.Fatalf("CreatePrimary: %v", err)
	}
	long := NewDuplicatorTarget(targetRect(), 10*time.Second)
	short := NewDuplicatorTarget(targetRect(), 3*time.Second)

	f.m.ResolveTargetCollision(long) // A, expires at 10s
	f.clock.Advance(time.Second)
	f.m.ResolveTargetCollision(long) // B, expires at 11s
	f.clock.Advance(time.Second)
	f.m.ResolveTargetCollision(short) // C, timer fires at 5s

	dups := f.m.Duplicates()
	if len(dups) != 3 {
		t.Fatalf("len(Duplicates()) = %d, want 3", len(dups))
	}
	b, c := dups[1], dups[2]

	// C's timer fires first but retires the oldest ball, A.
	f.advance(3 * time.Second)
	if got := f.m.Duplicates(); len(got) != 2 || got[0] != b || got[1] != c {
		t.Fatalf("after first expiry: %v, want [B C]", got)
	}

	// A's timer fires next and retires B.
	f.advance(5 * time.Second)
	if got := f.m.Duplicates(); len(got) != 1 || got[0] != c {
		t.Fatalf("after second expiry: %v, want [C]", got)
	}

	f.advance(time.Second)
	if got := f.m.BallCount(); got != 1 {
		t.Errorf("BallCount() = %d, want 1", got)
	}
}

func TestBallManager_DuplicateSpawn(t *testing.T) {
	f := newManager(t, DefaultBallType, nil)
	if err := f.m.CreatePrimary(primarySpec(0.5)); err != nil {
		t.Fatalf("CreatePrimary: %v", err)
	}
	f.m.ResolveTargetCollision(NewBoostTarget(targetRect(), 2, 5*time.Second))

	target := NewDuplicatorTarget(targetRect(), 10*time.Second)
	for i := 0; i < 50; i++ {
		f.m.ResolveTargetCollision(target)
	}

	for i, d := range f.m.Duplicates() {
		body, ok := d.(*Body)
		if !ok {
			t.Fatalf("duplicate %d is %T, want *Body", i, d)
		}
		if body.Color() != DuplicateColor {
			t.Errorf("duplicate %d color = %v, want %v", i, body.Color(), DuplicateColor)
		}
		// Duplicates use the base speed even while the primary is boosted.
		if body.Speed() != 0.5 {
			t.Errorf("duplicate %d speed = %v, want 0.5", i, body.Speed())
		}
		if x, y := body.Position(); x != 60 || y != 40 {
			t.Errorf("duplicate %d at (%v, %v), want (60, 40)", i, x, y)
		}
		vx, vy := body.Velocity()
		if ux := math.Abs(vx) / 0.5; ux < minDuplicateX || ux >= 1 {
			t.Errorf("duplicate %d |ux| = %v, want in [%v, 1)", i, ux, minDuplicateX)
		}
		if vy < 0 {
			t.Errorf("duplicate %d vy = %v, want >= 0", i, vy)
		}
	}
}

func TestBallManager_DuplicatesDoNotTriggerTargets(t *testing.T) {
	f := newManager(t, DefaultBallType, nil)
	spec := primarySpec(1)
	spec.DirX, spec.DirY = 0, 1
	if err := f.m.CreatePrimary(spec); err != nil {
		t.Fatalf("CreatePrimary: %v", err)
	}
	f.m.ResolveTargetCollision(NewDuplicatorTarget(targetRect(), 10*time.Second))

	// Primary goes straight down, the duplicate mostly sideways.
	f.m.Update(100 * time.Millisecond)

	dup := f.m.Duplicates()[0]
	target := NewBoostTarget(dup.Bounds(), 2, time.Second)
	if f.m.ResolveTargetCollision(target) {
		t.Error("target hit reported for a duplicate")
	}
	if f.m.Boosted() {
		t.Error("duplicate triggered a boost")
	}
}

func TestBallManager_InactiveTargetIgnored(t *testing.T) {
	f := newManager(t, DefaultBallType, nil)
	if err := f.m.CreatePrimary(primarySpec(1)); err != nil {
		t.Fatalf("CreatePrimary: %v", err)
	}
	target := NewDuplicatorTarget(targetRect(), time.Second)
	target.Consume()

	if f.m.ResolveTargetCollision(target) {
		t.Error("consumed target was hit")
	}
	if got := f.m.BallCount(); got != 1 {
		t.Errorf("BallCount() = %d, want 1", got)
	}
}

func TestBallManager_WallHitsCountEveryBall(t *testing.T) {
	f := newManager(t, DefaultBallType, nil)
	if err := f.m.CreatePrimary(primarySpec(1)); err != nil {
		t.Fatalf("CreatePrimary: %v", err)
	}
	dup := NewDuplicatorTarget(targetRect(), time.Minute)
	f.m.ResolveTargetCollision(dup)
	f.m.ResolveTargetCollision(dup)

	bottom := NewWall(WallBottom, physics.Rect{CX: 60, CY: 41, Width: 120, Height: 2}, draw.ColorWhite)
	if got := f.m.ResolveWallCollisions(bottom); got != 3 {
		t.Errorf("hits = %d, want 3", got)
	}
	for i, d := range append([]Ball{f.m.Primary()}, f.m.Duplicates()...) {
		if _, vy := d.(*Body).Velocity(); vy != -1 {
			t.Errorf("ball %d vy = %v, want -1", i, vy)
		}
	}

	top := NewWall(WallTop, physics.Rect{CX: 60, CY: 0, Width: 120, Height: 2}, draw.ColorWhite)
	if got := f.m.ResolveWallCollisions(top); got != 0 {
		t.Errorf("hits on distant wall = %d, want 0", got)
	}
}

func TestBallManager_PlayerCollision(t *testing.T) {
	tests := []struct {
		tag    PlayerTag
		wantVX float64
	}{
		{Player1, 1},
		{Player2, -1},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			f := newManager(t, DefaultBallType, nil)
			spec := primarySpec(1)
			spec.DirX = -tt.wantVX
			if err := f.m.CreatePrimary(spec); err != nil {
				t.Fatalf("CreatePrimary: %v", err)
			}
			f.m.ResolveTargetCollision(NewDuplicatorTarget(targetRect(), time.Minute))

			paddle := NewPlayer(tt.tag, physics.Rect{CX: 60, CY: 40, Width: 2, Height: 16}, 0.1, draw.ColorWhite)
			f.m.ResolvePlayerCollisions(paddle)

			for i, d := range append([]Ball{f.m.Primary()}, f.m.Duplicates()...) {
				if vx, _ := d.(*Body).Velocity(); vx != tt.wantVX {
					t.Errorf("ball %d vx = %v, want %v", i, vx, tt.wantVX)
				}
			}
		})
	}
}

func TestBallManager_UnknownTypeFallsBack(t *testing.T) {
	f := newManager(t, "SquareBall", nil)
	if f.m.BallType() != DefaultBallType {
		t.Errorf("BallType() = %q, want %q", f.m.BallType(), DefaultBallType)
	}
	if !strings.Contains(f.logs.String(), "unknown ball type") {
		t.Errorf("missing warning, logs: %q", f.logs.String())
	}

	if err := f.m.CreatePrimary(primarySpec(1)); err != nil {
		t.Fatalf("CreatePrimary: %v", err)
	}
	if _, ok := f.m.Primary().(*Body); !ok {
		t.Errorf("Primary() = %T, want *Body", f.m.Primary())
	}
}

func TestBallManager_FailingConstructorFallsBack(t *testing.T) {
	tests := []struct {
		name string
		ctor Constructor
	}{
		{"error", func(BallSpec) (Ball, error) { return nil, errors.New("no assets") }},
		{"nil ball", func(BallSpec) (Ball, error) { return nil, nil }},
		{"panic", func(BallSpec) (Ball, error) { panic("boom") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			reg.Register("Fragile", tt.ctor)
			f := newManager(t, "Fragile", reg)

			if err := f.m.CreatePrimary(primarySpec(1)); err != nil {
				t.Fatalf("CreatePrimary: %v", err)
			}
			if _, ok := f.m.Primary().(*Body); !ok {
				t.Errorf("Primary() = %T, want *Body", f.m.Primary())
			}
			if !strings.Contains(f.logs.String(), "ball construction failed") {
				t.Errorf("missing warning, logs: %q", f.logs.String())
			}
		})
	}
}

func TestBallManager_FxBallType(t *testing.T) {
	f := newManager(t, "FxBall", nil)
	if err := f.m.CreatePrimary(primarySpec(1)); err != nil {
		t.Fatalf("CreatePrimary: %v", err)
	}
	if _, ok := f.m.Primary().(*FxBall); !ok {
		t.Errorf("Primary() = %T, want *FxBall", f.m.Primary())
	}
}

func TestBallManager_ZeroDirection(t *testing.T) {
	f := newManager(t, DefaultBallType, nil)
	spec := primarySpec(1)
	spec.DirX, spec.DirY = 0, 0

	err := f.m.CreatePrimary(spec)
	if !errors.Is(err, physics.ErrDegenerateDirection) {
		t.Fatalf("err = %v, want %v", err, physics.ErrDegenerateDirection)
	}
	if f.m.Primary() != nil {
		t.Error("primary created despite error")
	}
}

func TestBallManager_DrawOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)

	f := newManager(t, DefaultBallType, nil)
	if err := f.m.CreatePrimary(primarySpec(1)); err != nil {
		t.Fatalf("CreatePrimary: %v", err)
	}
	f.m.ResolveTargetCollision(NewDuplicatorTarget(targetRect(), time.Minute))

	gomock.InOrder(
		s.EXPECT().SetColor(draw.ColorWhite),
		s.EXPECT().FillRect(60.0, 40.0, 2.0, 2.0),
		s.EXPECT().SetColor(DuplicateColor),
		s.EXPECT().FillRect(60.0, 40.0, 2.0, 2.0),
	)

	f.m.Draw(s)
}

func TestBallManager_UpdateRunsEffectsBeforeMoving(t *testing.T) {
	f := newManager(t, DefaultBallType, nil)
	spec := primarySpec(1)
	spec.DirX, spec.DirY = 1, 0
	if err := f.m.CreatePrimary(spec); err != nil {
		t.Fatalf("CreatePrimary: %v", err)
	}
	f.m.ResolveTargetCollision(NewBoostTarget(targetRect(), 2, time.Second))

	// The restore is due at the start of this tick, so the move uses base speed.
	f.clock.Advance(time.Second)
	f.m.Update(10 * time.Millisecond)

	if got := f.m.Primary().Bounds().CX; got != 65 {
		t.Errorf("CX = %v, want 65", got)
	}
}

func TestBallManager_ClearDuplicates(t *testing.T) {
	f := newManager(t, DefaultBallType, nil)
	if err := f.m.CreatePrimary(primarySpec(1)); err != nil {
		t.Fatalf("CreatePrimary: %v", err)
	}
	f.m.ResolveTargetCollision(NewDuplicatorTarget(targetRect(), time.Second))
	f.m.ClearDuplicates()

	if got := f.m.BallCount(); got != 1 {
		t.Errorf("BallCount() = %d, want 1", got)
	}
	// The armed expiry finds an empty queue.
	f.advance(time.Second)
	if got := f.m.BallCount(); got != 1 {
		t.Errorf("BallCount() after expiry = %d, want 1", got)
	}
}

func TestBallManager_NoPrimary(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)
	f := newManager(t, DefaultBallType, nil)

	f.m.Update(time.Second)
	f.m.Draw(s)
	wall := NewWall(WallLeft, physics.Rect{Width: 10, Height: 10}, draw.ColorWhite)
	if got := f.m.ResolveWallCollisions(wall); got != 0 {
		t.Errorf("hits = %d, want 0", got)
	}
	if f.m.ResolveTargetCollision(NewBoostTarget(physics.Rect{Width: 10, Height: 10}, 2, time.Second)) {
		t.Error("target hit without a primary ball")
	}
	if got := f.m.BallCount(); got != 0 {
		t.Errorf("BallCount() = %d, want 0", got)
	}
}
