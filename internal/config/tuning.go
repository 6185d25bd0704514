package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidTuning is returned when a tuning value is out of range.
var ErrInvalidTuning = errors.New("invalid tuning")

// Duration is a time.Duration that reads from TOML strings such as "5s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Tuning holds the gameplay parameters that can be changed without a rebuild.
// Speeds are in logical pixels per millisecond.
type Tuning struct {
	BallType          string   `toml:"ball_type"`
	BallSpeed         float64  `toml:"ball_speed"`
	BallSize          float64  `toml:"ball_size"`
	PaddleSpeed       float64  `toml:"paddle_speed"`
	PaddleHeight      float64  `toml:"paddle_height"`
	BoostFactor       float64  `toml:"boost_factor"`
	BoostDuration     Duration `toml:"boost_duration"`
	ExtraBallDuration Duration `toml:"extra_ball_duration"`
	TargetCooldown    Duration `toml:"target_cooldown"`
	WinningScore      int      `toml:"winning_score"`
}

// DefaultTuning returns the stock gameplay parameters.
func DefaultTuning() Tuning {
	return Tuning{
		BallType:          "FxBall",
		BallSpeed:         0.1,
		BallSize:          2,
		PaddleSpeed:       0.06,
		PaddleHeight:      16,
		BoostFactor:       2.0,
		BoostDuration:     Duration{5 * time.Second},
		ExtraBallDuration: Duration{10 * time.Second},
		TargetCooldown:    Duration{3 * time.Second},
		WinningScore:      10,
	}
}

// LoadTuning reads a TOML file on top of DefaultTuning.
// Keys the file sets but Tuning does not know are reported as an error.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return Tuning{}, fmt.Errorf("load tuning %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Tuning{}, fmt.Errorf("load tuning %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("load tuning %s: %w", path, err)
	}
	return t, nil
}

// Validate checks that every value is usable by the game.
func (t Tuning) Validate() error {
	switch {
	case t.BallSpeed <= 0:
		return fmt.Errorf("%w: ball_speed must be positive, got %v", ErrInvalidTuning, t.BallSpeed)
	case t.BallSize <= 0:
		return fmt.Errorf("%w: ball_size must be positive, got %v", ErrInvalidTuning, t.BallSize)
	case t.PaddleSpeed <= 0:
		return fmt.Errorf("%w: paddle_speed must be positive, got %v", ErrInvalidTuning, t.PaddleSpeed)
	case t.PaddleHeight <= 0:
		return fmt.Errorf("%w: paddle_height must be positive, got %v", ErrInvalidTuning, t.PaddleHeight)
	case t.BoostFactor < 1:
		return fmt.Errorf("%w: boost_factor must be at least 1, got %v", ErrInvalidTuning, t.BoostFactor)
	case t.BoostDuration.Duration < 0, t.ExtraBallDuration.Duration < 0, t.TargetCooldown.Duration < 0:
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidTuning)
	case t.WinningScore <= 0:
		return fmt.Errorf("%w: winning_score must be positive, got %d", ErrInvalidTuning, t.WinningScore)
	}
	return nil
}

// FromEnv builds the tuning for this process.
// PONG_TUNING names an optional TOML file and PONG_BALL_TYPE overrides the ball type.
func FromEnv() (Tuning, error) {
	t := DefaultTuning()
	if path := GetEnv("PONG_TUNING", ""); path != "" {
		loaded, err := LoadTuning(path)
		if err != nil {
			return Tuning{}, err
		}
		t = loaded
	}
	t.BallType = GetEnv("PONG_BALL_TYPE", t.BallType)
	return t, nil
}
