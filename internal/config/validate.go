package config

import (
	"errors"
	"fmt"
)

// Validation errors. Returned errors wrap one of these.
var (
	ErrUnknownPreset = errors.New("unknown preset")
	ErrInvalid       = errors.New("invalid value")
	ErrGapTooLarge   = errors.New("pipe gap does not fit the playable band")
)

// Validate rejects configurations the simulation cannot run safely, most
// importantly a pipe gap (plus its margins) taller than the space above the ground.
func Validate(cfg GameConfig) error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		invalid("screen must be positive, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Screen.LandHeight < 0 || cfg.Screen.LandHeight >= cfg.Screen.Height {
		invalid("land_height %d must be in [0, %d)", cfg.Screen.LandHeight, cfg.Screen.Height)
	}

	switch cfg.Physics.FlapPolicy {
	case FlapSet, FlapAccumulate:
	default:
		invalid("flap_policy %q (want %q or %q)", cfg.Physics.FlapPolicy, FlapSet, FlapAccumulate)
	}
	switch cfg.Physics.Ceiling {
	case CeilingGameOver, CeilingClamp:
	default:
		invalid("ceiling %q (want %q or %q)", cfg.Physics.Ceiling, CeilingGameOver, CeilingClamp)
	}

	if cfg.Bird.Size <= 0 {
		invalid("bird size must be positive, got %g", cfg.Bird.Size)
	}
	if cfg.Bird.X < 0 || cfg.Bird.X+cfg.Bird.Size > float64(cfg.Screen.Width) {
		invalid("bird x %g does not fit a %d wide screen", cfg.Bird.X, cfg.Screen.Width)
	}
	if cfg.Bird.Size >= cfg.GroundY() {
		invalid("bird size %g does not fit above the ground", cfg.Bird.Size)
	}

	if cfg.Pipes.Width <= 0 {
		invalid("pipe width must be positive, got %g", cfg.Pipes.Width)
	}
	if cfg.Pipes.Speed <= 0 {
		invalid("pipe speed must be positive, got %g", cfg.Pipes.Speed)
	}
	if cfg.Pipes.Gap <= 0 {
		invalid("pipe gap must be positive, got %d", cfg.Pipes.Gap)
	}
	if cfg.Pipes.MinTop < 0 || cfg.Pipes.MinBottom < 0 {
		invalid("pipe margins must not be negative, got top=%d bottom=%d", cfg.Pipes.MinTop, cfg.Pipes.MinBottom)
	}
	if lo, hi := cfg.GapRange(); cfg.Pipes.Gap > 0 && hi < lo {
		errs = append(errs, fmt.Errorf("%w: gap %d with margins %d/%d needs %d px, only %d above the ground",
			ErrGapTooLarge, cfg.Pipes.Gap, cfg.Pipes.MinTop, cfg.Pipes.MinBottom,
			cfg.Pipes.Gap+cfg.Pipes.MinTop+cfg.Pipes.MinBottom, int(cfg.GroundY())))
	}

	if cfg.Spawn.MinIntervalMS <= 0 {
		invalid("spawn min_interval_ms must be positive, got %d", cfg.Spawn.MinIntervalMS)
	}
	if cfg.Spawn.MaxIntervalMS < cfg.Spawn.MinIntervalMS {
		invalid("spawn max_interval_ms %d is below min_interval_ms %d", cfg.Spawn.MaxIntervalMS, cfg.Spawn.MinIntervalMS)
	}

	p := cfg.Palette
	if len(p.Backgrounds) == 0 || len(p.Birds) == 0 || len(p.Lands) == 0 || len(p.Pipes) == 0 {
		invalid("palette needs at least one background, bird, land and pipe colour")
	}

	return errors.Join(errs...)
}
