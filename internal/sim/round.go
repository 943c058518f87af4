// Package sim is the game's simulation step: bird kinematics, the pipe
// lifecycle, and the collision and scoring oracle. It has no rendering, input
// or timing dependencies; frontends feed it input frames and clock readings.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Phase is the round's state.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseGameOver
)

// String returns the phase's name.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game over"
	}
	return "active"
}

// Round is the complete state of one play session plus the process-wide best score.
// It is a value: Engine.Step returns a new Round and leaves its argument intact.
type Round struct {
	Number       int // 1 for the first round of the process
	Frame        int // frames simulated in this round
	Bird         Bird
	Pipes        []Pipe // spawn order, which is also left-to-right
	Score        int
	Best         int
	Phase        Phase
	LastSpawn    int64 // clock reading of the last spawn (or round start)
	NextInterval int64 // milliseconds until the next spawn is due
	Scenery      Scenery
}

// Over reports whether the round has ended.
func (r Round) Over() bool {
	return r.Phase == PhaseGameOver
}

func (r Round) clone() Round {
	r.Pipes = append(make([]Pipe, 0, len(r.Pipes)+1), r.Pipes...)
	return r
}

// Report describes what happened during one step.
type Report struct {
	Scored    int   // pipes passed this frame
	Ended     bool  // the round entered game over this frame
	Cause     Cause // why it ended
	Restarted bool  // a new round replaced a finished one
}

// Engine runs rounds for one configuration.
type Engine struct {
	cfg    config.GameConfig
	layout Source
	paint  *Cosmetics
}

// NewEngine validates cfg and creates an engine seeded for reproducible play.
// Layout (gaps, intervals) and cosmetics draw from separate streams.
func NewEngine(cfg config.GameConfig, seed int64) (*Engine, error) {
	return NewEngineWithSources(cfg,
		rand.New(rand.NewSource(seed)),
		rand.New(rand.NewSource(seed^0x5eed)),
	)
}

// NewEngineWithSources creates an engine with explicit random sources.
func NewEngineWithSources(cfg config.GameConfig, layout, paint Source) (*Engine, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	cfg = cfg.Clone()
	return &Engine{
		cfg:    cfg,
		layout: layout,
		paint:  NewCosmetics(cfg.Palette, paint),
	}, nil
}

// Reseed replaces both random streams with fresh ones derived from seed.
func (e *Engine) Reseed(seed int64) {
	e.layout = rand.New(rand.NewSource(seed))
	e.paint = NewCosmetics(e.cfg.Palette, rand.New(rand.NewSource(seed^0x5eed)))
}

// Config returns the engine's configuration.
func (e *Engine) Config() config.GameConfig {
	return e.cfg.Clone()
}

// GroundY returns the y coordinate of the ground line.
func (e *Engine) GroundY() float64 {
	return e.cfg.GroundY()
}

// NewRound starts the first round of a process at clock reading now.
func (e *Engine) NewRound(now int64) Round {
	return e.begin(1, 0, now)
}

// Restart replaces a finished round with a fresh one, keeping the best score.
// Active rounds are returned unchanged.
func (e *Engine) Restart(r Round, now int64) Round {
	if !r.Over() {
		return r
	}
	return e.begin(r.Number+1, r.Best, now)
}

func (e *Engine) begin(number, best int, now int64) Round {
	bird, scenery := e.paint.Dress(NewBird(e.cfg), number == 1)
	return Round{
		Number:       number,
		Bird:         bird,
		Best:         best,
		Phase:        PhaseActive,
		LastSpawn:    now,
		NextInterval: e.drawInterval(),
		Scenery:      scenery,
	}
}

// Step advances r by one frame using the frame's ordered input and clock reading.
// A finished round only reacts to ActionRestart.
func (e *Engine) Step(r Round, in core.InputFrame, now int64) (Round, Report) {
	if r.Over() {
		if in.Has(core.ActionRestart) {
			return e.Restart(r, now), Report{Restarted: true}
		}
		return r, Report{}
	}

	next := r.clone()
	next.Frame++

	for _, a := range in.Events {
		if a == core.ActionJump {
			next.Bird = Flap(next.Bird, e.cfg.Physics)
		}
	}
	next.Bird = Fall(next.Bird, e.cfg.Physics)

	e.maybeSpawn(&next, now)
	Advance(next.Pipes, e.cfg.Pipes.Speed)

	var rep Report
	rep.Scored = Score(next.Pipes, next.Bird.X)
	next.Score += rep.Scored
	next.Pipes = Prune(next.Pipes)

	if hit, cause := Check(next.Bird, next.Pipes, e.GroundY()); hit {
		next.Phase = PhaseGameOver
		next.Best = max(next.Best, next.Score)
		rep.Ended = true
		rep.Cause = cause
	}
	return next, rep
}

// maybeSpawn appends a pipe at the right edge once the spawn interval has elapsed.
func (e *Engine) maybeSpawn(r *Round, now int64) bool {
	if now-r.LastSpawn <= r.NextInterval {
		return false
	}

	lo, hi := e.cfg.GapRange()
	gapStart := lo + e.layout.Intn(hi-lo+1)
	pipe, err := NewPipe(
		float64(e.cfg.Screen.Width),
		float64(gapStart),
		float64(e.cfg.Pipes.Gap),
		e.cfg.Pipes.Width,
		e.GroundY(),
		e.paint.PipeColor(),
	)
	if err != nil {
		// GapRange of a validated config always yields a legal pipe.
		panic(err)
	}

	r.Pipes = append(r.Pipes, pipe)
	r.LastSpawn = now
	r.NextInterval = e.drawInterval()
	return true
}

func (e *Engine) drawInterval() int64 {
	lo, hi := e.cfg.Spawn.MinIntervalMS, e.cfg.Spawn.MaxIntervalMS
	if hi <= lo {
		return lo
	}
	return lo + int64(e.layout.Intn(int(hi-lo+1)))
}
