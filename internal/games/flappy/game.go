// Package flappy adapts the simulation to the platform's Game interface.
// Every shipped preset registers itself as a separate playable game.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// Game runs rounds of one preset.
type Game struct {
	preset  string
	engine  *sim.Engine
	round   sim.Round
	clock   sim.Clock
	frames  *sim.FrameClock // set when spawn timing follows the frame count
	runtime core.RuntimeConfig
}

// New creates a game for a validated configuration. The game is ready to
// play with default runtime settings; call Reset to change them.
func New(preset string, cfg config.GameConfig) (*Game, error) {
	engine, err := sim.NewEngine(cfg, 0)
	if err != nil {
		return nil, err
	}
	g := &Game{preset: preset, engine: engine}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the preset name.
func (g *Game) ID() string {
	return g.preset
}

// Title returns the display name of the preset.
func (g *Game) Title() string {
	return g.engine.Config().Title
}

// Config returns the game configuration.
func (g *Game) Config() config.GameConfig {
	return g.engine.Config()
}

// Reset starts a new session: the first round, best score cleared.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.engine.Reseed(cfg.Seed)

	if cfg.WallClock {
		g.clock, g.frames = sim.NewSystemClock(), nil
	} else {
		g.frames = sim.NewFrameClock(cfg.TickRate)
		g.clock = g.frames
	}

	g.round = g.engine.NewRound(g.clock.NowMillis())
}

// Step advances the game by one tick. Once the round is over a flap
// starts the next one, the same as the restart key.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.frames != nil {
		g.frames.Tick()
	}

	if g.round.Over() && in.Has(core.ActionJump) {
		in = in.Clone()
		in.Set(core.ActionRestart)
	}

	var rep sim.Report
	g.round, rep = g.engine.Step(g.round, in, g.clock.NowMillis())

	return core.StepResult{
		State:    g.State(),
		Scored:   rep.Scored,
		Ended:    rep.Ended,
		Cause:    rep.Cause.String(),
		Restarts: rep.Restarted,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.round.Score,
		Best:     g.round.Best,
		GameOver: g.round.Over(),
	}
}

// Round returns the current round.
func (g *Game) Round() sim.Round {
	return g.round
}

// Snapshot returns a read-only view of the current round in world units.
func (g *Game) Snapshot() sim.Snapshot {
	return g.engine.Snapshot(g.round)
}

// Render draws the current round scaled to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	Draw(dst, g.Snapshot())
}

func init() {
	for _, preset := range config.Presets() {
		preset := preset
		cfg, err := config.Preset(preset)
		if err != nil {
			panic(err)
		}
		info := registry.GameInfo{ID: preset, Title: cfg.Title}
		registry.Register(info, func(customPath string) (registry.Game, error) {
			cfg, err := config.Load(preset, customPath)
			if err != nil {
				return nil, err
			}
			g, err := New(preset, cfg)
			if err != nil {
				return nil, err
			}
			return g, nil
		})
	}
}
