package flappy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

func runtimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 50, ScreenH: 75, TickRate: 60, Seed: seed}
}

func newGame(t *testing.T, preset string) *Game {
	t.Helper()
	cfg, err := config.Preset(preset)
	require.NoError(t, err)
	g, err := New(preset, cfg)
	require.NoError(t, err)
	g.Reset(runtimeConfig(42))
	return g
}

// fallUntilOver steps without input until the bird lands.
func fallUntilOver(t *testing.T, g *Game) core.StepResult {
	t.Helper()
	for i := 0; i < 200; i++ {
		res := g.Step(core.NewInputFrame())
		if res.Ended {
			return res
		}
	}
	t.Fatal("round never ended")
	return core.StepResult{}
}

func TestEveryPresetIsRegistered(t *testing.T) {
	for _, preset := range config.Presets() {
		assert.True(t, registry.Exists(preset), preset)
	}

	g, err := registry.Create("classic", "")
	require.NoError(t, err)
	assert.Equal(t, "classic", g.ID())
	assert.Equal(t, "Flappy Bird", g.Title())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Pipes.Speed = 0

	_, err := New("classic", cfg)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestGameDeterminism(t *testing.T) {
	play := func() sim.Round {
		g := newGame(t, "boost")
		for i := 0; i < 400; i++ {
			in := core.NewInputFrame()
			if i%15 == 0 {
				in.Set(core.ActionJump)
			}
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Round()
	}

	assert.Equal(t, play(), play())
}

func TestFallingEndsOnGround(t *testing.T) {
	g := newGame(t, "classic")

	res := fallUntilOver(t, g)
	assert.Equal(t, "hit the ground", res.Cause)
	assert.True(t, res.State.GameOver)
	assert.True(t, g.State().GameOver)
}

func TestFlapRestartsAfterGameOver(t *testing.T) {
	g := newGame(t, "classic")
	fallUntilOver(t, g)

	res := g.Step(core.NewInputFrame(core.ActionJump))
	assert.True(t, res.Restarts)
	assert.False(t, res.State.GameOver)
	assert.Zero(t, res.State.Score)
	assert.Equal(t, 2, g.Round().Number)
	assert.Zero(t, g.Round().Bird.Velocity, "the restarting flap is not applied to the new bird")
}

func TestRestartKeyAfterGameOver(t *testing.T) {
	g := newGame(t, "classic")
	fallUntilOver(t, g)

	res := g.Step(core.NewInputFrame(core.ActionRestart))
	assert.True(t, res.Restarts)
	assert.Equal(t, 2, g.Round().Number)
}

func TestResetClearsSession(t *testing.T) {
	g := newGame(t, "classic")
	fallUntilOver(t, g)
	g.Step(core.NewInputFrame(core.ActionRestart))

	g.Reset(runtimeConfig(7))
	assert.Equal(t, 1, g.Round().Number)
	assert.Equal(t, core.GameState{}, g.State())
}

func TestWallClockSession(t *testing.T) {
	g := newGame(t, "classic")
	cfg := runtimeConfig(1)
	cfg.WallClock = true
	g.Reset(cfg)

	res := g.Step(core.NewInputFrame(core.ActionJump))
	assert.False(t, res.Ended)
	assert.Empty(t, g.Round().Pipes)
}

func TestRenderScalesWorld(t *testing.T) {
	g := newGame(t, "classic")
	scr := core.NewScreen(50, 75)
	g.Render(scr)

	// One cell per 8 pixels: the bird's x 50..70, y 300..320 covers columns 6..8, rows 37..39.
	bird := g.Round().Bird
	assert.Equal(t, BirdRune(bird.Shape), scr.Get(6, 37))
	assert.Equal(t, BirdRune(bird.Shape), scr.Get(8, 39))
	assert.NotEqual(t, BirdRune(bird.Shape), scr.Get(9, 37))
	require.NotNil(t, scr.GetCell(6, 37).FG)
	assert.Equal(t, bird.Color, *scr.GetCell(6, 37).FG)

	for x := 0; x < 50; x++ {
		assert.Equal(t, GroundChar, scr.Get(x, 68))
		assert.Equal(t, GroundChar, scr.Get(x, 74))
	}
	assert.NotEqual(t, GroundChar, scr.Get(0, 67))
	assert.Contains(t, scr.Row(0), "Score: 0  Best: 0")
	assert.NotContains(t, scr.String(), "GAME OVER")
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newGame(t, "classic")
	fallUntilOver(t, g)

	scr := core.NewScreen(50, 75)
	g.Render(scr)

	out := scr.String()
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "Press SPACE to restart")
}

func TestDrawPipeCaps(t *testing.T) {
	green := core.RGB{G: 128}
	s := sim.Snapshot{
		Width:  400,
		Height: 600,
		Pipes: []sim.PipeView{{
			Top:    core.NewBox(200, 0, 70, 100),
			Bottom: core.NewBox(200, 250, 70, 300),
			Color:  green,
		}},
		Ground:  core.NewBox(0, 550, 400, 50),
		BirdBox: core.NewBox(50, 300, 20, 20),
	}
	scr := core.NewScreen(50, 75)
	Draw(scr, s)

	assert.Equal(t, PipeChar, scr.Get(25, 1))
	assert.Equal(t, PipeCapTop, scr.Get(25, 12))
	assert.Equal(t, ' ', scr.Get(25, 20), "gap is open")
	assert.Equal(t, PipeCapBottom, scr.Get(25, 31))
	assert.Equal(t, PipeChar, scr.Get(33, 40))
	assert.Equal(t, ' ', scr.Get(34, 40))
	require.NotNil(t, scr.GetCell(30, 40).FG)
	assert.Equal(t, green, *scr.GetCell(30, 40).FG)
}

func TestDrawEmptyScreen(t *testing.T) {
	assert.NotPanics(t, func() {
		Draw(core.NewScreen(0, 0), sim.Snapshot{Width: 400, Height: 600})
	})
}

func TestBirdRunes(t *testing.T) {
	assert.Equal(t, '■', BirdRune(sim.ShapeSquare))
	assert.Equal(t, '●', BirdRune(sim.ShapeCircle))
	assert.Equal(t, '▲', BirdRune(sim.ShapeTriangle))
	assert.True(t, strings.ContainsRune("■●▲", BirdRune(sim.Shape(9))))
}
