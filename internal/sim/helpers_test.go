package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// stubSource returns a fixed choice for every draw.
type stubSource func(n int) int

func (s stubSource) Intn(n int) int { return s(n) }

var (
	lowest  = stubSource(func(int) int { return 0 })
	highest = stubSource(func(n int) int { return n - 1 })
)

func classic() config.GameConfig {
	return config.DefaultGameConfig()
}

func newEngine(t *testing.T, cfg config.GameConfig) *Engine {
	t.Helper()
	e, err := NewEngineWithSources(cfg, lowest, lowest)
	require.NoError(t, err)
	return e
}

func noInput() core.InputFrame {
	return core.NewInputFrame()
}

func flap() core.InputFrame {
	return core.NewInputFrame(core.ActionJump)
}
