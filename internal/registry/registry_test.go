package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

type fakeGame struct {
	id, title, path string
}

func (g *fakeGame) ID() string                           { return g.id }
func (g *fakeGame) Title() string                        { return g.title }
func (g *fakeGame) Reset(core.RuntimeConfig)             {}
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen)                  {}
func (g *fakeGame) State() core.GameState                { return core.GameState{} }

func fakeFactory(id, title string) Factory {
	return func(path string) (Game, error) {
		return &fakeGame{id: id, title: title, path: path}, nil
	}
}

func TestRegisterListCreate(t *testing.T) {
	Register(GameInfo{ID: "zz-test-b", Title: "B"}, fakeFactory("zz-test-b", "B"))
	Register(GameInfo{ID: "zz-test-a", Title: "A"}, fakeFactory("zz-test-a", "A"))

	assert.True(t, Exists("zz-test-a"))
	assert.False(t, Exists("zz-test-missing"))

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	assert.Subset(t, ids, []string{"zz-test-a", "zz-test-b"})
	assert.IsIncreasing(t, ids)

	g, err := Create("zz-test-a", "custom.yaml")
	require.NoError(t, err)
	assert.Equal(t, "A", g.Title())
	assert.Equal(t, "custom.yaml", g.(*fakeGame).path)
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("zz-test-nope", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknown))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(GameInfo{ID: "zz-test-dup", Title: "Dup"}, fakeFactory("zz-test-dup", "Dup"))
	assert.Panics(t, func() {
		Register(GameInfo{ID: "zz-test-dup", Title: "Dup"}, fakeFactory("zz-test-dup", "Dup"))
	})
}

func TestCreatePropagatesFactoryError(t *testing.T) {
	boom := errors.New("bad yaml")
	Register(GameInfo{ID: "zz-test-broken", Title: "Broken"}, func(string) (Game, error) {
		return nil, boom
	})

	_, err := Create("zz-test-broken", "")
	assert.ErrorIs(t, err, boom)
}
