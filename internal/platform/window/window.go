// Package window runs the game in a desktop window using Ebitengine.
// The window is one pixel per world unit, so the preset's screen size is
// the window size.
package window

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// Game is what the window needs from a game: stepping and a world-space view.
type Game interface {
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Snapshot() sim.Snapshot
}

// Window adapts a Game to ebiten.Game.
type Window struct {
	game    Game
	logger  *log.Logger
	width   int
	height  int
	pressed func(ebiten.Key) bool
	art     *painter
}

// New creates a window for game and starts its first round.
func New(game Game, cfg core.RuntimeConfig, logger *log.Logger) *Window {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}
	game.Reset(cfg)

	s := game.Snapshot()
	return &Window{
		game:    game,
		logger:  logger,
		width:   int(s.Width),
		height:  int(s.Height),
		pressed: inpututil.IsKeyJustPressed,
		art:     newPainter(),
	}
}

// Update runs one simulation tick with the keys pressed since the last one.
func (w *Window) Update() error {
	in := pollInput(w.pressed)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	res := w.game.Step(in)
	if res.Ended {
		w.logger.Debug("round over",
			"score", res.State.Score,
			"best", res.State.Best,
			"cause", res.Cause,
		)
	}
	if res.Restarts {
		w.logger.Debug("round started", "best", res.State.Best)
	}
	return nil
}

// Draw paints the current round.
func (w *Window) Draw(screen *ebiten.Image) {
	w.art.draw(screen, w.game.Snapshot())
}

// Layout keeps the logical screen at the preset size; ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	w := New(game, cfg, logger)

	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(game.Title())
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Key bindings, in the order their actions are queued.
var bindings = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}, core.ActionQuit},
	{[]ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}, core.ActionJump},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart},
}

// pollInput builds the tick's input frame from newly pressed keys.
func pollInput(pressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.keys {
			if pressed(k) {
				in.Set(b.action)
				break
			}
		}
	}
	return in
}
