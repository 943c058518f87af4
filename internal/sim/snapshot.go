package sim

import "github.com/vovakirdan/tui-flappy/internal/core"

// PipeView is a pipe as renderers see it.
type PipeView struct {
	Top    core.Box
	Bottom core.Box
	Color  core.RGB
}

// Snapshot is a read-only view of a round in world coordinates.
type Snapshot struct {
	Width, Height float64
	Bird          Bird
	BirdBox       core.Box
	Pipes         []PipeView
	Ground        core.Box
	Scenery       Scenery
	Score         int
	Best          int
	Over          bool
	Round         int
}

// Snapshot captures what a renderer needs to draw r.
func (e *Engine) Snapshot(r Round) Snapshot {
	groundY := e.GroundY()
	w := float64(e.cfg.Screen.Width)
	h := float64(e.cfg.Screen.Height)

	pipes := make([]PipeView, len(r.Pipes))
	for i, p := range r.Pipes {
		pipes[i] = PipeView{Top: p.Top(), Bottom: p.Bottom(groundY), Color: p.Color}
	}

	return Snapshot{
		Width:   w,
		Height:  h,
		Bird:    r.Bird,
		BirdBox: r.Bird.Box(),
		Pipes:   pipes,
		Ground:  core.NewBox(0, groundY, w, h-groundY),
		Scenery: r.Scenery,
		Score:   r.Score,
		Best:    r.Best,
		Over:    r.Over(),
		Round:   r.Number,
	}
}
