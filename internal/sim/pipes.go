package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Pipe is one obstacle pair. The top obstacle spans [0, GapStart) and the bottom
// one spans [GapStart+GapHeight, ground line).
type Pipe struct {
	X         float64 // left edge, decreasing over time
	GapStart  float64
	GapHeight float64
	Width     float64
	Passed    bool // set once the trailing edge is behind the bird
	Color     core.RGB
}

// NewPipe builds a pipe, rejecting geometry that would give either obstacle a
// negative height above groundY.
func NewPipe(x, gapStart, gapHeight, width, groundY float64, color core.RGB) (Pipe, error) {
	if width <= 0 || gapHeight <= 0 {
		return Pipe{}, fmt.Errorf("pipe: width %g and gap %g must be positive", width, gapHeight)
	}
	if gapStart < 0 || gapStart+gapHeight > groundY {
		return Pipe{}, fmt.Errorf("pipe: gap [%g, %g] outside [0, %g]", gapStart, gapStart+gapHeight, groundY)
	}
	return Pipe{X: x, GapStart: gapStart, GapHeight: gapHeight, Width: width, Color: color}, nil
}

// Right returns the pipe's trailing edge.
func (p Pipe) Right() float64 {
	return p.X + p.Width
}

// Top returns the collision box of the upper obstacle.
func (p Pipe) Top() core.Box {
	return core.NewBox(p.X, 0, p.Width, p.GapStart)
}

// Bottom returns the collision box of the lower obstacle.
func (p Pipe) Bottom(groundY float64) core.Box {
	y := p.GapStart + p.GapHeight
	return core.NewBox(p.X, y, p.Width, groundY-y)
}

// Advance moves every pipe left by speed.
func Advance(pipes []Pipe, speed float64) {
	for i := range pipes {
		pipes[i].X -= speed
	}
}

// Score marks pipes whose trailing edge is behind birdX as passed and returns
// how many were newly passed. A pipe is counted at most once.
func Score(pipes []Pipe, birdX float64) int {
	passed := 0
	for i := range pipes {
		if !pipes[i].Passed && pipes[i].Right() < birdX {
			pipes[i].Passed = true
			passed++
		}
	}
	return passed
}

// Prune removes pipes that have scrolled fully past the left edge, keeping the
// order of the rest. It reuses the backing array of pipes.
func Prune(pipes []Pipe) []Pipe {
	kept := pipes[:0]
	for _, p := range pipes {
		if p.Right() > 0 {
			kept = append(kept, p)
		}
	}
	return kept
}
