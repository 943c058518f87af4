package sim

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Shape is the bird's drawn shape. It never affects collision.
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeCircle
	ShapeTriangle
	shapeCount
)

// String returns the shape's name.
func (s Shape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapeCircle:
		return "circle"
	case ShapeTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Bird is the player. X is fixed for the whole round; Y is the top of its box.
type Bird struct {
	X, Y     float64
	Velocity float64
	Size     float64
	Shape    Shape
	Color    core.RGB
}

// NewBird places a bird at rest on the vertical midpoint of the screen.
// Cosmetics are left at their zero values; see Cosmetics.Dress.
func NewBird(cfg config.GameConfig) Bird {
	return Bird{
		X:    cfg.Bird.X,
		Y:    float64(cfg.Screen.Height) / 2,
		Size: cfg.Bird.Size,
	}
}

// Box returns the bird's top-left anchored bounding box.
func (b Bird) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.Size, b.Size)
}

// Flap applies one upward impulse according to the flap policy.
func Flap(b Bird, p config.PhysicsConfig) Bird {
	if p.FlapPolicy == config.FlapAccumulate {
		b.Velocity += p.FlapImpulse
	} else {
		b.Velocity = p.FlapImpulse
	}
	return b
}

// Fall advances the bird by one frame: gravity, then position.
// With the clamp ceiling policy the bird is pinned to y=0 instead of leaving the screen.
func Fall(b Bird, p config.PhysicsConfig) Bird {
	b.Velocity += p.Gravity
	b.Y += b.Velocity
	if p.Ceiling == config.CeilingClamp && b.Y < 0 {
		b.Y = 0
		b.Velocity = 0
	}
	return b
}
