// Package core provides fundamental types and utilities shared by the simulation
// and its frontends. It contains no external dependencies (especially no Bubble Tea
// or Ebiten) to keep game logic pure and testable.
package core

import "math"

// Rect is an integer, half-open rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Edges are exclusive: adjacent cells do not overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Box is an axis-aligned bounding box in world units (pixels).
// Boxes are closed: a box spans [X, X+W] x [Y, Y+H].
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a box with the given top-left corner and size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Empty reports whether the box has no area.
func (b Box) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

// Overlaps reports whether two boxes intersect. Touching edges count as an
// overlap. Boxes with zero width or height never overlap anything.
func (b Box) Overlaps(other Box) bool {
	if b.Empty() || other.Empty() {
		return false
	}
	if b.X > other.Right() || other.X > b.Right() {
		return false
	}
	if b.Y > other.Bottom() || other.Y > b.Bottom() {
		return false
	}
	return true
}

// Scale maps the box onto a cell grid, where sx and sy are cells per world unit.
// The result always covers at least one cell for a non-empty box.
func (b Box) Scale(sx, sy float64) Rect {
	x0 := int(math.Floor(b.X * sx))
	y0 := int(math.Floor(b.Y * sy))
	x1 := int(math.Ceil(b.Right() * sx))
	y1 := int(math.Ceil(b.Bottom() * sy))
	if !b.Empty() {
		x1 = Max(x1, x0+1)
		y1 = Max(y1, y0+1)
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
