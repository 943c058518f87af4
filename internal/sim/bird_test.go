package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestNewBirdStartsAtMidpoint(t *testing.T) {
	b := NewBird(classic())
	assert.Equal(t, 50.0, b.X)
	assert.Equal(t, 300.0, b.Y)
	assert.Zero(t, b.Velocity)
	assert.Equal(t, 20.0, b.Size)
}

func TestFallAppliesGravityThenPosition(t *testing.T) {
	b := Bird{X: 50, Y: 300, Size: 20}
	b = Fall(b, classic().Physics)

	assert.InDelta(t, 0.5, b.Velocity, 1e-9)
	assert.InDelta(t, 300.5, b.Y, 1e-9)
}

func TestFlapSetPolicy(t *testing.T) {
	p := classic().Physics
	b := Bird{Y: 300, Velocity: 4}

	b = Flap(b, p)
	b = Flap(b, p)
	assert.Equal(t, -10.0, b.Velocity, "set policy is not cumulative")

	b = Fall(b, p)
	assert.InDelta(t, -9.5, b.Velocity, 1e-9)
	assert.InDelta(t, 290.5, b.Y, 1e-9)
}

func TestFlapAccumulatePolicy(t *testing.T) {
	p := classic().Physics
	p.FlapPolicy = config.FlapAccumulate
	p.FlapImpulse = -8
	b := Bird{Y: 300, Velocity: 2}

	b = Flap(b, p)
	b = Flap(b, p)
	assert.Equal(t, -14.0, b.Velocity)

	b = Fall(b, p)
	assert.InDelta(t, -13.5, b.Velocity, 1e-9)
}

func TestFallVelocityGrowsByExactlyGravity(t *testing.T) {
	p := classic().Physics
	for _, v := range []float64{-12, -0.5, 0, 3.25, 40} {
		b := Fall(Bird{Y: 300, Velocity: v}, p)
		assert.InDelta(t, v+p.Gravity, b.Velocity, 1e-9, "start velocity %g", v)
	}
}

func TestCeilingClamp(t *testing.T) {
	p := classic().Physics
	p.Ceiling = config.CeilingClamp

	b := Fall(Bird{Y: 3, Velocity: -10}, p)
	assert.Zero(t, b.Y)
	assert.Zero(t, b.Velocity)

	p.Ceiling = config.CeilingGameOver
	b = Fall(Bird{Y: 3, Velocity: -10}, p)
	assert.Less(t, b.Y, 0.0)
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "square", ShapeSquare.String())
	assert.Equal(t, "circle", ShapeCircle.String())
	assert.Equal(t, "triangle", ShapeTriangle.String())
}
