// Package config provides YAML-based game configuration loading, the embedded
// presets, and startup validation for the game.
package config

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// GameConfig contains all configuration for one preset of the game.
// Units are world pixels and simulation frames.
type GameConfig struct {
	Title   string        `yaml:"title"`
	Screen  ScreenConfig  `yaml:"screen"`
	Physics PhysicsConfig `yaml:"physics"`
	Bird    BirdConfig    `yaml:"bird"`
	Pipes   PipeConfig    `yaml:"pipes"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Palette PaletteConfig `yaml:"palette"`
}

// ScreenConfig defines the world size. The ground line sits LandHeight above the bottom.
type ScreenConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	LandHeight int `yaml:"land_height"`
}

// FlapPolicy selects how a flap changes the bird's velocity.
type FlapPolicy string

const (
	// FlapSet replaces the velocity with the impulse.
	FlapSet FlapPolicy = "set"
	// FlapAccumulate adds the impulse to the current velocity.
	FlapAccumulate FlapPolicy = "accumulate"
)

// CeilingPolicy selects what happens when the bird leaves the top of the screen.
type CeilingPolicy string

const (
	// CeilingGameOver ends the round when the bird crosses y=0.
	CeilingGameOver CeilingPolicy = "game_over"
	// CeilingClamp pins the bird to y=0 and zeroes its velocity.
	CeilingClamp CeilingPolicy = "clamp"
)

// PhysicsConfig defines per-frame bird physics.
type PhysicsConfig struct {
	Gravity     float64       `yaml:"gravity"`
	FlapImpulse float64       `yaml:"flap_impulse"` // negative = up
	FlapPolicy  FlapPolicy    `yaml:"flap_policy"`
	Ceiling     CeilingPolicy `yaml:"ceiling"`
}

// BirdConfig defines the bird's fixed column and bounding box size.
type BirdConfig struct {
	X    float64 `yaml:"x"`
	Size float64 `yaml:"size"`
}

// PipeConfig defines pipe geometry and scroll speed.
type PipeConfig struct {
	Width     float64 `yaml:"width"`
	Gap       int     `yaml:"gap"`
	Speed     float64 `yaml:"speed"`      // pixels per frame
	MinTop    int     `yaml:"min_top"`    // minimum height of the top obstacle
	MinBottom int     `yaml:"min_bottom"` // minimum height of the bottom obstacle
}

// SpawnConfig defines the pipe spawn cadence in milliseconds.
// Equal bounds give a fixed interval.
type SpawnConfig struct {
	MinIntervalMS int64 `yaml:"min_interval_ms"`
	MaxIntervalMS int64 `yaml:"max_interval_ms"`
}

// PaletteConfig lists the colours cosmetics are drawn from.
type PaletteConfig struct {
	InitialBackground *core.RGB  `yaml:"initial_background,omitempty"`
	Backgrounds       []core.RGB `yaml:"backgrounds"`
	Birds             []core.RGB `yaml:"birds"`
	Lands             []core.RGB `yaml:"lands"`
	Pipes             []core.RGB `yaml:"pipes"`
}

// GroundY returns the y coordinate of the ground line.
func (c GameConfig) GroundY() float64 {
	return float64(c.Screen.Height - c.Screen.LandHeight)
}

// GapRange returns the inclusive range a pipe's gap start is drawn from.
func (c GameConfig) GapRange() (lo, hi int) {
	lo = c.Pipes.MinTop
	hi = c.Screen.Height - c.Screen.LandHeight - c.Pipes.MinBottom - c.Pipes.Gap
	return lo, hi
}

// Clone returns a deep copy of the configuration.
func (c GameConfig) Clone() GameConfig {
	out := c
	if c.Palette.InitialBackground != nil {
		bg := *c.Palette.InitialBackground
		out.Palette.InitialBackground = &bg
	}
	out.Palette.Backgrounds = append([]core.RGB(nil), c.Palette.Backgrounds...)
	out.Palette.Birds = append([]core.RGB(nil), c.Palette.Birds...)
	out.Palette.Lands = append([]core.RGB(nil), c.Palette.Lands...)
	out.Palette.Pipes = append([]core.RGB(nil), c.Palette.Pipes...)
	return out
}
