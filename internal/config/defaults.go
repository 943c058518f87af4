package config

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultPreset is the preset used when none is requested.
const DefaultPreset = "classic"

// Presets returns the names of all embedded presets, sorted.
func Presets() []string {
	entries, err := defaultsFS.ReadDir("defaults")
	if err != nil {
		return []string{DefaultPreset}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// GetDefaultYAML returns the embedded YAML for a preset, or nil if unknown.
func GetDefaultYAML(preset string) []byte {
	data, err := defaultsFS.ReadFile(path.Join("defaults", preset+".yaml"))
	if err != nil {
		return nil
	}
	return data
}

// DefaultGameConfig returns the built-in classic configuration.
// It is the fallback when the embedded YAML cannot be decoded.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Title: "Flappy Bird",
		Screen: ScreenConfig{
			Width:      400,
			Height:     600,
			LandHeight: 50,
		},
		Physics: PhysicsConfig{
			Gravity:     0.5,
			FlapImpulse: -10,
			FlapPolicy:  FlapSet,
			Ceiling:     CeilingGameOver,
		},
		Bird: BirdConfig{
			X:    50,
			Size: 20,
		},
		Pipes: PipeConfig{
			Width:     70,
			Gap:       150,
			Speed:     3,
			MinTop:    50,
			MinBottom: 50,
		},
		Spawn: SpawnConfig{
			MinIntervalMS: 1500,
			MaxIntervalMS: 1500,
		},
		Palette: PaletteConfig{
			InitialBackground: &core.RGB{R: 135, G: 206, B: 250},
			Backgrounds:       []core.RGB{{R: 173, G: 216, B: 230}, {R: 240, G: 230, B: 140}, {R: 210, G: 180, B: 140}},
			Birds:             []core.RGB{{B: 139}, {G: 100}, {R: 139}},
			Lands:             []core.RGB{{R: 85, G: 65}, {R: 255, G: 255}},
			Pipes:             []core.RGB{{G: 100}, {R: 139, G: 69, B: 19}, {R: 105, G: 105, B: 105}},
		},
	}
}

func presetExists(preset string) bool {
	return GetDefaultYAML(preset) != nil
}

func unknownPreset(preset string) error {
	return fmt.Errorf("%w %q (available: %s)", ErrUnknownPreset, preset, strings.Join(Presets(), ", "))
}
