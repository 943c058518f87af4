package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads and validates the configuration for a preset.
// Search order: customPath -> ~/.arcade/configs/flappy-<preset>.yaml ->
// ./configs/flappy-<preset>.yaml -> embedded preset.
// Files found on the search path are decoded on top of the embedded preset, so
// they only need to name the fields they change.
func Load(preset, customPath string) (GameConfig, error) {
	if preset == "" {
		preset = DefaultPreset
	}
	cfg, err := Preset(preset)
	if err != nil {
		return cfg, err
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, validateAt(cfg, customPath)
	}

	filename := "flappy-" + preset + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if overlay, ok := overlayFile(cfg, userCfgPath); ok {
			return overlay, validateAt(overlay, userCfgPath)
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", filename)
	if overlay, ok := overlayFile(cfg, localPath); ok {
		return overlay, validateAt(overlay, localPath)
	}

	return cfg, validateAt(cfg, "preset "+preset)
}

// Preset returns the embedded configuration for a preset without validation.
func Preset(preset string) (GameConfig, error) {
	if !presetExists(preset) {
		return GameConfig{}, unknownPreset(preset)
	}
	var cfg GameConfig
	if err := yaml.Unmarshal(GetDefaultYAML(preset), &cfg); err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Encode renders a configuration as YAML.
func Encode(cfg GameConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// overlayFile decodes path on top of base. Unreadable or malformed files are skipped.
func overlayFile(base GameConfig, path string) (GameConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

func validateAt(cfg GameConfig, source string) error {
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("invalid config %s: %w", source, err)
	}
	return nil
}
