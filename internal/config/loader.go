package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.twenty48/configs/twenty48.yaml ->
// ./configs/twenty48.yaml -> embedded default.
func Load(customPath string) (GameConfig, error) {
	// Try custom path first; a broken explicit path is an error.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("twenty48.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/twenty48.yaml"); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse unmarshals YAML over the hardcoded defaults, so fields a sparse
// user file omits keep their default values rather than going to zero.
func parse(data []byte) (GameConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	return normalize(cfg), nil
}

// normalize clamps invalid values back to the defaults.
func normalize(cfg GameConfig) GameConfig {
	def := Default()
	if cfg.Rules.Target <= 0 {
		cfg.Rules.Target = def.Rules.Target
	}
	if cfg.Rules.SpawnFour <= 0 || cfg.Rules.SpawnFour > 1 {
		cfg.Rules.SpawnFour = def.Rules.SpawnFour
	}
	if cfg.Animation.SlideTicks <= 0 {
		cfg.Animation.SlideTicks = def.Animation.SlideTicks
	}
	if cfg.Animation.PopTicks <= 0 {
		cfg.Animation.PopTicks = def.Animation.PopTicks
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".twenty48", "configs", filename)
}
