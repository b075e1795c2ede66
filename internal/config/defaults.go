package config

import (
	_ "embed"
)

//go:embed defaults/twenty48.yaml
var defaultYAML []byte

// Default returns the built-in configuration, used when no YAML can be
// parsed at all.
func Default() GameConfig {
	return GameConfig{
		Rules: RulesConfig{
			Target:    2048,
			SpawnFour: 0.10,
		},
		Animation: AnimationConfig{
			Enabled:    true,
			SlideTicks: 8,
			PopTicks:   6,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `config show`-style
// tooling.
func DefaultYAML() []byte {
	return defaultYAML
}
