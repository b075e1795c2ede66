// Package config loads the game configuration from YAML files with an
// embedded default, mirroring the usual search order: explicit path, user
// config directory, local configs directory, embedded fallback.
package config

// GameConfig is the full configuration for a game of twenty48.
type GameConfig struct {
	Rules     RulesConfig     `yaml:"rules"`
	Animation AnimationConfig `yaml:"animation"`
}

// RulesConfig tunes the board rules.
type RulesConfig struct {
	Target    int     `yaml:"target"`     // winning tile value
	SpawnFour float64 `yaml:"spawn_four"` // probability a spawned tile is a 4
}

// AnimationConfig tunes the slide/pop animations.
type AnimationConfig struct {
	Enabled    bool `yaml:"enabled"`
	SlideTicks int  `yaml:"slide_ticks"` // duration of the slide phase
	PopTicks   int  `yaml:"pop_ticks"`   // duration of the new-tile pop
}

// DifficultyPreset selects a named rules variation.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	default:
		return DifficultyNormal, false
	}
}

// ApplyPreset adjusts the spawn-four probability for the preset.
// More fours arrive sooner on harder settings.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.SpawnFour = 0.05
	case DifficultyNormal:
		cfg.Rules.SpawnFour = 0.10
	case DifficultyHard:
		cfg.Rules.SpawnFour = 0.20
	}
}
