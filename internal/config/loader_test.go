package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// With no custom path and no user/local file the embedded default wins.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Rules.Target != 2048 {
		t.Errorf("default target = %d, want 2048", cfg.Rules.Target)
	}
	if cfg.Rules.SpawnFour != 0.10 {
		t.Errorf("default spawn_four = %v, want 0.10", cfg.Rules.SpawnFour)
	}
	if !cfg.Animation.Enabled {
		t.Error("animations should be enabled by default")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("rules:\n  target: 512\n  spawn_four: 0.25\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Rules.Target != 512 {
		t.Errorf("target = %d, want 512", cfg.Rules.Target)
	}
	if cfg.Rules.SpawnFour != 0.25 {
		t.Errorf("spawn_four = %v, want 0.25", cfg.Rules.SpawnFour)
	}
	// Unset sections fall back to defaults.
	if cfg.Animation.SlideTicks != 8 {
		t.Errorf("slide_ticks = %d, want default 8", cfg.Animation.SlideTicks)
	}
}

func TestLoadSparseFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sparse.yaml")
	// No animation section at all: its fields must keep the defaults,
	// including the bool that a zero-value unmarshal would turn off.
	data := []byte("rules:\n  target: 1024\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Rules.Target != 1024 {
		t.Errorf("target = %d, want 1024", cfg.Rules.Target)
	}
	if !cfg.Animation.Enabled {
		t.Error("omitting the animation section should not disable animation")
	}
	if cfg.Animation.SlideTicks != 8 || cfg.Animation.PopTicks != 6 {
		t.Errorf("animation ticks = %d/%d, want defaults 8/6",
			cfg.Animation.SlideTicks, cfg.Animation.PopTicks)
	}
	if cfg.Rules.SpawnFour != 0.10 {
		t.Errorf("spawn_four = %v, want default 0.10", cfg.Rules.SpawnFour)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load("/nonexistent/twenty48.yaml"); err == nil {
		t.Error("an explicit missing path should be an error")
	}
}

func TestDefaultYAMLMatchesDefaults(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("shipped YAML = %+v, want %+v", cfg, Default())
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		spawn4 float64
	}{
		{DifficultyEasy, 0.05},
		{DifficultyNormal, 0.10},
		{DifficultyHard, 0.20},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Rules.SpawnFour != tt.spawn4 {
				t.Errorf("spawn_four = %v, want %v", cfg.Rules.SpawnFour, tt.spawn4)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("empty preset = %v, %v", p, ok)
	}
	if _, ok := ParsePreset("hard"); !ok {
		t.Error("hard should parse")
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should fail")
	}
}
