package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default should parse, got %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default %+v differs from hardcoded %+v", cfg, Default())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"tiny grid", func(c *Config) { c.Grid.Width = 2 }, true},
		{"zero interval", func(c *Config) { c.Game.MoveInterval = 0 }, true},
		{"negative interval", func(c *Config) { c.Game.MoveInterval = -0.1 }, true},
		{"zero length", func(c *Config) { c.Game.InitialLength = 0 }, true},
		{"length exceeds grid", func(c *Config) { c.Game.InitialLength = 30 }, true},
		{"negative reward", func(c *Config) { c.Game.FoodReward = -1 }, true},
		{"zero reward", func(c *Config) { c.Game.FoodReward = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		interval float64
	}{
		{DifficultyEasy, 0.2},
		{DifficultyNormal, 0.15},
		{DifficultyHard, 0.1},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			if err := ApplyPreset(&cfg, tc.preset); err != nil {
				t.Fatalf("ApplyPreset(%q) error: %v", tc.preset, err)
			}
			if cfg.Game.MoveInterval != tc.interval {
				t.Errorf("move_interval = %f, expected %f", cfg.Game.MoveInterval, tc.interval)
			}
		})
	}

	cfg := Default()
	if err := ApplyPreset(&cfg, "nightmare"); err == nil {
		t.Error("unknown preset should be an error")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := []byte("grid:\n  width: 30\n  height: 15\ngame:\n  move_interval: 0.1\n  food_reward: 5\n  initial_length: 4\nsound:\n  enabled: false\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}
	if cfg.Grid.Width != 30 || cfg.Grid.Height != 15 {
		t.Errorf("grid = %+v, expected 30x15", cfg.Grid)
	}
	if cfg.Game.MoveInterval != 0.1 || cfg.Game.FoodReward != 5 || cfg.Game.InitialLength != 4 {
		t.Errorf("game = %+v, expected 0.1/5/4", cfg.Game)
	}
	if cfg.Sound.Enabled {
		t.Error("sound should be disabled by the custom config")
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("a custom path that does not exist should be an error")
	}
}

func TestGameplayConfig(t *testing.T) {
	cfg := Default()
	gc := cfg.GameplayConfig()
	if gc.GridW != cfg.Grid.Width || gc.GridH != cfg.Grid.Height {
		t.Errorf("grid mismatch: %+v vs %+v", gc, cfg.Grid)
	}
	if gc.MoveInterval != cfg.Game.MoveInterval || gc.FoodReward != cfg.Game.FoodReward || gc.InitialLength != cfg.Game.InitialLength {
		t.Errorf("gameplay mismatch: %+v vs %+v", gc, cfg.Game)
	}
}
