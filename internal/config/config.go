// Package config provides YAML-based configuration loading and difficulty
// presets for the game.
package config

import (
	"fmt"

	"github.com/vovakirdan/snack/internal/game"
)

// Config contains all user-tunable settings.
type Config struct {
	Grid  GridConfig  `yaml:"grid"`
	Game  GameConfig  `yaml:"game"`
	Sound SoundConfig `yaml:"sound"`
}

// GridConfig defines the play field dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameConfig defines the simulation tuning constants.
type GameConfig struct {
	MoveInterval  float64 `yaml:"move_interval"`  // Seconds between ticks
	FoodReward    int     `yaml:"food_reward"`    // Score per food
	InitialLength int     `yaml:"initial_length"` // Snake length at start
}

// SoundConfig toggles the synthesized sound effects.
type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DifficultyPreset represents a named tick interval.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// MoveIntervalForPreset returns the tick interval for a difficulty preset.
func MoveIntervalForPreset(preset DifficultyPreset) (float64, bool) {
	switch preset {
	case DifficultyEasy:
		return 0.2, true
	case DifficultyNormal:
		return 0.15, true
	case DifficultyHard:
		return 0.1, true
	}
	return 0, false
}

// ApplyPreset overrides the move interval with a preset value.
// Unknown presets are reported as an error.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	interval, ok := MoveIntervalForPreset(preset)
	if !ok {
		return fmt.Errorf("config: unknown difficulty preset %q", preset)
	}
	cfg.Game.MoveInterval = interval
	return nil
}

// Validate checks the configuration for values the simulation cannot run with.
func (c Config) Validate() error {
	if c.Grid.Width < 5 || c.Grid.Height < 5 {
		return fmt.Errorf("config: grid %dx%d is too small, minimum is 5x5", c.Grid.Width, c.Grid.Height)
	}
	if c.Game.MoveInterval <= 0 {
		return fmt.Errorf("config: move_interval must be positive, got %f", c.Game.MoveInterval)
	}
	if c.Game.InitialLength < 1 {
		return fmt.Errorf("config: initial_length must be at least 1, got %d", c.Game.InitialLength)
	}
	if c.Game.InitialLength > c.Grid.Width/2 {
		return fmt.Errorf("config: initial_length %d does not fit a grid of width %d", c.Game.InitialLength, c.Grid.Width)
	}
	if c.Game.FoodReward < 0 {
		return fmt.Errorf("config: food_reward must not be negative, got %d", c.Game.FoodReward)
	}
	return nil
}

// GameplayConfig converts the loaded settings into the simulation's config.
func (c Config) GameplayConfig() game.Config {
	return game.Config{
		GridW:         c.Grid.Width,
		GridH:         c.Grid.Height,
		MoveInterval:  c.Game.MoveInterval,
		FoodReward:    c.Game.FoodReward,
		InitialLength: c.Game.InitialLength,
	}
}
