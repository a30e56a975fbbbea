package config

import (
	_ "embed"
)

//go:embed defaults/snack.yaml
var defaultYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  40,
			Height: 18,
		},
		Game: GameConfig{
			MoveInterval:  0.15,
			FoodReward:    10,
			InitialLength: 3,
		},
		Sound: SoundConfig{
			Enabled: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
