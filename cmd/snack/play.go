package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snack/internal/config"
	"github.com/vovakirdan/snack/internal/core"
	"github.com/vovakirdan/snack/internal/game"
	"github.com/vovakirdan/snack/internal/platform/audio"
	"github.com/vovakirdan/snack/internal/platform/tui"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  Arrows/WASD  - Change direction
  P/Esc        - Pause
  R/Enter      - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  snack play
  snack play --difficulty easy
  snack play --config ./my-snack.yaml --mute`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

// loadGameConfig loads the YAML config and applies the difficulty preset.
func loadGameConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
			return cfg, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	sounds := audio.NewManager(cfg.Sound.Enabled && !flagMute)
	if soundErr := sounds.Init(); soundErr != nil {
		// No speaker is fine, the game just runs silent.
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", soundErr)
	}
	defer sounds.Close()

	if err := tui.Run(game.New(cfg.GameplayConfig()), sounds, runtime); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
