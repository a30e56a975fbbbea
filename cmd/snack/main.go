// snack is a terminal snake game.
//
// Usage:
//
//	snack                    - Play (same as 'snack play')
//	snack play               - Play in the current terminal
//	snack serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Frame rate of the render loop (default: 60)
//	--seed <value>        - RNG seed for reproducible food placement
//	--config <path>       - Path to a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snack",
	Short: "Snack - a snake game for your terminal",
	Long: `Snack is a terminal snake game: eat food, grow, and do not bite
yourself or the wall.

Available commands:
  play     - Play in the current terminal (default)
  serve    - Start SSH server for remote play

Examples:
  snack
  snack play --difficulty hard
  snack serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate of the render loop")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
