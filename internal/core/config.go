package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame rate the platform drives the loop at (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState communicates coarse game status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended by filling the board
	Paused   bool // Whether the game is paused
}

// Event signals something that happened during a simulation frame.
// The platform reacts to events (sound effects) without inspecting game internals.
type Event int

const (
	EventFoodEaten Event = iota + 1
	EventGameOver
	EventWin
)

// StepResult is returned by the game after each simulation frame.
type StepResult struct {
	State  GameState
	Events []Event
}
