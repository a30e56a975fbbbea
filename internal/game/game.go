// Package game implements the Snack simulation: a snake moving on a discrete
// grid at a fixed tick interval, decoupled from the platform's frame rate.
// The package is pure logic with no terminal or audio dependencies.
package game

import (
	"math/rand"

	"github.com/vovakirdan/snack/internal/core"
)

// Phase is the coarse game state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Config holds the gameplay tuning constants.
type Config struct {
	GridW         int     // Play field width in cells
	GridH         int     // Play field height in cells
	MoveInterval  float64 // Seconds between simulation ticks
	FoodReward    int     // Score per food consumed
	InitialLength int     // Snake length at start/restart
}

// DefaultConfig returns the gameplay defaults.
func DefaultConfig() Config {
	return Config{
		GridW:         40,
		GridH:         18,
		MoveInterval:  0.15,
		FoodReward:    10,
		InitialLength: 3,
	}
}

// Game owns the complete simulation state. All mutation happens inside
// Advance; everything the platform needs to render comes out of Snapshot.
type Game struct {
	cfg     Config
	rng     *rand.Rand
	runtime core.RuntimeConfig

	snake      Snake
	dir        Direction // Direction actually travelled on the last tick
	pending    Direction // Buffered direction applied at the start of the next tick
	food       Point
	foodActive bool
	score      int
	phase      Phase
	won        bool
	acc        float64 // Elapsed seconds since the last applied tick

	// Screen placement
	hudHeight int
	offsetX   int
	offsetY   int
	tooSmall  bool
}

// New creates a game with the given gameplay config.
// Call Reset before the first Advance.
func New(cfg Config) *Game {
	return &Game{cfg: cfg}
}

// Reset initializes or restarts the game: snake centered facing right, score
// zero, fresh food, accumulator zero, phase Playing.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.runtime = rc

	g.score = 0
	g.won = false
	g.acc = 0
	g.dir = DirRight
	g.pending = DirRight
	g.phase = PhasePlaying

	g.hudHeight = 2
	g.layout(rc.ScreenW, rc.ScreenH)

	g.snake.Init(Point{X: g.cfg.GridW / 2, Y: g.cfg.GridH / 2}, g.cfg.InitialLength)
	g.spawnFood()
}

// layout centers the play field and checks that the screen can hold it.
func (g *Game) layout(screenW, screenH int) {
	requiredW := g.cfg.GridW + 2
	requiredH := g.cfg.GridH + g.hudHeight + 3
	if screenW < requiredW || screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.offsetX = (screenW - g.cfg.GridW) / 2
	g.offsetY = g.hudHeight + 1
}

// Advance runs one frame of the simulation: buffers directional input,
// accumulates dt against the move interval, and fires at most one tick.
// dt is the elapsed time since the previous frame in seconds.
func (g *Game) Advance(dt float64, in core.InputFrame) core.StepResult {
	var events []core.Event

	switch g.phase {
	case PhaseEnded:
		if in.Has(core.ActionRestart) {
			g.Reset(core.RuntimeConfig{
				Seed:     g.rng.Int63(),
				ScreenW:  g.runtime.ScreenW,
				ScreenH:  g.runtime.ScreenH,
				TickRate: g.runtime.TickRate,
			})
		}

	case PhasePaused:
		// Movement intent is still buffered while paused, just not applied.
		g.bufferDirection(in)
		if in.Has(core.ActionPause) {
			g.phase = PhasePlaying
		}

	case PhasePlaying:
		if g.tooSmall {
			break
		}
		if in.Has(core.ActionPause) {
			g.phase = PhasePaused
			break
		}
		g.bufferDirection(in)

		g.acc += dt
		if g.acc >= g.cfg.MoveInterval {
			// Excess time is dropped, not carried over: ticks never burst.
			g.acc = 0
			events = g.tick()
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// bufferDirection updates the pending direction from this frame's input.
// Signals are checked in fixed priority order; a signal validates only if it
// does not reverse the current travel direction.
func (g *Game) bufferDirection(in core.InputFrame) {
	checks := [4]struct {
		action core.Action
		dir    Direction
	}{
		{core.ActionRight, DirRight},
		{core.ActionLeft, DirLeft},
		{core.ActionUp, DirUp},
		{core.ActionDown, DirDown},
	}
	for _, c := range checks {
		if in.Has(c.action) && !g.dir.IsOpposite(c.dir) {
			g.pending = c.dir
		}
	}
}

// tick advances the snake one grid cell and resolves collisions and food.
func (g *Game) tick() []core.Event {
	g.dir = g.pending

	dx, dy := g.dir.Delta()
	newHead := g.snake.Head().Add(dx, dy)

	// Boundary and self collision checks run before any mutation, so the
	// pre-tick state remains visible as the final board.
	if newHead.X < 0 || newHead.X >= g.cfg.GridW || newHead.Y < 0 || newHead.Y >= g.cfg.GridH {
		g.phase = PhaseEnded
		return []core.Event{core.EventGameOver}
	}
	if g.snake.HitsBody(newHead) {
		g.phase = PhaseEnded
		return []core.Event{core.EventGameOver}
	}

	g.snake.PushHead(newHead)

	if g.foodActive && newHead == g.food {
		g.score += g.cfg.FoodReward
		g.spawnFood()
		if g.won {
			g.phase = PhaseEnded
			return []core.Event{core.EventFoodEaten, core.EventWin}
		}
		return []core.Event{core.EventFoodEaten}
	}

	g.snake.PopTail()
	return nil
}

// State returns the coarse game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseEnded,
		Won:      g.won,
		Paused:   g.phase == PhasePaused,
	}
}
