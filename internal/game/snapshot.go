package game

// Snapshot is the read-only view of the simulation state exposed to the
// platform once per frame. It is sufficient to render the board and is also
// what the tests assert against.
type Snapshot struct {
	Phase      Phase
	Snake      []Point // Head first
	Dir        Direction
	Pending    Direction
	Food       Point
	FoodActive bool
	Score      int
	Won        bool
}

// Snapshot returns a copy of the current simulation state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:      g.phase,
		Snake:      g.snake.Positions(),
		Dir:        g.dir,
		Pending:    g.pending,
		Food:       g.food,
		FoodActive: g.foodActive,
		Score:      g.score,
		Won:        g.won,
	}
}
