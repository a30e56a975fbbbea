package game

// spawnFood places food on a uniformly random free cell. Enumerating the free
// cells bounds the placement: with no free cell left the board is full, food
// goes inactive, and the game is won.
func (g *Game) spawnFood() {
	free := g.freeCells()
	if len(free) == 0 {
		g.foodActive = false
		g.won = true
		return
	}
	g.food = free[g.rng.Intn(len(free))]
	g.foodActive = true
}

// freeCells returns every grid cell not occupied by the snake.
func (g *Game) freeCells() []Point {
	free := make([]Point, 0, g.cfg.GridW*g.cfg.GridH-g.snake.Len())
	for y := 0; y < g.cfg.GridH; y++ {
		for x := 0; x < g.cfg.GridW; x++ {
			p := Point{X: x, Y: y}
			if !g.snake.Contains(p) {
				free = append(free, p)
			}
		}
	}
	return free
}
