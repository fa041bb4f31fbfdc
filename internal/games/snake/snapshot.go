package snake

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	Head     Point
	Dir      Direction
	Food     Point
	Interval float64
	GameOver bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Score:    len(g.snake) - 1,
		SnakeLen: len(g.snake),
		Head:     g.snake[0],
		Dir:      g.direction,
		Food:     g.food,
		Interval: g.interval,
		GameOver: g.gameOver,
	}
}
