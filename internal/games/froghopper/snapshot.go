package froghopper

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Level    int
	Lives    int
	Score    int
	GameOver bool
	FrogX    float64
	FrogRow  int
	Homes    [homeCount]Home
	Cars     []Mover
	Logs     []Mover
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Level:    g.level,
		Lives:    g.lives,
		Score:    g.score,
		GameOver: g.gameOver,
		FrogX:    g.frogX,
		FrogRow:  g.frogRow,
		Homes:    g.homes,
		Cars:     append([]Mover(nil), g.cars...),
		Logs:     append([]Mover(nil), g.logs...),
	}
}
