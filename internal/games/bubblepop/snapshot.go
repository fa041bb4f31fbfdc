package bubblepop

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Grid     Grid
	Aim      float64
	Current  int
	Next     int
	Shot     *Shot
	Score    int
	GameOver bool
	Won      bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	var shot *Shot
	if g.shot != nil {
		s := *g.shot
		shot = &s
	}
	return Snapshot{
		Tick:     g.tick,
		Grid:     g.grid,
		Aim:      g.aim,
		Current:  g.current,
		Next:     g.next,
		Shot:     shot,
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
	}
}
