package fourinarow

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Board    Board
	Cursor   int
	CPUTurn  bool
	Outcome  Outcome
	Score    int
	GameOver bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Board:    g.board,
		Cursor:   g.cursor,
		CPUTurn:  g.cpuTurn,
		Outcome:  g.outcome,
		Score:    g.score,
		GameOver: g.gameOver,
	}
}
