package gemmatch

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Board     Board
	CursorR   int
	CursorC   int
	Selected  bool
	MovesLeft int
	Score     int
	GameOver  bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Board:     g.board,
		CursorR:   g.cursorR,
		CursorC:   g.cursorC,
		Selected:  g.selected,
		MovesLeft: g.movesLeft,
		Score:     g.score,
		GameOver:  g.gameOver,
	}
}
