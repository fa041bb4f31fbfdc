package minefield

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Board    Board
	CursorX  int
	CursorY  int
	Started  bool
	Opened   int
	Score    int
	GameOver bool
	Won      bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Board:    g.board,
		CursorX:  g.cursorX,
		CursorY:  g.cursorY,
		Started:  g.started,
		Opened:   g.board.OpenCount(),
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
	}
}
