package wordguess

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Word     string
	Guessed  string
	Wrong    int
	Score    int
	GameOver bool
	Won      bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Word:     g.word,
		Guessed:  string(g.guessed),
		Wrong:    g.wrong,
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
	}
}
