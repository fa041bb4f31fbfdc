package mazemuncher

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick        int
	Score       int
	Lives       int
	GameOver    bool
	Player      Point
	Ghosts      [4]Ghost
	PelletsLeft int
	Frightened  int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Score:       g.score,
		Lives:       g.lives,
		GameOver:    g.gameOver,
		Player:      g.player,
		Ghosts:      g.ghosts,
		PelletsLeft: g.left,
		Frightened:  g.frightened,
	}
}
