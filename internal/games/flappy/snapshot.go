package flappy

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      int
	Score     int
	GameOver  bool
	PlayerY   float64
	PlayerVel float64
	Pipes     []Pipe
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tickCount,
		Score:     g.score,
		GameOver:  g.gameOver,
		PlayerY:   g.playerY,
		PlayerVel: g.playerVel,
		Pipes:     append([]Pipe(nil), g.pipes.Pipes()...),
	}
}
