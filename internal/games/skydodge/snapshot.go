package skydodge

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick       int
	PlayerX    float64
	Blocks     []Block
	Multiplier float64
	Score      int
	GameOver   bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tickCount,
		PlayerX:    g.playerX,
		Blocks:     append([]Block(nil), g.spawner.Blocks()...),
		Multiplier: g.spawner.Multiplier(),
		Score:      g.score,
		GameOver:   g.gameOver,
	}
}
