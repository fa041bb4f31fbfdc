package geodash

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick       int
	Score      int
	GameOver   bool
	PlayerY    float64
	IsGrounded bool
	Spikes     []Spike
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tickCount,
		Score:      g.score,
		GameOver:   g.gameOver,
		PlayerY:    g.playerY,
		IsGrounded: g.isGrounded,
		Spikes:     append([]Spike(nil), g.obstacles.Spikes()...),
	}
}
