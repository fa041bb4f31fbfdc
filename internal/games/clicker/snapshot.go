package clicker

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Points   int
	Power    Upgrade
	Auto     Upgrade
	GameOver bool
	Won      bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Points:   g.points,
		Power:    g.power,
		Auto:     g.auto,
		GameOver: g.gameOver,
		Won:      g.won,
	}
}
