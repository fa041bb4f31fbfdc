package galaxypatrol

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Level    int
	Score    int
	GameOver bool
	PlayerX  float64
	Aliens   []Alien
	Shots    []Shot
	Bombs    []Shot
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Level:    g.level,
		Score:    g.score,
		GameOver: g.gameOver,
		PlayerX:  g.playerX,
		Aliens:   append([]Alien(nil), g.aliens...),
		Shots:    append([]Shot(nil), g.shots...),
		Bombs:    append([]Shot(nil), g.bombs...),
	}
}

