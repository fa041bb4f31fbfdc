package cuberunner

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     int
	PlayerX  float64
	Cubes    []Cube
	Score    int
	GameOver bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tickCount,
		PlayerX:  g.playerX,
		Cubes:    append([]Cube(nil), g.field.Cubes()...),
		Score:    g.Score(),
		GameOver: g.gameOver,
	}
}
