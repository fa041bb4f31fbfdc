package stacktower

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     int
	Tower    []Block
	SliderX  float64
	SliderW  float64
	Speed    float64
	Score    int
	GameOver bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tickCount,
		Tower:    append([]Block(nil), g.tower...),
		SliderX:  g.sliderX,
		SliderW:  g.sliderW,
		Speed:    g.speed,
		Score:    g.score,
		GameOver: g.gameOver,
	}
}
