package endlessroad

import "github.com/vovakirdan/retrovault/internal/core"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     int
	PlayerX  float64
	Road     []Segment
	Traffic  []core.RectF
	Speed    float64
	Score    int
	GameOver bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tickCount,
		PlayerX:  g.playerX,
		Road:     append([]Segment(nil), g.road.Segments()...),
		Traffic:  append([]core.RectF(nil), g.traffic...),
		Speed:    g.speed,
		Score:    g.score,
		GameOver: g.gameOver,
	}
}
