package breakout

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick            uint64
	State           string
	Score           int
	PaddleX         float64
	BallX, BallY    float64
	BallVX, BallVY  float64
	BricksRemaining int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:            g.tick,
		State:           g.state,
		Score:           g.score,
		PaddleX:         g.paddle.X,
		BallX:           g.ball.X,
		BallY:           g.ball.Y,
		BallVX:          g.ball.VX,
		BallVY:          g.ball.VY,
		BricksRemaining: g.BricksRemaining(),
	}
}
