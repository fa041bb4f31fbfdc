package core

// RuntimeConfig is handed to a game on every Reset.
// Games size their playfield from it and seed their RNG with Seed.
type RuntimeConfig struct {
	ScreenW  int   // Area available to the game, in cells
	ScreenH  int   // Area available to the game, in rows
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns the configuration used when nothing else is known.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  23,
		TickRate: 60,
		Seed:     0,
	}
}

// TickDuration returns how many milliseconds one tick represents.
func (c RuntimeConfig) TickDuration() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60.0
	}
	return 1000.0 / float64(c.TickRate)
}

// GameState is what a game reports to the shell after every tick.
type GameState struct {
	Score    int  // Current score, never negative once finalized by the shell
	GameOver bool // The run has ended
	Won      bool // The run ended with the player meeting the win condition
	Paused   bool // The simulation is frozen
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
