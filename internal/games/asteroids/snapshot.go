package asteroids

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Score    int
	GameOver bool
	Won      bool
	Ship     Ship
	Bullets  []Bullet
	Rocks    []Rock
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Ship:     g.ship,
		Bullets:  append([]Bullet(nil), g.bullets...),
		Rocks:    append([]Rock(nil), g.rocks...),
	}
}
