package froghopper

import "github.com/vovakirdan/retrovault/internal/core"

// Mover is a car or a log sliding along its lane.
type Mover struct {
	X     float64
	Row   int
	Width float64
	Speed float64 // pixels per tick; the sign is the direction
}

// Rect returns the mover's bounds.
func (m Mover) Rect() core.RectF {
	return core.RectF{X: m.X, Y: float64(m.Row) * Cell, W: m.Width, H: Cell}
}

// advance moves the mover and wraps it around once it fully leaves the field.
func (m *Mover) advance(scale float64) {
	m.X += m.Speed * scale
	switch {
	case m.Speed > 0 && m.X > WorldW:
		m.X = -m.Width
	case m.Speed < 0 && m.X < -m.Width:
		m.X = WorldW
	}
}

// Home is one of the bays along the top bank.
type Home struct {
	X      float64
	Filled bool
}

func (g *Game) buildLanes() {
	g.cars = g.cars[:0]
	for i := 0; i < laneCount; i++ {
		row := startRow - 1 - i
		speed := g.rng.Float64()*2 + 1
		if i%2 != 0 {
			speed = -speed
		}
		for j := 0; j < 3; j++ {
			w := Cell
			x := float64(j)*250 + g.rng.Float64()*100
			if g.rng.Float64() > 0.5 {
				w = 2 * Cell
			}
			g.cars = append(g.cars, Mover{X: x, Row: row, Width: w, Speed: speed})
		}
	}

	g.logs = g.logs[:0]
	for i := 0; i < laneCount; i++ {
		row := firstRiverRow + i
		speed := g.rng.Float64()*1.5 + 0.5
		if i%2 != 0 {
			speed = -speed
		}
		for j := 0; j < 3; j++ {
			x := float64(j)*300 + g.rng.Float64()*150
			w := Cell * float64(g.rng.Intn(2)+2)
			g.logs = append(g.logs, Mover{X: x, Row: row, Width: w, Speed: speed})
		}
	}

	for i := range g.homes {
		g.homes[i] = Home{X: float64(i)*Cell*2.4 + Cell}
	}
}

func isRiver(row int) bool {
	return row >= firstRiverRow && row < firstRiverRow+laneCount
}
