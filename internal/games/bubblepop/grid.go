package bubblepop

import "math"

const (
	Radius = 15.0
	Cols   = 18
	Rows   = 14
	// DangerRow is the first row a settled bubble may not occupy.
	DangerRow = 12
	Colors    = 5

	Empty = -1
)

var rowPitch = Radius * 2 * math.Sqrt(3) / 2

// Cell addresses one slot of the hex grid. Odd rows are shifted right by
// one radius and hold one bubble fewer.
type Cell struct {
	Row, Col int
}

// Grid holds bubble colors, Empty for free slots.
type Grid [Rows][Cols]int

// NewGrid returns a grid with every slot empty.
func NewGrid() Grid {
	var g Grid
	for r := range g {
		for c := range g[r] {
			g[r][c] = Empty
		}
	}
	return g
}

// RowLen returns the number of slots in row r.
func RowLen(r int) int { return Cols - r%2 }

// Valid reports whether c addresses a slot.
func Valid(c Cell) bool {
	return c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < RowLen(c.Row)
}

// Center returns the world position of a slot's center.
func Center(c Cell) (float64, float64) {
	x := float64(c.Col)*Radius*2 + Radius + float64(c.Row%2)*Radius
	y := float64(c.Row)*rowPitch + Radius
	return x, y
}

// Neighbors returns the up to six slots touching c.
func Neighbors(c Cell) []Cell {
	r, col := c.Row, c.Col
	var cand [6]Cell
	if r%2 == 0 {
		cand = [6]Cell{{r, col - 1}, {r, col + 1}, {r - 1, col - 1}, {r - 1, col}, {r + 1, col - 1}, {r + 1, col}}
	} else {
		cand = [6]Cell{{r, col - 1}, {r, col + 1}, {r - 1, col}, {r - 1, col + 1}, {r + 1, col}, {r + 1, col + 1}}
	}
	out := make([]Cell, 0, 6)
	for _, n := range cand {
		if Valid(n) {
			out = append(out, n)
		}
	}
	return out
}

// At returns the color at c.
func (g *Grid) At(c Cell) int { return g[c.Row][c.Col] }

// Set stores color at c.
func (g *Grid) Set(c Cell, color int) { g[c.Row][c.Col] = color }

// Count returns the number of bubbles on the grid.
func (g *Grid) Count() int {
	n := 0
	g.each(func(Cell) { n++ })
	return n
}

func (g *Grid) each(fn func(Cell)) {
	for r := 0; r < Rows; r++ {
		for c := 0; c < RowLen(r); c++ {
			if g[r][c] != Empty {
				fn(Cell{r, c})
			}
		}
	}
}

// Touching reports whether a bubble centered at x,y overlaps any settled
// bubble.
func (g *Grid) Touching(x, y float64) bool {
	hit := false
	g.each(func(c Cell) {
		cx, cy := Center(c)
		if math.Hypot(x-cx, y-cy) < Radius*2 {
			hit = true
		}
	})
	return hit
}

// Snap returns the free slot nearest to x,y.
func (g *Grid) Snap(x, y float64) (Cell, bool) {
	best, found := Cell{}, false
	bestD := math.Inf(1)
	for r := 0; r < Rows; r++ {
		for c := 0; c < RowLen(r); c++ {
			if g[r][c] != Empty {
				continue
			}
			cx, cy := Center(Cell{r, c})
			if d := math.Hypot(x-cx, y-cy); d < bestD {
				best, bestD, found = Cell{r, c}, d, true
			}
		}
	}
	return best, found
}

// Cluster returns the same-colored group connected to start.
func (g *Grid) Cluster(start Cell) []Cell {
	color := g.At(start)
	if color == Empty {
		return nil
	}
	seen := map[Cell]bool{start: true}
	queue := []Cell{start}
	for i := 0; i < len(queue); i++ {
		for _, n := range Neighbors(queue[i]) {
			if !seen[n] && g.At(n) == color {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return queue
}

// Floating returns bubbles with no path to the top row.
func (g *Grid) Floating() []Cell {
	anchored := map[Cell]bool{}
	var queue []Cell
	for c := 0; c < RowLen(0); c++ {
		if g[0][c] != Empty {
			cell := Cell{0, c}
			anchored[cell] = true
			queue = append(queue, cell)
		}
	}
	for i := 0; i < len(queue); i++ {
		for _, n := range Neighbors(queue[i]) {
			if !anchored[n] && g.At(n) != Empty {
				anchored[n] = true
				queue = append(queue, n)
			}
		}
	}
	var out []Cell
	g.each(func(c Cell) {
		if !anchored[c] {
			out = append(out, c)
		}
	})
	return out
}

// LowestRow returns the deepest occupied row, or -1 for an empty grid.
func (g *Grid) LowestRow() int {
	low := -1
	g.each(func(c Cell) { low = max(low, c.Row) })
	return low
}

// ColorsLeft returns the distinct colors still on the grid.
func (g *Grid) ColorsLeft() []int {
	var present [Colors]bool
	g.each(func(c Cell) { present[g.At(c)] = true })
	var out []int
	for i, ok := range present {
		if ok {
			out = append(out, i)
		}
	}
	return out
}
