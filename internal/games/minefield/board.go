package minefield

import "math/rand"

const (
	Size  = 12
	Mines = 20
)

// Cell is one square of the field.
type Cell struct {
	Mine      bool
	Open      bool
	Flagged   bool
	Neighbors int
}

// Board is the field, indexed [row][column].
type Board [Size][Size]Cell

func inBounds(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// PlaceMines scatters Mines mines, never on (safeX, safeY), and computes the
// neighbor counts.
func (b *Board) PlaceMines(rng *rand.Rand, safeX, safeY int) {
	for placed := 0; placed < Mines; {
		x, y := rng.Intn(Size), rng.Intn(Size)
		if b[y][x].Mine || (x == safeX && y == safeY) {
			continue
		}
		b[y][x].Mine = true
		placed++
	}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			b[y][x].Neighbors = b.countAround(x, y)
		}
	}
}

func (b *Board) countAround(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && inBounds(x+dx, y+dy) && b[y+dy][x+dx].Mine {
				n++
			}
		}
	}
	return n
}

// Reveal opens a cell. Opening a zero spreads to every neighbor until the
// flood reaches numbered cells. Flagged and already open cells are skipped.
// It reports whether a mine was opened.
func (b *Board) Reveal(x, y int) bool {
	if !inBounds(x, y) || b[y][x].Open || b[y][x].Flagged {
		return false
	}
	if b[y][x].Mine {
		b[y][x].Open = true
		return true
	}

	stack := [][2]int{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		c := &b[p[1]][p[0]]
		if c.Open || c.Flagged || c.Mine {
			continue
		}
		c.Open = true
		if c.Neighbors != 0 {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := p[0]+dx, p[1]+dy
				if (dx != 0 || dy != 0) && inBounds(nx, ny) && !b[ny][nx].Open {
					stack = append(stack, [2]int{nx, ny})
				}
			}
		}
	}
	return false
}

// ToggleFlag flags or unflags a closed cell.
func (b *Board) ToggleFlag(x, y int) {
	if inBounds(x, y) && !b[y][x].Open {
		b[y][x].Flagged = !b[y][x].Flagged
	}
}

// Cleared reports whether every non-mine cell is open.
func (b *Board) Cleared() bool {
	return b.OpenCount() == Size*Size-Mines
}

// OpenCount returns the number of open non-mine cells.
func (b *Board) OpenCount() int {
	n := 0
	for y := range b {
		for x := range b[y] {
			if b[y][x].Open && !b[y][x].Mine {
				n++
			}
		}
	}
	return n
}

// Flags returns the number of flagged cells.
func (b *Board) Flags() int {
	n := 0
	for y := range b {
		for x := range b[y] {
			if b[y][x].Flagged {
				n++
			}
		}
	}
	return n
}
