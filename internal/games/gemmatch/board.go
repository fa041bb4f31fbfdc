package gemmatch

import "math/rand"

const (
	Size   = 8
	Colors = 6
	// None marks a cleared slot during a cascade.
	None = -1
)

// Board holds gem colors indexed [row][col].
type Board [Size][Size]int

// NewBoard fills a board so that no three in a row exist at the start.
func NewBoard(rng *rand.Rand) Board {
	var b Board
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			for {
				col := rng.Intn(Colors)
				if c >= 2 && b[r][c-1] == col && b[r][c-2] == col {
					continue
				}
				if r >= 2 && b[r-1][c] == col && b[r-2][c] == col {
					continue
				}
				b[r][c] = col
				break
			}
		}
	}
	return b
}

// Matches marks every gem that is part of a horizontal or vertical run of
// three or more, and returns how many were marked.
func (b *Board) Matches() ([Size][Size]bool, int) {
	var m [Size][Size]bool
	n := 0
	mark := func(r, c int) {
		if !m[r][c] {
			m[r][c] = true
			n++
		}
	}
	for r := 0; r < Size; r++ {
		for c := 0; c+2 < Size; c++ {
			v := b[r][c]
			if v != None && b[r][c+1] == v && b[r][c+2] == v {
				mark(r, c)
				mark(r, c+1)
				mark(r, c+2)
			}
		}
	}
	for c := 0; c < Size; c++ {
		for r := 0; r+2 < Size; r++ {
			v := b[r][c]
			if v != None && b[r+1][c] == v && b[r+2][c] == v {
				mark(r, c)
				mark(r+1, c)
				mark(r+2, c)
			}
		}
	}
	return m, n
}

// Collapse drops gems into the gaps below them and fills the top with new
// random gems.
func (b *Board) Collapse(rng *rand.Rand) {
	for c := 0; c < Size; c++ {
		dst := Size - 1
		for r := Size - 1; r >= 0; r-- {
			if b[r][c] != None {
				b[dst][c] = b[r][c]
				dst--
			}
		}
		for ; dst >= 0; dst-- {
			b[dst][c] = rng.Intn(Colors)
		}
	}
}

// Resolve clears matches, collapses and repeats until the board is stable.
// It returns the number of gems cleared over all cascades.
func (b *Board) Resolve(rng *rand.Rand) int {
	total := 0
	for {
		m, n := b.Matches()
		if n == 0 {
			return total
		}
		total += n
		for r := 0; r < Size; r++ {
			for c := 0; c < Size; c++ {
				if m[r][c] {
					b[r][c] = None
				}
			}
		}
		b.Collapse(rng)
	}
}

// Swap exchanges two gems.
func (b *Board) Swap(r1, c1, r2, c2 int) {
	b[r1][c1], b[r2][c2] = b[r2][c2], b[r1][c1]
}

// HasMove reports whether any adjacent swap would produce a match.
func (b *Board) HasMove() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			for _, d := range [2][2]int{{0, 1}, {1, 0}} {
				r2, c2 := r+d[0], c+d[1]
				if r2 >= Size || c2 >= Size {
					continue
				}
				b.Swap(r, c, r2, c2)
				_, n := b.Matches()
				b.Swap(r, c, r2, c2)
				if n > 0 {
					return true
				}
			}
		}
	}
	return false
}
