package fourinarow

const (
	Rows = 6
	Cols = 7
)

// Disc is the content of a board slot.
type Disc uint8

const (
	Empty Disc = iota
	Player
	CPU
)

// Outcome is the result of checking a board.
type Outcome uint8

const (
	Undecided Outcome = iota
	PlayerWins
	CPUWins
	Tie
)

func (o Outcome) String() string {
	switch o {
	case PlayerWins:
		return "player"
	case CPUWins:
		return "cpu"
	case Tie:
		return "tie"
	default:
		return "undecided"
	}
}

// Board is indexed [row][col] with row 0 at the top.
type Board [Rows][Cols]Disc

// Drop puts d in the lowest empty slot of col and returns its row, or -1
// when the column is full.
func (b *Board) Drop(col int, d Disc) int {
	if col < 0 || col >= Cols {
		return -1
	}
	for r := Rows - 1; r >= 0; r-- {
		if b[r][col] == Empty {
			b[r][col] = d
			return r
		}
	}
	return -1
}

// OpenColumns lists the columns that still take a disc.
func (b *Board) OpenColumns() []int {
	var cols []int
	for c := 0; c < Cols; c++ {
		if b[0][c] == Empty {
			cols = append(cols, c)
		}
	}
	return cols
}

var directions = [...][2]int{{0, 1}, {1, 0}, {1, 1}, {-1, 1}}

// Check reports the winner, a tie on a full board, or Undecided.
func (b *Board) Check() Outcome {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			d := b[r][c]
			if d == Empty {
				continue
			}
			for _, dir := range directions {
				if b.runFrom(r, c, dir[0], dir[1]) {
					if d == Player {
						return PlayerWins
					}
					return CPUWins
				}
			}
		}
	}
	if len(b.OpenColumns()) == 0 {
		return Tie
	}
	return Undecided
}

func (b *Board) runFrom(r, c, dr, dc int) bool {
	d := b[r][c]
	for i := 1; i < 4; i++ {
		rr, cc := r+dr*i, c+dc*i
		if rr < 0 || rr >= Rows || cc < 0 || cc >= Cols || b[rr][cc] != d {
			return false
		}
	}
	return true
}
