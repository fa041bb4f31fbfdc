package t2048

// Direction is the way tiles travel on a move.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// BoardSize is the board dimension.
const BoardSize = 4

// Board is indexed [row][column]; 0 is an empty cell.
type Board [BoardSize][BoardSize]int

// Cell is a board coordinate.
type Cell struct{ X, Y int }

// line returns the cells of lane i ordered from the edge the tiles travel
// toward. Every move is "compact toward index 0" over these lanes.
func line(dir Direction, i int) [BoardSize]Cell {
	var out [BoardSize]Cell
	for k := range BoardSize {
		far := BoardSize - 1 - k
		switch dir {
		case DirLeft:
			out[k] = Cell{k, i}
		case DirRight:
			out[k] = Cell{far, i}
		case DirUp:
			out[k] = Cell{i, k}
		case DirDown:
			out[k] = Cell{i, far}
		}
	}
	return out
}

// compact packs the non-zero values of lane toward index 0, merging equal
// neighbours. A merged tile never merges twice in one move.
func compact(lane [BoardSize]int) (out [BoardSize]int, gained int) {
	n := 0
	canMerge := false
	for _, v := range lane {
		if v == 0 {
			continue
		}
		if canMerge && out[n-1] == v {
			out[n-1] = v * 2
			gained += v * 2
			canMerge = false
			continue
		}
		out[n] = v
		n++
		canMerge = true
	}
	return out, gained
}

// Slide applies one move and reports the points gained and whether any tile
// moved.
func Slide(b Board, dir Direction) (Board, int, bool) {
	if dir < DirUp || dir > DirRight {
		return b, 0, false
	}
	next := b
	total := 0
	for i := range BoardSize {
		cells := line(dir, i)
		var lane [BoardSize]int
		for k, c := range cells {
			lane[k] = b[c.Y][c.X]
		}
		packed, gained := compact(lane)
		total += gained
		for k, c := range cells {
			next[c.Y][c.X] = packed[k]
		}
	}
	return next, total, next != b
}

// EmptyCells lists the empty cells in row-major order.
func EmptyCells(b Board) []Cell {
	var cells []Cell
	for y, row := range b {
		for x, v := range row {
			if v == 0 {
				cells = append(cells, Cell{x, y})
			}
		}
	}
	return cells
}

// CanMove reports whether any direction would change the board.
func CanMove(b Board) bool {
	for y, row := range b {
		for x, v := range row {
			if v == 0 {
				return true
			}
			if x+1 < BoardSize && row[x+1] == v {
				return true
			}
			if y+1 < BoardSize && b[y+1][x] == v {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the largest tile value.
func MaxTile(b Board) int {
	best := 0
	for _, row := range b {
		for _, v := range row {
			best = max(best, v)
		}
	}
	return best
}

// IsGameOver is true once no move is possible.
func IsGameOver(b Board) bool { return !CanMove(b) }
