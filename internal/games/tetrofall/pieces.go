package tetrofall

import "github.com/vovakirdan/retrovault/internal/core"

// Shape is a square matrix; non-zero cells are filled with the piece's kind.
type Shape [][]int

// Kind identifies one of the seven tetrominoes. Zero is an empty cell.
type Kind int

const (
	Empty Kind = iota
	KindI
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

var shapes = map[Kind]Shape{
	KindI: {
		{0, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
	},
	KindJ: {
		{0, 1, 0},
		{0, 1, 0},
		{1, 1, 0},
	},
	KindL: {
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 1},
	},
	KindO: {
		{1, 1},
		{1, 1},
	},
	KindS: {
		{0, 1, 1},
		{1, 1, 0},
		{0, 0, 0},
	},
	KindT: {
		{0, 0, 0},
		{1, 1, 1},
		{0, 1, 0},
	},
	KindZ: {
		{1, 1, 0},
		{0, 1, 1},
		{0, 0, 0},
	},
}

var kindColors = map[Kind]core.Color{
	KindI: core.ColorBrightGreen,
	KindJ: core.ColorOrange,
	KindL: core.ColorBrightBlue,
	KindO: core.ColorBrightYellow,
	KindS: core.ColorBrightRed,
	KindT: core.ColorBrightMagenta,
	KindZ: core.ColorBrightCyan,
}

// rotate turns a shape clockwise.
func rotate(s Shape) Shape {
	n := len(s)
	out := make(Shape, n)
	for y := range out {
		out[y] = make([]int, n)
		for x := range out[y] {
			out[y][x] = s[n-1-x][y]
		}
	}
	return out
}

func cloneShape(s Shape) Shape {
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = append([]int(nil), row...)
	}
	return out
}
