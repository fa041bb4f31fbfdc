package t2048

import (
	"strconv"

	"github.com/vovakirdan/retrovault/internal/core"
)

const (
	// Cell sizes include the left and top border.
	cellWidth  = 7
	cellHeight = 2

	boardW = BoardSize*cellWidth + 1
	boardH = BoardSize*cellHeight + 1
)

// tileColors is indexed by log2(value)-1.
var tileColors = []core.Color{
	core.ColorWhite,
	core.ColorBrightWhite,
	core.ColorOrange,
	core.ColorBrightRed,
	core.ColorRed,
	core.ColorBrightMagenta,
	core.ColorBrightYellow,
	core.ColorYellow,
	core.ColorBrightGreen,
	core.ColorGreen,
	core.ColorBrightCyan,
}

func tileColor(value int) core.Color {
	i := -1
	for v := value; v > 1; v >>= 1 {
		i++
	}
	if i < 0 {
		return core.ColorDefault
	}
	if i >= len(tileColors) {
		return core.ColorBrightBlue
	}
	return tileColors[i]
}

// Render draws the board centered on the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || dst.Width() < boardW || dst.Height() < boardH+2 {
		core.DrawTooSmall(dst, boardW, boardH+2)
		return
	}

	ox := (dst.Width() - boardW) / 2
	oy := (dst.Height() - boardH - 2) / 2
	g.renderBoard(dst, ox, oy)

	info := "Max tile: " + strconv.Itoa(MaxTile(g.board))
	dst.DrawTextColor(ox+(boardW-len(info))/2, oy+boardH+1, info, core.ColorGray)

	if g.paused {
		core.DrawPaused(dst)
	}
}

// junctions[row][col] picks the grid joint; 0 is the first line, 1 an
// inner line, 2 the last.
var junctions = [3][3]rune{
	{'┌', '┬', '┐'},
	{'├', '┼', '┤'},
	{'└', '┴', '┘'},
}

func edge(i int) int {
	switch i {
	case 0:
		return 0
	case BoardSize:
		return 2
	}
	return 1
}

func (g *Game) renderBoard(dst *core.Screen, ox, oy int) {
	for gy := range boardH {
		for gx := range boardW {
			onRow, onCol := gy%cellHeight == 0, gx%cellWidth == 0
			var r rune
			switch {
			case onRow && onCol:
				r = junctions[edge(gy/cellHeight)][edge(gx/cellWidth)]
			case onRow:
				r = '─'
			case onCol:
				r = '│'
			default:
				continue
			}
			dst.SetColor(ox+gx, oy+gy, r, core.ColorGray)
		}
	}

	for y, row := range g.board {
		for x, v := range row {
			if v == 0 {
				continue
			}
			label := strconv.Itoa(v)
			pad := max((cellWidth-1-len(label))/2, 0)
			dst.DrawTextColor(ox+x*cellWidth+1+pad, oy+y*cellHeight+1, label, tileColor(v))
		}
	}
}
