package tetrofall

import (
	"strconv"
	"strings"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Score    int
	Lines    int
	Piece    Kind
	X, Y     int
	Board    []string
	GameOver bool
}

// Snapshot returns the current game snapshot. Board rows use '.' for empty
// cells and the kind number otherwise.
func (g *Game) Snapshot() Snapshot {
	rows := make([]string, BoardH)
	for y := range g.board {
		var sb strings.Builder
		for _, k := range g.board[y] {
			if k == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(strconv.Itoa(int(k)))
			}
		}
		rows[y] = sb.String()
	}
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Lines:    g.lines,
		Piece:    g.current.kind,
		X:        g.current.x,
		Y:        g.current.y,
		Board:    rows,
		GameOver: g.gameOver,
	}
}

func itoa(n int) string { return strconv.Itoa(n) }
