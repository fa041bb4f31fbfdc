// Package gemmatch implements Gem Match: swap neighbouring gems to line up
// three or more of a color within a fixed move budget.
package gemmatch

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
)

const (
	ID    = "gem-match"
	title = "Gem Match"

	MoveBudget   = 30
	PointsPerGem = 10

	cellW  = 3
	boardW = Size*cellW + 2
	boardH = Size + 2
	needH  = boardH + 1
)

var gemGlyphs = [Colors]rune{'◆', '●', '▲', '■', '★', '♥'}

var gemColors = [Colors]core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
}

// Game implements Gem Match.
type Game struct {
	rng   *rand.Rand
	board Board

	cursorR, cursorC int
	selected         bool
	selR, selC       int
	movesLeft        int

	score    int
	tick     uint64
	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a Gem Match game.
func New() *Game { return &Game{} }

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return title }

// Reset deals a fresh board with the full move budget.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.deal()
	g.cursorR, g.cursorC = Size/2, Size/2
	g.selected = false
	g.movesLeft = MoveBudget
	g.score = 0
	g.tick = 0
	g.gameOver = false
	g.paused = false
	g.tooSmall = cfg.ScreenW < boardW || cfg.ScreenH < needH
}

// deal draws boards until one has at least one legal move.
func (g *Game) deal() {
	for {
		g.board = NewBoard(g.rng)
		if g.board.HasMove() {
			return
		}
	}
}

// Step moves the cursor and handles selection and swaps.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	core.TogglePause(in, &g.paused)
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	switch {
	case in.Has(core.ActionUp):
		g.cursorR = max(g.cursorR-1, 0)
	case in.Has(core.ActionDown):
		g.cursorR = min(g.cursorR+1, Size-1)
	case in.Has(core.ActionLeft):
		g.cursorC = max(g.cursorC-1, 0)
	case in.Has(core.ActionRight):
		g.cursorC = min(g.cursorC+1, Size-1)
	}

	if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
		g.pick(g.cursorR, g.cursorC)
	}
	return core.StepResult{State: g.State()}
}

// pick selects a gem, or swaps with the selection when the picked gem is
// its neighbour. Picking a distant gem moves the selection there.
func (g *Game) pick(r, c int) {
	if !g.selected {
		g.selected, g.selR, g.selC = true, r, c
		return
	}
	dr, dc := core.Abs(r-g.selR), core.Abs(c-g.selC)
	switch {
	case dr+dc == 0:
		g.selected = false
	case dr+dc == 1:
		g.selected = false
		g.trySwap(g.selR, g.selC, r, c)
	default:
		g.selR, g.selC = r, c
	}
}

// trySwap swaps two neighbours and resolves the cascade. A swap that makes
// no match is undone and costs nothing.
func (g *Game) trySwap(r1, c1, r2, c2 int) bool {
	g.board.Swap(r1, c1, r2, c2)
	if _, n := g.board.Matches(); n == 0 {
		g.board.Swap(r1, c1, r2, c2)
		return false
	}
	g.score += g.board.Resolve(g.rng) * PointsPerGem
	g.movesLeft--
	if g.movesLeft <= 0 {
		g.gameOver = true
		return true
	}
	if !g.board.HasMove() {
		g.deal()
	}
	return true
}

// MovesLeft returns the remaining move budget.
func (g *Game) MovesLeft() int { return g.movesLeft }

// Render draws the board with the cursor and selection bracketed.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall || dst.Width() < boardW || dst.Height() < needH {
		core.DrawTooSmall(dst, boardW, needH)
		return
	}
	ox := (dst.Width() - boardW) / 2
	oy := (dst.Height() - needH) / 2
	dst.DrawBoxColor(core.NewRect(ox, oy, boardW, boardH), core.ColorGray)

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sx, sy := ox+1+c*cellW, oy+1+r
			v := g.board[r][c]
			if v != None {
				dst.SetColor(sx+1, sy, gemGlyphs[v], gemColors[v])
			}
			switch {
			case g.selected && r == g.selR && c == g.selC:
				dst.SetColor(sx, sy, '<', core.ColorBrightWhite)
				dst.SetColor(sx+2, sy, '>', core.ColorBrightWhite)
			case r == g.cursorR && c == g.cursorC:
				dst.SetColor(sx, sy, '[', core.ColorBrightWhite)
				dst.SetColor(sx+2, sy, ']', core.ColorBrightWhite)
			}
		}
	}
	dst.DrawTextColor(ox, oy+boardH, fmt.Sprintf("Moves: %d", g.movesLeft), core.ColorGray)

	if g.paused {
		core.DrawPaused(dst)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
