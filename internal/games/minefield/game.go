// Package minefield implements Minefield: reveal every safe square of a
// 12x12 field without opening one of the 20 mines.
package minefield

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
)

const (
	ID    = "minefield"
	title = "Minefield"

	cellW  = 3
	boardW = Size*cellW + 2
	boardH = Size + 2

	// maxWinScore is the score for an instant clear; one point is lost per
	// second of play and a win is always worth at least one point.
	maxWinScore = 1000
)

var numberColors = [...]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorBrightGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorRed,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorGray,
}

// Game implements Minefield.
type Game struct {
	rng   *rand.Rand
	board Board

	cursorX, cursorY int
	started          bool    // mines are placed on the first reveal
	elapsedMs        float64 // play time since the first reveal
	tickMs           float64

	score    int
	tick     uint64
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// New creates a Minefield game.
func New() *Game { return &Game{} }

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return title }

// Reset clears the field. Mines are not placed until the first reveal.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.board = Board{}
	g.cursorX, g.cursorY = Size/2, Size/2
	g.started = false
	g.elapsedMs = 0
	g.tickMs = cfg.TickDuration()
	g.score = 0
	g.tick = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.tooSmall = cfg.ScreenW < boardW || cfg.ScreenH < boardH+1
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	core.TogglePause(in, &g.paused)
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	g.tick++
	if g.started {
		g.elapsedMs += g.tickMs
	}

	switch {
	case in.Has(core.ActionUp):
		g.cursorY = (g.cursorY + Size - 1) % Size
	case in.Has(core.ActionDown):
		g.cursorY = (g.cursorY + 1) % Size
	case in.Has(core.ActionLeft):
		g.cursorX = (g.cursorX + Size - 1) % Size
	case in.Has(core.ActionRight):
		g.cursorX = (g.cursorX + 1) % Size
	}

	switch {
	case in.Has(core.ActionSecondary):
		g.board.ToggleFlag(g.cursorX, g.cursorY)
	case in.Has(core.ActionJump) || in.Has(core.ActionConfirm):
		g.reveal(g.cursorX, g.cursorY)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) reveal(x, y int) {
	if g.board[y][x].Flagged {
		return
	}
	if !g.started {
		g.board.PlaceMines(g.rng, x, y)
		g.started = true
	}
	if g.board.Reveal(x, y) {
		g.gameOver = true
		g.score = 0
		return
	}
	if g.board.Cleared() {
		g.won = true
		g.gameOver = true
		// Counts down from maxWinScore rather than up with the clock:
		// high score tables keep the largest value, so a faster clear must
		// score more than a slow one.
		g.score = max(1, maxWinScore-g.Seconds())
	}
}

// Seconds returns whole seconds played since the first reveal.
func (g *Game) Seconds() int {
	return int(g.elapsedMs/1000 + 1e-9)
}

// Render draws the field with the cursor bracketed.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall || dst.Width() < boardW || dst.Height() < boardH+1 {
		core.DrawTooSmall(dst, boardW, boardH+1)
		return
	}
	ox := (dst.Width() - boardW) / 2
	oy := (dst.Height() - boardH - 1) / 2
	dst.DrawBoxColor(core.NewRect(ox, oy, boardW, boardH), core.ColorGray)

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			ch, c := g.glyph(x, y)
			sx, sy := ox+1+x*cellW, oy+1+y
			dst.SetColor(sx+1, sy, ch, c)
			if x == g.cursorX && y == g.cursorY {
				dst.SetColor(sx, sy, '[', core.ColorBrightWhite)
				dst.SetColor(sx+2, sy, ']', core.ColorBrightWhite)
			}
		}
	}

	status := fmt.Sprintf("Mines: %d  Flags: %d  Time: %ds", Mines, g.board.Flags(), g.Seconds())
	dst.DrawTextColor(ox, oy+boardH, status, core.ColorGray)
	if g.paused {
		core.DrawPaused(dst)
	}
}

func (g *Game) glyph(x, y int) (rune, core.Color) {
	c := g.board[y][x]
	switch {
	case c.Flagged && !(g.gameOver && c.Mine):
		return '⚑', core.ColorBrightRed
	case c.Mine && (c.Open || g.gameOver):
		return '*', core.ColorBrightRed
	case !c.Open:
		return '■', core.ColorGray
	case c.Neighbors == 0:
		return '·', core.ColorGray
	default:
		return rune(strconv.Itoa(c.Neighbors)[0]), numberColors[c.Neighbors]
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}
