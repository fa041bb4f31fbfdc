// Package tetrofall implements Tetro Fall, a falling-block puzzle on a
// 12x20 board.
package tetrofall

import (
	"math/rand"

	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
)

const (
	ID    = "tetro-fall"
	title = "Tetro Fall"

	BoardW = 12
	BoardH = 20

	gravityMs = 1000.0
)

// linePoints is indexed by the number of rows cleared at once.
var linePoints = [5]int{0, 40, 100, 300, 1200}

// kicks are the horizontal offsets tried, in order, when a rotation collides.
var kicks = []int{0, 1, -1, 2, -2}

type piece struct {
	kind  Kind
	shape Shape
	x, y  int
}

// Game implements Tetro Fall.
type Game struct {
	rng    *rand.Rand
	tickMs float64
	tick   uint64

	board   [BoardH][BoardW]Kind
	current piece
	elapsed float64
	lines   int
	score   int

	gameOver bool
	paused   bool
}

// New creates a Tetro Fall game.
func New() *Game { return &Game{} }

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return title }

// Reset clears the board and spawns the first piece.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickMs = cfg.TickDuration()
	g.tick = 0
	g.board = [BoardH][BoardW]Kind{}
	g.elapsed = 0
	g.lines = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.spawn()
}

func (g *Game) spawn() {
	kind := Kind(1 + g.rng.Intn(7))
	g.current = piece{kind: kind, shape: cloneShape(shapes[kind]), x: BoardW/2 - 2, y: 0}
	if g.collides(g.current, 0, 0) {
		g.gameOver = true
	}
}

// collides reports whether p shifted by (dx, dy) leaves the board or
// overlaps a locked cell.
func (g *Game) collides(p piece, dx, dy int) bool {
	for y, row := range p.shape {
		for x, v := range row {
			if v == 0 {
				continue
			}
			bx, by := p.x+x+dx, p.y+y+dy
			if bx < 0 || bx >= BoardW || by < 0 || by >= BoardH {
				return true
			}
			if g.board[by][bx] != Empty {
				return true
			}
		}
	}
	return false
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	core.TogglePause(input, &g.paused)
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	switch {
	case input.Has(core.ActionLeft):
		g.shift(-1)
	case input.Has(core.ActionRight):
		g.shift(1)
	}
	if input.Has(core.ActionUp) {
		g.rotate()
	}
	if input.Has(core.ActionJump) {
		g.hardDrop()
		return core.StepResult{State: g.State()}
	}
	if input.Has(core.ActionDown) {
		g.elapsed = 0
		g.drop()
		return core.StepResult{State: g.State()}
	}

	g.elapsed += g.tickMs
	if g.elapsed+1e-9 >= gravityMs {
		g.elapsed = 0
		g.drop()
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) shift(dx int) {
	if !g.collides(g.current, dx, 0) {
		g.current.x += dx
	}
}

// rotate turns the current piece clockwise, trying each kick offset.
// The piece stays put when every offset collides.
func (g *Game) rotate() {
	rotated := g.current
	rotated.shape = rotate(g.current.shape)
	for _, dx := range kicks {
		if !g.collides(rotated, dx, 0) {
			rotated.x += dx
			g.current = rotated
			return
		}
	}
}

// drop moves the piece one row down or locks it.
func (g *Game) drop() {
	if !g.collides(g.current, 0, 1) {
		g.current.y++
		return
	}
	g.lock()
}

func (g *Game) hardDrop() {
	for !g.collides(g.current, 0, 1) {
		g.current.y++
	}
	g.lock()
}

func (g *Game) lock() {
	for y, row := range g.current.shape {
		for x, v := range row {
			if v != 0 {
				g.board[g.current.y+y][g.current.x+x] = g.current.kind
			}
		}
	}
	g.sweep()
	g.elapsed = 0
	g.spawn()
}

// sweep removes full rows and scores them.
func (g *Game) sweep() {
	var kept [BoardH][BoardW]Kind
	dst := BoardH - 1
	cleared := 0
	for y := BoardH - 1; y >= 0; y-- {
		if rowFull(g.board[y]) {
			cleared++
			continue
		}
		kept[dst] = g.board[y]
		dst--
	}
	g.board = kept
	g.lines += cleared
	g.score += linePoints[cleared]
}

func rowFull(row [BoardW]Kind) bool {
	for _, k := range row {
		if k == Empty {
			return false
		}
	}
	return true
}

// ghostY returns the row the current piece would land on.
func (g *Game) ghostY() int {
	dy := 0
	for !g.collides(g.current, 0, dy+1) {
		dy++
	}
	return g.current.y + dy
}

// Render draws the board with each cell two columns wide, the landing
// ghost and a side panel with cleared lines.
func (g *Game) Render(dst *core.Screen) {
	needW, needH := BoardW*2+2, BoardH+2
	if dst.Width() < needW || dst.Height() < needH {
		core.DrawTooSmall(dst, needW, needH)
		return
	}

	ox := (dst.Width() - BoardW*2) / 2
	oy := (dst.Height() - BoardH) / 2
	dst.DrawBoxColor(core.NewRect(ox-1, oy-1, BoardW*2+2, BoardH+2), core.ColorGray)

	cell := func(x, y int, ch rune, c core.Color) {
		dst.SetColor(ox+x*2, oy+y, ch, c)
		dst.SetColor(ox+x*2+1, oy+y, ch, c)
	}
	for y := 0; y < BoardH; y++ {
		for x := 0; x < BoardW; x++ {
			if k := g.board[y][x]; k != Empty {
				cell(x, y, '█', kindColors[k])
			} else {
				dst.SetColor(ox+x*2, oy+y, '·', core.ColorGray)
			}
		}
	}

	if !g.gameOver {
		gy := g.ghostY()
		c := kindColors[g.current.kind]
		for y, row := range g.current.shape {
			for x, v := range row {
				if v != 0 {
					cell(g.current.x+x, gy+y, '░', c)
				}
			}
		}
		for y, row := range g.current.shape {
			for x, v := range row {
				if v != 0 {
					cell(g.current.x+x, g.current.y+y, '█', c)
				}
			}
		}
	}

	if px := ox + BoardW*2 + 3; px+10 <= dst.Width() {
		dst.DrawTextColor(px, oy, "Lines", core.ColorGray)
		dst.DrawText(px, oy+1, itoa(g.lines))
	}

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
