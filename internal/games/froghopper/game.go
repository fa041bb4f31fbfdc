// Package froghopper implements Frog Hopper: cross the road and ride the logs
// across the river to fill the five home bays.
package froghopper

import (
	"math/rand"
	"strconv"

	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
)

const (
	ID    = "frog-hopper"
	title = "Frog Hopper"

	// The field is 12 cells wide and 13 rows tall.
	Cell   = 50.0
	WorldW = 600.0
	WorldH = 650.0

	cols = 60
	rows = 13
)

// Field layout, top to bottom: bank, home row, five river lanes, five road
// lanes, start row.
const (
	homeRow       = 1
	firstRiverRow = 2
	laneCount     = 5
	startRow      = 12
	homeCount     = 5

	startLives   = 5
	homePoints   = 100
	levelPoints  = 1000
	levelSpeedUp = 0.1
)

// Game implements Frog Hopper.
type Game struct {
	rng  *rand.Rand
	view core.Viewport

	frogX   float64
	frogRow int
	cars    []Mover
	logs    []Mover
	homes   [homeCount]Home

	level    int
	lives    int
	score    int
	tick     uint64
	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a Frog Hopper game.
func New() *Game { return &Game{} }

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return title }

// Reset starts a new game at level 1 with five lives.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.view = core.NewViewport(WorldW, WorldH, cols, rows)
	g.tooSmall = !g.view.Fits(cfg.ScreenW, cfg.ScreenH)
	g.view = g.view.Centered(cfg.ScreenW, cfg.ScreenH)

	g.buildLanes()
	g.resetFrog()
	g.level = 1
	g.lives = startLives
	g.score = 0
	g.tick = 0
	g.gameOver = false
	g.paused = false
}

func (g *Game) resetFrog() {
	g.frogX = WorldW/2 - Cell/2
	g.frogRow = startRow
}

func (g *Game) frogRect() core.RectF {
	return core.RectF{X: g.frogX, Y: float64(g.frogRow) * Cell, W: Cell, H: Cell}
}

// speedScale grows with each completed level.
func (g *Game) speedScale() float64 {
	return 1 + float64(g.level-1)*levelSpeedUp
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

	g.hop(in)

	scale := g.speedScale()
	for i := range g.cars {
		g.cars[i].advance(scale)
	}
	onLog := false
	frogCenter := g.frogX + Cell/2
	for i := range g.logs {
		l := &g.logs[i]
		l.advance(scale)
		if l.Row == g.frogRow && frogCenter >= l.X && frogCenter <= l.X+l.Width {
			g.frogX += l.Speed * scale
			onLog = true
		}
	}

	switch {
	case isRiver(g.frogRow) && (!onLog || g.frogX < 0 || g.frogX+Cell > WorldW):
		g.loseLife()
	case g.hitByCar():
		g.loseLife()
	case g.frogRow <= homeRow:
		g.reachHome()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) hop(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.frogRow--
	case in.Has(core.ActionDown):
		if g.frogRow < startRow {
			g.frogRow++
		}
	case in.Has(core.ActionLeft):
		if g.frogX > 0 {
			g.frogX = max(g.frogX-Cell, 0)
		}
	case in.Has(core.ActionRight):
		if g.frogX < WorldW-Cell {
			g.frogX = min(g.frogX+Cell, WorldW-Cell)
		}
	}
}

func (g *Game) hitByCar() bool {
	frog := g.frogRect()
	for _, c := range g.cars {
		if c.Row == g.frogRow && frog.Intersects(c.Rect()) {
			return true
		}
	}
	return false
}

// reachHome fills the bay under the frog's center, or costs a life when the
// frog lands on the bank or an occupied bay.
func (g *Game) reachHome() {
	center := g.frogX + Cell/2
	for i := range g.homes {
		h := &g.homes[i]
		if !h.Filled && center > h.X && center < h.X+Cell {
			h.Filled = true
			g.score += homePoints
			g.resetFrog()
			g.checkLevel()
			return
		}
	}
	g.loseLife()
}

func (g *Game) checkLevel() {
	for _, h := range g.homes {
		if !h.Filled {
			return
		}
	}
	g.score += levelPoints
	g.level++
	g.buildLanes()
}

func (g *Game) loseLife() {
	g.lives--
	g.resetFrog()
	if g.lives <= 0 {
		g.gameOver = true
	}
}

// Level returns the current level, starting at 1.
func (g *Game) Level() int { return g.level }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Render draws the field.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall || !g.view.Fits(dst.Width(), dst.Height()) {
		core.DrawTooSmall(dst, cols+2, rows+2)
		return
	}
	v := g.view
	v.DrawFrame(dst, core.ColorGray)

	band := func(row int, ch rune, c core.Color) {
		v.Fill(dst, core.RectF{X: 0, Y: float64(row) * Cell, W: WorldW, H: Cell}, ch, c)
	}
	band(0, '▓', core.ColorGreen)
	band(homeRow, '▓', core.ColorGreen)
	for r := firstRiverRow; r < firstRiverRow+laneCount; r++ {
		band(r, '≈', core.ColorBlue)
	}
	band(startRow, '░', core.ColorGreen)

	for _, h := range g.homes {
		ch, c := ' ', core.ColorDefault
		if h.Filled {
			ch, c = '@', core.ColorBrightGreen
		}
		v.Fill(dst, core.RectF{X: h.X, Y: homeRow * Cell, W: Cell, H: Cell}, ch, c)
	}
	for _, l := range g.logs {
		v.Fill(dst, l.Rect(), '═', core.ColorYellow)
	}
	for _, c := range g.cars {
		v.Fill(dst, c.Rect(), '█', core.ColorBrightRed)
	}
	v.Fill(dst, g.frogRect(), '@', core.ColorBrightGreen)

	status := "Lives: " + strconv.Itoa(g.lives) + "  Level: " + strconv.Itoa(g.level)
	dst.DrawTextColor(v.OriginX, v.OriginY+rows, status, core.ColorGray)
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
