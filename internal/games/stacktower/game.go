// Package stacktower implements Stack Tower: drop a sliding block onto the
// tower; only the overlapping part stays.
package stacktower

import (
	"math"

	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
)

const (
	ID    = "stack-tower"
	title = "Stack Tower"

	WorldW = 600.0
	WorldH = 400.0

	cols = 60
	rows = 20

	BlockHeight = 20.0
	StartWidth  = 100.0
	StartSpeed  = 3.0
	// SpeedGrowth multiplies the slider speed after every placement.
	SpeedGrowth = 1.05
)

const BlockChar = '█'

// Block is a placed slab of the tower.
type Block struct {
	X, W float64
}

// Game implements Stack Tower.
type Game struct {
	view core.Viewport

	tower   []Block
	sliderX float64
	sliderW float64
	speed   float64 // signed; the sign is the direction

	score     int
	tickCount int
	gameOver  bool
	paused    bool
	tooSmall  bool
}

// New creates a Stack Tower game.
func New() *Game { return &Game{} }

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return title }

// Reset starts with a single centered base block.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.view = core.NewViewport(WorldW, WorldH, cols, rows)
	g.tooSmall = !g.view.Fits(runtime.ScreenW, runtime.ScreenH)
	g.view = g.view.Centered(runtime.ScreenW, runtime.ScreenH)

	g.tower = []Block{{X: WorldW/2 - StartWidth/2, W: StartWidth}}
	g.sliderX = 0
	g.sliderW = StartWidth
	g.speed = StartSpeed
	g.score = 0
	g.tickCount = 0
	g.gameOver = false
	g.paused = false
}

// Step slides the block and places it on Space or Enter.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	core.TogglePause(input, &g.paused)
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	g.tickCount++

	if input.Has(core.ActionJump) || input.Has(core.ActionConfirm) || input.Has(core.ActionDown) {
		g.place()
		return core.StepResult{State: g.State()}
	}

	g.sliderX += g.speed
	if g.sliderX < 0 {
		g.sliderX = 0
		g.speed = -g.speed
	} else if g.sliderX+g.sliderW > WorldW {
		g.sliderX = WorldW - g.sliderW
		g.speed = -g.speed
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) place() {
	top := g.tower[len(g.tower)-1]
	left := math.Max(top.X, g.sliderX)
	right := math.Min(top.X+top.W, g.sliderX+g.sliderW)
	overlap := right - left
	if overlap <= 0 {
		g.gameOver = true
		return
	}
	g.tower = append(g.tower, Block{X: left, W: overlap})
	g.score++
	g.sliderW = overlap
	g.speed *= SpeedGrowth
}

// Height returns the number of placed blocks including the base.
func (g *Game) Height() int { return len(g.tower) }

// levelY maps tower level n to world y, scrolled so the slider never rises
// above the middle of the field.
func (g *Game) levelY(n int) float64 {
	y := WorldH - BlockHeight*float64(n+1)
	slider := WorldH - BlockHeight*float64(len(g.tower)+1)
	if slider < WorldH/2 {
		y += WorldH/2 - slider
	}
	return y
}

// Render draws the visible part of the tower and the slider.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall || !g.view.Fits(dst.Width(), dst.Height()) {
		core.DrawTooSmall(dst, cols+2, rows+2)
		return
	}
	v := g.view
	v.DrawFrame(dst, core.ColorGray)

	for i, b := range g.tower {
		y := g.levelY(i)
		if y >= WorldH {
			continue
		}
		v.Fill(dst, core.RectF{X: b.X, Y: y, W: b.W, H: BlockHeight}, BlockChar, core.PaletteColor(i))
	}
	n := len(g.tower)
	if !g.gameOver {
		v.Fill(dst, core.RectF{X: g.sliderX, Y: g.levelY(n), W: g.sliderW, H: BlockHeight}, BlockChar, core.PaletteColor(n))
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
