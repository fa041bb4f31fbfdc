// Package skydodge implements Sky Dodge: slide left and right under a rain
// of falling blocks.
package skydodge

import (
	"math/rand"

	"github.com/vovakirdan/retrovault/internal/config"
	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
)

const (
	ID    = "sky-dodge"
	title = "Sky Dodge"

	WorldW = 600.0
	WorldH = 400.0

	cols = 60
	rows = 20
)

const (
	PlayerChar = '▀'
	BlockChar  = '█'
)

// Game implements Sky Dodge.
type Game struct {
	cfg        config.SkyDodgeConfig
	difficulty *config.DifficultyManager
	view       core.Viewport
	rng        *rand.Rand

	playerX float64 // left edge
	spawner *Spawner

	score     int
	tickCount int
	gameOver  bool
	paused    bool
	tooSmall  bool
}

// New creates a Sky Dodge game.
func New() *Game { return &Game{} }

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return title }

// Reset reloads the tuning and clears the sky.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, _ := config.SkyDodge()
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.view = core.NewViewport(WorldW, WorldH, cols, rows)
	g.tooSmall = !g.view.Fits(runtime.ScreenW, runtime.ScreenH)
	g.view = g.view.Centered(runtime.ScreenW, runtime.ScreenH)

	g.playerX = WorldW / 2
	g.spawner = NewSpawner(g.rng, cfg.Spawn)
	g.score = 0
	g.tickCount = 0
	g.gameOver = false
	g.paused = false
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

	size := g.cfg.Player.Size
	if input.Has(core.ActionLeft) {
		g.playerX -= g.cfg.Player.Step
	}
	if input.Has(core.ActionRight) {
		g.playerX += g.cfg.Player.Step
	}
	g.playerX = core.ClampF(g.playerX, 0, WorldW-size)

	scale := g.difficulty.Speed(1, g.score, g.tickCount)
	for n := g.spawner.Update(scale, WorldW, WorldH); n > 0; n-- {
		g.score++
		g.spawner.Dodged(g.score)
	}
	g.tickCount++

	if g.spawner.CheckCollision(g.playerRect()) {
		g.gameOver = true
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) playerRect() core.RectF {
	s := g.cfg.Player.Size
	return core.RectF{X: g.playerX, Y: WorldH - s, W: s, H: s}
}

// Render draws the playfield.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall || !g.view.Fits(dst.Width(), dst.Height()) {
		core.DrawTooSmall(dst, cols+2, rows+2)
		return
	}
	v := g.view
	v.DrawFrame(dst, core.ColorGray)

	for _, b := range g.spawner.Blocks() {
		v.Fill(dst, b.Rect(), BlockChar, core.ColorOrange)
	}
	v.Fill(dst, g.playerRect(), PlayerChar, core.ColorBrightCyan)

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
