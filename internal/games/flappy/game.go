// Package flappy implements Flappy Jetpack: thrust through gaps in an
// endless row of pipes.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/retrovault/internal/config"
	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
)

const (
	ID    = "flappy-jetpack"
	title = "Flappy Jetpack"

	WorldW = 600.0
	WorldH = 400.0

	cols = 60
	rows = 20
)

// Visual characters for rendering.
const (
	PlayerChar = '@'
	PipeChar   = '█'
	PipeCap    = '▓'
)

// Game implements Flappy Jetpack.
type Game struct {
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
	view       core.Viewport
	rng        *rand.Rand

	playerY   float64 // Center of the player sprite
	playerVel float64
	pipes     *PipeManager

	score     int
	tickCount int
	gameOver  bool
	paused    bool
	tooSmall  bool
}

// New creates a Flappy Jetpack game.
func New() *Game { return &Game{} }

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return title }

// Reset reloads the tuning and starts a new flight.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, _ := config.Flappy()
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.view = core.NewViewport(WorldW, WorldH, cols, rows)
	g.tooSmall = !g.view.Fits(runtime.ScreenW, runtime.ScreenH)
	g.view = g.view.Centered(runtime.ScreenW, runtime.ScreenH)

	g.playerY = WorldH / 2
	g.playerVel = 0
	g.pipes = NewPipeManager(g.rng, cfg.Pipes, g.difficulty)
	g.score = 0
	g.tickCount = 0
	g.gameOver = false
	g.paused = false
}

// PipeSpeed returns how far the pipes scroll per tick. It only changes with
// the score when a difficulty preset turned progression on.
func (g *Game) PipeSpeed() float64 {
	return g.difficulty.Speed(g.cfg.Physics.PipeSpeed, g.score, g.tickCount)
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

	if input.Has(core.ActionJump) || input.Has(core.ActionUp) {
		g.playerVel = g.cfg.Physics.Lift
	}

	g.playerVel += g.cfg.Physics.Gravity
	if g.playerVel > g.cfg.Physics.MaxFallSpeed {
		g.playerVel = g.cfg.Physics.MaxFallSpeed
	}
	g.playerY += g.playerVel

	g.pipes.Update(g.PipeSpeed(), g.score, g.tickCount)

	g.tickCount++
	if g.cfg.ScoreEvery > 0 && g.tickCount%g.cfg.ScoreEvery == 0 {
		g.score++
	}

	half := g.cfg.Player.Height / 2
	if g.playerY > WorldH-half || g.playerY < half {
		g.gameOver = true
	} else if g.pipes.CheckCollision(g.playerRect()) {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) playerRect() core.RectF {
	p := g.cfg.Player
	return core.RectF{X: p.X - p.Width/2, Y: g.playerY - p.Height/2, W: p.Width, H: p.Height}
}

// Render draws the playfield.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall || !g.view.Fits(dst.Width(), dst.Height()) {
		core.DrawTooSmall(dst, cols+2, rows+2)
		return
	}
	v := g.view
	v.DrawFrame(dst, core.ColorGray)

	w := g.cfg.Pipes.Width
	for _, p := range g.pipes.Pipes() {
		top := p.TopRect(w)
		bottom := p.BottomRect(w, WorldH)
		v.Fill(dst, top, PipeChar, core.ColorGreen)
		v.Fill(dst, bottom, PipeChar, core.ColorGreen)
		v.Fill(dst, core.RectF{X: p.X, Y: top.Bottom() - 1, W: w, H: 1}, PipeCap, core.ColorBrightGreen)
		v.Fill(dst, core.RectF{X: p.X, Y: bottom.Y, W: w, H: 1}, PipeCap, core.ColorBrightGreen)
	}

	v.Plot(dst, g.cfg.Player.X, g.playerY, PlayerChar, core.ColorBrightYellow)

	if g.tickCount == 0 && !g.gameOver {
		dst.DrawTextCenteredColor(v.OriginY+rows-3, "SPACE to thrust", core.ColorGray)
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
