// Package geodash implements Geo-Dash, an auto-running cube that jumps over
// spikes while the level keeps speeding up.
package geodash

import (
	"math/rand"

	"github.com/vovakirdan/retrovault/internal/config"
	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
)

const (
	ID    = "geo-dash"
	title = "Geo-Dash"

	WorldW = 600.0
	WorldH = 400.0

	cols = 60
	rows = 20
)

// Visual characters for rendering.
const (
	PlayerChar = '■'
	SpikeChar  = '▲'
	GroundChar = '═'
)

// Game implements Geo-Dash.
type Game struct {
	cfg        config.GeoDashConfig
	difficulty *config.DifficultyManager
	view       core.Viewport
	rng        *rand.Rand

	playerY    float64 // Top of the player cube
	playerVel  float64
	isGrounded bool
	obstacles  *ObstacleManager

	score     int
	tickCount int
	gameOver  bool
	paused    bool
	tooSmall  bool
}

// New creates a Geo-Dash game.
func New() *Game { return &Game{} }

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return title }

// Reset reloads the tuning and restarts the run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, _ := config.GeoDash()
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.view = core.NewViewport(WorldW, WorldH, cols, rows)
	g.tooSmall = !g.view.Fits(runtime.ScreenW, runtime.ScreenH)
	g.view = g.view.Centered(runtime.ScreenW, runtime.ScreenH)

	g.playerY = g.floorY() - cfg.Player.Height
	g.playerVel = 0
	g.isGrounded = true
	g.obstacles = NewObstacleManager(g.rng, cfg.Obstacles)
	g.score = 0
	g.tickCount = 0
	g.gameOver = false
	g.paused = false
}

func (g *Game) floorY() float64 {
	return WorldH - g.cfg.Ground
}

// Speed returns the current scroll speed in pixels per tick.
func (g *Game) Speed() float64 {
	base := g.cfg.Physics.BaseSpeed + float64(g.score)*g.cfg.Physics.SpeedStep
	return g.difficulty.Speed(base, g.score, g.tickCount)
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
	g.tickCount++

	// Jump only from the ground
	if (in.Has(core.ActionJump) || in.Has(core.ActionUp)) && g.isGrounded {
		g.playerVel = g.cfg.Physics.JumpImpulse
		g.isGrounded = false
	}

	g.playerVel += g.cfg.Physics.Gravity
	g.playerY += g.playerVel
	if rest := g.floorY() - g.cfg.Player.Height; g.playerY >= rest {
		g.playerY = rest
		g.playerVel = 0
		g.isGrounded = true
	}

	g.score += g.obstacles.Update(g.Speed())

	if g.obstacles.CheckCollision(g.playerRect(), g.floorY()) {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) playerRect() core.RectF {
	p := g.cfg.Player
	return core.RectF{X: p.X, Y: g.playerY, W: p.Width, H: p.Height}
}

// Render draws the playfield.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall || !g.view.Fits(dst.Width(), dst.Height()) {
		core.DrawTooSmall(dst, cols+2, rows+2)
		return
	}
	v := g.view
	v.DrawFrame(dst, core.ColorGray)

	v.Fill(dst, core.RectF{X: 0, Y: g.floorY(), W: WorldW, H: g.cfg.Ground}, GroundChar, core.ColorBlue)
	for _, s := range g.obstacles.Spikes() {
		v.Fill(dst, s.Rect(g.floorY()), SpikeChar, core.ColorBrightRed)
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
