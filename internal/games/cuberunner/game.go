// Package cuberunner implements Cube Runner: strafe through a field of
// cubes flying at the camera.
package cuberunner

import (
	"cmp"
	"math/rand"
	"slices"

	"github.com/vovakirdan/retrovault/internal/config"
	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
)

const (
	ID    = "cube-runner"
	title = "Cube Runner"

	WorldW = 600.0
	WorldH = 400.0

	cols = 60
	rows = 20

	// playerLift is how far above the bottom edge the player's box ends.
	playerLift = 30.0

	// strafeFrames is how many frames of strafing one key event is worth.
	strafeFrames = 4
)

const (
	PlayerChar = '▲'
	CubeChar   = '▓'
)

// Game implements Cube Runner.
type Game struct {
	cfg        config.CubeRunnerConfig
	difficulty *config.DifficultyManager
	view       core.Viewport
	rng        *rand.Rand

	playerX float64 // left edge
	field   *Field

	tickCount int
	gameOver  bool
	paused    bool
	tooSmall  bool
}

// New creates a Cube Runner game.
func New() *Game { return &Game{} }

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return title }

// Reset reloads the tuning and scatters a new field.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, _ := config.CubeRunner()
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.view = core.NewViewport(WorldW, WorldH, cols, rows)
	g.tooSmall = !g.view.Fits(runtime.ScreenW, runtime.ScreenH)
	g.view = g.view.Centered(runtime.ScreenW, runtime.ScreenH)

	g.playerX = WorldW / 2
	g.field = NewField(g.rng, cfg.Field)
	g.tickCount = 0
	g.gameOver = false
	g.paused = false
}

// Speed returns the forward speed: Base plus Step for every Every ticks,
// scaled by difficulty.
func (g *Game) Speed() float64 {
	s := g.cfg.Speed
	base := s.Base
	if s.Every > 0 {
		base += s.Step * float64(g.tickCount/s.Every)
	}
	return g.difficulty.Speed(base, g.Score(), g.tickCount)
}

// Score is one point per ScoreEvery ticks survived.
func (g *Game) Score() int {
	if g.cfg.ScoreEvery <= 0 {
		return g.tickCount
	}
	return g.tickCount / g.cfg.ScoreEvery
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

	speed := g.Speed()
	strafe := speed / 2 * strafeFrames
	if input.Has(core.ActionLeft) {
		g.playerX -= strafe
	}
	if input.Has(core.ActionRight) {
		g.playerX += strafe
	}
	g.playerX = core.ClampF(g.playerX, 0, WorldW-g.cfg.Player.Width)

	g.tickCount++
	g.field.Advance(speed)
	if g.field.Hits(g.playerRect()) {
		g.gameOver = true
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) playerRect() core.RectF {
	p := g.cfg.Player
	return core.RectF{X: g.playerX, Y: WorldH - playerLift - p.Height, W: p.Width, H: p.Height}
}

// Render draws cubes far to near, then the player.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall || !g.view.Fits(dst.Width(), dst.Height()) {
		core.DrawTooSmall(dst, cols+2, rows+2)
		return
	}
	v := g.view
	v.DrawFrame(dst, core.ColorGray)

	cubes := slices.Clone(g.field.Cubes())
	slices.SortStableFunc(cubes, func(a, b Cube) int { return cmp.Compare(b.Z, a.Z) })
	for _, c := range cubes {
		color := core.ColorCyan
		switch {
		case c.Z < g.cfg.Field.Depth/4:
			color = core.ColorBrightWhite
		case c.Z < g.cfg.Field.Depth/2:
			color = core.ColorBrightCyan
		case c.Z > g.cfg.Field.Depth:
			continue
		}
		v.Fill(dst, g.field.Project(c), CubeChar, color)
	}
	v.Fill(dst, g.playerRect(), PlayerChar, core.ColorBrightYellow)

	if g.paused {
		core.DrawPaused(dst)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
