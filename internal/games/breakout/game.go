// Package breakout implements Brick Buster: clear an 8x5 wall of bricks
// with a ball steered by the paddle.
package breakout

import (
	"github.com/vovakirdan/retrovault/internal/config"
	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
)

const (
	ID    = "brick-buster"
	title = "Brick Buster"

	WorldW = 600.0
	WorldH = 400.0

	cols = 60
	rows = 20
)

// Game states.
const (
	StateServe    = "serve"    // Ball on paddle, waiting for launch
	StatePlaying  = "playing"  // Ball in play
	StateGameOver = "gameover" // Ball missed
	StateWin      = "win"      // Every brick cleared
)

// Visual characters for rendering.
const (
	PaddleChar = '▀'
	BallChar   = '●'
)

var brickColors = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorGreen,
	core.ColorBrightGreen,
}

// Game implements Brick Buster.
type Game struct {
	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager
	view       core.Viewport

	paddle Paddle
	ball   Ball
	bricks []Brick

	state    string
	score    int
	tick     uint64
	paused   bool
	tooSmall bool
}

// New creates a Brick Buster game.
func New() *Game { return &Game{} }

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return title }

// Reset loads the tuning, rebuilds the wall and serves a new ball.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, _ := config.Breakout()
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.view = core.NewViewport(WorldW, WorldH, cols, rows)
	g.tooSmall = !g.view.Fits(runtime.ScreenW, runtime.ScreenH)
	g.view = g.view.Centered(runtime.ScreenW, runtime.ScreenH)

	g.paddle = Paddle{
		X:      (WorldW - cfg.Paddle.Width) / 2,
		Y:      WorldH - cfg.Paddle.MarginBottom - cfg.Paddle.Height,
		Width:  cfg.Paddle.Width,
		Height: cfg.Paddle.Height,
	}
	g.bricks = buildWall(cfg.Bricks)
	g.score = 0
	g.tick = 0
	g.paused = false
	g.serve()
}

func (g *Game) serve() {
	g.ball = Ball{
		X:  g.paddle.CenterX(),
		Y:  g.paddle.Y - g.cfg.Ball.Radius,
		VX: g.cfg.Ball.Speed,
		VY: -g.cfg.Ball.Speed,
		R:  g.cfg.Ball.Radius,
	}
	g.state = StateServe
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.state == StateGameOver || g.state == StateWin {
		return core.StepResult{State: g.State()}
	}
	core.TogglePause(input, &g.paused)
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	g.movePaddle(input)

	if g.state == StateServe {
		g.ball.X = g.paddle.CenterX()
		if input.Has(core.ActionJump) || input.Has(core.ActionUp) {
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}
	}

	g.updateBall()
	return core.StepResult{State: g.State()}
}

func (g *Game) movePaddle(input core.InputFrame) {
	step := g.cfg.Paddle.Step
	switch {
	case input.Has(core.ActionLeft):
		g.paddle.X -= step
	case input.Has(core.ActionRight):
		g.paddle.X += step
	}
	g.paddle.X = core.ClampF(g.paddle.X, 0, WorldW-g.paddle.Width)
}

func (g *Game) updateBall() {
	scale := g.difficulty.Speed(1, g.score, int(g.tick))

	if CheckBrickCollision(&g.ball, g.bricks) >= 0 {
		g.score++
		if g.score == len(g.bricks) {
			g.state = StateWin
			return
		}
	}

	g.ball.X += g.ball.VX * scale
	g.ball.Y += g.ball.VY * scale

	if CheckPaddleCollision(&g.ball, g.paddle, scale, g.cfg.Ball.Steer) {
		return
	}
	if CheckWallCollision(&g.ball, scale, WorldW, WorldH) {
		g.state = StateGameOver
	}
}

// BricksRemaining returns the number of live bricks.
func (g *Game) BricksRemaining() int {
	n := 0
	for _, b := range g.bricks {
		if b.Alive {
			n++
		}
	}
	return n
}

// Render draws the playfield.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall || !g.view.Fits(dst.Width(), dst.Height()) {
		core.DrawTooSmall(dst, cols+2, rows+2)
		return
	}
	v := g.view
	v.DrawFrame(dst, core.ColorGray)

	for _, b := range g.bricks {
		if b.Alive {
			v.Fill(dst, b.Rect, '█', brickColors[b.Row%len(brickColors)])
		}
	}
	v.Fill(dst, core.RectF{X: g.paddle.X, Y: g.paddle.Y, W: g.paddle.Width, H: g.paddle.Height}, PaddleChar, core.ColorBrightCyan)
	v.Plot(dst, g.ball.X, g.ball.Y, BallChar, core.ColorBrightWhite)

	if g.state == StateServe {
		dst.DrawTextCenteredColor(v.OriginY+rows-6, "SPACE to launch", core.ColorGray)
	}
	if g.paused {
		core.DrawPaused(dst)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.paused,
	}
}
