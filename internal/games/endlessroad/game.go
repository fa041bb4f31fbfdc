// Package endlessroad implements Endless Road: keep a car on a road that
// drifts left and right while dodging oncoming traffic.
package endlessroad

import (
	"math/rand"

	"github.com/vovakirdan/retrovault/internal/config"
	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
)

const (
	ID    = "endless-road"
	title = "Endless Road"

	WorldW = 600.0
	WorldH = 400.0

	cols = 60
	rows = 20
)

const (
	GrassChar  = '"'
	RoadChar   = '░'
	CarChar    = '█'
	PlayerChar = '▓'
)

// Game implements Endless Road.
type Game struct {
	cfg        config.EndlessRoadConfig
	difficulty *config.DifficultyManager
	view       core.Viewport
	rng        *rand.Rand

	playerX float64 // left edge
	road    *Road
	traffic []core.RectF
	speed   float64

	score     int
	tickCount int
	gameOver  bool
	paused    bool
	tooSmall  bool
}

// New creates an Endless Road game.
func New() *Game { return &Game{} }

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return title }

// Reset reloads the tuning and straightens the road.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, _ := config.EndlessRoad()
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.view = core.NewViewport(WorldW, WorldH, cols, rows)
	g.tooSmall = !g.view.Fits(runtime.ScreenW, runtime.ScreenH)
	g.view = g.view.Centered(runtime.ScreenW, runtime.ScreenH)

	g.playerX = WorldW/2 - cfg.Player.Width/2
	g.road = NewRoad(g.rng, cfg.Road)
	g.traffic = nil
	g.speed = cfg.Road.BaseSpeed
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

	if input.Has(core.ActionLeft) {
		g.playerX -= g.cfg.Player.Step
	}
	if input.Has(core.ActionRight) {
		g.playerX += g.cfg.Player.Step
	}

	speed := g.difficulty.Speed(g.speed, g.score, g.tickCount)
	passed := g.road.Advance(speed)
	g.score += passed
	g.speed += float64(passed) * g.cfg.Road.SpeedStep

	g.spawnTraffic()
	kept := g.traffic[:0]
	for _, car := range g.traffic {
		car.Y += speed
		if car.Y <= WorldH {
			kept = append(kept, car)
		}
	}
	g.traffic = kept
	g.tickCount++

	player := g.playerRect()
	if !g.road.OnRoad(player) {
		g.gameOver = true
	}
	for _, car := range g.traffic {
		if car.Intersects(player) {
			g.gameOver = true
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) spawnTraffic() {
	t := g.cfg.Traffic
	if g.rng.Float64() >= t.Chance {
		return
	}
	r := g.road.Rect(g.road.Top())
	g.traffic = append(g.traffic, core.RectF{
		X: r.X + g.rng.Float64()*(r.W-t.Width),
		Y: -t.Height,
		W: t.Width,
		H: t.Height,
	})
}

func (g *Game) playerRect() core.RectF {
	p := g.cfg.Player
	return core.RectF{X: g.playerX, Y: WorldH - p.Bottom - p.Height, W: p.Width, H: p.Height}
}

// Render draws grass, road, traffic and the player's car.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall || !g.view.Fits(dst.Width(), dst.Height()) {
		core.DrawTooSmall(dst, cols+2, rows+2)
		return
	}
	v := g.view
	v.DrawFrame(dst, core.ColorGray)
	v.Fill(dst, core.RectF{W: WorldW, H: WorldH}, GrassChar, core.ColorGreen)
	for _, s := range g.road.Segments() {
		v.Fill(dst, g.road.Rect(s), RoadChar, core.ColorGray)
	}
	for _, car := range g.traffic {
		v.Fill(dst, car, CarChar, core.ColorRed)
	}
	v.Fill(dst, g.playerRect(), PlayerChar, core.ColorBrightBlue)

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
