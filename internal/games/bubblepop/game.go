// Package bubblepop implements Bubble Pop: aim a launcher at a hex field of
// bubbles, pop clusters of three or more and drop whatever they held up.
package bubblepop

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
)

const (
	ID    = "bubble-pop"
	title = "Bubble Pop"

	WorldW = Cols * Radius * 2
	WorldH = 400.0

	cols = 54
	rows = 20

	startRows  = 5
	shotSpeed  = 8.0
	aimStep    = math.Pi / 36
	minAim     = math.Pi / 18
	maxAim     = math.Pi - minAim
	popPoints  = 10
	dropPoints = 20
)

const (
	BubbleChar   = '●'
	LauncherChar = '◆'
	AimChar      = '·'
	DangerChar   = '-'
)

// Shot is a bubble in flight.
type Shot struct {
	X, Y   float64
	VX, VY float64
	Color  int
}

// Game implements Bubble Pop.
type Game struct {
	view core.Viewport
	rng  *rand.Rand

	grid    Grid
	aim     float64 // radians from the positive x axis, pointing up
	current int
	next    int
	shot    *Shot

	score    int
	tick     uint64
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// New creates a Bubble Pop game.
func New() *Game { return &Game{} }

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return title }

// Reset fills the top rows and loads the launcher.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.view = core.NewViewport(WorldW, WorldH, cols, rows)
	g.tooSmall = !g.view.Fits(cfg.ScreenW, cfg.ScreenH)
	g.view = g.view.Centered(cfg.ScreenW, cfg.ScreenH)

	g.grid = NewGrid()
	for r := 0; r < startRows; r++ {
		for c := 0; c < RowLen(r); c++ {
			g.grid[r][c] = g.rng.Intn(Colors)
		}
	}
	g.aim = math.Pi / 2
	g.current = g.pickColor()
	g.next = g.pickColor()
	g.shot = nil
	g.score = 0
	g.tick = 0
	g.gameOver = false
	g.won = false
	g.paused = false
}

// pickColor draws a launcher color from those still on the field.
func (g *Game) pickColor() int {
	left := g.grid.ColorsLeft()
	if len(left) == 0 {
		return g.rng.Intn(Colors)
	}
	return left[g.rng.Intn(len(left))]
}

func launcher() (float64, float64) { return WorldW / 2, WorldH - Radius }

// Step aims, fires and advances the bubble in flight.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	core.TogglePause(in, &g.paused)
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	if in.Has(core.ActionLeft) {
		g.aim = math.Min(g.aim+aimStep, maxAim)
	}
	if in.Has(core.ActionRight) {
		g.aim = math.Max(g.aim-aimStep, minAim)
	}
	if g.shot == nil && (in.Has(core.ActionJump) || in.Has(core.ActionConfirm) || in.Has(core.ActionUp)) {
		x, y := launcher()
		g.shot = &Shot{
			X: x, Y: y,
			VX:    math.Cos(g.aim) * shotSpeed,
			VY:    -math.Sin(g.aim) * shotSpeed,
			Color: g.current,
		}
		g.current, g.next = g.next, g.pickColor()
	}

	if g.shot != nil {
		g.fly()
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) fly() {
	s := g.shot
	s.X += s.VX
	s.Y += s.VY
	if s.X < Radius {
		s.X = Radius
		s.VX = -s.VX
	} else if s.X > WorldW-Radius {
		s.X = WorldW - Radius
		s.VX = -s.VX
	}
	if s.Y <= Radius || g.grid.Touching(s.X, s.Y) {
		g.settle(s)
		g.shot = nil
	}
}

// settle snaps the shot into the grid and resolves pops and drops.
func (g *Game) settle(s *Shot) {
	cell, ok := g.grid.Snap(s.X, s.Y)
	if !ok {
		g.gameOver = true
		return
	}
	g.grid.Set(cell, s.Color)

	if cluster := g.grid.Cluster(cell); len(cluster) >= 3 {
		for _, c := range cluster {
			g.grid.Set(c, Empty)
		}
		g.score += len(cluster) * popPoints
		floating := g.grid.Floating()
		for _, c := range floating {
			g.grid.Set(c, Empty)
		}
		g.score += len(floating) * dropPoints
	}

	switch {
	case g.grid.Count() == 0:
		g.won = true
		g.gameOver = true
	case g.grid.LowestRow() >= DangerRow:
		g.gameOver = true
	}
	if !g.gameOver && !g.hasColor(g.current) {
		g.current = g.pickColor()
	}
}

func (g *Game) hasColor(color int) bool {
	for _, c := range g.grid.ColorsLeft() {
		if c == color {
			return true
		}
	}
	return false
}

// Render draws the field, the danger line and the launcher with its aim.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall || !g.view.Fits(dst.Width(), dst.Height()) {
		core.DrawTooSmall(dst, cols+2, rows+2)
		return
	}
	v := g.view
	v.DrawFrame(dst, core.ColorGray)

	dangerY := float64(DangerRow)*rowPitch + Radius/2
	v.Fill(dst, core.RectF{Y: dangerY, W: WorldW, H: 1}, DangerChar, core.ColorRed)

	g.grid.each(func(c Cell) {
		x, y := Center(c)
		v.Plot(dst, x, y, BubbleChar, core.PaletteColor(g.grid.At(c)))
	})

	lx, ly := launcher()
	if g.shot == nil {
		for i := 2; i <= 6; i++ {
			d := float64(i) * Radius * 2
			v.Plot(dst, lx+math.Cos(g.aim)*d, ly-math.Sin(g.aim)*d, AimChar, core.ColorGray)
		}
	} else {
		v.Plot(dst, g.shot.X, g.shot.Y, BubbleChar, core.PaletteColor(g.shot.Color))
	}
	v.Plot(dst, lx, ly, LauncherChar, core.PaletteColor(g.current))
	v.Plot(dst, lx+Radius*4, ly, BubbleChar, core.PaletteColor(g.next))

	if g.paused {
		core.DrawPaused(dst)
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
