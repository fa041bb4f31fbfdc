// Package galaxypatrol implements Galaxy Patrol: hold off marching waves of
// aliens from a cannon at the bottom of the screen.
package galaxypatrol

import (
	"math/rand"
	"strconv"

	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
)

const (
	ID    = "galaxy-patrol"
	title = "Galaxy Patrol"

	WorldW = 600.0
	WorldH = 400.0

	cols = 60
	rows = 20
)

// Gameplay constants, in playfield pixels and ticks.
const (
	playerW    = 30.0
	playerH    = 20.0
	playerStep = 15.0

	alienW     = 30.0
	alienH     = 20.0
	alienCols  = 8
	maxRows    = 8
	alienPitch = 50.0
	rowPitch   = 30.0
	marchStep  = 10.0
	dropStep   = 10.0

	bulletW        = 4.0
	bulletH        = 10.0
	bulletSpeed    = 7.0
	bombSpeed      = 5.0
	maxShots       = 5
	pointsPerAlien = 10
)

// Alien is one invader in the wave. Kind picks its sprite and color.
type Alien struct {
	core.RectF
	Kind int
}

// Shot is a projectile; player shots travel up, bombs travel down.
type Shot struct {
	X, Y float64
}

func (s Shot) rect() core.RectF {
	return core.RectF{X: s.X, Y: s.Y, W: bulletW, H: bulletH}
}

var alienSprites = []string{"/o\\", "{@}", "<#>"}

var alienColors = []core.Color{core.ColorBrightGreen, core.ColorBrightMagenta, core.ColorBrightCyan}

// Game implements Galaxy Patrol.
type Game struct {
	rng  *rand.Rand
	view core.Viewport

	playerX float64
	shots   []Shot
	bombs   []Shot
	aliens  []Alien

	direction  float64 // +1 marching right, -1 left
	marchTimer int
	shootTimer int

	level    int
	score    int
	tick     uint64
	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a Galaxy Patrol game.
func New() *Game { return &Game{} }

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return title }

// Reset starts a new game at level 1.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.view = core.NewViewport(WorldW, WorldH, cols, rows)
	g.tooSmall = !g.view.Fits(cfg.ScreenW, cfg.ScreenH)
	g.view = g.view.Centered(cfg.ScreenW, cfg.ScreenH)

	g.playerX = WorldW/2 - playerW/2
	g.shots = g.shots[:0]
	g.bombs = g.bombs[:0]
	g.level = 1
	g.score = 0
	g.tick = 0
	g.gameOver = false
	g.paused = false
	g.spawnWave()
}

// spawnWave builds a fresh grid of 2+level rows, capped so the wave never
// starts on top of the cannon.
func (g *Game) spawnWave() {
	n := min(2+g.level, maxRows)
	g.aliens = g.aliens[:0]
	for r := 0; r < n; r++ {
		for c := 0; c < alienCols; c++ {
			g.aliens = append(g.aliens, Alien{
				RectF: core.RectF{X: float64(c)*alienPitch + 50, Y: float64(r)*rowPitch + 30, W: alienW, H: alienH},
				Kind:  r % 3,
			})
		}
	}
	g.direction = 1
	g.marchTimer = 0
	g.shootTimer = 0
}

func (g *Game) playerY() float64 { return WorldH - 30 }

func (g *Game) playerRect() core.RectF {
	return core.RectF{X: g.playerX, Y: g.playerY(), W: playerW, H: playerH}
}

// marchInterval is the number of ticks between wave steps.
func (g *Game) marchInterval() int { return max(30-g.level*2, 2) }

// fireInterval is the number of ticks between alien bombs.
func (g *Game) fireInterval() int { return max(60-g.level*5, 10) }

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

	switch {
	case in.Has(core.ActionLeft):
		g.playerX -= playerStep
	case in.Has(core.ActionRight):
		g.playerX += playerStep
	}
	g.playerX = core.ClampF(g.playerX, 0, WorldW-playerW)

	if in.Has(core.ActionJump) && len(g.shots) < maxShots {
		g.shots = append(g.shots, Shot{X: g.playerX + playerW/2 - bulletW/2, Y: g.playerY()})
	}

	g.moveShots()
	g.march()
	g.dropBombs()
	g.collide()

	if len(g.aliens) == 0 {
		g.level++
		g.spawnWave()
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) moveShots() {
	live := g.shots[:0]
	for _, s := range g.shots {
		s.Y -= bulletSpeed
		if s.Y+bulletH >= 0 {
			live = append(live, s)
		}
	}
	g.shots = live

	bombs := g.bombs[:0]
	for _, b := range g.bombs {
		b.Y += bombSpeed
		if b.Y <= WorldH {
			bombs = append(bombs, b)
		}
	}
	g.bombs = bombs
}

// march moves the wave sideways and drops it a row when any alien touches an
// edge.
func (g *Game) march() {
	g.marchTimer++
	if g.marchTimer <= g.marchInterval() {
		return
	}
	g.marchTimer = 0

	edge := false
	for i := range g.aliens {
		a := &g.aliens[i]
		a.X += marchStep * g.direction
		if a.X <= 0 || a.X >= WorldW-a.W {
			edge = true
		}
	}
	if !edge {
		return
	}
	g.direction = -g.direction
	for i := range g.aliens {
		g.aliens[i].Y += dropStep
	}
}

func (g *Game) dropBombs() {
	g.shootTimer++
	if g.shootTimer <= g.fireInterval() || len(g.aliens) == 0 {
		return
	}
	g.shootTimer = 0
	a := g.aliens[g.rng.Intn(len(g.aliens))]
	g.bombs = append(g.bombs, Shot{X: a.X + a.W/2, Y: a.Bottom()})
}

func (g *Game) collide() {
	player := g.playerRect()

	for _, a := range g.aliens {
		if a.Bottom() >= player.Y {
			g.gameOver = true
			return
		}
	}
	for _, b := range g.bombs {
		if b.rect().Intersects(player) {
			g.gameOver = true
			return
		}
	}

	shots := g.shots[:0]
	for _, s := range g.shots {
		hit := -1
		for i, a := range g.aliens {
			if s.rect().Intersects(a.RectF) {
				hit = i
				break
			}
		}
		if hit < 0 {
			shots = append(shots, s)
			continue
		}
		g.aliens = append(g.aliens[:hit], g.aliens[hit+1:]...)
		g.score += pointsPerAlien
	}
	g.shots = shots
}

// Level returns the current wave number, starting at 1.
func (g *Game) Level() int { return g.level }

// Render draws the playfield.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall || !g.view.Fits(dst.Width(), dst.Height()) {
		core.DrawTooSmall(dst, cols+2, rows+2)
		return
	}
	v := g.view
	v.DrawFrame(dst, core.ColorGray)

	for _, a := range g.aliens {
		x, y := v.Col(a.X), v.Row(a.Y)
		for i, ch := range alienSprites[a.Kind] {
			if v.Contains(x+i, y) {
				dst.SetColor(x+i, y, ch, alienColors[a.Kind])
			}
		}
	}
	for _, s := range g.shots {
		v.Plot(dst, s.X, s.Y, '|', core.ColorBrightYellow)
	}
	for _, b := range g.bombs {
		v.Plot(dst, b.X, b.Y, '!', core.ColorBrightRed)
	}
	px, py := v.Col(g.playerX), v.Row(g.playerY())
	for i, ch := range "/^\\" {
		if v.Contains(px+i, py) {
			dst.SetColor(px+i, py, ch, core.ColorBrightWhite)
		}
	}

	dst.DrawTextColor(v.OriginX, v.OriginY+rows, "Wave "+strconv.Itoa(g.level), core.ColorGray)
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
