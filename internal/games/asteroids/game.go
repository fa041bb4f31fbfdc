// Package asteroids implements Asteroid Field: pilot a drifting ship and
// shoot every rock to clear the field.
package asteroids

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
)

const (
	ID    = "asteroid-field"
	title = "Asteroid Field"

	WorldW = 600.0
	WorldH = 400.0

	cols = 60
	rows = 20
)

// Physics and scoring constants, in playfield pixels and ticks.
const (
	shipRadius  = 10.0
	turnStep    = math.Pi / 30 // radians per tick while turning
	thrust      = 5.0 / 60     // acceleration per tick while thrusting
	friction    = 0.7          // velocity kept per tick when coasting
	bulletSpeed = 500.0 / 60
	bulletLife  = 60
	maxBullets  = 5

	rockCount   = 3
	rockSpeed   = 1.0
	rockSize    = 60.0
	splitRadius = rockSize / 4 // rocks larger than this split in two

	splitPoints = 20
	smallPoints = 50
	clearBonus  = 1000

	// holdTicks keeps a turn or thrust going between key repeats.
	holdTicks = 6
)

// Ship is the player's craft. Angle 0 points right, pi/2 points up.
type Ship struct {
	X, Y   float64
	VX, VY float64
	Angle  float64
}

// Bullet is a shot with a limited lifetime.
type Bullet struct {
	X, Y   float64
	DX, DY float64
	Life   int
}

// Rock is an asteroid.
type Rock struct {
	X, Y   float64
	VX, VY float64
	R      float64
}

// Game implements Asteroid Field.
type Game struct {
	rng  *rand.Rand
	view core.Viewport

	ship    Ship
	bullets []Bullet
	rocks   []Rock

	turnLeft  int // remaining hold ticks
	turnRight int
	thrusting int

	score    int
	tick     uint64
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// New creates an Asteroid Field game.
func New() *Game { return &Game{} }

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return title }

// Reset centers the ship and scatters a fresh belt of rocks around it.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.view = core.NewViewport(WorldW, WorldH, cols, rows)
	g.tooSmall = !g.view.Fits(cfg.ScreenW, cfg.ScreenH)
	g.view = g.view.Centered(cfg.ScreenW, cfg.ScreenH)

	g.ship = Ship{X: WorldW / 2, Y: WorldH / 2, Angle: math.Pi / 2}
	g.bullets = g.bullets[:0]
	g.rocks = g.rocks[:0]
	for i := 0; i < rockCount; i++ {
		var x, y float64
		for {
			x = math.Floor(g.rng.Float64() * WorldW)
			y = math.Floor(g.rng.Float64() * WorldH)
			if core.Dist(x, y, g.ship.X, g.ship.Y) >= rockSize*2+shipRadius {
				break
			}
		}
		g.rocks = append(g.rocks, g.newRock(x, y, rockSize/2))
	}
	g.turnLeft, g.turnRight, g.thrusting = 0, 0, 0
	g.score = 0
	g.tick = 0
	g.gameOver = false
	g.won = false
	g.paused = false
}

func (g *Game) newRock(x, y, r float64) Rock {
	return Rock{X: x, Y: y, VX: g.drift(), VY: g.drift(), R: r}
}

func (g *Game) drift() float64 {
	v := g.rng.Float64() * rockSpeed
	if g.rng.Float64() < 0.5 {
		return -v
	}
	return v
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

	g.readInput(in)
	g.moveShip()
	g.moveBullets()
	g.moveRocks()
	g.collide()

	return core.StepResult{State: g.State()}
}

func (g *Game) readInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		g.turnLeft, g.turnRight = holdTicks, 0
	case in.Has(core.ActionRight):
		g.turnRight, g.turnLeft = holdTicks, 0
	}
	if in.Has(core.ActionUp) {
		g.thrusting = holdTicks
	}
	if in.Has(core.ActionJump) && len(g.bullets) < maxBullets {
		s := g.ship
		cos, sin := math.Cos(s.Angle), math.Sin(s.Angle)
		g.bullets = append(g.bullets, Bullet{
			X:    s.X + 4.0/3*shipRadius*cos,
			Y:    s.Y - 4.0/3*shipRadius*sin,
			DX:   bulletSpeed * cos,
			DY:   -bulletSpeed * sin,
			Life: 1,
		})
	}
}

func (g *Game) moveShip() {
	s := &g.ship
	switch {
	case g.turnLeft > 0:
		s.Angle += turnStep
		g.turnLeft--
	case g.turnRight > 0:
		s.Angle -= turnStep
		g.turnRight--
	}

	if g.thrusting > 0 {
		s.VX += thrust * math.Cos(s.Angle)
		s.VY -= thrust * math.Sin(s.Angle)
		g.thrusting--
	} else {
		s.VX *= friction
		s.VY *= friction
	}
	s.X, s.Y = wrap(s.X+s.VX, s.Y+s.VY, shipRadius)
}

func (g *Game) moveBullets() {
	live := g.bullets[:0]
	for _, b := range g.bullets {
		b.X += b.DX
		b.Y += b.DY
		b.Life++
		if b.Life <= bulletLife {
			live = append(live, b)
		}
	}
	g.bullets = live
}

func (g *Game) moveRocks() {
	for i := range g.rocks {
		r := &g.rocks[i]
		r.X, r.Y = wrap(r.X+r.VX, r.Y+r.VY, r.R)
	}
}

// wrap moves an object that fully left one edge to just beyond the opposite
// edge.
func wrap(x, y, r float64) (float64, float64) {
	switch {
	case x < -r:
		x = WorldW + r
	case x > WorldW+r:
		x = -r
	}
	switch {
	case y < -r:
		y = WorldH + r
	case y > WorldH+r:
		y = -r
	}
	return x, y
}

func (g *Game) collide() {
	for _, r := range g.rocks {
		if core.Dist(g.ship.X, g.ship.Y, r.X, r.Y) < shipRadius+r.R {
			g.gameOver = true
			return
		}
	}

	var spawned []Rock
	rocks := g.rocks[:0]
	for _, r := range g.rocks {
		hit := -1
		for j, b := range g.bullets {
			if core.Dist(b.X, b.Y, r.X, r.Y) < r.R {
				hit = j
				break
			}
		}
		if hit < 0 {
			rocks = append(rocks, r)
			continue
		}
		g.bullets = append(g.bullets[:hit], g.bullets[hit+1:]...)
		if r.R > splitRadius {
			half := math.Ceil(r.R / 2)
			spawned = append(spawned, g.newRock(r.X, r.Y, half), g.newRock(r.X, r.Y, half))
			g.score += splitPoints
		} else {
			g.score += smallPoints
		}
	}
	g.rocks = append(rocks, spawned...)

	if len(g.rocks) == 0 {
		g.score += clearBonus
		g.won = true
		g.gameOver = true
	}
}

// Render draws the playfield.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall || !g.view.Fits(dst.Width(), dst.Height()) {
		core.DrawTooSmall(dst, cols+2, rows+2)
		return
	}
	v := g.view
	v.DrawFrame(dst, core.ColorGray)

	for _, r := range g.rocks {
		g.drawRock(dst, r)
	}
	for _, b := range g.bullets {
		v.Plot(dst, b.X, b.Y, '•', core.ColorBrightYellow)
	}
	v.Plot(dst, g.ship.X, g.ship.Y, shipGlyph(g.ship.Angle), core.ColorBrightWhite)

	if g.paused {
		core.DrawPaused(dst)
	}
}

func (g *Game) drawRock(dst *core.Screen, r Rock) {
	v := g.view
	cr := v.CellRect(core.RectF{X: r.X - r.R, Y: r.Y - r.R, W: 2 * r.R, H: 2 * r.R})
	cw, ch := v.WorldW/float64(v.Cols), v.WorldH/float64(v.Rows)
	for y := cr.Y; y < cr.Bottom(); y++ {
		for x := cr.X; x < cr.Right(); x++ {
			if !v.Contains(x, y) {
				continue
			}
			px := (float64(x-v.OriginX) + 0.5) * cw
			py := (float64(y-v.OriginY) + 0.5) * ch
			if core.Dist(px, py, r.X, r.Y) <= r.R {
				dst.SetColor(x, y, '▒', core.ColorGray)
			}
		}
	}
}

var shipGlyphs = [...]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// shipGlyph picks the arrow closest to the ship's heading.
func shipGlyph(angle float64) rune {
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return shipGlyphs[octant]
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
