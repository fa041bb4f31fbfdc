// Package snake implements Snake Classic: one growing snake on a 30x20 grid.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
)

const (
	ID    = "snake-classic"
	title = "Snake Classic"

	GridW = 30
	GridH = 20

	startInterval = 200.0 // ms between moves
	minInterval   = 50.0
	speedUp       = 0.95

	epsilon = 1e-9
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Point represents a grid coordinate.
type Point struct {
	X, Y int
}

// Game implements Snake Classic.
type Game struct {
	rng    *rand.Rand
	tickMs float64
	tick   uint64

	snake     []Point // Head at index 0
	direction Direction
	nextDir   Direction
	food      Point

	interval float64 // ms between moves
	elapsed  float64 // ms since the last move

	gameOver bool
	paused   bool
}

// New creates a Snake Classic game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return title }

// Reset initializes a new run. The snake starts as a single segment in the
// middle-left of the grid heading right, with the first food at (15, 15).
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickMs = cfg.TickDuration()
	g.tick = 0
	g.snake = []Point{{X: 10, Y: 10}}
	g.direction = DirRight
	g.nextDir = DirRight
	g.food = Point{X: 15, Y: 15}
	g.interval = startInterval
	g.elapsed = 0
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
	g.tick++

	g.processInput(input)

	g.elapsed += g.tickMs
	if g.elapsed+epsilon >= g.interval {
		g.elapsed -= g.interval
		g.move()
	}

	return core.StepResult{State: g.State()}
}

// processInput buffers a turn, refusing to reverse onto the last move.
func (g *Game) processInput(input core.InputFrame) {
	newDir := g.nextDir
	switch {
	case input.Has(core.ActionUp):
		newDir = DirUp
	case input.Has(core.ActionDown):
		newDir = DirDown
	case input.Has(core.ActionLeft):
		newDir = DirLeft
	case input.Has(core.ActionRight):
		newDir = DirRight
	}
	if !isOpposite(newDir, g.direction) {
		g.nextDir = newDir
	}
}

func isOpposite(d1, d2 Direction) bool {
	return (d1+2)%4 == d2
}

func (g *Game) move() {
	g.direction = g.nextDir

	head := g.snake[0]
	switch g.direction {
	case DirUp:
		head.Y--
	case DirDown:
		head.Y++
	case DirLeft:
		head.X--
	case DirRight:
		head.X++
	}

	if head.X < 0 || head.X >= GridW || head.Y < 0 || head.Y >= GridH {
		g.gameOver = true
		return
	}
	if g.occupied(head) {
		g.gameOver = true
		return
	}

	g.snake = append([]Point{head}, g.snake...)
	if head == g.food {
		g.interval = max(minInterval, g.interval*speedUp)
		g.spawnFood()
		return
	}
	g.snake = g.snake[:len(g.snake)-1]
}

func (g *Game) occupied(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// spawnFood places food on a random free cell. A full grid leaves no food.
func (g *Game) spawnFood() {
	free := make([]Point, 0, GridW*GridH-len(g.snake))
	for y := 0; y < GridH; y++ {
		for x := 0; x < GridW; x++ {
			if p := (Point{X: x, Y: y}); !g.occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		g.food = Point{X: -1, Y: -1}
		return
	}
	g.food = free[g.rng.Intn(len(free))]
}

// Render draws the grid with each cell two columns wide.
func (g *Game) Render(dst *core.Screen) {
	needW, needH := GridW*2+2, GridH+2
	if dst.Width() < needW || dst.Height() < needH {
		core.DrawTooSmall(dst, needW, needH)
		return
	}

	ox := (dst.Width() - GridW*2) / 2
	oy := (dst.Height() - GridH) / 2
	dst.DrawBoxColor(core.NewRect(ox-1, oy-1, GridW*2+2, GridH+2), core.ColorGray)

	cell := func(p Point, c core.Color) {
		dst.SetColor(ox+p.X*2, oy+p.Y, '█', c)
		dst.SetColor(ox+p.X*2+1, oy+p.Y, '█', c)
	}
	if g.food.X >= 0 {
		cell(g.food, core.ColorBrightRed)
	}
	for i := len(g.snake) - 1; i >= 0; i-- {
		c := core.ColorGreen
		if i == 0 {
			c = core.ColorBrightGreen
		}
		cell(g.snake[i], c)
	}

	if g.paused {
		core.DrawPaused(dst)
	}
}

// State returns the current game state. The score is the number of food
// eaten, which is the snake's length minus one.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    len(g.snake) - 1,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
