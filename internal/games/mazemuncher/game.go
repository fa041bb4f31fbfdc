// Package mazemuncher implements Maze Muncher: eat every pellet in the maze
// while four ghosts roam it.
package mazemuncher

import (
	"math/rand"
	"strconv"

	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
)

const (
	ID    = "maze-muncher"
	title = "Maze Muncher"
)

// Gameplay constants.
const (
	moveEvery       = 8   // ticks between grid steps
	frightenedTicks = 300 // power pellet duration
	releaseEvery    = 90  // ticks between ghosts leaving the house
	startLives      = 3

	pelletPoints = 10
	powerPoints  = 50
	ghostPoints  = 200
)

var ghostColors = [...]core.Color{core.ColorBrightRed, core.ColorBrightMagenta, core.ColorBrightCyan, core.ColorOrange}

// Dir is a grid heading.
type Dir struct{ DX, DY int }

var (
	dirNone  = Dir{}
	dirUp    = Dir{0, -1}
	dirDown  = Dir{0, 1}
	dirLeft  = Dir{-1, 0}
	dirRight = Dir{1, 0}

	ghostChoices = [...]Dir{dirUp, dirDown, dirLeft, dirRight}
)

// Ghost is one roaming enemy.
type Ghost struct {
	Pos     Point
	Dir     Dir
	InHouse bool
}

// Game implements Maze Muncher.
type Game struct {
	rng *rand.Rand

	player  Point
	dir     Dir
	nextDir Dir
	ghosts  [4]Ghost
	pellets [MazeH][MazeW]pelletKind
	left    int // pellets remaining

	frightened int
	lives      int
	score      int
	tick       int
	gameOver   bool
	paused     bool
	tooSmall   bool
	originX    int
	originY    int
}

// New creates a Maze Muncher game.
func New() *Game { return &Game{} }

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return title }

// Reset starts a new game with a full maze and three lives.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tooSmall = cfg.ScreenW < MazeW*2+2 || cfg.ScreenH < MazeH+2
	g.originX = max((cfg.ScreenW-MazeW*2)/2, 1)
	g.originY = max((cfg.ScreenH-MazeH)/2, 1)

	g.refill()
	g.respawnPlayer()
	g.resetGhosts()
	g.frightened = 0
	g.lives = startLives
	g.score = 0
	g.tick = 0
	g.gameOver = false
	g.paused = false
}

func (g *Game) refill() {
	g.pellets = freshPellets()
	g.left = 0
	for _, row := range g.pellets {
		for _, p := range row {
			if p != noPellet {
				g.left++
			}
		}
	}
}

func (g *Game) respawnPlayer() {
	g.player = playerStart
	g.dir = dirNone
	g.nextDir = dirNone
}

func (g *Game) resetGhosts() {
	for i := range g.ghosts {
		g.ghosts[i] = Ghost{Pos: ghostStarts[i], InHouse: true}
	}
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

	switch {
	case in.Has(core.ActionUp):
		g.nextDir = dirUp
	case in.Has(core.ActionDown):
		g.nextDir = dirDown
	case in.Has(core.ActionLeft):
		g.nextDir = dirLeft
	case in.Has(core.ActionRight):
		g.nextDir = dirRight
	}

	if g.tick%moveEvery == 0 {
		prev := g.player
		g.movePlayer()
		ghostPrev := [4]Point{}
		for i := range g.ghosts {
			ghostPrev[i] = g.ghosts[i].Pos
			g.moveGhost(i)
		}
		g.eat()
		g.collide(prev, ghostPrev)
	} else {
		g.collide(g.player, [4]Point{g.ghosts[0].Pos, g.ghosts[1].Pos, g.ghosts[2].Pos, g.ghosts[3].Pos})
	}

	if g.frightened > 0 {
		g.frightened--
	}
	return core.StepResult{State: g.State()}
}

// movePlayer turns into the buffered direction when that cell is open, then
// advances one cell if the way ahead is clear.
func (g *Game) movePlayer() {
	if g.nextDir != dirNone && !isWall(g.player.X+g.nextDir.DX, g.player.Y+g.nextDir.DY) {
		g.dir = g.nextDir
	}
	nx, ny := g.player.X+g.dir.DX, g.player.Y+g.dir.DY
	if !isWall(nx, ny) {
		g.player = Point{X: wrapX(nx), Y: ny}
	}
}

func (g *Game) moveGhost(i int) {
	gh := &g.ghosts[i]
	if gh.InHouse {
		if g.tick < i*releaseEvery {
			return
		}
		// Walk to the door column, then straight up through the door.
		switch {
		case gh.Pos.X < 13:
			gh.Dir = dirRight
		case gh.Pos.X > 14:
			gh.Dir = dirLeft
		default:
			gh.Dir = dirUp
		}
		gh.Pos = Point{X: gh.Pos.X + gh.Dir.DX, Y: gh.Pos.Y + gh.Dir.DY}
		if gh.Pos.Y <= exitRow {
			gh.InHouse = false
		}
		return
	}

	back := Dir{-gh.Dir.DX, -gh.Dir.DY}
	var options []Dir
	for _, d := range ghostChoices {
		if d == back {
			continue
		}
		if !isWall(gh.Pos.X+d.DX, gh.Pos.Y+d.DY) {
			options = append(options, d)
		}
	}
	switch {
	case len(options) > 0:
		gh.Dir = options[g.rng.Intn(len(options))]
	case !isWall(gh.Pos.X+back.DX, gh.Pos.Y+back.DY):
		gh.Dir = back
	default:
		return
	}
	gh.Pos = Point{X: wrapX(gh.Pos.X + gh.Dir.DX), Y: gh.Pos.Y + gh.Dir.DY}
}

func (g *Game) eat() {
	p := &g.pellets[g.player.Y][g.player.X]
	switch *p {
	case pellet:
		g.score += pelletPoints
	case powerPellet:
		g.score += powerPoints
		g.frightened = frightenedTicks
	default:
		return
	}
	*p = noPellet
	g.left--
	if g.left == 0 {
		g.refill()
	}
}

// collide handles contact between the player and ghosts. Sharing a cell or
// swapping cells in the same step both count.
func (g *Game) collide(playerPrev Point, ghostPrev [4]Point) {
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		same := gh.Pos == g.player
		crossed := gh.Pos == playerPrev && ghostPrev[i] == g.player
		if !same && !crossed {
			continue
		}
		if g.frightened > 0 {
			*gh = Ghost{Pos: ghostStarts[i], InHouse: true}
			g.score += ghostPoints
			continue
		}
		g.lives--
		if g.lives <= 0 {
			g.gameOver = true
			return
		}
		g.respawnPlayer()
		g.resetGhosts()
		return
	}
}

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Render draws the maze.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall || dst.Width() < MazeW*2+2 || dst.Height() < MazeH+2 {
		core.DrawTooSmall(dst, MazeW*2+2, MazeH+2)
		return
	}
	ox, oy := g.originX, g.originY

	for y, row := range layout {
		for x := 0; x < MazeW; x++ {
			sx, sy := ox+x*2, oy+y
			switch row[x] {
			case '#':
				dst.SetColor(sx, sy, '█', core.ColorBlue)
				dst.SetColor(sx+1, sy, '█', core.ColorBlue)
			case '-':
				dst.SetColor(sx, sy, '─', core.ColorMagenta)
				dst.SetColor(sx+1, sy, '─', core.ColorMagenta)
			}
			switch g.pellets[y][x] {
			case pellet:
				dst.SetColor(sx, sy, '·', core.ColorWhite)
			case powerPellet:
				dst.SetColor(sx, sy, '●', core.ColorBrightWhite)
			}
		}
	}

	for i, gh := range g.ghosts {
		c := ghostColors[i]
		if g.frightened > 0 {
			c = core.ColorBrightBlue
		}
		dst.SetColor(ox+gh.Pos.X*2, oy+gh.Pos.Y, 'M', c)
	}
	dst.SetColor(ox+g.player.X*2, oy+g.player.Y, 'C', core.ColorBrightYellow)

	dst.DrawTextColor(ox, oy+MazeH, "Lives: "+strconv.Itoa(g.lives), core.ColorGray)
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
