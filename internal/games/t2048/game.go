// Package t2048 implements 2048: slide numbered tiles on a 4x4 board and
// merge equal pairs until a 2048 tile appears.
package t2048

import (
	"math/rand"

	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
)

const (
	ID = "2048"

	// WinTile ends the run as a win once it appears on the board.
	WinTile = 2048

	fourChance = 0.10
)

// Phase names where a run is, for snapshots and tests.
type Phase string

const (
	StatePlaying     Phase = "playing"
	StateGameOver    Phase = "game_over"
	StateWin         Phase = "win"
	StatePausedSmall Phase = "paused_small_window"
)

// Snapshot is the comparable state of a run.
type Snapshot struct {
	Tick    uint64
	Score   int
	Board   Board
	MaxTile int
	State   Phase
}

type Game struct {
	rng   *rand.Rand
	tick  uint64
	score int
	board Board

	screenW, screenH int

	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

func New() *Game { return &Game{} }

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

func (g *Game) ID() string    { return ID }
func (g *Game) Title() string { return "2048" }

// Reset empties the board and places two starting tiles.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	*g = Game{
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		screenW: cfg.ScreenW,
		screenH: cfg.ScreenH,
	}
	g.tooSmall = g.screenW < boardW || g.screenH < boardH+2
	g.spawn()
	g.spawn()
}

// spawn drops a 2 (or, rarely, a 4) into a random empty cell.
func (g *Game) spawn() {
	free := EmptyCells(g.board)
	if len(free) == 0 {
		return
	}
	c := free[g.rng.Intn(len(free))]
	v := 2
	if g.rng.Float64() < fourChance {
		v = 4
	}
	g.board[c.Y][c.X] = v
}

var moves = []struct {
	action core.Action
	dir    Direction
}{
	{core.ActionUp, DirUp},
	{core.ActionDown, DirDown},
	{core.ActionLeft, DirLeft},
	{core.ActionRight, DirRight},
}

// Step applies at most one move per tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}
	g.tick++
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	core.TogglePause(in, &g.paused)
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	for _, m := range moves {
		if in.Has(m.action) {
			g.move(m.dir)
			break
		}
	}
	return core.StepResult{State: g.State()}
}

// move slides the board; a move that changes nothing spawns nothing.
func (g *Game) move(dir Direction) {
	next, gained, changed := Slide(g.board, dir)
	if !changed {
		return
	}
	g.board = next
	g.score += gained
	g.spawn()

	if MaxTile(g.board) >= WinTile {
		g.won = true
	} else if IsGameOver(g.board) {
		g.gameOver = true
	}
}

// Board returns a copy of the board.
func (g *Game) Board() Board { return g.board }

func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Paused:   g.paused,
	}
}

func (g *Game) Snapshot() Snapshot {
	phase := StatePlaying
	switch {
	case g.tooSmall:
		phase = StatePausedSmall
	case g.won:
		phase = StateWin
	case g.gameOver:
		phase = StateGameOver
	}
	return Snapshot{
		Tick:    g.tick,
		Score:   g.score,
		Board:   g.board,
		MaxTile: MaxTile(g.board),
		State:   phase,
	}
}
