// Package fourinarow implements Four in a Row against a CPU that plays a
// random open column.
package fourinarow

import (
	"math/rand"

	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
)

const (
	ID    = "four-in-a-row"
	title = "Four in a Row"

	// cpuDelay is how many ticks the CPU waits before answering.
	cpuDelay = 30

	cellW  = 4
	boardW = Cols*cellW + 2
	boardH = Rows + 2
	needH  = boardH + 3
)

// Game implements Four in a Row.
type Game struct {
	rng     *rand.Rand
	board   Board
	cursor  int
	cpuTurn bool
	wait    int
	outcome Outcome

	score    int
	tick     uint64
	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a Four in a Row game.
func New() *Game { return &Game{} }

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return title }

// Reset clears the board; the player moves first.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.board = Board{}
	g.cursor = Cols / 2
	g.cpuTurn = false
	g.wait = 0
	g.outcome = Undecided
	g.score = 0
	g.tick = 0
	g.gameOver = false
	g.paused = false
	g.tooSmall = cfg.ScreenW < boardW || cfg.ScreenH < needH
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

	if g.cpuTurn {
		g.wait++
		if g.wait >= cpuDelay {
			g.cpuMove()
		}
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionLeft):
		g.cursor = (g.cursor + Cols - 1) % Cols
	case in.Has(core.ActionRight):
		g.cursor = (g.cursor + 1) % Cols
	}
	if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) || in.Has(core.ActionDown) {
		if g.board.Drop(g.cursor, Player) >= 0 {
			g.settle()
			if !g.gameOver {
				g.cpuTurn = true
				g.wait = 0
			}
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) cpuMove() {
	cols := g.board.OpenColumns()
	g.cpuTurn = false
	if len(cols) == 0 {
		return
	}
	g.board.Drop(cols[g.rng.Intn(len(cols))], CPU)
	g.settle()
}

func (g *Game) settle() {
	g.outcome = g.board.Check()
	if g.outcome == Undecided {
		return
	}
	g.gameOver = true
	if g.outcome == PlayerWins {
		g.score = 1
	}
}

// Outcome returns how the round ended, or Undecided while it runs.
func (g *Game) Outcome() Outcome { return g.outcome }

// Render draws the drop indicator, the board and a turn line.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall || dst.Width() < boardW || dst.Height() < needH {
		core.DrawTooSmall(dst, boardW, needH)
		return
	}
	ox := (dst.Width() - boardW) / 2
	oy := (dst.Height() - needH) / 2

	if !g.cpuTurn && !g.gameOver {
		dst.SetColor(ox+1+g.cursor*cellW+1, oy, '▼', core.ColorBrightYellow)
	}
	dst.DrawBoxColor(core.NewRect(ox, oy+1, boardW, boardH), core.ColorBlue)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			ch, col := '○', core.ColorGray
			switch g.board[r][c] {
			case Player:
				ch, col = '●', core.ColorBrightYellow
			case CPU:
				ch, col = '●', core.ColorBrightRed
			}
			dst.SetColor(ox+1+c*cellW+1, oy+2+r, ch, col)
		}
	}

	var status string
	switch {
	case g.outcome == PlayerWins:
		status = "You win!"
	case g.outcome == CPUWins:
		status = "CPU wins"
	case g.outcome == Tie:
		status = "Tie"
	case g.cpuTurn:
		status = "CPU is thinking..."
	default:
		status = "Your move"
	}
	dst.DrawTextColor(ox, oy+boardH+2, status, core.ColorGray)

	if g.paused {
		core.DrawPaused(dst)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.outcome == PlayerWins,
		Paused:   g.paused,
	}
}
