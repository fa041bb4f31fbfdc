package minefield

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/retrovault/internal/core"
)

func newGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3})
	return g
}

func reveal(g *Game) core.StepResult {
	return g.Step(core.Frame(core.ActionConfirm))
}

func TestFirstRevealIsNeverAMine(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := New()
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
		res := reveal(g)
		require.False(t, res.State.GameOver, "seed %d", seed)
		assert.False(t, g.board[g.cursorY][g.cursorX].Mine)
	}
}

func TestMinesPlacedOnFirstReveal(t *testing.T) {
	g := newGame(t)
	mines := func() int {
		n := 0
		for y := range g.board {
			for x := range g.board[y] {
				if g.board[y][x].Mine {
					n++
				}
			}
		}
		return n
	}
	assert.Equal(t, 0, mines())
	reveal(g)
	assert.Equal(t, Mines, mines())
	assert.True(t, g.started)
}

func TestFloodRevealOpensZeroRegion(t *testing.T) {
	var b Board
	b[0][0].Mine = true
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			b[y][x].Neighbors = b.countAround(x, y)
		}
	}
	assert.False(t, b.Reveal(Size-1, Size-1))
	assert.Equal(t, Size*Size-1, b.OpenCount())
	assert.False(t, b[0][0].Open)
	assert.True(t, b[1][1].Open)
	assert.Equal(t, 1, b[1][1].Neighbors)
}

func TestFloodStopsAtNumbers(t *testing.T) {
	var b Board
	b[5][5].Mine = true
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			b[y][x].Neighbors = b.countAround(x, y)
		}
	}
	b.Reveal(4, 4)
	assert.Equal(t, 1, b.OpenCount(), "numbered cell opens alone")
}

func TestFlagBlocksReveal(t *testing.T) {
	g := newGame(t)
	g.Step(core.Frame(core.ActionSecondary))
	require.True(t, g.board[g.cursorY][g.cursorX].Flagged)

	reveal(g)
	assert.False(t, g.started, "flagged cell must not be revealed")
	assert.False(t, g.board[g.cursorY][g.cursorX].Open)

	g.Step(core.Frame(core.ActionSecondary))
	assert.False(t, g.board[g.cursorY][g.cursorX].Flagged)
}

func TestFlagIgnoredOnOpenCell(t *testing.T) {
	g := newGame(t)
	reveal(g)
	g.Step(core.Frame(core.ActionSecondary))
	assert.False(t, g.board[g.cursorY][g.cursorX].Flagged)
}

func TestRevealMineEndsWithZero(t *testing.T) {
	g := newGame(t)
	reveal(g)
	for y := range g.board {
		for x := range g.board[y] {
			if g.board[y][x].Mine {
				g.cursorX, g.cursorY = x, y
			}
		}
	}
	res := reveal(g)
	assert.True(t, res.State.GameOver)
	assert.False(t, res.State.Won)
	assert.Equal(t, 0, res.State.Score)
}

func TestClearingFieldWins(t *testing.T) {
	g := newGame(t)
	reveal(g)
	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
	}
	var res core.StepResult
	for y := range g.board {
		for x := range g.board[y] {
			if !g.board[y][x].Mine && !g.board[y][x].Open {
				g.cursorX, g.cursorY = x, y
				res = reveal(g)
			}
		}
	}
	require.True(t, res.State.GameOver)
	assert.True(t, res.State.Won)
	assert.GreaterOrEqual(t, g.Seconds(), 2)
	assert.Equal(t, maxWinScore-g.Seconds(), res.State.Score)
}

func TestWinScoreHasFloor(t *testing.T) {
	g := newGame(t)
	reveal(g)
	g.elapsedMs = 5000 * 1000
	for y := range g.board {
		for x := range g.board[y] {
			if !g.board[y][x].Mine {
				g.board.Reveal(x, y)
			}
		}
	}
	g.board[g.cursorY][g.cursorX].Open = false
	res := reveal(g)
	require.True(t, res.State.Won)
	assert.Equal(t, 1, res.State.Score)
}

func TestCursorWraps(t *testing.T) {
	g := newGame(t)
	g.cursorX, g.cursorY = 0, 0
	g.Step(core.Frame(core.ActionLeft))
	g.Step(core.Frame(core.ActionUp))
	assert.Equal(t, Size-1, g.cursorX)
	assert.Equal(t, Size-1, g.cursorY)
}

func TestPlaceMinesAvoidsSafeCell(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 100; i++ {
		var b Board
		b.PlaceMines(rng, i%Size, i/Size%Size)
		assert.False(t, b[i/Size%Size][i%Size].Mine)
	}
}

func TestAfterGameOverIgnoresInput(t *testing.T) {
	g := newGame(t)
	g.gameOver = true
	before := g.Snapshot()
	g.Step(core.Frame(core.ActionConfirm))
	g.Step(core.Frame(core.ActionRight))
	if diff := cmp.Diff(before, g.Snapshot()); diff != "" {
		t.Errorf("state changed after game over:\n%s", diff)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := []core.InputFrame{
		core.Frame(core.ActionConfirm),
		core.Frame(core.ActionRight),
		core.Frame(core.ActionRight),
		core.Frame(core.ActionConfirm),
		core.Frame(core.ActionDown),
		core.Frame(core.ActionSecondary),
		core.Frame(core.ActionUp),
		core.Frame(core.ActionUp),
		core.Frame(core.ActionConfirm),
	}
	run := func() Snapshot {
		g := newGame(t)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}
	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("runs differ:\n%s", diff)
	}
}

func TestPauseFreezesTimer(t *testing.T) {
	g := newGame(t)
	reveal(g)
	g.Step(core.Frame(core.ActionPause))
	before := g.elapsedMs
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, before, g.elapsedMs)
	assert.True(t, g.State().Paused)
}

func TestRenderShowsCursorAndStatus(t *testing.T) {
	g := newGame(t)
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()
	assert.Contains(t, out, "[■]")
	assert.Contains(t, out, "Mines: 20")
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})
	scr := core.NewScreen(20, 10)
	g.Render(scr)
	assert.True(t, strings.Contains(scr.String(), "too small"))
}
