package gemmatch

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/retrovault/internal/core"
)

func newGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 8})
	return g
}

// patterned returns a board with no runs: colors step by 2 along a row and
// by 1 down a column.
func patterned() Board {
	var b Board
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			b[r][c] = (r + 2*c) % Colors
		}
	}
	return b
}

// withMove plants a swap of (0,2) and (1,2) that completes row 0.
func withMove() Board {
	b := patterned()
	b[0][1] = 0
	b[1][2] = 0
	return b
}

func TestNewBoardHasNoRuns(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		b := NewBoard(rng)
		if _, n := b.Matches(); n != 0 {
			t.Fatalf("board %d starts with %d matched gems", i, n)
		}
	}
}

func TestMatches(t *testing.T) {
	b := patterned()
	if _, n := b.Matches(); n != 0 {
		t.Fatalf("patterned board has %d matches", n)
	}
	b[3][0], b[3][1], b[3][2] = 5, 5, 5
	b[4][1], b[5][1] = 5, 5
	m, n := b.Matches()
	if n != 5 {
		t.Errorf("matched %d gems, want 5 (shared corner counted once)", n)
	}
	if !m[3][1] || !m[5][1] || m[2][1] {
		t.Errorf("unexpected match mask: %v", m)
	}
}

func TestCollapseDropsGems(t *testing.T) {
	b := patterned()
	above := b[4][3]
	b[5][3] = None
	b.Collapse(rand.New(rand.NewSource(1)))
	if b[5][3] != above {
		t.Errorf("gem above the gap did not fall: got %d want %d", b[5][3], above)
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == None {
				t.Fatalf("slot %d,%d left empty", r, c)
			}
		}
	}
}

func TestResolveLeavesStableBoard(t *testing.T) {
	b := withMove()
	b.Swap(0, 2, 1, 2)
	cleared := b.Resolve(rand.New(rand.NewSource(2)))
	if cleared < 4 {
		t.Errorf("cleared %d, want at least 4", cleared)
	}
	if _, n := b.Matches(); n != 0 {
		t.Errorf("board still has %d matched gems", n)
	}
}

func TestSwapThroughCursor(t *testing.T) {
	g := newGame(t)
	g.board = withMove()
	g.cursorR, g.cursorC = 0, 2
	g.Step(core.Frame(core.ActionConfirm))
	if !g.selected {
		t.Fatal("expected a selection")
	}
	g.Step(core.Frame(core.ActionDown))
	res := g.Step(core.Frame(core.ActionConfirm))

	if g.MovesLeft() != MoveBudget-1 {
		t.Errorf("moves left = %d, want %d", g.MovesLeft(), MoveBudget-1)
	}
	if res.State.Score < 4*PointsPerGem {
		t.Errorf("score = %d, want at least %d", res.State.Score, 4*PointsPerGem)
	}
	if g.selected {
		t.Error("selection should clear after a swap")
	}
}

func TestSwapWithoutMatchReverts(t *testing.T) {
	g := newGame(t)
	g.board = withMove()
	before := g.board
	if g.trySwap(7, 6, 7, 7) {
		t.Fatal("swap without a match should fail")
	}
	if diff := cmp.Diff(before, g.board); diff != "" {
		t.Errorf("board changed:\n%s", diff)
	}
	if g.MovesLeft() != MoveBudget {
		t.Errorf("a reverted swap cost a move")
	}
}

func TestPickDistantMovesSelection(t *testing.T) {
	g := newGame(t)
	g.pick(0, 0)
	g.pick(5, 5)
	if !g.selected || g.selR != 5 || g.selC != 5 {
		t.Errorf("selection = %v %d,%d, want 5,5", g.selected, g.selR, g.selC)
	}
	g.pick(5, 5)
	if g.selected {
		t.Error("picking the selection again should clear it")
	}
}

func TestBudgetEndsGame(t *testing.T) {
	g := newGame(t)
	g.board = withMove()
	g.movesLeft = 1
	if !g.trySwap(0, 2, 1, 2) {
		t.Fatal("expected the swap to match")
	}
	if !g.State().GameOver {
		t.Error("expected game over when the budget runs out")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := []core.Action{
		core.ActionConfirm, core.ActionRight, core.ActionConfirm,
		core.ActionDown, core.ActionConfirm, core.ActionLeft, core.ActionConfirm,
		core.ActionUp, core.ActionConfirm, core.ActionUp, core.ActionConfirm,
	}
	run := func() Snapshot {
		g := newGame(t)
		for _, a := range inputs {
			g.Step(core.Frame(a))
		}
		return g.Snapshot()
	}
	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("runs differ:\n%s", diff)
	}
}

func TestRender(t *testing.T) {
	g := newGame(t)
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()
	if !strings.Contains(out, "Moves: 30") {
		t.Errorf("missing move counter:\n%s", out)
	}
	if !strings.Contains(out, "[") {
		t.Errorf("missing cursor:\n%s", out)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 60, Seed: 1})
	scr := core.NewScreen(20, 8)
	g.Render(scr)
	if !strings.Contains(scr.String(), "too small") {
		t.Errorf("expected too small notice:\n%s", scr.String())
	}
}
