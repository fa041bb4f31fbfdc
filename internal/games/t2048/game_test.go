package t2048

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/retrovault/internal/core"
)

func TestCompact(t *testing.T) {
	tests := []struct {
		name   string
		in     [4]int
		want   [4]int
		gained int
	}{
		{"simple merge", [4]int{2, 2, 0, 0}, [4]int{4, 0, 0, 0}, 4},
		{"merge with trailing tile", [4]int{2, 2, 2, 0}, [4]int{4, 2, 0, 0}, 4},
		{"double merge", [4]int{2, 2, 2, 2}, [4]int{4, 4, 0, 0}, 8},
		{"one merge per tile", [4]int{4, 4, 4, 4}, [4]int{8, 8, 0, 0}, 16},
		{"merged tile does not merge again", [4]int{2, 2, 4, 0}, [4]int{4, 4, 0, 0}, 4},
		{"gaps close before merging", [4]int{2, 0, 0, 2}, [4]int{4, 0, 0, 0}, 4},
		{"no merge possible", [4]int{2, 4, 8, 16}, [4]int{2, 4, 8, 16}, 0},
		{"single tile", [4]int{0, 4, 0, 0}, [4]int{4, 0, 0, 0}, 0},
		{"empty", [4]int{}, [4]int{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gained := compact(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.gained, gained)
		})
	}
}

func TestSlide(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}
	tests := []struct {
		dir    Direction
		want   Board
		gained int
	}{
		{DirLeft, Board{{4, 0, 0, 0}, {8, 0, 0, 0}, {4, 4, 0, 0}, {2, 0, 0, 0}}, 20},
		{DirRight, Board{{0, 0, 0, 4}, {0, 0, 0, 8}, {0, 0, 4, 4}, {0, 0, 0, 2}}, 20},
		{DirUp, Board{{2, 4, 4, 4}, {4, 0, 2, 0}, {2, 0, 0, 0}, {0, 0, 0, 0}}, 4 + 4},
		{DirDown, Board{{0, 0, 0, 0}, {2, 0, 0, 0}, {4, 0, 4, 0}, {2, 4, 2, 4}}, 4 + 4},
	}
	for _, tt := range tests {
		got, gained, changed := Slide(board, tt.dir)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("dir %d (-want +got):\n%s", tt.dir, diff)
		}
		assert.Equal(t, tt.gained, gained, "dir %d", tt.dir)
		assert.True(t, changed, "dir %d", tt.dir)
	}
}

func TestSlideWithoutMovementReportsNoChange(t *testing.T) {
	board := Board{{4, 2, 0, 0}}
	got, gained, changed := Slide(board, DirLeft)
	assert.False(t, changed)
	assert.Zero(t, gained)
	assert.Equal(t, board, got)

	_, _, changed = Slide(board, Direction(9))
	assert.False(t, changed)
}

func TestGameOver(t *testing.T) {
	full := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}
	assert.True(t, IsGameOver(full))

	withMerge := full
	withMerge[0][1] = 2
	assert.False(t, IsGameOver(withMerge))

	withGap := full
	withGap[2][2] = 0
	assert.False(t, IsGameOver(withGap))
}

func TestDeterministicSpawn(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}
	g1, g2 := New(), New()
	g1.Reset(cfg)
	g2.Reset(cfg)
	assert.Equal(t, g1.board, g2.board)
}

func TestBoardHelpers(t *testing.T) {
	board := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}
	assert.Len(t, EmptyCells(board), 8)
	assert.Equal(t, Cell{1, 0}, EmptyCells(board)[0])
	assert.Equal(t, 2048, MaxTile(board))
}

func newGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func TestResetSpawnsTwoTiles(t *testing.T) {
	g := newGame(7)
	if n := BoardSize*BoardSize - len(EmptyCells(g.board)); n != 2 {
		t.Fatalf("expected 2 starting tiles, got %d", n)
	}
	for _, row := range g.board {
		for _, v := range row {
			if v != 0 && v != 2 && v != 4 {
				t.Errorf("unexpected starting tile %d", v)
			}
		}
	}
}

func TestDeterministicPlay(t *testing.T) {
	dirs := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
	run := func() Snapshot {
		g := newGame(2024)
		for i := 0; i < 200; i++ {
			g.Step(core.Frame(dirs[i%len(dirs)]))
		}
		return g.Snapshot()
	}
	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("runs differ:\n%s", diff)
	}
}

func TestMoveScoresAndSpawns(t *testing.T) {
	g := newGame(1)
	g.board = Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g.Step(core.Frame(core.ActionLeft))

	if g.score != 4 {
		t.Errorf("score = %d, want 4", g.score)
	}
	if g.board[0][0] != 4 {
		t.Errorf("expected merged 4 at origin, got %d", g.board[0][0])
	}
	if n := BoardSize*BoardSize - len(EmptyCells(g.board)); n != 2 {
		t.Errorf("expected merged tile plus one spawn, got %d tiles", n)
	}
}

func TestBlockedMoveSpawnsNothing(t *testing.T) {
	g := newGame(1)
	g.board = Board{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	before := g.board
	g.Step(core.Frame(core.ActionLeft))
	if g.board != before {
		t.Errorf("blocked move changed the board:\n%v", g.board)
	}
}

func TestReaching2048Wins(t *testing.T) {
	g := newGame(1)
	g.board = Board{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	state := g.Step(core.Frame(core.ActionLeft)).State
	if !state.GameOver || !state.Won {
		t.Fatalf("expected a win, got %+v", state)
	}
	if state.Score != 2048 {
		t.Errorf("score = %d, want 2048", state.Score)
	}
	if g.Snapshot().State != StateWin {
		t.Errorf("snapshot state = %s, want win", g.Snapshot().State)
	}
}

func TestNoMovesEndsGame(t *testing.T) {
	g := newGame(1)
	g.board = Board{
		{0, 2, 4, 8},
		{16, 32, 64, 128},
		{2, 4, 8, 16},
		{32, 64, 128, 256},
	}
	// Sliding left fills the last gap with a 2 or 4 and leaves no merges.
	state := g.Step(core.Frame(core.ActionLeft)).State
	if !state.GameOver {
		t.Fatalf("expected game over, board:\n%v", g.board)
	}
	if state.Won {
		t.Error("a stuck board is not a win")
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("snapshot state = %s, want game_over", g.Snapshot().State)
	}
}

func TestStepsAfterGameOverDoNothing(t *testing.T) {
	g := newGame(1)
	g.gameOver = true
	before := g.Snapshot()
	g.Step(core.Frame(core.ActionLeft))
	if diff := cmp.Diff(before, g.Snapshot()); diff != "" {
		t.Errorf("state changed after game over:\n%s", diff)
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, Seed: 1})
	if g.Snapshot().State != StatePausedSmall {
		t.Fatalf("expected small-window state, got %s", g.Snapshot().State)
	}
	before := g.board
	g.Step(core.Frame(core.ActionLeft))
	if g.board != before {
		t.Error("moves should be ignored while the window is too small")
	}
}

func TestRenderShowsTiles(t *testing.T) {
	g := newGame(1)
	g.board = Board{{2048, 0, 0, 0}}
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	found := false
	for y := 0; y < screen.Height(); y++ {
		if strings.Contains(screen.Row(y), "2048") {
			found = true
		}
	}
	if !found {
		t.Error("expected the 2048 tile to be drawn")
	}
}
