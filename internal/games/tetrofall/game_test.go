package tetrofall

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/retrovault/internal/core"
)

func newGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 22, TickRate: 60})
	return g
}

func fillRow(g *Game, y int, gapX int) {
	for x := 0; x < BoardW; x++ {
		if x != gapX {
			g.board[y][x] = KindO
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1, g2 := newGame(99), newGame(99)
	for i := 0; i < 2000; i++ {
		in := core.NewInputFrame()
		switch i % 90 {
		case 10:
			in.Set(core.ActionLeft)
		case 30:
			in.Set(core.ActionUp)
		case 60:
			in.Set(core.ActionJump)
		}
		g1.Step(in)
		g2.Step(in)
	}
	if diff := cmp.Diff(g1.Snapshot(), g2.Snapshot()); diff != "" {
		t.Errorf("snapshots differ:\n%s", diff)
	}
}

func TestLineClearScores(t *testing.T) {
	tests := []struct {
		rows int
		want int
	}{
		{1, 40},
		{2, 100},
		{3, 300},
		{4, 1200},
	}
	for _, tt := range tests {
		g := newGame(1)
		for i := 0; i < tt.rows; i++ {
			fillRow(g, BoardH-1-i, -1)
		}
		g.board[BoardH-1-tt.rows][0] = KindT // survives and falls
		g.sweep()
		if g.score != tt.want {
			t.Errorf("%d rows: score %d, want %d", tt.rows, g.score, tt.want)
		}
		if g.lines != tt.rows {
			t.Errorf("%d rows: lines %d", tt.rows, g.lines)
		}
		if g.board[BoardH-1][0] != KindT {
			t.Errorf("%d rows: remaining cell did not fall to the bottom", tt.rows)
		}
	}
}

func TestHardDropCompletesLine(t *testing.T) {
	g := newGame(1)
	// Leave a one-wide gap in column 5 and drop a vertical I into it.
	for y := BoardH - 4; y < BoardH; y++ {
		fillRow(g, y, 5)
	}
	g.current = piece{kind: KindI, shape: cloneShape(shapes[KindI]), x: 4, y: 0}

	g.Step(core.Frame(core.ActionJump))
	if g.score != linePoints[4] {
		t.Fatalf("score = %d, want %d", g.score, linePoints[4])
	}
	if g.lines != 4 {
		t.Fatalf("lines = %d, want 4", g.lines)
	}
}

func TestRotateKicksOffWall(t *testing.T) {
	g := newGame(1)
	// Vertical I hugging the right wall; rotating needs a kick to the left.
	g.current = piece{kind: KindI, shape: cloneShape(shapes[KindI]), x: BoardW - 2, y: 5}
	g.rotate()
	if g.collides(g.current, 0, 0) {
		t.Fatal("rotated piece overlaps the wall")
	}
	if g.current.shape[1][0] != 1 || g.current.shape[1][3] != 1 {
		t.Fatalf("expected horizontal I, got %v", g.current.shape)
	}
	if g.current.x >= BoardW-2 {
		t.Fatalf("expected a kick to the left, x = %d", g.current.x)
	}
}

func TestRotateBlockedStaysPut(t *testing.T) {
	g := newGame(1)
	for y := 0; y < BoardH; y++ {
		for x := 0; x < BoardW; x++ {
			if x < 4 || x > 6 {
				g.board[y][x] = KindO
			}
		}
	}
	g.current = piece{kind: KindI, shape: cloneShape(shapes[KindI]), x: 4, y: 5}
	before := g.current
	g.rotate()
	if diff := cmp.Diff(before.shape, g.current.shape); diff != "" {
		t.Fatalf("blocked rotation changed the piece:\n%s", diff)
	}
}

func TestSpawnCollisionEndsGame(t *testing.T) {
	g := newGame(1)
	for y := 0; y < 4; y++ {
		fillRow(g, y, -1)
	}
	g.spawn()
	if !g.State().GameOver {
		t.Fatal("expected game over when the spawn area is blocked")
	}
}

func TestGravity(t *testing.T) {
	g := newGame(1)
	y := g.current.y
	for i := 0; i < 59; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.current.y != y {
		t.Fatal("piece fell before one second")
	}
	g.Step(core.NewInputFrame())
	if g.current.y != y+1 {
		t.Fatalf("piece did not fall after one second: y=%d", g.current.y)
	}
}

func TestSoftDrop(t *testing.T) {
	g := newGame(1)
	y := g.current.y
	g.Step(core.Frame(core.ActionDown))
	if g.current.y != y+1 {
		t.Fatalf("soft drop did not move the piece: y=%d", g.current.y)
	}
}
