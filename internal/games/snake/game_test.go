package snake

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/retrovault/internal/core"
)

func newGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 22, TickRate: 60})
	return g
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(12345)
	g2 := newGame(12345)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		switch i {
		case 20:
			input.Set(core.ActionDown)
		case 80:
			input.Set(core.ActionRight)
		case 150:
			input.Set(core.ActionUp)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if diff := cmp.Diff(g1.Snapshot(), g2.Snapshot()); diff != "" {
		t.Errorf("snapshots differ (-g1 +g2):\n%s", diff)
	}
}

func TestStartsAsOneSegment(t *testing.T) {
	g := newGame(1)
	snap := g.Snapshot()
	if snap.SnakeLen != 1 || snap.Score != 0 {
		t.Fatalf("expected a single segment and score 0, got %+v", snap)
	}
	if snap.Head != (Point{X: 10, Y: 10}) || snap.Dir != DirRight {
		t.Fatalf("unexpected start %+v", snap)
	}
}

func TestGrowsByOnePerFood(t *testing.T) {
	g := newGame(7)

	for eaten := 1; eaten <= 3; eaten++ {
		g.food = Point{X: g.snake[0].X + 1, Y: g.snake[0].Y}
		g.move()
		if got := len(g.snake); got != eaten+1 {
			t.Fatalf("after %d food, length = %d, want %d", eaten, got, eaten+1)
		}
		if got := g.State().Score; got != eaten {
			t.Fatalf("score = %d, want %d", got, eaten)
		}
		if g.occupied(g.food) {
			t.Fatalf("food spawned on the snake at %+v", g.food)
		}
	}

	// Moving without food keeps the length.
	g.food = Point{X: 0, Y: 0}
	g.move()
	if len(g.snake) != 4 {
		t.Fatalf("length changed without food: %d", len(g.snake))
	}
}

func TestSpeedsUpPerFood(t *testing.T) {
	g := newGame(3)
	g.food = Point{X: 11, Y: 10}
	g.move()
	if want := startInterval * speedUp; g.interval != want {
		t.Fatalf("interval = %v, want %v", g.interval, want)
	}

	g.interval = minInterval
	g.food = Point{X: g.snake[0].X + 1, Y: g.snake[0].Y}
	g.move()
	if g.interval != minInterval {
		t.Fatalf("interval dropped below minimum: %v", g.interval)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newGame(42)
	g.snake = []Point{{X: 10, Y: 10}, {X: 9, Y: 10}}

	g.Step(core.Frame(core.ActionLeft))
	if g.nextDir != DirRight {
		t.Fatalf("reversal accepted: next direction %v", g.nextDir)
	}

	g.Step(core.Frame(core.ActionUp))
	if g.nextDir != DirUp {
		t.Fatalf("expected up, got %v", g.nextDir)
	}
}

func TestWallEndsGame(t *testing.T) {
	g := newGame(1)
	g.snake = []Point{{X: GridW - 1, Y: 5}}
	g.move()
	if !g.State().GameOver {
		t.Fatal("expected game over on wall hit")
	}

	// Stepping after game over changes nothing.
	before := g.Snapshot()
	g.Step(core.Frame(core.ActionUp))
	if diff := cmp.Diff(before, g.Snapshot()); diff != "" {
		t.Errorf("state changed after game over:\n%s", diff)
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := newGame(1)
	// A loop whose head turns into its own tail.
	g.snake = []Point{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {4, 6}, {4, 5}}
	g.direction = DirLeft
	g.nextDir = DirLeft
	g.move()
	if !g.State().GameOver {
		t.Fatal("expected game over on self hit")
	}
}

func TestMovesOnInterval(t *testing.T) {
	g := newGame(1)
	// 200ms at 60 ticks/s is twelve ticks.
	for i := 0; i < 11; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.snake[0].X != 10 {
		t.Fatalf("moved too early: %+v", g.snake[0])
	}
	g.Step(core.NewInputFrame())
	if g.snake[0].X != 11 {
		t.Fatalf("expected a move on tick 12, head at %+v", g.snake[0])
	}
}

func TestPauseFreezes(t *testing.T) {
	g := newGame(1)
	g.Step(core.Frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.snake[0].X != 10 {
		t.Fatal("snake moved while paused")
	}
}

func TestRender(t *testing.T) {
	g := newGame(1)
	s := core.NewScreen(80, 22)
	g.Render(s)
	if !strings.Contains(s.String(), "█") {
		t.Error("expected snake cells in render")
	}

	small := core.NewScreen(40, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Error("expected too-small notice")
	}
}
