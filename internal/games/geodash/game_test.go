package geodash

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/retrovault/internal/config"
	"github.com/vovakirdan/retrovault/internal/core"
)

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(config.ResetOverrides)
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 500)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%37 == 0 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() Snapshot {
		g := newGame(t, 99)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("runs differ:\n%s", diff)
	}
}

func TestStartsGrounded(t *testing.T) {
	g := newGame(t, 1)
	if !g.isGrounded {
		t.Fatal("player should start on the floor")
	}
	if want := WorldH - g.cfg.Ground - g.cfg.Player.Height; g.playerY != want {
		t.Errorf("playerY = %f, want %f", g.playerY, want)
	}
	if n := len(g.obstacles.Spikes()); n != g.cfg.Obstacles.Count {
		t.Errorf("expected %d spikes, got %d", g.cfg.Obstacles.Count, n)
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	g := newGame(t, 1)
	g.Step(core.Frame(core.ActionJump))
	if g.isGrounded || g.playerVel >= 0 {
		t.Fatalf("expected an upward jump, vel=%f grounded=%v", g.playerVel, g.isGrounded)
	}
	vel := g.playerVel
	g.Step(core.Frame(core.ActionJump))
	if g.playerVel <= vel {
		t.Errorf("mid-air jump should not add impulse: %f then %f", vel, g.playerVel)
	}
}

func TestLandsBackOnFloor(t *testing.T) {
	g := newGame(t, 1)
	rest := g.playerY
	g.Step(core.Frame(core.ActionJump))
	for i := 0; i < 100 && !g.isGrounded; i++ {
		g.obstacles.spikes = nil
		g.Step(core.NewInputFrame())
	}
	if !g.isGrounded || g.playerY != rest {
		t.Errorf("expected to land at %f, got %f (grounded=%v)", rest, g.playerY, g.isGrounded)
	}
}

func TestPassingSpikeScoresAndSpeedsUp(t *testing.T) {
	g := newGame(t, 1)
	speed := g.Speed()
	spikes := g.obstacles.Spikes()
	spikes[0].X = -spikes[0].Width

	g.Step(core.NewInputFrame())

	if g.score != 1 {
		t.Fatalf("expected score 1, got %d", g.score)
	}
	if g.Speed() <= speed {
		t.Errorf("speed should rise after a pass: %f -> %f", speed, g.Speed())
	}
	if spikes[0].X < WorldW {
		t.Errorf("recycled spike should re-enter from the right, x=%f", spikes[0].X)
	}
}

func TestSpikeCollisionEndsGame(t *testing.T) {
	g := newGame(t, 1)
	spikes := g.obstacles.Spikes()
	spikes[0].X = g.cfg.Player.X + 5

	if !g.Step(core.NewInputFrame()).State.GameOver {
		t.Fatal("expected collision to end the game")
	}
	score := g.score
	g.Step(core.Frame(core.ActionJump))
	if g.score != score || !g.isGrounded {
		t.Error("steps after game over should do nothing")
	}
}

func TestRecycledSpikesKeepSpacing(t *testing.T) {
	g := newGame(t, 5)
	for i := 0; i < 3000; i++ {
		g.obstacles.Update(5)
		spikes := g.obstacles.Spikes()
		for a := range spikes {
			for b := range spikes {
				if a == b {
					continue
				}
				if d := spikes[b].X - spikes[a].X; d > 0 && d < g.cfg.Obstacles.Spacing-1e-6 {
					t.Fatalf("spikes %f apart", d)
				}
			}
		}
	}
}

func TestPauseFreezesRun(t *testing.T) {
	g := newGame(t, 1)
	g.Step(core.Frame(core.ActionPause))
	before := g.Snapshot()
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if diff := cmp.Diff(before, g.Snapshot()); diff != "" {
		t.Errorf("state changed while paused:\n%s", diff)
	}
}

func TestRenderDrawsPlayer(t *testing.T) {
	g := newGame(t, 1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	x, y := g.view.Col(g.cfg.Player.X), g.view.Row(g.playerY)
	if got := screen.Get(x, y); got != PlayerChar {
		t.Errorf("expected player at (%d,%d), got %q", x, y, got)
	}
}

func TestDefaultSpeedFollowsObstacleCount(t *testing.T) {
	g := newGame(t, 1)
	for _, tt := range []struct {
		score int
		want  float64
	}{
		{0, 5},
		{10, 6},
		{35, 8.5},
	} {
		g.score = tt.score
		g.tickCount = 10000
		if got := g.Speed(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Speed() at score %d = %f, want %f", tt.score, got, tt.want)
		}
	}
}
