package endlessroad

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

// steer keeps the player centered on the road under it.
func steer(g *Game) core.InputFrame {
	p := g.playerRect()
	cx, cy := p.Center()
	want := g.road.CenterAt(cy)
	switch {
	case cx < want-g.cfg.Player.Step:
		return core.Frame(core.ActionRight)
	case cx > want+g.cfg.Player.Step:
		return core.Frame(core.ActionLeft)
	}
	return core.NewInputFrame()
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newGame(t, 99)
		for i := 0; i < 500; i++ {
			if g.Step(steer(g)).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}
	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("runs differ:\n%s", diff)
	}
}

func TestRoadCoversField(t *testing.T) {
	r := NewRoad(rand.New(rand.NewSource(1)), config.DefaultEndlessRoadConfig().Road)
	for i := 0; i < 300; i++ {
		r.Advance(7)
		segs := r.Segments()
		require.LessOrEqual(t, segs[0].Y, WorldH)
		require.LessOrEqual(t, r.Top().Y, 0.0)
	}
}

func TestDriftClamped(t *testing.T) {
	cfg := config.DefaultEndlessRoadConfig().Road
	cfg.Drift = 50
	r := NewRoad(rand.New(rand.NewSource(4)), cfg)
	for i := 0; i < 2000; i++ {
		r.Advance(cfg.SegmentHeight)
		for _, s := range r.Segments() {
			require.LessOrEqual(t, math.Abs(s.Offset), cfg.MaxOffset)
		}
	}
}

func TestPassingSegmentsScores(t *testing.T) {
	g := newGame(t, 1)
	g.cfg.Traffic.Chance = 0
	g.cfg.Road.Drift = 0
	g.road.cfg.Drift = 0
	for i := 0; i < 20; i++ {
		require.False(t, g.Step(core.NewInputFrame()).State.GameOver)
	}
	assert.Greater(t, g.score, 5)
	assert.InDelta(t, g.cfg.Road.BaseSpeed+float64(g.score)*g.cfg.Road.SpeedStep, g.speed, 1e-9)
}

func TestLeavingRoadEndsGame(t *testing.T) {
	g := newGame(t, 1)
	g.cfg.Traffic.Chance = 0
	var res core.StepResult
	for i := 0; i < 20 && !res.State.GameOver; i++ {
		res = g.Step(core.Frame(core.ActionLeft))
	}
	assert.True(t, res.State.GameOver)
	assert.Less(t, g.playerX, WorldW/2-g.cfg.Road.Width/2+g.cfg.Road.MaxOffset)
}

func TestTrafficCollision(t *testing.T) {
	g := newGame(t, 1)
	g.cfg.Traffic.Chance = 0
	p := g.playerRect()
	g.traffic = []core.RectF{{X: p.X, Y: p.Y - p.H, W: 40, H: 60}}
	assert.True(t, g.Step(core.NewInputFrame()).State.GameOver)
}

func TestTrafficSpawnsOnRoad(t *testing.T) {
	g := newGame(t, 1)
	g.cfg.Traffic.Chance = 1
	g.spawnTraffic()
	require.Len(t, g.traffic, 1)
	car := g.traffic[0]
	r := g.road.Rect(g.road.Top())
	assert.GreaterOrEqual(t, car.X, r.X)
	assert.LessOrEqual(t, car.Right(), r.Right())
	assert.Equal(t, -g.cfg.Traffic.Height, car.Y)
}

func TestOffscreenTrafficDropped(t *testing.T) {
	g := newGame(t, 1)
	g.cfg.Traffic.Chance = 0
	g.traffic = []core.RectF{{X: 0, Y: WorldH - 1, W: 40, H: 60}}
	g.Step(core.NewInputFrame())
	assert.Empty(t, g.traffic)
}

func TestRender(t *testing.T) {
	g := newGame(t, 1)
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()
	for _, ch := range []rune{GrassChar, RoadChar, PlayerChar} {
		assert.True(t, strings.ContainsRune(out, ch), "missing %q", ch)
	}
}

func TestRenderTooSmall(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(config.ResetOverrides)
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, TickRate: 60, Seed: 1})
	scr := core.NewScreen(30, 10)
	g.Render(scr)
	assert.Contains(t, scr.String(), "too small")
}
