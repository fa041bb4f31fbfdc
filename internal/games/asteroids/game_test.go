package asteroids

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/retrovault/internal/core"
)

func newGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func TestResetBelt(t *testing.T) {
	g := newGame(5)
	require.Len(t, g.rocks, rockCount)
	for _, r := range g.rocks {
		assert.Equal(t, rockSize/2, r.R)
		assert.GreaterOrEqual(t, core.Dist(r.X, r.Y, g.ship.X, g.ship.Y), rockSize*2+shipRadius)
		assert.LessOrEqual(t, math.Abs(r.VX), rockSpeed)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newGame(11)
		for i := 0; i < 400; i++ {
			in := core.NewInputFrame()
			switch i % 20 {
			case 0:
				in.Set(core.ActionJump)
			case 5:
				in.Set(core.ActionLeft)
			case 12:
				in.Set(core.ActionUp)
			}
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

func TestTurnHoldsBetweenRepeats(t *testing.T) {
	g := newGame(1)
	start := g.ship.Angle
	g.rocks = []Rock{{X: 0, Y: 0, R: 1}}
	g.Step(core.Frame(core.ActionLeft))
	for i := 1; i < holdTicks+3; i++ {
		g.Step(core.NewInputFrame())
	}
	assert.InDelta(t, start+holdTicks*turnStep, g.ship.Angle, 1e-9)
}

func TestThrustAndFriction(t *testing.T) {
	g := newGame(1)
	g.rocks = []Rock{{X: 0, Y: 0, R: 1}}
	g.Step(core.Frame(core.ActionUp))
	require.Less(t, g.ship.VY, 0.0, "thrust pushes the ship up")
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
	assert.InDelta(t, 0, g.ship.VY, 1e-3, "friction stops a coasting ship")
}

func TestBulletLimitAndLife(t *testing.T) {
	g := newGame(1)
	g.rocks = []Rock{{X: 0, Y: 0, R: 1}}
	for i := 0; i < 10; i++ {
		g.Step(core.Frame(core.ActionJump))
	}
	assert.Len(t, g.bullets, maxBullets)
	for i := 0; i < bulletLife; i++ {
		g.Step(core.NewInputFrame())
	}
	assert.Empty(t, g.bullets)
}

func TestBigRockSplits(t *testing.T) {
	g := newGame(1)
	g.rocks = []Rock{{X: 100, Y: 100, R: rockSize / 2}, {X: 500, Y: 300, R: 5}}
	g.bullets = []Bullet{{X: 100, Y: 100, Life: 1}}

	g.collide()

	assert.Equal(t, splitPoints, g.score)
	require.Len(t, g.rocks, 3)
	assert.Equal(t, rockSize/4, g.rocks[1].R)
	assert.Empty(t, g.bullets)
}

func TestSmallRockScores(t *testing.T) {
	g := newGame(1)
	g.rocks = []Rock{{X: 100, Y: 100, R: rockSize / 4}, {X: 500, Y: 300, R: 5}}
	g.bullets = []Bullet{{X: 100, Y: 100, Life: 1}}

	g.collide()

	assert.Equal(t, smallPoints, g.score)
	assert.Len(t, g.rocks, 1)
}

func TestClearingFieldWins(t *testing.T) {
	g := newGame(1)
	g.rocks = []Rock{{X: 100, Y: 100, R: rockSize / 4}}
	g.bullets = []Bullet{{X: 100, Y: 100, Life: 1}}

	g.collide()

	state := g.State()
	assert.True(t, state.GameOver)
	assert.True(t, state.Won)
	assert.Equal(t, smallPoints+clearBonus, state.Score)
}

func TestShipCollisionEndsGame(t *testing.T) {
	g := newGame(1)
	g.rocks = []Rock{{X: g.ship.X + 20, Y: g.ship.Y, R: 15}}

	state := g.Step(core.NewInputFrame()).State

	assert.True(t, state.GameOver)
	assert.False(t, state.Won)
}

func TestWrap(t *testing.T) {
	x, y := wrap(-11, 200, 10)
	assert.Equal(t, WorldW+10, x)
	assert.Equal(t, 200.0, y)

	x, y = wrap(300, WorldH+11, 10)
	assert.Equal(t, 300.0, x)
	assert.Equal(t, -10.0, y)
}

func TestShipGlyph(t *testing.T) {
	assert.Equal(t, '↑', shipGlyph(math.Pi/2))
	assert.Equal(t, '→', shipGlyph(0))
	assert.Equal(t, '↓', shipGlyph(-math.Pi/2))
	assert.Equal(t, '←', shipGlyph(3*math.Pi))
}
