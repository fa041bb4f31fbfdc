// Package clicker implements Clicker Mania, an incremental game: click for
// points, spend them on click power and auto clickers, reach a billion.
package clicker

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
)

const (
	ID    = "clicker-mania"
	title = "Clicker Mania"

	// Goal ends the game as a win.
	Goal = 1_000_000_000

	autoEveryMs = 1000.0

	needW = 48
	needH = 14
)

// Game implements Clicker Mania.
type Game struct {
	points int
	power  Upgrade
	auto   Upgrade

	paidSeconds int // whole seconds already paid to auto clickers
	tickMs      float64

	tick     uint64
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// New creates a Clicker Mania game.
func New() *Game { return &Game{} }

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return title }

// Reset starts from zero points and no upgrades.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.points = 0
	g.power = newClickPower()
	g.auto = newAutoClicker()
	g.paidSeconds = 0
	g.tickMs = cfg.TickDuration()
	g.tick = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.tooSmall = cfg.ScreenW < needW || cfg.ScreenH < needH
}

// Step handles clicks, purchases and cashing out, then pays the auto
// clickers once per second of play.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	core.TogglePause(in, &g.paused)
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	if in.Has(core.ActionConfirm) {
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionJump) {
		g.points += g.power.Level
	}
	if in.Has(core.ActionBuy1) {
		g.buy(&g.power)
	}
	if in.Has(core.ActionBuy2) {
		g.buy(&g.auto)
	}

	elapsed := int(float64(g.tick)*g.tickMs/autoEveryMs + 1e-9)
	for ; g.paidSeconds < elapsed; g.paidSeconds++ {
		g.points += g.auto.Level
	}

	if g.points >= Goal {
		g.won = true
		g.gameOver = true
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) buy(u *Upgrade) bool {
	cost := u.Cost()
	if g.points < cost {
		return false
	}
	g.points -= cost
	u.Level++
	u.Bought++
	return true
}

// Points returns the current balance.
func (g *Game) Points() int { return g.points }

// Render draws the balance, the click button and both upgrade shops.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall || dst.Width() < needW || dst.Height() < needH {
		core.DrawTooSmall(dst, needW, needH)
		return
	}
	ox := (dst.Width() - needW) / 2
	oy := (dst.Height() - needH) / 2

	dst.DrawTextCenteredColor(oy, humanize.Comma(int64(g.points)), core.ColorBrightYellow)
	dst.DrawTextCenteredColor(oy+1, fmt.Sprintf("%d per second", g.auto.Level), core.ColorGray)

	button := core.NewRect(ox+needW/2-8, oy+3, 16, 5)
	dst.DrawBoxColor(button, core.ColorBrightMagenta)
	dst.DrawTextCenteredColor(oy+5, "Click Me!", core.ColorBrightWhite)

	g.drawShop(dst, core.NewRect(ox, oy+9, 22, 4), "1", g.power, fmt.Sprintf("Power: %d", g.power.Level))
	g.drawShop(dst, core.NewRect(ox+needW-22, oy+9, 22, 4), "2", g.auto, fmt.Sprintf("Auto: %d/s", g.auto.Level))

	if g.paused {
		core.DrawPaused(dst)
	}
}

func (g *Game) drawShop(dst *core.Screen, r core.Rect, key string, u Upgrade, label string) {
	c := core.ColorGray
	if g.points >= u.Cost() {
		c = core.ColorBrightGreen
	}
	dst.DrawBoxColor(r, c)
	dst.DrawTextColor(r.X+2, r.Y+1, "["+key+"] "+label, core.ColorBrightWhite)
	dst.DrawTextColor(r.X+2, r.Y+2, "Cost: "+humanize.Comma(int64(u.Cost())), c)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.points,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}
