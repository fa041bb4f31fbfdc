package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/shell"
)

// pressGame scores a point per Jump and ends on Confirm.
type pressGame struct {
	state  core.GameState
	resets int
	typed  []rune
}

func (g *pressGame) ID() string    { return "press-test" }
func (g *pressGame) Title() string { return "Press Test" }
func (g *pressGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
	g.typed = nil
}
func (g *pressGame) Step(in core.InputFrame) core.StepResult {
	core.TogglePause(in, &g.state.Paused)
	if g.state.Paused {
		return core.StepResult{State: g.state}
	}
	if in.Has(core.ActionJump) {
		g.state.Score++
	}
	g.typed = append(g.typed, in.Runes()...)
	if in.Has(core.ActionConfirm) {
		g.state.GameOver = true
	}
	return core.StepResult{State: g.state}
}
func (g *pressGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "PLAYFIELD") }
func (g *pressGame) State() core.GameState   { return g.state }

type typingGame struct{ pressGame }

func (g *typingGame) WantsText() bool { return !g.state.GameOver }

func newTestGame(t *testing.T, g *pressGame) GameModel {
	t.Helper()
	host := shell.New(g, nil, shell.WithLogger(log.New(io.Discard)))
	cfg := core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60, Seed: 1}
	n := int64(100)
	return NewGameModel(host, cfg,
		WithSeeds(func() int64 { n++; return n }),
		WithScreenshotDir(t.TempDir()),
		WithGameLogger(log.New(io.Discard)),
	)
}

func press(t *testing.T, m GameModel, msgs ...tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(GameModel)
		require.True(t, ok)
	}
	return m, cmd
}

func (m GameModel) tick() TickMsg { return TickMsg{Loop: m.loop} }

func TestGameModelStepsOnTick(t *testing.T) {
	g := &pressGame{}
	m := newTestGame(t, g)
	assert.Equal(t, 1, g.resets)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, m.tick())
	assert.Equal(t, 1, m.Snapshot().Score)

	// Input is consumed by the tick.
	m, cmd := press(t, m, m.tick())
	assert.Equal(t, 1, m.Snapshot().Score)
	assert.NotNil(t, cmd, "tick loop must continue")
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	g := &pressGame{}
	m := newTestGame(t, g)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, TickMsg{Loop: m.loop + 1000})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Snapshot().Score)
}

func TestGameModelHUD(t *testing.T) {
	m := newTestGame(t, &pressGame{})
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	m, _ = press(t, m, space, m.tick(), space, m.tick())

	m.compose()
	hud := m.screen.Row(0)
	assert.Contains(t, hud, "Press Test")
	assert.Contains(t, hud, "Score: 2")
	assert.Contains(t, hud, "High: 2")
	assert.Contains(t, m.screen.Row(hudRows), "PLAYFIELD", "game draws below the HUD")
}

func TestGameModelGameOverOverlay(t *testing.T) {
	m := newTestGame(t, &pressGame{})
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	m, _ = press(t, m, space, m.tick(), tea.KeyMsg{Type: tea.KeyEnter}, m.tick())

	snap := m.Snapshot()
	require.True(t, snap.GameOver)
	assert.True(t, snap.NewHighScore)

	m.compose()
	out := m.screen.String()
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "New high score!")
	assert.Contains(t, out, "R: play again, B: back")
}

func TestGameModelPlayAgain(t *testing.T) {
	g := &pressGame{}
	m := newTestGame(t, g)
	first := m.Snapshot().RunID
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	m, _ = press(t, m, space, m.tick(), tea.KeyMsg{Type: tea.KeyEnter}, m.tick())
	require.True(t, m.Snapshot().GameOver)

	m, _ = press(t, m, runes("r"))
	snap := m.Snapshot()
	assert.False(t, snap.GameOver)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 1, snap.HighScore, "high score survives play again")
	assert.NotEqual(t, first, snap.RunID)
	assert.Equal(t, 2, g.resets)
}

func TestGameModelBackToMenu(t *testing.T) {
	m := newTestGame(t, &pressGame{})

	// Back does nothing mid-run.
	m, cmd := press(t, m, runes("b"))
	assert.Nil(t, cmd)
	assert.False(t, m.BackToMenu())

	// Paused: back leaves.
	m, _ = press(t, m, runes("p"), m.tick())
	require.True(t, m.Snapshot().Paused)
	m, cmd = press(t, m, runes("b"))
	assert.True(t, m.BackToMenu())
	require.NotNil(t, cmd)
	assert.Equal(t, navigateMsg{to: viewMenu}, cmd())
}

func TestGameModelQuit(t *testing.T) {
	m := newTestGame(t, &pressGame{})
	m, cmd := press(t, m, runes("q"))
	assert.True(t, m.IsQuitting())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestGameModelRoutesLettersToTextGames(t *testing.T) {
	g := &typingGame{}
	host := shell.New(g, nil, shell.WithLogger(log.New(io.Discard)))
	m := NewGameModel(host, core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60, Seed: 1},
		WithScreenshotDir(t.TempDir()))

	m, cmd := press(t, m, runes("q"), runes("e"), m.tick())
	assert.False(t, m.IsQuitting(), "q is a letter while typing")
	assert.NotNil(t, cmd)
	assert.Equal(t, "qe", string(g.typed))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())
}

func TestGameModelScreenshot(t *testing.T) {
	m := newTestGame(t, &pressGame{})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	path := m.LastScreenshot()
	require.NotEmpty(t, path)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "press-test_"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "PLAYFIELD")
}

func TestGameModelResizeRestartsRun(t *testing.T) {
	g := &pressGame{}
	m := newTestGame(t, g)
	first := m.Snapshot().RunID

	m, _ = press(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Equal(t, 1, g.resets, "same size is a no-op")

	m, _ = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 2, g.resets)
	assert.NotEqual(t, first, m.Snapshot().RunID)
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 30-hudRows, m.area.Height())
}
