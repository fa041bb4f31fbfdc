package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
	"github.com/vovakirdan/retrovault/internal/shell"
)

// hudRows is the number of rows above the game area.
const hudRows = 1

// GameModel runs one game inside the shell: HUD on top, the game below,
// and the game-over overlay once the shell has finalized the run.
type GameModel struct {
	host   *shell.Host
	screen *core.Screen // whole terminal
	area   *core.Screen // what the game draws into
	keys   *KeyMapper
	frame  core.InputFrame
	snap   shell.Snapshot
	loop   uint64
	cfg    core.RuntimeConfig
	seeds  func() int64
	logger *log.Logger

	screenshotDir string
	lastShot      string

	quitting   bool
	backToMenu bool
}

// GameOption configures a GameModel.
type GameOption func(*GameModel)

// WithSeeds replaces the seed source used for "play again".
func WithSeeds(next func() int64) GameOption {
	return func(m *GameModel) { m.seeds = next }
}

// WithScreenshotDir sets where ctrl+s writes screenshots.
func WithScreenshotDir(dir string) GameOption {
	return func(m *GameModel) { m.screenshotDir = dir }
}

// WithGameLogger sets the logger used for screenshot failures.
func WithGameLogger(l *log.Logger) GameOption {
	return func(m *GameModel) { m.logger = l }
}

// NewGameModel starts the first run of the host's game. cfg describes the
// whole terminal; the game gets everything below the HUD.
func NewGameModel(host *shell.Host, cfg core.RuntimeConfig, opts ...GameOption) GameModel {
	m := GameModel{
		host:   host,
		keys:   NewKeyMapper(),
		frame:  core.NewInputFrame(),
		loop:   nextLoop(),
		seeds:  func() int64 { return time.Now().UnixNano() },
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.screenshotDir == "" {
		m.screenshotDir = defaultScreenshotDir()
	}
	if cfg.Seed == 0 {
		cfg.Seed = m.seeds()
	}

	m.cfg = cfg
	m.screen = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	m.area = core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-hudRows, 0))
	host.Start(m.gameConfig())
	m.snap = host.Snapshot()
	return m
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".retrovault", "screenshots")
}

func (m GameModel) gameConfig() core.RuntimeConfig {
	cfg := m.cfg
	cfg.ScreenH = max(cfg.ScreenH-hudRows, 0)
	return cfg
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.loop, m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height), nil
	case TickMsg:
		if msg.Loop != m.loop || m.quitting || m.backToMenu {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlS {
		m.saveScreenshot()
		return m, nil
	}

	if m.snap.GameOver {
		action, isQuit := m.keys.MapKey(msg)
		switch {
		case isQuit:
			m.quitting = true
			return m, tea.Quit
		case action == core.ActionRestart:
			m.host.Restart(m.seeds())
			m.snap = m.host.Snapshot()
			m.frame.Clear()
		case action == core.ActionBack:
			m.backToMenu = true
			return m, toMenu
		}
		return m, nil
	}

	text := registry.AcceptsText(m.host.Game())
	if !text && m.snap.Paused {
		if action, _ := m.keys.MapKey(msg); action == core.ActionBack {
			m.backToMenu = true
			return m, toMenu
		}
	}
	if text && msg.Type == tea.KeyEsc {
		m.backToMenu = true
		return m, toMenu
	}

	if m.keys.MapKeyToFrame(msg, &m.frame, text) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize resizes the buffers. A run in progress is restarted so the
// game can lay itself out for the new area; a finished run is left alone.
func (m GameModel) handleResize(w, h int) GameModel {
	if w == m.cfg.ScreenW && h == m.cfg.ScreenH {
		return m
	}
	m.cfg.ScreenW, m.cfg.ScreenH = w, h
	m.screen.Resize(w, h)
	m.area.Resize(w, max(h-hudRows, 0))

	gc := m.gameConfig()
	m.host.Resize(gc.ScreenW, gc.ScreenH)
	if !m.snap.GameOver {
		m.host.Restart(m.seeds())
		m.snap = m.host.Snapshot()
	}
	return m
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.snap = m.host.Step(m.frame)
	m.frame.Clear()
	return m, tickCmd(m.loop, m.cfg.TickRate)
}

// saveScreenshot writes the current frame, without colors, to the
// screenshot directory.
func (m *GameModel) saveScreenshot() {
	m.compose()
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("tui: cannot create screenshot directory", "dir", m.screenshotDir, "error", err)
		return
	}
	name := fmt.Sprintf("%s_%s.txt", m.host.Entry().Slug, time.Now().Format("20060102_150405"))
	path := filepath.Join(m.screenshotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("tui: cannot save screenshot", "path", path, "error", err)
		return
	}
	m.lastShot = path
	m.logger.Info("screenshot saved", "path", path)
}

// compose draws the HUD, the game and any overlay into m.screen.
func (m GameModel) compose() {
	m.screen.Clear()
	m.area.Clear()
	m.host.Game().Render(m.area)
	m.screen.Blit(m.area, 0, hudRows)
	m.drawHUD()
	if m.snap.GameOver {
		m.drawGameOver()
	}
}

func (m GameModel) drawHUD() {
	title := m.host.Entry().Title
	m.screen.DrawTextColor(1, 0, title, core.ColorBrightCyan)

	stats := fmt.Sprintf("Score: %d  High: %d", m.snap.Score, m.snap.HighScore)
	x := max(m.screen.Width()-len(stats)-1, len(title)+3)
	m.screen.DrawTextColor(x, 0, stats, core.ColorBrightWhite)
}

func (m GameModel) drawGameOver() {
	head := "GAME OVER"
	if m.snap.Won {
		head = "YOU WIN!"
	}
	lines := []string{head, fmt.Sprintf("Score: %d", m.snap.Score)}
	if m.snap.NewHighScore {
		lines = append(lines, "New high score!")
	} else {
		lines = append(lines, fmt.Sprintf("High score: %d", m.snap.HighScore))
	}
	lines = append(lines, "R: play again, B: back")
	m.screen.DrawMessage(lines...)
}

// View renders the current frame.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.compose()
	return RenderScreen(m.screen)
}

// Snapshot returns the shell state after the last tick.
func (m GameModel) Snapshot() shell.Snapshot {
	return m.snap
}

// IsQuitting reports whether the player asked to leave the program.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked to return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// LastScreenshot returns the path of the most recent ctrl+s capture.
func (m GameModel) LastScreenshot() string {
	return m.lastShot
}
