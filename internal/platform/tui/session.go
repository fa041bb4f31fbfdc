package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
	"github.com/vovakirdan/retrovault/internal/shell"
	"github.com/vovakirdan/retrovault/internal/storage"
)

type view int

const (
	viewMenu view = iota
	viewGame
	viewScores
	viewHistory
)

// navigateMsg asks the session to switch screens.
type navigateMsg struct {
	to   view
	slug string
}

func showView(v view) tea.Cmd {
	return func() tea.Msg { return navigateMsg{to: v} }
}

func startGame(slug string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{to: viewGame, slug: slug} }
}

func toMenu() tea.Msg {
	return navigateMsg{to: viewMenu}
}

// Options configures a Session.
type Options struct {
	// Store persists scores and history. Nil runs without persistence.
	Store *storage.Store

	// Logger receives session and recorder events. Defaults to log.Default().
	Logger *log.Logger

	// Config is the terminal size, tick rate and seed.
	Config core.RuntimeConfig

	// User names the player in logs. Empty for local play.
	User string

	// ScreenshotDir overrides where ctrl+s writes.
	ScreenshotDir string
}

// Session is the top-level model: menu, game, scoreboard and history
// screens, one active at a time. Local play and every SSH connection run
// one Session each.
type Session struct {
	opts Options
	id   string
	cfg  core.RuntimeConfig

	active   view
	lastSlug string
	start    string // game to open on Init
	oneShot  bool   // leaving the game ends the program

	menu    MenuModel
	game    GameModel
	scores  ScoreboardModel
	history HistoryModel
}

// NewSession creates a session that opens on the menu.
func NewSession(opts Options) Session {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	s := Session{
		opts: opts,
		id:   uuid.NewString(),
		cfg:  opts.Config,
	}
	s.menu = NewMenuModel(opts.Store, s.cfg.ScreenW, s.cfg.ScreenH)
	return s
}

// NewGameSession creates a session that goes straight into one game and
// ends when the player leaves it.
func NewGameSession(slug string, opts Options) Session {
	s := NewSession(opts)
	s.start = slug
	s.oneShot = true
	return s
}

// ID returns the session ID used in logs.
func (s Session) ID() string {
	return s.id
}

// Init opens the starting screen.
func (s Session) Init() tea.Cmd {
	if s.start != "" {
		return startGame(s.start)
	}
	return s.menu.Init()
}

// Update routes navigation and forwards everything else to the active screen.
func (s Session) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case navigateMsg:
		return s.navigate(msg)
	case tea.WindowSizeMsg:
		s.cfg.ScreenW, s.cfg.ScreenH = msg.Width, msg.Height
	}

	var cmd tea.Cmd
	switch s.active {
	case viewMenu:
		s.menu, cmd = forward(s.menu, msg)
	case viewGame:
		s.game, cmd = forward(s.game, msg)
	case viewScores:
		s.scores, cmd = forward(s.scores, msg)
	case viewHistory:
		s.history, cmd = forward(s.history, msg)
	}
	return s, cmd
}

// forward updates a child model and keeps its concrete type.
func forward[M tea.Model](m M, msg tea.Msg) (M, tea.Cmd) {
	next, cmd := m.Update(msg)
	if typed, ok := next.(M); ok {
		return typed, cmd
	}
	return m, cmd
}

func (s Session) navigate(msg navigateMsg) (tea.Model, tea.Cmd) {
	switch msg.to {
	case viewGame:
		game, err := registry.Create(msg.slug)
		if err != nil {
			s.opts.Logger.Error("tui: cannot start game", "session", s.id, "game", msg.slug, "error", err)
			if s.oneShot {
				return s, tea.Quit
			}
			return s, nil
		}
		s.opts.Logger.Info("game started", "session", s.id, "user", s.opts.User, "game", msg.slug)
		s.lastSlug = msg.slug
		s.game = NewGameModel(s.newHost(game), s.cfg, s.gameOptions()...)
		s.active = viewGame
		return s, s.game.Init()

	case viewMenu:
		if s.active == viewGame && s.oneShot {
			return s, tea.Quit
		}
		s.menu = NewMenuModel(s.opts.Store, s.cfg.ScreenW, s.cfg.ScreenH)
		s.menu.Select(s.lastSlug)
		s.active = viewMenu
		return s, nil

	case viewScores:
		s.scores = NewScoreboardModel(s.opts.Store, s.cfg.ScreenW, s.cfg.ScreenH)
		if e, ok := s.menu.Selected(); ok {
			s.scores.Focus(e.Slug)
		}
		s.active = viewScores
		return s, nil

	case viewHistory:
		s.history = NewHistoryModel(s.opts.Store, s.cfg.ScreenW, s.cfg.ScreenH)
		s.active = viewHistory
		return s, nil
	}
	return s, nil
}

func (s Session) newHost(g registry.Game) *shell.Host {
	var rec shell.Recorder
	if s.opts.Store != nil {
		rec = s.opts.Store
	}
	return shell.New(g, rec, shell.WithLogger(s.opts.Logger.With("session", s.id)))
}

func (s Session) gameOptions() []GameOption {
	opts := []GameOption{WithGameLogger(s.opts.Logger)}
	if s.opts.ScreenshotDir != "" {
		opts = append(opts, WithScreenshotDir(s.opts.ScreenshotDir))
	}
	return opts
}

// View renders the active screen.
func (s Session) View() string {
	switch s.active {
	case viewGame:
		return s.game.View()
	case viewScores:
		return s.scores.View()
	case viewHistory:
		return s.history.View()
	}
	return s.menu.View()
}

// Run runs a session on the local terminal until the player quits.
func Run(s Session, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(s, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
