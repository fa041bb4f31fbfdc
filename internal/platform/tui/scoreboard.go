package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retrovault/internal/catalog"
	"github.com/vovakirdan/retrovault/internal/registry"
	"github.com/vovakirdan/retrovault/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the game list sidebar
	sidebarWidth       = 24  // Width of the game list sidebar
	maxScores          = 100 // Max scores to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// ScoreboardModel shows the stored runs of one game at a time.
type ScoreboardModel struct {
	games       []catalog.Entry
	gameCursor  int
	store       *storage.Store
	scores      []storage.ScoreEntry
	stats       *storage.GameStats
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	showSidebar bool
}

// NewScoreboardModel creates a scoreboard opened on the first catalog game.
// store may be nil, in which case every board is empty.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	var games []catalog.Entry
	for _, e := range catalog.Grouped() {
		if registry.Exists(e.Slug) {
			games = append(games, e)
		}
	}

	m := ScoreboardModel{
		games:       games,
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	if len(m.games) > 0 {
		m.loadScores()
	}
	return m
}

// Focus opens the board of the given game, if it is listed.
func (m *ScoreboardModel) Focus(slug string) {
	for i, g := range m.games {
		if g.Slug == slug {
			m.gameCursor = i
			m.loadScores()
			return
		}
	}
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 12},
		{Title: "Result", Width: 7},
		{Title: "Date", Width: 14},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if rest := tableWidth - 29; rest > 14 {
		columns[3].Width = min(rest, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// loadScores reads the runs and stats of the game under the cursor.
func (m *ScoreboardModel) loadScores() {
	m.scores, m.stats = nil, nil
	if m.store != nil {
		id := m.games[m.gameCursor].Slug
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		result := "-"
		if s.Won {
			result = "won"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(s.Score),
			result,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			return m, toMenu

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.loadScores()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.loadScores()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title = "HIGH SCORES - " + m.games[m.gameCursor].Title
	}
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", boxStyle.Render(m.renderTable())))
	} else {
		b.WriteString(centerText(m.renderTabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(boxStyle.Render(m.renderTable()))
	}

	if line := m.statsLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(line))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderSidebar() string {
	var sb strings.Builder
	sb.WriteString("Games\n")
	sb.WriteString(strings.Repeat("─", sidebarWidth-4))

	// Show a window of titles around the cursor.
	visible := max(m.height-10, 5)
	start := max(0, min(m.gameCursor-visible/2, len(m.games)-visible))
	end := min(start+visible, len(m.games))
	for i := start; i < end; i++ {
		name := truncateTitle(m.games[i].Title, sidebarWidth-6)
		sb.WriteString("\n")
		if i == m.gameCursor {
			sb.WriteString(cursorStyle.Render("> " + name))
		} else {
			sb.WriteString("  " + name)
		}
	}
	return boxStyle.Width(sidebarWidth).Render(sb.String())
}

func (m ScoreboardModel) renderTabs() string {
	if len(m.games) == 0 {
		return ""
	}
	return fmt.Sprintf("< %s >  (%d/%d)", m.games[m.gameCursor].Title, m.gameCursor+1, len(m.games))
}

func (m ScoreboardModel) renderTable() string {
	if len(m.scores) == 0 {
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Runs: %d  Wins: %d  Best: %d  Average: %.0f",
		m.stats.GamesCount, m.stats.Wins, m.stats.HighScore, m.stats.AvgScore)
}

// Current returns the catalog entry whose board is shown.
func (m ScoreboardModel) Current() (catalog.Entry, bool) {
	if len(m.games) == 0 {
		return catalog.Entry{}, false
	}
	return m.games[m.gameCursor], true
}

func truncateTitle(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	return s[:n-1] + "."
}
