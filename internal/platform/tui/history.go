package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retrovault/internal/catalog"
	"github.com/vovakirdan/retrovault/internal/storage"
)

type historyKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Clear key.Binding
	Back  key.Binding
	Quit  key.Binding
}

func (k historyKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Clear, k.Back, k.Quit}
}

func (k historyKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var historyKeys = historyKeyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Clear: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
	Back:  key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// HistoryModel lists recently played titles, newest first, with the best
// stored score of each.
type HistoryModel struct {
	store   *storage.Store
	entries []storage.HistoryEntry
	best    map[string]int // by title
	table   table.Model
	help    help.Model
	width   int
	height  int
	err     error
}

// NewHistoryModel loads the play history. store may be nil.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		best:   make(map[string]int),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Game", Width: 22},
			{Title: "Best", Width: 10},
			{Title: "Played", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(storage.HistoryLimit+1),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	m.table.SetStyles(s)
	m.reload()
	return m
}

func (m *HistoryModel) reload() {
	m.entries, m.err = nil, nil
	clear(m.best)
	if m.store != nil {
		m.entries, m.err = m.store.History(storage.HistoryLimit)
		if stats, err := m.store.GetAllGamesStats(); err == nil {
			for _, e := range catalog.All() {
				if s, ok := stats[e.Slug]; ok {
					m.best[e.Title] = s.HighScore
				}
			}
		}
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		best := "-"
		if v, ok := m.best[e.Title]; ok {
			best = strconv.Itoa(v)
		}
		rows[i] = table.Row{strconv.Itoa(i + 1), e.Title, best, e.PlayedAt.Format("Jan 02 15:04")}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, historyKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, historyKeys.Back):
			return m, toMenu
		case key.Matches(msg, historyKeys.Clear):
			if m.store != nil {
				m.err = m.store.ClearHistory()
				if m.err == nil {
					m.reload()
				}
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history view.
func (m HistoryModel) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("RECENTLY PLAYED"), m.width))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(emptyStyle.Render("Cannot read history: " + m.err.Error()))
	case len(m.entries) == 0:
		b.WriteString(emptyStyle.Render("Nothing played yet."))
	default:
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(historyKeys)))
	return b.String()
}

// Entries returns the history rows currently shown.
func (m HistoryModel) Entries() []storage.HistoryEntry {
	return m.entries
}
