package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retrovault/internal/catalog"
	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
	"github.com/vovakirdan/retrovault/internal/storage"
)

// Menu layout constants
const (
	listWidth          = 28
	minWidthForDetails = 72
	menuChromeRows     = 6 // banner, blank, help, margins
)

var (
	bannerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 2)
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

type menuKeyMap struct {
	Move    key.Binding
	Play    key.Binding
	Scores  key.Binding
	History key.Binding
	Quit    key.Binding
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Play, k.Scores, k.History, k.Quit}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var menuKeys = menuKeyMap{
	Move:    key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
	Play:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play")),
	Scores:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
	History: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
	Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

// menuLine is one row of the game list: a category header or an entry.
type menuLine struct {
	header catalog.Category
	entry  int // index into entries, -1 for headers
}

// MenuModel is the game picker: the catalog grouped by category with the
// selected game's description beside it.
type MenuModel struct {
	entries []catalog.Entry
	lines   []menuLine
	best    map[string]int
	cursor  int // index into entries
	offset  int // first visible line
	width   int
	height  int
	keys    *KeyMapper
	help    help.Model
}

// NewMenuModel builds the menu from the catalog. Entries without a
// registered game are left out. store may be nil.
func NewMenuModel(store *storage.Store, width, height int) MenuModel {
	m := MenuModel{
		best:   make(map[string]int),
		width:  width,
		height: height,
		keys:   NewKeyMapper(),
		help:   help.New(),
	}
	m.help.Width = width

	for _, c := range catalog.Categories() {
		header := false
		for _, e := range catalog.ByCategory(c) {
			if !registry.Exists(e.Slug) {
				continue
			}
			if !header {
				m.lines = append(m.lines, menuLine{header: c, entry: -1})
				header = true
			}
			m.lines = append(m.lines, menuLine{entry: len(m.entries)})
			m.entries = append(m.entries, e)
		}
	}

	if store != nil {
		if stats, err := store.GetAllGamesStats(); err == nil {
			for id, s := range stats {
				m.best[id] = s.HighScore
			}
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.scrollToCursor()
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if e, ok := m.Selected(); ok {
			return m, startGame(e.Slug)
		}
	case MenuActionScoreboard:
		return m, showView(viewScores)
	case MenuActionHistory:
		return m, showView(viewHistory)
	}
	m.scrollToCursor()
	return m, nil
}

// visibleLines is how many list rows fit under the banner.
func (m MenuModel) visibleLines() int {
	return max(m.height-menuChromeRows, 3)
}

func (m *MenuModel) scrollToCursor() {
	row := m.cursorLine()
	// Keep the category header in view when on a category's first entry.
	top := row
	if row > 0 && m.lines[row-1].entry < 0 {
		top = row - 1
	}
	visible := m.visibleLines()
	if top < m.offset {
		m.offset = top
	}
	if row >= m.offset+visible {
		m.offset = row - visible + 1
	}
	m.offset = max(0, min(m.offset, len(m.lines)-visible))
}

func (m MenuModel) cursorLine() int {
	for i, l := range m.lines {
		if l.entry == m.cursor {
			return i
		}
	}
	return 0
}

// Selected returns the entry under the cursor.
func (m MenuModel) Selected() (catalog.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return catalog.Entry{}, false
	}
	return m.entries[m.cursor], true
}

// Select moves the cursor to the entry with the given slug, if listed.
func (m *MenuModel) Select(slug string) {
	for i, e := range m.entries {
		if e.Slug == slug {
			m.cursor = i
			m.scrollToCursor()
			return
		}
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(bannerStyle.Render("R E T R O V A U L T"), m.width))
	b.WriteString("\n\n")

	list := m.renderList()
	if m.width >= minWidthForDetails {
		details := panelStyle.Width(max(m.width-listWidth-8, 20)).Render(m.renderDetails())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, " ", list, "  ", details))
	} else {
		b.WriteString(list)
		if e, ok := m.Selected(); ok {
			b.WriteString("\n")
			b.WriteString(dimStyle.Render(core.Truncate(e.Description, m.width)))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(m.help.View(menuKeys)))
	return b.String()
}

func (m MenuModel) renderList() string {
	visible := m.visibleLines()
	end := min(m.offset+visible, len(m.lines))

	rows := make([]string, 0, visible)
	for _, l := range m.lines[m.offset:end] {
		if l.entry < 0 {
			rows = append(rows, categoryStyle.Render(string(l.header)))
			continue
		}
		title := core.Truncate(m.entries[l.entry].Title, listWidth-4)
		if l.entry == m.cursor {
			rows = append(rows, cursorStyle.Render("> "+title))
		} else {
			rows = append(rows, "  "+title)
		}
	}
	return lipgloss.NewStyle().Width(listWidth).Render(strings.Join(rows, "\n"))
}

func (m MenuModel) renderDetails() string {
	e, ok := m.Selected()
	if !ok {
		return dimStyle.Render("No games registered.")
	}

	var b strings.Builder
	b.WriteString(cursorStyle.Render(e.Title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(string(e.Category)))
	b.WriteString("\n\n")
	b.WriteString(e.Description)
	b.WriteString("\n")
	if len(e.Controls) > 0 {
		b.WriteString("\n")
		for _, c := range e.Controls {
			b.WriteString("• " + c + "\n")
		}
	}
	if best, ok := m.best[e.Slug]; ok {
		fmt.Fprintf(&b, "\nBest: %d", best)
	}
	return b.String()
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
