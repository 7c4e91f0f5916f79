package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/borderwalk/internal/registry"
	"github.com/vovakirdan/borderwalk/internal/storage"
)

// History layout constants
const (
	maxHistory  = 100 // Max laps to load per tab
	tableChrome = 8   // Rows reserved for title, tabs, help and margins
)

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Preview key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Preview, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Preview, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next area"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev area"),
		),
		Preview: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "preview"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel browses saved laps per area.
type HistoryModel struct {
	tabs    []string // "" means every area
	tab     int
	store   *storage.Store
	theme   Theme
	traces  []storage.Trace
	preview string // Rendered lap of the selected row, empty when hidden
	err     error
	table   table.Model
	help    help.Model
	keys    HistoryKeyMap
	width   int
	height  int

	quitting bool
}

// NewHistoryModel creates a history browser. If areaID is set, that tab is selected.
func NewHistoryModel(store *storage.Store, theme Theme, areaID string, width, height int) HistoryModel {
	tabs := []string{""}
	for _, info := range registry.List() {
		tabs = append(tabs, info.ID)
	}

	m := HistoryModel{
		tabs:   tabs,
		store:  store,
		theme:  theme,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for i, id := range tabs {
		if id == areaID {
			m.tab = i
		}
	}

	m.table = m.createTable()
	m.loadTraces()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Area", Width: 12},
		{Title: "Start", Width: 10},
		{Title: "Cells", Width: 6},
		{Title: "Date", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-tableChrome, 3)),
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

// loadTraces loads laps for the selected tab.
func (m *HistoryModel) loadTraces() {
	m.preview = ""
	m.traces = nil
	m.err = nil
	if m.store != nil {
		m.traces, m.err = m.store.RecentTraces(m.tabs[m.tab], maxHistory)
	}

	rows := make([]table.Row, len(m.traces))
	for i, tr := range m.traces {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", tr.ID),
			tr.AreaID,
			tr.Start.String(),
			fmt.Sprintf("%d", tr.CellCount),
			tr.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// togglePreview renders the selected lap over its area, or hides it.
func (m *HistoryModel) togglePreview() {
	if m.preview != "" {
		m.preview = ""
		return
	}
	sel, ok := m.Selected()
	if !ok {
		return
	}

	tr, err := m.store.TraceByID(sel.ID)
	if err != nil || tr == nil {
		m.preview = fmt.Sprintf("cannot load lap #%d: %v", sel.ID, err)
		return
	}
	shape, err := registry.Create(tr.AreaID)
	if err != nil {
		m.preview = fmt.Sprintf("area %q is no longer registered", tr.AreaID)
		return
	}

	lap := Lap{Shape: shape, Area: shape.Region(), Start: tr.Start, Cells: tr.Cells}
	m.preview = m.theme.Render(lap.Canvas(len(lap.Cells)))
}

// Selected returns the trace under the cursor, if any.
func (m HistoryModel) Selected() (storage.Trace, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.traces) {
		return storage.Trace{}, false
	}
	return m.traces[i], true
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % len(m.tabs)
			m.loadTraces()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab - 1 + len(m.tabs)) % len(m.tabs)
			m.loadTraces()
			return m, nil

		case key.Matches(msg, m.keys.Preview):
			m.togglePreview()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.preview = ""
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadTraces()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(titleStyle.Render("SAVED LAPS"))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.tabs))
	for i, id := range m.tabs {
		name := id
		if name == "" {
			name = "all"
		}
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(" " + name + " ")
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	var content string
	switch {
	case m.err != nil:
		content = m.err.Error()
	case len(m.traces) == 0:
		content = tabStyle.Italic(true).Padding(1, 2).Render("No laps saved yet.\nPress s in the watch view to save one.")
	default:
		content = m.table.View()
	}
	if m.preview != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, "  ", m.preview)
	}
	b.WriteString(boxStyle.Render(content))

	b.WriteString("\n")
	b.WriteString(tabStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunHistory runs the history browser.
func RunHistory(store *storage.Store, theme Theme, areaID string, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, theme, areaID, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
