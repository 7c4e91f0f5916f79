package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/borderwalk/internal/config"
	"github.com/vovakirdan/borderwalk/internal/registry"
	"github.com/vovakirdan/borderwalk/internal/storage"
)

const maxStepsPerTick = 64

// Options configures a watch model.
type Options struct {
	Watch  config.WatchConfig
	Theme  Theme
	Store  *storage.Store // Optional; enables the save key
	Logger *log.Logger    // Optional
}

// Model is the Bubble Tea model that animates laps around registered areas.
type Model struct {
	areaIDs []string
	index   int
	lap     Lap
	pos     int // Number of reported cells shown
	paused  bool
	steps   int
	opts    Options
	keys    KeyMap
	help    help.Model
	status  string
	saved   bool // Whether the current lap has been saved
	width   int
	height  int

	quitting bool
}

// NewModel creates a watch model over the given area IDs, starting at current.
func NewModel(areaIDs []string, current string, opts Options) (Model, error) {
	if len(areaIDs) == 0 {
		return Model{}, fmt.Errorf("tui: no areas to watch")
	}
	if opts.Watch.TickRate <= 0 {
		opts.Watch.TickRate = config.DefaultConfig().Watch.TickRate
	}

	index := 0
	for i, id := range areaIDs {
		if id == current {
			index = i
		}
	}

	m := Model{
		areaIDs: areaIDs,
		steps:   clampSteps(opts.Watch.StepsPerTick),
		opts:    opts,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	if err := m.load(index); err != nil {
		return Model{}, err
	}
	return m, nil
}

func clampSteps(n int) int {
	if n < 1 {
		return 1
	}
	return min(n, maxStepsPerTick)
}

// load switches to the area at index i and rewinds the lap.
func (m *Model) load(i int) error {
	n := len(m.areaIDs)
	i = ((i % n) + n) % n

	shape, err := registry.Create(m.areaIDs[i])
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	lap, err := NewLap(shape)
	if err != nil {
		return fmt.Errorf("tui: area %q: %w", shape.ID, err)
	}

	m.index = i
	m.lap = lap
	m.pos = 0
	m.saved = false
	m.status = ""
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Watch.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.advance()
		return m, tickCmd(m.opts.Watch.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.Restart):
		m.pos = 0
		m.paused = false
	case key.Matches(msg, m.keys.Faster):
		m.steps = clampSteps(m.steps * 2)
	case key.Matches(msg, m.keys.Slower):
		m.steps = clampSteps(m.steps / 2)
	case key.Matches(msg, m.keys.Next):
		m.switchArea(m.index + 1)
	case key.Matches(msg, m.keys.Prev):
		m.switchArea(m.index - 1)
	case key.Matches(msg, m.keys.Save):
		m.save()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) switchArea(i int) {
	if err := m.load(i); err != nil {
		m.status = err.Error()
	}
}

// advance reveals the next batch of reported cells.
func (m *Model) advance() {
	if m.paused {
		return
	}
	if m.pos >= len(m.lap.Cells) {
		if m.opts.Watch.Loop {
			m.pos = 0
		}
		return
	}
	m.pos = min(m.pos+m.steps, len(m.lap.Cells))
}

// save stores the current lap once.
func (m *Model) save() {
	if m.opts.Store == nil {
		m.status = "no database, lap not saved"
		return
	}
	if m.saved {
		m.status = "lap already saved"
		return
	}

	id, err := m.opts.Store.SaveTrace(storage.Trace{
		AreaID: m.lap.Shape.ID,
		Start:  m.lap.Start,
		Cells:  m.lap.Cells,
	})
	if err != nil {
		m.status = err.Error()
		if m.opts.Logger != nil {
			m.opts.Logger.Error("cannot save lap", "area", m.lap.Shape.ID, "error", err)
		}
		return
	}

	m.saved = true
	m.status = fmt.Sprintf("saved lap #%d", id)
	if m.opts.Logger != nil {
		m.opts.Logger.Info("lap saved", "id", id, "area", m.lap.Shape.ID, "cells", len(m.lap.Cells))
	}
}

// Progress returns how many reported cells are shown out of the lap length.
func (m Model) Progress() (shown, total int) {
	return m.pos, len(m.lap.Cells)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.lap.Shape.Title()))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  [%d/%d] %s", m.index+1, len(m.areaIDs), m.lap.Shape.ID)))
	b.WriteString("\n\n")

	b.WriteString(m.opts.Theme.Render(m.lap.Canvas(m.pos)))
	b.WriteString("\n\n")

	shown, total := m.Progress()
	state := fmt.Sprintf("visit %d/%d  speed %d", shown, total, m.steps)
	if shown > 0 {
		state += fmt.Sprintf("  at %v", m.lap.Cells[shown-1])
	}
	if m.paused {
		state += "  (paused)"
	}
	b.WriteString(state)
	if m.status != "" {
		b.WriteString("  " + dimStyle.Render(m.status))
	}
	b.WriteString("\n\n")

	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program with the given model.
func Run(m Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
