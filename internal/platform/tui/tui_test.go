package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/vovakirdan/borderwalk/internal/area"
	"github.com/vovakirdan/borderwalk/internal/config"
	"github.com/vovakirdan/borderwalk/internal/grid"
	"github.com/vovakirdan/borderwalk/internal/registry"
	_ "github.com/vovakirdan/borderwalk/internal/shapes"
	"github.com/vovakirdan/borderwalk/internal/storage"
)

func testTheme() Theme {
	return NewTheme(config.DefaultConfig().Render)
}

func testModel(t *testing.T, loop bool, store *storage.Store) Model {
	t.Helper()
	m, err := NewModel([]string{"dot", "ell"}, "dot", Options{
		Watch: config.WatchConfig{TickRate: 20, StepsPerTick: 1, Loop: loop},
		Theme: testTheme(),
		Store: store,
	})
	assert.NilError(t, err)
	return m
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func ticks(m Model, n int) Model {
	for range n {
		m = update(m, TickMsg{})
	}
	return m
}

func TestLapCanvas(t *testing.T) {
	lap, err := NewLap(area.Shape{ID: "dot", Rows: []string{"#"}})
	assert.NilError(t, err)
	assert.Equal(t, len(lap.Cells), 8)
	assert.Equal(t, lap.Bounds(), grid.NewRect(-1, -1, 3, 3))

	theme := testTheme()
	tests := []struct {
		n    int
		want string
	}{
		{0, "...\n.S.\n..."},
		{2, ".o@\n.S.\n..."},
		{8, "@oo\noSo\nooo"},
		{99, "@oo\noSo\nooo"},
	}
	for _, tt := range tests {
		assert.Equal(t, theme.Plain(lap.Canvas(tt.n)), tt.want, "n=%d", tt.n)
	}
}

func TestCanvasIgnoresOutOfBounds(t *testing.T) {
	c := NewCanvas(grid.NewRect(0, 0, 2, 1))
	c.Set(grid.C(5, 5), KindBorder)
	c.Set(grid.C(1, 0), KindInside)
	assert.Equal(t, c.Get(grid.C(5, 5)), KindOutside)
	assert.Equal(t, c.At(1, 0), KindInside)
	assert.Equal(t, c.Get(grid.C(-1, 0)), KindOutside)
}

func TestNewThemeFallsBackToDefaultGlyphs(t *testing.T) {
	theme := NewTheme(config.RenderConfig{})
	assert.Equal(t, theme.Glyphs[KindInside], '#')
	assert.Equal(t, theme.Glyphs[KindCursor], '@')

	cfg := config.DefaultConfig().Render
	cfg.Glyphs.Border = "*"
	assert.Equal(t, NewTheme(cfg).Glyphs[KindBorder], '*')
}

func TestRenderKeepsGlyphs(t *testing.T) {
	lap, err := NewLap(area.Shape{ID: "domino", Rows: []string{"##"}})
	assert.NilError(t, err)

	theme := testTheme()
	plain := theme.Plain(lap.Canvas(len(lap.Cells)))
	rendered := theme.Render(lap.Canvas(len(lap.Cells)))
	for _, r := range plain {
		assert.Check(t, strings.ContainsRune(rendered, r), "missing %q", r)
	}
}

func TestModelAdvances(t *testing.T) {
	m := testModel(t, false, nil)
	assert.Equal(t, m.lap.Shape.ID, "dot")

	m = ticks(m, 3)
	shown, total := m.Progress()
	assert.Equal(t, shown, 3)
	assert.Equal(t, total, 8)

	m = ticks(m, 20)
	shown, _ = m.Progress()
	assert.Equal(t, shown, 8)
}

func TestModelLoops(t *testing.T) {
	m := ticks(testModel(t, true, nil), 8)
	shown, _ := m.Progress()
	assert.Equal(t, shown, 8)

	m = update(m, TickMsg{})
	shown, _ = m.Progress()
	assert.Equal(t, shown, 0)
}

func TestModelKeys(t *testing.T) {
	m := testModel(t, false, nil)

	m = update(m, keyMsg("p"))
	assert.Assert(t, m.paused)
	m = ticks(m, 5)
	shown, _ := m.Progress()
	assert.Equal(t, shown, 0)

	m = update(m, keyMsg("+"))
	m = update(m, keyMsg("+"))
	assert.Equal(t, m.steps, 4)
	m = update(m, keyMsg("-"))
	assert.Equal(t, m.steps, 2)

	m = update(m, keyMsg("p"))
	m = ticks(m, 2)
	shown, _ = m.Progress()
	assert.Equal(t, shown, 4)

	m = update(m, keyMsg("r"))
	shown, _ = m.Progress()
	assert.Equal(t, shown, 0)

	m = update(m, keyMsg("n"))
	assert.Equal(t, m.lap.Shape.ID, "ell")
	m = update(m, keyMsg("n"))
	assert.Equal(t, m.lap.Shape.ID, "dot")
	m = update(m, keyMsg("b"))
	assert.Equal(t, m.lap.Shape.ID, "ell")

	_, cmd := m.Update(keyMsg("q"))
	assert.Assert(t, cmd != nil)
}

func TestModelSave(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "watch.db"))
	assert.NilError(t, err)
	defer store.Close()

	m := testModel(t, false, store)
	m = update(m, keyMsg("s"))
	m = update(m, keyMsg("s"))
	assert.Check(t, is.Contains(m.View(), "lap already saved"))

	traces, err := store.RecentTraces("dot", 10)
	assert.NilError(t, err)
	assert.Equal(t, len(traces), 1)
	assert.Equal(t, traces[0].CellCount, 8)
	assert.Equal(t, traces[0].Start, grid.C(0, 0))
}

func TestModelView(t *testing.T) {
	m := ticks(testModel(t, false, nil), 1)
	view := m.View()
	assert.Check(t, is.Contains(view, "dot"))
	assert.Check(t, is.Contains(view, "visit 1/8"))
	assert.Check(t, is.Contains(view, "(0,-1)"))
}

func TestNewModelErrors(t *testing.T) {
	_, err := NewModel(nil, "", Options{})
	assert.ErrorContains(t, err, "no areas")

	_, err = NewModel([]string{"no-such-area"}, "", Options{})
	assert.ErrorContains(t, err, "no-such-area")
}

func TestHistoryModel(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	assert.NilError(t, err)
	defer store.Close()

	for _, id := range []string{"dot", "ell"} {
		lap, err := NewLap(mustShape(t, id))
		assert.NilError(t, err)
		_, err = store.SaveTrace(storage.Trace{AreaID: id, Start: lap.Start, Cells: lap.Cells})
		assert.NilError(t, err)
	}

	m := NewHistoryModel(store, testTheme(), "", 100, 30)
	tr, ok := m.Selected()
	assert.Assert(t, ok)
	assert.Equal(t, tr.AreaID, "ell")
	assert.Check(t, is.Contains(m.View(), "SAVED LAPS"))

	m = NewHistoryModel(store, testTheme(), "dot", 100, 30)
	tr, ok = m.Selected()
	assert.Assert(t, ok)
	assert.Equal(t, tr.AreaID, "dot")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(HistoryModel)
	assert.Check(t, is.Contains(m.View(), "S"))
	assert.Check(t, m.preview != "")
}

func TestHistoryModelWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, testTheme(), "", 80, 24)
	_, ok := m.Selected()
	assert.Assert(t, !ok)
	assert.Check(t, is.Contains(m.View(), "No laps saved yet"))
}

func mustShape(t *testing.T, id string) area.Shape {
	t.Helper()
	shape, err := registry.Create(id)
	assert.NilError(t, err)
	return shape
}
