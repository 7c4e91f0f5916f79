package shapes

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/vovakirdan/borderwalk/internal/border"
	"github.com/vovakirdan/borderwalk/internal/grid"
	"github.com/vovakirdan/borderwalk/internal/registry"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, s := range builtins {
		assert.Assert(t, registry.Exists(s.ID), s.ID)
	}
}

func TestBuiltinsTraceCoversRing(t *testing.T) {
	for _, info := range registry.List() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := registry.Create(info.ID)
			assert.NilError(t, err)

			r := s.Region()
			start, err := s.StartCell()
			assert.NilError(t, err)

			ring := border.Ring(r.Contains, r.Coords())
			seen := make(map[grid.Coord]bool)
			border.TraverseBorder(r.Contains, start, func(x, y int) {
				assert.Assert(t, !r.Contains(x, y))
				seen[grid.C(x, y)] = true
			})
			assert.Equal(t, len(seen), len(ring))
		})
	}
}

func TestCreateReturnsIndependentCopies(t *testing.T) {
	a, err := registry.Create("dot")
	assert.NilError(t, err)
	a.Rows[0] = "."

	b, err := registry.Create("dot")
	assert.NilError(t, err)
	assert.Equal(t, b.Rows[0], "#")

	c, err := registry.Create("tee")
	assert.NilError(t, err)
	c.Cells[0] = grid.C(9, 9)

	d, err := registry.Create("tee")
	assert.NilError(t, err)
	assert.Equal(t, d.Cells[0], grid.C(-1, -1))
}

func TestTeeIsSparse(t *testing.T) {
	s, err := registry.Create("tee")
	assert.NilError(t, err)

	r := s.Region()
	assert.Equal(t, r.Bounds(), grid.NewRect(-1, -1, 3, 3))

	start, err := s.StartCell()
	assert.NilError(t, err)
	assert.Equal(t, start, grid.C(-1, -1))

	got := border.Collect(r.Contains, start)
	assert.Equal(t, len(got), 16)
	assert.DeepEqual(t, got[:3], []grid.Coord{{X: -1, Y: -2}, {X: 0, Y: -2}, {X: 1, Y: -2}})
}
