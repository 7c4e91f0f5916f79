package border

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"

	"github.com/vovakirdan/borderwalk/internal/grid"
)

// cells builds a containment predicate from ASCII rows ('#' is inside).
func cells(rows ...string) (ContainsFunc, []grid.Coord) {
	set := make(map[grid.Coord]bool)
	var inside []grid.Coord
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				set[grid.C(x, y)] = true
				inside = append(inside, grid.C(x, y))
			}
		}
	}
	return func(x, y int) bool { return set[grid.C(x, y)] }, inside
}

func rect(w, h int) (ContainsFunc, []grid.Coord) {
	r := grid.NewRect(0, 0, w, h)
	var inside []grid.Coord
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			inside = append(inside, grid.C(x, y))
		}
	}
	return r.Contains, inside
}

func borderCells(contains ContainsFunc, inside []grid.Coord) []grid.Coord {
	var out []grid.Coord
	for _, c := range inside {
		for _, n := range c.Neighbors() {
			if !contains(n.X, n.Y) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// sameCycle reports whether b is a rotation of a.
func sameCycle(a, b []grid.Coord) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	for k := range a {
		match := true
		for i := range a {
			if a[(k+i)%len(a)] != b[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func TestTraverseBorderSingleCell(t *testing.T) {
	contains, _ := cells("#")

	got := Collect(contains, grid.C(0, 0))

	want := []grid.Coord{
		{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
		{X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
	}
	assert.DeepEqual(t, want, got)
}

func TestTraverseBorderNegativeCoordinates(t *testing.T) {
	origin := grid.C(-5, -7)
	contains := func(x, y int) bool { return x == origin.X && y == origin.Y }

	got := Collect(contains, origin)

	assert.Equal(t, len(got), 8)
	for i, d := range []grid.Dir{grid.DirN, grid.DirNE, grid.DirE, grid.DirSE, grid.DirS, grid.DirSW, grid.DirW, grid.DirNW} {
		assert.Equal(t, got[i], origin.Step(d), "visit %d", i)
	}
}

func TestTraverseBorderShapes(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		start grid.Coord
		want  []grid.Coord
	}{
		{
			name:  "3x2 rectangle",
			rows:  []string{"###", "###"},
			start: grid.C(0, 0),
			want: []grid.Coord{
				{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 2, Y: -1}, {X: 3, Y: -1}, {X: 3, Y: 0}, {X: 3, Y: 1}, {X: 3, Y: 2},
				{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}, {X: -1, Y: 2}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
			},
		},
		{
			name:  "ell",
			rows:  []string{"#..", "#..", "###"},
			start: grid.C(0, 0),
			want: []grid.Coord{
				{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3},
				{X: 2, Y: 3}, {X: 1, Y: 3}, {X: 0, Y: 3}, {X: -1, Y: 3}, {X: -1, Y: 2}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
			},
		},
		{
			name:  "diagonal pair",
			rows:  []string{"#.", ".#"},
			start: grid.C(0, 0),
			want: []grid.Coord{
				{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2},
				{X: 1, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
			},
		},
		{
			name:  "start with only a diagonal outside neighbour",
			rows:  []string{"###", "###", "##."},
			start: grid.C(1, 1),
			want: []grid.Coord{
				{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 1, Y: 3}, {X: 0, Y: 3}, {X: -1, Y: 3}, {X: -1, Y: 2}, {X: -1, Y: 1}, {X: -1, Y: 0},
				{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1}, {X: 2, Y: -1}, {X: 3, Y: -1}, {X: 3, Y: 0}, {X: 3, Y: 1}, {X: 3, Y: 2},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			contains, _ := cells(tc.rows...)
			assert.DeepEqual(t, tc.want, Collect(contains, tc.start))
		})
	}
}

func TestTraverseBorderRectangleRing(t *testing.T) {
	for w := 1; w <= 5; w++ {
		for h := 1; h <= 5; h++ {
			contains, inside := rect(w, h)
			ring := Ring(contains, inside)
			assert.Equal(t, len(ring), 2*w+2*h+4)

			for _, start := range borderCells(contains, inside) {
				got := Collect(contains, start)
				assert.Equal(t, len(got), len(ring), "%dx%d from %v", w, h, start)

				seen := make(map[grid.Coord]bool)
				for _, c := range got {
					assert.Assert(t, !contains(c.X, c.Y), "%v is inside", c)
					_, onRing := ring[c]
					assert.Assert(t, onRing, "%v is not next to the area", c)
					assert.Assert(t, !seen[c], "%v visited twice", c)
					seen[c] = true
				}
			}
		}
	}
}

func TestTraverseBorderSameCycleFromAnyStart(t *testing.T) {
	shapes := map[string][]string{
		"rectangle": {"####", "####", "####"},
		"ell":       {"#..", "#..", "###"},
		"plus":      {".#.", "###", ".#."},
		"stairs":    {"#...", "##..", ".##.", "..##"},
	}

	for name, rows := range shapes {
		t.Run(name, func(t *testing.T) {
			contains, inside := cells(rows...)
			starts := borderCells(contains, inside)
			ref := Collect(contains, starts[0])
			assert.Assert(t, len(ref) > 0)

			for _, start := range starts[1:] {
				got := Collect(contains, start)
				assert.Assert(t, sameCycle(ref, got), "lap from %v differs: %v vs %v", start, got, ref)
			}
		})
	}
}

func TestTraverseBorderInteriorStart(t *testing.T) {
	contains, _ := rect(3, 3)

	calls := 0
	TraverseBorder(contains, grid.C(1, 1), func(x, y int) { calls++ })

	assert.Equal(t, calls, 0)
}

func TestTraverseBorderOutsideStart(t *testing.T) {
	contains, _ := cells("###", "###")

	for _, start := range []grid.Coord{grid.C(-1, -1), grid.C(1, 2), grid.C(3, 0), grid.C(50, -50)} {
		calls := 0
		err := Walk(contains, start, func(x, y int) error {
			calls++
			if calls > 100 {
				return ErrStop
			}
			return nil
		})
		assert.NilError(t, err)
		assert.Equal(t, calls, 0, "start %v", start)
	}
}

func TestTraverseBorderDeterministic(t *testing.T) {
	contains, _ := cells("##.", ".##", "..#")

	first := Collect(contains, grid.C(0, 0))
	for i := 0; i < 5; i++ {
		assert.DeepEqual(t, first, Collect(contains, grid.C(0, 0)))
	}
}

func TestTraverseBorderConcaveNotch(t *testing.T) {
	contains, inside := cells("#.#", "###")

	got := Collect(contains, grid.C(0, 0))
	assert.Equal(t, len(got), 16)

	// (1,-1) sits above the notch and touches both arms.
	touches := 0
	for _, c := range got {
		if c == grid.C(1, -1) {
			touches++
		}
	}
	assert.Equal(t, touches, 2)

	var distinct []grid.Coord
	TraverseBorder(contains, grid.C(0, 0), Distinct(func(x, y int) {
		distinct = append(distinct, grid.C(x, y))
	}))
	assert.Equal(t, len(distinct), len(Ring(contains, inside)))
	assert.Equal(t, distinct[2], grid.C(1, 0))
}

func TestWalkVisitorError(t *testing.T) {
	contains, _ := cells("#")
	boom := errors.New("boom")

	calls := 0
	err := Walk(contains, grid.C(0, 0), func(x, y int) error {
		calls++
		if calls == 3 {
			return boom
		}
		return nil
	})

	assert.Assert(t, errors.Is(err, boom))
	assert.Equal(t, calls, 3)
}

func TestWalkErrStop(t *testing.T) {
	contains, _ := rect(4, 4)

	var got []grid.Coord
	err := Walk(contains, grid.C(0, 0), func(x, y int) error {
		got = append(got, grid.C(x, y))
		if len(got) == 5 {
			return ErrStop
		}
		return nil
	})

	assert.NilError(t, err)
	assert.Equal(t, len(got), 5)
}

func TestTraverseBorderVisitorPanicPropagates(t *testing.T) {
	contains, _ := cells("#")

	assert.Assert(t, cmp.Panics(func() {
		TraverseBorder(contains, grid.C(0, 0), func(x, y int) { panic("visitor") })
	}))
}
