package border

import "github.com/vovakirdan/borderwalk/internal/grid"

// Collect runs one lap and returns the visited cells in order.
func Collect(contains ContainsFunc, start grid.Coord) []grid.Coord {
	var cells []grid.Coord
	TraverseBorder(contains, start, func(x, y int) {
		cells = append(cells, grid.C(x, y))
	})
	return cells
}

// Distinct wraps visit so that a cell touched more than once in a lap
// (an outside cell spanning two arms of a concave area) is only passed
// on the first time. The returned visitor is good for one lap.
func Distinct(visit VisitFunc) VisitFunc {
	seen := make(map[grid.Coord]struct{})
	return func(x, y int) {
		c := grid.C(x, y)
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		visit(x, y)
	}
}

// Ring returns the outside cells 8-adjacent to any of the given inside
// cells, i.e. the set a full lap around a hole-free area should cover.
func Ring(contains ContainsFunc, inside []grid.Coord) map[grid.Coord]struct{} {
	ring := make(map[grid.Coord]struct{})
	for _, c := range inside {
		for _, n := range c.Neighbors() {
			if !contains(n.X, n.Y) {
				ring[n] = struct{}{}
			}
		}
	}
	return ring
}
