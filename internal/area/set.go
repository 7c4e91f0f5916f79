package area

import (
	"sort"

	"github.com/vovakirdan/borderwalk/internal/grid"
)

// Set is a sparse, unbounded area. Negative coordinates are allowed.
type Set map[grid.Coord]struct{}

// NewSet creates a set holding the given cells.
func NewSet(cells ...grid.Coord) Set {
	s := make(Set, len(cells))
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

// Contains reports whether (x, y) is in the set.
func (s Set) Contains(x, y int) bool {
	_, ok := s[grid.C(x, y)]
	return ok
}

// Add puts c in the set.
func (s Set) Add(c grid.Coord) {
	s[c] = struct{}{}
}

// Count returns the number of cells in the set.
func (s Set) Count() int {
	return len(s)
}

// Bounds returns the smallest rectangle covering the set.
func (s Set) Bounds() grid.Rect {
	return grid.Bounds(s.Coords())
}

// Coords returns the cells ordered by row then column.
func (s Set) Coords() []grid.Coord {
	coords := make([]grid.Coord, 0, len(s))
	for c := range s {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Y != coords[j].Y {
			return coords[i].Y < coords[j].Y
		}
		return coords[i].X < coords[j].X
	})
	return coords
}

// FirstBorder returns the first border cell in row order.
func (s Set) FirstBorder() (grid.Coord, error) {
	// Every non-empty finite set has a border; the top-left cell is on it.
	coords := s.Coords()
	if len(coords) == 0 {
		return grid.Coord{}, ErrNoBorder
	}
	return coords[0], nil
}
