// Package area provides containment oracles for the border tracer: a dense
// bitmap, a sparse cell set, and named shape definitions loaded from YAML.
package area

import (
	"errors"

	"github.com/vovakirdan/borderwalk/internal/grid"
)

// ErrNoBorder is returned when an area has no cell with an outside neighbour.
var ErrNoBorder = errors.New("area: no border cell")

// Oracle is anything that can answer membership for a grid cell.
type Oracle interface {
	Contains(x, y int) bool
}

// Region is a finite area that can describe its own extent.
// Bitmap and Set both satisfy it.
type Region interface {
	Oracle
	Bounds() grid.Rect
	Count() int
	Coords() []grid.Coord
	FirstBorder() (grid.Coord, error)
}

// OnBorder reports whether c is inside o and has at least one outside neighbour.
func OnBorder(o Oracle, c grid.Coord) bool {
	if !o.Contains(c.X, c.Y) {
		return false
	}
	for _, n := range c.Neighbors() {
		if !o.Contains(n.X, n.Y) {
			return true
		}
	}
	return false
}
