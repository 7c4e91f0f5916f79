// Package border traces the outer border of an area on an 8-connected grid.
//
// The area is described only by a containment predicate and the border is
// streamed to a visitor; the tracer owns no storage and allocates nothing.
// Both callbacks are invoked synchronously from the calling goroutine.
package border

import (
	"errors"

	"github.com/vovakirdan/borderwalk/internal/grid"
)

// ContainsFunc reports whether the cell (x, y) belongs to the area.
// It must be a pure function of its arguments for the duration of a lap.
type ContainsFunc func(x, y int) bool

// VisitFunc receives each outside border cell in walk order.
type VisitFunc func(x, y int)

// ErrStop may be returned by a Walk visitor to end the lap early.
// Walk reports it as a nil error.
var ErrStop = errors.New("border: stop")

// TraverseBorder walks the border loop that passes next to start and calls
// visit for each contact with an outside cell on it, clockwise on screen,
// starting with the first outside neighbour of start in direction order.
// An outside cell that touches the area at more than one place, such as
// one spanning the mouth of a concave notch, is reported once per contact;
// wrap visit with Distinct to see every cell only once.
//
// If start is not contained in the area, or none of its eight neighbours
// is outside the area, visit is never called.
func TraverseBorder(contains ContainsFunc, start grid.Coord, visit VisitFunc) {
	_ = Walk(contains, start, func(x, y int) error {
		visit(x, y)
		return nil
	})
}

// Walk is TraverseBorder with an error-returning visitor. The first error
// returned by visit aborts the lap and is returned unchanged, except
// ErrStop which ends the lap with a nil error.
func Walk(contains ContainsFunc, start grid.Coord, visit func(x, y int) error) error {
	if !contains(start.X, start.Y) {
		return nil
	}
	inside, outside, ok := seed(contains, start)
	if !ok {
		return nil
	}
	startInside, startOutside := inside, outside

	// The pair is always 4-adjacent: it names the crack between an inside
	// and an outside cell. Each step moves to the next crack clockwise and
	// reports an outside cell when the walk leaves it.
	for {
		outIn, ok := grid.DirBetween(inside.Sub(outside))
		if !ok {
			// Every transition keeps the pair 4-adjacent; only an oracle
			// that changes its answers mid-lap can get here.
			return nil
		}
		ahead := outside.Step(outIn.Rotate(-2))
		diag := outside.Step(outIn.Rotate(-1))

		switch {
		case contains(ahead.X, ahead.Y):
			// Concave corner: the border turns towards the outside cell.
			inside = ahead
		case contains(diag.X, diag.Y):
			if err := visit(outside.X, outside.Y); err != nil {
				return stopped(err)
			}
			inside, outside = diag, ahead
		default:
			// Convex corner: swing round the inside cell, passing ahead.
			if err := visit(outside.X, outside.Y); err != nil {
				return stopped(err)
			}
			if err := visit(ahead.X, ahead.Y); err != nil {
				return stopped(err)
			}
			outside = diag
		}

		if inside == startInside && outside == startOutside {
			return nil
		}
	}
}

// seed picks the first outside neighbour of start in direction order.
// A diagonal neighbour is paired with the orthogonal neighbour scanned just
// before it, which is known to be inside.
func seed(contains ContainsFunc, start grid.Coord) (inside, outside grid.Coord, ok bool) {
	for _, d := range grid.AllDirs() {
		n := start.Step(d)
		if contains(n.X, n.Y) {
			continue
		}
		if d.IsDiagonal() {
			return start.Step(d.Rotate(-1)), n, true
		}
		return start, n, true
	}
	return grid.Coord{}, grid.Coord{}, false
}

func stopped(err error) error {
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}
