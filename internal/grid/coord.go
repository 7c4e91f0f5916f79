// Package grid provides integer grid coordinates and the fixed eight-way
// direction set used by the border tracer.
// It has no external dependencies to keep the tracing core pure and testable.
package grid

import "fmt"

// Coord represents a cell address on an unbounded integer grid.
// X increases to the right, Y increases downward (screen coordinates).
// Negative coordinates are valid.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Sub returns the component-wise difference c - other.
func (c Coord) Sub(other Coord) (dx, dy int) {
	return c.X - other.X, c.Y - other.Y
}

// Step returns a new Coord one step in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Neighbors returns the eight neighbours of c in direction enumeration order.
func (c Coord) Neighbors() [DirCount]Coord {
	var out [DirCount]Coord
	for i, d := range dirs {
		out[i] = c.Step(d)
	}
	return out
}

// ParseCoord parses "x,y" (spaces allowed) into a Coord.
func ParseCoord(s string) (Coord, error) {
	var c Coord
	if _, err := fmt.Sscanf(s, "%d,%d", &c.X, &c.Y); err != nil {
		return Coord{}, fmt.Errorf("grid: invalid coordinate %q (want x,y): %w", s, err)
	}
	return c, nil
}
