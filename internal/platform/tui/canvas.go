package tui

import (
	"strings"

	"github.com/vovakirdan/borderwalk/internal/area"
	"github.com/vovakirdan/borderwalk/internal/grid"
)

// Kind classifies a canvas cell for rendering.
type Kind uint8

// Cell kinds, in increasing drawing priority.
const (
	KindOutside Kind = iota
	KindInside
	KindBorder // Outside cell already reported by the lap
	KindStart  // Start cell of the lap
	KindCursor // Most recently reported cell
)

// Canvas is a 2D buffer of cell kinds covering a window of grid space.
// It decouples the lap from the terminal: callers mark cells in grid
// coordinates and the renderer turns kinds into styled glyphs.
type Canvas struct {
	bounds grid.Rect
	cells  []Kind
}

// NewCanvas creates a canvas covering bounds, filled with KindOutside.
func NewCanvas(bounds grid.Rect) *Canvas {
	if bounds.Empty() {
		bounds = grid.Rect{}
	}
	return &Canvas{
		bounds: bounds,
		cells:  make([]Kind, bounds.W*bounds.H),
	}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int {
	return c.bounds.W
}

// Height returns the canvas height in cells.
func (c *Canvas) Height() int {
	return c.bounds.H
}

// Bounds returns the window of grid space the canvas covers.
func (c *Canvas) Bounds() grid.Rect {
	return c.bounds
}

// Set marks the cell at p. Cells outside the canvas are silently ignored.
func (c *Canvas) Set(p grid.Coord, k Kind) {
	if !c.bounds.Contains(p.X, p.Y) {
		return
	}
	c.cells[c.index(p)] = k
}

// Get returns the kind at p, KindOutside when p is off the canvas.
func (c *Canvas) Get(p grid.Coord) Kind {
	if !c.bounds.Contains(p.X, p.Y) {
		return KindOutside
	}
	return c.cells[c.index(p)]
}

// At returns the kind at column x and row y of the canvas.
func (c *Canvas) At(x, y int) Kind {
	return c.Get(grid.C(c.bounds.X+x, c.bounds.Y+y))
}

// FillArea marks every contained cell of the canvas as KindInside.
func (c *Canvas) FillArea(o area.Oracle) {
	for y := c.bounds.Y; y < c.bounds.Bottom(); y++ {
		for x := c.bounds.X; x < c.bounds.Right(); x++ {
			if o.Contains(x, y) {
				c.cells[c.index(grid.C(x, y))] = KindInside
			}
		}
	}
}

// String renders the canvas with one rune per kind, rows joined with newlines.
func (c *Canvas) String(glyphs [5]rune) string {
	var sb strings.Builder
	sb.Grow(c.bounds.W*c.bounds.H + c.bounds.H)

	for y := 0; y < c.bounds.H; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < c.bounds.W; x++ {
			sb.WriteRune(glyphs[c.At(x, y)])
		}
	}
	return sb.String()
}

func (c *Canvas) index(p grid.Coord) int {
	return (p.Y-c.bounds.Y)*c.bounds.W + (p.X - c.bounds.X)
}
