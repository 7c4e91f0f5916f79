package tui

import (
	"github.com/vovakirdan/borderwalk/internal/area"
	"github.com/vovakirdan/borderwalk/internal/border"
	"github.com/vovakirdan/borderwalk/internal/grid"
)

// Lap is a precomputed walk around a shape.
type Lap struct {
	Shape area.Shape
	Area  area.Region
	Start grid.Coord
	Cells []grid.Coord
}

// NewLap traces one lap around shape from its start cell.
func NewLap(shape area.Shape) (Lap, error) {
	r := shape.Region()
	start, err := shape.StartCell()
	if err != nil {
		return Lap{}, err
	}
	return Lap{
		Shape: shape,
		Area:  r,
		Start: start,
		Cells: border.Collect(r.Contains, start),
	}, nil
}

// Bounds covers the area and every reported cell.
func (l Lap) Bounds() grid.Rect {
	return l.Area.Bounds().Union(grid.Bounds(l.Cells))
}

// Canvas draws the area with the first n reported cells of the lap.
func (l Lap) Canvas(n int) *Canvas {
	n = grid.Clamp(n, 0, len(l.Cells))

	c := NewCanvas(l.Bounds())
	c.FillArea(l.Area)
	c.Set(l.Start, KindStart)
	for _, p := range l.Cells[:n] {
		c.Set(p, KindBorder)
	}
	if n > 0 {
		c.Set(l.Cells[n-1], KindCursor)
	}
	return c
}
