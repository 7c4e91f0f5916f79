// Package shapes registers the built-in sample areas.
// Import it for its side effects.
package shapes

import (
	"github.com/vovakirdan/borderwalk/internal/area"
	"github.com/vovakirdan/borderwalk/internal/grid"
	"github.com/vovakirdan/borderwalk/internal/registry"
)

// builtins are hole-free areas: the tracer walks a single loop around each.
var builtins = []area.Shape{
	{
		ID:   "dot",
		Name: "Single cell",
		Rows: []string{"#"},
	},
	{
		ID:   "domino",
		Name: "Domino",
		Rows: []string{"##"},
	},
	{
		ID:   "square",
		Name: "Square 4x4",
		Rows: []string{
			"####",
			"####",
			"####",
			"####",
		},
	},
	{
		ID:   "rect",
		Name: "Rectangle 8x3",
		Rows: []string{
			"########",
			"########",
			"########",
		},
	},
	{
		ID:   "ell",
		Name: "L shape",
		Rows: []string{
			"##....",
			"##....",
			"##....",
			"######",
			"######",
		},
	},
	{
		ID:   "plus",
		Name: "Plus",
		Rows: []string{
			"..##..",
			"..##..",
			"######",
			"######",
			"..##..",
			"..##..",
		},
	},
	{
		ID:   "diamond",
		Name: "Diamond",
		Rows: []string{
			"...#...",
			"..###..",
			".#####.",
			"#######",
			".#####.",
			"..###..",
			"...#...",
		},
	},
	{
		ID:   "stairs",
		Name: "Diagonal stairs",
		Rows: []string{
			"#.....",
			"##....",
			".##...",
			"..##..",
			"...##.",
			"....##",
		},
	},
	{
		ID:   "comb",
		Name: "Comb (concave)",
		Rows: []string{
			"#.#.#.#",
			"#.#.#.#",
			"#######",
		},
	},
	{
		ID:   "tee",
		Name: "Tee around the origin",
		Cells: []grid.Coord{
			{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
			{X: 0, Y: 0},
			{X: 0, Y: 1},
		},
	},
}

func init() {
	for _, s := range builtins {
		shape := s
		registry.Register(shape.ID, func() area.Shape {
			out := shape
			out.Rows = append([]string(nil), shape.Rows...)
			out.Cells = append([]grid.Coord(nil), shape.Cells...)
			return out
		})
	}
}
