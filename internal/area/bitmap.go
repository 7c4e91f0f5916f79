package area

import "github.com/vovakirdan/borderwalk/internal/grid"

// Bitmap is a dense W x H area. Cells are stored in row-major order:
// index = y*W + x. Everything outside the bitmap is outside the area.
type Bitmap struct {
	W     int    // Width of the bitmap
	H     int    // Height of the bitmap
	Cells []bool // Flat array of cells, length W*H
}

// NewBitmap creates an empty bitmap with the given dimensions.
func NewBitmap(w, h int) *Bitmap {
	return &Bitmap{
		W:     w,
		H:     h,
		Cells: make([]bool, w*h),
	}
}

// ParseASCII builds a bitmap from text rows: '#' is inside, anything else
// is outside. The width is that of the longest row.
func ParseASCII(rows []string) *Bitmap {
	w := 0
	for _, row := range rows {
		w = grid.Max(w, len(row))
	}
	b := NewBitmap(w, len(rows))
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == '#' {
				b.Set(grid.C(x, y))
			}
		}
	}
	return b
}

// index converts a coordinate to a flat array index.
func (b *Bitmap) index(c grid.Coord) int {
	return c.Y*b.W + c.X
}

// InBounds returns true if the coordinate is within the bitmap.
func (b *Bitmap) InBounds(c grid.Coord) bool {
	return c.X >= 0 && c.X < b.W && c.Y >= 0 && c.Y < b.H
}

// Contains reports whether (x, y) is inside the area.
func (b *Bitmap) Contains(x, y int) bool {
	c := grid.C(x, y)
	return b.InBounds(c) && b.Cells[b.index(c)]
}

// Set marks the cell as inside. Out-of-bounds coordinates are ignored.
func (b *Bitmap) Set(c grid.Coord) {
	if b.InBounds(c) {
		b.Cells[b.index(c)] = true
	}
}

// Count returns the number of inside cells.
func (b *Bitmap) Count() int {
	n := 0
	for _, in := range b.Cells {
		if in {
			n++
		}
	}
	return n
}

// Bounds returns the rectangle covered by the bitmap.
func (b *Bitmap) Bounds() grid.Rect {
	return grid.NewRect(0, 0, b.W, b.H)
}

// Coords returns all inside cells, ordered by row then column.
func (b *Bitmap) Coords() []grid.Coord {
	coords := make([]grid.Coord, 0)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if b.Cells[y*b.W+x] {
				coords = append(coords, grid.C(x, y))
			}
		}
	}
	return coords
}

// FirstBorder returns the first border cell in scan order.
func (b *Bitmap) FirstBorder() (grid.Coord, error) {
	for _, c := range b.Coords() {
		if OnBorder(b, c) {
			return c, nil
		}
	}
	return grid.Coord{}, ErrNoBorder
}
