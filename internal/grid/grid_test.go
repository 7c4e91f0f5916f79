package grid

import "testing"

func TestDirDeltaAndBetween(t *testing.T) {
	for _, d := range AllDirs() {
		dx, dy := d.Delta()
		got, ok := DirBetween(dx, dy)
		if !ok {
			t.Errorf("DirBetween(%d, %d) not defined for %v", dx, dy, d)
			continue
		}
		if got != d {
			t.Errorf("DirBetween(%d, %d) = %v, expected %v", dx, dy, got, d)
		}
	}
}

func TestDirBetweenUndefined(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
	}{
		{"zero", 0, 0},
		{"two right", 2, 0},
		{"two up", 0, -2},
		{"knight", 1, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := DirBetween(tc.dx, tc.dy); ok {
				t.Errorf("DirBetween(%d, %d) should be undefined", tc.dx, tc.dy)
			}
		})
	}
}

func TestDirRotate(t *testing.T) {
	tests := []struct {
		d        Dir
		k        int
		expected Dir
	}{
		{DirN, 1, DirNE},
		{DirN, -1, DirNW},
		{DirNW, 1, DirN},
		{DirE, -2, DirN},
		{DirS, 4, DirN},
		{DirSW, -11, DirE},
		{DirW, 16, DirW},
	}

	for _, tc := range tests {
		if got := tc.d.Rotate(tc.k); got != tc.expected {
			t.Errorf("%v.Rotate(%d) = %v, expected %v", tc.d, tc.k, got, tc.expected)
		}
	}
}

func TestDirDiagonal(t *testing.T) {
	for _, d := range AllDirs() {
		dx, dy := d.Delta()
		if d.IsDiagonal() != (dx != 0 && dy != 0) {
			t.Errorf("%v.IsDiagonal() = %v", d, d.IsDiagonal())
		}
	}
}

func TestAllDirsClockwise(t *testing.T) {
	// Consecutive directions are 45 degrees apart: their deltas differ by one step.
	all := AllDirs()
	for i, d := range all {
		next := all[(i+1)%DirCount]
		if d.Rotate(1) != next {
			t.Errorf("%v.Rotate(1) = %v, expected %v", d, d.Rotate(1), next)
		}
		a, b := C(0, 0).Step(d), C(0, 0).Step(next)
		if _, ok := DirBetween(b.Sub(a)); !ok {
			t.Errorf("%v and %v are not neighbours on the compass", d, next)
		}
	}
	if all[0] != DirN {
		t.Errorf("enumeration starts at %v, expected N", all[0])
	}
}

func TestCoordNeighbors(t *testing.T) {
	c := C(-3, 4)
	n := c.Neighbors()

	if n[0] != C(-3, 3) {
		t.Errorf("first neighbour = %v, expected (-3,3)", n[0])
	}
	for i, nb := range n {
		if d, ok := DirBetween(nb.Sub(c)); !ok || d != Dir(i) {
			t.Errorf("neighbour %d %v: DirBetween = %v, %v", i, nb, d, ok)
		}
	}
	if _, ok := DirBetween(c.Sub(c)); ok {
		t.Error("a cell is not its own neighbour")
	}
}

func TestParseCoord(t *testing.T) {
	tests := []struct {
		in      string
		want    Coord
		wantErr bool
	}{
		{"3,4", C(3, 4), false},
		{"-1,-2", C(-1, -2), false},
		{"7, 8", C(7, 8), false},
		{"7", Coord{}, true},
		{"a,b", Coord{}, true},
	}

	for _, tc := range tests {
		got, err := ParseCoord(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseCoord(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCoord(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside top", 15, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(10, 0, 10, 10)

	u := a.Union(b)
	if u != NewRect(0, 0, 20, 10) {
		t.Errorf("Union = %+v", u)
	}
	if (Rect{}).Union(b) != b {
		t.Error("union with empty rect should return the other")
	}
}

func TestBounds(t *testing.T) {
	b := Bounds([]Coord{C(2, 3), C(-1, 5), C(0, 0)})
	if b != NewRect(-1, 0, 4, 6) {
		t.Errorf("Bounds = %+v, expected {-1 0 4 6}", b)
	}
	if !Bounds(nil).Empty() {
		t.Error("Bounds(nil) should be empty")
	}
}

func TestClampMinMax(t *testing.T) {
	if Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp out of range")
	}
	if Min(5, 10) != 5 || Max(5, 10) != 10 {
		t.Error("Min/Max")
	}
}
