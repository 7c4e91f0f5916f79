package grid

// Dir is one of the eight compass directions on the grid.
// The values form a fixed clockwise cycle starting at North; rotation
// is modular arithmetic over that cycle.
type Dir uint8

const (
	DirN Dir = iota
	DirNE
	DirE
	DirSE
	DirS
	DirSW
	DirW
	DirNW
)

// DirCount is the number of directions in the cycle.
const DirCount = 8

var dirs = [DirCount]Dir{DirN, DirNE, DirE, DirSE, DirS, DirSW, DirW, DirNW}

// Up decreases Y, Down increases Y (screen coordinates).
var deltas = [DirCount][2]int{
	DirN:  {0, -1},
	DirNE: {1, -1},
	DirE:  {1, 0},
	DirSE: {1, 1},
	DirS:  {0, 1},
	DirSW: {-1, 1},
	DirW:  {-1, 0},
	DirNW: {-1, -1},
}

// byDelta is the inverse of deltas, indexed by (dy+1)*3 + (dx+1).
// The centre slot is unused.
var byDelta = [9]Dir{
	DirNW, DirN, DirNE,
	DirW, 0, DirE,
	DirSW, DirS, DirSE,
}

// AllDirs returns the fixed enumeration order, starting at North.
func AllDirs() [DirCount]Dir {
	return dirs
}

// String returns the compass abbreviation of a direction.
func (d Dir) String() string {
	switch d {
	case DirN:
		return "N"
	case DirNE:
		return "NE"
	case DirE:
		return "E"
	case DirSE:
		return "SE"
	case DirS:
		return "S"
	case DirSW:
		return "SW"
	case DirW:
		return "W"
	case DirNW:
		return "NW"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
func (d Dir) Delta() (dx, dy int) {
	if d >= DirCount {
		return 0, 0
	}
	return deltas[d][0], deltas[d][1]
}

// Rotate returns the direction k steps further round the cycle.
// Positive k turns clockwise, negative k counter-clockwise.
func (d Dir) Rotate(k int) Dir {
	i := (int(d) + k) % DirCount
	if i < 0 {
		i += DirCount
	}
	return Dir(i)
}

// IsDiagonal reports whether d moves along both axes.
func (d Dir) IsDiagonal() bool {
	return d%2 == 1
}

// DirBetween returns the direction whose delta is (dx, dy).
// ok is false unless (dx, dy) is one of the eight unit steps.
func DirBetween(dx, dy int) (d Dir, ok bool) {
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
		return 0, false
	}
	return byDelta[(dy+1)*3+dx+1], true
}
