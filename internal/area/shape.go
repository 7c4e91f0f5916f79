package area

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/borderwalk/internal/grid"
)

// Shape is a named area definition.
type Shape struct {
	ID       string
	Name     string
	Rows     []string
	Cells    []grid.Coord // Sparse alternative to Rows; negative coordinates allowed
	Start    *grid.Coord  // Optional; FirstBorder is used when nil
	Metadata map[string]string
	FilePath string
}

// YAMLShape represents the YAML structure for a shape file.
//
//	id: ell
//	name: L shape
//	start: {x: 0, y: 0}
//	rows:
//	  - "#.."
//	  - "###"
//
// A shape may list its cells instead of drawing rows:
//
//	cells:
//	  - {x: -1, y: 0}
//	  - {x: 0, y: 0}
type YAMLShape struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Start    *YAMLCoord        `yaml:"start,omitempty"`
	Rows     []string          `yaml:"rows,omitempty"`
	Cells    []YAMLCoord       `yaml:"cells,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLCoord represents a single cell in YAML format.
type YAMLCoord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ParseShapeYAML parses and validates a shape definition.
func ParseShapeYAML(data []byte) (Shape, error) {
	var ys YAMLShape
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Shape{}, fmt.Errorf("area: invalid YAML: %w", err)
	}

	s := Shape{
		ID:       strings.TrimSpace(ys.ID),
		Name:     ys.Name,
		Rows:     ys.Rows,
		Metadata: ys.Metadata,
	}
	for _, c := range ys.Cells {
		s.Cells = append(s.Cells, grid.C(c.X, c.Y))
	}
	if ys.Start != nil {
		s.Start = &grid.Coord{X: ys.Start.X, Y: ys.Start.Y}
	}
	if err := s.Validate(); err != nil {
		return Shape{}, err
	}
	return s, nil
}

// MarshalYAML renders the shape in file format.
func (s Shape) MarshalYAML() (interface{}, error) {
	ys := YAMLShape{ID: s.ID, Name: s.Name, Rows: s.Rows, Metadata: s.Metadata}
	for _, c := range s.Cells {
		ys.Cells = append(ys.Cells, YAMLCoord{X: c.X, Y: c.Y})
	}
	if s.Start != nil {
		ys.Start = &YAMLCoord{X: s.Start.X, Y: s.Start.Y}
	}
	return ys, nil
}

// Validate checks that the shape has an ID, at least one inside cell, and
// a start cell (if given) on the border.
func (s Shape) Validate() error {
	if s.ID == "" {
		return errors.New("area: shape id is required")
	}
	if len(s.Rows) > 0 && len(s.Cells) > 0 {
		return fmt.Errorf("area: shape %q sets both rows and cells", s.ID)
	}
	r := s.Region()
	if r.Count() == 0 {
		return fmt.Errorf("area: shape %q has no inside cells", s.ID)
	}
	if s.Start != nil && !OnBorder(r, *s.Start) {
		return fmt.Errorf("area: shape %q start %v is not a border cell", s.ID, *s.Start)
	}
	return nil
}

// Title returns the display name, falling back to the ID.
func (s Shape) Title() string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}

// Region builds the area: a Set when Cells is given, otherwise a Bitmap
// drawn from Rows.
func (s Shape) Region() Region {
	if len(s.Cells) > 0 {
		return NewSet(s.Cells...)
	}
	return ParseASCII(s.Rows)
}

// StartCell returns the configured start or the first border cell.
func (s Shape) StartCell() (grid.Coord, error) {
	if s.Start != nil {
		return *s.Start, nil
	}
	return s.Region().FirstBorder()
}
