package area

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader handles loading shape files from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new shape loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all shape files.
// Invalid files are skipped. Returns shapes sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Shape, error) {
	var shapes []Shape

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isShapeFile(path) {
			return nil
		}

		shape, err := LoadFile(path)
		if err != nil {
			return nil
		}
		shapes = append(shapes, shape)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("area: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(shapes, func(i, j int) bool {
		return shapes[i].ID < shapes[j].ID
	})
	return shapes, nil
}

// LoadFile loads a single shape file.
func LoadFile(path string) (Shape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Shape{}, fmt.Errorf("area: reading file %s: %w", path, err)
	}
	s, err := ParseShapeYAML(data)
	if err != nil {
		return Shape{}, fmt.Errorf("area: parsing file %s: %w", path, err)
	}
	s.FilePath = path
	return s, nil
}

func isShapeFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
