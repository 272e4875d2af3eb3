// Package formats writes swept geometry to mesh interchange formats.
package formats

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Faultbox/bladeforge/pkg/mesh"
)

// Export errors.
var (
	ErrEmptyMesh         = errors.New("mesh has no non-degenerate triangles")
	ErrUnsupportedFormat = errors.New("unsupported mesh format")
)

// Format identifies an output format.
type Format string

// Supported formats.
const (
	STL Format = "stl"
	OBJ Format = "obj"
)

// FormatFromPath returns the format implied by the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		return STL, nil
	case ".obj":
		return OBJ, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Save writes g to path in the format implied by its extension.
func Save(path string, g *mesh.Geometry) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	switch f {
	case STL:
		return SaveSTL(path, g)
	default:
		return SaveOBJ(path, g)
	}
}
