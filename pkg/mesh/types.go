// Package mesh provides the swept-geometry container: an active cross-section
// and the rings of vertices it leaves behind as it is extruded.
package mesh

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/bladeforge/pkg/math"
)

// Geometry errors.
var (
	ErrNoCrossSection = errors.New("geometry has no active cross section")
	ErrVertexIndex    = errors.New("cross section vertex index out of range")
	ErrInvalidColor   = errors.New("invalid hex color")
)

// Vertex is a mesh vertex with position and colour.
type Vertex struct {
	Position math.Vec3
	Color    Color
}

// Color is a linear RGBA colour with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// DefaultColor is used when a cross-section is attached without a colour.
var DefaultColor = Color{R: 0.78, G: 0.8, B: 0.82, A: 1}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{
		R: float64(n>>24&0xff) / 255.0,
		G: float64(n>>16&0xff) / 255.0,
		B: float64(n>>8&0xff) / 255.0,
		A: float64(n&0xff) / 255.0,
	}, nil
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the extent of the box.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}
