package curves

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/bladeforge/pkg/math"
)

// Curve spec errors.
var (
	ErrUnknownCurveKind = errors.New("unknown curve kind")
	ErrCurvePointCount  = errors.New("wrong number of curve points")
)

// Spec describes a curve in configuration files.
type Spec struct {
	Kind   string       `yaml:"kind"`   // line, quad or cubic
	Points [][2]float64 `yaml:"points"` // control points
	Clamp  bool         `yaml:"clamp,omitempty"`
}

// pointCounts maps a curve kind to its control point count.
var pointCounts = map[string]int{
	"line":  2,
	"quad":  3,
	"cubic": 4,
}

// Build creates the curve described by s.
func (s Spec) Build() (Curve, error) {
	kind := strings.ToLower(s.Kind)
	want, ok := pointCounts[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurveKind, s.Kind)
	}
	if len(s.Points) != want {
		return nil, fmt.Errorf("%w: %s needs %d, got %d", ErrCurvePointCount, kind, want, len(s.Points))
	}

	p := make([]math.Vec2, len(s.Points))
	for i, xy := range s.Points {
		p[i] = math.Vec2{X: xy[0], Y: xy[1]}
	}

	var c Curve
	switch kind {
	case "line":
		c = Line(p[0], p[1])
	case "quad":
		c = Quad(p[0], p[1], p[2])
	case "cubic":
		c = Cubic(p[0], p[1], p[2], p[3])
	}
	if s.Clamp {
		c = Clamp(c)
	}
	return c, nil
}
