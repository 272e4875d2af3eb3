package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/bladeforge/pkg/blade"
	"github.com/Faultbox/bladeforge/pkg/curves"
	"github.com/Faultbox/bladeforge/pkg/math"
	"github.com/Faultbox/bladeforge/pkg/mesh"
)

// ErrTaperConflict is returned when a taper sets both uniform and axes.
var ErrTaperConflict = errors.New("taper sets both uniform and axes")

// defaultExtrusion is a straight extrusion curve.
var defaultExtrusion = curves.Spec{Kind: "line", Points: [][2]float64{{0, 0}, {0, 1}}}

// ExtrusionCurve builds the extrusion curve, defaulting to a straight line.
func (b BladeConfig) ExtrusionCurve() (curves.Curve, error) {
	spec := defaultExtrusion
	if b.Extrusion != nil {
		spec = *b.Extrusion
	}
	c, err := spec.Build()
	if err != nil {
		return nil, fmt.Errorf("extrusion curve: %w", err)
	}
	return c, nil
}

// MeshColor parses the blade color. An empty color yields nil, which keeps
// the mesh default.
func (b BladeConfig) MeshColor() (*mesh.Color, error) {
	if b.Color == "" {
		return nil, nil
	}
	c, err := mesh.ParseHexColor(b.Color)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Section returns the configured cross-section outline and edge vertices.
func (c CrossSectionConfig) Section() (blade.Section, error) {
	if len(c.Outline) == 0 {
		return blade.Preset(c.Preset, c.Width, c.Thickness)
	}
	s := blade.Section{
		Outline:      make([]math.Vec2, len(c.Outline)),
		EdgeVertices: append([]int(nil), c.EdgeVertices...),
	}
	for i, p := range c.Outline {
		s.Outline[i] = math.Vec2{X: p[0], Y: p[1]}
	}
	return s, nil
}

// BladeTaper converts the taper setting. A nil receiver means no taper.
func (t *TaperConfig) BladeTaper() (blade.Taper, error) {
	switch {
	case t == nil:
		return nil, nil
	case t.Uniform != nil && t.Axes != nil:
		return nil, ErrTaperConflict
	case t.Uniform != nil:
		return blade.UniformTaper(*t.Uniform), nil
	case t.Axes != nil:
		return blade.AxisTaper{X: t.Axes[0], Y: t.Axes[1]}, nil
	}
	return nil, nil
}

// TipStyle parses the tip style name.
func (t TipConfig) TipStyle() (blade.TipStyle, error) {
	return blade.ParseTipStyle(t.Style)
}
