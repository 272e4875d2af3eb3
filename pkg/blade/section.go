package blade

import (
	"fmt"

	"github.com/Faultbox/bladeforge/pkg/curves"
	"github.com/Faultbox/bladeforge/pkg/math"
	"github.com/Faultbox/bladeforge/pkg/mesh"
)

// Taper is the scale decay applied across a subdivided sweep. It is either
// UniformTaper or AxisTaper; a nil Taper leaves the scale alone.
type Taper interface {
	// step applies one of n per-step decay factors to g.
	step(g *mesh.Geometry, n int) error
}

// UniformTaper shrinks the whole cross-section by 1 - k/n per step, so a
// sweep of n steps ends at (1 - k/n)^n of its starting scale.
type UniformTaper float64

func (k UniformTaper) step(g *mesh.Geometry, n int) error {
	return g.Scale(1 - float64(k)/float64(n))
}

// AxisTaper decays each section axis independently: (1,1) - v/n per step.
type AxisTaper math.Vec2

func (v AxisTaper) step(g *mesh.Geometry, n int) error {
	f := math.Vec2{X: 1, Y: 1}.Sub(math.Vec2(v).Scale(1 / float64(n)))
	return g.ScaleAxes(f)
}

// ExtrudeSection sweeps length along the extrusion curve in n equal steps.
// After each step the edge vertices are reshaped by edge at the cumulative
// progress i/n, and the taper, if any, is applied.
func (b *Blade) ExtrudeSection(edge curves.Curve, n int, length float64, taper Taper) error {
	if b.geom.CrossSection() == nil {
		return ErrNoActiveCrossSection
	}
	if edge == nil {
		return ErrNoActiveEdgeCurve
	}
	if n <= 0 {
		return ErrInvalidSubdivisions
	}
	if !(length > 0) {
		return fmt.Errorf("%w: section length %g", ErrInvalidLength, length)
	}

	b.SetEdgeCurve(edge)

	interval := length / float64(n)
	for i := 1; i <= n; i++ {
		if err := b.Advance(interval); err != nil {
			return err
		}
		if err := b.ModifyEdgeVerts(float64(i) / float64(n)); err != nil {
			return err
		}
		if taper != nil {
			if err := taper.step(b.geom, n); err != nil {
				return err
			}
		}
	}
	return nil
}

// ModifyEdgeVerts samples the edge curve at progress and scales every edge
// vertex of the active cross-section by the sampled X plus one. Other
// vertices are left untouched.
func (b *Blade) ModifyEdgeVerts(progress float64) error {
	if b.geom.CrossSection() == nil {
		return ErrNoActiveCrossSection
	}
	if b.edge == nil {
		return ErrNoActiveEdgeCurve
	}

	f := b.edge.Point(progress).X + 1
	for _, i := range b.edgeVerts {
		if err := b.geom.ScaleVertex(i, f); err != nil {
			return err
		}
	}
	return nil
}
