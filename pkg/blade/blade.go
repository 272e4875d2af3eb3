// Package blade sweeps a cross-section along an extrusion curve to build the
// mesh of a blade. The cross-section is repositioned and re-oriented to track
// the curve, its cutting edge is reshaped by an edge curve, and the sweep is
// closed by tapering or by one of a fixed set of tips.
//
// A Blade is not safe for concurrent use.
package blade

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/bladeforge/pkg/curves"
	"github.com/Faultbox/bladeforge/pkg/math"
	"github.com/Faultbox/bladeforge/pkg/mesh"
)

// Blade errors.
var (
	ErrNoActiveCrossSection = errors.New("blade does not have an active cross section")
	ErrNoActiveEdgeCurve    = errors.New("blade does not have an active edge curve")
	ErrInvalidSubdivisions  = errors.New("subdivision count must be positive")
	ErrEdgeVertexOutOfRange = errors.New("edge vertex index out of range")
	ErrInvalidLength        = errors.New("sweep length must be positive")
)

// Blade drives a swept geometry along an optional extrusion curve.
type Blade struct {
	geom *mesh.Geometry
	log  *zap.Logger

	totalLength   float64
	currentLength float64

	extrusion curves.Curve
	edge      curves.Curve
	edgeVerts []int
}

// Option configures a Blade.
type Option func(*Blade)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(b *Blade) {
		if l != nil {
			b.log = l
		}
	}
}

// WithGeometry sweeps into g instead of a fresh geometry.
func WithGeometry(g *mesh.Geometry) Option {
	return func(b *Blade) {
		if g != nil {
			b.geom = g
		}
	}
}

// New creates a blade of the given total sweep length. A nil extrusion curve
// sweeps in a straight line along the section normal.
func New(length float64, extrusion curves.Curve, opts ...Option) *Blade {
	b := &Blade{
		geom:        mesh.New(),
		log:         zap.NewNop(),
		totalLength: length,
		extrusion:   extrusion,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Geometry returns the geometry being swept.
func (b *Blade) Geometry() *mesh.Geometry {
	return b.geom
}

// TotalLength returns the length the extrusion curve is scaled to.
func (b *Blade) TotalLength() float64 {
	return b.totalLength
}

// CurrentLength returns the distance swept along the extrusion curve so far.
func (b *Blade) CurrentLength() float64 {
	return b.currentLength
}

// EdgeVertices returns a copy of the edge-vertex index set.
func (b *Blade) EdgeVertices() []int {
	return append([]int(nil), b.edgeVerts...)
}

// SetEdgeCurve attaches or replaces the edge curve.
func (b *Blade) SetEdgeCurve(c curves.Curve) *Blade {
	b.edge = c
	return b
}

// SetExtrusionCurve attaches or replaces the extrusion curve.
func (b *Blade) SetExtrusionCurve(c curves.Curve) *Blade {
	b.extrusion = c
	return b
}

// SetCrossSection installs cs with the indices of its edge vertices. Every
// index must address a vertex of cs; otherwise nothing is changed.
func (b *Blade) SetCrossSection(cs *mesh.CrossSection, edgeVerts []int, color *mesh.Color) error {
	if cs == nil {
		return ErrNoActiveCrossSection
	}
	n := cs.VertexCount()
	for _, i := range edgeVerts {
		if i < 0 || i >= n {
			return fmt.Errorf("%w: %d (cross section has %d vertices)", ErrEdgeVertexOutOfRange, i, n)
		}
	}

	b.geom.SetCrossSection(cs, color)
	b.edgeVerts = append([]int(nil), edgeVerts...)
	return nil
}

// Advance moves the active cross-section forward by distance along the
// extrusion curve and re-orients it to the curve tangent.
//
// The base extrusion runs first; the section is then translated by the
// delta from that intermediate position to the curve point, and rotated by
// the shortest arc from its current normal to the curve tangent. Tracking a
// curve requires a positive total length.
func (b *Blade) Advance(distance float64) error {
	cs := b.geom.CrossSection()
	if cs == nil {
		return ErrNoActiveCrossSection
	}

	if b.extrusion == nil {
		return b.geom.Extrude(distance)
	}
	if !(b.totalLength > 0) {
		return fmt.Errorf("%w: total length %g", ErrInvalidLength, b.totalLength)
	}

	b.currentLength += distance
	t := b.currentLength / b.totalLength

	if err := b.geom.Extrude(distance); err != nil {
		return err
	}

	target := b.extrusion.Point(t).Scale(b.totalLength).Lift()
	if err := b.geom.Translate(target.Sub(cs.Translation())); err != nil {
		return err
	}

	normal := b.extrusion.Tangent(t).Lift().Normalize()
	if normal != (math.Vec3{}) {
		rot := math.QuatFromUnitVectors(cs.Normal(), normal)
		if err := b.geom.Rotate(rot); err != nil {
			return err
		}
	}

	b.log.Debug("advance",
		zap.Float64("t", t),
		zap.Float64("distance", distance),
		zap.Any("position", cs.Translation()),
		zap.Any("normal", cs.Normal()),
	)
	return nil
}
