// Package curves provides the parametric 2D curves that drive a sweep: the
// extrusion path and the edge profile. Evaluation is delegated to
// honnef.co/go/curve.
package curves

import (
	gc "honnef.co/go/curve"

	"github.com/Faultbox/bladeforge/pkg/math"
)

// Curve is a parametric 2D curve over [0, 1].
//
// Point returns the position at t. Tangent returns the unit direction of
// travel at t. Implementations must be pure; values of t outside [0, 1] may
// extrapolate.
type Curve interface {
	Point(t float64) math.Vec2
	Tangent(t float64) math.Vec2
}

var (
	_ Curve = lineCurve{}
	_ Curve = quadCurve{}
	_ Curve = cubicCurve{}
	_ Curve = clamped{}
)

// Line returns the straight segment from a to b.
func Line(a, b math.Vec2) Curve {
	return lineCurve{gc.Line{P0: pt(a), P1: pt(b)}}
}

// Quad returns the quadratic Bézier with control points p0, p1, p2.
func Quad(p0, p1, p2 math.Vec2) Curve {
	return quadCurve{gc.QuadBez{P0: pt(p0), P1: pt(p1), P2: pt(p2)}}
}

// Cubic returns the cubic Bézier with control points p0..p3.
func Cubic(p0, p1, p2, p3 math.Vec2) Curve {
	return cubicCurve{gc.CubicBez{P0: pt(p0), P1: pt(p1), P2: pt(p2), P3: pt(p3)}}
}

// Clamp wraps c so that t is clamped into [0, 1] before evaluation.
func Clamp(c Curve) Curve {
	if _, ok := c.(clamped); ok {
		return c
	}
	return clamped{c}
}

type lineCurve struct{ l gc.Line }

func (c lineCurve) Point(t float64) math.Vec2 { return vec(c.l.Eval(t)) }

func (c lineCurve) Tangent(float64) math.Vec2 {
	d, _ := c.l.Tangents()
	return math.Vec2{X: d.X, Y: d.Y}.Normalize()
}

type quadCurve struct{ q gc.QuadBez }

func (c quadCurve) Point(t float64) math.Vec2 { return vec(c.q.Eval(t)) }

func (c quadCurve) Tangent(t float64) math.Vec2 {
	d := vec(c.q.Differentiate().Eval(t))
	return unitOr(d, c.q.P2.Sub(c.q.P0))
}

type cubicCurve struct{ c gc.CubicBez }

func (c cubicCurve) Point(t float64) math.Vec2 { return vec(c.c.Eval(t)) }

func (c cubicCurve) Tangent(t float64) math.Vec2 {
	d := vec(c.c.Differentiate().Eval(t))
	return unitOr(d, c.c.P3.Sub(c.c.P0))
}

type clamped struct{ c Curve }

func (c clamped) Point(t float64) math.Vec2   { return c.c.Point(clamp01(t)) }
func (c clamped) Tangent(t float64) math.Vec2 { return c.c.Tangent(clamp01(t)) }

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}

// unitOr normalizes d, falling back to the chord when the derivative
// vanishes (coincident control points at an endpoint).
func unitOr(d math.Vec2, chord gc.Vec2) math.Vec2 {
	if d.Length() > 1e-12 {
		return d.Normalize()
	}
	return math.Vec2{X: chord.X, Y: chord.Y}.Normalize()
}

func pt(v math.Vec2) gc.Point { return gc.Pt(v.X, v.Y) }

func vec(p gc.Point) math.Vec2 { return math.Vec2{X: p.X, Y: p.Y} }
