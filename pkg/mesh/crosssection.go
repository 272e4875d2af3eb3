package mesh

import (
	"fmt"

	"github.com/Faultbox/bladeforge/pkg/math"
)

// CrossSection is a closed 2D outline placed in 3D space.
//
// Outline points live in a local plane: local X maps to world X and local Y
// to world Z before rotation. The outward normal (direction of extrusion) is
// local +Y. The section scale multiplies every outline point; ScaleVertex
// changes a single point.
type CrossSection struct {
	outline     []math.Vec2
	translation math.Vec3
	orientation math.Quat
	scale       math.Vec2
}

// NewCrossSection creates a cross-section at the origin with identity
// orientation and unit scale. The outline is copied.
func NewCrossSection(outline []math.Vec2) *CrossSection {
	return &CrossSection{
		outline:     append([]math.Vec2(nil), outline...),
		orientation: math.QuatIdentity(),
		scale:       math.Vec2{X: 1, Y: 1},
	}
}

// VertexCount returns the number of outline points.
func (c *CrossSection) VertexCount() int {
	return len(c.outline)
}

// Outline returns a copy of the local outline.
func (c *CrossSection) Outline() []math.Vec2 {
	return append([]math.Vec2(nil), c.outline...)
}

// Translation returns the position of the section centre.
func (c *CrossSection) Translation() math.Vec3 {
	return c.translation
}

// Orientation returns the section rotation.
func (c *CrossSection) Orientation() math.Quat {
	return c.orientation
}

// Scale returns the per-axis section scale.
func (c *CrossSection) Scale() math.Vec2 {
	return c.scale
}

// Normal returns the outward unit normal in world space.
func (c *CrossSection) Normal() math.Vec3 {
	return c.orientation.Rotate(math.UnitY).Normalize()
}

// Matrix returns the local-to-world transform.
func (c *CrossSection) Matrix() math.Mat4 {
	return math.Compose(c.translation, c.orientation, math.Vec3{X: c.scale.X, Y: 1, Z: c.scale.Y})
}

// World returns outline point i in world space.
func (c *CrossSection) World(i int) math.Vec3 {
	p := c.outline[i]
	return c.Matrix().TransformVec3(math.Vec3{X: p.X, Y: 0, Z: p.Y})
}

// WorldOutline returns every outline point in world space.
func (c *CrossSection) WorldOutline() []math.Vec3 {
	m := c.Matrix()
	out := make([]math.Vec3, len(c.outline))
	for i, p := range c.outline {
		out[i] = m.TransformVec3(math.Vec3{X: p.X, Y: 0, Z: p.Y})
	}
	return out
}

// Translate moves the section by v.
func (c *CrossSection) Translate(v math.Vec3) {
	c.translation = c.translation.Add(v)
}

// Rotate applies q in world space about the section centre.
func (c *CrossSection) Rotate(q math.Quat) {
	c.orientation = q.Mul(c.orientation).Normalize()
}

// ScaleAxes multiplies the section scale per axis.
func (c *CrossSection) ScaleAxes(v math.Vec2) {
	c.scale = c.scale.Mul(v)
}

// ScaleVertex scales outline point i away from the section centre by f.
func (c *CrossSection) ScaleVertex(i int, f float64) error {
	if i < 0 || i >= len(c.outline) {
		return fmt.Errorf("%w: %d of %d", ErrVertexIndex, i, len(c.outline))
	}
	c.outline[i] = c.outline[i].Scale(f)
	return nil
}

// Clone returns an independent copy.
func (c *CrossSection) Clone() *CrossSection {
	cp := *c
	cp.outline = append([]math.Vec2(nil), c.outline...)
	return &cp
}
