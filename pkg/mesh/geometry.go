package mesh

import (
	gomath "math"

	"github.com/Faultbox/bladeforge/pkg/math"
)

// Geometry accumulates a swept surface.
//
// Each extrusion appends a ring of vertices, one per outline point of the
// active cross-section, and connects it to the previous ring. Transforms
// applied after an extrusion re-place the newest ring, so the last ring
// always mirrors the active cross-section.
type Geometry struct {
	vertices  []Vertex
	indices   []uint32
	active    *CrossSection
	color     Color
	ringStart int
	rings     int
}

// New returns an empty geometry.
func New() *Geometry {
	return &Geometry{color: DefaultColor}
}

// SetCrossSection installs cs as the active section and emits its first
// ring. A nil color keeps DefaultColor. The ring is not connected to any
// earlier ring.
func (g *Geometry) SetCrossSection(cs *CrossSection, color *Color) {
	g.active = cs
	g.color = DefaultColor
	if color != nil {
		g.color = *color
	}
	g.appendRing()
}

// CrossSection returns the active section, or nil.
func (g *Geometry) CrossSection() *CrossSection {
	return g.active
}

// Extrude moves the active section along its normal by distance and
// connects the new ring to the previous one.
func (g *Geometry) Extrude(distance float64) error {
	if g.active == nil {
		return ErrNoCrossSection
	}
	g.active.Translate(g.active.Normal().Scale(distance))

	prev := g.ringStart
	g.appendRing()
	g.connect(prev, g.ringStart, g.active.VertexCount())
	return nil
}

// Translate moves the active section by v.
func (g *Geometry) Translate(v math.Vec3) error {
	if g.active == nil {
		return ErrNoCrossSection
	}
	g.active.Translate(v)
	g.writeRing()
	return nil
}

// Rotate rotates the active section by q about its centre.
func (g *Geometry) Rotate(q math.Quat) error {
	if g.active == nil {
		return ErrNoCrossSection
	}
	g.active.Rotate(q)
	g.writeRing()
	return nil
}

// Scale multiplies the active section scale uniformly by s.
func (g *Geometry) Scale(s float64) error {
	return g.ScaleAxes(math.Vec2{X: s, Y: s})
}

// ScaleAxes multiplies the active section scale per axis.
func (g *Geometry) ScaleAxes(v math.Vec2) error {
	if g.active == nil {
		return ErrNoCrossSection
	}
	g.active.ScaleAxes(v)
	g.writeRing()
	return nil
}

// ScaleVertex scales outline point i of the active section by f.
func (g *Geometry) ScaleVertex(i int, f float64) error {
	if g.active == nil {
		return ErrNoCrossSection
	}
	if err := g.active.ScaleVertex(i, f); err != nil {
		return err
	}
	g.vertices[g.ringStart+i].Position = g.active.World(i)
	return nil
}

// Vertices returns the vertex buffer. The slice must not be modified.
func (g *Geometry) Vertices() []Vertex {
	return g.vertices
}

// Indices returns the triangle index buffer, three indices per triangle.
func (g *Geometry) Indices() []uint32 {
	return g.indices
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.vertices)
}

// TriangleCount returns the number of triangles.
func (g *Geometry) TriangleCount() int {
	return len(g.indices) / 3
}

// RingCount returns the number of rings emitted.
func (g *Geometry) RingCount() int {
	return g.rings
}

// IsEmpty returns true if the geometry has no triangles.
func (g *Geometry) IsEmpty() bool {
	return len(g.indices) == 0
}

// Triangles returns every triangle as three world positions.
func (g *Geometry) Triangles() [][3]math.Vec3 {
	tris := make([][3]math.Vec3, 0, len(g.indices)/3)
	for i := 0; i+2 < len(g.indices); i += 3 {
		tris = append(tris, [3]math.Vec3{
			g.vertices[g.indices[i]].Position,
			g.vertices[g.indices[i+1]].Position,
			g.vertices[g.indices[i+2]].Position,
		})
	}
	return tris
}

// Bounds returns the bounding box of all vertices.
func (g *Geometry) Bounds() Bounds {
	if len(g.vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{
		Min: math.Vec3{X: gomath.Inf(1), Y: gomath.Inf(1), Z: gomath.Inf(1)},
		Max: math.Vec3{X: gomath.Inf(-1), Y: gomath.Inf(-1), Z: gomath.Inf(-1)},
	}
	for _, v := range g.vertices {
		b.Min = b.Min.Min(v.Position)
		b.Max = b.Max.Max(v.Position)
	}
	return b
}

func (g *Geometry) appendRing() {
	g.ringStart = len(g.vertices)
	for _, p := range g.active.WorldOutline() {
		g.vertices = append(g.vertices, Vertex{Position: p, Color: g.color})
	}
	g.rings++
}

func (g *Geometry) writeRing() {
	for i, p := range g.active.WorldOutline() {
		g.vertices[g.ringStart+i].Position = p
	}
}

// connect emits two triangles per outline edge between ring a and ring b.
func (g *Geometry) connect(a, b, n int) {
	for j := 0; j < n; j++ {
		k := (j + 1) % n
		a0, a1 := uint32(a+j), uint32(a+k)
		b0, b1 := uint32(b+j), uint32(b+k)
		g.indices = append(g.indices,
			a0, a1, b1,
			a0, b1, b0,
		)
	}
}
