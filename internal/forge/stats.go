package forge

import (
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/bladeforge/pkg/mesh"
)

// MeshStats summarises a swept mesh.
type MeshStats struct {
	Rings     int
	Vertices  int
	Triangles int
	Bounds    mesh.Bounds
}

// Stats returns the ring, vertex and triangle counts and bounds of g.
func Stats(g *mesh.Geometry) MeshStats {
	return MeshStats{
		Rings:     g.RingCount(),
		Vertices:  g.VertexCount(),
		Triangles: g.TriangleCount(),
		Bounds:    g.Bounds(),
	}
}

// String formats the stats for terminal output.
func (s MeshStats) String() string {
	size := s.Bounds.Size()
	return fmt.Sprintf("rings:     %d\nvertices:  %d\ntriangles: %d\nmin:       (%.4f, %.4f, %.4f)\nmax:       (%.4f, %.4f, %.4f)\nsize:      (%.4f, %.4f, %.4f)\n",
		s.Rings, s.Vertices, s.Triangles,
		s.Bounds.Min.X, s.Bounds.Min.Y, s.Bounds.Min.Z,
		s.Bounds.Max.X, s.Bounds.Max.Y, s.Bounds.Max.Z,
		size.X, size.Y, size.Z,
	)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s MeshStats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("rings", s.Rings)
	enc.AddInt("vertices", s.Vertices)
	enc.AddInt("triangles", s.Triangles)
	size := s.Bounds.Size()
	enc.AddFloat64("length", size.Y)
	return nil
}
