package formats

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/Faultbox/bladeforge/pkg/math"
	"github.com/Faultbox/bladeforge/pkg/mesh"
)

// degenerateArea is the smallest triangle area kept on export. Collapsed tip
// rings produce zero-area triangles; NaN areas are dropped as well.
const degenerateArea = 1e-12

// Triangles converts g to sdfx triangles, dropping degenerate ones.
func Triangles(g *mesh.Geometry) []*sdf.Triangle3 {
	tris := g.Triangles()
	out := make([]*sdf.Triangle3, 0, len(tris))
	for _, t := range tris {
		if !(area(t) >= degenerateArea) {
			continue
		}
		out = append(out, &sdf.Triangle3{toV3(t[0]), toV3(t[1]), toV3(t[2])})
	}
	return out
}

// SaveSTL writes g as a binary STL file.
func SaveSTL(path string, g *mesh.Geometry) error {
	tris := Triangles(g)
	if len(tris) == 0 {
		return ErrEmptyMesh
	}
	if err := render.SaveSTL(path, tris); err != nil {
		return fmt.Errorf("writing STL %s: %w", path, err)
	}
	return nil
}

func area(t [3]math.Vec3) float64 {
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0])).Length() / 2
}

func toV3(v math.Vec3) v3.Vec {
	return v3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}
