package formats

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/bladeforge/pkg/mesh"
)

// WriteOBJ writes g as a Wavefront OBJ. Vertex colours are appended to the
// "v" records and faces use 1-based indices. Degenerate triangles are
// dropped.
func WriteOBJ(w io.Writer, g *mesh.Geometry) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# bladeforge: %d vertices, %d triangles\n", g.VertexCount(), g.TriangleCount())
	for _, v := range g.Vertices() {
		p, c := v.Position, v.Color
		fmt.Fprintf(bw, "v %g %g %g %.4g %.4g %.4g\n", p.X, p.Y, p.Z, c.R, c.G, c.B)
	}

	idx := g.Indices()
	tris := g.Triangles()
	written := 0
	for i, t := range tris {
		if !(area(t) >= degenerateArea) {
			continue
		}
		fmt.Fprintf(bw, "f %d %d %d\n", idx[i*3]+1, idx[i*3+1]+1, idx[i*3+2]+1)
		written++
	}
	if written == 0 {
		return ErrEmptyMesh
	}
	return bw.Flush()
}

// SaveOBJ writes g as an OBJ file at path.
func SaveOBJ(path string, g *mesh.Geometry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating OBJ %s: %w", path, err)
	}
	if err := WriteOBJ(f, g); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
