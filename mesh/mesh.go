// Package mesh generates indexed triangle meshes for parametric primitive
// shapes. Generators are pure: identical parameters and resolution yield
// identical meshes. Shapes are generated in a local frame centered at the
// origin with their height axis along Z; placement in world space is the
// transform engine's job, not the generator's.
package mesh

import (
	"errors"

	"github.com/vostok-labs/vostok"
	"github.com/vostok-labs/vostok/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalidParameter reports a non-positive or out-of-domain size
// parameter. Generator errors wrap it.
var ErrInvalidParameter = errors.New("invalid shape parameter")

// DefaultSegments is the angular resolution used when a generator is
// called with segments == 0.
const DefaultSegments = 20

// Mesh is an indexed triangle mesh. Triangles index into Vertices.
type Mesh struct {
	Vertices  []r3.Vec
	Triangles [][3]int
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	c := Mesh{
		Vertices:  make([]r3.Vec, len(m.Vertices)),
		Triangles: make([][3]int, len(m.Triangles)),
	}
	copy(c.Vertices, m.Vertices)
	copy(c.Triangles, m.Triangles)
	return &c
}

// Transform applies an affine matrix to every vertex in place.
// Topology is invariant under affine transforms so Triangles is untouched.
func (m *Mesh) Transform(a vostok.Affine) {
	a.Apply(m.Vertices)
}

// Bounds returns the bounding box of the mesh vertices.
func (m *Mesh) Bounds() r3.Box {
	return r3.Box(d3.BoxFromSet(m.Vertices))
}

// Triangles3 resolves the index triangles to explicit vertex triangles.
func (m *Mesh) Triangles3() []r3.Triangle {
	t := make([]r3.Triangle, len(m.Triangles))
	for i, f := range m.Triangles {
		t[i] = r3.Triangle{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
	}
	return t
}
