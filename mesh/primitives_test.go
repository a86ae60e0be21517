package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vostok-labs/vostok"
	"github.com/vostok-labs/vostok/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

func checkIndices(t *testing.T, m *mesh.Mesh) {
	t.Helper()
	for i, f := range m.Triangles {
		for _, idx := range f {
			if idx < 0 || idx >= len(m.Vertices) {
				t.Fatalf("triangle %d references vertex %d of %d", i, idx, len(m.Vertices))
			}
		}
	}
}

func assertBounds(t *testing.T, m *mesh.Mesh, min, max r3.Vec) {
	t.Helper()
	bb := m.Bounds()
	assert.InDelta(t, min.X, bb.Min.X, tol)
	assert.InDelta(t, min.Y, bb.Min.Y, tol)
	assert.InDelta(t, min.Z, bb.Min.Z, tol)
	assert.InDelta(t, max.X, bb.Max.X, tol)
	assert.InDelta(t, max.Y, bb.Max.Y, tol)
	assert.InDelta(t, max.Z, bb.Max.Z, tol)
}

func TestCylinder(t *testing.T) {
	m, err := mesh.Cylinder(1, 6, 20)
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 2*20+2)
	assert.Len(t, m.Triangles, 4*20)
	checkIndices(t, m)
	// 20 segments sample the axes exactly, so bounds hit the radius.
	assertBounds(t, m, r3.Vec{X: -1, Y: -1, Z: -3}, r3.Vec{X: 1, Y: 1, Z: 3})
}

func TestCylinderDefaultSegments(t *testing.T) {
	m, err := mesh.Cylinder(1, 1, 0)
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 2*mesh.DefaultSegments+2)
}

func TestCone(t *testing.T) {
	m, err := mesh.Cone(1, 3, 8)
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 8+2)
	assert.Len(t, m.Triangles, 2*8)
	checkIndices(t, m)
	assertBounds(t, m, r3.Vec{X: -1, Y: -1, Z: -1.5}, r3.Vec{X: 1, Y: 1, Z: 1.5})
}

func TestBox(t *testing.T) {
	m, err := mesh.Box(r3.Vec{X: 1, Y: 2, Z: 3})
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 8)
	assert.Len(t, m.Triangles, 12)
	checkIndices(t, m)
	assertBounds(t, m, r3.Vec{X: -0.5, Y: -1, Z: -1.5}, r3.Vec{X: 0.5, Y: 1, Z: 1.5})
}

func TestSphere(t *testing.T) {
	m, err := mesh.Sphere(2, 12)
	require.NoError(t, err)
	// 12 longitude steps, 6 latitude steps, seam and poles duplicated.
	assert.Len(t, m.Vertices, (6+1)*(12+1))
	assert.Len(t, m.Triangles, 2*6*12)
	checkIndices(t, m)
	assertBounds(t, m, r3.Vec{X: -2, Y: -2, Z: -2}, r3.Vec{X: 2, Y: 2, Z: 2})
}

func TestTorus(t *testing.T) {
	m, err := mesh.Torus(1.1, 0.05, 12, 4)
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 12*4)
	assert.Len(t, m.Triangles, 2*12*4)
	checkIndices(t, m)
	assertBounds(t, m,
		r3.Vec{X: -1.15, Y: -1.15, Z: -0.05},
		r3.Vec{X: 1.15, Y: 1.15, Z: 0.05})
}

func TestTorusDefaultSegments(t *testing.T) {
	m, err := mesh.Torus(1, 0.2, 0, 0)
	require.NoError(t, err)
	assert.Len(t, m.Vertices, mesh.DefaultTorusMajorSegments*mesh.DefaultTorusMinorSegments)
}

func TestInvalidParameters(t *testing.T) {
	for _, tc := range []struct {
		desc string
		err  error
	}{
		{"cylinder zero radius", errOf(mesh.Cylinder(0, 1, 0))},
		{"cylinder negative height", errOf(mesh.Cylinder(1, -1, 0))},
		{"cylinder coarse segments", errOf(mesh.Cylinder(1, 1, 2))},
		{"cone zero height", errOf(mesh.Cone(1, 0, 0))},
		{"cone coarse segments", errOf(mesh.Cone(1, 1, 1))},
		{"box flat extent", errOf(mesh.Box(r3.Vec{X: 1, Y: 0, Z: 1}))},
		{"box negative extent", errOf(mesh.Box(r3.Vec{X: 1, Y: 1, Z: -1}))},
		{"sphere negative radius", errOf(mesh.Sphere(-1, 0))},
		{"sphere coarse segments", errOf(mesh.Sphere(1, 2))},
		{"torus minor equals major", errOf(mesh.Torus(1, 1, 0, 0))},
		{"torus minor exceeds major", errOf(mesh.Torus(0.5, 0.8, 0, 0))},
		{"torus zero minor", errOf(mesh.Torus(1, 0, 0, 0))},
		{"torus coarse tube", errOf(mesh.Torus(1, 0.2, 12, 2))},
	} {
		assert.ErrorIs(t, tc.err, mesh.ErrInvalidParameter, tc.desc)
	}
}

func errOf(_ *mesh.Mesh, err error) error { return err }

// Uniform scaling must double every bounding box extent regardless of
// shape kind.
func TestTransformScalesBounds(t *testing.T) {
	shapes := map[string]func() (*mesh.Mesh, error){
		"cylinder": func() (*mesh.Mesh, error) { return mesh.Cylinder(1, 2, 0) },
		"cone":     func() (*mesh.Mesh, error) { return mesh.Cone(1, 2, 0) },
		"cube":     func() (*mesh.Mesh, error) { return mesh.Box(r3.Vec{X: 1, Y: 2, Z: 3}) },
		"sphere":   func() (*mesh.Mesh, error) { return mesh.Sphere(1, 0) },
		"torus":    func() (*mesh.Mesh, error) { return mesh.Torus(1, 0.2, 0, 0) },
	}
	double := vostok.Compose([]vostok.Op{vostok.ScaleUniform(2)})
	for name, gen := range shapes {
		m, err := gen()
		require.NoError(t, err, name)
		before := m.Bounds()
		m.Transform(double)
		after := m.Bounds()
		bs := r3.Sub(before.Max, before.Min)
		as := r3.Sub(after.Max, after.Min)
		assert.InDelta(t, 2*bs.X, as.X, tol, name)
		assert.InDelta(t, 2*bs.Y, as.Y, tol, name)
		assert.InDelta(t, 2*bs.Z, as.Z, tol, name)
	}
}

// Generators are pure: same parameters, same mesh.
func TestDeterministic(t *testing.T) {
	a, err := mesh.Sphere(1.5, 16)
	require.NoError(t, err)
	b, err := mesh.Sphere(1.5, 16)
	require.NoError(t, err)
	assert.Equal(t, a.Vertices, b.Vertices)
	assert.Equal(t, a.Triangles, b.Triangles)
}

func TestClone(t *testing.T) {
	m, err := mesh.Box(r3.Vec{X: 1, Y: 1, Z: 1})
	require.NoError(t, err)
	c := m.Clone()
	c.Transform(vostok.Compose([]vostok.Op{vostok.Translate(10, 0, 0)}))
	// Original is untouched.
	assert.InDelta(t, -0.5, m.Bounds().Min.X, tol)
	assert.InDelta(t, 9.5, c.Bounds().Min.X, tol)
}
