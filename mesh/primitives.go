package mesh

import (
	"fmt"
	"math"

	"github.com/vostok-labs/vostok/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Default torus resolutions. The tube is sampled at half the resolution
// of the main ring.
const (
	DefaultTorusMajorSegments = 30
	DefaultTorusMinorSegments = 15
)

// checkSegments applies the default resolution and rejects resolutions
// too coarse to enclose an area.
func checkSegments(segments, def int) (int, error) {
	if segments == 0 {
		segments = def
	}
	if segments < 3 {
		return 0, fmt.Errorf("%w: segments %d < 3", ErrInvalidParameter, segments)
	}
	return segments, nil
}

// Cylinder returns the mesh of a cylinder centered at the origin with its
// axis along Z, spanning z = -height/2 to z = +height/2. The lateral
// surface is sampled at segments angular steps; both caps are closed with
// triangle fans about center vertices.
func Cylinder(radius, height float64, segments int) (*Mesh, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: zero or negative cylinder radius %g", ErrInvalidParameter, radius)
	}
	if height <= 0 {
		return nil, fmt.Errorf("%w: zero or negative cylinder height %g", ErrInvalidParameter, height)
	}
	n, err := checkSegments(segments, DefaultSegments)
	if err != nil {
		return nil, err
	}

	m := Mesh{
		Vertices:  make([]r3.Vec, 0, 2*n+2),
		Triangles: make([][3]int, 0, 4*n),
	}
	h := height / 2
	for _, z := range [2]float64{-h, h} {
		for i := 0; i < n; i++ {
			s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
			m.Vertices = append(m.Vertices, r3.Vec{X: radius * c, Y: radius * s, Z: z})
		}
	}
	cb := len(m.Vertices) // bottom cap center
	ct := cb + 1          // top cap center
	m.Vertices = append(m.Vertices, r3.Vec{Z: -h}, r3.Vec{Z: h})

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		// lateral quad, wound counter-clockwise seen from outside
		m.Triangles = append(m.Triangles,
			[3]int{i, j, n + j},
			[3]int{i, n + j, n + i},
			[3]int{j, i, cb},
			[3]int{n + i, n + j, ct},
		)
	}
	return &m, nil
}

// Cone returns the mesh of a cone centered at the origin with its axis
// along Z: base ring at z = -height/2, apex at z = +height/2, closed base.
func Cone(radius, height float64, segments int) (*Mesh, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: zero or negative cone radius %g", ErrInvalidParameter, radius)
	}
	if height <= 0 {
		return nil, fmt.Errorf("%w: zero or negative cone height %g", ErrInvalidParameter, height)
	}
	n, err := checkSegments(segments, DefaultSegments)
	if err != nil {
		return nil, err
	}

	m := Mesh{
		Vertices:  make([]r3.Vec, 0, n+2),
		Triangles: make([][3]int, 0, 2*n),
	}
	h := height / 2
	for i := 0; i < n; i++ {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		m.Vertices = append(m.Vertices, r3.Vec{X: radius * c, Y: radius * s, Z: -h})
	}
	apex := n
	cb := n + 1
	m.Vertices = append(m.Vertices, r3.Vec{Z: h}, r3.Vec{Z: -h})

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		m.Triangles = append(m.Triangles,
			[3]int{i, j, apex},
			[3]int{j, i, cb},
		)
	}
	return &m, nil
}

// Box returns the mesh of an axis-aligned box centered at the origin with
// the given extents: 8 corner vertices at ±size/2 and 12 triangles.
func Box(size r3.Vec) (*Mesh, error) {
	if d3.LTEZero(size) {
		return nil, fmt.Errorf("%w: zero or negative box extent %+v", ErrInvalidParameter, size)
	}
	x := size.X / 2
	y := size.Y / 2
	z := size.Z / 2
	return &Mesh{
		Vertices: []r3.Vec{
			{X: -x, Y: -y, Z: -z},
			{X: x, Y: -y, Z: -z},
			{X: x, Y: y, Z: -z},
			{X: -x, Y: y, Z: -z},
			{X: -x, Y: -y, Z: z},
			{X: x, Y: -y, Z: z},
			{X: x, Y: y, Z: z},
			{X: -x, Y: y, Z: z},
		},
		Triangles: [][3]int{
			{0, 2, 1}, {0, 3, 2}, // bottom
			{4, 5, 6}, {4, 6, 7}, // top
			{0, 1, 5}, {0, 5, 4}, // front
			{2, 3, 7}, {2, 7, 6}, // back
			{3, 0, 4}, {3, 4, 7}, // left
			{1, 2, 6}, {1, 6, 5}, // right
		},
	}, nil
}

// Sphere returns the mesh of a sphere centered at the origin, sampled on a
// latitude/longitude grid with segments longitude steps and segments/2
// (minimum 2) latitude steps. The seam column and pole rows duplicate
// vertices so quads index a regular grid.
func Sphere(radius float64, segments int) (*Mesh, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: zero or negative sphere radius %g", ErrInvalidParameter, radius)
	}
	lon, err := checkSegments(segments, DefaultSegments)
	if err != nil {
		return nil, err
	}
	lat := lon / 2
	if lat < 2 {
		lat = 2
	}

	m := Mesh{
		Vertices:  make([]r3.Vec, 0, (lat+1)*(lon+1)),
		Triangles: make([][3]int, 0, 2*lat*lon),
	}
	for i := 0; i <= lat; i++ {
		sinPhi, cosPhi := math.Sincos(math.Pi * float64(i) / float64(lat))
		for j := 0; j <= lon; j++ {
			sinTheta, cosTheta := math.Sincos(2 * math.Pi * float64(j) / float64(lon))
			m.Vertices = append(m.Vertices, r3.Vec{
				X: radius * sinPhi * cosTheta,
				Y: radius * sinPhi * sinTheta,
				Z: radius * cosPhi,
			})
		}
	}
	for i := 0; i < lat; i++ {
		for j := 0; j < lon; j++ {
			v0 := i*(lon+1) + j
			v1 := v0 + 1
			v2 := (i+1)*(lon+1) + j + 1
			v3 := (i+1)*(lon+1) + j
			m.Triangles = append(m.Triangles,
				[3]int{v0, v3, v2},
				[3]int{v0, v2, v1},
			)
		}
	}
	return &m, nil
}

// Torus returns the mesh of a torus centered at the origin in the XY
// plane: major is the distance from the origin to the tube center, minor
// the tube radius. The grid wraps in both angles with modulo indexing so
// no vertex is duplicated.
func Torus(major, minor float64, majorSegments, minorSegments int) (*Mesh, error) {
	if major <= 0 {
		return nil, fmt.Errorf("%w: zero or negative torus major radius %g", ErrInvalidParameter, major)
	}
	if minor <= 0 {
		return nil, fmt.Errorf("%w: zero or negative torus minor radius %g", ErrInvalidParameter, minor)
	}
	if minor >= major {
		return nil, fmt.Errorf("%w: torus minor radius %g >= major radius %g", ErrInvalidParameter, minor, major)
	}
	n, err := checkSegments(majorSegments, DefaultTorusMajorSegments)
	if err != nil {
		return nil, err
	}
	tube, err := checkSegments(minorSegments, DefaultTorusMinorSegments)
	if err != nil {
		return nil, err
	}

	m := Mesh{
		Vertices:  make([]r3.Vec, 0, n*tube),
		Triangles: make([][3]int, 0, 2*n*tube),
	}
	for i := 0; i < n; i++ {
		sinTheta, cosTheta := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		for j := 0; j < tube; j++ {
			sinPhi, cosPhi := math.Sincos(2 * math.Pi * float64(j) / float64(tube))
			m.Vertices = append(m.Vertices, r3.Vec{
				X: (major + minor*cosPhi) * cosTheta,
				Y: (major + minor*cosPhi) * sinTheta,
				Z: minor * sinPhi,
			})
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < tube; j++ {
			v0 := i*tube + j
			v1 := i*tube + (j+1)%tube
			v2 := ((i+1)%n)*tube + (j+1)%tube
			v3 := ((i+1)%n)*tube + j
			m.Triangles = append(m.Triangles,
				[3]int{v0, v3, v2},
				[3]int{v0, v2, v1},
			)
		}
	}
	return &m, nil
}
