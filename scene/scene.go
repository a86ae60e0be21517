// Package scene models a hierarchical scene graph of primitive shape
// instances and named groups, and flattens it into world-space renderables
// for an external display layer.
//
// The graph is pure input data: it is built once, flattened as often as
// needed, and never mutated by this package. To animate a model, build a
// new graph (or new transform sequences) and flatten again.
package scene

import (
	"errors"

	"github.com/vostok-labs/vostok"
	"github.com/vostok-labs/vostok/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrMalformedScene reports a cycle, a shared or nil node, or a
	// missing required field in the scene description.
	ErrMalformedScene = errors.New("malformed scene")
	// ErrUnknownShape reports a primitive with an unrecognized shape kind.
	ErrUnknownShape = errors.New("unknown shape kind")
)

// Shape enumerates the supported primitive kinds.
type Shape uint8

const (
	ShapeCylinder Shape = iota + 1
	ShapeCone
	ShapeCube
	ShapeSphere
	ShapeTorus
)

func (s Shape) String() string {
	switch s {
	case ShapeCylinder:
		return "cylinder"
	case ShapeCone:
		return "cone"
	case ShapeCube:
		return "cube"
	case ShapeSphere:
		return "sphere"
	case ShapeTorus:
		return "torus"
	default:
		return "unknown"
	}
}

// Node is a scene graph node: either a *Group or a *Primitive.
// The set of node kinds is closed.
type Node interface {
	// NodeName returns the node's name for error reporting.
	NodeName() string
	node() // marker method restricting implementations to this package
}

// Group is a named container of ordered child nodes. A group may carry
// its own transform sequence; it applies after the children's own
// transforms (world = parent · local), so an empty Ops slice makes the
// group a pure pass-through container.
type Group struct {
	Name     string
	Ops      []vostok.Op
	Children []Node
}

// Primitive is a leaf instance of a parametric shape. Which size fields
// are read depends on Shape:
//
//	cylinder, cone: Radius, Height
//	cube:           Size (three extents)
//	sphere:         Radius
//	torus:          MajorRadius, MinorRadius
//
// Ops is the ordered transform sequence placing the shape's local-frame
// mesh in its parent's space; an empty sequence leaves it at the local
// origin. Segments selects the mesh resolution, 0 meaning the shape
// default.
type Primitive struct {
	Name        string
	Shape       Shape
	Radius      float64
	Height      float64
	Size        r3.Vec
	MajorRadius float64
	MinorRadius float64
	Color       string
	Ops         []vostok.Op
	Segments    int
}

func (g *Group) NodeName() string     { return g.Name }
func (p *Primitive) NodeName() string { return p.Name }

func (g *Group) node()     {}
func (p *Primitive) node() {}

// generate builds the primitive's local-frame mesh.
func (p *Primitive) generate() (*mesh.Mesh, error) {
	switch p.Shape {
	case ShapeCylinder:
		return mesh.Cylinder(p.Radius, p.Height, p.Segments)
	case ShapeCone:
		return mesh.Cone(p.Radius, p.Height, p.Segments)
	case ShapeCube:
		return mesh.Box(p.Size)
	case ShapeSphere:
		return mesh.Sphere(p.Radius, p.Segments)
	case ShapeTorus:
		return mesh.Torus(p.MajorRadius, p.MinorRadius, p.Segments, p.Segments/2)
	}
	return nil, ErrUnknownShape
}

// Renderable is the flattened output unit: one primitive instance with
// its vertices in world space, ready for an external renderer. The shape
// tag and color are passed through untouched.
type Renderable struct {
	Name      string
	Shape     Shape
	Color     string
	Vertices  []r3.Vec
	Triangles [][3]int
}

// Bounds returns the world-space bounding box of the renderable.
func (r *Renderable) Bounds() r3.Box {
	m := mesh.Mesh{Vertices: r.Vertices}
	return m.Bounds()
}

// Triangles3 resolves the renderable's index triangles to vertex triangles.
func (r *Renderable) Triangles3() []r3.Triangle {
	m := mesh.Mesh{Vertices: r.Vertices, Triangles: r.Triangles}
	return m.Triangles3()
}
