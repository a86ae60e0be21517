// Package rocket assembles the demonstration rocket model: a thirteen
// part scene graph of cylinders, cones, cubes, spheres and tori posed by
// ordered transform sequences. The geometry is a toy model of an early
// orbital launcher, nose up along +Z with the engine section below z=0.
package rocket

import (
	"strconv"

	"github.com/vostok-labs/vostok"
	"github.com/vostok-labs/vostok/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

// Params sizes the rocket. The zero value is not useful; start from
// DefaultParams and override fields as needed.
type Params struct {
	// BodyRadius and BodyHeight size the main hull cylinder. The hull
	// stands on z=0.
	BodyRadius float64
	BodyHeight float64
	// NoseHeight is the height of the nose cone capping the hull. Its
	// base radius always matches BodyRadius.
	NoseHeight float64
	// FinSize is the extents of each of the three fins, thin along X.
	FinSize r3.Vec
	// FinCant tilts each fin outward, in degrees about its local X axis.
	FinCant float64
	// WindowRadius sizes the porthole spheres on the hull.
	WindowRadius float64
	// ExhaustRadius and ExhaustHeight size the engine skirt below the hull.
	ExhaustRadius float64
	ExhaustHeight float64
	// NozzleRadius and NozzleHeight size the two downward engine cones.
	NozzleRadius float64
	NozzleHeight float64
	// RingMajor and RingMinor size the two decorative hull rings.
	RingMajor float64
	RingMinor float64
	// Segments is the mesh resolution for every curved part, 0 for the
	// shape defaults.
	Segments int
}

// DefaultParams returns the reference rocket proportions.
func DefaultParams() Params {
	return Params{
		BodyRadius:    1.0,
		BodyHeight:    6.0,
		NoseHeight:    3.0,
		FinSize:       r3.Vec{X: 0.2, Y: 2.5, Z: 2.0},
		FinCant:       10,
		WindowRadius:  0.3,
		ExhaustRadius: 0.7,
		ExhaustHeight: 1.0,
		NozzleRadius:  0.3,
		NozzleHeight:  0.8,
		RingMajor:     1.1,
		RingMinor:     0.05,
	}
}

// New builds the rocket scene graph. The returned group is ready for
// scene.Flatten; it carries no transform of its own so the caller can
// pose the whole rocket by wrapping it in another group.
func New(p Params) *scene.Group {
	root := &scene.Group{Name: "rocket"}
	root.Children = append(root.Children,
		body(p),
		nose(p),
	)
	root.Children = append(root.Children, fins(p)...)
	root.Children = append(root.Children, windows(p)...)
	root.Children = append(root.Children,
		exhaust(p),
		nozzle(p, "nozzle_1", 0.3, 0.3),
		nozzle(p, "nozzle_2", -0.3, -0.3),
		ring(p, "ring_top", 5.5),
		ring(p, "ring_bottom", 1.5),
	)
	return root
}

func body(p Params) scene.Node {
	return &scene.Primitive{
		Name:     "body",
		Shape:    scene.ShapeCylinder,
		Color:    "silver",
		Radius:   p.BodyRadius,
		Height:   p.BodyHeight,
		Segments: p.Segments,
		// Hull is generated centered at the origin; lift it so its base
		// sits on z=0.
		Ops: []vostok.Op{
			vostok.Translate(0, 0, p.BodyHeight/2),
		},
	}
}

func nose(p Params) scene.Node {
	return &scene.Primitive{
		Name:     "nose_cone",
		Shape:    scene.ShapeCone,
		Color:    "red",
		Radius:   p.BodyRadius,
		Height:   p.NoseHeight,
		Segments: p.Segments,
		Ops: []vostok.Op{
			vostok.Translate(0, 0, p.BodyHeight+p.NoseHeight/2),
		},
	}
}

// fins returns the three tail fins at 120 degree spacing. Each fin is
// canted about X first, offset radially, then swung about Z into place,
// so the three differ only in the final rotation.
func fins(p Params) []scene.Node {
	nodes := make([]scene.Node, 0, 3)
	for i, azimuth := range []float64{0, 120, 240} {
		nodes = append(nodes, &scene.Primitive{
			Name:  "fin_" + strconv.Itoa(i+1),
			Shape: scene.ShapeCube,
			Color: "blue",
			Size:  p.FinSize,
			Ops: []vostok.Op{
				vostok.RotateX(p.FinCant),
				vostok.Translate(0, -p.BodyRadius, p.FinSize.Z/2),
				vostok.RotateZ(azimuth),
			},
		})
	}
	return nodes
}

// windows returns three porthole spheres embedded in the hull surface.
// The radial offset places each window on the +X side first; the final
// Z rotation then carries it around the hull.
func windows(p Params) []scene.Node {
	place := []struct {
		z, azimuth float64
	}{
		{z: 5.0, azimuth: 0},
		{z: 4.0, azimuth: 90},
		{z: 5.0, azimuth: 180},
	}
	nodes := make([]scene.Node, 0, len(place))
	for i, w := range place {
		nodes = append(nodes, &scene.Primitive{
			Name:     "window_" + strconv.Itoa(i+1),
			Shape:    scene.ShapeSphere,
			Color:    "lightblue",
			Radius:   p.WindowRadius,
			Segments: p.Segments,
			Ops: []vostok.Op{
				vostok.Translate(0.8*p.BodyRadius, 0, w.z),
				vostok.RotateZ(w.azimuth),
			},
		})
	}
	return nodes
}

func exhaust(p Params) scene.Node {
	return &scene.Primitive{
		Name:     "exhaust",
		Shape:    scene.ShapeCylinder,
		Color:    "darkgrey",
		Radius:   p.ExhaustRadius,
		Height:   p.ExhaustHeight,
		Segments: p.Segments,
		Ops: []vostok.Op{
			vostok.Translate(0, 0, -p.ExhaustHeight/2),
		},
	}
}

// nozzle returns one engine cone, flipped apex-down before it is moved
// under the exhaust skirt so the offset is not swept by the rotation.
func nozzle(p Params, name string, dx, dy float64) scene.Node {
	return &scene.Primitive{
		Name:     name,
		Shape:    scene.ShapeCone,
		Color:    "orange",
		Radius:   p.NozzleRadius,
		Height:   p.NozzleHeight,
		Segments: p.Segments,
		Ops: []vostok.Op{
			vostok.RotateX(180),
			vostok.Translate(dx, dy, -0.9),
		},
	}
}

func ring(p Params, name string, z float64) scene.Node {
	return &scene.Primitive{
		Name:        name,
		Shape:       scene.ShapeTorus,
		Color:       "gold",
		MajorRadius: p.RingMajor,
		MinorRadius: p.RingMinor,
		Segments:    p.Segments,
		Ops: []vostok.Op{
			vostok.Translate(0, 0, z),
		},
	}
}
