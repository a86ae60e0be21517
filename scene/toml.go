package scene

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/vostok-labs/vostok"
	"gonum.org/v1/gonum/spatial/r3"
)

// TOML scene descriptions. The document root is a node table:
//
//	name = "rocket"
//	type = "group"
//
//	[[children]]
//	name  = "body"
//	type  = "primitive"
//	shape = "cylinder"
//	color = "silver"
//	radius = 1.0
//	height = 6.0
//
//	[[children.transformations]]
//	type = "translate"
//	args = [0.0, 0.0, 3.0]
//
// Transformations are applied in declaration order, first to last.

type nodeConfig struct {
	Name            string       `toml:"name"`
	Type            string       `toml:"type"`
	Shape           string       `toml:"shape,omitempty"`
	Color           string       `toml:"color,omitempty"`
	Radius          float64      `toml:"radius,omitempty"`
	Height          float64      `toml:"height,omitempty"`
	Size            []float64    `toml:"size,omitempty"`
	MajorRadius     float64      `toml:"major_radius,omitempty"`
	MinorRadius     float64      `toml:"minor_radius,omitempty"`
	Segments        int          `toml:"segments,omitempty"`
	Transformations []opConfig   `toml:"transformations,omitempty"`
	Children        []nodeConfig `toml:"children,omitempty"`
}

type opConfig struct {
	Type string    `toml:"type"`
	Args []float64 `toml:"args"`
}

// DecodeTOML reads a TOML scene description and builds the node tree.
// Decoding validates structure only (node and operation kinds, argument
// counts); size parameters are validated by Flatten.
func DecodeTOML(r io.Reader) (Node, error) {
	var cfg nodeConfig
	if err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedScene, err)
	}
	return cfg.build()
}

func (c *nodeConfig) build() (Node, error) {
	ops, err := buildOps(c.Transformations)
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", c.Name, err)
	}
	switch c.Type {
	case "group":
		g := &Group{Name: c.Name, Ops: ops}
		for i := range c.Children {
			child, err := c.Children[i].build()
			if err != nil {
				return nil, err
			}
			g.Children = append(g.Children, child)
		}
		return g, nil
	case "primitive":
		shape, err := parseShape(c.Shape)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", c.Name, err)
		}
		p := &Primitive{
			Name:        c.Name,
			Shape:       shape,
			Radius:      c.Radius,
			Height:      c.Height,
			MajorRadius: c.MajorRadius,
			MinorRadius: c.MinorRadius,
			Color:       c.Color,
			Ops:         ops,
			Segments:    c.Segments,
		}
		if len(c.Size) > 0 {
			if len(c.Size) != 3 {
				return nil, fmt.Errorf("%w: node %q size needs 3 extents, got %d", ErrMalformedScene, c.Name, len(c.Size))
			}
			p.Size = r3.Vec{X: c.Size[0], Y: c.Size[1], Z: c.Size[2]}
		}
		return p, nil
	case "":
		return nil, fmt.Errorf("%w: node %q missing type", ErrMalformedScene, c.Name)
	default:
		return nil, fmt.Errorf("%w: node %q has unknown type %q", ErrMalformedScene, c.Name, c.Type)
	}
}

func parseShape(s string) (Shape, error) {
	switch s {
	case "cylinder":
		return ShapeCylinder, nil
	case "cone":
		return ShapeCone, nil
	case "cube":
		return ShapeCube, nil
	case "sphere":
		return ShapeSphere, nil
	case "torus":
		return ShapeTorus, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

func buildOps(cfgs []opConfig) ([]vostok.Op, error) {
	if len(cfgs) == 0 {
		return nil, nil
	}
	ops := make([]vostok.Op, 0, len(cfgs))
	for _, c := range cfgs {
		op, err := c.build()
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func (c opConfig) build() (vostok.Op, error) {
	want3 := func() error {
		if len(c.Args) != 3 {
			return fmt.Errorf("%w: %s needs 3 args, got %d", ErrMalformedScene, c.Type, len(c.Args))
		}
		return nil
	}
	want1 := func() error {
		if len(c.Args) != 1 {
			return fmt.Errorf("%w: %s needs 1 arg, got %d", ErrMalformedScene, c.Type, len(c.Args))
		}
		return nil
	}
	switch c.Type {
	case "scale":
		if err := want3(); err != nil {
			return vostok.Op{}, err
		}
		return vostok.Scale(c.Args[0], c.Args[1], c.Args[2]), nil
	case "translate":
		if err := want3(); err != nil {
			return vostok.Op{}, err
		}
		return vostok.Translate(c.Args[0], c.Args[1], c.Args[2]), nil
	case "rotate_x":
		if err := want1(); err != nil {
			return vostok.Op{}, err
		}
		return vostok.RotateX(c.Args[0]), nil
	case "rotate_y":
		if err := want1(); err != nil {
			return vostok.Op{}, err
		}
		return vostok.RotateY(c.Args[0]), nil
	case "rotate_z":
		if err := want1(); err != nil {
			return vostok.Op{}, err
		}
		return vostok.RotateZ(c.Args[0]), nil
	}
	return vostok.Op{}, fmt.Errorf("%w: unknown transformation type %q", ErrMalformedScene, c.Type)
}
