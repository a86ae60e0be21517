package scene

import (
	"fmt"

	"github.com/vostok-labs/vostok"
)

// Flatten traverses the scene graph depth-first in pre-order and returns
// one Renderable per primitive instance, vertices transformed to world
// space. The emission order is the traversal order; the geometry of each
// renderable depends only on its own parameters and its ancestors'
// transforms, never on siblings.
//
// Flatten fails fast: a cycle, a node reachable through two parents, a
// nil child, an unrecognized shape kind or an invalid size parameter
// aborts the whole pass with an error naming the offending node. A
// partially flattened scene is never returned.
func Flatten(root Node) ([]Renderable, error) {
	f := flattener{seen: make(map[Node]struct{})}
	if err := f.walk(root, vostok.Identity()); err != nil {
		return nil, err
	}
	return f.out, nil
}

type flattener struct {
	seen map[Node]struct{}
	out  []Renderable
}

func (f *flattener) walk(n Node, world vostok.Affine) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrMalformedScene)
	}
	if _, ok := f.seen[n]; ok {
		return fmt.Errorf("%w: node %q reachable more than once (cycle or shared node)", ErrMalformedScene, n.NodeName())
	}
	f.seen[n] = struct{}{}

	switch n := n.(type) {
	case *Group:
		// world = parent · group local, so group placement applies after
		// each child's own transform sequence.
		world = world.Mul(vostok.Compose(n.Ops))
		for _, child := range n.Children {
			if err := f.walk(child, world); err != nil {
				return err
			}
		}
	case *Primitive:
		m, err := n.generate()
		if err != nil {
			return fmt.Errorf("node %q (%s): %w", n.Name, n.Shape, err)
		}
		world.Mul(vostok.Compose(n.Ops)).Apply(m.Vertices)
		f.out = append(f.out, Renderable{
			Name:      n.Name,
			Shape:     n.Shape,
			Color:     n.Color,
			Vertices:  m.Vertices,
			Triangles: m.Triangles,
		})
	default:
		return fmt.Errorf("%w: node %q has unsupported type %T", ErrMalformedScene, n.NodeName(), n)
	}
	return nil
}
