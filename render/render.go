// Package render hands flattened scenes to output collaborators: binary
// STL files for geometry interchange and software-shaded PNG snapshots.
// It consumes the renderable list produced by the scene package and does
// not know about cameras beyond the snapshot view it is given.
package render

import (
	"io"

	"github.com/vostok-labs/vostok/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle3 is a triangle in 3D space addressed by vertex position.
type Triangle3 = r3.Triangle

// Renderer streams triangles. ReadTriangles follows the io.Reader
// contract: it fills dst, returns the number of triangles read and
// io.EOF once the source is exhausted.
type Renderer interface {
	ReadTriangles(dst []Triangle3) (int, error)
}

// NewSceneRenderer returns a Renderer that streams the triangles of a
// flattened scene, one renderable at a time, in emission order.
func NewSceneRenderer(parts []scene.Renderable) Renderer {
	return &sceneRenderer{parts: parts}
}

type sceneRenderer struct {
	parts     []scene.Renderable
	unwritten triangle3Buffer
}

func (s *sceneRenderer) ReadTriangles(dst []Triangle3) (int, error) {
	for s.unwritten.Len() == 0 {
		if len(s.parts) == 0 {
			return 0, io.EOF
		}
		s.unwritten.Write(s.parts[0].Triangles3())
		s.parts = s.parts[1:]
	}
	return s.unwritten.Read(dst), nil
}

// RenderAll reads the full contents of a Renderer and returns the slice
// read. It does not return io.EOF.
func RenderAll(r Renderer) ([]Triangle3, error) {
	var err error
	var nt int
	result := make([]Triangle3, 0, 1<<12)
	buf := make([]Triangle3, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		if err != nil {
			break
		}
		result = append(result, buf[:nt]...)
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}

type triangle3Buffer struct {
	buf []Triangle3
}

// Read reads from this buffer.
func (b *triangle3Buffer) Read(t []Triangle3) int {
	n := copy(t, b.buf)
	b.buf = b.buf[n:]
	return n
}

// Write appends triangles to this buffer.
func (b *triangle3Buffer) Write(t []Triangle3) int {
	b.buf = append(b.buf, t...)
	return len(t)
}

func (b *triangle3Buffer) Len() int { return len(b.buf) }

// normal returns the unit normal of a triangle from its winding.
func normal(t Triangle3) r3.Vec {
	e1 := r3.Sub(t[1], t[0])
	e2 := r3.Sub(t[2], t[0])
	return r3.Unit(r3.Cross(e1, e2))
}
