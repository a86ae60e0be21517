package render

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/vostok-labs/vostok"
	"github.com/vostok-labs/vostok/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

// float32 storage limits STL round-trip precision.
const tolSTL = 1e-6

func testScene(t *testing.T) []scene.Renderable {
	t.Helper()
	root := &scene.Group{Name: "test", Children: []scene.Node{
		&scene.Primitive{
			Name: "block", Shape: scene.ShapeCube,
			Size: r3.Vec{X: 1, Y: 2, Z: 3},
			Ops:  []vostok.Op{vostok.RotateZ(30), vostok.Translate(0, 0, 1)},
		},
		&scene.Primitive{
			Name: "cap", Shape: scene.ShapeCone,
			Radius: 0.5, Height: 1,
			Ops: []vostok.Op{vostok.Translate(0, 0, 3)},
		},
	}}
	parts, err := scene.Flatten(root)
	if err != nil {
		t.Fatal(err)
	}
	return parts
}

func TestSceneRenderer(t *testing.T) {
	parts := testScene(t)
	want := 0
	for i := range parts {
		want += len(parts[i].Triangles)
	}
	got, err := RenderAll(NewSceneRenderer(parts))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != want {
		t.Errorf("got %d triangles, want %d", len(got), want)
	}
}

// Renderer output must not depend on the caller's buffer size.
func TestSceneRendererSmallBuffer(t *testing.T) {
	parts := testScene(t)
	all, err := RenderAll(NewSceneRenderer(parts))
	if err != nil {
		t.Fatal(err)
	}
	r := NewSceneRenderer(testScene(t))
	var got []Triangle3
	buf := make([]Triangle3, 3)
	for {
		n, err := r.ReadTriangles(buf)
		got = append(got, buf[:n]...)
		if err != nil {
			break
		}
	}
	if len(got) != len(all) {
		t.Fatalf("got %d triangles, want %d", len(got), len(all))
	}
	for i := range all {
		if !triangleEquals(got[i], all[i], 0) {
			t.Fatalf("triangle %d differs: %v != %v", i, got[i], all[i])
		}
	}
}

func TestCreateSTLRoundTrip(t *testing.T) {
	parts := testScene(t)
	want, err := RenderAll(NewSceneRenderer(parts))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "scene.stl")
	if err := CreateSTL(path, NewSceneRenderer(parts)); err != nil {
		t.Fatal(err)
	}
	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	got, err := readBinarySTL(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d triangles, want %d", len(got), len(want))
	}
	for i := range want {
		if !triangleEquals(got[i], want[i], tolSTL) {
			t.Errorf("triangle %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWriteSTLRoundTrip(t *testing.T) {
	want, err := RenderAll(NewSceneRenderer(testScene(t)))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := WriteSTL(&b, want); err != nil {
		t.Fatal(err)
	}
	const header = 84
	if b.Len() != header+len(want)*stlTriangleSize {
		t.Errorf("wrote %d bytes, want %d", b.Len(), header+len(want)*stlTriangleSize)
	}
	got, err := readBinarySTL(&b)
	if err != nil {
		t.Fatal(err)
	}
	for i := range want {
		if !triangleEquals(got[i], want[i], tolSTL) {
			t.Errorf("triangle %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWriteSTLEmpty(t *testing.T) {
	var b bytes.Buffer
	if err := WriteSTL(&b, nil); err == nil {
		t.Error("expected error for empty model")
	}
}

func TestSTLTriangleValidate(t *testing.T) {
	bad := stlTriangle{
		Normal: [3]float32{float32(math.NaN()), 0, 0},
	}
	if err := bad.validate(); err == nil {
		t.Error("NaN normal passed validation")
	}
}

func triangleEquals(a, b Triangle3, tol float64) bool {
	return vostok.EqualWithin(a[0], b[0], tol) &&
		vostok.EqualWithin(a[1], b[1], tol) &&
		vostok.EqualWithin(a[2], b[2], tol)
}
