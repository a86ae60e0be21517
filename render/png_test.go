package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/vostok-labs/vostok"
	"github.com/vostok-labs/vostok/scene"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot/cmpimg"
)

// Snapshot must be deterministic: two rasterizations of the same scene
// and view yield byte-identical pixels. A single part avoids any
// ambiguity from coincident surfaces.
func TestSnapshotDeterministic(t *testing.T) {
	root := &scene.Primitive{
		Name: "block", Shape: scene.ShapeCube,
		Size:  r3.Vec{X: 1, Y: 2, Z: 3},
		Color: "red",
		Ops:   []vostok.Op{vostok.RotateZ(30)},
	}
	parts, err := scene.Flatten(root)
	if err != nil {
		t.Fatal(err)
	}
	v := FitView(parts)
	v.Width = 160
	v.Height = 120

	encode := func() []byte {
		img, err := Snapshot(parts, v)
		if err != nil {
			t.Fatal(err)
		}
		var b bytes.Buffer
		if err := png.Encode(&b, img); err != nil {
			t.Fatal(err)
		}
		return b.Bytes()
	}
	first := encode()
	second := encode()
	ok, err := cmpimg.Equal("png", first, second)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("snapshots of identical input differ")
	}
}

func TestSnapshotSize(t *testing.T) {
	parts, err := scene.Flatten(&scene.Primitive{
		Name: "ball", Shape: scene.ShapeSphere, Radius: 1, Color: "gold",
	})
	if err != nil {
		t.Fatal(err)
	}
	v := FitView(parts)
	v.Width = 64
	v.Height = 48
	img, err := Snapshot(parts, v)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("got %dx%d image, want 64x48", b.Dx(), b.Dy())
	}
}

func TestSnapshotEmpty(t *testing.T) {
	if _, err := Snapshot(nil, View{}); err == nil {
		t.Error("expected error for empty scene")
	}
}

func TestPaletteColor(t *testing.T) {
	if paletteColor("silver") != paletteColor("#C0C0C0") {
		t.Error("named color does not match its hex value")
	}
	if paletteColor("no-such-color") != paletteColor("grey") {
		t.Error("unknown color does not fall back to grey")
	}
}
