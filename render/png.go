package render

import (
	"fmt"
	"image"
	"strings"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/vostok-labs/vostok/internal/d3"
	"github.com/vostok-labs/vostok/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

// PNG snapshots of a flattened scene, shaded with a Phong software
// rasterizer. Each renderable keeps its own color; geometry is drawn
// exactly as flattened, no fitting or recentering.

// View configures the snapshot camera.
type View struct {
	// Lookat is the point the camera looks at.
	Lookat r3.Vec
	// Up is the camera up direction.
	Up r3.Vec
	// Eye is the camera position.
	Eye r3.Vec
	// Near and Far are the clip plane distances.
	Near, Far float64
	// Width and Height are the output image size in pixels.
	// Zero selects 1280x960.
	Width, Height int
}

// FitView returns a view that frames the whole scene: eye offset
// diagonally from the bounding box center, clip planes sized to the
// scene diagonal.
func FitView(parts []scene.Renderable) View {
	bb := d3.Box{Min: d3.Elem(-1), Max: d3.Elem(1)}
	for i, p := range parts {
		if i == 0 {
			bb = d3.Box(p.Bounds())
			continue
		}
		bb = bb.Extend(d3.Box(p.Bounds()))
	}
	center := bb.Center()
	diag := r3.Norm(bb.Size())
	eye := r3.Add(center, r3.Scale(diag, r3.Unit(r3.Vec{X: 1, Y: 1, Z: 0.5})))
	return View{
		Lookat: center,
		Up:     r3.Vec{Z: 1},
		Eye:    eye,
		Near:   diag / 100,
		Far:    diag * 10,
	}
}

const (
	snapshotSuperSample = 2  // render at 2x and downsample for antialiasing
	snapshotFovy        = 30 // vertical field of view in degrees
)

// Snapshot rasterizes the flattened scene to an image using the given
// view. The output is deterministic for identical input.
func Snapshot(parts []scene.Renderable, v View) (image.Image, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("nothing to render")
	}
	width := v.Width
	height := v.Height
	if width == 0 {
		width = 1280
	}
	if height == 0 {
		height = 960
	}

	var (
		eye    = fauxgl.V(v.Eye.X, v.Eye.Y, v.Eye.Z)
		center = fauxgl.V(v.Lookat.X, v.Lookat.Y, v.Lookat.Z)
		up     = fauxgl.V(v.Up.X, v.Up.Y, v.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
	)
	context := fauxgl.NewContext(width*snapshotSuperSample, height*snapshotSuperSample)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(snapshotFovy, aspect, v.Near, v.Far)

	// One mesh and shader per part so each keeps its own color.
	for i := range parts {
		m := fauxglMesh(&parts[i])
		if len(m.Triangles) == 0 {
			continue
		}
		shader := fauxgl.NewPhongShader(matrix, light, eye)
		shader.ObjectColor = paletteColor(parts[i].Color)
		context.Shader = shader
		context.DrawMesh(m)
	}
	img := context.Image()
	return resize.Resize(uint(width), uint(height), img, resize.Bilinear), nil
}

// SavePNG writes a snapshot of the flattened scene to path.
func SavePNG(path string, parts []scene.Renderable, v View) error {
	img, err := Snapshot(parts, v)
	if err != nil {
		return err
	}
	return fauxgl.SavePNG(path, img)
}

func fauxglMesh(part *scene.Renderable) *fauxgl.Mesh {
	tris := make([]*fauxgl.Triangle, 0, len(part.Triangles))
	for _, f := range part.Triangles {
		p0 := part.Vertices[f[0]]
		p1 := part.Vertices[f[1]]
		p2 := part.Vertices[f[2]]
		tris = append(tris, fauxgl.NewTriangleForPoints(
			fauxgl.V(p0.X, p0.Y, p0.Z),
			fauxgl.V(p1.X, p1.Y, p1.Z),
			fauxgl.V(p2.X, p2.Y, p2.Z),
		))
	}
	return fauxgl.NewTriangleMesh(tris)
}

// palette resolves the CSS-ish color names the scene descriptions use.
// Unknown names fall back to grey; "#rrggbb" strings pass through.
var palette = map[string]string{
	"black":     "#000000",
	"blue":      "#2255DD",
	"darkgrey":  "#555555",
	"darkgray":  "#555555",
	"gold":      "#FFD700",
	"grey":      "#808080",
	"gray":      "#808080",
	"lightblue": "#ADD8E6",
	"orange":    "#FF8C00",
	"red":       "#D62718",
	"silver":    "#C0C0C0",
	"white":     "#FFFFFF",
}

func paletteColor(name string) fauxgl.Color {
	if strings.HasPrefix(name, "#") {
		return fauxgl.HexColor(name)
	}
	if hex, ok := palette[strings.ToLower(name)]; ok {
		return fauxgl.HexColor(hex)
	}
	return fauxgl.HexColor(palette["grey"])
}
