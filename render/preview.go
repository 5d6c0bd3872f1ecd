package render

import (
	"errors"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gridfab/gridplate/internal/d3"
)

// View configures the camera of SavePNG.
type View struct {
	// what position (point) to look at
	Lookat r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye is located at (point), in bi-unit cube
	// coordinates since the mesh is normalized before rendering
	Eyepos r3.Vec
	Far    float64
	Near   float64
}

// DefaultView is an isometric view from the top front right.
func DefaultView() View {
	return View{
		Up:     r3.Vec{Z: 1},
		Eyepos: d3.Elem(2.4),
		Near:   1,
		Far:    10,
	}
}

// SavePNG rasterizes a triangle mesh to a shaded PNG preview image.
func SavePNG(path string, model []Triangle, view View, width, height int) error {
	if len(model) == 0 {
		return errors.New("empty triangle slice")
	}
	mesh := fauxgl.NewEmptyMesh()
	for _, t := range model {
		mesh.Triangles = append(mesh.Triangles, fauxgl.NewTriangleForPoints(
			fauxgl.V(t.V[0].X, t.V[0].Y, t.V[0].Z),
			fauxgl.V(t.V[1].X, t.V[1].Y, t.V[1].Z),
			fauxgl.V(t.V[2].X, t.V[2].Y, t.V[2].Z),
		))
	}

	const (
		scale = 2  // supersampling for antialiasing
		fovy  = 30 // vertical field of view in degrees
	)
	var (
		eye    = fauxgl.V(view.Eyepos.X, view.Eyepos.Y, view.Eyepos.Z)
		center = fauxgl.V(view.Lookat.X, view.Lookat.Y, view.Lookat.Z)
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
		color  = fauxgl.HexColor("#468966")
	)

	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	image := resize.Resize(uint(width), uint(height), context.Image(), resize.Bilinear)
	return fauxgl.SavePNG(path, image)
}
