package gridplate

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gridfab/gridplate/csg"
	"github.com/gridfab/gridplate/internal/d3"
)

// rect2 drops the Z component of a size vector.
func rect2(v r3.Vec) r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

// Dimensions is the derived sizing of a generated plate: the resolved
// unit counts, the whole-unit grid footprint, the final footprint
// after applying minimum-size constraints, the padding making up the
// difference and where it starts, and the four outer corners of the
// final bounding box. It doubles as the diagnostic output of Generate.
type Dimensions struct {
	Units        [2]int
	GridSize     r3.Vec
	FinalSize    r3.Vec
	Padding      r3.Vec
	PaddingStart r3.Vec
	Corners      [4]r3.Vec
}

// NeedsPadding reports whether the final footprint exceeds the
// whole-unit grid footprint on any axis.
func (d Dimensions) NeedsPadding() bool {
	return d.Padding.X > 0 || d.Padding.Y > 0
}

// Layout resolves a GridSpec into concrete plate dimensions for a lip
// of the given height. The grid of whole units is centered at the
// origin; padding is distributed around it according to the fit bias.
func (c Constants) Layout(height float64, spec GridSpec) (Dimensions, error) {
	if err := spec.validate(); err != nil {
		return Dimensions{}, err
	}

	units := [2]int{spec.UnitsX, spec.UnitsY}
	minSize := [2]float64{spec.MinSizeX, spec.MinSizeY}
	for axis, name := range [2]string{"x", "y"} {
		if units[axis] == 0 {
			units[axis] = int(math.Floor(minSize[axis] / c.GridUnit))
			if units[axis] < 1 {
				return Dimensions{}, errConfigf("distance"+name,
					"minimum size %gmm is smaller than one %gmm grid unit", minSize[axis], c.GridUnit)
			}
		}
	}

	d := Dimensions{Units: units}
	d.GridSize = r3.Vec{
		X: float64(units[0]) * c.GridUnit,
		Y: float64(units[1]) * c.GridUnit,
		Z: height,
	}
	d.FinalSize = d3.MaxElem(d.GridSize, r3.Vec{X: minSize[0], Y: minSize[1], Z: height})
	d.Padding = r3.Sub(d.FinalSize, d.GridSize)

	// Map the [-1,1] fit bias to the fraction of padding placed on
	// the positive side of each axis.
	fitX := (spec.FitX + 1) / 2
	fitY := (spec.FitY + 1) / 2
	d.PaddingStart = r3.Vec{
		X: -d.GridSize.X/2 - d.Padding.X*(1-fitX),
		Y: -d.GridSize.Y/2 - d.Padding.Y*(1-fitY),
	}
	d.Corners = [4]r3.Vec{
		d.PaddingStart,
		r3.Add(d.PaddingStart, r3.Vec{X: d.FinalSize.X}),
		r3.Add(d.PaddingStart, r3.Vec{X: d.FinalSize.X, Y: d.FinalSize.Y}),
		r3.Add(d.PaddingStart, r3.Vec{Y: d.FinalSize.Y}),
	}
	return d, nil
}

// Generate builds the plate variant selected by kind from the
// standard constants. See Constants.Generate.
func Generate(kind Kind, spec GridSpec) (csg.Solid, Dimensions, error) {
	c := DefaultConstants()
	lip, err := c.LipFor(kind)
	if err != nil {
		return nil, Dimensions{}, err
	}
	return c.Generate(lip, spec)
}

// Generate builds the full plate solid for a lip variant and a
// GridSpec: unit lips tiled across the resolved grid, a padding frame
// unioned in when the final footprint exceeds the grid, and the four
// silhouette corners rounded off with subtractive trims. Generation
// is a pure function of its inputs; all validation happens before the
// first node is built.
func (c Constants) Generate(lip Lip, spec GridSpec) (csg.Solid, Dimensions, error) {
	dims, err := c.Layout(lip.Height, spec)
	if err != nil {
		return nil, Dimensions{}, err
	}
	unit, err := c.unitLip(lip)
	if err != nil {
		return nil, Dimensions{}, err
	}

	// Tile units on a centered regular grid. A single commutative
	// union keeps the result independent of tiling order.
	tiles := make([]csg.Solid, 0, dims.Units[0]*dims.Units[1])
	for iy := 0; iy < dims.Units[1]; iy++ {
		for ix := 0; ix < dims.Units[0]; ix++ {
			center := r3.Vec{
				X: -dims.GridSize.X/2 + c.GridUnit*(float64(ix)+0.5),
				Y: -dims.GridSize.Y/2 + c.GridUnit*(float64(iy)+0.5),
			}
			tiles = append(tiles, csg.Transformed{Solid: unit, T: csg.Translate(center)})
		}
	}
	body := csg.Solid(csg.Union{Solids: tiles})

	if dims.NeedsPadding() {
		body = csg.Union{Solids: []csg.Solid{body, c.paddingFrame(dims, lip.Height)}}
	}

	// Round the silhouette: subtract a corner trim at each outer
	// corner, pulled inward by the outside radius so the cut arc is
	// tangent to the plate faces.
	trim := c.cornerTrim(lip.Height, true)
	cuts := make([]csg.Solid, 0, len(dims.Corners))
	for _, p := range dims.Corners {
		sx, sy := sign01(p.X), sign01(p.Y)
		t := csg.Translate(r3.Vec{
			X: p.X - c.OutsideRadius*sx,
			Y: p.Y - c.OutsideRadius*sy,
		}).Mul(csg.RotateZ(quadrantRotation(sx, sy)))
		cuts = append(cuts, csg.Transformed{Solid: trim, T: t})
	}

	return csg.Difference{A: body, B: csg.Union{Solids: cuts}}, dims, nil
}

// paddingFrame builds the solid block spanning the final footprint
// minus the grid footprint as one box-minus-box difference. The inner
// box is stretched past both faces in Z so the subtraction leaves no
// zero-thickness skin.
func (c Constants) paddingFrame(dims Dimensions, height float64) csg.Solid {
	outer := csg.Transformed{
		Solid: csg.Extrude{
			Profile: csg.Rect{Size: rect2(dims.FinalSize)},
			Height:  height,
		},
		T: csg.Translate(dims.PaddingStart),
	}
	inner := csg.Transformed{
		Solid: csg.Extrude{
			Profile: csg.Rect{Size: rect2(dims.GridSize)},
			Height:  height + 2*c.Tolerance,
		},
		T: csg.Translate(r3.Vec{
			X: -dims.GridSize.X / 2,
			Y: -dims.GridSize.Y / 2,
			Z: -c.Tolerance,
		}),
	}
	return csg.Difference{A: outer, B: inner}
}
