// Package gridplate generates parametric CSG descriptions of modular
// storage baseplates: grids of interlocking 42mm tray sockets with
// optional padding material to meet a minimum footprint and rounded
// outer corners. The generator computes plate dimensions from a
// GridSpec, sweeps a lip cross-section around each grid unit and
// combines the pieces with boolean operations into a single csg.Solid
// tree. Realizing the tree (meshing, export) is the job of a kernel
// backend, see kernel/sdfx.
package gridplate

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Constants is the set of fixed plate dimensions, in millimetres.
// The values are part of the external compatibility contract of the
// 42mm grid standard; alternate standards substitute their own set.
type Constants struct {
	// GridUnit is the modular footprint cell size.
	GridUnit float64
	// Tolerance is the boolean-operation clearance used to avoid
	// zero-thickness artifacts on subtractions.
	Tolerance float64
	// OutsideRadius is the corner radius of units and of the plate
	// silhouette.
	OutsideRadius float64
	// BaseplateHeight is the baseplate lip height.
	BaseplateHeight float64
	// MatingWidth is the flat land on top of the lip wall.
	MatingWidth float64
	// BaseplateWall is the baseplate lip wall thickness.
	BaseplateWall float64
	// SpacerHeight is the stacking shim height.
	SpacerHeight float64
}

// DefaultConstants returns the standard 42mm grid dimensions.
func DefaultConstants() Constants {
	return Constants{
		GridUnit:        42,
		Tolerance:       0.01,
		OutsideRadius:   4,
		BaseplateHeight: 5,
		MatingWidth:     0.5,
		BaseplateWall:   2.15,
		SpacerHeight:    0.2,
	}
}

// Kind selects the generated plate variant.
type Kind int

const (
	// KindBaseplate is the bottom support plate: full-height lip,
	// thick walls.
	KindBaseplate Kind = iota
	// KindSpacer is the thin stacking shim variant.
	KindSpacer
)

func (k Kind) String() string {
	switch k {
	case KindBaseplate:
		return "baseplate"
	case KindSpacer:
		return "spacer"
	}
	return "unknown"
}

// Lip describes one lip variant: the wall cross-section swept around
// each grid unit, its thickness and its height. The profile lies in
// the XY plane with x measured outward across the wall from the inner
// face and y measured up from the plate bottom; it must wind
// counter-clockwise.
type Lip struct {
	Profile []r2.Vec
	Wall    float64
	Height  float64
}

// BaseplateLip returns the baseplate lip cross-section: a vertical
// outer face of full wall thickness, a MatingWidth top land and a 45
// degree socket taper down to the vertical inner face.
func (c Constants) BaseplateLip() Lip {
	w := c.BaseplateWall
	h := c.BaseplateHeight
	taper := w - c.MatingWidth
	return Lip{
		Profile: []r2.Vec{
			{X: 0, Y: 0},
			{X: w, Y: 0},
			{X: w, Y: h},
			{X: w - c.MatingWidth, Y: h},
			{X: 0, Y: h - taper},
		},
		Wall:   w,
		Height: h,
	}
}

// SpacerLip returns the spacer lip cross-section: a plain rectangle
// of MatingWidth by SpacerHeight.
func (c Constants) SpacerLip() Lip {
	return Lip{
		Profile: []r2.Vec{
			{X: 0, Y: 0},
			{X: c.MatingWidth, Y: 0},
			{X: c.MatingWidth, Y: c.SpacerHeight},
			{X: 0, Y: c.SpacerHeight},
		},
		Wall:   c.MatingWidth,
		Height: c.SpacerHeight,
	}
}

// LipFor returns the lip variant for the given Kind.
func (c Constants) LipFor(k Kind) (Lip, error) {
	switch k {
	case KindBaseplate:
		return c.BaseplateLip(), nil
	case KindSpacer:
		return c.SpacerLip(), nil
	}
	return Lip{}, errConfigf("what", "unknown plate kind %d", int(k))
}

// GridSpec is the user-supplied sizing specification of a plate. For
// each axis at least one of the unit count and the minimum size must
// be positive: a zero unit count means "compute from the minimum
// size" and a zero minimum size means "no footprint constraint".
type GridSpec struct {
	// UnitsX, UnitsY are the grid unit counts, 0 meaning auto.
	UnitsX, UnitsY int
	// MinSizeX, MinSizeY are the minimum footprint in millimetres,
	// 0 meaning unconstrained.
	MinSizeX, MinSizeY float64
	// FitX, FitY bias the placement of padding material, in [-1, 1]:
	// -1 puts all padding on the negative side of the axis, +1 on
	// the positive side, 0 splits it evenly.
	FitX, FitY float64
}

func (g GridSpec) validate() error {
	type axis struct {
		name    string
		units   int
		minSize float64
		fit     float64
	}
	for _, a := range []axis{
		{"x", g.UnitsX, g.MinSizeX, g.FitX},
		{"y", g.UnitsY, g.MinSizeY, g.FitY},
	} {
		if a.units < 0 {
			return errConfigf("grid"+a.name, "unit count must be >= 0, got %d", a.units)
		}
		if a.minSize < 0 {
			return errConfigf("distance"+a.name, "minimum size must be >= 0, got %g", a.minSize)
		}
		if a.units == 0 && a.minSize == 0 {
			return errConfigf("grid"+a.name, "need a unit count or a minimum size on every axis")
		}
		if a.fit < -1 || a.fit > 1 {
			return errConfigf("fit"+a.name, "fit must be in [-1, 1], got %g", a.fit)
		}
	}
	return nil
}
