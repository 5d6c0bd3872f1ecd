package gridplate

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gridfab/gridplate/csg"
	"github.com/gridfab/gridplate/internal/d2"
)

// validateLip rejects degenerate lip geometry before any node is built.
func (c Constants) validateLip(lip Lip) error {
	switch {
	case len(lip.Profile) < 3:
		return errGeomf("lip", "cross-section needs at least 3 vertices, got %d", len(lip.Profile))
	case lip.Wall <= 0:
		return errGeomf("lip", "wall thickness must be positive, got %g", lip.Wall)
	case lip.Wall > c.OutsideRadius:
		return errGeomf("lip", "wall thickness %g exceeds outside radius %g", lip.Wall, c.OutsideRadius)
	case lip.Height <= 0:
		return errGeomf("lip", "height must be positive, got %g", lip.Height)
	case c.GridUnit <= 2*c.OutsideRadius:
		return errGeomf("lip", "grid unit %g leaves no room for corner radius %g", c.GridUnit, c.OutsideRadius)
	}
	return nil
}

// unitLip builds the lip solid of a single grid unit, centered at the
// origin. The cross-section is pushed outward so its outer face lands
// on the unit boundary, then swept around a centered square path; the
// rounded sweep corners are squared off with four corner fills so
// adjacent units mate along straight edges. The union is wrapped in a
// Rendered hint: materializing it once keeps the tiled boolean tree
// shallow for kernels that evaluate eagerly.
func (c Constants) unitLip(lip Lip) (csg.Solid, error) {
	if err := c.validateLip(lip); err != nil {
		return nil, err
	}

	// Swept wall ring. The path side is shortened by the corner
	// radius at both ends; the profile offset makes the corner
	// revolutions span [OutsideRadius-Wall, OutsideRadius].
	profile := d2.Offset(lip.Profile, r2.Vec{X: c.OutsideRadius - lip.Wall})
	half := (c.GridUnit - 2*c.OutsideRadius) / 2
	path := []r3.Vec{
		{X: -half, Y: half},
		{X: half, Y: half},
		{X: half, Y: -half},
		{X: -half, Y: -half},
	}
	walls, err := sweepPath(profile, path)
	if err != nil {
		return nil, err
	}

	parts := []csg.Solid{walls}
	fill := c.cornerTrim(lip.Height, false)
	arcCenter := c.GridUnit/2 - c.OutsideRadius
	for _, q := range [4][2]float64{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}} {
		sx, sy := q[0], q[1]
		t := csg.Translate(r3.Vec{X: sx * arcCenter, Y: sy * arcCenter}).
			Mul(csg.RotateZ(quadrantRotation(sx, sy)))
		parts = append(parts, csg.Transformed{Solid: fill, T: t})
	}
	return csg.Rendered{Solid: csg.Union{Solids: parts}}, nil
}
