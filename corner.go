package gridplate

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gridfab/gridplate/csg"
)

// cornerTrim builds the square-minus-quarter-circle prism used at
// unit and plate corners. The square has side OutsideRadius with its
// minimum corner at the origin; the quarter circle of the same radius
// is removed around the origin, leaving the material that lies beyond
// the corner arc.
//
// With subtract=false the piece is added to square off a swept lip
// corner against its neighbors. With subtract=true the same shape is
// used as a cutting tool to round the plate silhouette: the square
// grows by Tolerance and the circle shrinks by it so the boolean
// removal leaves neither slivers nor gaps, and the extrusion extends
// past both faces in Z so the cut fully penetrates the target.
func (c Constants) cornerTrim(height float64, subtract bool) csg.Solid {
	side := c.OutsideRadius
	arc := c.OutsideRadius
	h := height
	if subtract {
		side += c.Tolerance
		arc -= c.Tolerance
		h += 2 * c.Tolerance
	}
	outline := csg.Difference2{
		A: csg.Rect{Size: r2.Vec{X: side, Y: side}},
		B: csg.Circle{Radius: arc},
	}
	var piece csg.Solid = csg.Extrude{Profile: outline, Height: h}
	if subtract {
		piece = csg.Transformed{Solid: piece, T: csg.Translate(r3.Vec{Z: -c.Tolerance})}
	}
	return piece
}

// quadrantRotation returns the Z rotation in degrees that maps a
// corner piece built in the (+,+) quadrant into the quadrant given by
// the axis signs sx, sy (each +1 or -1).
func quadrantRotation(sx, sy float64) float64 {
	switch {
	case sx > 0 && sy > 0:
		return 0
	case sx < 0 && sy > 0:
		return 90
	case sx < 0 && sy < 0:
		return 180
	}
	return 270
}

// sign01 is like math.Signbit flipped into +-1, counting zero as
// positive so corner placement stays deterministic for (unreachable
// in practice) on-axis corner points.
func sign01(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
