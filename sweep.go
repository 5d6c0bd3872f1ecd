package gridplate

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gridfab/gridplate/csg"
	"github.com/gridfab/gridplate/internal/d2"
)

// sweepPath sweeps a 2D cross-section around a closed clockwise path
// in the XY plane, producing a closed ring solid. Straight segments
// become linear extrusions of the profile; each path vertex becomes a
// 90 degree rotational extrusion joining one edge to the next, so the
// corner radius follows from the profile's x offset rather than from
// an independent parameter.
//
// The profile is oriented with its local x axis along the outward
// path normal and its local y axis along world +Z. Edge frames are
// accumulated left to right: every frame is derived from its
// predecessor by advancing the cumulative arc length and turning into
// the next edge direction, so each origin depends on all previous
// edge lengths.
func sweepPath(profile []r2.Vec, path []r3.Vec) (csg.Solid, error) {
	if len(profile) < 3 {
		return nil, errGeomf("sweep", "cross-section needs at least 3 vertices, got %d", len(profile))
	}
	if len(path) < 3 {
		return nil, errGeomf("sweep", "path needs at least 3 vertices, got %d", len(path))
	}

	section := csg.Polygon{Vertices: profile}
	parts := make([]csg.Solid, 0, 2*len(path))

	var frame csg.Transform
	var prevAngle, prevLength float64
	for i := range path {
		a := path[i]
		b := path[(i+1)%len(path)]
		dir := r2.Vec{X: b.X - a.X, Y: b.Y - a.Y}
		length := r2.Norm(dir)
		if length <= 0 {
			return nil, errGeomf("sweep", "edge %d has non-positive length %g", i, length)
		}
		angle := d2.Angle(dir)

		if i == 0 {
			// Stand the profile plane up: local x to the outward
			// normal (angle+90 for a clockwise path), local y to
			// world +Z, extrusion axis along the edge.
			frame = csg.Translate(a).
				Mul(csg.RotateZ(angle + 90)).
				Mul(csg.RotateX(90))
		} else {
			// Advance the previous frame by its edge length and
			// turn about the local vertical into this edge.
			frame = frame.
				Mul(csg.Translate(r3.Vec{Z: prevLength})).
				Mul(csg.RotateY(wrapDegrees(angle - prevAngle)))
		}

		parts = append(parts, csg.Transformed{
			Solid: csg.Extrude{Profile: section, Height: length},
			T:     frame,
		})

		// Quarter-toroidal corner at the edge end, centered on the
		// path vertex. The reorientation maps the revolution's start
		// plane onto the next edge's start section and its end plane
		// onto this edge's end section.
		corner := frame.
			Mul(csg.Translate(r3.Vec{Z: length})).
			Mul(csg.Rotate(r3.Vec{X: -90, Y: -90}))
		parts = append(parts, csg.Transformed{
			Solid: csg.Revolve{Profile: section, Degrees: 90},
			T:     corner,
		})

		prevAngle, prevLength = angle, length
	}
	return csg.Union{Solids: parts}, nil
}

// wrapDegrees normalizes an angle difference into (-180, 180].
func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}
