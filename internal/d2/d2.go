// Package d2 holds 2D vector helpers shared by the plate generator.
package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Angle returns the direction angle of v in degrees, in (-180, 180].
func Angle(v r2.Vec) float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// Offset returns a copy of vs with delta added to every vertex.
func Offset(vs []r2.Vec, delta r2.Vec) []r2.Vec {
	out := make([]r2.Vec, len(vs))
	for i, v := range vs {
		out[i] = r2.Add(v, delta)
	}
	return out
}
