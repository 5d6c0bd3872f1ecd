// Package render holds the triangle mesh type produced by kernel
// backends and readers/writers for the STL interchange format.
package render

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gridfab/gridplate/internal/d3"
)

// Triangle is a 3D triangle with vertices in counter-clockwise order
// when seen from outside the solid.
type Triangle struct {
	V [3]r3.Vec
}

// Normal returns the unit normal vector of the triangle.
func (t Triangle) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Bounds returns the axis-aligned bounding box of a mesh.
func Bounds(model []Triangle) (min, max r3.Vec) {
	if len(model) == 0 {
		return min, max
	}
	min = model[0].V[0]
	max = model[0].V[0]
	for _, t := range model {
		for _, v := range t.V {
			min = d3.MinElem(min, v)
			max = d3.MaxElem(max, v)
		}
	}
	return min, max
}
