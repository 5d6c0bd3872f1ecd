// Package sdfx lowers csg operation trees onto the
// github.com/deadsy/sdfx signed-distance-field CAD engine. The engine
// composes SDFs lazily, so lowering is a plain recursive walk; meshing
// happens only when Triangles or WriteSTL is called.
package sdfx

import (
	"fmt"
	"math"

	sdfrender "github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gridfab/gridplate/csg"
	"github.com/gridfab/gridplate/render"
)

// DefaultCells is the default marching cubes resolution along the
// longest bounding box axis.
const DefaultCells = 300

// Compile lowers a csg solid tree to an sdf.SDF3.
func Compile(s csg.Solid) (sdf.SDF3, error) {
	switch n := s.(type) {
	case csg.Union:
		if len(n.Solids) == 0 {
			return nil, fmt.Errorf("union of zero solids")
		}
		members := make([]sdf.SDF3, len(n.Solids))
		for i, m := range n.Solids {
			s3, err := Compile(m)
			if err != nil {
				return nil, err
			}
			members[i] = s3
		}
		if len(members) == 1 {
			return members[0], nil
		}
		return sdf.Union3D(members...), nil

	case csg.Difference:
		a, err := Compile(n.A)
		if err != nil {
			return nil, err
		}
		b, err := Compile(n.B)
		if err != nil {
			return nil, err
		}
		return sdf.Difference3D(a, b), nil

	case csg.Transformed:
		inner, err := Compile(n.Solid)
		if err != nil {
			return nil, err
		}
		return sdf.Transform3D(inner, m44(n.T)), nil

	case csg.Rendered:
		// SDF composition is lazy and cheap; the materialization hint
		// only matters for mesh-based kernels.
		return Compile(n.Solid)

	case csg.Extrude:
		s2, err := compileProfile(n.Profile)
		if err != nil {
			return nil, err
		}
		// Extrude3D spans z in [-h/2, h/2]; shift to [0, h].
		s3 := sdf.Extrude3D(s2, n.Height)
		return sdf.Transform3D(s3, sdf.Translate3d(v3.Vec{Z: n.Height / 2})), nil

	case csg.Revolve:
		s2, err := compileProfile(n.Profile)
		if err != nil {
			return nil, err
		}
		return sdf.RevolveTheta3D(s2, n.Degrees*math.Pi/180)

	default:
		return nil, fmt.Errorf("unhandled solid node %T", s)
	}
}

func compileProfile(p csg.Profile) (sdf.SDF2, error) {
	switch n := p.(type) {
	case csg.Polygon:
		vs := make([]v2.Vec, len(n.Vertices))
		for i, v := range n.Vertices {
			vs[i] = v2.Vec{X: v.X, Y: v.Y}
		}
		return sdf.Polygon2D(vs)

	case csg.Rect:
		// Box2D is centered; shift to min-corner-origin.
		s2 := sdf.Box2D(v2.Vec{X: n.Size.X, Y: n.Size.Y}, 0)
		m := sdf.Translate2d(v2.Vec{X: n.Size.X / 2, Y: n.Size.Y / 2})
		return sdf.Transform2D(s2, m), nil

	case csg.Circle:
		return sdf.Circle2D(n.Radius)

	case csg.Difference2:
		a, err := compileProfile(n.A)
		if err != nil {
			return nil, err
		}
		b, err := compileProfile(n.B)
		if err != nil {
			return nil, err
		}
		return sdf.Difference2D(a, b), nil

	default:
		return nil, fmt.Errorf("unhandled profile node %T", p)
	}
}

// m44 rebuilds a csg.Transform as an sdf.M44 by replaying its factor
// chain through the engine's own matrix constructors.
func m44(t csg.Transform) sdf.M44 {
	m := sdf.Identity3d()
	for _, f := range t.Factors() {
		switch f.Kind {
		case csg.FactorTranslate:
			m = m.Mul(sdf.Translate3d(v3.Vec{X: f.Offset.X, Y: f.Offset.Y, Z: f.Offset.Z}))
		case csg.FactorRotateX:
			m = m.Mul(sdf.RotateX(f.Degrees * math.Pi / 180))
		case csg.FactorRotateY:
			m = m.Mul(sdf.RotateY(f.Degrees * math.Pi / 180))
		case csg.FactorRotateZ:
			m = m.Mul(sdf.RotateZ(f.Degrees * math.Pi / 180))
		}
	}
	return m
}

// Triangles meshes a compiled solid with uniform marching cubes at the
// given resolution and returns the triangles in world coordinates.
func Triangles(s sdf.SDF3, cells int) []render.Triangle {
	if cells <= 0 {
		cells = DefaultCells
	}
	src := sdfrender.ToTriangles(s, sdfrender.NewMarchingCubesUniform(cells))
	out := make([]render.Triangle, len(src))
	for i, t := range src {
		for j := 0; j < 3; j++ {
			out[i].V[j] = r3.Vec{X: t[j].X, Y: t[j].Y, Z: t[j].Z}
		}
	}
	return out
}

// WriteSTL compiles, meshes and writes a csg solid to a binary STL
// file in one step.
func WriteSTL(path string, s csg.Solid, cells int) error {
	s3, err := Compile(s)
	if err != nil {
		return err
	}
	return render.CreateSTL(path, Triangles(s3, cells))
}
