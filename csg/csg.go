// Package csg defines the constructive-solid-geometry operation tree
// emitted by the gridplate generator. Nodes are plain descriptions of
// boolean, extrusion and transform operations over 2D profiles; they
// hold no geometry themselves. A kernel backend (see kernel/sdfx)
// walks the tree and realizes it with a solid-modeling engine.
package csg

import "gonum.org/v1/gonum/spatial/r2"

// Profile is a node of the 2D operation tree: a closed planar region
// used as an extrusion or revolution cross-section. Implementations
// are restricted to this package; backends type-switch over the
// exported node types.
type Profile interface {
	profile()
}

// Solid is a node of the 3D operation tree. Like Profile, the set of
// implementations is closed.
type Solid interface {
	solid()
}

// Polygon is a closed polygonal Profile. The last vertex connects
// back to the first; vertices wind counter-clockwise for a positive
// region.
type Polygon struct {
	Vertices []r2.Vec
}

// Rect is an axis-aligned rectangle Profile with its minimum corner
// at the origin.
type Rect struct {
	Size r2.Vec
}

// Circle is a circular Profile centered at the origin.
type Circle struct {
	Radius float64
}

// Difference2 is the 2D boolean difference A minus B.
type Difference2 struct {
	A, B Profile
}

// Extrude is the linear extrusion of a Profile along +Z, spanning
// z in [0, Height].
type Extrude struct {
	Profile Profile
	Height  float64
}

// Revolve is the rotational extrusion of a Profile about the Z axis.
// The profile lies in the XZ half-plane x >= 0 (profile x is radius,
// profile y is height) and is swept counter-clockwise from the +X
// axis by Degrees.
type Revolve struct {
	Profile Profile
	Degrees float64
}

// Union is the n-ary boolean union of solids. Union is commutative
// and associative: member order carries no meaning.
type Union struct {
	Solids []Solid
}

// Difference is the boolean difference A minus B.
type Difference struct {
	A, B Solid
}

// Transformed applies a rotation/translation Transform to a solid.
type Transformed struct {
	Solid Solid
	T     Transform
}

// Rendered marks a composition boundary at which lazy kernels should
// force evaluation of the subtree before composing it further. It is
// semantically transparent: a performance hint, not an operation.
type Rendered struct {
	Solid Solid
}

func (Polygon) profile()     {}
func (Rect) profile()        {}
func (Circle) profile()      {}
func (Difference2) profile() {}

func (Extrude) solid()     {}
func (Revolve) solid()     {}
func (Union) solid()       {}
func (Difference) solid()  {}
func (Transformed) solid() {}
func (Rendered) solid()    {}
