package csg

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is a 4x4 homogeneous rotation/translation matrix.
// The zero value of Transform is the identity transform.
type Transform struct {
	// The matrix is stored with the identity subtracted so the zero
	// value represents the identity transform. Diagonal elements are
	//  d00 = x00-1, d11 = x11-1, d22 = x22-1, d33 = x33-1
	// which permits identity checks of the form
	//  if t.mat == (matrix{})
	mat matrix
	// ops retains the primitive factors the transform was composed
	// from, in left-to-right product order. Kernel backends replay
	// this chain with their own translate/rotate primitives instead
	// of decomposing the matrix.
	ops []Factor
}

type matrix struct {
	d00, x01, x02, x03 float64
	x10, d11, x12, x13 float64
	x20, x21, d22, x23 float64
	x30, x31, x32, d33 float64
}

// FactorKind discriminates the primitive factors of a Transform.
type FactorKind uint8

const (
	FactorTranslate FactorKind = iota
	FactorRotateX
	FactorRotateY
	FactorRotateZ
)

// Factor is one primitive factor of a composed Transform: a pure
// translation or a single-axis rotation in degrees.
type Factor struct {
	Kind    FactorKind
	Offset  r3.Vec  // translation offset, FactorTranslate only
	Degrees float64 // rotation angle, FactorRotate* only
}

// newMatrix populates a matrix from 16 row-major values.
func newMatrix(a [16]float64) matrix {
	return matrix{
		d00: a[0] - 1, x01: a[1], x02: a[2], x03: a[3],
		x10: a[4], d11: a[5] - 1, x12: a[6], x13: a[7],
		x20: a[8], x21: a[9], d22: a[10] - 1, x23: a[11],
		x30: a[12], x31: a[13], x32: a[14], d33: a[15] - 1,
	}
}

// Identity returns the identity Transform. It is equivalent to the
// zero value of Transform.
func Identity() Transform { return Transform{} }

// Translate returns a pure-translation Transform.
func Translate(v r3.Vec) Transform {
	var m matrix
	m.x03 = v.X
	m.x13 = v.Y
	m.x23 = v.Z
	return Transform{mat: m, ops: []Factor{{Kind: FactorTranslate, Offset: v}}}
}

// RotateX returns a right-handed rotation of angle degrees about the x axis.
func RotateX(degrees float64) Transform {
	s, c := sincosd(degrees)
	return Transform{
		mat: newMatrix([16]float64{
			1, 0, 0, 0,
			0, c, -s, 0,
			0, s, c, 0,
			0, 0, 0, 1,
		}),
		ops: []Factor{{Kind: FactorRotateX, Degrees: degrees}},
	}
}

// RotateY returns a right-handed rotation of angle degrees about the y axis.
func RotateY(degrees float64) Transform {
	s, c := sincosd(degrees)
	return Transform{
		mat: newMatrix([16]float64{
			c, 0, s, 0,
			0, 1, 0, 0,
			-s, 0, c, 0,
			0, 0, 0, 1,
		}),
		ops: []Factor{{Kind: FactorRotateY, Degrees: degrees}},
	}
}

// RotateZ returns a right-handed rotation of angle degrees about the z axis.
func RotateZ(degrees float64) Transform {
	s, c := sincosd(degrees)
	return Transform{
		mat: newMatrix([16]float64{
			c, -s, 0, 0,
			s, c, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1,
		}),
		ops: []Factor{{Kind: FactorRotateZ, Degrees: degrees}},
	}
}

// Rotate returns the composed rotation
//
//	RotateZ(v.Z) * RotateY(v.Y) * RotateX(v.X)
//
// which applies the x axis rotation first, then y, then z. Angles are
// in degrees.
func Rotate(v r3.Vec) Transform {
	return RotateZ(v.Z).Mul(RotateY(v.Y)).Mul(RotateX(v.X))
}

// Mul multiplies the Transforms t and b and returns the result.
// t.Mul(b) applies b's transform first, then t's.
func (t Transform) Mul(b Transform) Transform {
	if t.mat == (matrix{}) {
		return b
	}
	if b.mat == (matrix{}) {
		return t
	}
	ops := make([]Factor, 0, len(t.ops)+len(b.ops))
	ops = append(ops, t.ops...)
	ops = append(ops, b.ops...)
	return Transform{mat: t.mat.mul(b.mat), ops: ops}
}

func (t matrix) mul(b matrix) matrix {
	x00 := t.d00 + 1
	x11 := t.d11 + 1
	x22 := t.d22 + 1
	x33 := t.d33 + 1
	y00 := b.d00 + 1
	y11 := b.d11 + 1
	y22 := b.d22 + 1
	y33 := b.d33 + 1
	var m matrix
	m.d00 = x00*y00 + t.x01*b.x10 + t.x02*b.x20 + t.x03*b.x30 - 1
	m.x10 = t.x10*y00 + x11*b.x10 + t.x12*b.x20 + t.x13*b.x30
	m.x20 = t.x20*y00 + t.x21*b.x10 + x22*b.x20 + t.x23*b.x30
	m.x30 = t.x30*y00 + t.x31*b.x10 + t.x32*b.x20 + x33*b.x30
	m.x01 = x00*b.x01 + t.x01*y11 + t.x02*b.x21 + t.x03*b.x31
	m.d11 = t.x10*b.x01 + x11*y11 + t.x12*b.x21 + t.x13*b.x31 - 1
	m.x21 = t.x20*b.x01 + t.x21*y11 + x22*b.x21 + t.x23*b.x31
	m.x31 = t.x30*b.x01 + t.x31*y11 + t.x32*b.x21 + x33*b.x31
	m.x02 = x00*b.x02 + t.x01*b.x12 + t.x02*y22 + t.x03*b.x32
	m.x12 = t.x10*b.x02 + x11*b.x12 + t.x12*y22 + t.x13*b.x32
	m.d22 = t.x20*b.x02 + t.x21*b.x12 + x22*y22 + t.x23*b.x32 - 1
	m.x32 = t.x30*b.x02 + t.x31*b.x12 + t.x32*y22 + x33*b.x32
	m.x03 = x00*b.x03 + t.x01*b.x13 + t.x02*b.x23 + t.x03*y33
	m.x13 = t.x10*b.x03 + x11*b.x13 + t.x12*b.x23 + t.x13*y33
	m.x23 = t.x20*b.x03 + t.x21*b.x13 + x22*b.x23 + t.x23*y33
	m.d33 = t.x30*b.x03 + t.x31*b.x13 + t.x32*b.x23 + x33*y33 - 1
	return m
}

// MulPosition applies the Transform to the argument point and returns
// the result.
func (t Transform) MulPosition(v r3.Vec) r3.Vec {
	m := t.mat
	w := 1 / (m.x30*v.X + m.x31*v.Y + m.x32*v.Z + m.d33 + 1)
	return r3.Vec{
		X: ((m.d00+1)*v.X + m.x01*v.Y + m.x02*v.Z + m.x03) * w,
		Y: (m.x10*v.X + (m.d11+1)*v.Y + m.x12*v.Z + m.x13) * w,
		Z: (m.x20*v.X + m.x21*v.Y + (m.d22+1)*v.Z + m.x23) * w,
	}
}

// Factors returns the primitive factor chain of the Transform in
// left-to-right product order: replaying the factors with any 4x4
// matrix implementation reproduces the Transform. The identity
// Transform has no factors.
func (t Transform) Factors() []Factor {
	ops := make([]Factor, len(t.ops))
	copy(ops, t.ops)
	return ops
}

// SliceCopy returns a copy of the Transform's matrix in row-major
// storage format. It returns 16 elements.
func (t Transform) SliceCopy() []float64 {
	m := t.mat
	return []float64{
		m.d00 + 1, m.x01, m.x02, m.x03,
		m.x10, m.d11 + 1, m.x12, m.x13,
		m.x20, m.x21, m.d22 + 1, m.x23,
		m.x30, m.x31, m.x32, m.d33 + 1,
	}
}

// equals tests the equality of two Transforms to within a tolerance.
func (t Transform) equals(b Transform, tolerance float64) bool {
	ta, tb := t.SliceCopy(), b.SliceCopy()
	for i := range ta {
		if math.Abs(ta[i]-tb[i]) > tolerance {
			return false
		}
	}
	return true
}

// sincosd is sin/cos for angles in degrees, with exact values at
// quadrant angles so repeated 90 degree compositions stay artifact free.
func sincosd(degrees float64) (sin, cos float64) {
	switch math.Mod(degrees, 360) {
	case 0:
		return 0, 1
	case 90, -270:
		return 1, 0
	case 180, -180:
		return 0, -1
	case 270, -90:
		return -1, 0
	}
	return math.Sincos(degrees * math.Pi / 180)
}
