package vostok

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Affine transform composition for placing generated meshes in world space.

// Affine is a 4x4 affine transformation matrix stored in row-major order.
// Use Identity or Compose to construct one; the zero value is the zero
// matrix, not the identity.
type Affine struct {
	x00, x01, x02, x03 float64
	x10, x11, x12, x13 float64
	x20, x21, x22, x23 float64
	x30, x31, x32, x33 float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul multiplies the matrices a and b and returns a·b.
// Combining transforms: a is applied after b.
func (a Affine) Mul(b Affine) Affine {
	return Affine{
		a.x00*b.x00 + a.x01*b.x10 + a.x02*b.x20 + a.x03*b.x30,
		a.x00*b.x01 + a.x01*b.x11 + a.x02*b.x21 + a.x03*b.x31,
		a.x00*b.x02 + a.x01*b.x12 + a.x02*b.x22 + a.x03*b.x32,
		a.x00*b.x03 + a.x01*b.x13 + a.x02*b.x23 + a.x03*b.x33,

		a.x10*b.x00 + a.x11*b.x10 + a.x12*b.x20 + a.x13*b.x30,
		a.x10*b.x01 + a.x11*b.x11 + a.x12*b.x21 + a.x13*b.x31,
		a.x10*b.x02 + a.x11*b.x12 + a.x12*b.x22 + a.x13*b.x32,
		a.x10*b.x03 + a.x11*b.x13 + a.x12*b.x23 + a.x13*b.x33,

		a.x20*b.x00 + a.x21*b.x10 + a.x22*b.x20 + a.x23*b.x30,
		a.x20*b.x01 + a.x21*b.x11 + a.x22*b.x21 + a.x23*b.x31,
		a.x20*b.x02 + a.x21*b.x12 + a.x22*b.x22 + a.x23*b.x32,
		a.x20*b.x03 + a.x21*b.x13 + a.x22*b.x23 + a.x23*b.x33,

		a.x30*b.x00 + a.x31*b.x10 + a.x32*b.x20 + a.x33*b.x30,
		a.x30*b.x01 + a.x31*b.x11 + a.x32*b.x21 + a.x33*b.x31,
		a.x30*b.x02 + a.x31*b.x12 + a.x32*b.x22 + a.x33*b.x32,
		a.x30*b.x03 + a.x31*b.x13 + a.x32*b.x23 + a.x33*b.x33,
	}
}

// MulPosition multiplies an r3.Vec position by the matrix and returns the result.
func (a Affine) MulPosition(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: a.x00*v.X + a.x01*v.Y + a.x02*v.Z + a.x03,
		Y: a.x10*v.X + a.x11*v.Y + a.x12*v.Z + a.x13,
		Z: a.x20*v.X + a.x21*v.Y + a.x22*v.Z + a.x23,
	}
}

// Apply multiplies a set of vertices by the matrix in place.
func (a Affine) Apply(v []r3.Vec) {
	for i := range v {
		v[i] = a.MulPosition(v[i])
	}
}

// SliceCopy returns a copy of the matrix elements in row-major order.
// It returns 16 elements.
func (a Affine) SliceCopy() []float64 {
	return []float64{
		a.x00, a.x01, a.x02, a.x03,
		a.x10, a.x11, a.x12, a.x13,
		a.x20, a.x21, a.x22, a.x23,
		a.x30, a.x31, a.x32, a.x33,
	}
}

type opKind uint8

const (
	opScale opKind = iota + 1
	opRotateX
	opRotateY
	opRotateZ
	opTranslate
)

// Op is a single tagged affine operation in a transform sequence.
// Sequences are applied in declaration order, first to last, so
//
//	[]Op{Translate(1, 0, 0), RotateZ(90)}
//
// first moves a point and then rotates the result about the Z axis.
// The zero Op is invalid.
type Op struct {
	kind    opKind
	x, y, z float64 // scale factors or translation offsets
	deg     float64 // rotation angle in degrees
}

// Scale returns an operation scaling by (sx, sy, sz) about the origin.
func Scale(sx, sy, sz float64) Op {
	return Op{kind: opScale, x: sx, y: sy, z: sz}
}

// ScaleUniform returns an operation scaling by k on all axes.
func ScaleUniform(k float64) Op {
	return Scale(k, k, k)
}

// RotateX returns an operation rotating about the X axis by deg degrees
// using the right-hand rule.
func RotateX(deg float64) Op {
	return Op{kind: opRotateX, deg: deg}
}

// RotateY returns an operation rotating about the Y axis by deg degrees
// using the right-hand rule.
func RotateY(deg float64) Op {
	return Op{kind: opRotateY, deg: deg}
}

// RotateZ returns an operation rotating about the Z axis by deg degrees
// using the right-hand rule.
func RotateZ(deg float64) Op {
	return Op{kind: opRotateZ, deg: deg}
}

// Translate returns an operation translating by (dx, dy, dz).
func Translate(dx, dy, dz float64) Op {
	return Op{kind: opTranslate, x: dx, y: dy, z: dz}
}

// Matrix returns the 4x4 affine matrix of the operation.
// The zero Op yields the identity.
func (o Op) Matrix() Affine {
	switch o.kind {
	case opScale:
		return Affine{
			o.x, 0, 0, 0,
			0, o.y, 0, 0,
			0, 0, o.z, 0,
			0, 0, 0, 1,
		}
	case opRotateX:
		s, c := math.Sincos(DtoR(o.deg))
		return Affine{
			1, 0, 0, 0,
			0, c, -s, 0,
			0, s, c, 0,
			0, 0, 0, 1,
		}
	case opRotateY:
		s, c := math.Sincos(DtoR(o.deg))
		return Affine{
			c, 0, s, 0,
			0, 1, 0, 0,
			-s, 0, c, 0,
			0, 0, 0, 1,
		}
	case opRotateZ:
		s, c := math.Sincos(DtoR(o.deg))
		return Affine{
			c, -s, 0, 0,
			s, c, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1,
		}
	case opTranslate:
		return Affine{
			1, 0, 0, o.x,
			0, 1, 0, o.y,
			0, 0, 1, o.z,
			0, 0, 0, 1,
		}
	}
	return Identity()
}

// String returns a short human readable description of the operation,
// with rotation angles reduced modulo 360 for display only.
func (o Op) String() string {
	switch o.kind {
	case opScale:
		return fmt.Sprintf("scale(%g, %g, %g)", o.x, o.y, o.z)
	case opRotateX:
		return fmt.Sprintf("rotate_x(%g°)", math.Mod(o.deg, 360))
	case opRotateY:
		return fmt.Sprintf("rotate_y(%g°)", math.Mod(o.deg, 360))
	case opRotateZ:
		return fmt.Sprintf("rotate_z(%g°)", math.Mod(o.deg, 360))
	case opTranslate:
		return fmt.Sprintf("translate(%g, %g, %g)", o.x, o.y, o.z)
	}
	return "identity"
}

// Compose reduces an ordered operation sequence to a single matrix.
// For ops = [T1, T2, ..., Tn] the result is M = Mn·…·M2·M1 so that
// M·p == Tn(...T2(T1(p))). An empty sequence yields the identity.
func Compose(ops []Op) Affine {
	m := Identity()
	for _, op := range ops {
		m = op.Matrix().Mul(m)
	}
	return m
}

// DtoR converts degrees to radians.
func DtoR(degrees float64) float64 {
	return (math.Pi / 180) * degrees
}

// RtoD converts radians to degrees.
func RtoD(radians float64) float64 {
	return (180 / math.Pi) * radians
}
