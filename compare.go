package vostok

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Floating Point Comparisons
// See: http://floating-point-gui.de/errors/NearlyEqualsTest.java

const minNormal = 2.2250738585072014e-308 // 2**-1022

// EqualFloat64 compares two float64 values for equality.
func EqualFloat64(a, b, epsilon float64) bool {
	if a == b {
		return true
	}
	absA := math.Abs(a)
	absB := math.Abs(b)
	diff := math.Abs(a - b)
	if a == 0 || b == 0 || diff < minNormal {
		// a or b is zero or both are extremely close to it
		// relative error is less meaningful here
		return diff < (epsilon * minNormal)
	}
	// use relative error
	return diff/math.Min((absA+absB), math.MaxFloat64) < epsilon
}

// EqualWithin compares two vectors for component-wise equality within tol.
func EqualWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// equals tests the equality of two matrices to within a tolerance.
func (a Affine) equals(b Affine, tol float64) bool {
	as := a.SliceCopy()
	bs := b.SliceCopy()
	for i := range as {
		if math.Abs(as[i]-bs[i]) > tol {
			return false
		}
	}
	return true
}
