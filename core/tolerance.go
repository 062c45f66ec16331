// SPDX-License-Identifier: MIT

package core

import "math"

// Tolerance is the non-negative threshold under which a floating-point
// coefficient is treated as exactly zero. Containers drop entries whose
// coefficient falls below it, and Hermiticity checks use it to decide
// whether an imaginary part is physical or rounding noise.
const Tolerance = 1e-12

// IsZero reports whether c is zero within Tolerance in both components.
func IsZero(c complex128) bool {
	return math.Abs(real(c)) < Tolerance && math.Abs(imag(c)) < Tolerance
}

// IsReal reports whether the imaginary part of c is zero within Tolerance.
func IsReal(c complex128) bool {
	return math.Abs(imag(c)) < Tolerance
}

// CloseTo reports whether a and b agree within Tolerance componentwise.
func CloseTo(a, b complex128) bool {
	return IsZero(a - b)
}
