// SPDX-License-Identifier: MIT

package nlmath

// IsNeg reports whether x, read as a two's-complement signed value, is
// negative. The comparison (^x) < x is true exactly when the high bit is set.
// Complexity: O(1).
func IsNeg[T Unsigned](x T) bool {
	return (^x) < x
}

// Negate returns the two's-complement negation of x (^x + 1), so a value
// encoding -v becomes one encoding v and vice versa. Negating the minimum
// representable value yields itself, as in hardware.
// Complexity: O(1).
func Negate[T Unsigned](x T) T {
	return ^x + 1
}

// Magnitude returns the absolute value of x under the wraparound reading.
// Complexity: O(1).
func Magnitude[T Unsigned](x T) T {
	if IsNeg(x) {
		return Negate(x)
	}

	return x
}

// Shr shifts x right by n bits. For signed instantiations this is an
// arithmetic shift (sign-extending, rounding toward negative infinity);
// for unsigned instantiations it is a logical shift. The helper exists to
// make the signedness intent visible at call sites that scale fixed-point
// accumulators.
// Complexity: O(1).
func Shr[T Integer](x T, n uint) T {
	return x >> n
}

// ShrWrapped shifts an unsigned value right by n bits while preserving the
// wraparound sign: a value encoding a negative sample is negated, shifted
// logically, and negated back. Note this rounds toward zero for negative
// encodings, not toward negative infinity, so it can differ from a true
// arithmetic shift by one.
// Complexity: O(1).
func ShrWrapped[T Unsigned](x T, n uint) T {
	if IsNeg(x) {
		return Negate(Negate(x) >> n)
	}

	return x >> n
}

// IsSigned reports whether the instantiating type is signed. Zero compares
// greater than the all-ones pattern only when that pattern reads as -1.
// Complexity: O(1).
func IsSigned[T Integer]() bool {
	var zero T

	return zero > ^zero
}

// signedMin returns the minimum value of a signed instantiating type by
// shifting a single bit into the sign position. Shift counts at or beyond
// the type width yield zero, so the probes fall through from wide to narrow.
func signedMin[T Integer]() T {
	var result T = 1
	result <<= 63

	if result == 0 {
		result = 1
		result <<= 31
	}
	if result == 0 {
		result = 1
		result <<= 15
	}
	if result == 0 {
		result = 1
		result <<= 7
	}

	return result
}

// MaxOf returns the largest value representable by T.
// Complexity: O(1).
func MaxOf[T Integer]() T {
	if IsSigned[T]() {
		return ^signedMin[T]()
	}

	var zero T

	return ^zero
}

// MinOf returns the smallest value representable by T: the sign-bit pattern
// for signed types, zero for unsigned types.
// Complexity: O(1).
func MinOf[T Integer]() T {
	if IsSigned[T]() {
		return signedMin[T]()
	}

	var zero T

	return zero
}
