// SPDX-License-Identifier: MIT

package biquad

import (
	"errors"

	"github.com/katalvlaran/neuroloop/nlmath"
)

// ErrBadStages indicates a constructor was given a non-positive stage
// count.
var ErrBadStages = errors.New("biquad: stage count must be positive")

// Coeffs holds one second-order section's coefficients. Den0Bits is the
// log2 of the leading denominator coefficient; the zero value is a valid
// configuration whose output is constantly zero.
type Coeffs[T nlmath.Unsigned] struct {
	Den0Bits uint
	Den1     T
	Den2     T
	Num0     T
	Num1     T
	Num2     T
}

// apply evaluates one Direct Form 1 step. Products and sums wrap modulo
// the type width, which matches two's-complement arithmetic; only the
// normalizing shift needs the sign carried explicitly.
func (co Coeffs[T]) apply(in0, in1, in2, out1, out2 T) T {
	acc := co.Num0 * in0
	acc += co.Num1 * in1
	acc += co.Num2 * in2
	acc -= co.Den1 * out1
	acc -= co.Den2 * out2

	return nlmath.ShrWrapped(acc, co.Den0Bits)
}
