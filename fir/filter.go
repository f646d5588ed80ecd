// SPDX-License-Identifier: MIT

package fir

import (
	"errors"

	"github.com/katalvlaran/neuroloop/nlmath"
)

var (
	// ErrBadCoeffs indicates a constructor was given a non-positive
	// coefficient capacity.
	ErrBadCoeffs = errors.New("fir: coefficient capacity must be positive")

	// ErrBadBufLen indicates a history buffer length that is not a
	// positive power of two, or is shorter than the coefficient capacity.
	ErrBadBufLen = errors.New("fir: buffer length must be a power of two covering the window")
)

// Filter is one FIR filter: a coefficient vector with fixed capacity, a
// runtime-adjustable window length, and a fractional bit depth applied
// as a final sign-safe shift. The zero-length window is valid and yields
// zero output.
type Filter[T nlmath.Unsigned] struct {
	coeffs     []T
	coeffCount int
	fracBits   uint
}

// NewFilter constructs a blank filter with capacity for maxCoeffs taps.
func NewFilter[T nlmath.Unsigned](maxCoeffs int) (*Filter[T], error) {
	if maxCoeffs < 1 {
		return nil, ErrBadCoeffs
	}

	return &Filter[T]{coeffs: make([]T, maxCoeffs)}, nil
}

// MaxCoeffs returns the coefficient capacity.
func (f *Filter[T]) MaxCoeffs() int { return len(f.coeffs) }

// Blank zeroes every coefficient, the window length, and the bit depth.
func (f *Filter[T]) Blank() {
	f.fracBits = 0
	f.coeffCount = 0

	for i := range f.coeffs {
		f.coeffs[i] = 0
	}
}

// SetFracBits stores the fractional bit depth.
func (f *Filter[T]) SetFracBits(bits uint) { f.fracBits = bits }

// FracBits returns the fractional bit depth.
func (f *Filter[T]) FracBits() uint { return f.fracBits }

// SetCoeffCount stores the window length, clamped to [0, MaxCoeffs].
func (f *Filter[T]) SetCoeffCount(n int) {
	if n < 0 {
		n = 0
	} else if n > len(f.coeffs) {
		n = len(f.coeffs)
	}

	f.coeffCount = n
}

// CoeffCount returns the window length.
func (f *Filter[T]) CoeffCount() int { return f.coeffCount }

// SetOneCoeff stores one tap. Out-of-range indices are ignored.
func (f *Filter[T]) SetOneCoeff(idx int, val T) {
	if idx < 0 || idx >= len(f.coeffs) {
		return
	}

	f.coeffs[idx] = val
}

// OneCoeff returns one tap, zero when out of range.
func (f *Filter[T]) OneCoeff(idx int) T {
	if idx < 0 || idx >= len(f.coeffs) {
		return 0
	}

	return f.coeffs[idx]
}

// SetAllCoeffs copies taps (up to capacity, missing entries zeroed) and
// stores the bit depth and window length in one call.
func (f *Filter[T]) SetAllCoeffs(fracBits uint, coeffCount int, taps []T) {
	for i := range f.coeffs {
		if i < len(taps) {
			f.coeffs[i] = taps[i]
		} else {
			f.coeffs[i] = 0
		}
	}

	f.SetFracBits(fracBits)
	f.SetCoeffCount(coeffCount)
}

// ApplyOnce convolves the window against a linear buffer. Elements
// [0]..[CoeffCount-1] are read, oldest-first.
func (f *Filter[T]) ApplyOnce(window []T) T {
	var total T
	for cidx := 0; cidx < f.coeffCount; cidx++ {
		total += window[cidx] * f.coeffs[cidx]
	}

	return nlmath.ShrWrapped(total, f.fracBits)
}

// applyCircular convolves the window against a power-of-two circular
// buffer, reading CoeffCount samples starting at readIdx modulo the
// mask.
func (f *Filter[T]) applyCircular(buf []T, readIdx, bufMask int) T {
	var total T
	for cidx := 0; cidx < f.coeffCount; cidx++ {
		readIdx &= bufMask
		total += buf[readIdx] * f.coeffs[cidx]
		readIdx++
	}

	return nlmath.ShrWrapped(total, f.fracBits)
}
