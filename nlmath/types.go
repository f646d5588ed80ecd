// SPDX-License-Identifier: MIT

// Package nlmath: integer type sets used across neuroloop.
// Declared locally so the arithmetic substrate stays dependency-free.
package nlmath

// Unsigned is the type set of unsigned integers. Sample streams use these;
// negative excursions are represented by wraparound (see IsNeg / Negate).
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Signed is the type set of signed integers.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Integer is the union of Signed and Unsigned.
type Integer interface {
	Signed | Unsigned
}
