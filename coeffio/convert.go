// SPDX-License-Identifier: MIT

package coeffio

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/neuroloop/nlmath"
)

// SampleToInt64 reads a sample under its signed interpretation: unsigned
// values above half scale come back negative. 64-bit sample types lose
// the upper half of their range.
func SampleToInt64[T nlmath.Unsigned](v T) int64 {
	maxval := nlmath.MaxOf[T]()
	if v > maxval>>1 {
		// Operating modulo maxval+1.
		return int64(v) - int64(maxval) - 1
	}

	return int64(v)
}

// Int64ToSample maps a signed value onto the unsigned wraparound
// encoding: negatives wrap to the upper half of the range.
func Int64ToSample[T nlmath.Unsigned](v int64) T {
	if v < 0 {
		maxval := nlmath.MaxOf[T]()
		v += int64(maxval)
		v++
	}

	return T(v)
}

// parseCellInt parses a decimal cell. Empty or malformed cells read as
// zero; the sheet formats treat absent data as all-zero.
func parseCellInt(cell string) int64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0
	}

	v, err := strconv.ParseInt(cell, 10, 64)
	if err != nil {
		return 0
	}

	return v
}

func formatInt(v int64) string { return strconv.FormatInt(v, 10) }
