// SPDX-License-Identifier: MIT

package lutmap

import (
	"errors"

	"github.com/katalvlaran/neuroloop/nlmath"
)

// ErrBadRows indicates a constructor was given a non-positive row
// capacity.
var ErrBadRows = errors.New("lutmap: row capacity must be positive")

// Table is one stepwise monotonic lookup table with fixed row capacity
// and a runtime-adjustable active row count. The zero-row table is valid
// and maps everything to zero.
type Table[I, O nlmath.Integer] struct {
	in  []I
	out []O

	rowsActive int
}

// NewTable constructs a blanked table with capacity for rowCount rows
// and zero rows active.
func NewTable[I, O nlmath.Integer](rowCount int) (*Table[I, O], error) {
	if rowCount < 1 {
		return nil, ErrBadRows
	}

	return &Table[I, O]{
		in:  make([]I, rowCount),
		out: make([]O, rowCount),
	}, nil
}

// RowCount returns the row capacity.
func (tb *Table[I, O]) RowCount() int { return len(tb.in) }

// ActiveRows returns the number of rows consulted by lookups.
func (tb *Table[I, O]) ActiveRows() int { return tb.rowsActive }

// SetActiveRows clamps n to [0, RowCount] and stores it.
func (tb *Table[I, O]) SetActiveRows(n int) {
	if n < 0 {
		n = 0
	} else if n > len(tb.in) {
		n = len(tb.in)
	}

	tb.rowsActive = n
}

// Blank zeroes every row. The active row count is left alone.
func (tb *Table[I, O]) Blank() {
	for ridx := range tb.in {
		tb.in[ridx] = 0
		tb.out[ridx] = 0
	}
}

// SetEntry stores one row. Out-of-range rows are ignored.
func (tb *Table[I, O]) SetEntry(ridx int, inVal I, outVal O) {
	if ridx < 0 || ridx >= len(tb.in) {
		return
	}

	tb.in[ridx] = inVal
	tb.out[ridx] = outVal
}

// Entry returns one row, zeros when out of range.
func (tb *Table[I, O]) Entry(ridx int) (I, O) {
	if ridx < 0 || ridx >= len(tb.in) {
		return 0, 0
	}

	return tb.in[ridx], tb.out[ridx]
}

// LookupLE searches a monotonic descending table for the first row whose
// input is <= inVal and returns its output, zero when no row matches.
// Every active row is visited regardless of the data.
func (tb *Table[I, O]) LookupLE(inVal I) O {
	var outVal O

	for ridx := tb.rowsActive - 1; ridx >= 0; ridx-- {
		if tb.in[ridx] <= inVal {
			outVal = tb.out[ridx]
		}
	}

	return outVal
}

// LookupGE searches a monotonic ascending table for the first row whose
// input is >= inVal and returns its output, zero when no row matches.
// Every active row is visited regardless of the data.
func (tb *Table[I, O]) LookupGE(inVal I) O {
	var outVal O

	for ridx := tb.rowsActive - 1; ridx >= 0; ridx-- {
		if tb.in[ridx] >= inVal {
			outVal = tb.out[ridx]
		}
	}

	return outVal
}
