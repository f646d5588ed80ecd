// SPDX-License-Identifier: MIT

package lutmap

import (
	"github.com/katalvlaran/neuroloop/cellgrid"
	"github.com/katalvlaran/neuroloop/nlmath"
)

// Bank holds one lookup table per bank and maps bank×channel grids
// through them: every channel of a bank uses that bank's table.
type Bank[I, O nlmath.Integer] struct {
	cellgrid.Geometry

	tables     []*Table[I, O]
	rowsActive int
}

// NewBank constructs a banks×chans lookup bank whose tables have
// capacity for rowCount rows, all blanked, zero rows active, empty
// active rectangle.
func NewBank[I, O nlmath.Integer](banks, chans, rowCount int) (*Bank[I, O], error) {
	geo, err := cellgrid.NewGeometry(banks, chans)
	if err != nil {
		return nil, err
	}
	if rowCount < 1 {
		return nil, ErrBadRows
	}

	bank := &Bank[I, O]{
		Geometry: geo,
		tables:   make([]*Table[I, O], banks),
	}
	for bidx := range bank.tables {
		bank.tables[bidx], _ = NewTable[I, O](rowCount)
	}

	return bank, nil
}

// RowCount returns the per-table row capacity.
func (bank *Bank[I, O]) RowCount() int { return bank.tables[0].RowCount() }

// ActiveRows returns the row count consulted by lookups.
func (bank *Bank[I, O]) ActiveRows() int { return bank.rowsActive }

// SetActiveRows clamps and stores the active row count, propagating it
// to every table.
func (bank *Bank[I, O]) SetActiveRows(n int) {
	if n < 0 {
		n = 0
	} else if n > bank.RowCount() {
		n = bank.RowCount()
	}

	bank.rowsActive = n

	for _, tb := range bank.tables {
		tb.SetActiveRows(n)
	}
}

// BlankTables zeroes every table's rows.
func (bank *Bank[I, O]) BlankTables() {
	for _, tb := range bank.tables {
		tb.Blank()
	}
}

// SetOneEntry stores one row of one bank's table. Out-of-range indices
// are ignored.
func (bank *Bank[I, O]) SetOneEntry(bidx, ridx int, inVal I, outVal O) {
	if bidx < 0 || bidx >= bank.Banks() {
		return
	}

	bank.tables[bidx].SetEntry(ridx, inVal, outVal)
}

// OneEntry returns one row of one bank's table, zeros when out of range.
func (bank *Bank[I, O]) OneEntry(bidx, ridx int) (I, O) {
	if bidx < 0 || bidx >= bank.Banks() {
		return 0, 0
	}

	return bank.tables[bidx].Entry(ridx)
}

// SetOneTable copies row vectors into one bank's table, up to the
// smaller of the vector lengths and the row capacity. Out-of-range banks
// are ignored.
func (bank *Bank[I, O]) SetOneTable(bidx int, inVals []I, outVals []O) {
	if bidx < 0 || bidx >= bank.Banks() {
		return
	}

	n := len(inVals)
	if len(outVals) < n {
		n = len(outVals)
	}

	for ridx := 0; ridx < n; ridx++ {
		bank.tables[bidx].SetEntry(ridx, inVals[ridx], outVals[ridx])
	}
}

// LookupOneLE maps one value through one bank's descending table, zero
// when the bank is out of range.
func (bank *Bank[I, O]) LookupOneLE(inVal I, bidx int) O {
	if bidx < 0 || bidx >= bank.Banks() {
		return 0
	}

	return bank.tables[bidx].LookupLE(inVal)
}

// LookupOneGE maps one value through one bank's ascending table, zero
// when the bank is out of range.
func (bank *Bank[I, O]) LookupOneGE(inVal I, bidx int) O {
	if bidx < 0 || bidx >= bank.Banks() {
		return 0
	}

	return bank.tables[bidx].LookupGE(inVal)
}

// LookupAllLE blanks the whole output grid and maps the active rectangle
// through the per-bank descending tables.
func (bank *Bank[I, O]) LookupAllLE(in *cellgrid.Grid[I], out *cellgrid.Grid[O]) {
	var zero O
	out.Fill(zero)

	for bidx := 0; bidx < bank.ActiveBanks(); bidx++ {
		for cidx := 0; cidx < bank.ActiveChans(); cidx++ {
			out.Set(bidx, cidx, bank.tables[bidx].LookupLE(in.At(bidx, cidx)))
		}
	}
}

// LookupAllGE blanks the whole output grid and maps the active rectangle
// through the per-bank ascending tables.
func (bank *Bank[I, O]) LookupAllGE(in *cellgrid.Grid[I], out *cellgrid.Grid[O]) {
	var zero O
	out.Fill(zero)

	for bidx := 0; bidx < bank.ActiveBanks(); bidx++ {
		for cidx := 0; cidx < bank.ActiveChans(); cidx++ {
			out.Set(bidx, cidx, bank.tables[bidx].LookupGE(in.At(bidx, cidx)))
		}
	}
}
