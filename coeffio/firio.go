// SPDX-License-Identifier: MIT

package coeffio

import (
	"io"
	"regexp"
	"sort"

	"github.com/katalvlaran/neuroloop/fir"
	"github.com/katalvlaran/neuroloop/nlmath"
)

// FIR sheets hold one column per filter, named "bank N", one tap per
// row. The fractional bit depth is not stored in the sheet; the caller
// supplies it.
var firBankCol = regexp.MustCompile(`^bank\s+(\d+)$`)

// ReadFIRCoeffs loads FIR taps from a CSV sheet into the filter bank.
// Each "bank N" column rebuilds filter N (or its remapped index) from
// scratch: the filter is blanked, taps are taken from rows satisfying
// the criteria in row order, and the window length is set to the number
// of taps consumed. All loaded filters share the supplied fracBits.
func ReadFIRCoeffs[T nlmath.Unsigned](r io.Reader, bank *fir.Bank[T], fracBits uint, criteria Criteria, bankRemap map[int]int) error {
	tb, err := ReadTable(r)
	if err != nil {
		return err
	}

	// Map remapped bank index -> source column name.
	bankCols := make(map[int]string)
	for _, name := range tb.ColumnNames() {
		m := firBankCol.FindStringSubmatch(name)
		if m == nil {
			continue
		}

		bidx := int(parseCellInt(m[1]))
		if mapped, ok := bankRemap[bidx]; ok {
			bidx = mapped
		}

		bankCols[bidx] = name
	}

	// Deterministic bank order, matching the sheet's numeric order.
	bankIdxs := make([]int, 0, len(bankCols))
	for bidx := range bankCols {
		bankIdxs = append(bankIdxs, bidx)
	}
	sort.Ints(bankIdxs)

	rowCount := tb.RowCount()
	for _, bidx := range bankIdxs {
		colName := bankCols[bidx]

		bank.BlankOneFilter(bidx)
		coeffCount := 0

		for ridx := 0; ridx < rowCount; ridx++ {
			row := tb.RowCells(ridx)
			if !criteria.MatchesAll(row) {
				continue
			}

			bank.SetOneCoeff(bidx, coeffCount, Int64ToSample[T](parseCellInt(row[colName])))
			coeffCount++
		}

		bank.SetFilterLayout(bidx, fracBits, coeffCount)
	}

	return nil
}

// WriteFIRCoeffs emits the active banks of the filter bank as a CSV
// sheet, one "bank N" column per filter. Extra constant-valued columns
// are written before the taps, replicated to the longest window. The
// fractional bit depth is not written.
func WriteFIRCoeffs[T nlmath.Unsigned](w io.Writer, bank *fir.Bank[T], withHeader bool, extraOrder []string, extraVals map[string]string) error {
	tb := NewTable()
	colOrder := append([]string{}, extraOrder...)

	maxCoeffCount := 0
	for bidx := 0; bidx < bank.ActiveBanks(); bidx++ {
		colName := "bank " + formatInt(int64(bidx))
		colOrder = append(colOrder, colName)

		_, coeffCount := bank.FilterLayout(bidx)
		if coeffCount > maxCoeffCount {
			maxCoeffCount = coeffCount
		}

		cells := make([]string, 0, coeffCount)
		for sidx := 0; sidx < coeffCount; sidx++ {
			cells = append(cells, formatInt(SampleToInt64(bank.OneCoeff(bidx, sidx))))
		}

		tb.AddColumn(colName, cells)
	}

	for _, name := range extraOrder {
		cells := make([]string, maxCoeffCount)
		for i := range cells {
			cells[i] = extraVals[name]
		}

		tb.AddColumn(name, cells)
	}

	return tb.Write(w, colOrder, withHeader)
}
