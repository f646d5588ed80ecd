// SPDX-License-Identifier: MIT

package coeffio

import (
	"io"

	"github.com/katalvlaran/neuroloop/lutmap"
	"github.com/katalvlaran/neuroloop/nlmath"
)

// Lookup-table sheets hold (row, in, out) tuples; the in/out column
// names are caller-chosen so one sheet can carry several curves. Only
// the entries a sheet lists are modified.

// ReadLUTTable loads rows satisfying the criteria into a single lookup
// table. The "row" column selects the target entry; inField and
// outField name the tuple columns.
func ReadLUTTable[I, O nlmath.Unsigned](r io.Reader, lut *lutmap.Table[I, O], inField, outField string, criteria Criteria) error {
	tb, err := ReadTable(r)
	if err != nil {
		return err
	}

	rowCount := tb.RowCount()
	for ridx := 0; ridx < rowCount; ridx++ {
		row := tb.RowCells(ridx)
		if !criteria.MatchesAll(row) {
			continue
		}

		lut.SetEntry(int(parseCellInt(row["row"])),
			Int64ToSample[I](parseCellInt(row[inField])),
			Int64ToSample[O](parseCellInt(row[outField])))
	}

	return nil
}

// ReadLUTBank loads rows satisfying the criteria into a per-bank lookup
// bank. The "bank" and "row" columns address the entry; bank numbers
// present in bankRemap are remapped first.
func ReadLUTBank[I, O nlmath.Unsigned](r io.Reader, bank *lutmap.Bank[I, O], inField, outField string, criteria Criteria, bankRemap map[int]int) error {
	tb, err := ReadTable(r)
	if err != nil {
		return err
	}

	rowCount := tb.RowCount()
	for ridx := 0; ridx < rowCount; ridx++ {
		row := tb.RowCells(ridx)
		if !criteria.MatchesAll(row) {
			continue
		}

		bidx := int(parseCellInt(row["bank"]))
		if mapped, ok := bankRemap[bidx]; ok {
			bidx = mapped
		}

		bank.SetOneEntry(bidx, int(parseCellInt(row["row"])),
			Int64ToSample[I](parseCellInt(row[inField])),
			Int64ToSample[O](parseCellInt(row[outField])))
	}

	return nil
}

// WriteLUTTable emits a single table's active rows as a CSV sheet with
// columns (extra..., row, inField, outField).
func WriteLUTTable[I, O nlmath.Unsigned](w io.Writer, lut *lutmap.Table[I, O], inField, outField string, withHeader bool, extraOrder []string, extraVals map[string]string) error {
	tb := NewTable()
	colOrder := append(append([]string{}, extraOrder...), "row", inField, outField)
	for _, name := range colOrder {
		tb.AddColumn(name, nil)
	}

	for ridx := 0; ridx < lut.ActiveRows(); ridx++ {
		inVal, outVal := lut.Entry(ridx)

		tb.AppendCell("row", formatInt(int64(ridx)))
		tb.AppendCell(inField, formatInt(SampleToInt64(inVal)))
		tb.AppendCell(outField, formatInt(SampleToInt64(outVal)))

		for _, name := range extraOrder {
			tb.AppendCell(name, extraVals[name])
		}
	}

	return tb.Write(w, colOrder, withHeader)
}

// WriteLUTBank emits a lookup bank's active banks and rows as a CSV
// sheet with columns (extra..., bank, row, inField, outField).
func WriteLUTBank[I, O nlmath.Unsigned](w io.Writer, bank *lutmap.Bank[I, O], inField, outField string, withHeader bool, extraOrder []string, extraVals map[string]string) error {
	tb := NewTable()
	colOrder := append(append([]string{}, extraOrder...), "bank", "row", inField, outField)
	for _, name := range colOrder {
		tb.AddColumn(name, nil)
	}

	for bidx := 0; bidx < bank.ActiveBanks(); bidx++ {
		for ridx := 0; ridx < bank.ActiveRows(); ridx++ {
			inVal, outVal := bank.OneEntry(bidx, ridx)

			tb.AppendCell("bank", formatInt(int64(bidx)))
			tb.AppendCell("row", formatInt(int64(ridx)))
			tb.AppendCell(inField, formatInt(SampleToInt64(inVal)))
			tb.AppendCell(outField, formatInt(SampleToInt64(outVal)))

			for _, name := range extraOrder {
				tb.AppendCell(name, extraVals[name])
			}
		}
	}

	return tb.Write(w, colOrder, withHeader)
}
