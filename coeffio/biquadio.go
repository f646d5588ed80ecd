// SPDX-License-Identifier: MIT

package coeffio

import (
	"io"

	"github.com/katalvlaran/neuroloop/biquad"
	"github.com/katalvlaran/neuroloop/nlmath"
)

// biquadCols is the canonical coefficient column order for biquad
// sheets.
var biquadCols = []string{"bank", "stage", "num0", "num1", "num2", "den0", "den1", "den2"}

// ReadBiquadCoeffs loads biquad coefficients from a CSV sheet into the
// filter bank, active or not. Only rows satisfying the criteria are
// used (nil criteria accept every row); bank numbers present in
// bankRemap are remapped before the store. The den0 cell is converted to
// its shift count, tolerating non-power-of-two and negative values by
// taking the floor. Out-of-range bank or stage numbers are silently
// dropped by the bank's accessors.
func ReadBiquadCoeffs[T nlmath.Unsigned](r io.Reader, bank *biquad.Bank[T], criteria Criteria, bankRemap map[int]int) error {
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

		bankNum := int(parseCellInt(row["bank"]))
		stageNum := int(parseCellInt(row["stage"]))

		if mapped, ok := bankRemap[bankNum]; ok {
			bankNum = mapped
		}

		co := biquad.Coeffs[T]{
			Num0: Int64ToSample[T](parseCellInt(row["num0"])),
			Num1: Int64ToSample[T](parseCellInt(row["num1"])),
			Num2: Int64ToSample[T](parseCellInt(row["num2"])),
			Den1: Int64ToSample[T](parseCellInt(row["den1"])),
			Den2: Int64ToSample[T](parseCellInt(row["den2"])),
		}

		// den0 = 2^den0Bits; tolerate den0 <= 1 as a zero shift.
		den0 := parseCellInt(row["den0"])
		for den0 > 1 {
			den0 >>= 1
			co.Den0Bits++
		}

		bank.SetBankCoeffs(bankNum, stageNum, co)
	}

	return nil
}

// WriteBiquadCoeffs emits the active banks and stages of the filter bank
// as a CSV sheet in canonical column order. Extra constant-valued
// columns (written before the coefficients) can carry annotations such
// as a configuration name; pass nil for none. Nothing is written when no
// channels are active.
func WriteBiquadCoeffs[T nlmath.Unsigned](w io.Writer, bank *biquad.Bank[T], withHeader bool, extraOrder []string, extraVals map[string]string) error {
	tb := NewTable()

	colOrder := append(append([]string{}, extraOrder...), biquadCols...)
	for _, name := range colOrder {
		tb.AddColumn(name, nil)
	}

	if bank.ActiveChans() > 0 {
		for bidx := 0; bidx < bank.ActiveBanks(); bidx++ {
			for sidx := 0; sidx < bank.ActiveStages(); sidx++ {
				co := bank.BankCoeffs(bidx, sidx)

				tb.AppendCell("bank", formatInt(int64(bidx)))
				tb.AppendCell("stage", formatInt(int64(sidx)))

				tb.AppendCell("num0", formatInt(SampleToInt64(co.Num0)))
				tb.AppendCell("num1", formatInt(SampleToInt64(co.Num1)))
				tb.AppendCell("num2", formatInt(SampleToInt64(co.Num2)))

				tb.AppendCell("den0", formatInt(int64(1)<<co.Den0Bits))
				tb.AppendCell("den1", formatInt(SampleToInt64(co.Den1)))
				tb.AppendCell("den2", formatInt(SampleToInt64(co.Den2)))

				for _, name := range extraOrder {
					tb.AppendCell(name, extraVals[name])
				}
			}
		}
	}

	return tb.Write(w, colOrder, withHeader)
}
