// SPDX-License-Identifier: MIT

package coeffio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/neuroloop/biquad"
	"github.com/katalvlaran/neuroloop/coeffio"
	"github.com/katalvlaran/neuroloop/fir"
	"github.com/katalvlaran/neuroloop/lutmap"
	"github.com/katalvlaran/neuroloop/nlmath"
)

func TestReadTable(t *testing.T) {
	in := "name,value,note\nalpha,1,first\nbeta,2\ngamma,3,third,extra\n"

	tb, err := coeffio.ReadTable(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "value", "note"}, tb.ColumnNames())
	assert.Equal(t, 3, tb.RowCount())

	names, err := tb.Column("name")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, names)

	notes, err := tb.Column("note")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "", "third"}, notes, "short rows pad, long rows truncate")

	_, err = tb.Column("missing")
	assert.ErrorIs(t, err, coeffio.ErrColumnMissing)

	row := tb.RowCells(1)
	assert.Equal(t, "beta", row["name"])
	assert.Equal(t, "", row["note"])
}

func TestReadTable_NoHeader(t *testing.T) {
	_, err := coeffio.ReadTable(strings.NewReader(""))
	assert.ErrorIs(t, err, coeffio.ErrNoHeader)
}

func TestTable_WriteRoundTrip(t *testing.T) {
	tb := coeffio.NewTable()
	tb.AddColumn("a", []string{"1", "2"})
	tb.AddColumn("b", []string{"x"})

	var buf bytes.Buffer
	require.NoError(t, tb.Write(&buf, nil, true))

	back, err := coeffio.ReadTable(&buf)
	require.NoError(t, err)

	col, err := back.Column("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, col)

	col, err = back.Column("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", ""}, col, "ragged column pads on write")
}

func TestTable_WriteColumnOrder(t *testing.T) {
	tb := coeffio.NewTable()
	tb.AddColumn("a", []string{"1"})
	tb.AddColumn("b", []string{"2"})

	var buf bytes.Buffer
	require.NoError(t, tb.Write(&buf, []string{"b", "a", "ghost"}, true))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "b,a,ghost", lines[0])
	assert.Equal(t, "2,1,", lines[1])
}

func TestCriteria(t *testing.T) {
	row := map[string]string{"cfg": "fast", "bank": "0"}

	assert.True(t, coeffio.Criteria(nil).MatchesAll(row), "empty criteria match everything")
	assert.True(t, coeffio.Criteria{"cfg": {"slow", "fast"}}.MatchesAll(row))
	assert.False(t, coeffio.Criteria{"cfg": {"slow"}}.MatchesAll(row))
	assert.False(t, coeffio.Criteria{"ghost": {"x"}}.MatchesAll(row), "absent column fails the criterion")

	assert.True(t, coeffio.Criteria{"cfg": {"fast"}, "ghost": {"x"}}.MatchesAny(row))
	assert.False(t, coeffio.Criteria{"cfg": {"slow"}}.MatchesAny(row))
}

func TestSampleConversion(t *testing.T) {
	assert.Equal(t, int64(-122), coeffio.SampleToInt64(nlmath.Negate[uint16](122)))
	assert.Equal(t, int64(100), coeffio.SampleToInt64(uint16(100)))

	assert.Equal(t, nlmath.Negate[uint16](122), coeffio.Int64ToSample[uint16](-122))
	assert.Equal(t, uint16(100), coeffio.Int64ToSample[uint16](100))
}

func TestReadBiquadCoeffs(t *testing.T) {
	sheet := "bank,stage,num0,num1,num2,den0,den1,den2\n" +
		"0,0,4,0,0,2,-3,1\n" +
		"1,0,2,1,0,4,0,0\n"

	bank, err := biquad.NewBank[uint16](2, 1, 1)
	require.NoError(t, err)

	require.NoError(t, coeffio.ReadBiquadCoeffs(strings.NewReader(sheet), bank, nil, nil))

	co := bank.BankCoeffs(0, 0)
	assert.Equal(t, uint(1), co.Den0Bits)
	assert.Equal(t, nlmath.Negate[uint16](3), co.Den1)
	assert.Equal(t, uint16(1), co.Den2)
	assert.Equal(t, uint16(4), co.Num0)

	co = bank.BankCoeffs(1, 0)
	assert.Equal(t, uint(2), co.Den0Bits)
	assert.Equal(t, uint16(2), co.Num0)
	assert.Equal(t, uint16(1), co.Num1)
}

func TestReadBiquadCoeffs_CriteriaAndRemap(t *testing.T) {
	sheet := "cfg,bank,stage,num0,num1,num2,den0,den1,den2\n" +
		"a,0,0,11,0,0,1,0,0\n" +
		"b,0,0,22,0,0,1,0,0\n"

	bank, err := biquad.NewBank[uint16](2, 1, 1)
	require.NoError(t, err)

	// Only configuration "a" rows, landing in bank 1.
	err = coeffio.ReadBiquadCoeffs(strings.NewReader(sheet), bank,
		coeffio.Criteria{"cfg": {"a"}}, map[int]int{0: 1})
	require.NoError(t, err)

	assert.Equal(t, uint16(11), bank.BankCoeffs(1, 0).Num0)
	assert.Equal(t, uint16(0), bank.BankCoeffs(0, 0).Num0, "filtered and remapped away")
}

func TestWriteBiquadCoeffs_RoundTrip(t *testing.T) {
	bank, err := biquad.NewBank[uint16](2, 1, 1)
	require.NoError(t, err)

	bank.SetBankCoeffs(0, 0, biquad.Coeffs[uint16]{Num0: 4, Den1: nlmath.Negate[uint16](3), Den0Bits: 1})
	bank.SetBankCoeffs(1, 0, biquad.Coeffs[uint16]{Num0: 2, Num1: 1, Den0Bits: 2})
	bank.SetActiveStages(1)

	var buf bytes.Buffer
	require.NoError(t, coeffio.WriteBiquadCoeffs(&buf, bank, true, []string{"cfg"}, map[string]string{"cfg": "a"}))

	back, err := biquad.NewBank[uint16](2, 1, 1)
	require.NoError(t, err)
	require.NoError(t, coeffio.ReadBiquadCoeffs(&buf, back, nil, nil))

	assert.Equal(t, bank.BankCoeffs(0, 0), back.BankCoeffs(0, 0))
	assert.Equal(t, bank.BankCoeffs(1, 0), back.BankCoeffs(1, 0))
}

func TestReadFIRCoeffs(t *testing.T) {
	sheet := "bank 0,bank 1\n1,-1\n2,1\n3,\n"

	bank, err := fir.NewBank[uint16](2, 1, 4, 8)
	require.NoError(t, err)

	require.NoError(t, coeffio.ReadFIRCoeffs(strings.NewReader(sheet), bank, 2, nil, nil))

	bits, count := bank.FilterLayout(0)
	assert.Equal(t, uint(2), bits)
	assert.Equal(t, 3, count)
	assert.Equal(t, uint16(1), bank.OneCoeff(0, 0))
	assert.Equal(t, uint16(3), bank.OneCoeff(0, 2))

	_, count = bank.FilterLayout(1)
	assert.Equal(t, 3, count, "empty cells still occupy a tap slot")
	assert.Equal(t, nlmath.Negate[uint16](1), bank.OneCoeff(1, 0))
	assert.Equal(t, uint16(0), bank.OneCoeff(1, 2))
}

func TestWriteFIRCoeffs_RoundTrip(t *testing.T) {
	bank, err := fir.NewBank[uint16](2, 1, 4, 8)
	require.NoError(t, err)

	bank.SetBankCoeffs(0, 2, 3, []uint16{1, 2, 3})
	bank.SetBankCoeffs(1, 2, 2, []uint16{nlmath.Negate[uint16](1), 1})
	bank.SetActiveBanks(2)

	var buf bytes.Buffer
	require.NoError(t, coeffio.WriteFIRCoeffs(&buf, bank, true, nil, nil))

	back, err := fir.NewBank[uint16](2, 1, 4, 8)
	require.NoError(t, err)
	require.NoError(t, coeffio.ReadFIRCoeffs(&buf, back, 2, nil, nil))

	_, count := back.FilterLayout(0)
	assert.Equal(t, 3, count)
	assert.Equal(t, uint16(2), back.OneCoeff(0, 1))

	// The shorter filter reads back padded to the longest window; the
	// pad taps are zero and harmless.
	_, count = back.FilterLayout(1)
	assert.Equal(t, 3, count)
	assert.Equal(t, nlmath.Negate[uint16](1), back.OneCoeff(1, 0))
	assert.Equal(t, uint16(0), back.OneCoeff(1, 2))
}

func TestLUTSheet_RoundTrip(t *testing.T) {
	lut, err := lutmap.NewTable[uint16, uint16](4)
	require.NoError(t, err)

	lut.SetEntry(0, 100, 1000)
	lut.SetEntry(1, 50, 500)
	lut.SetActiveRows(2)

	var buf bytes.Buffer
	require.NoError(t, coeffio.WriteLUTTable(&buf, lut, "in", "out", true, nil, nil))

	back, err := lutmap.NewTable[uint16, uint16](4)
	require.NoError(t, err)
	require.NoError(t, coeffio.ReadLUTTable(&buf, back, "in", "out", nil))

	in, out := back.Entry(0)
	assert.Equal(t, uint16(100), in)
	assert.Equal(t, uint16(1000), out)

	in, out = back.Entry(1)
	assert.Equal(t, uint16(50), in)
	assert.Equal(t, uint16(500), out)
}

func TestLUTBankSheet_RoundTrip(t *testing.T) {
	bank, err := lutmap.NewBank[uint16, uint16](2, 1, 4)
	require.NoError(t, err)

	bank.SetOneEntry(0, 0, 10, 100)
	bank.SetOneEntry(1, 0, 20, 200)
	bank.SetActiveRows(1)
	bank.SetActiveBanks(2)

	var buf bytes.Buffer
	require.NoError(t, coeffio.WriteLUTBank(&buf, bank, "in", "out", true, nil, nil))

	back, err := lutmap.NewBank[uint16, uint16](2, 1, 4)
	require.NoError(t, err)
	require.NoError(t, coeffio.ReadLUTBank(&buf, back, "in", "out", nil, nil))

	in, out := back.OneEntry(1, 0)
	assert.Equal(t, uint16(20), in)
	assert.Equal(t, uint16(200), out)
}

func TestManifest_RoundTrip(t *testing.T) {
	m := coeffio.NewManifest()
	assert.True(t, strings.HasPrefix(m.RunID, "run_"))

	m.Set("channels", "4")
	m.Set("banks", "3")

	var buf bytes.Buffer
	require.NoError(t, coeffio.WriteManifest(&buf, m))

	back, err := coeffio.ReadManifest(&buf)
	require.NoError(t, err)

	assert.Equal(t, m.RunID, back.RunID)
	assert.Equal(t, m.Created.Unix(), back.Created.Unix())
	assert.Equal(t, m.Fields, back.Fields)
}
