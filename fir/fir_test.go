// SPDX-License-Identifier: MIT

package fir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/neuroloop/cellgrid"
	"github.com/katalvlaran/neuroloop/fir"
	"github.com/katalvlaran/neuroloop/nlmath"
)

func TestNewFilter_BadCoeffs(t *testing.T) {
	_, err := fir.NewFilter[uint16](0)
	assert.ErrorIs(t, err, fir.ErrBadCoeffs)
}

func TestFilter_ApplyOnce(t *testing.T) {
	f, err := fir.NewFilter[uint16](4)
	require.NoError(t, err)

	// Moving average of four: all-ones taps, two fractional bits.
	f.SetAllCoeffs(2, 4, []uint16{1, 1, 1, 1})
	assert.Equal(t, uint16(10), f.ApplyOnce([]uint16{4, 8, 12, 16}))

	// Zero-length window yields zero.
	f.SetCoeffCount(0)
	assert.Equal(t, uint16(0), f.ApplyOnce([]uint16{4, 8, 12, 16}))
}

func TestFilter_Accessors(t *testing.T) {
	f, err := fir.NewFilter[uint16](3)
	require.NoError(t, err)

	f.SetOneCoeff(1, 7)
	assert.Equal(t, uint16(7), f.OneCoeff(1))

	// Out-of-range taps are no-ops / zero reads.
	f.SetOneCoeff(3, 9)
	f.SetOneCoeff(-1, 9)
	assert.Equal(t, uint16(0), f.OneCoeff(3))

	f.SetCoeffCount(99)
	assert.Equal(t, 3, f.CoeffCount(), "window clamps to capacity")
	f.SetCoeffCount(-1)
	assert.Equal(t, 0, f.CoeffCount())

	f.SetFracBits(5)
	f.SetCoeffCount(2)
	f.Blank()
	assert.Equal(t, uint(0), f.FracBits())
	assert.Equal(t, 0, f.CoeffCount())
	assert.Equal(t, uint16(0), f.OneCoeff(1))
}

func TestNewBank_Errors(t *testing.T) {
	_, err := fir.NewBank[uint16](0, 2, 4, 8)
	assert.ErrorIs(t, err, cellgrid.ErrBadExtents)

	_, err = fir.NewBank[uint16](2, 2, 0, 8)
	assert.ErrorIs(t, err, fir.ErrBadCoeffs)

	_, err = fir.NewBank[uint16](2, 2, 4, 6)
	assert.ErrorIs(t, err, fir.ErrBadBufLen, "length not a power of two")

	_, err = fir.NewBank[uint16](2, 2, 4, 2)
	assert.ErrorIs(t, err, fir.ErrBadBufLen, "length shorter than the window")
}

// feedBank pushes one input value through a single-channel bank and
// returns the output grid.
func feedBank(t *testing.T, bank *fir.Bank[uint16], in uint16, banks int) *cellgrid.Grid[uint16] {
	t.Helper()

	inGrid, err := cellgrid.New[uint16](1, 1)
	require.NoError(t, err)
	inGrid.Set(0, 0, in)

	out, err := cellgrid.New[uint16](banks, 1)
	require.NoError(t, err)

	bank.ApplyOnce(inGrid, out)

	return out
}

func TestBank_MovingAverageWarmsUp(t *testing.T) {
	bank, err := fir.NewBank[uint16](1, 1, 4, 8)
	require.NoError(t, err)

	bank.SetBankCoeffs(0, 2, 4, []uint16{1, 1, 1, 1})
	bank.ActivateAll()

	var got []uint16
	for _, in := range []uint16{4, 8, 12, 16} {
		got = append(got, feedBank(t, bank, in, 1).At(0, 0))
	}

	// History starts blank, so the average climbs as the window fills.
	assert.Equal(t, []uint16{1, 3, 6, 10}, got)
}

func TestBank_CircularWrap(t *testing.T) {
	// History of exactly the window length forces wraparound reads.
	bank, err := fir.NewBank[uint16](1, 1, 4, 4)
	require.NoError(t, err)

	bank.SetBankCoeffs(0, 0, 4, []uint16{1, 1, 1, 1})
	bank.ActivateAll()

	var last uint16
	for in := uint16(1); in <= 5; in++ {
		last = feedBank(t, bank, in, 1).At(0, 0)
	}

	assert.Equal(t, uint16(2+3+4+5), last)
}

func TestBank_SharedHistoryAcrossBanks(t *testing.T) {
	bank, err := fir.NewBank[uint16](2, 1, 4, 8)
	require.NoError(t, err)

	// Bank 0: identity. Bank 1: first difference x[n] - x[n-1].
	bank.SetBankCoeffs(0, 0, 1, []uint16{1})
	bank.SetBankCoeffs(1, 0, 2, []uint16{nlmath.Negate[uint16](1), 1})
	bank.ActivateAll()

	out := feedBank(t, bank, 10, 2)
	assert.Equal(t, uint16(10), out.At(0, 0))
	assert.Equal(t, uint16(10), out.At(1, 0), "first difference against blank history")

	out = feedBank(t, bank, 7, 2)
	assert.Equal(t, uint16(7), out.At(0, 0))
	assert.Equal(t, nlmath.Negate[uint16](3), out.At(1, 0))
}

func TestBank_OutputBlankedNotStale(t *testing.T) {
	bank, err := fir.NewBank[uint16](2, 1, 4, 8)
	require.NoError(t, err)

	bank.SetBankCoeffs(0, 0, 1, []uint16{1})
	bank.SetActive(1, 1)

	inGrid, err := cellgrid.New[uint16](1, 1)
	require.NoError(t, err)
	inGrid.Set(0, 0, 9)

	out, err := cellgrid.New[uint16](2, 1)
	require.NoError(t, err)
	out.Fill(777)

	bank.ApplyOnce(inGrid, out)

	assert.Equal(t, uint16(9), out.At(0, 0))
	assert.Equal(t, uint16(0), out.At(1, 0), "inactive cells are blanked, never stale")
}

func TestBank_FastSettleAndBlank(t *testing.T) {
	bank, err := fir.NewBank[uint16](1, 1, 4, 8)
	require.NoError(t, err)

	bank.SetBankCoeffs(0, 2, 4, []uint16{1, 1, 1, 1})
	bank.ActivateAll()

	inGrid, err := cellgrid.New[uint16](1, 1)
	require.NoError(t, err)
	inGrid.Set(0, 0, 12)

	// Stuffed history makes a DC-passing window settled from the first
	// sample.
	bank.FastSettle(inGrid)
	assert.Equal(t, uint16(12), feedBank(t, bank, 12, 1).At(0, 0))

	bank.BlankInputBuffers()
	assert.Equal(t, uint16(3), feedBank(t, bank, 12, 1).At(0, 0), "blank history holds only the new sample")
}

func TestBank_LayoutAccessors(t *testing.T) {
	bank, err := fir.NewBank[uint16](2, 1, 4, 8)
	require.NoError(t, err)

	bank.SetFilterLayout(1, 3, 2)
	bits, count := bank.FilterLayout(1)
	assert.Equal(t, uint(3), bits)
	assert.Equal(t, 2, count)

	bits, count = bank.FilterLayout(5)
	assert.Equal(t, uint(0), bits)
	assert.Equal(t, 0, count)

	bank.SetOneCoeff(1, 0, 42)
	assert.Equal(t, uint16(42), bank.OneCoeff(1, 0))
	assert.Equal(t, uint16(0), bank.OneCoeff(-1, 0))

	bank.BlankOneFilter(1)
	assert.Equal(t, uint16(0), bank.OneCoeff(1, 0))
	bits, count = bank.FilterLayout(1)
	assert.Equal(t, uint(0), bits)
	assert.Equal(t, 0, count)
}
