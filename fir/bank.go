// SPDX-License-Identifier: MIT

package fir

import (
	"github.com/katalvlaran/neuroloop/cellgrid"
	"github.com/katalvlaran/neuroloop/nlmath"
)

// Bank is an array of per-bank FIR filters reading one shared circular
// history buffer per channel. The buffer is written once per epoch and
// read by every active bank, each at its own window length.
type Bank[T nlmath.Unsigned] struct {
	cellgrid.Geometry

	filters []*Filter[T]
	inbufs  [][]T
	bufptr  int
	bufMask int
}

// NewBank constructs a banks×chans FIR bank whose filters have capacity
// for maxCoeffs taps. bufLen is the per-channel history length; it must
// be a power of two no smaller than maxCoeffs. All filters start blank
// and the active rectangle starts empty.
func NewBank[T nlmath.Unsigned](banks, chans, maxCoeffs, bufLen int) (*Bank[T], error) {
	geo, err := cellgrid.NewGeometry(banks, chans)
	if err != nil {
		return nil, err
	}
	if maxCoeffs < 1 {
		return nil, ErrBadCoeffs
	}
	if bufLen < maxCoeffs || bufLen&(bufLen-1) != 0 {
		return nil, ErrBadBufLen
	}

	bank := &Bank[T]{
		Geometry: geo,
		filters:  make([]*Filter[T], banks),
		inbufs:   make([][]T, chans),
		bufMask:  bufLen - 1,
	}
	for bidx := range bank.filters {
		bank.filters[bidx], _ = NewFilter[T](maxCoeffs)
	}
	for cidx := range bank.inbufs {
		bank.inbufs[cidx] = make([]T, bufLen)
	}

	return bank, nil
}

// ApplyOnce processes one sample epoch. The whole output grid is blanked
// first (inactive cells read zero, never stale), the input column is
// stored on the active channels, the write pointer advances, and the
// active rectangle is convolved against the shared history. The input
// grid is read on bank row 0.
func (bank *Bank[T]) ApplyOnce(in, out *cellgrid.Grid[T]) {
	var zero T
	out.Fill(zero)

	bank.bufptr &= bank.bufMask

	for cidx := 0; cidx < bank.ActiveChans(); cidx++ {
		bank.inbufs[cidx][bank.bufptr] = in.At(0, cidx)
	}

	bank.bufptr = (bank.bufptr + 1) & bank.bufMask

	for bidx := 0; bidx < bank.ActiveBanks(); bidx++ {
		// Read back the window: underflow wraps to a valid slot.
		readIdx := (bank.bufptr - bank.filters[bidx].CoeffCount()) & bank.bufMask

		for cidx := 0; cidx < bank.ActiveChans(); cidx++ {
			out.Set(bidx, cidx,
				bank.filters[bidx].applyCircular(bank.inbufs[cidx], readIdx, bank.bufMask))
		}
	}
}

// BlankAllFilters zeroes every bank's filter configuration.
func (bank *Bank[T]) BlankAllFilters() {
	for _, f := range bank.filters {
		f.Blank()
	}
}

// BlankOneFilter zeroes one bank's filter configuration. Out-of-range
// banks are ignored.
func (bank *Bank[T]) BlankOneFilter(bidx int) {
	if bidx < 0 || bidx >= bank.Banks() {
		return
	}

	bank.filters[bidx].Blank()
}

// SetOneCoeff stores one tap of one bank's filter.
func (bank *Bank[T]) SetOneCoeff(bidx, coeffIdx int, val T) {
	if bidx < 0 || bidx >= bank.Banks() {
		return
	}

	bank.filters[bidx].SetOneCoeff(coeffIdx, val)
}

// OneCoeff returns one tap of one bank's filter, zero when out of range.
func (bank *Bank[T]) OneCoeff(bidx, coeffIdx int) T {
	if bidx < 0 || bidx >= bank.Banks() {
		return 0
	}

	return bank.filters[bidx].OneCoeff(coeffIdx)
}

// SetFilterLayout stores one bank's bit depth and window length.
func (bank *Bank[T]) SetFilterLayout(bidx int, fracBits uint, coeffCount int) {
	if bidx < 0 || bidx >= bank.Banks() {
		return
	}

	bank.filters[bidx].SetFracBits(fracBits)
	bank.filters[bidx].SetCoeffCount(coeffCount)
}

// FilterLayout returns one bank's bit depth and window length, zeros
// when out of range.
func (bank *Bank[T]) FilterLayout(bidx int) (fracBits uint, coeffCount int) {
	if bidx < 0 || bidx >= bank.Banks() {
		return 0, 0
	}

	return bank.filters[bidx].FracBits(), bank.filters[bidx].CoeffCount()
}

// SetBankCoeffs copies one bank's full tap vector plus its bit depth and
// window length.
func (bank *Bank[T]) SetBankCoeffs(bidx int, fracBits uint, coeffCount int, taps []T) {
	if bidx < 0 || bidx >= bank.Banks() {
		return
	}

	bank.filters[bidx].SetAllCoeffs(fracBits, coeffCount, taps)
}

// BlankInputBuffers zeroes every channel's history and rewinds the write
// pointer.
func (bank *Bank[T]) BlankInputBuffers() {
	bank.bufptr = 0

	for cidx := range bank.inbufs {
		for sidx := range bank.inbufs[cidx] {
			bank.inbufs[cidx][sidx] = 0
		}
	}
}

// BlankOneInputBuffer zeroes one channel's history, leaving the write
// pointer where it is. Out-of-range channels are ignored.
func (bank *Bank[T]) BlankOneInputBuffer(cidx int) {
	if cidx < 0 || cidx >= bank.Chans() {
		return
	}

	for sidx := range bank.inbufs[cidx] {
		bank.inbufs[cidx][sidx] = 0
	}
}

// FastSettle stuffs every channel's history with the current input value
// (all channels, active or not) and rewinds the write pointer, so
// DC-passing windows start settled. The input grid is read on bank row 0.
func (bank *Bank[T]) FastSettle(in *cellgrid.Grid[T]) {
	bank.bufptr = 0

	for cidx := range bank.inbufs {
		val := in.At(0, cidx)
		for sidx := range bank.inbufs[cidx] {
			bank.inbufs[cidx][sidx] = val
		}
	}
}
