// SPDX-License-Identifier: MIT

package threshold

import (
	"github.com/katalvlaran/neuroloop/cellgrid"
	"github.com/katalvlaran/neuroloop/nlmath"
)

// TestSingle compares every cell of in against the matching cell of
// thresholds, writing in >= threshold into out. Stateless; covers the full
// extents.
func TestSingle[T nlmath.Unsigned](in, thresholds *cellgrid.Grid[T], out *cellgrid.Grid[bool]) {
	for bidx := 0; bidx < out.Banks(); bidx++ {
		for cidx := 0; cidx < out.Chans(); cidx++ {
			out.Set(bidx, cidx, in.At(bidx, cidx) >= thresholds.At(bidx, cidx))
		}
	}
}

// DualBank is a bank×channel hysteresis latch. Events start when an
// activate flag (from a high-threshold single detector) asserts, and
// persist while a sustain flag (from a low-threshold single detector)
// holds: out = activate || (prev && sustain). One boolean of memory per
// cell; a banked Schmitt trigger.
type DualBank struct {
	banks int
	chans int
	prev  []bool
}

// NewDualBank constructs a dual-threshold detector bank with every latch
// clear.
func NewDualBank(banks, chans int) (*DualBank, error) {
	if banks < 1 || chans < 1 {
		return nil, cellgrid.ErrBadExtents
	}

	return &DualBank{
		banks: banks,
		chans: chans,
		prev:  make([]bool, banks*chans),
	}, nil
}

// Reset clears every latch to "no event detected".
func (bank *DualBank) Reset() {
	for i := range bank.prev {
		bank.prev[i] = false
	}
}

// TestDual folds one epoch of activate/sustain flags, writing the latched
// detection flags into out and updating every latch. Covers the full
// extents.
func (bank *DualBank) TestDual(activate, sustain, out *cellgrid.Grid[bool]) {
	for bidx := 0; bidx < bank.banks; bidx++ {
		for cidx := 0; cidx < bank.chans; cidx++ {
			i := bidx*bank.chans + cidx
			flag := activate.At(bidx, cidx) || (bank.prev[i] && sustain.At(bidx, cidx))
			bank.prev[i] = flag
			out.Set(bidx, cidx, flag)
		}
	}
}
