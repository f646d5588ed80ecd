// SPDX-License-Identifier: MIT

package threshold

import "github.com/katalvlaran/neuroloop/cellgrid"

// Deglitcher delays rising and falling edges of a boolean stream by
// configured sample counts. A candidate edge must persist for the whole
// delay before the output moves, which removes brief spurious pulses and
// drop-outs at the cost of added latency.
type Deglitcher struct {
	riseDelay uint32
	fallDelay uint32

	riseCountdown uint32
	fallCountdown uint32
	lastOutput    bool
}

// ProcessSample folds one input sample and returns the debounced output.
func (dg *Deglitcher) ProcessSample(in bool) bool {
	if dg.lastOutput {
		switch {
		case in:
			// Still high; restart the fall delay.
			dg.fallCountdown = dg.fallDelay
		case dg.fallCountdown == 0:
			// Low and past the delay.
			dg.lastOutput = false
			dg.riseCountdown = dg.riseDelay
		default:
			// Low but not yet reportable.
			dg.fallCountdown--
		}
	} else {
		switch {
		case !in:
			// Still low; restart the rise delay.
			dg.riseCountdown = dg.riseDelay
		case dg.riseCountdown == 0:
			// High and past the delay.
			dg.lastOutput = true
			dg.fallCountdown = dg.fallDelay
		default:
			// High but not yet reportable.
			dg.riseCountdown--
		}
	}

	return dg.lastOutput
}

// SetDelays stores new edge delays, resets both countdowns, and forces the
// output low.
func (dg *Deglitcher) SetDelays(riseDelay, fallDelay uint32) {
	dg.riseDelay = riseDelay
	dg.fallDelay = fallDelay
	dg.riseCountdown = 0
	dg.fallCountdown = 0
	dg.lastOutput = false
}

// DeglitcherBank is a bank×channel array of deglitchers iterated over the
// full extents.
type DeglitcherBank struct {
	banks int
	chans int
	cells []Deglitcher
}

// NewDeglitcherBank constructs a deglitcher bank with zero delays (outputs
// track inputs immediately).
func NewDeglitcherBank(banks, chans int) (*DeglitcherBank, error) {
	if banks < 1 || chans < 1 {
		return nil, cellgrid.ErrBadExtents
	}

	return &DeglitcherBank{
		banks: banks,
		chans: chans,
		cells: make([]Deglitcher, banks*chans),
	}, nil
}

// ProcessSamples steps every cell, writing the debounced flags into out.
func (bank *DeglitcherBank) ProcessSamples(in, out *cellgrid.Grid[bool]) {
	for bidx := 0; bidx < bank.banks; bidx++ {
		for cidx := 0; cidx < bank.chans; cidx++ {
			out.Set(bidx, cidx, bank.cells[bidx*bank.chans+cidx].ProcessSample(in.At(bidx, cidx)))
		}
	}
}

// SetUniformDelays applies one rise/fall delay pair to every cell.
func (bank *DeglitcherBank) SetUniformDelays(riseDelay, fallDelay uint32) {
	for i := range bank.cells {
		bank.cells[i].SetDelays(riseDelay, fallDelay)
	}
}

// SetOneDelays sets one cell's delays. Out-of-range coordinates are
// ignored.
func (bank *DeglitcherBank) SetOneDelays(bidx, cidx int, riseDelay, fallDelay uint32) {
	if bidx < 0 || bidx >= bank.banks || cidx < 0 || cidx >= bank.chans {
		return
	}

	bank.cells[bidx*bank.chans+cidx].SetDelays(riseDelay, fallDelay)
}
