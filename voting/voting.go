// SPDX-License-Identifier: MIT

package voting

import (
	"github.com/katalvlaran/neuroloop/cellgrid"
	"github.com/katalvlaran/neuroloop/nlmath"
)

// IdentifyWinningBanks scans each of the first activeChans channels for the
// bank with the greatest value among the first activeBanks banks. The
// comparison is strictly greater, so the lowest-indexed bank wins ties.
// selections[ch] receives the winning bank index; interior[ch] receives
// false exactly when the winner is the first or last active bank.
//
// Both output slices are blanked (0 / false) across their full length
// before the active scan writes, so channels outside the active range read
// as defaults. Requested active counts clamp down to the source extents
// and the output lengths.
func IdentifyWinningBanks[T nlmath.Integer](source *cellgrid.Grid[T], activeBanks, activeChans int, selections []int, interior []bool) {
	if activeBanks > source.Banks() {
		activeBanks = source.Banks()
	}
	if activeChans > source.Chans() {
		activeChans = source.Chans()
	}
	if activeChans > len(selections) {
		activeChans = len(selections)
	}
	if activeChans > len(interior) {
		activeChans = len(interior)
	}

	for i := range selections {
		selections[i] = 0
	}
	for i := range interior {
		interior[i] = false
	}

	for cidx := 0; cidx < activeChans; cidx++ {
		maxval := source.At(0, cidx)
		maxidx := 0

		for bidx := 1; bidx < activeBanks; bidx++ {
			if v := source.At(bidx, cidx); v > maxval {
				maxval = v
				maxidx = bidx
			}
		}

		selections[cidx] = maxidx
		interior[cidx] = maxidx != 0 && maxidx != activeBanks-1
	}
}

// SelectWinningBanks routes, for every channel, the value of the selected
// bank from source into row 0 of dest. An out-of-range selection index
// defaults to bank 0. Runs over the full channel extent of dest.
func SelectWinningBanks[T any](source *cellgrid.Grid[T], dest *cellgrid.Grid[T], selections []int) {
	for cidx := 0; cidx < dest.Chans(); cidx++ {
		bidx := 0
		if cidx < len(selections) {
			bidx = selections[cidx]
		}
		if bidx < 0 || bidx >= source.Banks() {
			bidx = 0
		}

		dest.Set(0, cidx, source.At(bidx, cidx))
	}
}

// ConditionallyLatchNew overwrites each cell of target with the matching
// cell of newValues exactly when that cell's latch flag equals replaceFlag.
// Covers the full extents of target.
func ConditionallyLatchNew[T any](target, newValues *cellgrid.Grid[T], latchFlags *cellgrid.Grid[bool], replaceFlag bool) {
	for bidx := 0; bidx < target.Banks(); bidx++ {
		for cidx := 0; cidx < target.Chans(); cidx++ {
			if latchFlags.At(bidx, cidx) == replaceFlag {
				target.Set(bidx, cidx, newValues.At(bidx, cidx))
			}
		}
	}
}
