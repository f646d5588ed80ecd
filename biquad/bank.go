// SPDX-License-Identifier: MIT

package biquad

import (
	"github.com/katalvlaran/neuroloop/cellgrid"
	"github.com/katalvlaran/neuroloop/nlmath"
)

// Bank is a bank×channel array of filter chains. Chains within a bank
// share coefficients while keeping independent history, and every bank
// filters the same per-channel input, so one input column fans out into
// one filtered column per bank.
type Bank[T nlmath.Unsigned] struct {
	cellgrid.Geometry

	stageCount int
	chains     []*Chain[T]
}

// NewBank constructs a banks×chans filter bank whose chains have capacity
// for stageCount sections each, all blank, full extents active.
func NewBank[T nlmath.Unsigned](banks, chans, stageCount int) (*Bank[T], error) {
	geo, err := cellgrid.NewGeometry(banks, chans)
	if err != nil {
		return nil, err
	}
	if stageCount < 1 {
		return nil, ErrBadStages
	}

	bank := &Bank[T]{
		Geometry:   geo,
		stageCount: stageCount,
		chains:     make([]*Chain[T], banks*chans),
	}
	for i := range bank.chains {
		bank.chains[i], _ = NewChain[T](stageCount)
	}
	bank.ActivateAll()

	return bank, nil
}

// StageCount returns the per-chain capacity in sections.
func (bank *Bank[T]) StageCount() int { return bank.stageCount }

// ActiveStages returns the active stage count (uniform across cells).
func (bank *Bank[T]) ActiveStages() int { return bank.chains[0].ActiveStages() }

// SetActiveStages applies one active stage count to every chain, clamped
// to [0, StageCount].
func (bank *Bank[T]) SetActiveStages(n int) {
	for _, ch := range bank.chains {
		ch.SetActiveStages(n)
	}
}

// SetBankCoeffs stores one section's coefficients for every channel of
// one bank, active or not. Out-of-range indices are ignored.
func (bank *Bank[T]) SetBankCoeffs(bidx, stage int, co Coeffs[T]) {
	if bidx < 0 || bidx >= bank.Banks() {
		return
	}

	chans := bank.Chans()
	for cidx := 0; cidx < chans; cidx++ {
		bank.chains[bidx*chans+cidx].SetStageCoeffs(stage, co)
	}
}

// BankCoeffs returns one section's coefficients for one bank, the zero
// record when out of range.
func (bank *Bank[T]) BankCoeffs(bidx, stage int) Coeffs[T] {
	if bidx < 0 || bidx >= bank.Banks() {
		return Coeffs[T]{}
	}

	return bank.chains[bidx*bank.Chans()].StageCoeffs(stage)
}

// BlankCoeffs zeroes every chain's coefficients.
func (bank *Bank[T]) BlankCoeffs() {
	for _, ch := range bank.chains {
		ch.BlankCoeffs()
	}
}

// ApplyOnce pushes one input column through the active rectangle. The
// input grid is read on bank row 0 (one value per channel, replicated
// across banks); filtered samples land at out[bank][chan]. Cells outside
// the active rectangle go stale rather than being blanked.
func (bank *Bank[T]) ApplyOnce(in, out *cellgrid.Grid[T]) {
	chans := bank.Chans()
	for bidx := 0; bidx < bank.ActiveBanks(); bidx++ {
		for cidx := 0; cidx < bank.ActiveChans(); cidx++ {
			out.Set(bidx, cidx, bank.chains[bidx*chans+cidx].ApplyOnce(in.At(0, cidx)))
		}
	}
}

// FastSettle preloads every chain's history from the input column, active
// or not, using the per-stage copyInput policy of Chain.FastSettle.
func (bank *Bank[T]) FastSettle(in *cellgrid.Grid[T], copyInput []bool) {
	chans := bank.Chans()
	for bidx := 0; bidx < bank.Banks(); bidx++ {
		for cidx := 0; cidx < chans; cidx++ {
			bank.chains[bidx*chans+cidx].FastSettle(in.At(0, cidx), copyInput)
		}
	}
}
