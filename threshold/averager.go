// SPDX-License-Identifier: MIT

package threshold

import (
	"github.com/katalvlaran/neuroloop/cellgrid"
	"github.com/katalvlaran/neuroloop/nlmath"
)

// Averager computes a running average of a signal with a first-order
// exponential filter, multiplied by a fixed-point coefficient. Shifts
// replace division throughout; the sample type needs at least
// max(avgBits, coeffBits) bits of headroom. Unsigned sample types are
// assumed to carry signed data by wraparound, as produced by band-pass
// filtering.
type Averager[T nlmath.Unsigned] struct {
	coeff     T
	avgBits   uint8
	coeffBits uint8

	runningSum T
}

// Update folds one input sample into the running average and returns the
// current output value, (average * coeff) >> coeffBits. The approximate
// settling time is 2^avgBits samples.
func (avg *Averager[T]) Update(in T) T {
	out := nlmath.ShrWrapped(avg.runningSum, uint(avg.avgBits))
	avg.runningSum -= out
	avg.runningSum += in

	out = nlmath.ShrWrapped(avg.runningSum, uint(avg.avgBits))
	out *= avg.coeff

	return nlmath.ShrWrapped(out, uint(avg.coeffBits))
}

// Init preloads the running sum so the average starts at in, avoiding the
// startup transient.
func (avg *Averager[T]) Init(in T) {
	avg.runningSum = in << avg.avgBits
}

// SetCoeff stores the fixed-point output coefficient.
func (avg *Averager[T]) SetCoeff(coeff T) {
	avg.coeff = coeff
}

// SetCoeffBits stores the fixed-point scale of the output coefficient.
func (avg *Averager[T]) SetCoeffBits(bits uint8) {
	avg.coeffBits = bits
}

// SetAvgBits stores the time-constant exponent. Zero tracks the input with
// no low-pass filtering.
func (avg *Averager[T]) SetAvgBits(bits uint8) {
	avg.avgBits = bits
}

// AveragerBank is a bank×channel array of averagers. Update covers the
// active rectangle; configuration setters cover the full extents.
type AveragerBank[T nlmath.Unsigned] struct {
	cellgrid.Geometry

	cells []Averager[T]
}

// NewAveragerBank constructs an averager bank with zero coefficients (all
// outputs 0), zero averaging bits, and the active rectangle covering the
// full extents.
func NewAveragerBank[T nlmath.Unsigned](banks, chans int) (*AveragerBank[T], error) {
	geo, err := cellgrid.NewGeometry(banks, chans)
	if err != nil {
		return nil, err
	}

	bank := &AveragerBank[T]{
		Geometry: geo,
		cells:    make([]Averager[T], banks*chans),
	}
	bank.ActivateAll()

	return bank, nil
}

// Update steps every active cell, writing the scaled averages into out.
func (bank *AveragerBank[T]) Update(in, out *cellgrid.Grid[T]) {
	chans := bank.Chans()
	for bidx := 0; bidx < bank.ActiveBanks(); bidx++ {
		for cidx := 0; cidx < bank.ActiveChans(); cidx++ {
			out.Set(bidx, cidx, bank.cells[bidx*chans+cidx].Update(in.At(bidx, cidx)))
		}
	}
}

// Init preloads every cell over the full extents from the given grid.
func (bank *AveragerBank[T]) Init(in *cellgrid.Grid[T]) {
	chans := bank.Chans()
	for bidx := 0; bidx < bank.Banks(); bidx++ {
		for cidx := 0; cidx < chans; cidx++ {
			bank.cells[bidx*chans+cidx].Init(in.At(bidx, cidx))
		}
	}
}

// SetUniformCoeff applies one coefficient to every cell.
func (bank *AveragerBank[T]) SetUniformCoeff(coeff T) {
	for i := range bank.cells {
		bank.cells[i].SetCoeff(coeff)
	}
}

// SetBankCoeffs applies one coefficient per bank to every channel of that
// bank. Banks past the end of the vector keep their configuration.
func (bank *AveragerBank[T]) SetBankCoeffs(coeffs []T) {
	chans := bank.Chans()
	for bidx := 0; bidx < bank.Banks() && bidx < len(coeffs); bidx++ {
		for cidx := 0; cidx < chans; cidx++ {
			bank.cells[bidx*chans+cidx].SetCoeff(coeffs[bidx])
		}
	}
}

// SetOneCoeff sets one cell's coefficient. Out-of-range coordinates are
// ignored.
func (bank *AveragerBank[T]) SetOneCoeff(bidx, cidx int, coeff T) {
	if bidx < 0 || bidx >= bank.Banks() || cidx < 0 || cidx >= bank.Chans() {
		return
	}

	bank.cells[bidx*bank.Chans()+cidx].SetCoeff(coeff)
}

// SetUniformCoeffBits applies one coefficient scale to every cell.
func (bank *AveragerBank[T]) SetUniformCoeffBits(bits uint8) {
	for i := range bank.cells {
		bank.cells[i].SetCoeffBits(bits)
	}
}

// SetUniformAvgBits applies one time-constant exponent to every cell.
func (bank *AveragerBank[T]) SetUniformAvgBits(bits uint8) {
	for i := range bank.cells {
		bank.cells[i].SetAvgBits(bits)
	}
}

// SetOneAvgBits sets one cell's time-constant exponent. Out-of-range
// coordinates are ignored.
func (bank *AveragerBank[T]) SetOneAvgBits(bidx, cidx int, bits uint8) {
	if bidx < 0 || bidx >= bank.Banks() || cidx < 0 || cidx >= bank.Chans() {
		return
	}

	bank.cells[bidx*bank.Chans()+cidx].SetAvgBits(bits)
}
