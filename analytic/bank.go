// SPDX-License-Identifier: MIT

package analytic

import (
	"github.com/katalvlaran/neuroloop/cellgrid"
	"github.com/katalvlaran/neuroloop/nlmath"
)

// Bank is a bank×channel array of estimators. Per-sample processing covers
// only the active sub-rectangle; configuration setters cover the full
// extents so that later activation finds configured cells.
type Bank[T nlmath.Unsigned] struct {
	cellgrid.Geometry

	cells []Estimator[T]
}

// NewBank constructs a banks×chans estimator bank with every cell reset and
// the active rectangle covering the full extents.
// Returns cellgrid.ErrBadExtents for non-positive extents.
func NewBank[T nlmath.Unsigned](banks, chans int) (*Bank[T], error) {
	geo, err := cellgrid.NewGeometry(banks, chans)
	if err != nil {
		return nil, err
	}

	bank := &Bank[T]{
		Geometry: geo,
		cells:    make([]Estimator[T], banks*chans),
	}
	bank.Reset()

	return bank, nil
}

// Reset resets every cell over the full extents and sets the active
// rectangle back to the full extents.
func (bank *Bank[T]) Reset() {
	for i := range bank.cells {
		bank.cells[i].Reset()
	}

	bank.ActivateAll()
}

// HandleSamples feeds one sample epoch to every cell of the active
// rectangle, bank-major, channel-minor.
func (bank *Bank[T]) HandleSamples(in *cellgrid.Grid[T]) {
	chans := bank.Chans()
	for bidx := 0; bidx < bank.ActiveBanks(); bidx++ {
		for cidx := 0; cidx < bank.ActiveChans(); cidx++ {
			bank.cells[bidx*chans+cidx].HandleSample(in.At(bidx, cidx))
		}
	}
}

// EstimatesInto writes the current measurements of the active rectangle
// into the four destination grids. Cells outside the active rectangle keep
// whatever stale values the destinations held.
func (bank *Bank[T]) EstimatesInto(mags, periods, sinceRise, sinceFall *cellgrid.Grid[T]) {
	chans := bank.Chans()
	for bidx := 0; bidx < bank.ActiveBanks(); bidx++ {
		for cidx := 0; cidx < bank.ActiveChans(); cidx++ {
			r := bank.cells[bidx*chans+cidx].Estimate()
			mags.Set(bidx, cidx, r.Mag)
			periods.Set(bidx, cidx, r.Period)
			sinceRise.Set(bidx, cidx, r.SinceRise)
			sinceFall.Set(bidx, cidx, r.SinceFall)
		}
	}
}

// Estimate returns the measurements of one cell, or a zero Reading if the
// coordinate is out of range.
func (bank *Bank[T]) Estimate(bidx, cidx int) Reading[T] {
	if bidx < 0 || bidx >= bank.Banks() || cidx < 0 || cidx >= bank.Chans() {
		return Reading[T]{}
	}

	return bank.cells[bidx*bank.Chans()+cidx].Estimate()
}

// SetMinPeriods applies one minimum period per bank to every channel of
// that bank. Extra entries are ignored; banks past the end of the vector
// keep their previous configuration.
func (bank *Bank[T]) SetMinPeriods(periods []T) {
	chans := bank.Chans()
	for bidx := 0; bidx < bank.Banks() && bidx < len(periods); bidx++ {
		for cidx := 0; cidx < chans; cidx++ {
			bank.cells[bidx*chans+cidx].SetMinPeriod(periods[bidx])
		}
	}
}

// SetOneMinPeriod applies a minimum period to every channel of one bank.
// Out-of-range bank indices are ignored.
func (bank *Bank[T]) SetOneMinPeriod(bidx int, period T) {
	if bidx < 0 || bidx >= bank.Banks() {
		return
	}

	chans := bank.Chans()
	for cidx := 0; cidx < chans; cidx++ {
		bank.cells[bidx*chans+cidx].SetMinPeriod(period)
	}
}

// SetZeroLevels applies per-cell zero levels over the full extents.
func (bank *Bank[T]) SetZeroLevels(zeros *cellgrid.Grid[T]) {
	chans := bank.Chans()
	for bidx := 0; bidx < bank.Banks(); bidx++ {
		for cidx := 0; cidx < chans; cidx++ {
			bank.cells[bidx*chans+cidx].SetZeroLevel(zeros.At(bidx, cidx))
		}
	}
}

// SetOneZeroLevel sets one cell's zero level. Out-of-range coordinates are
// ignored.
func (bank *Bank[T]) SetOneZeroLevel(bidx, cidx int, zero T) {
	if bidx < 0 || bidx >= bank.Banks() || cidx < 0 || cidx >= bank.Chans() {
		return
	}

	bank.cells[bidx*bank.Chans()+cidx].SetZeroLevel(zero)
}
