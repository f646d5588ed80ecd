// SPDX-License-Identifier: MIT

package trigger

import (
	"github.com/katalvlaran/neuroloop/cellgrid"
	"github.com/katalvlaran/neuroloop/nlmath"
)

// Bank is a bank×channel array of trigger cells sharing one Budget. The
// per-cell enable flags gate stepping entirely: a disabled cell's timers
// freeze and its output is forced false until it is re-enabled.
type Bank[T nlmath.Unsigned] struct {
	cellgrid.Geometry

	cells   []Trigger[T]
	enabled []bool
	budget  Budget
}

// NewBank constructs a banks×chans trigger bank in the fully reset state:
// zero budget, empty active rectangle, every cell disabled and reset.
// Returns cellgrid.ErrBadExtents for non-positive extents.
func NewBank[T nlmath.Unsigned](banks, chans int) (*Bank[T], error) {
	geo, err := cellgrid.NewGeometry(banks, chans)
	if err != nil {
		return nil, err
	}

	bank := &Bank[T]{
		Geometry: geo,
		cells:    make([]Trigger[T], banks*chans),
		enabled:  make([]bool, banks*chans),
	}
	bank.Reset()

	return bank, nil
}

// Reset zeroes both shared budget counters, empties the active rectangle,
// disables every cell, and resets every cell over the full extents.
func (bank *Bank[T]) Reset() {
	bank.budget = Budget{}
	bank.Deactivate()

	for i := range bank.cells {
		bank.cells[i].Reset()
		bank.enabled[i] = false
	}
}

// ForceIdle halts all triggering (both budget counters zeroed) and forces
// every cell idle. Cell configuration and enable flags are left intact.
func (bank *Bank[T]) ForceIdle() {
	bank.budget = Budget{}

	for i := range bank.cells {
		bank.cells[i].ForceIdle()
	}
}

// EnableTriggering re-arms the shared counters: a fresh arming window and
// pulse quota. No cell state is touched.
func (bank *Bank[T]) EnableTriggering(windowSamples, maxPulses uint32) {
	bank.budget.WindowLeft = windowSamples
	bank.budget.PulsesLeft = maxPulses
}

// DisableTriggering zeroes both shared counters immediately. Pulses
// already in flight still complete under their own per-cell timers.
func (bank *Bank[T]) DisableTriggering() {
	bank.budget = Budget{}
}

// Budget returns a copy of the shared counters.
func (bank *Bank[T]) Budget() Budget { return bank.budget }

// ProcessSamples steps one sample epoch. The shared window is decremented
// once per call, unconditionally; once it hits zero the quota is forced to
// zero until re-armed, so no new pulse can start while in-flight pulses
// run to completion.
//
// Active cells are stepped bank-major, channel-minor — the order in which
// competing cells consume the shared quota. Disabled cells are not stepped
// at all and report false.
func (bank *Bank[T]) ProcessSamples(values, targets, periods *cellgrid.Grid[T], detect, fires *cellgrid.Grid[bool]) {
	if bank.budget.WindowLeft > 0 {
		bank.budget.WindowLeft--
	} else {
		bank.budget.PulsesLeft = 0
	}

	chans := bank.Chans()
	for bidx := 0; bidx < bank.ActiveBanks(); bidx++ {
		for cidx := 0; cidx < bank.ActiveChans(); cidx++ {
			out := false

			if bank.enabled[bidx*chans+cidx] {
				out = bank.cells[bidx*chans+cidx].ProcessSample(
					values.At(bidx, cidx), targets.At(bidx, cidx),
					periods.At(bidx, cidx), detect.At(bidx, cidx),
					&bank.budget)
			}

			fires.Set(bidx, cidx, out)
		}
	}
}

// SetEnableFlags copies per-cell enable flags over the full extents.
func (bank *Bank[T]) SetEnableFlags(want *cellgrid.Grid[bool]) {
	chans := bank.Chans()
	for bidx := 0; bidx < bank.Banks(); bidx++ {
		for cidx := 0; cidx < chans; cidx++ {
			bank.enabled[bidx*chans+cidx] = want.At(bidx, cidx)
		}
	}
}

// SetAllEnabled applies one enable flag to every cell.
func (bank *Bank[T]) SetAllEnabled(enabled bool) {
	for i := range bank.enabled {
		bank.enabled[i] = enabled
	}
}

// SetOneEnabled sets one cell's enable flag. Out-of-range coordinates are
// ignored.
func (bank *Bank[T]) SetOneEnabled(bidx, cidx int, enabled bool) {
	if !bank.inBounds(bidx, cidx) {
		return
	}

	bank.enabled[bidx*bank.Chans()+cidx] = enabled
}

// OneEnabled reports one cell's enable flag, false when out of range.
func (bank *Bank[T]) OneEnabled(bidx, cidx int) bool {
	if !bank.inBounds(bidx, cidx) {
		return false
	}

	return bank.enabled[bidx*bank.Chans()+cidx]
}

// SetPulseDurations applies per-cell pulse widths over the full extents.
func (bank *Bank[T]) SetPulseDurations(samples *cellgrid.Grid[uint32]) {
	chans := bank.Chans()
	for bidx := 0; bidx < bank.Banks(); bidx++ {
		for cidx := 0; cidx < chans; cidx++ {
			bank.cells[bidx*chans+cidx].SetPulseDuration(samples.At(bidx, cidx))
		}
	}
}

// SetAllPulseDurations applies one pulse width to every cell.
func (bank *Bank[T]) SetAllPulseDurations(samples uint32) {
	for i := range bank.cells {
		bank.cells[i].SetPulseDuration(samples)
	}
}

// SetPulseCooldowns applies per-cell cooldowns over the full extents.
func (bank *Bank[T]) SetPulseCooldowns(samples *cellgrid.Grid[uint32]) {
	chans := bank.Chans()
	for bidx := 0; bidx < bank.Banks(); bidx++ {
		for cidx := 0; cidx < chans; cidx++ {
			bank.cells[bidx*chans+cidx].SetPulseCooldown(samples.At(bidx, cidx))
		}
	}
}

// SetAllPulseCooldowns applies one cooldown to every cell.
func (bank *Bank[T]) SetAllPulseCooldowns(samples uint32) {
	for i := range bank.cells {
		bank.cells[i].SetPulseCooldown(samples)
	}
}

// SetAllReRaise applies one re-raise policy to every cell.
func (bank *Bank[T]) SetAllReRaise(ok bool) {
	for i := range bank.cells {
		bank.cells[i].SetReRaise(ok)
	}
}

// SetOnePulseDuration sets one cell's pulse width. Out-of-range
// coordinates are ignored.
func (bank *Bank[T]) SetOnePulseDuration(bidx, cidx int, samples uint32) {
	if !bank.inBounds(bidx, cidx) {
		return
	}

	bank.cells[bidx*bank.Chans()+cidx].SetPulseDuration(samples)
}

// SetOnePulseCooldown sets one cell's cooldown. Out-of-range coordinates
// are ignored.
func (bank *Bank[T]) SetOnePulseCooldown(bidx, cidx int, samples uint32) {
	if !bank.inBounds(bidx, cidx) {
		return
	}

	bank.cells[bidx*bank.Chans()+cidx].SetPulseCooldown(samples)
}

// SetOneReRaise sets one cell's re-raise policy. Out-of-range coordinates
// are ignored.
func (bank *Bank[T]) SetOneReRaise(bidx, cidx int, ok bool) {
	if !bank.inBounds(bidx, cidx) {
		return
	}

	bank.cells[bidx*bank.Chans()+cidx].SetReRaise(ok)
}

// OnePulseDuration returns one cell's pulse width, zero when out of range.
func (bank *Bank[T]) OnePulseDuration(bidx, cidx int) uint32 {
	if !bank.inBounds(bidx, cidx) {
		return 0
	}

	return bank.cells[bidx*bank.Chans()+cidx].PulseDuration()
}

// OnePulseCooldown returns one cell's cooldown, zero when out of range.
func (bank *Bank[T]) OnePulseCooldown(bidx, cidx int) uint32 {
	if !bank.inBounds(bidx, cidx) {
		return 0
	}

	return bank.cells[bidx*bank.Chans()+cidx].PulseCooldown()
}

// OneReRaise returns one cell's re-raise policy, false when out of range.
func (bank *Bank[T]) OneReRaise(bidx, cidx int) bool {
	if !bank.inBounds(bidx, cidx) {
		return false
	}

	return bank.cells[bidx*bank.Chans()+cidx].ReRaise()
}

// CellState returns one cell's state, Idle when out of range.
func (bank *Bank[T]) CellState(bidx, cidx int) State {
	if !bank.inBounds(bidx, cidx) {
		return Idle
	}

	return bank.cells[bidx*bank.Chans()+cidx].State()
}

func (bank *Bank[T]) inBounds(bidx, cidx int) bool {
	return bidx >= 0 && bidx < bank.Banks() && cidx >= 0 && cidx < bank.Chans()
}
