// SPDX-License-Identifier: MIT

package cellgrid

// Geometry tracks the runtime "active banks × active channels"
// sub-rectangle of a fixed-extent component. Storage extents never change;
// only the processed rectangle does. Iteration over the active rectangle
// is bank-major, channel-minor everywhere in this module — the order is a
// documented contract, not an implementation accident.
type Geometry struct {
	banks int
	chans int

	banksActive int
	chansActive int
}

// NewGeometry returns a Geometry with the given fixed extents and an empty
// active rectangle. Returns ErrBadExtents if either extent is non-positive.
func NewGeometry(banks, chans int) (Geometry, error) {
	if banks < 1 || chans < 1 {
		return Geometry{}, ErrBadExtents
	}

	return Geometry{banks: banks, chans: chans}, nil
}

// Banks returns the fixed bank extent.
func (geo Geometry) Banks() int { return geo.banks }

// Chans returns the fixed channel extent.
func (geo Geometry) Chans() int { return geo.chans }

// ActiveBanks returns the number of banks currently processed.
func (geo Geometry) ActiveBanks() int { return geo.banksActive }

// ActiveChans returns the number of channels currently processed.
func (geo Geometry) ActiveChans() int { return geo.chansActive }

// SetActiveBanks clamps the request into [0, bank extent] and stores it.
func (geo *Geometry) SetActiveBanks(n int) {
	if n < 0 {
		n = 0
	} else if n > geo.banks {
		n = geo.banks
	}

	geo.banksActive = n
}

// SetActiveChans clamps the request into [0, channel extent] and stores it.
func (geo *Geometry) SetActiveChans(n int) {
	if n < 0 {
		n = 0
	} else if n > geo.chans {
		n = geo.chans
	}

	geo.chansActive = n
}

// SetActive clamps and stores both active counts.
func (geo *Geometry) SetActive(banks, chans int) {
	geo.SetActiveBanks(banks)
	geo.SetActiveChans(chans)
}

// ActivateAll sets the active rectangle to the full extents.
func (geo *Geometry) ActivateAll() {
	geo.banksActive = geo.banks
	geo.chansActive = geo.chans
}

// Deactivate empties the active rectangle.
func (geo *Geometry) Deactivate() {
	geo.banksActive = 0
	geo.chansActive = 0
}
