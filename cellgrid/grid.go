// SPDX-License-Identifier: MIT

package cellgrid

// Grid is a fixed-extent bank×channel matrix of T. Extents are decided at
// construction and never change; cells are stored bank-major in one flat
// backing slice. Per-cell access is defensively range-checked so the
// per-sample path never needs an error channel: out-of-range reads return
// the zero value and out-of-range writes are no-ops.
type Grid[T any] struct {
	banks int
	chans int
	cells []T
}

// New constructs a banks×chans grid with all cells holding the zero value.
// Returns ErrBadExtents if either extent is non-positive.
// Complexity: O(banks×chans).
func New[T any](banks, chans int) (*Grid[T], error) {
	if banks < 1 || chans < 1 {
		return nil, ErrBadExtents
	}

	return &Grid[T]{
		banks: banks,
		chans: chans,
		cells: make([]T, banks*chans),
	}, nil
}

// Banks returns the bank extent.
// Complexity: O(1).
func (g *Grid[T]) Banks() int { return g.banks }

// Chans returns the channel extent.
// Complexity: O(1).
func (g *Grid[T]) Chans() int { return g.chans }

// InBounds reports whether (bank, chan) addresses a real cell.
// Complexity: O(1).
func (g *Grid[T]) InBounds(bank, ch int) bool {
	return bank >= 0 && bank < g.banks && ch >= 0 && ch < g.chans
}

// At returns the value at (bank, chan), or the zero value if the coordinate
// is out of range.
// Complexity: O(1).
func (g *Grid[T]) At(bank, ch int) T {
	if !g.InBounds(bank, ch) {
		var zero T

		return zero
	}

	return g.cells[bank*g.chans+ch]
}

// Set stores v at (bank, chan). Out-of-range coordinates are ignored.
// Complexity: O(1).
func (g *Grid[T]) Set(bank, ch int, v T) {
	if !g.InBounds(bank, ch) {
		return
	}

	g.cells[bank*g.chans+ch] = v
}

// Fill assigns v to every cell, active or not.
// Complexity: O(banks×chans).
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// CopyFrom copies every cell of src into g. The extents must match;
// returns ErrExtentMismatch otherwise.
// Complexity: O(banks×chans).
func (g *Grid[T]) CopyFrom(src *Grid[T]) error {
	if src == nil || src.banks != g.banks || src.chans != g.chans {
		return ErrExtentMismatch
	}

	copy(g.cells, src.cells)

	return nil
}

// Clone returns an independent copy of g with identical extents and cells.
// Complexity: O(banks×chans).
func (g *Grid[T]) Clone() *Grid[T] {
	dup := &Grid[T]{
		banks: g.banks,
		chans: g.chans,
		cells: make([]T, len(g.cells)),
	}
	copy(dup.cells, g.cells)

	return dup
}

// MapCells applies fn to every cell of the full extents, replacing each
// cell with the returned value. The visit order is bank-major,
// channel-minor.
// Complexity: O(banks×chans).
func (g *Grid[T]) MapCells(fn func(bank, ch int, v T) T) {
	for bidx := 0; bidx < g.banks; bidx++ {
		for cidx := 0; cidx < g.chans; cidx++ {
			i := bidx*g.chans + cidx
			g.cells[i] = fn(bidx, cidx, g.cells[i])
		}
	}
}

// RemapBanks fills g from src, routing each destination bank from the
// source bank named by banklut. A lookup index outside the source's bank
// range clamps to the nearest valid bank; a destination bank beyond the
// lookup table keeps routing from the table's last entry, or bank 0 when
// the table is empty. Channels map one to one up to the smaller channel
// extent.
// Complexity: O(banks×chans).
func (g *Grid[T]) RemapBanks(src *Grid[T], banklut []int) {
	if src == nil {
		return
	}

	chans := g.chans
	if src.chans < chans {
		chans = src.chans
	}

	for bidx := 0; bidx < g.banks; bidx++ {
		srcbank := 0
		switch {
		case bidx < len(banklut):
			srcbank = banklut[bidx]
		case len(banklut) > 0:
			srcbank = banklut[len(banklut)-1]
		}

		if srcbank < 0 {
			srcbank = 0
		} else if srcbank >= src.banks {
			srcbank = src.banks - 1
		}

		for cidx := 0; cidx < chans; cidx++ {
			g.cells[bidx*g.chans+cidx] = src.cells[srcbank*src.chans+cidx]
		}
	}
}
