// Package voting selects, per channel, which frequency band's measurements
// are authoritative, using winner-take-all comparison with documented
// tie-breaking.
//
// What:
//
//   - IdentifyWinningBanks: per-channel argmax over the active banks with a
//     strictly-greater comparison, so the lowest-indexed band wins ties.
//     Each winner also carries an "interior winner" flag, false exactly
//     when the winner is the first or last active bank — a boundary winner
//     suggests a search-edge artifact rather than a genuine local peak.
//   - SelectWinningBanks: per-channel multiplexer routing the selected
//     bank's value into a one-bank destination row. An out-of-range
//     selection defaults to bank 0.
//   - ConditionallyLatchNew: per-cell conditional overwrite, replacing a
//     cell exactly when its latch flag equals the replace flag. Used to
//     commit only the cells whose vote changed.
//
// All three are free functions over cellgrid values with no internal
// state.
//
// Complexity: O(active banks × active channels) for the argmax,
// O(cells) for the mux and the latch. Allocation-free.
//
// Errors: none. Out-of-range selections default to bank 0; requested
// active counts clamp down to the source extents.
package voting
