// Package cellgrid provides the fixed-extent bank×channel containers that
// every neuroloop processing stage operates on, plus the runtime active
// sub-rectangle bookkeeping those stages share.
//
// What:
//
//   - Grid[T]: a bankCount×chanCount matrix with extents fixed at
//     construction, stored row-major (bank-major) in one flat slice.
//   - Per-cell access is defensively range-checked: out-of-range reads
//     return the zero value, out-of-range writes are no-ops. The per-sample
//     path never returns errors.
//   - Bulk operations (Fill, CopyFrom, MapCells) cover the full extents.
//     Cells outside any active rectangle keep stale values; nothing clears
//     them implicitly.
//   - Geometry: the "active banks × active channels" sub-rectangle a
//     stateful bank restricts its per-sample work to. Iteration over it is
//     bank-major, channel-minor; that order is a documented contract.
//
// Why:
//
//   - The pipeline mirrors a hardware design whose array extents are fixed
//     at build time while the processed sub-rectangle varies at run time.
//     Keeping storage fixed and tracking the active rectangle separately
//     preserves that split.
//
// Complexity:
//
//   - At/Set: O(1). Fill/CopyFrom/Clone/MapCells: O(banks×chans).
//
// Errors:
//
//   - ErrBadExtents: a constructor was given a non-positive extent.
//     Construction is the only operation that can fail.
package cellgrid
