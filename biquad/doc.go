// SPDX-License-Identifier: MIT

// Package biquad implements fixed-point IIR biquad filters, cascaded
// chains, and bank×channel filter arrays.
//
// What: each section is a Direct Form 1 second-order stage,
//
//	y[n] = (b0·x[n] + b1·x[n-1] + b2·x[n-2] - a1·y[n-1] - a2·y[n-2]) >> a0bits
//
// with the leading denominator coefficient constrained to a power of two
// so the normalization is a shift rather than a division. Sample types are
// the unsigned wraparound integers of nlmath; the final shift uses
// nlmath.ShrWrapped so negative encodings scale correctly.
//
// A Chain cascades up to a fixed number of stages, keeping history in
// small power-of-two ring buffers so each epoch touches one slot per
// stage. A Bank replicates chains over a bank×channel grid: coefficients
// are per-bank (every channel in a bank filters identically), state is
// per-cell, and each channel's input is replicated across banks.
//
// Why: the filter front-end shapes raw input into per-band signals before
// period estimation. Chains stabilize over time since history starts
// blank; FastSettle preloads the rings so low-pass stages start near
// their settled output instead.
//
// Complexity: one chain epoch is O(active stages); one bank epoch is
// O(active banks × active channels × active stages). No allocation after
// construction.
//
// Errors: constructors return cellgrid.ErrBadExtents for bad grid extents
// and ErrBadStages for a non-positive stage count. Per-sample paths do
// not return errors; out-of-range stage or bank indices make accessors
// no-ops (or zero reads).
package biquad
