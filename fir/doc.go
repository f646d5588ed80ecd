// SPDX-License-Identifier: MIT

// Package fir implements fixed-point FIR filters and bank×channel filter
// arrays over a shared circular input history.
//
// What: a Filter holds a coefficient vector and a fractional bit depth;
// applying it accumulates coefficient·sample products over its window and
// shifts the total down by the bit depth (sign-safe under the wraparound
// encoding). Coefficients are stored oldest-first: coeff[0] multiplies
// the oldest sample of the window and the last active coefficient
// multiplies the newest.
//
// A Bank keeps one power-of-two circular history buffer per channel,
// written once per epoch and read by every bank, so banks of different
// window lengths share the same stored samples. ApplyOnce blanks the
// whole output grid, stores the new input column, advances the write
// pointer, then convolves the active rectangle using masked read-back
// indices.
//
// Why: FIR banks are the linear-phase alternative to the biquad front
// end. Sharing the input history across banks keeps the per-epoch work
// one buffer write plus the convolutions, matching a hardware
// implementation that time-multiplexes banks over one sample store.
//
// Complexity: one bank epoch is O(banks × chans) for the blanking pass
// plus O(active banks × active channels × window length) for the
// convolutions. No allocation after construction.
//
// Errors: constructors return cellgrid.ErrBadExtents for bad grid
// extents, ErrBadCoeffs for a non-positive coefficient capacity, and
// ErrBadBufLen when the history length is not a positive power of two at
// least the coefficient capacity. Per-sample paths do not return errors;
// out-of-range indices make accessors no-ops (or zero reads).
package fir
