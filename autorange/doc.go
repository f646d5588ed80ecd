// SPDX-License-Identifier: MIT

// Package autorange implements the auto-ranging input preprocessor: it
// watches each channel's observed range and derives an attenuation shift
// and additive offset mapping the signal into a desired output range,
//
//	out = (in >> atten) + offset
//
// with the offset wrapping to express negative corrections.
//
// What: UpdateFromSamples tracks per-channel running minima and maxima
// and drives an optional latch countdown; when the countdown expires the
// running attenuation/offset pairs latch and stay fixed until the next
// latch request. Output can be computed against either the running pair
// (recomputed on demand) or the latched pair. Observed and desired
// bounds are halved internally so spans and middles always fit the
// sample type; the derived offset may be off by one, which is
// acceptable. Tied mode applies the maximum attenuation across channels
// to every channel so relative amplitudes survive.
//
// Why: raw inputs arrive at wildly different gains per channel. Ranging
// them into a common window first keeps the filter and estimator math in
// the same fixed-point sweet spot on every channel. Latching after a
// calibration interval makes the mapping deterministic during a run.
//
// Complexity: UpdateFromSamples is O(chans); producing running output is
// O(chans × type width) in the worst case for the attenuation scan.
//
// Errors: the constructor returns cellgrid.ErrBadExtents for a
// non-positive channel count. Nothing else fails; out-of-range channel
// indices read zero.
package autorange
