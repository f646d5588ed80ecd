// SPDX-License-Identifier: MIT

// Package pipeline assembles the full closed-loop decision chain into a
// single synchronous per-epoch scheduler.
//
// What: a Session wires the stages end to end — auto-ranging front end,
// optional filter bank (biquad or FIR) fanning one input channel out to
// per-bank passbands, analytic magnitude/period estimation, the
// averager-fed dual-threshold detector, per-channel winner-take-all
// voting, and a phase-locked trigger row with a shared pulse budget.
// Step runs exactly one sample epoch; Run replays a recorded
// multi-channel matrix.
//
// Why: the stages are deliberately small and composable, but a real
// run always uses the same wiring. Session owns that wiring, the
// scratch grids between stages, and a per-run identifier for export
// provenance.
//
// Concurrency: none. A Session has a single owner; every stage is
// stepped exactly once per epoch in a fixed order. No goroutines or
// channels are involved, which keeps epoch timing deterministic.
//
// Complexity: Step is O(banks*chans) per epoch plus the filter cost.
//
// Errors: ErrBadColumn for sample columns that do not match the channel
// count, ErrBadRun for empty or ragged recorded matrices,
// cellgrid.ErrExtentMismatch for a filter bank whose extents disagree
// with the session's.
package pipeline
