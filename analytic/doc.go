// Package analytic estimates period and phase of a zero-mean sample stream
// by tracking zero-crossings, without division and without derived
// quantities.
//
// What:
//
//   - Estimator: a per-cell state machine fed exactly one sample per epoch.
//     It tracks the running peak magnitude, the time since the last rising
//     and falling crossings, and the latest period estimate (twice the last
//     half-period). Which crossing it awaits is implicit: a rising crossing
//     when the rise counter exceeds the fall counter, a falling crossing
//     otherwise.
//   - A crossing is accepted only when the time since the opposite edge has
//     reached the configured minimum gap (half the expected minimum
//     period). That gap is the sole defense against high-frequency noise
//     producing spurious crossings.
//   - Reading / Estimate: a pure, non-destructive read of the direct
//     measurements (magnitude, period, since-rise, since-fall). No derived
//     quantity such as instantaneous phase is computed here; callers must
//     not be able to confuse a direct low-error measurement with a derived
//     higher-error one.
//   - Bank: a bank×channel array of estimators restricted to the active
//     sub-rectangle, with per-bank minimum-period configuration.
//
// Known limitation, kept deliberately: a loud high-frequency burst arriving
// after a crossing but before the minimum gap elapses contributes to the
// next lobe's peak tracking and can corrupt that lobe's magnitude. This is
// an accepted property of the algorithm.
//
// Complexity:
//
//   - Estimator.HandleSample / Estimate: O(1), allocation-free.
//   - Bank operations: O(active banks × active channels).
//
// Errors: construction only (cellgrid.ErrBadExtents). The per-sample path
// has no error channel; out-of-range indices are ignored on write and
// return zero values on read.
package analytic
