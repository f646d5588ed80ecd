// Package threshold builds the detection chain that turns filtered
// magnitudes into qualified boolean detect flags.
//
// What:
//
//   - Averager / AveragerBank: first-order exponential running average with
//     a shift-based time constant (settling time about 2^avgBits samples)
//     and a fixed-point output coefficient. Used to derive adaptive
//     threshold levels from signal magnitude.
//   - Deglitcher / DeglitcherBank: boolean debouncer delaying rising and
//     falling edges by independent sample counts, suppressing brief pulses
//     and drop-outs at the cost of latency.
//   - SingleBank: per-cell comparison in >= threshold, stateless. A trivial
//     element used to build the others.
//   - DualBank: hysteresis latch combining the flags of two single-threshold
//     detectors (a high activate bound and a low sustain bound) into a
//     banked Schmitt trigger: out = activate || (prev && sustain).
//
// SingleBank and DualBank deliberately iterate the full extents rather
// than an active rectangle; they are cheap and keeping them
// geometry-free matches the hardware datapath.
//
// Why: detection must be robust against amplitude ripple (hysteresis) and
// against isolated misdetections (deglitching) while staying division-free
// and data-independent in latency.
//
// Complexity: all per-sample operations are O(cells) with O(1) work per
// cell, allocation-free.
//
// Errors: construction only (cellgrid.ErrBadExtents). Per-sample
// operations have no error channel.
package threshold
