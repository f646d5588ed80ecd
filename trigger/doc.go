// Package trigger implements the phase-locked pulse state machine that
// turns qualified detections into precisely timed stimulation pulses under
// a shared pulse budget.
//
// What:
//
//   - Trigger: one four-state machine per cell (Idle, WaitRise, WaitFall,
//     WaitCool). Arming consumes one unit of the shared quota, saves a
//     phase target (advanced by up to two periods if the signal already
//     passed it), and then unwraps the modulo-period phase signal until the
//     target is reached. The pulse asserts for the configured duration,
//     cools down for the configured cooldown, and returns to Idle only
//     once the detect flag deasserts — unless re-raise is allowed, in
//     which case a held flag may start the next pulse immediately.
//   - Budget: the two counters shared by every cell of one bank — pulses
//     remaining and arming-window time remaining. It is passed explicitly
//     into every cell step; there is no ambient shared state.
//   - Bank: the bank×channel array of cells with per-cell enable flags.
//     Cells are stepped bank-major, channel-minor; that order decides which
//     cell wins the last unit of quota when several arm in the same epoch,
//     and is therefore part of the observable contract. A disabled cell is
//     not stepped at all: its timers freeze and its output is forced
//     false; re-enabling resumes the frozen state exactly.
//
// Why:
//
//   - Stimulation budgets are a safety property. Keeping the quota and
//     window in one place per bank, mutated only by cell arming and by
//     explicit re-arming, makes the budget auditable: quota only ever
//     decreases during a window, and window expiry stops new pulses while
//     letting in-flight pulses complete on their own timers.
//
// Complexity: one cell step is O(1); Bank.ProcessSamples is
// O(active banks × active channels). Allocation-free.
//
// Errors: construction only (cellgrid.ErrBadExtents). Durations and
// cooldowns below 1 clamp to 1; out-of-range cell indices are ignored on
// write and return defaults on read.
package trigger
