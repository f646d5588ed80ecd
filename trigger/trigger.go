// SPDX-License-Identifier: MIT

package trigger

import "github.com/katalvlaran/neuroloop/nlmath"

// Trigger is one phase-locked pulse state machine. The phase signal it
// consumes is a time-since-reference-edge count reported modulo the
// current period, so it can jump backward between calls; WaitRise
// reconstructs a monotonic value by accumulating an unwrap offset.
//
// The zero value is unusable; call Reset before first use.
type Trigger[T nlmath.Unsigned] struct {
	// Configuration, in samples.
	duration  uint32
	cooldown  uint32
	reraiseOK bool

	// Transient state.
	state        State
	timeoutLeft  uint32
	savedTarget  T
	prevSignal   T
	unwrapOffset T
}

// Reset restores the configuration defaults (duration 1, cooldown 50,
// re-raise off) and forces the cell idle.
func (tr *Trigger[T]) Reset() {
	tr.duration = DefaultPulseDuration
	tr.cooldown = DefaultPulseCooldown
	tr.reraiseOK = false

	tr.ForceIdle()
}

// ForceIdle clears the transient state and returns the cell to Idle. The
// configuration is left intact.
func (tr *Trigger[T]) ForceIdle() {
	tr.state = Idle
	tr.timeoutLeft = 0
	tr.savedTarget = 0
	tr.prevSignal = 0
	tr.unwrapOffset = 0
}

// ProcessSample steps the cell by one sample epoch and reports whether the
// pulse output is asserted (the post-call state is WaitFall). Arming
// checks budget.PulsesLeft and decrements it when a new pulse is queued;
// that is the only place the quota is consumed.
func (tr *Trigger[T]) ProcessSample(value, target, period T, detect bool, budget *Budget) bool {
	switch tr.state {
	case WaitRise:
		// Pulse queued but not yet active; wait for the signal to reach
		// the saved target. The raw value wraps at the period, so carry
		// the running unwrap offset and extend it whenever the signal
		// appears to retreat by more than half a period.
		value += tr.unwrapOffset

		if value+(period>>1) < tr.prevSignal {
			tr.unwrapOffset += period
			value += period
		}

		tr.prevSignal = value

		if value >= tr.savedTarget {
			tr.timeoutLeft = tr.duration
			tr.state = WaitFall
		}

	case WaitFall:
		// Pulse is active.
		if tr.timeoutLeft > 0 {
			tr.timeoutLeft--
		}
		if tr.timeoutLeft == 0 {
			tr.timeoutLeft = tr.cooldown
			tr.state = WaitCool
		}

	case WaitCool:
		if tr.timeoutLeft > 0 {
			tr.timeoutLeft--
		}

		// Cooled down: go idle only once detection deasserts, or
		// immediately when re-raising is allowed. A held detect flag with
		// re-raise off parks here, which is what guarantees one pulse per
		// detection episode.
		if tr.timeoutLeft == 0 && (!detect || tr.reraiseOK) {
			tr.state = Idle
		}

	default:
		// Idle. Queue a pulse if detection is asserted and quota remains.
		if detect && budget.PulsesLeft > 0 {
			budget.PulsesLeft--
			tr.state = WaitRise

			// If the signal already passed the nominal target, aim one
			// period later; calibration or detector jitter can push it
			// past even that, so check and advance a second time.
			tr.savedTarget = target
			if value >= tr.savedTarget {
				tr.savedTarget += period
			}
			if value >= tr.savedTarget {
				tr.savedTarget += period
			}

			tr.unwrapOffset = 0
			tr.prevSignal = value
		}
	}

	return tr.state == WaitFall
}

// SetPulseDuration stores the pulse width in samples, clamping below-1
// values up to 1.
func (tr *Trigger[T]) SetPulseDuration(samples uint32) {
	if samples < 1 {
		samples = 1
	}

	tr.duration = samples
}

// SetPulseCooldown stores the cooldown length in samples, clamping below-1
// values up to 1.
func (tr *Trigger[T]) SetPulseCooldown(samples uint32) {
	if samples < 1 {
		samples = 1
	}

	tr.cooldown = samples
}

// SetReRaise stores whether a continuously held detect flag may start the
// next pulse without deasserting first.
func (tr *Trigger[T]) SetReRaise(ok bool) {
	tr.reraiseOK = ok
}

// PulseDuration returns the configured pulse width in samples.
func (tr *Trigger[T]) PulseDuration() uint32 { return tr.duration }

// PulseCooldown returns the configured cooldown length in samples.
func (tr *Trigger[T]) PulseCooldown() uint32 { return tr.cooldown }

// ReRaise returns whether re-raising is allowed.
func (tr *Trigger[T]) ReRaise() bool { return tr.reraiseOK }

// State returns the current state.
func (tr *Trigger[T]) State() State { return tr.state }
