// SPDX-License-Identifier: MIT

// Package trigger: states, shared budget, and configuration defaults.
package trigger

// State identifies where one trigger cell is in its pulse cycle. There are
// exactly four states; transitions are defined solely by
// Trigger.ProcessSample.
type State int

const (
	// Idle: no pulse queued. Arms on an asserted detect flag if quota
	// remains.
	Idle State = iota
	// WaitRise: pulse queued; unwrapping the phase signal until it reaches
	// the saved target.
	WaitRise
	// WaitFall: pulse asserted; counting down the configured duration.
	WaitFall
	// WaitCool: cooldown after a pulse; counting down before re-arming is
	// considered.
	WaitCool
)

// String returns the state name for logs and test output.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case WaitRise:
		return "WaitRise"
	case WaitFall:
		return "WaitFall"
	case WaitCool:
		return "WaitCool"
	default:
		return "Unknown"
	}
}

// Configuration defaults applied by Trigger.Reset.
const (
	// DefaultPulseDuration is the reset pulse width in samples.
	DefaultPulseDuration uint32 = 1
	// DefaultPulseCooldown is the reset cooldown length in samples.
	DefaultPulseCooldown uint32 = 50
)

// Budget is the pair of counters shared by every cell of one bank: the
// remaining pulse quota and the remaining arming-window time. It is passed
// by pointer into each cell step so the sharing is explicit in every
// signature. PulsesLeft is decremented only by a cell's Idle→WaitRise
// transition, gated on it being positive; only re-arming ever raises it.
type Budget struct {
	PulsesLeft uint32
	WindowLeft uint32
}
