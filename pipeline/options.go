// SPDX-License-Identifier: MIT

package pipeline

import (
	"github.com/katalvlaran/neuroloop/cellgrid"
	"github.com/katalvlaran/neuroloop/nlmath"
	"github.com/katalvlaran/neuroloop/threshold"
)

// Option configures a Session during construction.
type Option[T nlmath.Unsigned] func(*Session[T]) error

// WithSampleRate tags the session with a nominal sample rate for
// exports. The chain itself never consults it.
func WithSampleRate[T nlmath.Unsigned](rate int) Option[T] {
	return func(s *Session[T]) error {
		s.rate = rate

		return nil
	}
}

// WithFilter installs the per-bank filter stage. The bank's extents
// must match the session's; its active rectangle is set to cover them.
func WithFilter[T nlmath.Unsigned](fb FilterBank[T]) Option[T] {
	return func(s *Session[T]) error {
		if fb.Banks() != s.banks || fb.Chans() != s.chans {
			return cellgrid.ErrExtentMismatch
		}

		fb.SetActive(s.banks, s.chans)
		s.filter = fb

		return nil
	}
}

// WithThresholdRatios tunes the magnitude-relative hysteresis pair.
// The activate threshold tracks (average * highCoeff) >> coeffBits and
// the sustain threshold (average * lowCoeff) >> coeffBits; the average
// settles over roughly 2^avgBits epochs.
func WithThresholdRatios[T nlmath.Unsigned](highCoeff, lowCoeff T, coeffBits, avgBits uint8) Option[T] {
	return func(s *Session[T]) error {
		s.configureThresholds(highCoeff, lowCoeff, coeffBits, avgBits)

		return nil
	}
}

// WithPhaseTarget sets the stimulation phase as a binary fraction of
// the winning bank's period: target = (period * num) >> denBits. The
// default num=1, denBits=2 locks a quarter cycle past the rising
// zero crossing.
func WithPhaseTarget[T nlmath.Unsigned](num T, denBits uint) Option[T] {
	return func(s *Session[T]) error {
		s.phaseNum = num
		s.phaseDenBits = denBits

		return nil
	}
}

// WithTriggerTiming applies one pulse shape to every trigger cell:
// pulse duration and cooldown in epochs, and whether a held detection
// may start a new pulse the moment cooldown expires.
func WithTriggerTiming[T nlmath.Unsigned](duration, cooldown uint32, reRaise bool) Option[T] {
	return func(s *Session[T]) error {
		s.triggers.SetAllPulseDurations(duration)
		s.triggers.SetAllPulseCooldowns(cooldown)
		s.triggers.SetAllReRaise(reRaise)

		return nil
	}
}

// WithArming grants an initial shared pulse budget, equivalent to an
// Arm call before the first epoch.
func WithArming[T nlmath.Unsigned](windowSamples, maxPulses uint32) Option[T] {
	return func(s *Session[T]) error {
		s.triggers.EnableTriggering(windowSamples, maxPulses)

		return nil
	}
}

// WithAutorange tunes the front end: the desired output band, how many
// epochs of observation to fold before latching attenuation and offset,
// and whether all channels share the strongest attenuation.
func WithAutorange[T nlmath.Unsigned](newMin, newMax T, latchAfter uint32, tied bool) Option[T] {
	return func(s *Session[T]) error {
		s.ranger.SetDesiredRange(newMin, newMax)
		s.ranger.SetTied(tied)
		s.ranger.LatchAfter(latchAfter)

		return nil
	}
}

// WithDeglitch inserts a debounce stage after the hysteresis detector:
// a detection must hold riseDelay epochs before it passes, and must
// stay clear fallDelay epochs before it drops.
func WithDeglitch[T nlmath.Unsigned](riseDelay, fallDelay uint32) Option[T] {
	return func(s *Session[T]) error {
		bank, err := threshold.NewDeglitcherBank(s.banks, s.chans)
		if err != nil {
			return err
		}

		bank.SetUniformDelays(riseDelay, fallDelay)
		s.deglitch = bank

		return nil
	}
}

// WithMinPeriods applies one minimum oscillation period per bank to the
// analytic estimators, rejecting sub-period glitch crossings.
func WithMinPeriods[T nlmath.Unsigned](periods []T) Option[T] {
	return func(s *Session[T]) error {
		s.est.SetMinPeriods(periods)

		return nil
	}
}

// WithZeroLevel applies one zero-crossing reference level to every
// estimator cell. Mid-scale encoded inputs want 1 << (depth-1).
func WithZeroLevel[T nlmath.Unsigned](zero T) Option[T] {
	return func(s *Session[T]) error {
		for bidx := 0; bidx < s.banks; bidx++ {
			for cidx := 0; cidx < s.chans; cidx++ {
				s.est.SetOneZeroLevel(bidx, cidx, zero)
			}
		}

		return nil
	}
}
