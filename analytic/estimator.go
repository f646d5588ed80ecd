// SPDX-License-Identifier: MIT

package analytic

import "github.com/katalvlaran/neuroloop/nlmath"

// Reading holds the direct measurements of one estimator cell. All
// durations are in samples. Derived quantities (instantaneous phase and the
// like) are intentionally absent; compute them at the call site where the
// extra error is visible.
type Reading[T nlmath.Unsigned] struct {
	// Mag is the peak magnitude of the last completed lobe.
	Mag T
	// Period is the latest period estimate: twice the last half-period.
	Period T
	// SinceRise is the sample count since the last rising zero-crossing.
	SinceRise T
	// SinceFall is the sample count since the last falling zero-crossing.
	SinceFall T
}

// Estimator tracks zero-crossings of a single zero-mean sample stream.
// Samples are unsigned with wraparound encoding negative excursions; the
// stream is expected to be pre-centered near zero by upstream band-pass
// filtering. HandleSample must be called exactly once per input sample, in
// strict time order, with no gaps.
//
// The zero value is unusable; call Reset before first use.
type Estimator[T nlmath.Unsigned] struct {
	// Configuration.
	zeroLevel T
	minGap    T

	// Transient state.
	maxMagSeen T
	lastMag    T
	lastPeriod T
	sinceRise  T
	sinceFall  T
}

// Reset clears all transient state and reinitializes the configuration:
// zero level 0, minimum gap set to the type maximum so no crossing is ever
// accepted until SetMinPeriod configures a real bound.
func (est *Estimator[T]) Reset() {
	est.zeroLevel = 0
	est.minGap = nlmath.MaxOf[T]()

	est.maxMagSeen = 0
	est.lastMag = 0
	est.lastPeriod = 0
	est.sinceRise = 0
	est.sinceFall = 0
}

// SetMinPeriod stores half the given period as the minimum gap between
// opposite-direction crossings. Configure this substantially below the
// input signal's actual minimum period.
func (est *Estimator[T]) SetMinPeriod(period T) {
	est.minGap = period >> 1
}

// SetZeroLevel stores the level subtracted from every incoming sample.
// Subtraction wraps around, which correctly encodes negative excursions.
func (est *Estimator[T]) SetZeroLevel(zero T) {
	est.zeroLevel = zero
}

// HandleSample steps the estimator by one sample epoch.
func (est *Estimator[T]) HandleSample(sample T) {
	est.sinceRise++
	est.sinceFall++

	// Level-shift to zero-centered; unsigned wraparound is intentional.
	sample -= est.zeroLevel

	isNegative := nlmath.IsNeg(sample)
	mag := nlmath.Magnitude(sample)

	// Samples arriving after a crossing but before the minimum gap elapses
	// still land here, so a loud high-frequency burst in that window can
	// perturb the next lobe's peak. Accepted behavior.
	if mag > est.maxMagSeen {
		est.maxMagSeen = mag
	}

	if est.sinceRise > est.sinceFall {
		// Negative lobe; awaiting a rising crossing.
		if !isNegative && est.sinceFall >= est.minGap {
			est.lastPeriod = (est.sinceRise - est.sinceFall) << 1
			est.lastMag = est.maxMagSeen
			est.maxMagSeen = mag
			est.sinceRise = 0
		}
	} else {
		// Positive lobe; awaiting a falling crossing.
		if isNegative && est.sinceRise >= est.minGap {
			est.lastPeriod = (est.sinceFall - est.sinceRise) << 1
			est.lastMag = est.maxMagSeen
			est.maxMagSeen = mag
			est.sinceFall = 0
		}
	}
}

// Estimate returns the current direct measurements without mutating any
// state.
func (est *Estimator[T]) Estimate() Reading[T] {
	return Reading[T]{
		Mag:       est.lastMag,
		Period:    est.lastPeriod,
		SinceRise: est.sinceRise,
		SinceFall: est.sinceFall,
	}
}
