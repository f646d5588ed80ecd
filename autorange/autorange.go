// SPDX-License-Identifier: MIT

package autorange

import (
	"github.com/katalvlaran/neuroloop/cellgrid"
	"github.com/katalvlaran/neuroloop/nlmath"
)

// Ranger tracks per-channel input ranges and maps samples into a desired
// range via attenuation shifts and wrapping offsets. Channel vectors are
// read and written on bank row 0 of the supplied grids.
type Ranger[T nlmath.Unsigned] struct {
	chans int

	minSeen []T
	maxSeen []T

	runningAtten  []uint
	runningOffset []T
	latchedAtten  []uint
	latchedOffset []T

	halfSpanWanted T
	midWanted      T

	tied bool

	countdownActive bool
	latchCountdown  uint32
}

// NewRanger constructs a ranger for chans channels with the full type
// range as the desired range, tracking reset, and do-nothing latched
// values.
func NewRanger[T nlmath.Unsigned](chans int) (*Ranger[T], error) {
	if chans < 1 {
		return nil, cellgrid.ErrBadExtents
	}

	rg := &Ranger[T]{
		chans:         chans,
		minSeen:       make([]T, chans),
		maxSeen:       make([]T, chans),
		runningAtten:  make([]uint, chans),
		runningOffset: make([]T, chans),
		latchedAtten:  make([]uint, chans),
		latchedOffset: make([]T, chans),
	}

	rg.SetDesiredRange(nlmath.MinOf[T](), nlmath.MaxOf[T]())
	rg.ResetTracking()
	rg.ResetLatched()

	return rg, nil
}

// Chans returns the channel count.
func (rg *Ranger[T]) Chans() int { return rg.chans }

// SetDesiredRange stores the target output range. Bounds are halved
// before use so the middle and span always fit the type; the resulting
// offsets may be off by one.
func (rg *Ranger[T]) SetDesiredRange(newMin, newMax T) {
	newMin >>= 1
	newMax >>= 1

	if newMax < newMin {
		newMax = newMin
	}

	// (A/2 + B/2) keeps the middle in range.
	rg.midWanted = newMin + newMax
	rg.halfSpanWanted = newMax - newMin
}

// SetTied selects tied mode: every channel attenuates by the maximum
// attenuation over channels, preserving relative amplitudes. Offsets
// stay per-channel.
func (rg *Ranger[T]) SetTied(tied bool) { rg.tied = tied }

// Tied reports whether tied mode is selected.
func (rg *Ranger[T]) Tied() bool { return rg.tied }

// ResetTracking restarts min/max observation: each channel's observed
// minimum becomes the type maximum and vice versa, so any sample updates
// both.
func (rg *Ranger[T]) ResetTracking() {
	for cidx := 0; cidx < rg.chans; cidx++ {
		rg.minSeen[cidx] = nlmath.MaxOf[T]()
		rg.maxSeen[cidx] = nlmath.MinOf[T]()
	}
}

// ResetLatched sets the latched attenuations and offsets to do-nothing
// values (identity mapping).
func (rg *Ranger[T]) ResetLatched() {
	for cidx := 0; cidx < rg.chans; cidx++ {
		rg.latchedAtten[cidx] = 0
		rg.latchedOffset[cidx] = 0
	}
}

// LatchAfter queues a latch: after sampCount further updates the running
// attenuation/offset pairs are captured as the latched pairs.
func (rg *Ranger[T]) LatchAfter(sampCount uint32) {
	rg.latchCountdown = sampCount
	rg.countdownActive = true
}

// Latching reports whether a queued latch is still pending.
func (rg *Ranger[T]) Latching() bool { return rg.countdownActive }

// UpdateFromSamples folds one input column into the observed ranges and
// advances the latch countdown. Output computation never updates state;
// this is the only method that does.
func (rg *Ranger[T]) UpdateFromSamples(in *cellgrid.Grid[T]) {
	for cidx := 0; cidx < rg.chans; cidx++ {
		val := in.At(0, cidx)

		if val < rg.minSeen[cidx] {
			rg.minSeen[cidx] = val
		}
		if val > rg.maxSeen[cidx] {
			rg.maxSeen[cidx] = val
		}
	}

	if !rg.countdownActive {
		return
	}

	if rg.latchCountdown > 0 {
		rg.latchCountdown--

		return
	}

	rg.countdownActive = false

	rg.recalc()
	copy(rg.latchedOffset, rg.runningOffset)
	copy(rg.latchedAtten, rg.runningAtten)
}

// RunningOutput writes the ranged input column using freshly recomputed
// attenuations and offsets. State is not updated.
func (rg *Ranger[T]) RunningOutput(in, out *cellgrid.Grid[T]) {
	rg.calcOutput(in, out, false)
}

// LatchedOutput writes the ranged input column using the latched
// attenuations and offsets. State is not updated.
func (rg *Ranger[T]) LatchedOutput(in, out *cellgrid.Grid[T]) {
	rg.calcOutput(in, out, true)
}

// MinSeen returns one channel's observed minimum, zero when out of range.
func (rg *Ranger[T]) MinSeen(cidx int) T {
	if cidx < 0 || cidx >= rg.chans {
		return 0
	}

	return rg.minSeen[cidx]
}

// MaxSeen returns one channel's observed maximum, zero when out of range.
func (rg *Ranger[T]) MaxSeen(cidx int) T {
	if cidx < 0 || cidx >= rg.chans {
		return 0
	}

	return rg.maxSeen[cidx]
}

// RunningAttenOffset recomputes and returns one channel's running
// attenuation and offset, zeros when out of range.
func (rg *Ranger[T]) RunningAttenOffset(cidx int) (atten uint, offset T) {
	if cidx < 0 || cidx >= rg.chans {
		return 0, 0
	}

	rg.recalc()

	return rg.runningAtten[cidx], rg.runningOffset[cidx]
}

// LatchedAttenOffset returns one channel's latched attenuation and
// offset, zeros when out of range.
func (rg *Ranger[T]) LatchedAttenOffset(cidx int) (atten uint, offset T) {
	if cidx < 0 || cidx >= rg.chans {
		return 0, 0
	}

	return rg.latchedAtten[cidx], rg.latchedOffset[cidx]
}

// SetLatchedAttenOffset manually latches one channel's attenuation and
// offset. Out-of-range channels are ignored.
func (rg *Ranger[T]) SetLatchedAttenOffset(cidx int, atten uint, offset T) {
	if cidx < 0 || cidx >= rg.chans {
		return
	}

	rg.latchedAtten[cidx] = atten
	rg.latchedOffset[cidx] = offset
}

// recalc rebuilds the running attenuation and offset for every channel
// from the observed ranges.
func (rg *Ranger[T]) recalc() {
	for cidx := 0; cidx < rg.chans; cidx++ {
		lo := rg.minSeen[cidx]
		hi := rg.maxSeen[cidx]

		// Before any sample arrives the observed bounds are inverted.
		if hi < lo {
			hi = lo
		}

		// Halve the bounds so span and middle stay representable.
		lo >>= 1
		hi >>= 1

		mid := lo + hi
		halfSpan := hi - lo

		var atten uint
		for halfSpan > rg.halfSpanWanted {
			atten++
			halfSpan >>= 1
		}

		rg.runningAtten[cidx] = atten

		mid >>= atten
		// Wrapping subtraction expresses negative offsets.
		rg.runningOffset[cidx] = rg.midWanted - mid
	}
}

func (rg *Ranger[T]) calcOutput(in, out *cellgrid.Grid[T], useLatched bool) {
	if !useLatched {
		rg.recalc()
	}

	attens := rg.runningAtten
	offsets := rg.runningOffset
	if useLatched {
		attens = rg.latchedAtten
		offsets = rg.latchedOffset
	}

	var groupAtten uint
	for cidx := 0; cidx < rg.chans; cidx++ {
		if attens[cidx] > groupAtten {
			groupAtten = attens[cidx]
		}
	}

	for cidx := 0; cidx < rg.chans; cidx++ {
		atten := attens[cidx]
		if rg.tied {
			atten = groupAtten
		}

		out.Set(0, cidx, (in.At(0, cidx)>>atten)+offsets[cidx])
	}
}
