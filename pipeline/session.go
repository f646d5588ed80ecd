// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"

	"github.com/katalvlaran/neuroloop/analytic"
	"github.com/katalvlaran/neuroloop/autorange"
	"github.com/katalvlaran/neuroloop/cellgrid"
	"github.com/katalvlaran/neuroloop/coeffio"
	"github.com/katalvlaran/neuroloop/nlmath"
	"github.com/katalvlaran/neuroloop/threshold"
	"github.com/katalvlaran/neuroloop/trigger"
	"github.com/katalvlaran/neuroloop/voting"
)

var (
	// ErrBadColumn reports a sample column whose length differs from the
	// session's channel count.
	ErrBadColumn = errors.New("pipeline: sample column length must match channel count")
	// ErrBadRun reports an empty or ragged recorded matrix.
	ErrBadRun = errors.New("pipeline: channel vectors must be non-empty and equal length")
)

// FilterBank is the slot a Session offers its optional filter stage.
// Both the biquad and the FIR banks satisfy it: one input channel row
// fans out to per-bank filtered copies each epoch.
type FilterBank[T nlmath.Unsigned] interface {
	Banks() int
	Chans() int
	SetActive(banks, chans int)
	ApplyOnce(in, out *cellgrid.Grid[T])
}

// Session owns one complete decision chain and the scratch grids
// between its stages. Epoch order is fixed: auto-range the raw column,
// fan it out through the filter bank (when present), update the
// analytic estimators, derive high/low thresholds from the running
// magnitude average, latch detection through the hysteresis pair,
// vote a winning bank per channel, and step the trigger row on the
// winner's phase signal.
//
// A Session has a single owner. None of its methods are safe for
// concurrent use, and Step must be called exactly once per sample
// epoch.
type Session[T nlmath.Unsigned] struct {
	banks int
	chans int
	rate  int
	runID string
	epoch uint64

	filter   FilterBank[T]
	ranger   *autorange.Ranger[T]
	est      *analytic.Bank[T]
	avgHigh  *threshold.AveragerBank[T]
	avgLow   *threshold.AveragerBank[T]
	dual     *threshold.DualBank
	deglitch *threshold.DeglitcherBank
	triggers *trigger.Bank[T]

	phaseNum     T
	phaseDenBits uint

	// Scratch grids, allocated once. Stage outputs only ever flow
	// forward, so each stage may overwrite its own grid freely.
	inCol     *cellgrid.Grid[T]
	ranged    *cellgrid.Grid[T]
	filtered  *cellgrid.Grid[T]
	mags      *cellgrid.Grid[T]
	periods   *cellgrid.Grid[T]
	sinceRise *cellgrid.Grid[T]
	sinceFall *cellgrid.Grid[T]
	thrHigh   *cellgrid.Grid[T]
	thrLow    *cellgrid.Grid[T]
	activate  *cellgrid.Grid[bool]
	sustain   *cellgrid.Grid[bool]
	detect    *cellgrid.Grid[bool]
	cleaned   *cellgrid.Grid[bool]

	selections []int
	interior   []bool

	muxSignal *cellgrid.Grid[T]
	muxTarget *cellgrid.Grid[T]
	muxPeriod *cellgrid.Grid[T]
	muxDetect *cellgrid.Grid[bool]
	fires     *cellgrid.Grid[bool]
	flagsOut  []bool
}

// NewSession constructs a banks×chans decision chain with every stage
// at full active extents, triggering enabled on every cell of the
// trigger row, and a fresh run identifier. Without WithArming (or a
// later Arm call) the shared pulse budget stays empty and no pulse is
// ever emitted. Returns cellgrid.ErrBadExtents for non-positive
// extents, cellgrid.ErrExtentMismatch for a filter bank of the wrong
// shape.
func NewSession[T nlmath.Unsigned](banks, chans int, opts ...Option[T]) (*Session[T], error) {
	s := &Session[T]{
		banks:        banks,
		chans:        chans,
		runID:        coeffio.NewRunID(),
		phaseNum:     1,
		phaseDenBits: 2,
	}

	var err error
	if s.ranger, err = autorange.NewRanger[T](chans); err != nil {
		return nil, err
	}
	if s.est, err = analytic.NewBank[T](banks, chans); err != nil {
		return nil, err
	}
	if s.avgHigh, err = threshold.NewAveragerBank[T](banks, chans); err != nil {
		return nil, err
	}
	if s.avgLow, err = threshold.NewAveragerBank[T](banks, chans); err != nil {
		return nil, err
	}
	if s.dual, err = threshold.NewDualBank(banks, chans); err != nil {
		return nil, err
	}
	if s.triggers, err = trigger.NewBank[T](1, chans); err != nil {
		return nil, err
	}

	s.triggers.SetActive(1, chans)
	s.triggers.SetAllEnabled(true)
	s.triggers.SetAllPulseDurations(1)

	// Threshold defaults: settle over ~16 epochs, fire above 1.5x the
	// running magnitude average, sustain down to 0.75x.
	s.configureThresholds(6, 3, 2, 4)

	s.inCol = mustGrid[T](banks, chans)
	s.ranged = mustGrid[T](banks, chans)
	s.filtered = mustGrid[T](banks, chans)
	s.mags = mustGrid[T](banks, chans)
	s.periods = mustGrid[T](banks, chans)
	s.sinceRise = mustGrid[T](banks, chans)
	s.sinceFall = mustGrid[T](banks, chans)
	s.thrHigh = mustGrid[T](banks, chans)
	s.thrLow = mustGrid[T](banks, chans)
	s.activate = mustGrid[bool](banks, chans)
	s.sustain = mustGrid[bool](banks, chans)
	s.detect = mustGrid[bool](banks, chans)
	s.cleaned = mustGrid[bool](banks, chans)

	s.selections = make([]int, chans)
	s.interior = make([]bool, chans)

	s.muxSignal = mustGrid[T](1, chans)
	s.muxTarget = mustGrid[T](1, chans)
	s.muxPeriod = mustGrid[T](1, chans)
	s.muxDetect = mustGrid[bool](1, chans)
	s.fires = mustGrid[bool](1, chans)
	s.flagsOut = make([]bool, chans)

	for _, opt := range opts {
		if err = opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// mustGrid wraps cellgrid.New for extents already validated upstream.
func mustGrid[T any](banks, chans int) *cellgrid.Grid[T] {
	g, err := cellgrid.New[T](banks, chans)
	if err != nil {
		panic(err)
	}

	return g
}

func (s *Session[T]) configureThresholds(highCoeff, lowCoeff T, coeffBits, avgBits uint8) {
	for _, bank := range []*threshold.AveragerBank[T]{s.avgHigh, s.avgLow} {
		bank.SetUniformCoeffBits(coeffBits)
		bank.SetUniformAvgBits(avgBits)
	}

	s.avgHigh.SetUniformCoeff(highCoeff)
	s.avgLow.SetUniformCoeff(lowCoeff)
}

// ID returns the session's run identifier, "run_" followed by a UUID.
func (s *Session[T]) ID() string { return s.runID }

// Rate returns the sample rate tag, zero when never set. The chain
// itself is rate-agnostic; the tag only annotates exports.
func (s *Session[T]) Rate() int { return s.rate }

// Banks returns the bank extent of the estimation stages.
func (s *Session[T]) Banks() int { return s.banks }

// Chans returns the channel extent.
func (s *Session[T]) Chans() int { return s.chans }

// Epoch returns the number of epochs stepped since construction or the
// last Reset.
func (s *Session[T]) Epoch() uint64 { return s.epoch }

// Ranger exposes the auto-ranging front end for manual latch control.
func (s *Session[T]) Ranger() *autorange.Ranger[T] { return s.ranger }

// Estimators exposes the analytic bank for zero-level and minimum-period
// configuration beyond what the options cover.
func (s *Session[T]) Estimators() *analytic.Bank[T] { return s.est }

// Triggers exposes the trigger row for per-channel timing overrides.
func (s *Session[T]) Triggers() *trigger.Bank[T] { return s.triggers }

// Arm grants the trigger row a fresh shared budget: at most maxPulses
// pulse starts within the next windowSamples epochs.
func (s *Session[T]) Arm(windowSamples, maxPulses uint32) {
	s.triggers.EnableTriggering(windowSamples, maxPulses)
}

// Disarm empties the shared pulse budget. In-flight pulses still run to
// completion on later epochs.
func (s *Session[T]) Disarm() { s.triggers.DisableTriggering() }

// Reset returns every stateful stage to power-on condition while
// keeping all configuration: tracking and latches clear, estimators
// restart, trigger cells force to idle, the epoch counter rewinds.
// Filter bank state is the caller's to settle (FastSettle on the bank).
func (s *Session[T]) Reset() {
	s.ranger.ResetTracking()
	s.ranger.ResetLatched()
	s.est.Reset()
	s.dual.Reset()
	s.triggers.ForceIdle()
	s.epoch = 0
}

// Step runs one sample epoch: column holds one raw sample per channel.
// The returned slice reports, per channel, whether the trigger row
// emitted a pulse sample this epoch; it is reused across calls and only
// valid until the next Step.
func (s *Session[T]) Step(column []T) ([]bool, error) {
	if len(column) != s.chans {
		return nil, ErrBadColumn
	}

	for cidx, v := range column {
		s.inCol.Set(0, cidx, v)
	}

	// Front end: range the raw column, then fan out per bank.
	s.ranger.UpdateFromSamples(s.inCol)
	s.ranger.LatchedOutput(s.inCol, s.ranged)

	est := s.ranged
	if s.filter != nil {
		s.filter.ApplyOnce(s.ranged, s.filtered)
		est = s.filtered
	} else {
		// No filter: replicate the ranged column so every bank row sees
		// the same signal.
		for bidx := 1; bidx < s.banks; bidx++ {
			for cidx := 0; cidx < s.chans; cidx++ {
				s.ranged.Set(bidx, cidx, s.ranged.At(0, cidx))
			}
		}
	}

	s.est.HandleSamples(est)
	s.est.EstimatesInto(s.mags, s.periods, s.sinceRise, s.sinceFall)

	// Magnitude-relative hysteresis thresholds.
	s.avgHigh.Update(s.mags, s.thrHigh)
	s.avgLow.Update(s.mags, s.thrLow)
	threshold.TestSingle(s.mags, s.thrHigh, s.activate)
	threshold.TestSingle(s.mags, s.thrLow, s.sustain)
	s.dual.TestDual(s.activate, s.sustain, s.detect)

	detect := s.detect
	if s.deglitch != nil {
		s.deglitch.ProcessSamples(s.detect, s.cleaned)
		detect = s.cleaned
	}

	// Winner-take-all: the bank with the greatest magnitude drives each
	// channel's trigger cell.
	voting.IdentifyWinningBanks(s.mags, s.banks, s.chans, s.selections, s.interior)
	voting.SelectWinningBanks(s.sinceRise, s.muxSignal, s.selections)
	voting.SelectWinningBanks(s.periods, s.muxPeriod, s.selections)
	voting.SelectWinningBanks(detect, s.muxDetect, s.selections)

	// Phase target as a binary fraction of the winner's period.
	for cidx := 0; cidx < s.chans; cidx++ {
		s.muxTarget.Set(0, cidx, (s.muxPeriod.At(0, cidx)*s.phaseNum)>>s.phaseDenBits)
	}

	s.triggers.ProcessSamples(s.muxSignal, s.muxTarget, s.muxPeriod, s.muxDetect, s.fires)
	s.epoch++

	for cidx := 0; cidx < s.chans; cidx++ {
		s.flagsOut[cidx] = s.fires.At(0, cidx)
	}

	return s.flagsOut, nil
}

// Run replays a recorded matrix, one vector per channel, stepping the
// chain once per epoch. The result mirrors the input layout:
// fires[cidx][epoch].
func (s *Session[T]) Run(channels [][]T) ([][]bool, error) {
	if len(channels) != s.chans || len(channels[0]) == 0 {
		return nil, ErrBadRun
	}

	epochs := len(channels[0])
	for _, ch := range channels {
		if len(ch) != epochs {
			return nil, ErrBadRun
		}
	}

	out := make([][]bool, s.chans)
	for cidx := range out {
		out[cidx] = make([]bool, epochs)
	}

	column := make([]T, s.chans)
	for e := 0; e < epochs; e++ {
		for cidx := range channels {
			column[cidx] = channels[cidx][e]
		}

		flags, err := s.Step(column)
		if err != nil {
			return nil, err
		}

		for cidx, fired := range flags {
			out[cidx][e] = fired
		}
	}

	return out, nil
}
