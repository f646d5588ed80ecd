// SPDX-License-Identifier: MIT

package biquad

import "github.com/katalvlaran/neuroloop/nlmath"

// Ring buffer depth for per-stage history. A section needs three samples
// of history; four keeps the wrap a mask operation.
const (
	ringSize = 4
	ringMask = ringSize - 1
)

// Chain is a cascade of second-order sections with a runtime-adjustable
// active stage count. History lives in one small ring per stage boundary,
// including the input and output, so an epoch reads and writes single
// slots.
type Chain[T nlmath.Unsigned] struct {
	coeffs []Coeffs[T]
	rings  [][ringSize]T
	bufptr int

	stagesActive int
}

// NewChain constructs a chain with capacity for stageCount sections, all
// coefficients blank and zero stages active (input copies to output).
func NewChain[T nlmath.Unsigned](stageCount int) (*Chain[T], error) {
	if stageCount < 1 {
		return nil, ErrBadStages
	}

	return &Chain[T]{
		coeffs: make([]Coeffs[T], stageCount),
		rings:  make([][ringSize]T, stageCount+1),
	}, nil
}

// StageCount returns the chain's capacity in sections.
func (ch *Chain[T]) StageCount() int { return len(ch.coeffs) }

// ActiveStages returns the number of sections currently applied.
func (ch *Chain[T]) ActiveStages() int { return ch.stagesActive }

// SetActiveStages clamps n to [0, StageCount] and stores it. With zero
// active stages ApplyOnce copies input to output.
func (ch *Chain[T]) SetActiveStages(n int) {
	if n < 0 {
		n = 0
	} else if n > len(ch.coeffs) {
		n = len(ch.coeffs)
	}

	ch.stagesActive = n
}

// SetStageCoeffs stores one section's coefficients. Out-of-range stage
// indices are ignored.
func (ch *Chain[T]) SetStageCoeffs(stage int, co Coeffs[T]) {
	if stage < 0 || stage >= len(ch.coeffs) {
		return
	}

	ch.coeffs[stage] = co
}

// StageCoeffs returns one section's coefficients, the zero (blank) record
// when out of range.
func (ch *Chain[T]) StageCoeffs(stage int) Coeffs[T] {
	if stage < 0 || stage >= len(ch.coeffs) {
		return Coeffs[T]{}
	}

	return ch.coeffs[stage]
}

// BlankCoeffs zeroes every section's coefficients. This is a valid
// configuration with constant zero output.
func (ch *Chain[T]) BlankCoeffs() {
	for i := range ch.coeffs {
		ch.coeffs[i] = Coeffs[T]{}
	}
}

// ApplyOnce pushes one input sample through the active sections and
// returns the output sample. History only warms up as samples flow, so a
// freshly built chain takes time to stabilize; see FastSettle.
func (ch *Chain[T]) ApplyOnce(in T) T {
	ch.rings[0][ch.bufptr] = in

	// Adding the mask is adding -1 under the wrap.
	prev1 := (ch.bufptr + ringMask) & ringMask
	prev2 := (prev1 + ringMask) & ringMask

	for s := 0; s < ch.stagesActive; s++ {
		ch.rings[s+1][ch.bufptr] = ch.coeffs[s].apply(
			ch.rings[s][ch.bufptr], ch.rings[s][prev1], ch.rings[s][prev2],
			ch.rings[s+1][prev1], ch.rings[s+1][prev2])
	}

	out := ch.rings[ch.stagesActive][ch.bufptr]
	ch.bufptr = (ch.bufptr + 1) & ringMask

	return out
}

// FastSettle stuffs the history rings with values that settle quickly:
// the input ring always holds in; each section's output ring holds in
// when the matching copyInput entry is true (low-pass sections, which
// pass DC) and zero otherwise (high-pass and band-pass sections). Missing
// copyInput entries read as false.
func (ch *Chain[T]) FastSettle(in T, copyInput []bool) {
	for slot := 0; slot < ringSize; slot++ {
		ch.rings[0][slot] = in
	}

	for s := 0; s < len(ch.coeffs); s++ {
		var fill T
		if s < len(copyInput) && copyInput[s] {
			fill = in
		}

		for slot := 0; slot < ringSize; slot++ {
			ch.rings[s+1][slot] = fill
		}
	}
}
