// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/neuroloop/biquad"
	"github.com/katalvlaran/neuroloop/cellgrid"
	"github.com/katalvlaran/neuroloop/nlmath"
	"github.com/katalvlaran/neuroloop/pipeline"
)

// square builds a zero-centered square wave: the first half of each
// cycle at +amp, the second half at -amp in wraparound encoding.
func square(epochs, period int, amp uint16) []uint16 {
	out := make([]uint16, epochs)
	for i := range out {
		if i%period < period/2 {
			out[i] = amp
		} else {
			out[i] = nlmath.Negate(amp)
		}
	}

	return out
}

func TestNewSession_BadExtents(t *testing.T) {
	_, err := pipeline.NewSession[uint16](0, 4)
	assert.ErrorIs(t, err, cellgrid.ErrBadExtents)

	_, err = pipeline.NewSession[uint16](3, -1)
	assert.ErrorIs(t, err, cellgrid.ErrBadExtents)
}

func TestNewSession_FilterExtentMismatch(t *testing.T) {
	fb, err := biquad.NewBank[uint16](2, 2, 1)
	require.NoError(t, err)

	_, err = pipeline.NewSession(1, 1, pipeline.WithFilter[uint16](fb))
	assert.ErrorIs(t, err, cellgrid.ErrExtentMismatch)
}

func TestSession_Identity(t *testing.T) {
	s, err := pipeline.NewSession(2, 3, pipeline.WithSampleRate[uint16](30000))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(s.ID(), "run_"))
	assert.Equal(t, 30000, s.Rate())
	assert.Equal(t, 2, s.Banks())
	assert.Equal(t, 3, s.Chans())
	assert.Equal(t, uint64(0), s.Epoch())

	other, err := pipeline.NewSession[uint16](2, 3)
	require.NoError(t, err)
	assert.NotEqual(t, s.ID(), other.ID())
}

func TestStep_BadColumn(t *testing.T) {
	s, err := pipeline.NewSession[uint16](1, 2)
	require.NoError(t, err)

	_, err = s.Step([]uint16{1, 2, 3})
	assert.ErrorIs(t, err, pipeline.ErrBadColumn)
}

func TestRun_BadMatrix(t *testing.T) {
	s, err := pipeline.NewSession[uint16](1, 2)
	require.NoError(t, err)

	_, err = s.Run([][]uint16{{1, 2}})
	assert.ErrorIs(t, err, pipeline.ErrBadRun)

	_, err = s.Run([][]uint16{{1, 2}, {1}})
	assert.ErrorIs(t, err, pipeline.ErrBadRun)
}

func TestSession_UnarmedNeverFires(t *testing.T) {
	s, err := pipeline.NewSession(1, 1,
		pipeline.WithMinPeriods([]uint16{4}),
		pipeline.WithDeglitch[uint16](2, 2),
	)
	require.NoError(t, err)

	wave := square(60, 8, 100)
	for _, v := range wave {
		flags, serr := s.Step([]uint16{v})
		require.NoError(t, serr)
		assert.False(t, flags[0])
	}

	assert.Equal(t, uint64(60), s.Epoch())
}

// A clean square wave of period 8 settles the period estimate after a
// few cycles. Arming at a rising crossing with a quarter-cycle phase
// target then emits one pulse of the configured width, two epochs past
// the crossing, and the spent budget forbids any further pulse.
func TestSession_PhaseLockedPulse(t *testing.T) {
	s, err := pipeline.NewSession(1, 1,
		pipeline.WithMinPeriods([]uint16{4}),
		pipeline.WithTriggerTiming[uint16](2, 3, false),
		pipeline.WithPhaseTarget[uint16](1, 2),
	)
	require.NoError(t, err)

	wave := square(70, 8, 100)

	for e := 0; e < 40; e++ {
		flags, serr := s.Step([]uint16{wave[e]})
		require.NoError(t, serr)
		require.False(t, flags[0], "epoch %d: unarmed", e)
	}

	s.Arm(100, 1)

	var fired []int
	for e := 40; e < 70; e++ {
		flags, serr := s.Step([]uint16{wave[e]})
		require.NoError(t, serr)

		if flags[0] {
			fired = append(fired, e)
		}
	}

	assert.Equal(t, []int{42, 43}, fired)
	assert.Equal(t, uint64(70), s.Epoch())
}

func TestSession_RunShapeAndReset(t *testing.T) {
	fb, err := biquad.NewBank[uint16](2, 2, 1)
	require.NoError(t, err)

	s, err := pipeline.NewSession(2, 2,
		pipeline.WithFilter[uint16](fb),
		pipeline.WithMinPeriods([]uint16{4, 4}),
	)
	require.NoError(t, err)

	channels := [][]uint16{square(24, 8, 100), square(24, 6, 50)}

	out, err := s.Run(channels)
	require.NoError(t, err)

	require.Len(t, out, 2)
	for cidx := range out {
		assert.Len(t, out[cidx], 24)
		for _, fired := range out[cidx] {
			assert.False(t, fired, "no budget was ever granted")
		}
	}

	assert.Equal(t, uint64(24), s.Epoch())

	s.Reset()
	assert.Equal(t, uint64(0), s.Epoch())
}
