package threshold_test

import (
	"testing"

	"github.com/katalvlaran/neuroloop/cellgrid"
	"github.com/katalvlaran/neuroloop/threshold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoolGrid(t *testing.T, banks, chans int) *cellgrid.Grid[bool] {
	t.Helper()
	g, err := cellgrid.New[bool](banks, chans)
	require.NoError(t, err)

	return g
}

func newGrid(t *testing.T, banks, chans int) *cellgrid.Grid[uint32] {
	t.Helper()
	g, err := cellgrid.New[uint32](banks, chans)
	require.NoError(t, err)

	return g
}

// TestAverager_Convergence verifies that the exponential average settles
// toward a constant input within a few time constants.
func TestAverager_Convergence(t *testing.T) {
	var avg threshold.Averager[uint32]
	avg.SetAvgBits(4) // settling time about 16 samples
	avg.SetCoeff(1)
	avg.SetCoeffBits(0)

	var out uint32
	for i := 0; i < 200; i++ {
		out = avg.Update(1000)
	}

	assert.InDelta(t, 1000, int(out), 1, "average settles to the input level")
}

// TestAverager_Init verifies that preloading suppresses the startup
// transient entirely.
func TestAverager_Init(t *testing.T) {
	var avg threshold.Averager[uint32]
	avg.SetAvgBits(6)
	avg.SetCoeff(1)
	avg.SetCoeffBits(0)
	avg.Init(500)

	out := avg.Update(500)
	assert.Equal(t, uint32(500), out, "preloaded average starts at the input level")
}

// TestAverager_CoeffScaling verifies fixed-point output scaling: with
// coeff=3 and coeffBits=1 the output is 1.5x the average.
func TestAverager_CoeffScaling(t *testing.T) {
	var avg threshold.Averager[uint32]
	avg.SetAvgBits(0) // track the input directly
	avg.SetCoeff(3)
	avg.SetCoeffBits(1)
	avg.Init(0)

	out := avg.Update(100)
	assert.Equal(t, uint32(150), out)
}

// TestAveragerBank_ActiveRectangle verifies geometry-restricted updates.
func TestAveragerBank_ActiveRectangle(t *testing.T) {
	bank, err := threshold.NewAveragerBank[uint32](2, 2)
	require.NoError(t, err)
	bank.SetUniformCoeff(1)
	bank.SetUniformAvgBits(0)
	bank.SetActive(1, 2)

	in := newGrid(t, 2, 2)
	out := newGrid(t, 2, 2)
	in.Fill(250)
	bank.Update(in, out)

	assert.Equal(t, uint32(250), out.At(0, 0))
	assert.Equal(t, uint32(250), out.At(0, 1))
	assert.Equal(t, uint32(0), out.At(1, 0), "inactive cells never write their output")
}

// TestDeglitcher_EdgeTiming verifies that edges must persist through the
// configured delay before the output moves.
func TestDeglitcher_EdgeTiming(t *testing.T) {
	var dg threshold.Deglitcher
	dg.SetDelays(3, 2)

	// Countdowns start cleared, so the first edge after configuration
	// passes immediately.
	assert.True(t, dg.ProcessSample(true))

	// A one-sample drop-out is shorter than the fall delay and must hold.
	assert.True(t, dg.ProcessSample(false))
	assert.True(t, dg.ProcessSample(true))

	// A persistent low appears only after the fall delay is exhausted.
	got := make([]bool, 0, 6)
	for i := 0; i < 4; i++ {
		got = append(got, dg.ProcessSample(false))
	}
	assert.Equal(t, []bool{true, true, false, false}, got)

	// A two-sample pulse is shorter than the rise delay and must vanish.
	assert.False(t, dg.ProcessSample(true))
	assert.False(t, dg.ProcessSample(true))
	assert.False(t, dg.ProcessSample(false))

	// A persistent high appears only after the rise delay is exhausted.
	got = got[:0]
	for i := 0; i < 6; i++ {
		got = append(got, dg.ProcessSample(true))
	}
	assert.Equal(t, []bool{false, false, false, true, true, true}, got)
}

// TestDeglitcherBank verifies the banked form and per-cell configuration.
func TestDeglitcherBank(t *testing.T) {
	bank, err := threshold.NewDeglitcherBank(1, 2)
	require.NoError(t, err)
	bank.SetUniformDelays(0, 0)
	bank.SetOneDelays(0, 1, 5, 0)

	in := newBoolGrid(t, 1, 2)
	out := newBoolGrid(t, 1, 2)

	// A low epoch first, so the delayed cell's rise countdown is armed.
	in.Fill(false)
	bank.ProcessSamples(in, out)

	in.Fill(true)
	bank.ProcessSamples(in, out)

	assert.True(t, out.At(0, 0), "zero-delay cell tracks immediately")
	assert.False(t, out.At(0, 1), "delayed cell holds low")
}

// TestSingle verifies the stateless comparison over the full extents.
func TestSingle(t *testing.T) {
	in := newGrid(t, 2, 2)
	thresholds := newGrid(t, 2, 2)
	out := newBoolGrid(t, 2, 2)

	in.Set(0, 0, 10)
	in.Set(0, 1, 5)
	in.Set(1, 0, 5)
	thresholds.Fill(5)

	threshold.TestSingle(in, thresholds, out)

	assert.True(t, out.At(0, 0), "above threshold")
	assert.True(t, out.At(0, 1), "equal counts as detected")
	assert.True(t, out.At(1, 0))
	assert.False(t, out.At(1, 1), "below threshold")
}

// TestDualBank_Hysteresis verifies the Schmitt-trigger latch sequence:
// activate starts an event, sustain alone holds it, neither ends it.
func TestDualBank_Hysteresis(t *testing.T) {
	bank, err := threshold.NewDualBank(1, 1)
	require.NoError(t, err)

	activate := newBoolGrid(t, 1, 1)
	sustain := newBoolGrid(t, 1, 1)
	out := newBoolGrid(t, 1, 1)

	step := func(act, sus bool) bool {
		activate.Set(0, 0, act)
		sustain.Set(0, 0, sus)
		bank.TestDual(activate, sustain, out)

		return out.At(0, 0)
	}

	assert.False(t, step(false, true), "sustain alone cannot start an event")
	assert.True(t, step(true, true), "activate starts the event")
	assert.True(t, step(false, true), "sustain holds the event")
	assert.False(t, step(false, false), "losing sustain ends the event")
	assert.False(t, step(false, true), "sustain alone cannot restart it")

	// Reset clears the latch mid-event.
	assert.True(t, step(true, true))
	bank.Reset()
	assert.False(t, step(false, true), "reset cleared the latch")
}
