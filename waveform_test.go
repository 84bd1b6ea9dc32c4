package apusim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaveform_RMSMatchesPotential(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	w := &WaveformSynthesis{}

	// 400 Hz sampled at 4 kHz: 4000 samples cover 400 full cycles.
	const Ts = 1. / 4000.
	var sumSquares float64
	for i := 0; i < 4000; i++ {
		w.Step(r, Ts, 115., 400.)
		sumSquares += w.A * w.A
	}
	rms := math.Sqrt(sumSquares / 4000.)

	assert.InDelta(t, 115., rms, 115.*0.03)
}

func TestWaveform_PhasesAreBalanced(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	w := &WaveformSynthesis{}

	// With no noise the three phases of a balanced system sum to zero.
	const Ts = 1. / 4000.
	for i := 0; i < 1000; i++ {
		w.Step(r, Ts, 115., 400.)
		assert.InDelta(t, 0., w.A+w.B+w.C, 5.)
	}
}

func TestWaveform_ZeroPotentialProducesZeroSamples(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	w := &WaveformSynthesis{NoiseMax: 0.01}

	for i := 0; i < 100; i++ {
		w.Step(r, 1./4000., 0., 0.)
		assert.Equal(t, 0., w.A)
		assert.Equal(t, 0., w.B)
		assert.Equal(t, 0., w.C)
	}
}

func TestWaveform_ModFunctionScalesMagnitude(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	plain := &WaveformSynthesis{}
	boosted := &WaveformSynthesis{ModMagnitude: 0.1}
	assert.NoError(t, boosted.SetModFunctionByName("flat"))
	assert.Equal(t, "flat", boosted.ModFuncName())

	const Ts = 1. / 4000.
	var maxPlain, maxBoosted float64
	for i := 0; i < 4000; i++ {
		plain.Step(r, Ts, 115., 400.)
		boosted.Step(r, Ts, 115., 400.)
		maxPlain = math.Max(maxPlain, math.Abs(plain.A))
		maxBoosted = math.Max(maxBoosted, math.Abs(boosted.A))
	}

	assert.InDelta(t, 1.1, maxBoosted/maxPlain, 0.02)
}

func TestWaveform_UnknownModFunctionErrors(t *testing.T) {
	w := &WaveformSynthesis{}

	assert.Error(t, w.SetModFunctionByName("not_a_function"))

	// An empty name disables modulation.
	assert.NoError(t, w.SetModFunctionByName(""))
	assert.Equal(t, "", w.ModFuncName())
}

func TestWrapAngle(t *testing.T) {
	assert.Equal(t, 0., wrapAngle(0.))
	assert.InDelta(t, -math.Pi+0.1, wrapAngle(math.Pi+0.1), 1e-12)
	assert.Equal(t, math.Pi, wrapAngle(math.Pi))
}
