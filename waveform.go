package apusim

import (
	"math"
	"math/rand"

	"github.com/stevenblair/sigourney/fast"

	"github.com/aerosimtech/apusim/mathfuncs"
)

const TwoPiOverThree = 2 * math.Pi / 3

func wrapAngle(a float64) float64 {
	if a > math.Pi {
		return a - 2*math.Pi
	}
	return a
}

// WaveformSynthesis produces instantaneous three-phase samples for the
// generator's AC output from its RMS potential and frequency. Optional: the
// APU publishes scalar electrical telemetry either way.
type WaveformSynthesis struct {
	// inputs
	PhaseOffset float64
	NoiseMax    float64 // per-unit Gaussian noise, relative to peak magnitude

	// magnitude modulation, e.g. to emulate bus ripple
	ModMagnitude float64 // per-unit, relative to peak magnitude
	ModPeriod    float64 // seconds
	modFuncName  string
	modFunction  mathfuncs.MathsFunction

	// internal state
	pAngle  float64
	elapsed float64

	// outputs
	A, B, C float64
}

// SetModFunctionByName selects the named magnitude modulation function.
// An empty name disables modulation.
func (w *WaveformSynthesis) SetModFunctionByName(name string) error {
	if name == "" {
		w.modFuncName = ""
		w.modFunction = nil
		return nil
	}

	modFunc, err := mathfuncs.GetMathsFunctionFromName(name)
	if err != nil {
		return err
	}
	w.modFunction = modFunc
	w.modFuncName = name
	return nil
}

// ModFuncName returns the name of the selected modulation function.
func (w *WaveformSynthesis) ModFuncName() string {
	return w.modFuncName
}

// Step advances the waveform by one sampling period Ts and computes phase
// A, B and C samples from the RMS potential in volts and frequency in
// hertz. Noise is uncorrelated across phases, the worst case for
// downstream filtering.
func (w *WaveformSynthesis) Step(r *rand.Rand, Ts, potential, frequency float64) {
	angle := wrapAngle(frequency*2*math.Pi*Ts + w.pAngle)
	w.pAngle = angle
	w.elapsed += Ts

	phase := w.PhaseOffset + w.pAngle

	mag := potential * math.Sqrt2
	if w.modFunction != nil {
		mag *= 1 + w.modFunction(w.elapsed, w.ModMagnitude, w.ModPeriod)
	}

	a := fast.Sin(phase) * mag
	b := fast.Sin(phase-TwoPiOverThree) * mag
	c := fast.Sin(phase+TwoPiOverThree) * mag

	ra := r.NormFloat64() * w.NoiseMax * mag
	rb := r.NormFloat64() * w.NoiseMax * mag
	rc := r.NormFloat64() * w.NoiseMax * mag

	w.A = a + ra
	w.B = b + rb
	w.C = c + rc
}
