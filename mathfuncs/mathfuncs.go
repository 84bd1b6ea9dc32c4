package mathfuncs

import (
	"errors"
	"math"
	"math/rand"

	"github.com/stevenblair/sigourney/fast"
)

// A mathematical function y=f(t,A,T). Takes amplitude, A, and period, T,
// as inputs and returns the value of the function at time, t.
type MathsFunction func(t, A, T float64) float64

// A map between string name and MathsFunction pairs
var mathsFunctions = map[string]MathsFunction{
	"linear":            linearRamp,
	"sine":              sineWave,
	"cosine":            cosineWave,
	"exponential_decay": exponentialDecay,
	"flat":              flat,
	"random_noise":      randomNoise,
	"gaussian_noise":    gaussianNoise,
}

func GetMathsFunctionNames() []string {
	names := make([]string, 0, len(mathsFunctions))
	for name := range mathsFunctions {
		names = append(names, name)
	}
	return names
}

// Returns the named maths function. Errors if the name is unknown.
func GetMathsFunctionFromName(name string) (MathsFunction, error) {
	mathsFunc, ok := mathsFunctions[name]
	if !ok {
		return nil, errors.New("maths function not found")
	}

	return mathsFunc, nil
}

// Returns a linear ramp y=(A/T)*t where A is the magnitude of the ramp, T is
// its duration, and t is elapsed time.
func linearRamp(t, A, T float64) float64 {
	m := A / T // slope of the ramp
	return m * t
}

// Returns a sine wave y=A*sin(2*pi*t/T) where A is the amplitude,
// T is the period, and t is elapsed time.
func sineWave(t, A, T float64) float64 {
	return A * fast.Sin(2*math.Pi*t/T)
}

// Returns a cosine wave y=A*cos(2*pi*t/T) where A is the amplitude,
// T is the period, and t is elapsed time.
func cosineWave(t, A, T float64) float64 {
	return A * fast.Cos(2*math.Pi*t/T)
}

// Returns an exponential decay y=A*exp(-t/T) where A is the amplitude,
// T is the time constant, and t is elapsed time.
func exponentialDecay(t, A, T float64) float64 {
	return A * math.Exp(-t/T)
}

// flat returns a constant value equal to A (amplitude),
// independent of time t or period T.
func flat(t, A, T float64) float64 {
	return A
}

// Returns additional random (uniform) noise of amplitude A.
func randomNoise(_, A, _ float64) float64 {
	return A * (rand.Float64()*2 - 1) // A random number between -A and A
}

// Returns additional Gaussian noise of amplitude A.
func gaussianNoise(_, A, _ float64) float64 {
	return rand.NormFloat64() * A
}
