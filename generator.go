package apusim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/aerosimtech/apusim/mathfuncs"
)

const (
	// generatorPoweredN is the turbine speed below which the generator
	// provides no output.
	generatorPoweredN = 84.

	// nominalCurrent is a fixed draw pending a fuller load model.
	nominalCurrent = 782.60
)

// Output frequency in hertz as a function of N on [84,100), fitted against
// reference spool-up telemetry. At and above 100 the governor holds 400 Hz.
var generatorFrequency = mathfuncs.Polynomial{
	1076894372064.8204,
	-118009165327.71873,
	5296044666.7118,
	-108419965.09400678,
	-36793.31899267512,
	62934.36386220135,
	-1870.5197158547767,
	31.376473743149806,
	-0.3510150716459761,
	0.002726493614147866,
	-0.00001463272647792659,
	0.00000005203375009496,
	-0.00000000011071318044,
	0.00000000000010697005,
}

// Generator models the electrical characteristics of the generator driven
// by the APU turbine, deriving potential, frequency and current from the
// turbine speed.
type Generator struct {
	number        int
	writer        *electricalStateWriter
	randomVoltage *TimedRandom

	powered   bool
	current   float64
	potential float64
	frequency float64
}

// NewGenerator returns an unpowered generator identified by number, which
// keys its telemetry names.
func NewGenerator(number int) *Generator {
	randomVoltage, err := NewTimedRandom(time.Second, []float64{114., 115., 115., 115., 115.})
	if err != nil {
		panic(err) // unreachable, the candidate set is fixed
	}

	return &Generator{
		number:        number,
		writer:        newElectricalStateWriter(fmt.Sprintf("APU_GEN_%d", number)),
		randomVoltage: randomVoltage,
	}
}

// Update derives the electrical outputs from the turbine speed for this
// tick. When unpowered, all outputs are zero.
func (g *Generator) Update(r *rand.Rand, ctx UpdateContext, n float64, emergencyShutdown bool) {
	g.randomVoltage.Update(r, ctx.Delta)

	g.powered = !emergencyShutdown && n >= generatorPoweredN

	if g.powered {
		g.current = nominalCurrent
		g.potential = g.calculatePotential(n)
		g.frequency = g.calculateFrequency(n)
	} else {
		g.current = 0
		g.potential = 0
		g.frequency = 0
	}
}

func (g *Generator) calculatePotential(n float64) float64 {
	switch {
	case n < generatorPoweredN:
		panic(fmt.Sprintf("potential is undefined for APU N below %v", generatorPoweredN))
	case n < 85.:
		return 105.
	default:
		return g.randomVoltage.CurrentValue()
	}
}

func (g *Generator) calculateFrequency(n float64) float64 {
	switch {
	case n < generatorPoweredN:
		panic(fmt.Sprintf("frequency is undefined for APU N below %v", generatorPoweredN))
	case n < 100.:
		return generatorFrequency.At(n)
	default:
		return 400.
	}
}

// Powered reports whether the generator is producing output.
func (g *Generator) Powered() bool {
	return g.powered
}

// Potential returns the output potential in volts.
func (g *Generator) Potential() float64 {
	return g.potential
}

// PotentialNormal reports whether the potential is within its normal range.
func (g *Generator) PotentialNormal() bool {
	return 110.0 <= g.potential && g.potential <= 120.0
}

// Frequency returns the output frequency in hertz.
func (g *Generator) Frequency() float64 {
	return g.frequency
}

// FrequencyNormal reports whether the frequency is within its normal range.
func (g *Generator) FrequencyNormal() bool {
	return 390.0 <= g.frequency && g.frequency <= 410.0
}

// Current returns the output current in amperes.
func (g *Generator) Current() float64 {
	return g.current
}

// Load returns the load as a percentage of rated load. Always zero until a
// load model exists.
func (g *Generator) Load() float64 {
	return 0
}

// LoadNormal reports whether the load is within its normal range.
func (g *Generator) LoadNormal() bool {
	return true
}

// Write publishes the six electrical telemetry values for this generator.
func (g *Generator) Write(out Writer) {
	g.writer.writeAlternatingWithLoad(g, out)
}
