// Package apusim emulates the operational lifecycle of an auxiliary power
// unit turbine and the electrical characteristics of the generator it
// drives. The turbine is a four-state machine whose speed and exhaust gas
// temperature follow empirical calibration curves; the generator maps
// turbine speed to potential, frequency and current with randomised
// instrument jitter. The package is a pure in-process computation library:
// the host simulation owns the update loop and supplies elapsed time,
// ambient conditions and control intent each tick.
package apusim

import "math/rand"

// APU couples the turbine state machine with the generator electrical
// model and advances both once per simulation tick. All randomness draws
// from a single seedable source so runs are reproducible.
type APU struct {
	turbine   Turbine
	generator *Generator
	waveform  *WaveformSynthesis
	r         *rand.Rand
}

// NewAPU returns an APU in the shutdown state with zero EGT. The generator
// number keys the telemetry names. The seed fixes the pseudo-random source
// used for jitter and per-instance randomised constants.
func NewAPU(generatorNumber int, seed int64) *APU {
	return &APU{
		turbine:   NewShutdownTurbine(0),
		generator: NewGenerator(generatorNumber),
		r:         rand.New(rand.NewSource(seed)),
	}
}

// AttachWaveform enables instantaneous output waveform synthesis.
func (a *APU) AttachWaveform(w *WaveformSynthesis) {
	a.waveform = w
}

// Waveform returns the attached waveform synthesis, or nil.
func (a *APU) Waveform() *WaveformSynthesis {
	return a.waveform
}

// Update advances the emulation by one tick: the turbine consumes its
// current state and hands over to its successor, then the generator
// derives its outputs from the resulting speed and publishes telemetry to
// out. A nil out skips publishing.
func (a *APU) Update(ctx UpdateContext, bleedInUse, genInUse, emergencyShutdown bool, ctrl Controller, out Writer) {
	a.turbine = a.turbine.Update(a.r, ctx, bleedInUse, genInUse, ctrl)
	a.generator.Update(a.r, ctx, a.turbine.N(), emergencyShutdown)

	if a.waveform != nil {
		a.waveform.Step(a.r, ctx.Delta.Seconds(), a.generator.Potential(), a.generator.Frequency())
	}

	if out != nil {
		a.generator.Write(out)
	}
}

// N returns the turbine speed as a percentage of rated speed.
func (a *APU) N() float64 {
	return a.turbine.N()
}

// EGT returns the exhaust gas temperature in degrees Celsius.
func (a *APU) EGT() float64 {
	return a.turbine.EGT()
}

// State returns the current turbine state tag.
func (a *APU) State() TurbineState {
	return a.turbine.State()
}

// Generator returns the generator electrical model.
func (a *APU) Generator() *Generator {
	return a.generator
}
