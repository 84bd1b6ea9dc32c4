package apusim

import (
	"math"
	"math/rand"
	"time"

	"github.com/aerosimtech/apusim/mathfuncs"
)

const ambientCoefficient = 1.0

// TowardsTargetTemperature moves current towards target with a rate
// proportional to the remaining difference (a first-order lag), clamped so
// the result never overshoots the target.
func TowardsTargetTemperature(current, target, coefficient float64, delta time.Duration) float64 {
	diff := target - current
	step := diff * coefficient * delta.Seconds()
	if math.Abs(step) >= math.Abs(diff) {
		return target
	}
	return current + step
}

func calculateTowardsAmbientEGT(egt float64, ctx UpdateContext) float64 {
	return TowardsTargetTemperature(egt, ctx.AmbientTemperature, ambientCoefficient, ctx.Delta)
}

// Approach rate of the bleed-air EGT delta in degrees Celsius per second as
// a function of the remaining distance to target. Loosely fitted against
// bleed-on reference telemetry; the rate falls off as the offset closes in
// on its target.
var bleedAirRate = mathfuncs.Polynomial{
	0.46763348242588143,
	0.43114440400626697,
	-0.11064487957454393,
	0.010414691679270397,
	-0.00045307219981909655,
	0.00001063664878607912,
	-0.00000013763963889674,
	0.00000000091837058563,
	-0.00000000000246054885,
}

// bleedAirUsageDelta tracks the EGT offset contributed by bleed air being
// drawn from the turbine. The offset ramps towards a randomised per-instance
// maximum while bleed air is in use and decays back to zero otherwise.
type bleedAirUsageDelta struct {
	current float64
	target  float64
	max     float64
	min     float64
}

func newBleedAirUsageDelta(r *rand.Rand) *bleedAirUsageDelta {
	randomisation := 0.95 + float64(r.Intn(101))/1000.

	return &bleedAirUsageDelta{
		max: 90. * randomisation,
	}
}

func (d *bleedAirUsageDelta) update(delta time.Duration, bleedInUse bool) {
	if bleedInUse {
		d.target = d.max
	} else {
		d.target = d.min
	}

	if math.Abs(d.current-d.target) > epsilon {
		if d.current > d.target {
			d.current -= d.deltaPerSecond() * delta.Seconds()
		} else {
			d.current += d.deltaPerSecond() * delta.Seconds()
		}
	}

	d.current = clamp(d.current, d.min, d.max)
}

func (d *bleedAirUsageDelta) egtDelta() float64 {
	return d.current
}

func (d *bleedAirUsageDelta) deltaPerSecond() float64 {
	return bleedAirRate.At(math.Abs(d.current - d.target))
}

// genUsageDelta tracks the EGT offset contributed by electrical load on the
// generator. The offset ramps linearly over a fixed duration towards a
// randomised per-instance level while the generator is in use, and unwinds
// at the same rate otherwise.
type genUsageDelta struct {
	time                  time.Duration
	baseEGTDeltaPerSecond float64
}

const genUsageRampDuration = 10 * time.Second

func newGenUsageDelta(r *rand.Rand) *genUsageDelta {
	return &genUsageDelta{
		baseEGTDeltaPerSecond: (10. + float64(r.Intn(6))) / genUsageRampDuration.Seconds(),
	}
}

func (d *genUsageDelta) update(delta time.Duration, genInUse bool) {
	if genInUse {
		d.time += delta
		if d.time > genUsageRampDuration {
			d.time = genUsageRampDuration
		}
	} else {
		d.time -= delta
		if d.time < 0 {
			d.time = 0
		}
	}
}

func (d *genUsageDelta) egtDelta() float64 {
	return d.time.Seconds() * d.baseEGTDeltaPerSecond
}
