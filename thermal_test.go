package apusim

import (
	"math/rand"
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func TestTowardsTargetTemperature_Cooling(t *testing.T) {
	current := 300.
	target := 20.

	previous := current
	for i := 0; i < 100; i++ {
		current = TowardsTargetTemperature(current, target, 1.0, 100*time.Millisecond)
		assert.Assert(t, current <= previous, "cooling must be monotonic")
		assert.Assert(t, current >= target, "cooling must not overshoot ambient")
		previous = current
	}

	assert.Assert(t, current < 300.)
}

func TestTowardsTargetTemperature_Warming(t *testing.T) {
	current := TowardsTargetTemperature(-40., 15., 1.0, 500*time.Millisecond)
	assert.Assert(t, current > -40.)
	assert.Assert(t, current <= 15.)
}

func TestTowardsTargetTemperature_LargeDeltaClampsToTarget(t *testing.T) {
	assert.Equal(t, 20., TowardsTargetTemperature(300., 20., 1.0, time.Hour))
	assert.Equal(t, 20., TowardsTargetTemperature(-60., 20., 1.0, time.Hour))
}

func TestTowardsTargetTemperature_AtTargetStaysPut(t *testing.T) {
	assert.Equal(t, 20., TowardsTargetTemperature(20., 20., 1.0, time.Second))
}

func TestTowardsTargetTemperature_RateProportionalToDifference(t *testing.T) {
	// With a small time step the movement is difference * coefficient * dt.
	moved := TowardsTargetTemperature(100., 0., 1.0, 250*time.Millisecond)
	assert.Equal(t, 75., moved)
}

func TestBleedAirUsageDelta_RandomisedMaxWithinBounds(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		d := newBleedAirUsageDelta(rand.New(rand.NewSource(seed)))
		assert.Assert(t, d.max >= 90.*0.95)
		assert.Assert(t, d.max <= 90.*1.05)
	}
}

func TestBleedAirUsageDelta_RampsToMaxAndDecaysToZero(t *testing.T) {
	d := newBleedAirUsageDelta(rand.New(rand.NewSource(1)))

	previous := 0.
	for i := 0; i < 1200; i++ {
		d.update(500*time.Millisecond, true)
		assert.Assert(t, d.egtDelta() >= previous, "offset must ramp monotonically while in use")
		assert.Assert(t, d.egtDelta() <= d.max)
		previous = d.egtDelta()
	}
	assert.Equal(t, d.max, d.egtDelta())

	for i := 0; i < 1200; i++ {
		d.update(500*time.Millisecond, false)
		assert.Assert(t, d.egtDelta() >= 0.)
	}
	assert.Equal(t, 0., d.egtDelta())
}

func TestBleedAirUsageDelta_ApproachDecelerates(t *testing.T) {
	d := newBleedAirUsageDelta(rand.New(rand.NewSource(1)))

	// The approach rate is a function of the remaining distance, so the
	// rate far from target must exceed the rate close to it.
	d.current = 0
	d.target = d.max
	farRate := d.deltaPerSecond()

	d.current = d.max - 1
	nearRate := d.deltaPerSecond()

	assert.Assert(t, farRate > nearRate)
}

func TestGenUsageDelta_RampsLinearlyOverTenSeconds(t *testing.T) {
	d := newGenUsageDelta(rand.New(rand.NewSource(1)))

	d.update(5*time.Second, true)
	halfway := d.egtDelta()

	d.update(5*time.Second, true)
	full := d.egtDelta()

	assert.Equal(t, full, 2*halfway)
	assert.Assert(t, full >= 10.)
	assert.Assert(t, full <= 15.)

	// Saturates at the ramp duration.
	d.update(time.Minute, true)
	assert.Equal(t, full, d.egtDelta())
}

func TestGenUsageDelta_DecaysWhenNotInUse(t *testing.T) {
	d := newGenUsageDelta(rand.New(rand.NewSource(1)))

	d.update(10*time.Second, true)
	assert.Assert(t, d.egtDelta() > 0.)

	d.update(4*time.Second, false)
	assert.Assert(t, d.egtDelta() > 0.)

	// Saturates at zero rather than going negative.
	d.update(time.Minute, false)
	assert.Equal(t, 0., d.egtDelta())
}
