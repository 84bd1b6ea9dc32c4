package apusim

import (
	"math"
	"math/rand"
	"time"

	"github.com/aerosimtech/apusim/mathfuncs"
)

// TurbineState identifies which phase of the operational cycle the turbine
// is currently in.
type TurbineState int

const (
	Shutdown TurbineState = iota
	Starting
	Running
	Stopping
)

func (s TurbineState) String() string {
	switch s {
	case Shutdown:
		return "shutdown"
	case Starting:
		return "starting"
	case Running:
		return "running"
	case Stopping:
		return "stopping"
	default:
		return "unknown"
	}
}

// Controller supplies the start/stop intent which the turbine polls once
// per tick. A stop request takes precedence over forward progress.
type Controller interface {
	ShouldStart() bool
	ShouldStop() bool
}

// UpdateContext carries the per-tick inputs supplied by the host simulation.
type UpdateContext struct {
	Delta              time.Duration
	AmbientTemperature float64 // degrees Celsius
}

// Turbine is one of four mutually exclusive operational states of the APU
// turbine. Update consumes the current state and returns its successor;
// callers must replace their reference with the returned value and never
// reuse the old one, so no partially transitioned state is ever observable.
type Turbine interface {
	Update(r *rand.Rand, ctx UpdateContext, bleedInUse, genInUse bool, ctrl Controller) Turbine
	N() float64   // speed as a percentage of rated speed, always within [0,100]
	EGT() float64 // exhaust gas temperature in degrees Celsius
	State() TurbineState
}

const epsilon = 2.220446049250313e-16

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// NewShutdownTurbine returns a turbine at rest with the given EGT.
func NewShutdownTurbine(egt float64) Turbine {
	return &shutdownTurbine{egt: egt}
}

type shutdownTurbine struct {
	egt float64
}

func (t *shutdownTurbine) Update(r *rand.Rand, ctx UpdateContext, _, _ bool, ctrl Controller) Turbine {
	t.egt = calculateTowardsAmbientEGT(t.egt, ctx)

	if ctrl.ShouldStart() {
		return newStartingTurbine(t.egt)
	}
	return t
}

func (t *shutdownTurbine) N() float64          { return 0 }
func (t *shutdownTurbine) EGT() float64        { return t.egt }
func (t *shutdownTurbine) State() TurbineState { return Shutdown }

// Speed as a function of seconds since ignition, fitted against reference
// start sequences. The fit degrades beyond startingTimeLimit.
var startingN = mathfuncs.Polynomial{
	-0.08013606018640967,
	2.129832736394534,
	3.928273438786404,
	-1.88613299921213,
	0.42749452749180916,
	-0.05757707967690426,
	0.005022142795451004,
	-0.00029612873626050866,
	0.00001204152497871946,
	-0.00000033829604438116,
	0.00000000645140818528,
	-0.00000000007974743535,
	0.00000000000057654695,
	-0.00000000000000185126,
}

// EGT during the start sequence as a function of current N.
var startingEGT = mathfuncs.Polynomial{
	-92.3417137705543,
	-14.36417426895237,
	12.210567963472547,
	-3.005504263233662,
	0.3808066398934025,
	-0.02679731462093699,
	0.001163901295794232,
	-0.0000332668380497951,
	0.00000064601180727581,
	-0.00000000859285727074,
	0.00000000007717119413,
	-0.00000000000044761099,
	0.00000000000000151429,
	-0.00000000000000000227,
}

const (
	startingIgnitionDelay = 1.5   // seconds before ignition begins
	startingTimeLimit     = 45.12 // the speed fit returns decreasing values beyond this point
)

type startingTurbine struct {
	since               time.Duration
	n                   float64
	egt                 float64
	ignoreCalculatedEGT bool
}

func newStartingTurbine(egt float64) *startingTurbine {
	return &startingTurbine{
		egt:                 egt,
		ignoreCalculatedEGT: true,
	}
}

func (t *startingTurbine) Update(r *rand.Rand, ctx UpdateContext, _, _ bool, ctrl Controller) Turbine {
	t.since += ctx.Delta
	t.n = t.calculateN()
	t.egt = t.calculateEGT(ctx)

	if ctrl.ShouldStop() {
		return newStoppingTurbine(t.egt, t.n)
	} else if math.Abs(t.n-100) < epsilon {
		return newRunningTurbine(r, t.egt)
	}
	return t
}

func (t *startingTurbine) calculateN() float64 {
	ignitionOnSecs := math.Min(t.since.Seconds()-startingIgnitionDelay, startingTimeLimit)
	if ignitionOnSecs <= 0 {
		return 0
	}

	return clamp(startingN.At(ignitionOnSecs), 0, 100)
}

func (t *startingTurbine) calculateEGT(ctx UpdateContext) float64 {
	calculated := startingEGT.At(t.n)

	// The fitted curve can sit below the ambient temperature, or below the
	// cooling curve of a hot restart, at low N. Hold the convergence value
	// until the curve first exceeds it, then use the curve for the
	// remainder of this start.
	towardsAmbient := calculateTowardsAmbientEGT(t.egt, ctx)
	if calculated > towardsAmbient {
		t.ignoreCalculatedEGT = false
	}

	if t.ignoreCalculatedEGT {
		return towardsAmbient
	}
	return calculated
}

func (t *startingTurbine) N() float64          { return t.n }
func (t *startingTurbine) EGT() float64        { return t.egt }
func (t *startingTurbine) State() TurbineState { return Starting }

type runningTurbine struct {
	egt              float64
	baseEGT          float64
	baseEGTDeviation float64
	bleedAirUsage    *bleedAirUsageDelta
	genUsage         *genUsageDelta
}

func newRunningTurbine(r *rand.Rand, egt float64) *runningTurbine {
	baseEGT := 340. + float64(r.Intn(11))
	return &runningTurbine{
		egt:     egt,
		baseEGT: baseEGT,
		// The deviation from the base EGT at the moment of entering the
		// running state. Assumes the base EGT is below the current EGT at
		// this point in time, which holds at the end of every start
		// sequence.
		baseEGTDeviation: egt - baseEGT,
		bleedAirUsage:    newBleedAirUsageDelta(r),
		genUsage:         newGenUsageDelta(r),
	}
}

func (t *runningTurbine) Update(r *rand.Rand, ctx UpdateContext, bleedInUse, genInUse bool, ctrl Controller) Turbine {
	t.egt = t.calculateEGT(ctx, bleedInUse, genInUse)

	if ctrl.ShouldStop() {
		return newStoppingTurbine(t.egt, 100)
	}
	return t
}

func (t *runningTurbine) calculateEGT(ctx UpdateContext, bleedInUse, genInUse bool) float64 {
	// Creep the entry deviation back to zero at one degree per second.
	t.baseEGTDeviation -= math.Min(ctx.Delta.Seconds(), t.baseEGTDeviation)

	target := t.baseEGT + t.baseEGTDeviation

	t.genUsage.update(ctx.Delta, genInUse)
	target += t.genUsage.egtDelta()

	t.bleedAirUsage.update(ctx.Delta, bleedInUse)
	target += t.bleedAirUsage.egtDelta()

	return target
}

func (t *runningTurbine) N() float64          { return 100 }
func (t *runningTurbine) EGT() float64        { return t.egt }
func (t *runningTurbine) State() TurbineState { return Running }

// Speed as a function of seconds since the stop was commanded. The fit
// returns increasing values beyond stoppingTimeLimit.
var stoppingN = mathfuncs.Polynomial{
	100.22975364965701,
	-24.692008355859773,
	2.6116524551318787,
	0.006812541903222142,
	-0.03134644787752123,
	0.0036345606954833213,
	-0.00021794252200618456,
	0.00000798097055109138,
	-0.00000018481154462604,
	0.00000000264691628669,
	-0.00000000002143677577,
	0.00000000000007515448,
}

// EGT change during spool down, relative to the EGT at which the stop was
// commanded, as a function of current N.
var stoppingEGTDelta = mathfuncs.Polynomial{
	-125.73137672208446,
	2.7141683591219037,
	-0.8102923071483102,
	0.08890509495240731,
	-0.003509532681984154,
	-0.00002709133732344767,
	0.00000749250123766767,
	-0.00000030306978045244,
	0.00000000641099706269,
	-0.00000000008068326110,
	0.00000000000060754088,
	-0.00000000000000253354,
	0.00000000000000000451,
}

const stoppingTimeLimit = 49.411

type stoppingTurbine struct {
	since           time.Duration
	baseTemperature float64
	n               float64
	egt             float64
}

func newStoppingTurbine(egt, n float64) *stoppingTurbine {
	return &stoppingTurbine{
		baseTemperature: egt,
		n:               n,
		egt:             egt,
	}
}

func (t *stoppingTurbine) Update(r *rand.Rand, ctx UpdateContext, _, _ bool, _ Controller) Turbine {
	t.since += ctx.Delta
	t.n = t.calculateN()
	t.egt = t.baseTemperature + stoppingEGTDelta.At(t.n)

	if t.n == 0 {
		return &shutdownTurbine{egt: t.egt}
	}
	return t
}

func (t *stoppingTurbine) calculateN() float64 {
	since := math.Min(t.since.Seconds(), stoppingTimeLimit)
	return clamp(stoppingN.At(since), 0, 100)
}

func (t *stoppingTurbine) N() float64          { return t.n }
func (t *stoppingTurbine) EGT() float64        { return t.egt }
func (t *stoppingTurbine) State() TurbineState { return Stopping }
