package apusim

import "fmt"

// Writer receives named scalar telemetry values once per tick. The host
// simulation owns the transport behind it.
type Writer interface {
	WriteFloat64(name string, value float64)
	WriteBool(name string, value bool)
}

// alternatingWithLoadSource is an AC source which also reports its load.
type alternatingWithLoadSource interface {
	Potential() float64
	PotentialNormal() bool
	Frequency() float64
	FrequencyNormal() bool
	Load() float64
	LoadNormal() bool
}

// electricalStateWriter publishes the electrical quantities of a single
// source under the stable ELEC_<NAME>_<METRIC> naming scheme relied on by
// downstream consumers. The names must be preserved verbatim.
type electricalStateWriter struct {
	potentialKey       string
	potentialNormalKey string
	frequencyKey       string
	frequencyNormalKey string
	loadKey            string
	loadNormalKey      string
}

func newElectricalStateWriter(name string) *electricalStateWriter {
	return &electricalStateWriter{
		potentialKey:       fmt.Sprintf("ELEC_%s_POTENTIAL", name),
		potentialNormalKey: fmt.Sprintf("ELEC_%s_POTENTIAL_NORMAL", name),
		frequencyKey:       fmt.Sprintf("ELEC_%s_FREQUENCY", name),
		frequencyNormalKey: fmt.Sprintf("ELEC_%s_FREQUENCY_NORMAL", name),
		loadKey:            fmt.Sprintf("ELEC_%s_LOAD", name),
		loadNormalKey:      fmt.Sprintf("ELEC_%s_LOAD_NORMAL", name),
	}
}

func (w *electricalStateWriter) writeAlternatingWithLoad(src alternatingWithLoadSource, out Writer) {
	out.WriteFloat64(w.potentialKey, src.Potential())
	out.WriteBool(w.potentialNormalKey, src.PotentialNormal())
	out.WriteFloat64(w.frequencyKey, src.Frequency())
	out.WriteBool(w.frequencyNormalKey, src.FrequencyNormal())
	out.WriteFloat64(w.loadKey, src.Load())
	out.WriteBool(w.loadNormalKey, src.LoadNormal())
}

// MapWriter is a Writer which collects values into maps, for tests and
// demos.
type MapWriter struct {
	Float64s map[string]float64
	Bools    map[string]bool
}

func NewMapWriter() *MapWriter {
	return &MapWriter{
		Float64s: make(map[string]float64),
		Bools:    make(map[string]bool),
	}
}

func (m *MapWriter) WriteFloat64(name string, value float64) {
	m.Float64s[name] = value
}

func (m *MapWriter) WriteBool(name string, value bool) {
	m.Bools[name] = value
}

// Len returns the total number of values written.
func (m *MapWriter) Len() int {
	return len(m.Float64s) + len(m.Bools)
}
