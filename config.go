package apusim

import (
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/aerosimtech/apusim/scenario"
)

// WaveformConfig describes optional output waveform synthesis.
type WaveformConfig struct {
	PhaseOffset  float64 `yaml:"PhaseOffset"`  // radians
	NoiseMax     float64 `yaml:"NoiseMax"`     // per-unit Gaussian noise relative to peak magnitude
	ModFunc      string  `yaml:"ModFunc"`      // name of the magnitude modulation function, empty for none
	ModMagnitude float64 `yaml:"ModMagnitude"` // per-unit
	ModPeriod    float64 `yaml:"ModPeriod"`    // seconds
}

// Config describes an emulated APU in yaml form.
type Config struct {
	Seed            int64              `yaml:"Seed"`
	GeneratorNumber int                `yaml:"GeneratorNumber"`
	Waveform        *WaveformConfig    `yaml:"Waveform"`
	Commands        scenario.Container `yaml:"Commands"`
}

// LoadConfig parses a yaml document into a Config. The caller owns reading
// the bytes; the library performs no I/O.
func LoadConfig(data []byte) (*Config, error) {
	cfg := &Config{
		GeneratorNumber: 1,
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.GeneratorNumber < 1 {
		return nil, fmt.Errorf("generator number must be at least 1, got %d", cfg.GeneratorNumber)
	}

	return cfg, nil
}

// NewAPUFromConfig constructs an APU from a parsed configuration. The
// scenario commands, if any, remain owned by the config; step them each
// tick and pass the container as the controller.
func NewAPUFromConfig(cfg *Config) (*APU, error) {
	apu := NewAPU(cfg.GeneratorNumber, cfg.Seed)

	if cfg.Waveform != nil {
		w := &WaveformSynthesis{
			PhaseOffset:  cfg.Waveform.PhaseOffset,
			NoiseMax:     cfg.Waveform.NoiseMax,
			ModMagnitude: cfg.Waveform.ModMagnitude,
			ModPeriod:    cfg.Waveform.ModPeriod,
		}
		if err := w.SetModFunctionByName(cfg.Waveform.ModFunc); err != nil {
			return nil, err
		}
		apu.AttachWaveform(w)
	}

	return apu, nil
}
