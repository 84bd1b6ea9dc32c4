package scenario

import (
	"errors"
	"math"
)

// Alternates start and stop requests on a fixed duty cycle, e.g. for soak
// runs exercising repeated start/stop transitions.
type cycleCommand struct {
	CommandBase

	onDuration  float64 // seconds per cycle the start request is asserted
	offDuration float64 // seconds per cycle the stop request is asserted
	repeats     uint64  // the number of cycles, 0 for infinite
}

// Parameters to use for the cycle command. All can be accessed publicly
// and used to define a cycleCommand.
type CycleParams struct {
	Name        string  `yaml:"Name"`        // name of the command, used for identification
	StartDelay  float64 `yaml:"StartDelay"`  // the delay before cycling begins in seconds
	OnDuration  float64 `yaml:"OnDuration"`  // seconds per cycle the start request is asserted
	OffDuration float64 `yaml:"OffDuration"` // seconds per cycle the stop request is asserted
	Repeats     uint64  `yaml:"Repeats"`     // the number of cycles, 0 for infinite
}

// Initialise the internal fields of cycleCommand when it is unmarshalled
// from yaml.
func (c *cycleCommand) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params CycleParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	// This performs checking for invalid values
	cycleCommand, err := NewCycleCommand(params)
	if err != nil {
		return err
	}

	*c = *cycleCommand

	return nil
}

// Returns a cycleCommand pointer with the requested parameters, checking
// for invalid values.
func NewCycleCommand(params CycleParams) (*cycleCommand, error) {
	cycleCommand := &cycleCommand{}

	cycleCommand.name = params.Name
	cycleCommand.typeName = "cycle"
	cycleCommand.repeats = params.Repeats

	if params.OnDuration <= 0 {
		return nil, errors.New("onDuration must be greater than 0")
	}
	cycleCommand.onDuration = params.OnDuration

	if params.OffDuration <= 0 {
		return nil, errors.New("offDuration must be greater than 0")
	}
	cycleCommand.offDuration = params.OffDuration

	if err := cycleCommand.SetStartDelay(params.StartDelay); err != nil {
		return nil, err
	}

	return cycleCommand, nil
}

// step advances the command clock by the sampling period Ts and asserts
// the start request during the on phase of each cycle and the stop request
// during the off phase. Once all repeats are complete the stop request
// stays asserted so the turbine is left parked.
func (c *cycleCommand) step(Ts float64) {
	c.elapsedTime += Ts

	if c.elapsedTime < c.startDelay {
		c.requestingStart = false
		c.requestingStop = false
		return
	}

	t := c.elapsedTime - c.startDelay
	period := c.onDuration + c.offDuration

	cyclesDone := uint64(t / period)
	if c.repeats != 0 && cyclesDone >= c.repeats {
		c.requestingStart = false
		c.requestingStop = true
		return
	}

	inOnPhase := math.Mod(t, period) < c.onDuration
	c.requestingStart = inOnPhase
	c.requestingStop = !inOnPhase
}
