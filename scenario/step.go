package scenario

import (
	"errors"
	"fmt"
)

// Requests a single start or stop from a given time onward, optionally
// held for a fixed window.
type stepCommand struct {
	CommandBase

	action   string  // "start" or "stop"
	duration float64 // seconds the request stays asserted, 0 holds it indefinitely
}

// Parameters to use for the step command. All can be accessed publicly and
// used to define a stepCommand.
type StepParams struct {
	Name       string  `yaml:"Name"`       // name of the command, used for identification
	Action     string  `yaml:"Action"`     // "start" or "stop"
	StartDelay float64 `yaml:"StartDelay"` // the delay before the request is asserted in seconds
	Duration   float64 `yaml:"Duration"`   // how long the request stays asserted in seconds, 0 for indefinitely
}

// Initialise the internal fields of stepCommand when it is unmarshalled
// from yaml.
func (s *stepCommand) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params StepParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	// This performs checking for invalid values
	stepCommand, err := NewStepCommand(params)
	if err != nil {
		return err
	}

	*s = *stepCommand

	return nil
}

// Returns a stepCommand pointer with the requested parameters, checking
// for invalid values.
func NewStepCommand(params StepParams) (*stepCommand, error) {
	stepCommand := &stepCommand{}

	stepCommand.name = params.Name
	stepCommand.typeName = "step"

	switch params.Action {
	case "start", "stop":
		stepCommand.action = params.Action
	default:
		return nil, fmt.Errorf("unknown step action: %q", params.Action)
	}

	if params.Duration < 0 {
		return nil, errors.New("duration must be greater than or equal to 0")
	}
	stepCommand.duration = params.Duration

	if err := stepCommand.SetStartDelay(params.StartDelay); err != nil {
		return nil, err
	}

	return stepCommand, nil
}

// step advances the command clock by the sampling period Ts and updates
// which request, if any, the command asserts this timestep.
func (s *stepCommand) step(Ts float64) {
	s.elapsedTime += Ts

	active := s.elapsedTime >= s.startDelay &&
		(s.duration == 0 || s.elapsedTime < s.startDelay+s.duration)

	s.requestingStart = active && s.action == "start"
	s.requestingStop = active && s.action == "stop"
}
