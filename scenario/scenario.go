// Package scenario provides scripted start/stop control sequences for the
// emulated APU, used by test benches and soak runs. Commands are collected
// in a container which is stepped once per tick and polled by the turbine
// as its controller.
package scenario

import (
	"github.com/google/uuid"
)

// Container is a collection of commands keyed by id.
type Container map[string]CommandInterface

// CommandInterface is the interface for all scripted command types (steps,
// cycles, etc).
type CommandInterface interface {
	UnmarshalYAML(unmarshal func(interface{}) error) error // Unmarshals a command entry into the correct type based on the type field
	TypeAsString() string                                  // Returns the command type as a string
	GetName() string                                       // Returns the name of the command
	GetStartDelay() float64                                // Returns the delay before the command takes effect in seconds
	RequestsStart() bool                                   // Returns whether the command requests a start this timestep
	RequestsStop() bool                                    // Returns whether the command requests a stop this timestep
	step(Ts float64)                                       // Steps the internal time state of the command
}

// UnmarshalYAML unmarshals command entries into the correct types based on
// their type field.
func (c *Container) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw map[string]map[string]interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}

	if *c == nil {
		*c = make(Container)
	}

	for key, value := range raw {
		command, err := createCommandFromYamlEntry(value)
		if err != nil {
			return err
		}
		(*c)[key] = command
	}

	return nil
}

// StepAll advances the time state of all commands within the container by
// the sampling period Ts.
func (c Container) StepAll(Ts float64) {
	for key := range c {
		// Do by index to not work on a copy
		c[key].step(Ts)
	}
}

// ShouldStart reports whether any command currently requests a start.
func (c Container) ShouldStart() bool {
	for key := range c {
		if c[key].RequestsStart() {
			return true
		}
	}
	return false
}

// ShouldStop reports whether any command currently requests a stop. The
// turbine gives stop requests precedence over forward progress.
func (c Container) ShouldStop() bool {
	for key := range c {
		if c[key].RequestsStop() {
			return true
		}
	}
	return false
}

// AddCommand adds a command to the container keyed by a new uuid and
// returns the uuid.
func (c *Container) AddCommand(command CommandInterface) uuid.UUID {
	uuid := uuid.New()
	(*c)[uuid.String()] = command
	return uuid
}
