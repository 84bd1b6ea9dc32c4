package scenario

import "errors"

// CommandBase is the base struct for all scripted command types.
type CommandBase struct {
	// Setters and getters are provided for the private fields below to
	// allow for error checking
	name       string  // the name of the command, used for identification
	typeName   string  // the type of command
	startDelay float64 // how many seconds before the command takes effect

	// internal state
	elapsedTime     float64 // time elapsed since the start of the run
	requestingStart bool    // whether the command requests a start this timestep
	requestingStop  bool    // whether the command requests a stop this timestep
}

// Returns the name of the command.
func (c *CommandBase) GetName() string {
	return c.name
}

// Returns the type of command as a string.
func (c *CommandBase) TypeAsString() string {
	return c.typeName
}

// Returns the delay before the command takes effect in seconds.
func (c *CommandBase) GetStartDelay() float64 {
	return c.startDelay
}

// Returns the time elapsed since the start of the run in seconds.
func (c *CommandBase) GetElapsedTime() float64 {
	return c.elapsedTime
}

// Returns whether the command requests a start this timestep.
func (c *CommandBase) RequestsStart() bool {
	return c.requestingStart
}

// Returns whether the command requests a stop this timestep.
func (c *CommandBase) RequestsStop() bool {
	return c.requestingStop
}

// Sets the delay before the command takes effect if delay >= 0.
func (c *CommandBase) SetStartDelay(startDelay float64) error {
	if startDelay < 0 {
		return errors.New("startDelay must be greater than or equal to 0")
	}

	c.startDelay = startDelay
	return nil
}
