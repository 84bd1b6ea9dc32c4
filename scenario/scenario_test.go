package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"

	"github.com/aerosimtech/apusim/scenario"
)

func TestUnmarshalYAML(t *testing.T) {
	yamlStr := `
start1:
  type: step
  Action: start
  StartDelay: 5
soak1:
  type: cycle
  StartDelay: 60
  OnDuration: 120
  OffDuration: 90
  Repeats: 3
`

	var container scenario.Container
	err := yaml.Unmarshal([]byte(yamlStr), &container)
	assert.NoError(t, err)
	assert.Len(t, container, 2)

	stepCommand, err := scenario.NewStepCommand(scenario.StepParams{
		Action:     "start",
		StartDelay: 5,
	})
	assert.NoError(t, err)
	assert.Equal(t, stepCommand, container["start1"])

	cycleCommand, err := scenario.NewCycleCommand(scenario.CycleParams{
		StartDelay:  60,
		OnDuration:  120,
		OffDuration: 90,
		Repeats:     3,
	})
	assert.NoError(t, err)
	assert.Equal(t, cycleCommand, container["soak1"])
}

func TestUnmarshalYAML_UnknownTypeErrors(t *testing.T) {
	var container scenario.Container
	err := yaml.Unmarshal([]byte("bad1:\n  type: explode\n"), &container)
	assert.Error(t, err)
}

func TestUnmarshalYAML_MissingTypeErrors(t *testing.T) {
	var container scenario.Container
	err := yaml.Unmarshal([]byte("bad1:\n  Action: start\n"), &container)
	assert.Error(t, err)
}

func TestTypeAsString(t *testing.T) {
	stepCommand, _ := scenario.NewStepCommand(scenario.StepParams{Action: "stop"})
	assert.Equal(t, "step", stepCommand.TypeAsString())

	cycleCommand, _ := scenario.NewCycleCommand(scenario.CycleParams{OnDuration: 1, OffDuration: 1})
	assert.Equal(t, "cycle", cycleCommand.TypeAsString())
}

func TestNewStepCommand_Validation(t *testing.T) {
	_, err := scenario.NewStepCommand(scenario.StepParams{Action: "reverse"})
	assert.Error(t, err)

	_, err = scenario.NewStepCommand(scenario.StepParams{Action: "start", StartDelay: -1})
	assert.Error(t, err)

	_, err = scenario.NewStepCommand(scenario.StepParams{Action: "start", Duration: -1})
	assert.Error(t, err)
}

func TestNewCycleCommand_Validation(t *testing.T) {
	_, err := scenario.NewCycleCommand(scenario.CycleParams{OnDuration: 0, OffDuration: 1})
	assert.Error(t, err)

	_, err = scenario.NewCycleCommand(scenario.CycleParams{OnDuration: 1, OffDuration: 0})
	assert.Error(t, err)

	_, err = scenario.NewCycleCommand(scenario.CycleParams{OnDuration: 1, OffDuration: 1, StartDelay: -1})
	assert.Error(t, err)
}

func TestAddCommand(t *testing.T) {
	container := make(scenario.Container)

	stepCommand, _ := scenario.NewStepCommand(scenario.StepParams{Action: "start"})
	id := container.AddCommand(stepCommand)

	assert.Len(t, container, 1)
	assert.Equal(t, stepCommand, container[id.String()])
}

func TestStepCommand_RequestWindow(t *testing.T) {
	container := make(scenario.Container)
	stepCommand, _ := scenario.NewStepCommand(scenario.StepParams{
		Action:     "start",
		StartDelay: 2,
		Duration:   3,
	})
	container.AddCommand(stepCommand)

	// Before the start delay: no request.
	container.StepAll(1.0)
	assert.False(t, container.ShouldStart())
	assert.False(t, container.ShouldStop())

	// Within the window: start requested.
	container.StepAll(1.5)
	assert.True(t, container.ShouldStart())
	assert.False(t, container.ShouldStop())

	// After the window closes: released.
	container.StepAll(3.0)
	assert.False(t, container.ShouldStart())
}

func TestStepCommand_IndefiniteHold(t *testing.T) {
	container := make(scenario.Container)
	stepCommand, _ := scenario.NewStepCommand(scenario.StepParams{Action: "stop"})
	container.AddCommand(stepCommand)

	for i := 0; i < 100; i++ {
		container.StepAll(10.0)
		assert.True(t, container.ShouldStop())
		assert.False(t, container.ShouldStart())
	}
}

func TestCycleCommand_AlternatesAndParks(t *testing.T) {
	container := make(scenario.Container)
	cycleCommand, _ := scenario.NewCycleCommand(scenario.CycleParams{
		OnDuration:  2,
		OffDuration: 2,
		Repeats:     2,
	})
	container.AddCommand(cycleCommand)

	// First cycle, on phase.
	container.StepAll(1.0)
	assert.True(t, container.ShouldStart())
	assert.False(t, container.ShouldStop())

	// First cycle, off phase.
	container.StepAll(2.0)
	assert.False(t, container.ShouldStart())
	assert.True(t, container.ShouldStop())

	// Second cycle, on phase.
	container.StepAll(2.0)
	assert.True(t, container.ShouldStart())

	// All repeats complete: the stop request stays asserted.
	container.StepAll(4.0)
	assert.False(t, container.ShouldStart())
	assert.True(t, container.ShouldStop())

	container.StepAll(100.0)
	assert.True(t, container.ShouldStop())
}

func TestContainer_StartAndStopAggregation(t *testing.T) {
	container := make(scenario.Container)

	start, _ := scenario.NewStepCommand(scenario.StepParams{Action: "start"})
	stop, _ := scenario.NewStepCommand(scenario.StepParams{Action: "stop", StartDelay: 10})
	container.AddCommand(start)
	container.AddCommand(stop)

	container.StepAll(1.0)
	assert.True(t, container.ShouldStart())
	assert.False(t, container.ShouldStop())

	// Both asserted once the stop delay passes; the turbine gives the stop
	// request precedence.
	container.StepAll(10.0)
	assert.True(t, container.ShouldStart())
	assert.True(t, container.ShouldStop())
}
