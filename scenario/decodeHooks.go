package scenario

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Returns a decodeHook function that can be used to unmarshal commands from
// a yaml file using mapstructure. This supports configuration solutions
// like spf13/viper that use mapstructure to unmarshal yaml files.
func GetDecodeHook() (mapstructure.DecodeHookFunc, error) {
	decodeHook := func(f reflect.Type, t reflect.Type, yamlEntry interface{}) (interface{}, error) {
		if t == reflect.TypeOf((*CommandInterface)(nil)).Elem() {
			// If the target type is CommandInterface, create the correct command type from the yaml entry
			return createCommandFromYamlEntry(yamlEntry)
		}
		// Otherwise, return the yaml entry as is (default behaviour)
		return yamlEntry, nil
	}

	return decodeHook, nil
}

// Creates a generic command from a yaml entry based on the command "type"
// (or "Type") field.
func createCommandFromYamlEntry(yamlEntry interface{}) (CommandInterface, error) {
	// yaml entries should always be a string key with some sort of value
	m, ok := toStringKeyedMap(yamlEntry)
	if !ok {
		return nil, fmt.Errorf("yaml entry cannot be parsed to map[string]interface{}: %v", yamlEntry)
	}

	// must check both m["type"] and m["Type"] because some yaml parsers convert to lower case and some don't
	typeStr, ok := m["type"].(string)
	if !ok {
		typeStr, ok = m["Type"].(string)
		if !ok {
			return nil, errors.New("command type field is missing or not a string")
		}
	}

	var ci CommandInterface
	switch typeStr {
	case "step":
		ci = &stepCommand{}
	case "cycle":
		ci = &cycleCommand{}
	default:
		return nil, fmt.Errorf("unknown command type: %s", typeStr)
	}

	// Use mapstructure to decode the map into the CommandInterface
	decoderConfig := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stepCommandDecodeHookFunc(),
			cycleCommandDecodeHookFunc(),
		),
		Result: &ci,
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(m); err != nil {
		return nil, err
	}

	return ci, nil
}

// Returns a DecodeHookFunc that can be used to unmarshal a stepCommand
// from a yaml file.
func stepCommandDecodeHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t == reflect.TypeOf(stepCommand{}) {
			// unmarshal into StepParams and use the constructor function for its error checking
			var params StepParams
			if err := commandParamsDecodeHookFunc(&params, data); err != nil {
				return nil, err
			}
			return NewStepCommand(params)
		}
		// If the type is not stepCommand, return the data unchanged
		return data, nil
	}
}

// Returns a DecodeHookFunc that can be used to unmarshal a cycleCommand
// from a yaml file.
func cycleCommandDecodeHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t == reflect.TypeOf(cycleCommand{}) {
			// unmarshal into CycleParams and use the constructor function for its error checking
			var params CycleParams
			if err := commandParamsDecodeHookFunc(&params, data); err != nil {
				return nil, err
			}
			return NewCycleCommand(params)
		}
		// If the type is not cycleCommand, return the data unchanged
		return data, nil
	}
}

// Use mapstructure to unmarshal data into commandParams.
func commandParamsDecodeHookFunc[T any](commandParams *T, data interface{}) error {
	m, ok := toStringKeyedMap(data)
	if !ok {
		return fmt.Errorf("expected map[string]interface{}, got %T", data)
	}

	decoderConfig := &mapstructure.DecoderConfig{
		Result: commandParams,
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return err
	}
	if err := decoder.Decode(m); err != nil {
		return err
	}
	return nil
}

// yaml.v2 produces map[interface{}]interface{}; mapstructure and the type
// switch above need string keys.
func toStringKeyedMap(data interface{}) (map[string]interface{}, bool) {
	switch m := data.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = v
		}
		return out, true
	default:
		return nil, false
	}
}
