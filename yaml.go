package schedmode

import (
	"fmt"

	yaml "go.yaml.in/yaml/v3"
)

// Compile-time interface checks.
var (
	_ yaml.Marshaler   = Mode{}
	_ yaml.Unmarshaler = (*Mode)(nil)
)

// MarshalYAML implements yaml.Marshaler using the same keyed form as
// MarshalJSON.
func (m Mode) MarshalYAML() (any, error) {
	return m.record(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same rules as
// UnmarshalJSON.
func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: expected mapping", ErrInvalidMode, value.Line)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		switch key := value.Content[i].Value; key {
		case "kind":
		case "step":
			// Reject 4.0 and "4" as JSON does; null falls through to the
			// missing step check.
			if tag := value.Content[i+1].ShortTag(); tag != "!!int" && tag != "!!null" {
				return fmt.Errorf("%w: line %d: step must be an integer, got %s", ErrInvalidMode, value.Content[i+1].Line, tag)
			}
		default:
			return fmt.Errorf("%w: line %d: unknown field %q", ErrInvalidMode, value.Content[i].Line, key)
		}
	}

	var rec struct {
		Kind *string `yaml:"kind"`
		Step *int    `yaml:"step"`
	}
	if err := value.Decode(&rec); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMode, err)
	}

	var kind Kind
	if rec.Kind != nil {
		if err := kind.UnmarshalText([]byte(*rec.Kind)); err != nil {
			return err
		}
	}
	v, err := modeFromRecord(kind, rec.Step)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
