package conffile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"frame-transformer/internal/geometry"
)

// UnmarshalYAML implements custom YAML unmarshaling for Rotation.
// Accepts:
//   - A quaternion sequence: [w, x, y, z]
//   - An axis/angle mapping: {axis: [x, y, z], angle: rad}
func (r *Rotation) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var q []float64

		if err := node.Decode(&q); err != nil {
			return err
		}

		*r = q

		return nil

	case yaml.MappingNode:
		var aa axisAngle

		if err := node.Decode(&aa); err != nil {
			return err
		}

		return r.fromAxisAngle(aa)

	default:
		return fmt.Errorf("line %d: rotation must be [w, x, y, z] or {axis, angle}", node.Line)
	}
}

// UnmarshalTOML implements toml.Unmarshaler with the same two forms as
// UnmarshalYAML.
func (r *Rotation) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case []any:
		q, err := floats(v)
		if err != nil {
			return fmt.Errorf("rotation: %w", err)
		}

		*r = q

		return nil

	case map[string]any:
		var aa axisAngle

		axis, ok := v["axis"].([]any)
		if !ok {
			return fmt.Errorf("rotation: axis must be an array")
		}

		var err error
		if aa.Axis, err = floats(axis); err != nil {
			return fmt.Errorf("rotation axis: %w", err)
		}

		if angle, ok := v["angle"]; ok {
			f, err := float(angle)
			if err != nil {
				return fmt.Errorf("rotation angle: %w", err)
			}

			aa.Angle = &f
		}

		return r.fromAxisAngle(aa)

	default:
		return fmt.Errorf("rotation must be [w, x, y, z] or {axis, angle}, got %T", data)
	}
}

func (r *Rotation) fromAxisAngle(aa axisAngle) error {
	if aa.Angle == nil {
		return fmt.Errorf("rotation: angle is required with axis")
	}

	axis, err := geometry.VectorFromSlice(aa.Axis)
	if err != nil {
		return fmt.Errorf("rotation axis: %w", err)
	}

	q, err := geometry.QuaternionFromAxisAngle(axis, *aa.Angle)
	if err != nil {
		return err
	}

	*r = q.Slice()

	return nil
}

// floats converts a decoded TOML array, which mixes int64 and float64
// depending on how numbers were written.
func floats(values []any) ([]float64, error) {
	out := make([]float64, len(values))

	for i, v := range values {
		f, err := float(v)
		if err != nil {
			return nil, err
		}

		out[i] = f
	}

	return out, nil
}

func float(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}
