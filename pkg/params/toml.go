package params

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Parameter files are TOML. Each key maps either to a bare number, in which
// case the unit defaults by key (deg for angles, mm otherwise), or to an
// inline table with explicit value and unit:
//
//	SwitchSpacing = { value = 19.5, unit = "mm" }
//	FrameBorder = 5
//	ThumbRotationAngle = { value = -12, unit = "deg" }

// Load reads a parameter set from a TOML file and validates that all
// required keys are present.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a parameter set from TOML data and validates it.
func Parse(data []byte) (Set, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse parameters: %w", err)
	}

	set := make(Set, len(raw))
	for key, v := range raw {
		q, err := decodeQuantity(key, v)
		if err != nil {
			return nil, err
		}
		set[key] = q
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

func decodeQuantity(key string, v any) (Quantity, error) {
	switch val := v.(type) {
	case int64:
		return Quantity{Value: float64(val), Unit: defaultUnit(key)}, nil
	case float64:
		return Quantity{Value: val, Unit: defaultUnit(key)}, nil
	case map[string]any:
		q := Quantity{Unit: defaultUnit(key)}
		switch num := val["value"].(type) {
		case int64:
			q.Value = float64(num)
		case float64:
			q.Value = num
		default:
			return Quantity{}, fmt.Errorf("parameter %q: value must be a number", key)
		}
		if unit, ok := val["unit"].(string); ok {
			q.Unit = unit
		}
		return q, nil
	default:
		return Quantity{}, fmt.Errorf("parameter %q: expected number or {value, unit} table, got %T", key, v)
	}
}

func defaultUnit(key string) string {
	if strings.Contains(key, "Angle") {
		return "deg"
	}
	return "mm"
}
