// Package params holds the named geometric quantities that drive the
// placement engine.
//
// A parameter set is a fixed-key mapping from name to [Quantity]. All ten
// keys must be present before any placement computation runs; a missing key
// is a configuration error, not something to skip per component. Unit tags
// are carried for display but never validated: a value with an unexpected
// unit is accepted as-is.
package params

import (
	"fmt"
)

// Parameter names. The engine accepts exactly this set, nothing else.
const (
	SwitchSpacing      = "SwitchSpacing"
	FrameBorder        = "FrameBorder"
	ThumbRadius        = "ThumbRadius"
	ThumbRotationAngle = "ThumbRotationAngle"
)

// NumColumns is the number of per-column offset parameters (Col0Offset..Col5Offset).
const NumColumns = 6

// Required lists every key a valid parameter set must contain, in display order.
var Required = []string{
	SwitchSpacing,
	FrameBorder,
	"Col0Offset",
	"Col1Offset",
	"Col2Offset",
	"Col3Offset",
	"Col4Offset",
	"Col5Offset",
	ThumbRadius,
	ThumbRotationAngle,
}

// ColOffsetKey returns the parameter name for column c's vertical offset.
func ColOffsetKey(c int) string {
	return fmt.Sprintf("Col%dOffset", c)
}

// Quantity is a numeric value paired with a unit tag. Lengths are in
// millimeters and angles in degrees; the tag is informational only.
type Quantity struct {
	Value float64
	Unit  string
}

func (q Quantity) String() string {
	if q.Unit == "" {
		return fmt.Sprintf("%g", q.Value)
	}
	return fmt.Sprintf("%g %s", q.Value, q.Unit)
}

// MissingParameterError reports a required key absent from a parameter set.
type MissingParameterError struct {
	Key string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter %q", e.Key)
}

// Set maps parameter names to quantities.
type Set map[string]Quantity

// Validate checks that every required key is present. It returns a
// *MissingParameterError naming the first absent key in Required order.
func (s Set) Validate() error {
	for _, key := range Required {
		if _, ok := s[key]; !ok {
			return &MissingParameterError{Key: key}
		}
	}
	return nil
}

// Value returns the numeric value for key. The set must have been validated;
// a missing key reads as zero.
func (s Set) Value(key string) float64 {
	return s[key].Value
}

// ColOffset returns the vertical offset value for column c.
func (s Set) ColOffset(c int) float64 {
	return s.Value(ColOffsetKey(c))
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Defaults returns the canonical parameter values for the reference layout.
func Defaults() Set {
	return Set{
		SwitchSpacing:      {Value: 19.5, Unit: "mm"},
		FrameBorder:        {Value: 5, Unit: "mm"},
		"Col0Offset":       {Value: 0, Unit: "mm"},
		"Col1Offset":       {Value: 4, Unit: "mm"},
		"Col2Offset":       {Value: 10, Unit: "mm"},
		"Col3Offset":       {Value: 17, Unit: "mm"},
		"Col4Offset":       {Value: 12, Unit: "mm"},
		"Col5Offset":       {Value: 9, Unit: "mm"},
		ThumbRadius:        {Value: 92.28, Unit: "mm"},
		ThumbRotationAngle: {Value: -12, Unit: "deg"},
	}
}
