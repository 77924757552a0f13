package params

import (
	"errors"
	"testing"
)

func TestDefaultsComplete(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("Defaults() should validate: %v", err)
	}
}

func TestValidateMissingKey(t *testing.T) {
	for _, key := range Required {
		t.Run(key, func(t *testing.T) {
			set := Defaults()
			delete(set, key)

			err := set.Validate()
			if err == nil {
				t.Fatalf("Validate should fail without %s", key)
			}
			var missing *MissingParameterError
			if !errors.As(err, &missing) {
				t.Fatalf("error should be *MissingParameterError, got %T", err)
			}
			if missing.Key != key {
				t.Errorf("error names %q, want %q", missing.Key, key)
			}
		})
	}
}

func TestColOffsetKey(t *testing.T) {
	if got := ColOffsetKey(3); got != "Col3Offset" {
		t.Errorf("ColOffsetKey(3) = %q, want Col3Offset", got)
	}
}

func TestQuantityString(t *testing.T) {
	tests := []struct {
		q    Quantity
		want string
	}{
		{Quantity{Value: 19.5, Unit: "mm"}, "19.5 mm"},
		{Quantity{Value: -12, Unit: "deg"}, "-12 deg"},
		{Quantity{Value: 3}, "3"},
	}
	for _, tt := range tests {
		if got := tt.q.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.q, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
SwitchSpacing = { value = 19.5, unit = "mm" }
FrameBorder = 5
Col0Offset = 0
Col1Offset = 4
Col2Offset = 10
Col3Offset = 17
Col4Offset = 12
Col5Offset = 9
ThumbRadius = 92.28
ThumbRotationAngle = { value = -12, unit = "deg" }
`)

	set, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := set.Value(SwitchSpacing); got != 19.5 {
		t.Errorf("SwitchSpacing = %v, want 19.5", got)
	}
	if got := set[FrameBorder]; got.Value != 5 || got.Unit != "mm" {
		t.Errorf("bare number should default to mm, got %v", got)
	}
	if got := set[ThumbRotationAngle]; got.Value != -12 || got.Unit != "deg" {
		t.Errorf("ThumbRotationAngle = %v, want -12 deg", got)
	}
	if got := set.ColOffset(3); got != 17 {
		t.Errorf("ColOffset(3) = %v, want 17", got)
	}
}

func TestParseBareAngleDefaultsToDeg(t *testing.T) {
	set := Defaults()
	set[ThumbRotationAngle] = Quantity{}
	data := []byte(`
SwitchSpacing = 19.5
FrameBorder = 5
Col0Offset = 0
Col1Offset = 4
Col2Offset = 10
Col3Offset = 17
Col4Offset = 12
Col5Offset = 9
ThumbRadius = 92.28
ThumbRotationAngle = -12
`)
	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := parsed[ThumbRotationAngle].Unit; got != "deg" {
		t.Errorf("angle unit = %q, want deg", got)
	}
}

func TestParseMissingParameter(t *testing.T) {
	data := []byte(`
SwitchSpacing = 19.5
FrameBorder = 5
`)
	_, err := Parse(data)
	var missing *MissingParameterError
	if !errors.As(err, &missing) {
		t.Fatalf("Parse should return *MissingParameterError, got %v", err)
	}
}

func TestParseUnexpectedUnitAccepted(t *testing.T) {
	// Unit tags are informational; a wrong tag is carried, not rejected.
	set := Defaults()
	set[ThumbRadius] = Quantity{Value: 92.28, Unit: "furlong"}
	if err := set.Validate(); err != nil {
		t.Fatalf("unexpected unit should still validate: %v", err)
	}
	if set.Value(ThumbRadius) != 92.28 {
		t.Errorf("value should read through regardless of unit tag")
	}
}

func TestParseRejectsNonNumeric(t *testing.T) {
	_, err := Parse([]byte(`SwitchSpacing = "wide"`))
	if err == nil {
		t.Fatal("Parse should reject a string value")
	}
}
