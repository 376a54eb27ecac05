package core

import (
	"math"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// ----------------------------------------------------------------------------
// CoerceNumber Tests
// ----------------------------------------------------------------------------

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		name      string
		input     any
		wantValid bool
		want      float64
	}{
		// Invalid: blanks and placeholders
		{name: "nil", input: nil, wantValid: false},
		{name: "empty string", input: "", wantValid: false},
		{name: "whitespace", input: "   ", wantValid: false},
		{name: "single space", input: " ", wantValid: false},
		{name: "dash placeholder", input: "-", wantValid: false},
		{name: "padded dash", input: " - ", wantValid: false},

		// Invalid: unparseable text
		{name: "words", input: "n/a", wantValid: false},
		{name: "percent sign", input: "45%", wantValid: false},
		{name: "thousands separator", input: "1,234", wantValid: false},
		{name: "nan text", input: "NaN", wantValid: false},
		{name: "time value", input: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), wantValid: false},

		// Valid
		{name: "float cell", input: 82.5, wantValid: true, want: 82.5},
		{name: "zero", input: 0.0, wantValid: true, want: 0},
		{name: "int", input: 7, wantValid: true, want: 7},
		{name: "int64", input: int64(-3), wantValid: true, want: -3},
		{name: "numeric text", input: "12.75", wantValid: true, want: 12.75},
		{name: "padded numeric text", input: "  40 ", wantValid: true, want: 40},
		{name: "negative text", input: "-0.5", wantValid: true, want: -0.5},
		{name: "scientific text", input: "1.5e3", wantValid: true, want: 1500},
		{name: "true", input: true, wantValid: true, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceNumber(tt.input)
			if got.Valid != tt.wantValid {
				t.Fatalf("CoerceNumber(%v).Valid = %v, want %v", tt.input, got.Valid, tt.wantValid)
			}
			if got.Valid && got.Float64 != tt.want {
				t.Errorf("CoerceNumber(%v) = %v, want %v", tt.input, got.Float64, tt.want)
			}
		})
	}
}

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name      string
		input     any
		wantValid bool
		want      int64
	}{
		{name: "nil", input: nil, wantValid: false},
		{name: "dash", input: "-", wantValid: false},
		{name: "whole float", input: 12.0, wantValid: true, want: 12},
		{name: "rounds up", input: 2.5, wantValid: true, want: 3},
		{name: "rounds down", input: 2.49, wantValid: true, want: 2},
		{name: "text", input: "31", wantValid: true, want: 31},
		{name: "too large", input: 1e300, wantValid: false},
		{name: "two to the 63", input: math.Pow(2, 63), wantValid: false},
		{name: "largest exact below limit", input: math.Pow(2, 62), wantValid: true, want: 1 << 62},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceInt(tt.input)
			if got.Valid != tt.wantValid {
				t.Fatalf("CoerceInt(%v).Valid = %v, want %v", tt.input, got.Valid, tt.wantValid)
			}
			if got.Valid && got.Int64 != tt.want {
				t.Errorf("CoerceInt(%v) = %d, want %d", tt.input, got.Int64, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// CoerceText Tests
// ----------------------------------------------------------------------------

func TestCoerceText(t *testing.T) {
	tests := []struct {
		name      string
		input     any
		wantValid bool
		want      string
	}{
		{name: "nil", input: nil, wantValid: false},
		{name: "empty string stays valid", input: "", wantValid: true, want: ""},
		{name: "whitespace trims to empty", input: "   ", wantValid: true, want: ""},
		{name: "dash kept", input: "-", wantValid: true, want: "-"},
		{name: "trimmed", input: "  Active ", wantValid: true, want: "Active"},
		{name: "whole number", input: 1042.0, wantValid: true, want: "1042"},
		{name: "fraction", input: 0.25, wantValid: true, want: "0.25"},
		{name: "int", input: 9, wantValid: true, want: "9"},
		{name: "bool", input: false, wantValid: true, want: "false"},
		{name: "midnight time", input: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), wantValid: true, want: "2024-01-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceText(tt.input)
			if got.Valid != tt.wantValid {
				t.Fatalf("CoerceText(%v).Valid = %v, want %v", tt.input, got.Valid, tt.wantValid)
			}
			if got.Valid && got.String != tt.want {
				t.Errorf("CoerceText(%v) = %q, want %q", tt.input, got.String, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// CoerceDate Tests
// ----------------------------------------------------------------------------

func TestCoerceDate(t *testing.T) {
	tests := []struct {
		name      string
		input     any
		wantValid bool
		want      string
	}{
		{name: "nil", input: nil, wantValid: false},
		{name: "empty", input: "", wantValid: false},
		{name: "whitespace", input: "  ", wantValid: false},
		{name: "dash", input: "-", wantValid: false},
		{name: "time value", input: time.Date(2023, 7, 3, 0, 0, 0, 0, time.UTC), wantValid: true, want: "2023-07-03"},
		{name: "time with clock drops clock", input: time.Date(2023, 7, 3, 14, 30, 0, 0, time.UTC), wantValid: true, want: "2023-07-03"},
		{name: "text passthrough", input: "03/07/2023", wantValid: true, want: "03/07/2023"},
		{name: "malformed text kept verbatim", input: "sometime in Q3", wantValid: true, want: "sometime in Q3"},
		{name: "serial number stringified", input: 45000.0, wantValid: true, want: "45000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceDate(tt.input)
			if got.Valid != tt.wantValid {
				t.Fatalf("CoerceDate(%v).Valid = %v, want %v", tt.input, got.Valid, tt.wantValid)
			}
			if got.Valid && got.String != tt.want {
				t.Errorf("CoerceDate(%v) = %q, want %q", tt.input, got.String, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// Key predicates
// ----------------------------------------------------------------------------

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input any
		want  bool
	}{
		{nil, true},
		{"", true},
		{" \t", true},
		{"-", true},
		{"E-1001", false},
		{0.0, false},
		{false, false},
	}
	for _, tt := range tests {
		if got := IsBlank(tt.input); got != tt.want {
			t.Errorf("IsBlank(%#v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		input any
		want  bool
	}{
		{1.0, true},
		{3, true},
		{"3", false},
		{nil, false},
		{"Total", false},
		{true, false},
	}
	for _, tt := range tests {
		if got := IsNumeric(tt.input); got != tt.want {
			t.Errorf("IsNumeric(%#v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCoerce_DispatchesOnFieldType(t *testing.T) {
	if v, ok := Coerce(FieldInteger, 4.6).(pgtype.Int8); !ok || v != (pgtype.Int8{Int64: 5, Valid: true}) {
		t.Errorf("FieldInteger = %#v, want 5", v)
	}
	if v, ok := Coerce(FieldNumber, "-").(pgtype.Float8); !ok || v.Valid {
		t.Errorf("FieldNumber(\"-\") = %#v, want null", v)
	}
	if v, ok := Coerce(FieldText, 12.0).(pgtype.Text); !ok || v != (pgtype.Text{String: "12", Valid: true}) {
		t.Errorf("FieldText = %#v, want \"12\"", v)
	}
	if v, ok := Coerce(FieldDate, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)).(pgtype.Text); !ok || v.String != "2025-10-01" {
		t.Errorf("FieldDate = %#v, want \"2025-10-01\"", v)
	}
}
