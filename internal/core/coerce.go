package core

// coerce.go turns raw worksheet cell values into nullable pgtype values.
//
// Spreadsheet content is inconsistent: numbers arrive as text, blanks as
// whitespace, and "-" is used as a placeholder for "no value". None of this is
// an error. Every Coerce* function returns Valid=false instead, which binds as
// NULL and marshals to JSON null.
//
// Raw values are whatever the workbook adapter produces: nil, string,
// float64, int, int64, bool or time.Time.

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// numericRegex validates that a string is a plain decimal or scientific number.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// DateLayout is the stored form of date cells.
const DateLayout = "2006-01-02"

// IsBlank reports whether a raw cell value is a placeholder for no number or date.
// nil, empty or whitespace-only strings, and the "-" placeholder are blank.
func IsBlank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		s := strings.TrimSpace(x)
		return s == "" || s == "-"
	default:
		return false
	}
}

// CoerceNumber converts a raw cell value to pgtype.Float8.
// Blank and unparseable values are invalid. Never panics.
func CoerceNumber(v any) pgtype.Float8 {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case bool:
		if x {
			f = 1
		}
	case string:
		s := strings.TrimSpace(x)
		if !numericRegex.MatchString(s) {
			return pgtype.Float8{Valid: false}
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return pgtype.Float8{Valid: false}
		}
		f = parsed
	default:
		return pgtype.Float8{Valid: false}
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return pgtype.Float8{Valid: false}
	}
	return pgtype.Float8{Float64: f, Valid: true}
}

// CoerceInt converts a raw cell value to pgtype.Int8, rounding to the nearest integer.
func CoerceInt(v any) pgtype.Int8 {
	f := CoerceNumber(v)
	if !f.Valid || math.Abs(f.Float64) >= math.MaxInt64 {
		return pgtype.Int8{Valid: false}
	}
	return pgtype.Int8{Int64: int64(math.Round(f.Float64)), Valid: true}
}

// CoerceText converts a raw cell value to pgtype.Text.
// Only nil is invalid; everything else is stringified and trimmed, so an
// empty cell string stays an empty string.
func CoerceText(v any) pgtype.Text {
	if v == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: strings.TrimSpace(stringify(v)), Valid: true}
}

// CoerceDate converts a raw cell value to pgtype.Text holding a date.
// time.Time values are formatted as YYYY-MM-DD. Any other non-blank value is
// stored verbatim; no date parsing is attempted.
func CoerceDate(v any) pgtype.Text {
	if IsBlank(v) {
		return pgtype.Text{Valid: false}
	}
	if t, ok := v.(time.Time); ok {
		return pgtype.Text{String: t.Format(DateLayout), Valid: true}
	}
	return pgtype.Text{String: stringify(v), Valid: true}
}

// Coerce applies the coercion for a field type.
func Coerce(t FieldType, v any) any {
	switch t {
	case FieldNumber:
		return CoerceNumber(v)
	case FieldInteger:
		return CoerceInt(v)
	case FieldDate:
		return CoerceDate(v)
	default:
		return CoerceText(v)
	}
}

// IsNumeric reports whether a raw cell value is a number cell.
// Numeric-looking text does not count.
func IsNumeric(v any) bool {
	switch v.(type) {
	case float64, float32, int, int64:
		return CoerceNumber(v).Valid
	default:
		return false
	}
}

// stringify renders a raw value the way it reads in the sheet.
// Integral floats drop the fraction: 5.0 renders as "5".
func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 {
			return x.Format(DateLayout)
		}
		return x.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(v)
	}
}
