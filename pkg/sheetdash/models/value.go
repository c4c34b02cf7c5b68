package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Value is a single cell or field value: either a number or text.
// The zero Value is empty text.
type Value struct {
	num     float64
	text    string
	numeric bool
}

// Number returns a numeric Value.
func Number(f float64) Value {
	return Value{num: f, numeric: true}
}

// Text returns a text Value with surrounding whitespace trimmed.
func Text(s string) Value {
	return Value{text: strings.TrimSpace(s)}
}

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool { return v.numeric }

// Float returns the numeric value and whether v is numeric.
func (v Value) Float() (float64, bool) { return v.num, v.numeric }

// IsEmpty reports whether v is empty text. Numbers, including zero, are never empty.
func (v Value) IsEmpty() bool {
	return !v.numeric && v.text == ""
}

// String renders v for display. Numbers use the shortest representation that
// round-trips, switching to exponent notation only for very large or small magnitudes.
func (v Value) String() string {
	if !v.numeric {
		return v.text
	}
	return formatNumber(v.num)
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if f == 0 {
		// Negative zero displays as "0".
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// MarshalJSON encodes numbers as JSON numbers and text as JSON strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.numeric && !math.IsNaN(v.num) && !math.IsInf(v.num, 0) {
		return []byte(formatNumber(v.num)), nil
	}
	return json.Marshal(v.String())
}

// MarshalYAML encodes numbers as YAML numbers and text as YAML strings.
func (v Value) MarshalYAML() (interface{}, error) {
	if v.numeric {
		return v.num, nil
	}
	return v.text, nil
}
