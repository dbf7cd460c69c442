package amount

import (
	"math"
	"strconv"
	"strings"
)

// Parse converts canonical display text back into a numeric string: every
// thousand separator is removed and every decimal separator becomes a
// decimal point. No validation happens here; feeding the result to
// strconv.ParseFloat is the caller's concern, or use ParseNumber for the
// checked path.
func Parse(display string, cfg Config) string {
	cfg = cfg.Normalize()
	out := strings.ReplaceAll(display, cfg.ThousandSeparator, "")
	return strings.ReplaceAll(out, cfg.DecimalSeparator, ".")
}

// ParseNumber parses display text into a Result that distinguishes a usable
// value from unparsable input, instead of coercing bad text to zero the way
// Format does.
func ParseNumber(display string, cfg Config) Result {
	text := Parse(display, cfg)
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Result{text: display}
	}
	return Result{value: v, text: display, valid: true}
}

// Result is the outcome of ParseNumber: either a parsed value or the
// offending text.
type Result struct {
	value float64
	text  string
	valid bool
}

// Ok reports whether the input parsed to a usable value.
func (r Result) Ok() bool { return r.valid }

// Value returns the parsed value, zero when the input was invalid.
func (r Result) Value() float64 { return r.value }

// Or returns the parsed value, or fallback when the input was invalid.
func (r Result) Or(fallback float64) float64 {
	if !r.valid {
		return fallback
	}
	return r.value
}

// Text returns the display text the result was parsed from.
func (r Result) Text() string { return r.text }
