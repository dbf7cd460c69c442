package amount

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format renders a raw value as canonical currency text. Strings go through
// the keystroke filter (FormatText); numeric types are formatted directly
// from their value (FormatNumber). Anything else is stringified first. A nil
// value formats as zero.
func Format(value any, cfg Config) string {
	switch v := value.(type) {
	case nil:
		return Zero(cfg)
	case string:
		return FormatText(v, cfg)
	case float64:
		return FormatNumber(v, cfg)
	case float32:
		return FormatNumber(float64(v), cfg)
	case int:
		return FormatNumber(float64(v), cfg)
	case int32:
		return FormatNumber(float64(v), cfg)
	case int64:
		return FormatNumber(float64(v), cfg)
	case uint:
		return FormatNumber(float64(v), cfg)
	case uint64:
		return FormatNumber(float64(v), cfg)
	case fmt.Stringer:
		return FormatText(v.String(), cfg)
	default:
		return FormatText(fmt.Sprint(value), cfg)
	}
}

// FormatText formats a raw keystroke or paste buffer. The buffer is reduced
// in a single pass to ASCII digits plus the first occurrence of the decimal
// separator; everything else, later separator occurrences included, is
// dropped. A leading minus sign on the trimmed input is honored. If nothing
// parseable remains the formatted zero value is returned, so malformed input
// never surfaces as an error.
func FormatText(raw string, cfg Config) string {
	cfg = cfg.Normalize()

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Zero(cfg)
	}
	negative := trimmed[0] == '-'

	filtered := filterKeystrokes(trimmed, cfg.DecimalSeparator[0])
	if filtered == "" {
		return Zero(cfg)
	}

	canonical := strings.Replace(filtered, cfg.DecimalSeparator, ".", 1)
	v, err := strconv.ParseFloat(canonical, 64)
	if err != nil {
		return Zero(cfg)
	}
	if negative {
		v = -v
	}
	return FormatNumber(v, cfg)
}

// FormatNumber formats a numeric value at the configured decimal length.
// NaN and infinities format as zero.
func FormatNumber(v float64, cfg Config) string {
	cfg = cfg.Normalize()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Zero(cfg)
	}

	fixed := fmt.Sprintf("%.*f", cfg.DecimalLength, v)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	// -0.004 rounds to -0.00 at two decimals. Drop the sign when no
	// significant digit survived rounding.
	if sign != "" && !strings.ContainsAny(fixed, "123456789") {
		sign = ""
	}

	integerPart, fractionPart := fixed, ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		integerPart, fractionPart = fixed[:i], fixed[i+1:]
	}

	grouped := groupThousands(integerPart, cfg.ThousandSeparator)
	if cfg.DecimalLength == 0 {
		return sign + grouped
	}
	return sign + grouped + cfg.DecimalSeparator + fractionPart
}

// filterKeystrokes keeps ASCII digits and the first occurrence of the
// decimal separator glyph, dropping everything else in one pass.
func filterKeystrokes(raw string, decimal byte) string {
	var b strings.Builder
	b.Grow(len(raw))
	seenDecimal := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == decimal && !seenDecimal:
			b.WriteByte(c)
			seenDecimal = true
		}
	}
	return b.String()
}

// groupThousands inserts the thousand separator into a run of integer digits,
// grouping in threes from the right.
func groupThousands(digits, separator string) string {
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(separator)
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}
