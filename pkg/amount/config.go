package amount

import (
	"errors"
	"strings"
)

// Separator glyphs accepted by Config. Keeping the set closed makes parsing
// unambiguous and keeps the single-pass filter a byte scan.
const (
	SeparatorComma  = ","
	SeparatorPeriod = "."
)

const (
	// DefaultDecimalLength is the fractional digit count applied when a
	// config leaves it unset.
	DefaultDecimalLength = 2
	// MaxDecimalLength caps the fractional digits a config may request.
	// float64 round-trips degrade past this point.
	MaxDecimalLength = 8
)

var (
	// ErrSeparatorConflict reports a config whose decimal and thousand
	// separators are the same glyph, which makes Parse ambiguous.
	ErrSeparatorConflict = errors.New("amount: decimal and thousand separators must differ")
	// ErrInvalidSeparator reports a separator outside the accepted glyph set.
	ErrInvalidSeparator = errors.New("amount: separator must be \",\" or \".\"")
)

// Config describes how a value is rendered as currency text. The zero value
// formats whole numbers with a comma decimal separator and period grouping;
// DefaultConfig returns the stock two-decimal configuration.
//
// Currency is a display-only prefix glyph consumed by renderers; Format and
// Parse never emit or expect it.
type Config struct {
	DecimalLength     int
	DecimalSeparator  string
	ThousandSeparator string
	Currency          string
}

// DefaultConfig returns the widget's stock configuration.
func DefaultConfig() Config {
	return Config{
		DecimalLength:     DefaultDecimalLength,
		DecimalSeparator:  SeparatorComma,
		ThousandSeparator: SeparatorPeriod,
	}
}

// Normalize fills unset separators with their defaults and clamps
// DecimalLength into [0, MaxDecimalLength]. It does not resolve separator
// conflicts; Validate reports those.
func (c Config) Normalize() Config {
	if c.DecimalSeparator == "" {
		c.DecimalSeparator = SeparatorComma
	}
	if c.ThousandSeparator == "" {
		c.ThousandSeparator = SeparatorPeriod
	}
	if c.DecimalLength < 0 {
		c.DecimalLength = 0
	}
	if c.DecimalLength > MaxDecimalLength {
		c.DecimalLength = MaxDecimalLength
	}
	return c
}

// Validate reports whether the normalized config can format and parse
// unambiguously.
func (c Config) Validate() error {
	c = c.Normalize()
	if !validSeparator(c.DecimalSeparator) || !validSeparator(c.ThousandSeparator) {
		return ErrInvalidSeparator
	}
	if c.DecimalSeparator == c.ThousandSeparator {
		return ErrSeparatorConflict
	}
	return nil
}

func validSeparator(s string) bool {
	return s == SeparatorComma || s == SeparatorPeriod
}

// Zero returns the formatted zero value for the config, e.g. "0,00" for the
// default config or "0" when DecimalLength is zero. It doubles as the
// fallback display for unparsable input.
func Zero(cfg Config) string {
	cfg = cfg.Normalize()
	if cfg.DecimalLength == 0 {
		return "0"
	}
	return "0" + cfg.DecimalSeparator + strings.Repeat("0", cfg.DecimalLength)
}
