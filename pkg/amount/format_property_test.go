package amount_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/goliatone/go-currencyinput/pkg/amount"
)

// propertyConfigs covers both separator conventions at several decimal
// lengths.
func propertyConfigs() []amount.Config {
	return []amount.Config{
		{DecimalLength: 0, DecimalSeparator: ".", ThousandSeparator: ","},
		{DecimalLength: 2, DecimalSeparator: ".", ThousandSeparator: ","},
		{DecimalLength: 2, DecimalSeparator: ",", ThousandSeparator: "."},
		{DecimalLength: 4, DecimalSeparator: ",", ThousandSeparator: "."},
	}
}

func configLabel(cfg amount.Config) string {
	return fmt.Sprintf("decimals=%d decimal=%q thousand=%q", cfg.DecimalLength, cfg.DecimalSeparator, cfg.ThousandSeparator)
}

// TestFormatParseRoundTrip_PropertyBased verifies that parsing formatted
// output recovers the value rounded to the configured decimal length.
func TestFormatParseRoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, cfg := range propertyConfigs() {
		cfg := cfg
		properties.Property("round-trip at "+configLabel(cfg), prop.ForAll(
			func(v float64) bool {
				display := amount.FormatNumber(v, cfg)
				got, err := strconv.ParseFloat(amount.Parse(display, cfg), 64)
				if err != nil {
					t.Logf("Parse(%q) not numeric: %v", display, err)
					return false
				}
				want, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', cfg.DecimalLength, 64), 64)
				if err != nil {
					return false
				}
				return got == want
			},
			gen.Float64Range(0, 1e9),
		))
	}

	properties.TestingRun(t)
}

// TestFormatIdempotence_PropertyBased verifies the two stability laws of the
// controlled-field loop: formatting already formatted text is a no-op, and
// parsing a display back to a number and formatting again reproduces it.
func TestFormatIdempotence_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, cfg := range propertyConfigs() {
		cfg := cfg
		properties.Property("reformat display at "+configLabel(cfg), prop.ForAll(
			func(v float64) bool {
				display := amount.FormatNumber(v, cfg)
				again := amount.FormatText(display, cfg)
				if display != again {
					t.Logf("FormatText(%q) = %q", display, again)
					return false
				}
				return true
			},
			gen.Float64Range(0, 1e9),
		))
		properties.Property("parse then format at "+configLabel(cfg), prop.ForAll(
			func(v float64) bool {
				display := amount.FormatNumber(v, cfg)
				res := amount.ParseNumber(display, cfg)
				if !res.Ok() {
					t.Logf("ParseNumber(%q) invalid", display)
					return false
				}
				again := amount.FormatNumber(res.Value(), cfg)
				if display != again {
					t.Logf("FormatNumber(ParseNumber(%q)) = %q", display, again)
					return false
				}
				return true
			},
			gen.Float64Range(0, 1e9),
		))
	}

	properties.TestingRun(t)
}

// TestFormatShape_PropertyBased verifies the canonical display shape: digits
// grouped in threes, the configured amount of fractional digits, and no
// stray characters.
func TestFormatShape_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, cfg := range propertyConfigs() {
		cfg := cfg
		properties.Property("shape at "+configLabel(cfg), prop.ForAll(
			func(v float64) bool {
				display := amount.FormatNumber(v, cfg)

				integer, fraction := display, ""
				if cfg.DecimalLength > 0 {
					i := strings.LastIndex(display, cfg.DecimalSeparator)
					if i < 0 {
						t.Logf("%q missing decimal separator", display)
						return false
					}
					integer, fraction = display[:i], display[i+1:]
					if len(fraction) != cfg.DecimalLength {
						t.Logf("%q fraction length %d, want %d", display, len(fraction), cfg.DecimalLength)
						return false
					}
					if strings.Trim(fraction, "0123456789") != "" {
						return false
					}
				}

				groups := strings.Split(integer, cfg.ThousandSeparator)
				for i, g := range groups {
					if strings.Trim(g, "0123456789") != "" {
						t.Logf("%q group %q has non-digits", display, g)
						return false
					}
					if i == 0 {
						if len(g) < 1 || len(g) > 3 {
							return false
						}
						continue
					}
					if len(g) != 3 {
						t.Logf("%q group %q not three digits", display, g)
						return false
					}
				}
				return true
			},
			gen.Float64Range(0, 1e9),
		))
	}

	properties.TestingRun(t)
}
