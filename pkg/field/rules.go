package field

import (
	"fmt"
	"regexp"

	"github.com/goliatone/go-currencyinput/pkg/amount"
)

// RuleKind identifies which rule a violation came from.
type RuleKind string

const (
	RuleRequired RuleKind = "required"
	RuleMin      RuleKind = "min"
	RuleMax      RuleKind = "max"
	RulePattern  RuleKind = "pattern"
	RuleCustom   RuleKind = "custom"
)

// Rules enumerates the validations a currency field recognizes. They are
// evaluated in a fixed order (required, min, max, pattern, custom) and the
// first violation wins.
type Rules struct {
	// Required rejects a zero value. Form engines treat an untouched
	// currency field as zero, so zero doubles as "not provided".
	Required bool
	// Min and Max bound the parsed value inclusively.
	Min *float64
	Max *float64
	// Pattern matches against the canonical display string.
	Pattern *regexp.Regexp
	// Custom runs last with the parsed value.
	Custom func(float64) error
}

// RuleError is a single validation violation with a message suitable for
// inline feedback.
type RuleError struct {
	Kind    RuleKind
	Message string
}

func (e *RuleError) Error() string { return e.Message }

// Min returns an option pointer for a bound, shorthand for rule literals.
func Min(v float64) *float64 { return &v }

// Max returns an option pointer for a bound, shorthand for rule literals.
func Max(v float64) *float64 { return &v }

// Validate checks a parsed value and its display string against the rules.
// Bound violations format the bound with the field's own config so feedback
// reads in the user's convention.
func (r Rules) Validate(value float64, display string, cfg amount.Config) error {
	if r.Required && value == 0 {
		return &RuleError{Kind: RuleRequired, Message: "value is required"}
	}
	if r.Min != nil && value < *r.Min {
		return &RuleError{
			Kind:    RuleMin,
			Message: fmt.Sprintf("must be at least %s", amount.FormatNumber(*r.Min, cfg)),
		}
	}
	if r.Max != nil && value > *r.Max {
		return &RuleError{
			Kind:    RuleMax,
			Message: fmt.Sprintf("must be at most %s", amount.FormatNumber(*r.Max, cfg)),
		}
	}
	if r.Pattern != nil && !r.Pattern.MatchString(display) {
		return &RuleError{Kind: RulePattern, Message: "does not match the expected format"}
	}
	if r.Custom != nil {
		if err := r.Custom(value); err != nil {
			return &RuleError{Kind: RuleCustom, Message: err.Error()}
		}
	}
	return nil
}

// Empty reports whether no rule is set.
func (r Rules) Empty() bool {
	return !r.Required && r.Min == nil && r.Max == nil && r.Pattern == nil && r.Custom == nil
}
