package field_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/goliatone/go-currencyinput/pkg/amount"
	"github.com/goliatone/go-currencyinput/pkg/field"
)

func ruleKind(t *testing.T, err error) field.RuleKind {
	t.Helper()
	var re *field.RuleError
	if !errors.As(err, &re) {
		t.Fatalf("error %v is not a RuleError", err)
	}
	return re.Kind
}

func TestRulesValidate(t *testing.T) {
	cfg := amount.Config{DecimalLength: 2, DecimalSeparator: ".", ThousandSeparator: ","}

	t.Run("empty rules accept anything", func(t *testing.T) {
		var rules field.Rules
		if err := rules.Validate(-123.45, "-123.45", cfg); err != nil {
			t.Fatalf("Validate error: %v", err)
		}
		if !rules.Empty() {
			t.Fatal("Empty() = false for zero rules")
		}
	})

	t.Run("required rejects zero", func(t *testing.T) {
		rules := field.Rules{Required: true}
		err := rules.Validate(0, "0.00", cfg)
		if got := ruleKind(t, err); got != field.RuleRequired {
			t.Fatalf("kind = %q, want required", got)
		}
		if err.Error() != "value is required" {
			t.Fatalf("message = %q", err.Error())
		}
		if err := rules.Validate(0.01, "0.01", cfg); err != nil {
			t.Fatalf("non-zero value rejected: %v", err)
		}
	})

	t.Run("min bound formats in field convention", func(t *testing.T) {
		rules := field.Rules{Min: field.Min(1000)}
		err := rules.Validate(999.99, "999.99", cfg)
		if got := ruleKind(t, err); got != field.RuleMin {
			t.Fatalf("kind = %q, want min", got)
		}
		if want := "must be at least 1,000.00"; err.Error() != want {
			t.Fatalf("message = %q, want %q", err.Error(), want)
		}
		if err := rules.Validate(1000, "1,000.00", cfg); err != nil {
			t.Fatalf("boundary value rejected: %v", err)
		}
	})

	t.Run("max bound", func(t *testing.T) {
		rules := field.Rules{Max: field.Max(50)}
		err := rules.Validate(50.01, "50.01", cfg)
		if got := ruleKind(t, err); got != field.RuleMax {
			t.Fatalf("kind = %q, want max", got)
		}
		if want := "must be at most 50.00"; err.Error() != want {
			t.Fatalf("message = %q, want %q", err.Error(), want)
		}
	})

	t.Run("pattern runs against the display string", func(t *testing.T) {
		rules := field.Rules{Pattern: regexp.MustCompile(`^\d{1,3}\.\d{2}$`)}
		if err := rules.Validate(12.5, "12.50", cfg); err != nil {
			t.Fatalf("matching display rejected: %v", err)
		}
		err := rules.Validate(1200.5, "1,200.50", cfg)
		if got := ruleKind(t, err); got != field.RulePattern {
			t.Fatalf("kind = %q, want pattern", got)
		}
	})

	t.Run("custom runs last", func(t *testing.T) {
		rules := field.Rules{
			Min:    field.Min(0),
			Custom: func(v float64) error { return errors.New("whole euros only") },
		}
		err := rules.Validate(1.5, "1.50", cfg)
		if got := ruleKind(t, err); got != field.RuleCustom {
			t.Fatalf("kind = %q, want custom", got)
		}
		if err.Error() != "whole euros only" {
			t.Fatalf("message = %q", err.Error())
		}
	})

	t.Run("first violation wins", func(t *testing.T) {
		rules := field.Rules{
			Required: true,
			Min:      field.Min(10),
			Custom:   func(float64) error { return errors.New("never reached") },
		}
		if got := ruleKind(t, rules.Validate(0, "0.00", cfg)); got != field.RuleRequired {
			t.Fatalf("kind = %q, want required", got)
		}
		if got := ruleKind(t, rules.Validate(5, "5.00", cfg)); got != field.RuleMin {
			t.Fatalf("kind = %q, want min", got)
		}
	})
}
