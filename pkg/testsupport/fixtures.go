// Package testsupport carries fixture builders and golden-file helpers shared
// by renderer and schema tests.
package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-currencyinput/pkg/field"
	"github.com/goliatone/go-currencyinput/pkg/render"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// PaymentForm builds the two-field demo form the renderer tests exercise: a
// required USD amount and an optional EUR tip in the comma-decimal
// convention.
func PaymentForm() render.Form {
	return render.Form{
		ID:          "payment",
		Title:       "Payment",
		Action:      "/payments",
		Method:      "POST",
		SubmitLabel: "Pay now",
		Fields: []field.Field{
			field.MustNew("amount",
				field.WithLabel("Amount"),
				field.WithInitialValue(1000.5),
				field.WithSeparators(".", ","),
				field.WithCurrency("USD"),
				field.WithRules(field.Rules{Required: true, Min: field.Min(0.01)}),
			),
			field.MustNew("tip_amount",
				field.WithLabel("Tip"),
				field.WithSeparators(",", "."),
				field.WithCurrency("EUR"),
				field.WithDescription("Optional"),
			),
		},
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}
