package html_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-currencyinput/pkg/render"
	"github.com/goliatone/go-currencyinput/pkg/renderers/html"
	"github.com/goliatone/go-currencyinput/pkg/testsupport"
)

func renderPage(t *testing.T, opts render.Options, options ...html.Option) string {
	t.Helper()

	renderer, err := html.New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(testsupport.Context(), testsupport.PaymentForm(), opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(output)
}

func TestRenderer_RendersControlledInputs(t *testing.T) {
	page := renderPage(t, render.Options{})

	for _, want := range []string{
		`<form id="payment" class="cin-form" action="/payments" method="POST"`,
		`<h1 class="cin-header">Payment</h1>`,
		`id="payment-amount"`,
		`name="amount"`,
		`value="1,000.50"`,
		`data-decimal-length="2"`,
		`data-decimal-separator="."`,
		`data-thousand-separator=","`,
		`<span class="cin-currency" aria-hidden="true">$</span>`,
		`id="payment-tip_amount"`,
		`value="0,00"`,
		`<span class="cin-currency" aria-hidden="true">€</span>`,
		`<p class="cin-help">Optional</p>`,
		`<span>Pay now</span>`,
		`class="cin-spinner"`,
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("page missing %q\n%s", want, page)
		}
	}
}

func TestRenderer_ValueOverridesAndErrors(t *testing.T) {
	page := renderPage(t, render.Options{
		Values: map[string]float64{"amount": 25},
		Errors: map[string][]string{
			"amount": {"must be at least 0.01"},
			"form":   {"submission rejected"},
		},
	})

	for _, want := range []string{
		`value="25.00"`,
		`aria-invalid="true"`,
		`cin-field--invalid`,
		`<p class="cin-error" role="alert">must be at least 0.01</p>`,
		`<div class="cin-form-errors" role="alert">`,
		`<p>submission rejected</p>`,
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("page missing %q\n%s", want, page)
		}
	}
}

func TestRenderer_MethodOverrideEmitsHiddenInput(t *testing.T) {
	page := renderPage(t, render.Options{Method: "PUT"})

	if !strings.Contains(page, `method="POST"`) {
		t.Fatalf("expected browser-safe POST method\n%s", page)
	}
	if !strings.Contains(page, `<input type="hidden" name="_method" value="PUT">`) {
		t.Fatalf("expected hidden _method input\n%s", page)
	}
}

func TestRenderer_ThemeTokensBecomeCSSVars(t *testing.T) {
	page := renderPage(t, render.Options{})

	if !strings.Contains(page, `--cin-accent: #2563eb;`) {
		t.Fatalf("expected built-in theme tokens as css vars\n%s", page)
	}
	if !strings.Contains(page, `data-theme="currency"`) {
		t.Fatalf("expected theme name on form element\n%s", page)
	}
}

func TestRenderer_DarkVariantOverridesTokens(t *testing.T) {
	page := renderPage(t, render.Options{Variant: "dark"})

	if !strings.Contains(page, `--cin-surface: #111827;`) {
		t.Fatalf("expected dark surface token\n%s", page)
	}
	if !strings.Contains(page, `data-theme-variant="dark"`) {
		t.Fatalf("expected variant on form element\n%s", page)
	}
}

func TestRenderer_UnknownThemeFails(t *testing.T) {
	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	_, err = renderer.Render(testsupport.Context(), testsupport.PaymentForm(), render.Options{Theme: "missing"})
	if err == nil {
		t.Fatal("expected unknown theme error")
	}
}

func TestRenderer_InlineRuntime(t *testing.T) {
	page := renderPage(t, render.Options{}, html.WithInlineRuntime())

	if !strings.Contains(page, "data-currency-input") {
		t.Fatalf("expected runtime hook attribute\n%s", page)
	}
	if !strings.Contains(page, "requestAnimationFrame") {
		t.Fatalf("expected inline caret-restore runtime\n%s", page)
	}
	if !strings.Contains(page, ".cin-input {") {
		t.Fatalf("expected inline stylesheet\n%s", page)
	}
}

func TestRenderer_ExternalAssets(t *testing.T) {
	page := renderPage(t, render.Options{},
		html.WithStylesheet("/assets/currency-input.css"),
		html.WithRuntimeScript("/assets/currency-input.js"),
	)

	if !strings.Contains(page, `<link rel="stylesheet" href="/assets/currency-input.css">`) {
		t.Fatalf("expected stylesheet link\n%s", page)
	}
	if !strings.Contains(page, `<script src="/assets/currency-input.js"></script>`) {
		t.Fatalf("expected runtime script tag\n%s", page)
	}
}

func TestRenderer_RejectsInvalidForms(t *testing.T) {
	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	_, err = renderer.Render(testsupport.Context(), render.Form{ID: "empty"}, render.Options{})
	if err != render.ErrNoFields {
		t.Fatalf("expected ErrNoFields, got %v", err)
	}
}
