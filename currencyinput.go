// Package currencyinput is the top-level facade for the currency input
// toolkit: amount formatting and parsing, field definitions, and the
// built-in HTML and terminal renderers. The subpackages under pkg/ carry the
// full API; this package re-exports the pieces most callers need.
package currencyinput

import (
	"context"

	"github.com/goliatone/go-currencyinput/pkg/amount"
	"github.com/goliatone/go-currencyinput/pkg/field"
	"github.com/goliatone/go-currencyinput/pkg/render"
	"github.com/goliatone/go-currencyinput/pkg/renderers/html"
	"github.com/goliatone/go-currencyinput/pkg/renderers/tui"
	"github.com/goliatone/go-currencyinput/pkg/schema"
)

// Config drives formatting and parsing for one field.
type Config = amount.Config

// Result is the checked outcome of ParseNumber.
type Result = amount.Result

// Field describes one currency input.
type Field = field.Field

// Form is the renderer-facing form description.
type Form = render.Form

// Options carry per-request renderer overrides.
type Options = render.Options

// DefaultConfig returns the stock two-decimal comma/period configuration.
func DefaultConfig() Config {
	return amount.DefaultConfig()
}

// Format renders a raw value as canonical currency text.
func Format(value any, cfg Config) string {
	return amount.Format(value, cfg)
}

// Parse converts display text back to a plain numeric string.
func Parse(display string, cfg Config) string {
	return amount.Parse(display, cfg)
}

// ParseNumber parses display text into a checked Result.
func ParseNumber(display string, cfg Config) Result {
	return amount.ParseNumber(display, cfg)
}

// NewRegistry returns a renderer registry preloaded with the built-in HTML
// and terminal renderers. Extra HTML options configure the HTML renderer
// before registration.
func NewRegistry(htmlOptions ...html.Option) (*render.Registry, error) {
	htmlRenderer, err := html.New(htmlOptions...)
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry()
	registry.MustRegister(htmlRenderer)
	registry.MustRegister(tui.NewRenderer())
	return registry, nil
}

// Generate renders a form with the named built-in renderer. It is the
// simplest entry point for one-off rendering; hold a registry when rendering
// repeatedly.
func Generate(ctx context.Context, form Form, rendererName string, opts Options) ([]byte, error) {
	registry, err := NewRegistry()
	if err != nil {
		return nil, err
	}
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, form, opts)
}

// GenerateHTML renders a form as a full HTML page with the built-in
// renderer.
func GenerateHTML(ctx context.Context, form Form, opts Options, htmlOptions ...html.Option) ([]byte, error) {
	renderer, err := html.New(htmlOptions...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, form, opts)
}

// FieldsFromSchema loads an OpenAPI document and converts the numeric
// properties of the named component schema into currency fields.
func FieldsFromSchema(ctx context.Context, src schema.Source, schemaName string) ([]Field, error) {
	doc, err := schema.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	return doc.Fields(ctx, schemaName)
}
