// Package field models a single currency input: its identity, caption,
// seed value, validation rules, and amount formatting configuration. A Field
// is assembled once and read by renderers and the form-state store; nothing
// mutates it afterwards.
package field

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-currencyinput/pkg/amount"
	"github.com/goliatone/go-currencyinput/pkg/locale"
)

// ErrIDRequired reports a field constructed without an identity.
var ErrIDRequired = errors.New("field: id is required")

// Field describes one currency input.
type Field struct {
	// ID registers the field with the form-state provider and names it in
	// error payloads.
	ID string
	// Label is the display caption. When empty, renderers derive one from
	// the ID.
	Label string
	// Placeholder and Description are display-only hints.
	Placeholder string
	Description string
	// InitialValue seeds the provider before the first user interaction.
	InitialValue float64
	// Rules are handed to the validation engine verbatim.
	Rules Rules
	// Config drives Format and Parse for this field.
	Config amount.Config
	// Metadata carries pass-through annotations, e.g. schema extensions.
	Metadata map[string]any
}

type OptionFn func(*Field)

// New builds a normalized field. The zero configuration is the stock
// two-decimal comma/period convention.
func New(id string, fns ...OptionFn) (Field, error) {
	f := Field{
		ID:     id,
		Config: amount.DefaultConfig(),
	}
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&f)
	}
	if f.ID == "" {
		return Field{}, ErrIDRequired
	}
	f.Config = f.Config.Normalize()
	if err := f.Config.Validate(); err != nil {
		return Field{}, fmt.Errorf("field %q: %w", f.ID, err)
	}
	return f, nil
}

// MustNew panics on an invalid definition. Useful for wiring fixed fields.
func MustNew(id string, fns ...OptionFn) Field {
	f, err := New(id, fns...)
	if err != nil {
		panic(err)
	}
	return f
}

func WithLabel(label string) OptionFn {
	return func(f *Field) {
		if f == nil {
			return
		}
		f.Label = label
	}
}

func WithPlaceholder(placeholder string) OptionFn {
	return func(f *Field) {
		if f == nil {
			return
		}
		f.Placeholder = placeholder
	}
}

func WithDescription(description string) OptionFn {
	return func(f *Field) {
		if f == nil {
			return
		}
		f.Description = description
	}
}

func WithInitialValue(v float64) OptionFn {
	return func(f *Field) {
		if f == nil {
			return
		}
		f.InitialValue = v
	}
}

func WithRules(rules Rules) OptionFn {
	return func(f *Field) {
		if f == nil {
			return
		}
		f.Rules = rules
	}
}

func WithConfig(cfg amount.Config) OptionFn {
	return func(f *Field) {
		if f == nil {
			return
		}
		f.Config = cfg
	}
}

func WithDecimalLength(n int) OptionFn {
	return func(f *Field) {
		if f == nil {
			return
		}
		f.Config.DecimalLength = n
	}
}

func WithSeparators(decimal, thousand string) OptionFn {
	return func(f *Field) {
		if f == nil {
			return
		}
		f.Config.DecimalSeparator = decimal
		f.Config.ThousandSeparator = thousand
	}
}

// WithCurrency resolves an ISO-4217 code to its display glyph. Unknown codes
// leave the glyph empty; New does not fail on them.
func WithCurrency(code string) OptionFn {
	return func(f *Field) {
		if f == nil {
			return
		}
		glyph, err := locale.Symbol(code)
		if err != nil {
			return
		}
		f.Config.Currency = glyph
	}
}

// WithLocale applies a named preset's separators, decimal length, and
// currency glyph. Unknown presets are ignored so option lists stay
// composable; use locale.Get directly when the name must be checked.
func WithLocale(name string) OptionFn {
	return func(f *Field) {
		if f == nil {
			return
		}
		cfg, err := locale.Config(name)
		if err != nil {
			return
		}
		f.Config = cfg
	}
}

func WithMetadata(meta map[string]any) OptionFn {
	return func(f *Field) {
		if f == nil {
			return
		}
		if meta == nil {
			f.Metadata = nil
			return
		}
		copied := make(map[string]any, len(meta))
		for k, v := range meta {
			copied[k] = v
		}
		f.Metadata = copied
	}
}

// DisplayLabel returns the sanitized caption, deriving one from the ID when
// no label was set.
func (f Field) DisplayLabel() string {
	if f.Label == "" {
		return DeriveLabel(f.ID)
	}
	return SanitizeLabel(f.Label)
}

// DisplayValue formats a current value for this field.
func (f Field) DisplayValue(v float64) string {
	return amount.FormatNumber(v, f.Config)
}
