package currencyfield

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-currencyinput/pkg/field"
	"github.com/goliatone/go-currencyinput/pkg/formstate"
)

const (
	defaultWidth = 24
	minWidth     = 8
)

// SubmitFunc runs when the user confirms a valid value. It executes off the
// update loop; the returned error surfaces as the field's error line.
type SubmitFunc func(value float64) error

// Options configure a Model.
type Options struct {
	Field    field.Field
	Provider formstate.Provider
	Width    int
	Styles   Styles
	OnSubmit SubmitFunc
}

type OptionFn func(*Options)

// NewOptions applies the option functions over the defaults. A missing
// provider gets a private in-memory store; widths clamp to a readable
// minimum.
func NewOptions(fns ...OptionFn) Options {
	opts := Options{
		Width:  defaultWidth,
		Styles: DefaultStyles(),
	}
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.Width < minWidth {
		opts.Width = minWidth
	}
	if opts.Provider == nil && opts.Field.ID != "" {
		store := formstate.NewStore()
		store.MustRegister(opts.Field)
		opts.Provider = store
	}
	return opts
}

func WithField(f field.Field) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Field = f
	}
}

// WithProvider shares an external form-state provider, letting the widget
// participate in a multi-field form. The field must already be registered
// with it.
func WithProvider(provider formstate.Provider) OptionFn {
	return func(o *Options) {
		if o == nil || provider == nil {
			return
		}
		o.Provider = provider
	}
}

func WithWidth(width int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Width = width
	}
}

func WithStyles(styles Styles) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Styles = styles
	}
}

// WithOnSubmit sets the action Enter triggers once validation passes.
func WithOnSubmit(fn SubmitFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.OnSubmit = fn
	}
}

// submitCmd wraps the submit action as a command so it runs off the update
// loop.
func submitCmd(fn SubmitFunc, value float64) tea.Cmd {
	return func() tea.Msg {
		return SubmittedMsg{Value: value, Err: fn(value)}
	}
}
