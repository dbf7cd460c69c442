// Package binding glues a text field to the form-state provider. On every
// keystroke the raw buffer is formatted, the formatted text is parsed back to
// a number, the number lands in the provider, and the caret is put back where
// it was once the field has been re-rendered. The displayed text is always
// derived from the provider's value, never from the keystroke itself, which
// is what keeps the field controlled.
package binding

import (
	"errors"
	"unicode/utf8"

	"github.com/goliatone/go-currencyinput/pkg/amount"
	"github.com/goliatone/go-currencyinput/pkg/field"
	"github.com/goliatone/go-currencyinput/pkg/formstate"
)

// CaretField is the widget-side contract: a text cell with a settable caret.
// Caret offsets count runes.
type CaretField interface {
	Text() string
	SetText(string)
	Caret() int
	SetCaret(int)
}

// FrameScheduler runs a callback after the surface's next paint/layout pass.
// Replacing a field's text resets its caret to the end, so restoring the
// caret synchronously would be overwritten; the restore has to wait one
// frame. Restores are last-write-wins across rapid keystrokes.
type FrameScheduler interface {
	OnNextFrame(func())
}

// FrameFunc adapts a function to FrameScheduler.
type FrameFunc func(func())

func (f FrameFunc) OnNextFrame(fn func()) { f(fn) }

// SyncScheduler runs callbacks immediately. Terminal surfaces re-render
// synchronously inside the event loop, so there is no later frame to wait
// for.
type SyncScheduler struct{}

func (SyncScheduler) OnNextFrame(fn func()) { fn() }

var (
	// ErrInputRequired reports a controller built without a caret field.
	ErrInputRequired = errors.New("binding: input field is required")
	// ErrProviderRequired reports a controller built without form state.
	ErrProviderRequired = errors.New("binding: form-state provider is required")
)

// Controller owns the keystroke loop for one field.
type Controller struct {
	field    field.Field
	input    CaretField
	provider formstate.Provider
	frames   FrameScheduler
}

type Option func(*Controller)

// WithFrameScheduler overrides the default synchronous scheduler. Browser or
// animation-frame surfaces pass their own deferral here.
func WithFrameScheduler(frames FrameScheduler) Option {
	return func(c *Controller) {
		if c == nil || frames == nil {
			return
		}
		c.frames = frames
	}
}

// New wires a field definition to its input widget and form state, and
// renders the provider's current value into the widget.
func New(f field.Field, input CaretField, provider formstate.Provider, fns ...Option) (*Controller, error) {
	if input == nil {
		return nil, ErrInputRequired
	}
	if provider == nil {
		return nil, ErrProviderRequired
	}
	c := &Controller{
		field:    f,
		input:    input,
		provider: provider,
		frames:   SyncScheduler{},
	}
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(c)
	}
	c.Sync()
	return c, nil
}

// Value reads the current value from the provider, falling back to the
// field's initial value before registration.
func (c *Controller) Value() float64 {
	if v, ok := c.provider.Value(c.field.ID); ok {
		return v
	}
	return c.field.InitialValue
}

// Sync renders the provider's current value into the input, replacing
// whatever the widget held.
func (c *Controller) Sync() {
	c.input.SetText(amount.FormatNumber(c.Value(), c.field.Config))
}

// HandleInput processes one keystroke: capture the caret, format the raw
// buffer, parse the formatted text, push the number into the provider,
// re-render from the provider, and restore the caret on the next frame.
func (c *Controller) HandleInput() {
	caret := c.input.Caret()

	formatted := amount.FormatText(c.input.Text(), c.field.Config)
	value := amount.ParseNumber(formatted, c.field.Config).Or(0)
	c.provider.SetValue(c.field.ID, value)

	display := amount.FormatNumber(c.Value(), c.field.Config)
	c.input.SetText(display)

	c.frames.OnNextFrame(func() {
		c.input.SetCaret(clampCaret(caret, c.input.Text()))
	})
}

// HandleBlur marks the field touched so validation feedback may show.
func (c *Controller) HandleBlur() {
	c.provider.SetTouched(c.field.ID)
}

// State exposes the provider's validation snapshot for this field.
func (c *Controller) State() formstate.FieldState {
	return c.provider.FieldState(c.field.ID)
}

// Field returns the bound definition.
func (c *Controller) Field() field.Field {
	return c.field
}

func clampCaret(caret int, text string) int {
	if caret < 0 {
		return 0
	}
	if max := utf8.RuneCountInString(text); caret > max {
		return max
	}
	return caret
}
