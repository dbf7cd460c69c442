// Package formstate is the form-context capability the currency input binds
// to: it owns current values, runs the validation rules, and exposes
// touched/invalid/message flags for inline feedback. The widget only ever
// talks to the Provider interface, so an application can substitute its own
// form engine; Store is the in-memory implementation used by the renderers
// and demos.
//
// Stores follow the widget's single-threaded event model and are not safe
// for concurrent use.
package formstate

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-currencyinput/pkg/amount"
	"github.com/goliatone/go-currencyinput/pkg/field"
)

// FieldState is the validation snapshot a renderer needs for one field.
type FieldState struct {
	Touched bool
	Invalid bool
	Message string
}

// Provider is the injected form-context contract: read the current value,
// push a new one, and read validation state. Implementations decide when
// rules run; Store revalidates on every write.
type Provider interface {
	Value(name string) (float64, bool)
	SetValue(name string, value float64)
	FieldState(name string) FieldState
	SetTouched(name string)
}

// ErrDuplicateField reports a second registration under the same id.
var ErrDuplicateField = errors.New("formstate: field already registered")

type entry struct {
	field field.Field
	value float64
	state FieldState
}

// Store is the in-memory Provider. Fields are registered once, seeded with
// their initial value, and revalidated on every value or touch transition.
type Store struct {
	entries map[string]*entry
	order   []string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[string]*entry)}
}

// Register adds a field and seeds it with the field's initial value.
func (s *Store) Register(f field.Field) error {
	if f.ID == "" {
		return field.ErrIDRequired
	}
	if _, exists := s.entries[f.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateField, f.ID)
	}
	e := &entry{field: f, value: f.InitialValue}
	s.revalidate(e)
	s.entries[f.ID] = e
	s.order = append(s.order, f.ID)
	return nil
}

// MustRegister panics on registration failure. Useful for fixed demo forms.
func (s *Store) MustRegister(f field.Field) {
	if err := s.Register(f); err != nil {
		panic(err)
	}
}

// Value returns the current value for a registered field.
func (s *Store) Value(name string) (float64, bool) {
	e, ok := s.entries[name]
	if !ok {
		return 0, false
	}
	return e.value, true
}

// SetValue stores a new value and revalidates. Unregistered names are
// ignored, matching how form engines drop writes from unmounted inputs.
func (s *Store) SetValue(name string, value float64) {
	e, ok := s.entries[name]
	if !ok {
		return
	}
	e.value = value
	s.revalidate(e)
}

// SetTouched marks the field as interacted with and revalidates, the blur
// transition.
func (s *Store) SetTouched(name string) {
	e, ok := s.entries[name]
	if !ok {
		return
	}
	e.state.Touched = true
	s.revalidate(e)
}

// FieldState returns the current validation snapshot. Unregistered names
// report a zero state.
func (s *Store) FieldState(name string) FieldState {
	e, ok := s.entries[name]
	if !ok {
		return FieldState{}
	}
	return e.state
}

// Field returns the registered definition.
func (s *Store) Field(name string) (field.Field, bool) {
	e, ok := s.entries[name]
	if !ok {
		return field.Field{}, false
	}
	return e.field, true
}

// Fields lists registered fields in registration order.
func (s *Store) Fields() []field.Field {
	out := make([]field.Field, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.entries[name].field)
	}
	return out
}

// Display formats the current value in the field's convention. Unregistered
// names format as an empty string.
func (s *Store) Display(name string) string {
	e, ok := s.entries[name]
	if !ok {
		return ""
	}
	return amount.FormatNumber(e.value, e.field.Config)
}

// Values snapshots all current values keyed by field id.
func (s *Store) Values() map[string]float64 {
	out := make(map[string]float64, len(s.entries))
	for name, e := range s.entries {
		out[name] = e.value
	}
	return out
}

// Submit marks every field touched, revalidates, and returns the violation
// messages keyed by field id. An empty map means the form can be submitted.
func (s *Store) Submit() map[string]string {
	violations := make(map[string]string)
	for _, name := range s.order {
		e := s.entries[name]
		e.state.Touched = true
		s.revalidate(e)
		if e.state.Invalid {
			violations[name] = e.state.Message
		}
	}
	return violations
}

// Reset restores every field to its initial value and clears touch state.
func (s *Store) Reset() {
	for _, e := range s.entries {
		e.value = e.field.InitialValue
		e.state = FieldState{}
		s.revalidate(e)
	}
}

func (s *Store) revalidate(e *entry) {
	display := amount.FormatNumber(e.value, e.field.Config)
	err := e.field.Rules.Validate(e.value, display, e.field.Config)
	if err == nil {
		e.state.Invalid = false
		e.state.Message = ""
		return
	}
	e.state.Invalid = true
	e.state.Message = err.Error()
}
