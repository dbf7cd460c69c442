package render

// Options carry per-request data that renderers use to customise output
// without mutating the form definition.
type Options struct {
	// Method overrides the form's declared HTTP method in the emitted
	// markup. Renderers that cannot express a verb fall back to POST.
	Method string
	// Values pre-populates fields by id, overriding their initial values.
	Values map[string]float64
	// Errors surfaces validation feedback keyed by field id; renderers show
	// these inline next to the offending input. Keys that match no field
	// render as form-level messages.
	Errors map[string][]string
	// Hidden fields are emitted alongside the visible inputs, e.g. a CSRF
	// token.
	Hidden map[string]string
	// Theme and Variant select the visual token set for renderers that
	// support theming.
	Theme   string
	Variant string
}

// Value resolves the current value for a field, falling back to the given
// default when no override is present.
func (o Options) Value(id string, fallback float64) float64 {
	if v, ok := o.Values[id]; ok {
		return v
	}
	return fallback
}

// FieldErrors returns the inline messages for a field id.
func (o Options) FieldErrors(id string) []string {
	if len(o.Errors) == 0 {
		return nil
	}
	return o.Errors[id]
}
