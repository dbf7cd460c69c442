package tui

// OutputFormat controls how collected values are serialized by Render.
type OutputFormat string

const (
	// OutputFormatJSON emits an application/json payload of field values.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatPrettyText emits a human-friendly transcript, one field
	// per line in the field's own display convention.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the survey-backed prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithConfirmSubmit asks for a final confirmation after the last field;
// declining re-prompts the whole form.
func WithConfirmSubmit() Option {
	return func(r *Renderer) {
		r.confirmSubmit = true
	}
}
