package html

// ChromeClass is a typed identifier for the semantic CSS classes the
// renderer emits. The embedded stylesheet targets these names.
type ChromeClass string

const (
	ClassForm         ChromeClass = "cin-form"
	ClassHeader       ChromeClass = "cin-header"
	ClassFormErrors   ChromeClass = "cin-form-errors"
	ClassField        ChromeClass = "cin-field"
	ClassFieldInvalid ChromeClass = "cin-field--invalid"
	ClassLabel        ChromeClass = "cin-label"
	ClassControl      ChromeClass = "cin-control"
	ClassCurrency     ChromeClass = "cin-currency"
	ClassInput        ChromeClass = "cin-input"
	ClassDescription  ChromeClass = "cin-help"
	ClassError        ChromeClass = "cin-error"
	ClassActions      ChromeClass = "cin-actions"
	ClassSubmit       ChromeClass = "cin-submit"
	ClassSpinner      ChromeClass = "cin-spinner"
)

func chromeClasses() map[string]any {
	return map[string]any{
		"form":          string(ClassForm),
		"header":        string(ClassHeader),
		"form_errors":   string(ClassFormErrors),
		"field":         string(ClassField),
		"field_invalid": string(ClassFieldInvalid),
		"label":         string(ClassLabel),
		"control":       string(ClassControl),
		"currency":      string(ClassCurrency),
		"input":         string(ClassInput),
		"description":   string(ClassDescription),
		"error":         string(ClassError),
		"actions":       string(ClassActions),
		"submit":        string(ClassSubmit),
		"spinner":       string(ClassSpinner),
	}
}
