package render

import (
	"errors"
	"strings"
)

var (
	// ErrNoFields reports a form with nothing to render.
	ErrNoFields = errors.New("render: form has no fields")
	// ErrDuplicateFieldID reports two fields sharing an id.
	ErrDuplicateFieldID = errors.New("render: duplicate field id")
	// ErrRendererRequired reports a nil renderer registration.
	ErrRendererRequired = errors.New("render: renderer is required")
	// ErrRendererNameRequired reports a renderer with an empty Name().
	ErrRendererNameRequired = errors.New("render: renderer name is required")
)

// ErrorMapping splits a validation payload into field-level and form-level
// messages keyed by the field ids used throughout the render pipeline.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MergeFormErrors concatenates and normalises multiple form-level error
// slices, trimming whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapErrorPayload normalises a validation payload (submit violations, server
// responses with JSON-pointer style keys) into the flat field ids the form
// declares. Keys that match no field become form-level errors so messages are
// not lost.
func MapErrorPayload(form Form, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{
		Fields: make(map[string][]string),
	}
	if len(payload) == 0 {
		return mapping
	}

	ids := make(map[string]struct{}, len(form.Fields))
	for _, fld := range form.Fields {
		ids[fld.ID] = struct{}{}
	}

	for rawKey, messages := range payload {
		normalized := normalizeMessages(messages)
		if len(normalized) == 0 {
			continue
		}

		id, formLevel := mapErrorKey(rawKey, ids)
		if formLevel || id == "" {
			mapping.Form = append(mapping.Form, normalized...)
			continue
		}
		mapping.Fields[id] = append(mapping.Fields[id], normalized...)
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

// MapSubmitViolations adapts the single-message-per-field map returned by
// form-state submission into render options errors.
func MapSubmitViolations(form Form, violations map[string]string) ErrorMapping {
	if len(violations) == 0 {
		return ErrorMapping{}
	}
	payload := make(map[string][]string, len(violations))
	for id, message := range violations {
		payload[id] = []string{message}
	}
	return MapErrorPayload(form, payload)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// mapErrorKey strips JSON-pointer and wrapper prefixes off a payload key and
// matches the remainder against the declared field ids. The last matching
// segment wins so "body.amount" and "#/amount" both land on "amount".
func mapErrorKey(raw string, ids map[string]struct{}) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if isFormLevelKey(trimmed) {
		return "", true
	}

	segments := parseKeySegments(trimmed)
	if len(segments) == 0 {
		return "", true
	}

	for i := len(segments) - 1; i >= 0; i-- {
		if _, ok := ids[segments[i]]; ok {
			return segments[i], false
		}
	}
	return "", true
}

func parseKeySegments(key string) []string {
	clean := strings.TrimSpace(key)
	clean = strings.TrimPrefix(clean, "#/")
	clean = strings.TrimPrefix(clean, "$.")
	clean = strings.Trim(clean, "#/$.")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
