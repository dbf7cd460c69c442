package render

import (
	"context"
	"strings"

	"github.com/goliatone/go-currencyinput/pkg/field"
)

// Form is the render-facing description of a currency input form: the
// ordered fields plus the page chrome around them.
type Form struct {
	// ID names the form element and prefixes generated input ids.
	ID string
	// Title is an optional page heading.
	Title string
	// Action and Method are emitted as markup attributes verbatim.
	Action string
	Method string
	// SubmitLabel is the caption on the submit control. Empty means the
	// renderer's default.
	SubmitLabel string
	Fields      []field.Field
}

// Field returns the form field with the given id.
func (f Form) Field(id string) (field.Field, bool) {
	for _, fld := range f.Fields {
		if fld.ID == id {
			return fld, true
		}
	}
	return field.Field{}, false
}

// FieldIDs lists field ids in declaration order.
func (f Form) FieldIDs() []string {
	ids := make([]string, 0, len(f.Fields))
	for _, fld := range f.Fields {
		ids = append(ids, fld.ID)
	}
	return ids
}

// Validate reports structural problems a renderer cannot work around.
func (f Form) Validate() error {
	if len(f.Fields) == 0 {
		return ErrNoFields
	}
	seen := make(map[string]struct{}, len(f.Fields))
	for _, fld := range f.Fields {
		id := strings.TrimSpace(fld.ID)
		if id == "" {
			return field.ErrIDRequired
		}
		if _, dup := seen[id]; dup {
			return ErrDuplicateFieldID
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Renderer converts a form into a byte representation (HTML page, terminal
// transcript, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form Form, options Options) ([]byte, error)
}
