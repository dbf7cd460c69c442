package schema

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	internalopenapi "github.com/goliatone/go-currencyinput/internal/schema/openapi"
	"github.com/goliatone/go-currencyinput/pkg/field"
)

var (
	// ErrSourceRequired reports a load attempted without a source.
	ErrSourceRequired = errors.New("schema: source is required")
	// ErrEmptyDocument reports a source that yielded no payload.
	ErrEmptyDocument = errors.New("schema: document is empty")
)

// ErrSchemaNotFound is returned when the named component schema does not
// exist in the document.
var ErrSchemaNotFound = internalopenapi.ErrSchemaNotFound

// ErrPropertyNotFound is returned when the named property does not exist on
// the schema.
var ErrPropertyNotFound = internalopenapi.ErrPropertyNotFound

// ErrNotNumeric is returned when the named property cannot carry an amount.
var ErrNotNumeric = internalopenapi.ErrNotNumeric

// Document is a loaded OpenAPI payload plus its origin. Field extraction
// re-parses the raw payload per call; cache the extracted fields, not the
// document, when calling in a loop.
type Document struct {
	source Source
	raw    []byte
}

// Load reads the payload behind a source.
func Load(ctx context.Context, src Source) (Document, error) {
	if src == nil {
		return Document{}, ErrSourceRequired
	}
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	var (
		data []byte
		err  error
	)
	switch s := src.(type) {
	case fileSource:
		data, err = os.ReadFile(s.path)
	case fsSource:
		if s.fsys == nil {
			return Document{}, errors.New("schema: fs source has no filesystem")
		}
		data, err = fs.ReadFile(s.fsys, s.name)
	case bytesSource:
		data = s.data
	default:
		err = fmt.Errorf("schema: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return Document{}, fmt.Errorf("schema: load %s: %w", src.Location(), err)
	}
	return NewDocument(src, data)
}

// NewDocument wraps an already-loaded payload.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, ErrSourceRequired
	}
	if len(raw) == 0 {
		return Document{}, ErrEmptyDocument
	}
	return Document{source: src, raw: append([]byte(nil), raw...)}, nil
}

// Source returns the origin metadata.
func (d Document) Source() Source { return d.source }

// Location returns the origin identifier.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte { return append([]byte(nil), d.raw...) }

// Fields extracts every numeric property of the named component schema as a
// currency field, in property-name order.
func (d Document) Fields(ctx context.Context, schemaName string) ([]field.Field, error) {
	return internalopenapi.New().Fields(ctx, d.raw, schemaName)
}

// Field extracts one numeric property of the named component schema.
func (d Document) Field(ctx context.Context, schemaName, property string) (field.Field, error) {
	return internalopenapi.New().Field(ctx, d.raw, schemaName, property)
}

// FieldFromDocument maps a single property from an inline document without
// constructing a Document first.
func FieldFromDocument(ctx context.Context, data []byte, schemaName, property string) (field.Field, error) {
	doc, err := NewDocument(SourceFromBytes(data), data)
	if err != nil {
		return field.Field{}, err
	}
	return doc.Field(ctx, schemaName, property)
}
