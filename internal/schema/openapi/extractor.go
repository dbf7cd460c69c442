// Package openapi maps OpenAPI component schemas onto currency field
// definitions using kin-openapi. Only the numeric properties of a schema
// become fields; formatting details ride on x- extensions.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-currencyinput/pkg/field"
)

// Extension keys the extractor understands. Anything else under x- is
// carried through on Field.Metadata untouched.
const (
	extCurrencyCode      = "x-currency-code"
	extDecimalLength     = "x-decimal-length"
	extDecimalSeparator  = "x-decimal-separator"
	extThousandSeparator = "x-thousand-separator"
	extLocale            = "x-locale"
)

var (
	ErrSchemaNotFound   = errors.New("openapi: schema not found")
	ErrPropertyNotFound = errors.New("openapi: property not found")
	ErrNotNumeric       = errors.New("openapi: property is not numeric")
)

// Extractor parses raw OpenAPI documents and converts schema properties to
// fields. External references stay disabled so a document cannot reach out
// to the network or filesystem during parsing.
type Extractor struct{}

func New() *Extractor { return &Extractor{} }

// Fields returns one field per numeric property of the named component
// schema, in property-name order.
func (e *Extractor) Fields(ctx context.Context, raw []byte, schemaName string) ([]field.Field, error) {
	schema, err := e.loadSchema(ctx, raw, schemaName)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(schema.Properties))
	for name, ref := range schema.Properties {
		if ref != nil && ref.Value != nil && isNumeric(ref.Value) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	fields := make([]field.Field, 0, len(names))
	for _, name := range names {
		f, err := fieldFromProperty(name, schema.Properties[name].Value, isRequired(schema, name))
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// Field converts one named property of a component schema.
func (e *Extractor) Field(ctx context.Context, raw []byte, schemaName, property string) (field.Field, error) {
	schema, err := e.loadSchema(ctx, raw, schemaName)
	if err != nil {
		return field.Field{}, err
	}
	ref, ok := schema.Properties[property]
	if !ok || ref == nil || ref.Value == nil {
		return field.Field{}, fmt.Errorf("%w: %s.%s", ErrPropertyNotFound, schemaName, property)
	}
	if !isNumeric(ref.Value) {
		return field.Field{}, fmt.Errorf("%w: %s.%s", ErrNotNumeric, schemaName, property)
	}
	return fieldFromProperty(property, ref.Value, isRequired(schema, property))
}

func (e *Extractor) loadSchema(ctx context.Context, raw []byte, schemaName string) (*openapi3.Schema, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: false,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if spec.Components == nil {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, schemaName)
	}
	ref, ok := spec.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, schemaName)
	}
	return ref.Value, nil
}

func isNumeric(s *openapi3.Schema) bool {
	if s.Type == nil {
		return false
	}
	return s.Type.Is(openapi3.TypeNumber) || s.Type.Is(openapi3.TypeInteger)
}

func isRequired(schema *openapi3.Schema, name string) bool {
	for _, req := range schema.Required {
		if req == name {
			return true
		}
	}
	return false
}

// fieldFromProperty maps one numeric property: title and description become
// display text, bounds and pattern become rules, and formatting extensions
// override the locale preset when both are present.
func fieldFromProperty(name string, prop *openapi3.Schema, required bool) (field.Field, error) {
	opts := []field.OptionFn{
		field.WithLabel(prop.Title),
		field.WithDescription(prop.Description),
	}

	// Locale first so explicit separator extensions can override it.
	if locale, ok := stringExt(prop.Extensions, extLocale); ok {
		opts = append(opts, field.WithLocale(locale))
	}
	if n, ok := intExt(prop.Extensions, extDecimalLength); ok {
		opts = append(opts, field.WithDecimalLength(n))
	}
	decimal, hasDecimal := stringExt(prop.Extensions, extDecimalSeparator)
	thousand, hasThousand := stringExt(prop.Extensions, extThousandSeparator)
	if hasDecimal || hasThousand {
		opts = append(opts, func(f *field.Field) {
			if hasDecimal {
				f.Config.DecimalSeparator = decimal
			}
			if hasThousand {
				f.Config.ThousandSeparator = thousand
			}
		})
	}
	if code, ok := stringExt(prop.Extensions, extCurrencyCode); ok {
		opts = append(opts, field.WithCurrency(code))
	}

	rules := field.Rules{Required: required}
	if prop.Min != nil {
		rules.Min = field.Min(*prop.Min)
	}
	if prop.Max != nil {
		rules.Max = field.Max(*prop.Max)
	}
	if prop.Pattern != "" {
		re, err := regexp.Compile(prop.Pattern)
		if err != nil {
			return field.Field{}, fmt.Errorf("openapi: property %q pattern: %w", name, err)
		}
		rules.Pattern = re
	}
	opts = append(opts, field.WithRules(rules))

	if v, ok := floatValue(prop.Default); ok {
		opts = append(opts, field.WithInitialValue(v))
	}

	if meta := passthroughExtensions(prop.Extensions); len(meta) > 0 {
		opts = append(opts, field.WithMetadata(meta))
	}

	return field.New(name, opts...)
}

// passthroughExtensions keeps the x- annotations the extractor does not
// consume itself.
func passthroughExtensions(ext map[string]any) map[string]any {
	if len(ext) == 0 {
		return nil
	}
	consumed := map[string]struct{}{
		extCurrencyCode:      {},
		extDecimalLength:     {},
		extDecimalSeparator:  {},
		extThousandSeparator: {},
		extLocale:            {},
	}
	out := make(map[string]any)
	for key, value := range ext {
		if !strings.HasPrefix(key, "x-") {
			continue
		}
		if _, ok := consumed[key]; ok {
			continue
		}
		out[key] = value
	}
	return out
}

func stringExt(ext map[string]any, key string) (string, bool) {
	v, ok := ext[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

// intExt accepts the numeric shapes the YAML and JSON decoders produce.
func intExt(ext map[string]any, key string) (int, bool) {
	v, ok := ext[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(n)
		return parsed, err == nil
	default:
		return 0, false
	}
}

func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
