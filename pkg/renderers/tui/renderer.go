// Package tui renders a currency form as an interactive terminal session:
// one survey prompt per field, answers validated with the field's own
// parse-and-rules pipeline, and the collected values serialized at the end.
package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-currencyinput/pkg/amount"
	"github.com/goliatone/go-currencyinput/pkg/field"
	"github.com/goliatone/go-currencyinput/pkg/render"
)

// Renderer prompts for every form field on the terminal and returns the
// collected values. It implements render.Renderer; the returned bytes are
// the serialized answers, not markup.
type Renderer struct {
	driver        PromptDriver
	outputFormat  OutputFormat
	confirmSubmit bool
}

// NewRenderer builds a terminal renderer backed by survey prompts.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string { return "tui" }

func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatPrettyText {
		return "text/plain; charset=utf-8"
	}
	return "application/json"
}

// Render walks the form fields in order, prompting for each. Defaults come
// from options.Values when present, the field's initial value otherwise, and
// are shown pre-formatted in the field's convention. An interrupted prompt
// aborts the whole session with ErrAborted.
func (r *Renderer) Render(ctx context.Context, form render.Form, options render.Options) ([]byte, error) {
	if r.driver == nil {
		return nil, ErrDriverRequired
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if form.Title != "" {
		if err := r.driver.Info(ctx, form.Title); err != nil {
			return nil, err
		}
	}
	for {
		values, err := r.collect(ctx, form, options)
		if err != nil {
			return nil, err
		}
		if r.confirmSubmit {
			ok, err := r.driver.Confirm(ctx, ConfirmConfig{
				Message: submitMessage(form),
				Default: true,
			})
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		return r.serialize(form, values)
	}
}

func (r *Renderer) collect(ctx context.Context, form render.Form, options render.Options) (map[string]float64, error) {
	values := make(map[string]float64, len(form.Fields))
	for _, fld := range form.Fields {
		seed := options.Value(fld.ID, fld.InitialValue)
		answer, err := r.driver.Input(ctx, InputConfig{
			Message:   fld.DisplayLabel(),
			Default:   fld.DisplayValue(seed),
			Help:      fld.Description,
			Validator: fieldValidator(fld),
		})
		if err != nil {
			return nil, err
		}
		display := amount.FormatText(answer, fld.Config)
		values[fld.ID] = amount.ParseNumber(display, fld.Config).Or(0)
	}
	return values, nil
}

// fieldValidator runs the same pipeline the browser runtime does: normalize
// the raw answer through the keystroke filter, parse it, then apply the
// field's rules against the parsed value and canonical display.
func fieldValidator(fld field.Field) func(string) error {
	return func(raw string) error {
		display := amount.FormatText(raw, fld.Config)
		res := amount.ParseNumber(display, fld.Config)
		if !res.Ok() {
			return fmt.Errorf("%q is not a valid amount", raw)
		}
		return fld.Rules.Validate(res.Value(), display, fld.Config)
	}
}

func (r *Renderer) serialize(form render.Form, values map[string]float64) ([]byte, error) {
	if r.outputFormat == OutputFormatPrettyText {
		return prettyTranscript(form, values), nil
	}
	// Ordered by field declaration so output is stable across runs.
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, fld := range form.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(fld.ID)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(values[fld.ID])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func prettyTranscript(form render.Form, values map[string]float64) []byte {
	var sb strings.Builder
	if form.Title != "" {
		sb.WriteString(form.Title)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("-", len(form.Title)))
		sb.WriteString("\n")
	}
	for _, fld := range form.Fields {
		sb.WriteString(fld.DisplayLabel())
		sb.WriteString(": ")
		sb.WriteString(fld.DisplayValue(values[fld.ID]))
		sb.WriteString("\n")
	}
	return []byte(sb.String())
}

func submitMessage(form render.Form) string {
	if form.SubmitLabel != "" {
		return form.SubmitLabel + "?"
	}
	return "Submit?"
}
