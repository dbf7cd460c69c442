package tui_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-currencyinput/pkg/field"
	"github.com/goliatone/go-currencyinput/pkg/render"
	"github.com/goliatone/go-currencyinput/pkg/renderers/tui"
	"github.com/goliatone/go-currencyinput/pkg/testsupport"
)

type scriptedDriver struct {
	answers  []string
	confirms []bool
	inputs   []tui.InputConfig
	infos    []string
	err      error
}

func (d *scriptedDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	d.inputs = append(d.inputs, cfg)
	if len(d.answers) == 0 {
		return cfg.Default, nil
	}
	answer := d.answers[0]
	d.answers = d.answers[1:]
	return answer, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, _ tui.ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		return true, nil
	}
	ok := d.confirms[0]
	d.confirms = d.confirms[1:]
	return ok, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func TestRendererCollectsJSON(t *testing.T) {
	driver := &scriptedDriver{answers: []string{"2,500.75", "12,34"}}
	r := tui.NewRenderer(tui.WithPromptDriver(driver))

	out, err := r.Render(testsupport.Context(), testsupport.PaymentForm(), render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := `{"amount":2500.75,"tip_amount":12.34}`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	if got, want := len(driver.inputs), 2; got != want {
		t.Fatalf("prompt count = %d, want %d", got, want)
	}
	if got, want := driver.inputs[0].Message, "Amount"; got != want {
		t.Errorf("first prompt message = %q, want %q", got, want)
	}
	if got, want := driver.inputs[0].Default, "1,000.50"; got != want {
		t.Errorf("first prompt default = %q, want %q", got, want)
	}
	if diff := cmp.Diff([]string{"Payment"}, driver.infos); diff != "" {
		t.Errorf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestRendererValuesOverrideDefaults(t *testing.T) {
	driver := &scriptedDriver{}
	r := tui.NewRenderer(tui.WithPromptDriver(driver))

	opts := render.Options{Values: map[string]float64{"amount": 42}}
	out, err := r.Render(testsupport.Context(), testsupport.PaymentForm(), opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got, want := driver.inputs[0].Default, "42.00"; got != want {
		t.Errorf("default = %q, want %q", got, want)
	}
	want := `{"amount":42,"tip_amount":0}`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRendererPrettyOutput(t *testing.T) {
	driver := &scriptedDriver{answers: []string{"2,500.75", "12,34"}}
	r := tui.NewRenderer(
		tui.WithPromptDriver(driver),
		tui.WithOutputFormat(tui.OutputFormatPrettyText),
	)

	out, err := r.Render(testsupport.Context(), testsupport.PaymentForm(), render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "Payment\n-------\nAmount: 2,500.75\nTip: 12,34\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
	if got, want := r.ContentType(), "text/plain; charset=utf-8"; got != want {
		t.Errorf("ContentType() = %q, want %q", got, want)
	}
}

func TestRendererValidatorRunsRules(t *testing.T) {
	driver := &scriptedDriver{answers: []string{"10"}}
	r := tui.NewRenderer(tui.WithPromptDriver(driver))

	form := render.Form{
		ID: "invoice",
		Fields: []field.Field{
			field.MustNew("total", field.WithRules(field.Rules{
				Required: true,
				Min:      field.Min(5),
				Max:      field.Max(100),
			})),
		},
	}
	if _, err := r.Render(testsupport.Context(), form, render.Options{}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	validate := driver.inputs[0].Validator
	if validate == nil {
		t.Fatal("prompt carried no validator")
	}
	if err := validate("0,00"); err == nil {
		t.Error("validator accepted a zero value on a required field")
	}
	if err := validate("250"); err == nil {
		t.Error("validator accepted a value above the max")
	}
	if err := validate("50"); err != nil {
		t.Errorf("validator rejected a valid value: %v", err)
	}
}

func TestRendererConfirmDecline(t *testing.T) {
	driver := &scriptedDriver{
		answers:  []string{"10", "0", "20", "0"},
		confirms: []bool{false, true},
	}
	r := tui.NewRenderer(tui.WithPromptDriver(driver), tui.WithConfirmSubmit())

	out, err := r.Render(testsupport.Context(), testsupport.PaymentForm(), render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	// Declining the confirmation re-prompts every field.
	if got, want := len(driver.inputs), 4; got != want {
		t.Fatalf("prompt count = %d, want %d", got, want)
	}
	want := `{"amount":20,"tip_amount":0}`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRendererAborted(t *testing.T) {
	driver := &scriptedDriver{err: tui.ErrAborted}
	r := tui.NewRenderer(tui.WithPromptDriver(driver))

	_, err := r.Render(testsupport.Context(), testsupport.PaymentForm(), render.Options{})
	if !errors.Is(err, tui.ErrAborted) {
		t.Fatalf("Render error = %v, want ErrAborted", err)
	}
}

func TestRendererRejectsEmptyForm(t *testing.T) {
	r := tui.NewRenderer(tui.WithPromptDriver(&scriptedDriver{}))
	_, err := r.Render(testsupport.Context(), render.Form{ID: "empty"}, render.Options{})
	if !errors.Is(err, render.ErrNoFields) {
		t.Fatalf("Render error = %v, want ErrNoFields", err)
	}
}
