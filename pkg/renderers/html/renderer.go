package html

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-currencyinput/pkg/field"
	"github.com/goliatone/go-currencyinput/pkg/render"
	rendertemplate "github.com/goliatone/go-currencyinput/pkg/render/template"
	"github.com/goliatone/go-currencyinput/pkg/render/template/gotemplate"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	themeSelector    theme.ThemeSelector
	themeManifest    *theme.Manifest
	defaultTheme     string
	defaultVariant   string
	inlineRuntime    bool
	stylesheets      []string
	scripts          []string
}

// WithTemplatesFS supplies an alternate template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithThemeSelector plugs a go-theme selector so theme and variant choices on
// render options resolve through an application-managed registry.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(cfg *config) {
		if selector != nil {
			cfg.themeSelector = selector
		}
	}
}

// WithThemeManifest replaces the built-in manifest.
func WithThemeManifest(manifest *theme.Manifest) Option {
	return func(cfg *config) {
		if manifest != nil {
			cfg.themeManifest = manifest
		}
	}
}

// WithDefaultTheme sets the theme and variant applied when render options
// leave them empty.
func WithDefaultTheme(name, variant string) Option {
	return func(cfg *config) {
		cfg.defaultTheme = strings.TrimSpace(name)
		cfg.defaultVariant = strings.TrimSpace(variant)
	}
}

// WithInlineRuntime embeds the widget stylesheet and browser runtime directly
// into the page, so the output is a self-contained file.
func WithInlineRuntime() Option {
	return func(cfg *config) {
		cfg.inlineRuntime = true
	}
}

// WithStylesheet links an external stylesheet from the page head.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		if href != "" {
			cfg.stylesheets = append(cfg.stylesheets, href)
		}
	}
}

// WithRuntimeScript references an externally hosted runtime bundle instead of
// the inline one.
func WithRuntimeScript(src string) Option {
	return func(cfg *config) {
		if src != "" {
			cfg.scripts = append(cfg.scripts, src)
		}
	}
}

// Renderer emits a complete HTML page for a currency input form: labels,
// inputs carrying their separator configuration as data attributes, inline
// validation feedback, and a submit control with spinner markup.
type Renderer struct {
	templates      rendertemplate.TemplateRenderer
	themeSelector  theme.ThemeSelector
	themeManifest  *theme.Manifest
	defaultTheme   string
	defaultVariant string
	inlineRuntime  bool
	stylesheets    []string
	scripts        []string
}

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	engine := cfg.templateRenderer
	if engine == nil {
		built, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template engine: %w", err)
		}
		engine = built
	}

	return &Renderer{
		templates:      engine,
		themeSelector:  cfg.themeSelector,
		themeManifest:  cfg.themeManifest,
		defaultTheme:   cfg.defaultTheme,
		defaultVariant: cfg.defaultVariant,
		inlineRuntime:  cfg.inlineRuntime,
		stylesheets:    cfg.stylesheets,
		scripts:        cfg.scripts,
	}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the page for a form. Field display values always come from
// the value the options carry (falling back to the field's initial value); the
// markup never reflects raw user text.
func (r *Renderer) Render(ctx context.Context, form render.Form, opts render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	themeName := opts.Theme
	if themeName == "" {
		themeName = r.defaultTheme
	}
	themeVariant := opts.Variant
	if themeVariant == "" {
		themeVariant = r.defaultVariant
	}
	themeCtx, err := resolveTheme(r.themeSelector, r.themeManifest, themeName, themeVariant)
	if err != nil {
		return nil, err
	}

	method, hidden := submitMethod(form, opts)

	data := map[string]any{
		"form": map[string]any{
			"id":           formID(form),
			"title":        form.Title,
			"action":       form.Action,
			"method":       method,
			"submit_label": submitLabel(form),
		},
		"fields":         r.fieldViews(form, opts),
		"form_errors":    formErrors(form, opts),
		"hidden":         hidden,
		"classes":        chromeClasses(),
		"theme":          themeCtx.templateData(),
		"stylesheets":    r.stylesheets,
		"scripts":        r.scripts,
		"inline_runtime": r.inlineRuntime,
		"default_styles": defaultStylesheet(),
		"runtime_script": runtimeScript(),
	}

	page, err := r.templates.RenderTemplate("templates/page.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render page: %w", err)
	}
	return []byte(page), nil
}

func (r *Renderer) fieldViews(form render.Form, opts render.Options) []any {
	views := make([]any, 0, len(form.Fields))
	for _, fld := range form.Fields {
		value := opts.Value(fld.ID, fld.InitialValue)
		errs := opts.FieldErrors(fld.ID)
		views = append(views, map[string]any{
			"id":                 fld.ID,
			"input_id":           inputID(form, fld),
			"label":              fld.DisplayLabel(),
			"description":        field.SanitizeLabel(fld.Description),
			"placeholder":        fld.Placeholder,
			"value":              fld.DisplayValue(value),
			"currency":           fld.Config.Currency,
			"decimal_length":     fld.Config.DecimalLength,
			"decimal_separator":  fld.Config.DecimalSeparator,
			"thousand_separator": fld.Config.ThousandSeparator,
			"required":           fld.Rules.Required,
			"invalid":            len(errs) > 0,
			"errors":             errs,
		})
	}
	return views
}

// submitMethod translates verbs browsers cannot submit (PUT/PATCH/DELETE)
// into POST plus a hidden _method input.
func submitMethod(form render.Form, opts render.Options) (string, []any) {
	method := strings.ToUpper(strings.TrimSpace(opts.Method))
	if method == "" {
		method = strings.ToUpper(strings.TrimSpace(form.Method))
	}
	if method == "" {
		method = http.MethodPost
	}

	var hidden []any
	if method != http.MethodGet && method != http.MethodPost {
		hidden = append(hidden, map[string]any{"name": "_method", "value": method})
		method = http.MethodPost
	}
	names := make([]string, 0, len(opts.Hidden))
	for name := range opts.Hidden {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		hidden = append(hidden, map[string]any{"name": name, "value": opts.Hidden[name]})
	}
	return method, hidden
}

func formErrors(form render.Form, opts render.Options) []string {
	ids := make(map[string]struct{}, len(form.Fields))
	for _, fld := range form.Fields {
		ids[fld.ID] = struct{}{}
	}
	keys := make([]string, 0, len(opts.Errors))
	for key := range opts.Errors {
		if _, isField := ids[key]; isField {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var out []string
	for _, key := range keys {
		out = render.MergeFormErrors(out, opts.Errors[key]...)
	}
	return out
}

func formID(form render.Form) string {
	if form.ID != "" {
		return form.ID
	}
	return "currency-form"
}

func inputID(form render.Form, fld field.Field) string {
	return formID(form) + "-" + fld.ID
}

func submitLabel(form render.Form) string {
	if form.SubmitLabel != "" {
		return form.SubmitLabel
	}
	return "Submit"
}
