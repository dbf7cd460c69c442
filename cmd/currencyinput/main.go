// Command currencyinput renders currency forms from the terminal. It can
// emit a full HTML page, collect values interactively with prompts, drive a
// single live-formatting field, or list the embedded locale presets.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	tea "github.com/charmbracelet/bubbletea"

	currencyinput "github.com/goliatone/go-currencyinput"
	"github.com/goliatone/go-currencyinput/components/currencyfield"
	"github.com/goliatone/go-currencyinput/internal/logging"
	"github.com/goliatone/go-currencyinput/pkg/field"
	"github.com/goliatone/go-currencyinput/pkg/locale"
	"github.com/goliatone/go-currencyinput/pkg/render"
	"github.com/goliatone/go-currencyinput/pkg/renderers/tui"
	"github.com/goliatone/go-currencyinput/pkg/schema"
)

func main() {
	log := logging.NewDefaultLogger()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	var err error
	switch os.Args[1] {
	case "render":
		err = runRender(ctx, log, os.Args[2:])
	case "prompt":
		err = runPrompt(ctx, log, os.Args[2:])
	case "interactive":
		err = runInteractive(log, os.Args[2:])
	case "presets":
		err = runPresets(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			log.Warn("aborted")
			os.Exit(130)
		}
		log.Error("command failed", logging.Err(err))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: currencyinput <command> [flags]

commands:
  render       render a form as an HTML page
  prompt       collect form values with terminal prompts
  interactive  edit one amount with live formatting
  presets      list the embedded locale presets`)
}

func runRender(ctx context.Context, log logging.Logger, args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	source := fs.String("source", "", "OpenAPI document path (demo form if empty)")
	schemaName := fs.String("schema", "", "component schema holding the amount properties")
	output := fs.String("output", "", "output file (stdout if empty)")
	themeName := fs.String("theme", "", "theme name")
	variant := fs.String("variant", "", "theme variant")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form, err := buildForm(ctx, *source, *schemaName)
	if err != nil {
		return err
	}

	page, err := currencyinput.GenerateHTML(ctx, form, currencyinput.Options{
		Theme:   *themeName,
		Variant: *variant,
	})
	if err != nil {
		return err
	}

	if *output != "" {
		if err := os.WriteFile(*output, page, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		log.Info("form written", logging.String("path", *output), logging.Int("bytes", len(page)))
		return nil
	}
	fmt.Println(string(page))
	return nil
}

func runPrompt(ctx context.Context, log logging.Logger, args []string) error {
	fs := flag.NewFlagSet("prompt", flag.ExitOnError)
	source := fs.String("source", "", "OpenAPI document path (demo form if empty)")
	schemaName := fs.String("schema", "", "component schema holding the amount properties")
	format := fs.String("format", "json", "output format: json or pretty")
	confirm := fs.Bool("confirm", false, "ask for confirmation before finishing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form, err := buildForm(ctx, *source, *schemaName)
	if err != nil {
		return err
	}

	opts := []tui.Option{tui.WithOutputFormat(tui.OutputFormat(*format))}
	if *confirm {
		opts = append(opts, tui.WithConfirmSubmit())
	}

	out, err := tui.NewRenderer(opts...).Render(ctx, form, currencyinput.Options{})
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	log.Info("form collected", logging.Int("fields", len(form.Fields)))
	return nil
}

func runInteractive(log logging.Logger, args []string) error {
	fs := flag.NewFlagSet("interactive", flag.ExitOnError)
	label := fs.String("label", "Amount", "field label")
	localeName := fs.String("locale", "en", "locale preset")
	initial := fs.Float64("initial", 0, "initial value")
	min := fs.Float64("min", 0, "minimum accepted value")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := field.New("amount",
		field.WithLabel(*label),
		field.WithLocale(*localeName),
		field.WithInitialValue(*initial),
		field.WithRules(field.Rules{Min: field.Min(*min)}),
	)
	if err != nil {
		return err
	}

	widget, err := currencyfield.New(
		currencyfield.WithField(f),
		currencyfield.WithOnSubmit(func(float64) error { return nil }),
	)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(appModel{field: widget}).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(appModel); ok && m.submitted {
		fmt.Println(m.field.DisplayValue())
		log.Info("amount entered", logging.Float64("value", m.field.Value()))
	}
	return nil
}

func runPresets(args []string) error {
	fs := flag.NewFlagSet("presets", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	for _, name := range locale.Names() {
		p, err := locale.Get(name)
		if err != nil {
			return err
		}
		cfg := p.Config()
		fmt.Printf("%-6s %s  decimal=%q thousand=%q decimals=%d  %s\n",
			p.Name, p.Language, cfg.DecimalSeparator, cfg.ThousandSeparator,
			cfg.DecimalLength, cfg.Currency)
	}
	return nil
}

// buildForm assembles the form to render: either the numeric properties of
// an OpenAPI component schema, or a small built-in demo form.
func buildForm(ctx context.Context, source, schemaName string) (render.Form, error) {
	if source == "" {
		return demoForm(), nil
	}
	if schemaName == "" {
		return render.Form{}, errors.New("schema name is required with -source")
	}

	s := spinner.New(spinner.CharSets[14], 120*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " loading schema"
	s.Start()
	defer s.Stop()

	doc, err := schema.Load(ctx, schema.SourceFromFile(source))
	if err != nil {
		return render.Form{}, err
	}
	fields, err := doc.Fields(ctx, schemaName)
	if err != nil {
		return render.Form{}, err
	}
	if len(fields) == 0 {
		return render.Form{}, fmt.Errorf("schema %q has no numeric properties", schemaName)
	}
	return render.Form{
		ID:     schemaName,
		Title:  schemaName,
		Action: "/" + schemaName,
		Method: "POST",
		Fields: fields,
	}, nil
}

func demoForm() render.Form {
	return render.Form{
		ID:          "payment",
		Title:       "Payment",
		Action:      "/payments",
		Method:      "POST",
		SubmitLabel: "Pay now",
		Fields: []field.Field{
			field.MustNew("amount",
				field.WithLabel("Amount"),
				field.WithLocale("en"),
				field.WithInitialValue(1000.5),
				field.WithRules(field.Rules{Required: true, Min: field.Min(0.01)}),
			),
			field.MustNew("tip_amount",
				field.WithLabel("Tip"),
				field.WithLocale("es"),
				field.WithDescription("Optional"),
			),
		},
	}
}

// appModel hosts the currency field inside a runnable Bubble Tea program.
type appModel struct {
	field     currencyfield.Model
	submitted bool
}

func (m appModel) Init() tea.Cmd { return m.field.Init() }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
	case currencyfield.SubmittedMsg:
		var cmd tea.Cmd
		m.field, cmd = m.field.Update(msg)
		if msg.Err == nil {
			m.submitted = true
			return m, tea.Quit
		}
		return m, cmd
	}
	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	return m.field.View() + "\n\nenter submits · esc quits\n"
}
