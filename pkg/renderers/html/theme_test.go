package html

import (
	"testing"

	theme "github.com/goliatone/go-theme"
)

func TestResolveTheme_BuiltinDefaults(t *testing.T) {
	ctx, err := resolveTheme(nil, nil, "", "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ctx.Name != DefaultThemeName {
		t.Fatalf("unexpected theme name: %s", ctx.Name)
	}
	if ctx.CSSVars["--cin-accent"] != "#2563eb" {
		t.Fatalf("expected accent token, got %q", ctx.CSSVars["--cin-accent"])
	}
}

func TestResolveTheme_VariantTokensWin(t *testing.T) {
	ctx, err := resolveTheme(nil, nil, DefaultThemeName, "dark")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ctx.CSSVars["--cin-surface"] != "#111827" {
		t.Fatalf("variant surface token not applied: %q", ctx.CSSVars["--cin-surface"])
	}
	// Tokens the variant leaves alone keep the base value.
	if ctx.CSSVars["--cin-accent"] != "#2563eb" {
		t.Fatalf("base accent token lost: %q", ctx.CSSVars["--cin-accent"])
	}
}

func TestResolveTheme_UnknownNameAndVariant(t *testing.T) {
	if _, err := resolveTheme(nil, nil, "missing", ""); err == nil {
		t.Fatal("expected unknown theme error")
	}
	if _, err := resolveTheme(nil, nil, DefaultThemeName, "sepia"); err == nil {
		t.Fatal("expected unknown variant error")
	}
}

type stubSelector struct {
	selection *theme.Selection
	err       error
	calls     int
}

func (s *stubSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls++
	return s.selection, s.err
}

func TestResolveTheme_SelectorWins(t *testing.T) {
	manifest := &theme.Manifest{
		Name:   "acme",
		Tokens: map[string]string{"accent": "#bada55"},
	}
	selector := &stubSelector{selection: &theme.Selection{
		Theme:    "acme",
		Variant:  "brand",
		Manifest: manifest,
	}}

	ctx, err := resolveTheme(selector, nil, "acme", "brand")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if selector.calls != 1 {
		t.Fatalf("expected one selector call, got %d", selector.calls)
	}
	if ctx.Name != "acme" || ctx.Variant != "brand" {
		t.Fatalf("unexpected selection: %s/%s", ctx.Name, ctx.Variant)
	}
	if ctx.CSSVars["--cin-accent"] != "#bada55" {
		t.Fatalf("selector manifest tokens not applied: %q", ctx.CSSVars["--cin-accent"])
	}
}

func TestCSSVarsStyleIsSortedAndTrimmed(t *testing.T) {
	got := cssVarsStyle(map[string]string{
		"--cin-b": "2",
		"--cin-a": "1",
	})
	want := "--cin-a: 1; --cin-b: 2;"
	if got != want {
		t.Fatalf("css vars style mismatch: want %q, got %q", want, got)
	}
}
