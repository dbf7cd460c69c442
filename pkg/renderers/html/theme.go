package html

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// DefaultThemeName identifies the built-in theme manifest.
const DefaultThemeName = "currency"

// BuiltinManifest returns the go-theme manifest shipped with the renderer.
// Tokens surface as CSS custom properties on the rendered page; the "dark"
// variant overrides the surface colors.
func BuiltinManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"surface":      "#ffffff",
			"text":         "#1f2933",
			"muted":        "#6b7280",
			"border":       "#d1d5db",
			"accent":       "#2563eb",
			"danger":       "#dc2626",
			"radius":       "6px",
			"font":         "system-ui, sans-serif",
			"input-height": "2.5rem",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"surface": "#111827",
					"text":    "#f9fafb",
					"muted":   "#9ca3af",
					"border":  "#374151",
				},
			},
		},
	}
}

// themeContext is the resolved token set handed to templates.
type themeContext struct {
	Name         string
	Variant      string
	CSSVars      map[string]string
	CSSVarsStyle string
}

func (t themeContext) templateData() map[string]any {
	return map[string]any{
		"name":           t.Name,
		"variant":        t.Variant,
		"css_vars_style": t.CSSVarsStyle,
	}
}

// resolveTheme produces the token context for a render. A selector takes
// precedence so applications can plug a go-theme registry; otherwise the
// manifest (built-in by default) is resolved locally.
func resolveTheme(selector theme.ThemeSelector, manifest *theme.Manifest, name, variant string) (themeContext, error) {
	if selector != nil {
		selection, err := selector.Select(name, variant)
		if err != nil {
			return themeContext{}, fmt.Errorf("html renderer: select theme %q: %w", name, err)
		}
		if selection == nil || selection.Manifest == nil {
			return themeContext{}, fmt.Errorf("html renderer: theme %q resolved empty", name)
		}
		return contextFromManifest(selection.Manifest, selection.Theme, selection.Variant), nil
	}

	if manifest == nil {
		manifest = BuiltinManifest()
	}
	if name != "" && name != manifest.Name {
		return themeContext{}, fmt.Errorf("html renderer: unknown theme %q", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return themeContext{}, fmt.Errorf("html renderer: theme %q has no variant %q", manifest.Name, variant)
		}
	}
	return contextFromManifest(manifest, manifest.Name, variant), nil
}

func contextFromManifest(manifest *theme.Manifest, name, variant string) themeContext {
	tokens := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}
	if variant != "" {
		if v, ok := manifest.Variants[variant]; ok {
			for key, value := range v.Tokens {
				tokens[key] = value
			}
		}
	}

	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		vars["--cin-"+key] = value
	}

	return themeContext{
		Name:         name,
		Variant:      variant,
		CSSVars:      vars,
		CSSVarsStyle: cssVarsStyle(vars),
	}
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, "%s: %s; ", key, vars[key])
	}
	return strings.TrimSpace(b.String())
}
