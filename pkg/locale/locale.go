// Package locale ships the fixed set of formatting conventions the currency
// input understands. Presets pair separator glyphs with a default currency,
// keyed by short names like "en" or "es"; this is an enumerated list, not a
// general BCP-47 formatter. Symbol resolves display glyphs for the supported
// ISO-4217 codes.
package locale

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-currencyinput/pkg/amount"
)

//go:embed presets.yaml
var presetsYAML []byte

// ErrUnknownPreset reports a preset name outside the embedded set.
var ErrUnknownPreset = errors.New("locale: unknown preset")

// Preset is one named formatting convention from the embedded table.
type Preset struct {
	Name          string   `yaml:"name"`
	Language      string   `yaml:"language"`
	Decimal       string   `yaml:"decimal"`
	Thousand      string   `yaml:"thousand"`
	DecimalLength int      `yaml:"decimalLength"`
	Currency      string   `yaml:"currency"`
	Aliases       []string `yaml:"aliases"`
}

// Tag returns the BCP-47 tag the preset was defined for. Only used to pick a
// CLDR context when resolving symbols; presets never feed a general
// formatter.
func (p Preset) Tag() language.Tag {
	return language.Make(p.Language)
}

// Symbol resolves the preset's currency glyph in the preset's own CLDR
// context.
func (p Preset) Symbol() (string, error) {
	return symbolIn(p.Currency, p.Tag())
}

// Config builds the amount configuration for the preset, including the
// resolved currency glyph.
func (p Preset) Config() amount.Config {
	glyph, err := p.Symbol()
	if err != nil {
		glyph = strings.ToUpper(p.Currency)
	}
	return amount.Config{
		DecimalLength:     p.DecimalLength,
		DecimalSeparator:  p.Decimal,
		ThousandSeparator: p.Thousand,
		Currency:          glyph,
	}
}

type presetTable struct {
	Presets []Preset `yaml:"presets"`
}

var (
	presetsOnce sync.Once
	presetsByID map[string]Preset
	presetNames []string
	presetsErr  error
)

func loadPresets() {
	var table presetTable
	if err := yaml.Unmarshal(presetsYAML, &table); err != nil {
		presetsErr = fmt.Errorf("locale: parse presets: %w", err)
		return
	}

	presetsByID = make(map[string]Preset, len(table.Presets))
	for _, p := range table.Presets {
		name := strings.ToLower(strings.TrimSpace(p.Name))
		if name == "" {
			presetsErr = fmt.Errorf("locale: preset with empty name")
			return
		}
		if err := p.Config().Validate(); err != nil {
			presetsErr = fmt.Errorf("locale: preset %q: %w", p.Name, err)
			return
		}
		if _, exists := presetsByID[name]; exists {
			presetsErr = fmt.Errorf("locale: duplicate preset %q", p.Name)
			return
		}
		presetsByID[name] = p
		presetNames = append(presetNames, p.Name)
		for _, alias := range p.Aliases {
			alias = strings.ToLower(strings.TrimSpace(alias))
			if alias == "" || alias == name {
				continue
			}
			if _, exists := presetsByID[alias]; exists {
				presetsErr = fmt.Errorf("locale: duplicate preset alias %q", alias)
				return
			}
			presetsByID[alias] = p
		}
	}
	sort.Strings(presetNames)
}

// Get returns the preset for a name or alias, case-insensitively.
func Get(name string) (Preset, error) {
	presetsOnce.Do(loadPresets)
	if presetsErr != nil {
		return Preset{}, presetsErr
	}
	p, ok := presetsByID[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// MustGet panics when the preset is missing. Useful for wiring defaults.
func MustGet(name string) Preset {
	p, err := Get(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Config is shorthand for Get(name).Config().
func Config(name string) (amount.Config, error) {
	p, err := Get(name)
	if err != nil {
		return amount.Config{}, err
	}
	return p.Config(), nil
}

// Names lists the canonical preset names, sorted.
func Names() []string {
	presetsOnce.Do(loadPresets)
	return append([]string(nil), presetNames...)
}
