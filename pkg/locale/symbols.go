package locale

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrUnknownCurrency reports a code that is not valid ISO 4217.
var ErrUnknownCurrency = errors.New("locale: unknown currency")

// The glyphs the widget actually renders. CLDR narrow symbols shift between
// releases, so the supported set is pinned here; ParseISO still validates
// the code and anything outside the table falls back to CLDR extraction.
var symbolTable = map[string]string{
	"BRL": "R$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"TRY": "₺",
	"USD": "$",
}

// Codes returns the currency codes with a pinned display glyph, sorted.
func Codes() []string {
	codes := make([]string, 0, len(symbolTable))
	for code := range symbolTable {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Symbol resolves the display glyph for an ISO-4217 code. Codes outside the
// pinned set resolve through CLDR data, in the English context, and fall back
// to the code itself.
func Symbol(code string) (string, error) {
	return symbolIn(code, language.English)
}

func symbolIn(code string, tag language.Tag) (string, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	if glyph, ok := symbolTable[unit.String()]; ok {
		return glyph, nil
	}
	return cldrSymbol(unit, tag), nil
}

// cldrSymbol renders a zero amount with its currency symbol and trims the
// numeric part back off, leaving the glyph CLDR uses for the unit.
func cldrSymbol(unit currency.Unit, tag language.Tag) string {
	printer := message.NewPrinter(tag)
	rendered := printer.Sprintf("%v", currency.Symbol(unit.Amount(0.0)))
	glyph := strings.TrimRightFunc(rendered, func(r rune) bool {
		switch {
		case r >= '0' && r <= '9':
			return true
		case r == '.' || r == ',' || r == ' ' || r == ' ' || r == ' ':
			return true
		}
		return false
	})
	glyph = strings.TrimSpace(glyph)
	if glyph == "" {
		return unit.String()
	}
	return glyph
}
