// Command generate-locale-presets regenerates pkg/locale/presets.yaml from
// the canonical table below. Run it after adding or changing a preset so the
// embedded file and this source stay in sync:
//
//	go run ./scripts/generate-locale-presets
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type preset struct {
	Name          string   `yaml:"name"`
	Language      string   `yaml:"language"`
	Decimal       string   `yaml:"decimal"`
	Thousand      string   `yaml:"thousand"`
	DecimalLength int      `yaml:"decimalLength"`
	Currency      string   `yaml:"currency"`
	Aliases       []string `yaml:"aliases,flow"`
}

type table struct {
	Presets []preset `yaml:"presets"`
}

var presets = []preset{
	{Name: "en", Language: "en-US", Decimal: ".", Thousand: ",", DecimalLength: 2, Currency: "USD", Aliases: []string{"en-us", "us"}},
	{Name: "en-GB", Language: "en-GB", Decimal: ".", Thousand: ",", DecimalLength: 2, Currency: "GBP", Aliases: []string{"en-gb", "uk"}},
	{Name: "es", Language: "es-ES", Decimal: ",", Thousand: ".", DecimalLength: 2, Currency: "EUR", Aliases: []string{"es-es", "eu"}},
	{Name: "tr", Language: "tr-TR", Decimal: ",", Thousand: ".", DecimalLength: 2, Currency: "TRY", Aliases: []string{"tr-tr"}},
	{Name: "pt-BR", Language: "pt-BR", Decimal: ",", Thousand: ".", DecimalLength: 2, Currency: "BRL", Aliases: []string{"pt-br", "br"}},
	{Name: "ja", Language: "ja-JP", Decimal: ".", Thousand: ",", DecimalLength: 0, Currency: "JPY", Aliases: []string{"ja-jp", "jp"}},
}

func main() {
	output := flag.String("output", "pkg/locale/presets.yaml", "destination file")
	flag.Parse()

	seen := make(map[string]struct{})
	for _, p := range presets {
		if p.Name == "" || p.Decimal == p.Thousand {
			log.Fatalf("invalid preset %+v", p)
		}
		if _, dup := seen[p.Name]; dup {
			log.Fatalf("duplicate preset %q", p.Name)
		}
		seen[p.Name] = struct{}{}
	}

	data, err := yaml.Marshal(table{Presets: presets})
	if err != nil {
		log.Fatalf("marshal presets: %v", err)
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", *output, err)
	}
	fmt.Printf("wrote %d presets to %s\n", len(presets), *output)
}
