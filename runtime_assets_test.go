package currencyinput

import (
	"io/fs"
	"strings"
	"testing"
)

func TestRuntimeAssetsFSContainsRuntimeScript(t *testing.T) {
	fsys := RuntimeAssetsFS()
	data, err := fs.ReadFile(fsys, "currency-input.js")
	if err != nil {
		t.Fatalf("expected runtime script to be readable: %v", err)
	}
	if !strings.Contains(string(data), "data-currency-input") {
		t.Fatalf("expected runtime script to bind via data-currency-input")
	}
}

func TestRuntimeAssetsFSContainsStylesheet(t *testing.T) {
	fsys := RuntimeAssetsFS()
	data, err := fs.ReadFile(fsys, "currency-input.css")
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), "--cin-") {
		t.Fatalf("expected stylesheet to consume theme tokens")
	}
}

func TestEmbeddedTemplatesContainsPage(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), "templates/page.tmpl"); err != nil {
		t.Fatalf("expected page template to be readable: %v", err)
	}
}
