package roster

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	csv := `proveedor_id,nombre,cuit,sitio_web,email,pais
001,Aceros del Sur,30-54668997-9,https://acerosdelsur.example.com,compras@acerosdelsur.example.com,AR
002,Textil Norte,20-12345678-6,,contacto@textilnorte.example.com,AR
003,Sin Web SRL,30-00100000-0,,,AR
`
	providers, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(providers) != 3 {
		t.Fatalf("expected 3 providers, got %d", len(providers))
	}

	first := providers[0]
	if first.ID != "001" || first.Name != "Aceros del Sur" || first.TaxID != "30-54668997-9" {
		t.Errorf("unexpected first provider: %+v", first)
	}
	if first.WebsiteURL != "https://acerosdelsur.example.com" {
		t.Errorf("website = %q", first.WebsiteURL)
	}

	if providers[1].WebsiteURL != "" {
		t.Errorf("expected empty website for provider 002, got %q", providers[1].WebsiteURL)
	}
	if providers[2].Email != "" {
		t.Errorf("expected empty email for provider 003, got %q", providers[2].Email)
	}
}

func TestParseShuffledColumns(t *testing.T) {
	csv := `cuit,pais,nombre,proveedor_id
30-54668997-9,AR,Aceros del Sur,001
`
	providers, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if providers[0].ID != "001" || providers[0].TaxID != "30-54668997-9" {
		t.Errorf("column mapping by name failed: %+v", providers[0])
	}
}

func TestParseMissingRequiredColumn(t *testing.T) {
	csv := `proveedor_id,nombre,sitio_web
001,Aceros del Sur,https://example.com
`
	if _, err := Parse(strings.NewReader(csv)); err == nil {
		t.Error("expected error for roster without cuit column")
	}
}

func TestParseSkipsBlankRows(t *testing.T) {
	csv := `proveedor_id,nombre,cuit
001,Aceros del Sur,30-54668997-9
,,
`
	providers, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(providers) != 1 {
		t.Errorf("expected blank row skipped, got %d providers", len(providers))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.csv"); err == nil {
		t.Error("expected error for missing roster file")
	}
}
