// Package roster reads the supplier roster that feeds the audit engine.
package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/user/esg-auditor/pkg/engine"
)

// Expected header columns. sitio_web, email and pais are optional.
const (
	colID      = "proveedor_id"
	colName    = "nombre"
	colCUIT    = "cuit"
	colWebsite = "sitio_web"
	colEmail   = "email"
	colCountry = "pais"
)

// Load reads the provider roster from a CSV file. An unreadable roster is
// the one fatal condition of a run.
func Load(path string) ([]engine.Provider, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read roster %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a roster CSV. The header row maps columns by name so the
// column order does not matter.
func Parse(r io.Reader) ([]engine.Provider, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("roster has no header row: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{colID, colName, colCUIT} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("roster is missing required column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var providers []engine.Provider
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("roster line %d: %w", line+1, err)
		}
		line++

		p := engine.Provider{
			ID:         field(record, colID),
			Name:       field(record, colName),
			TaxID:      field(record, colCUIT),
			WebsiteURL: field(record, colWebsite),
			Email:      field(record, colEmail),
			Country:    field(record, colCountry),
		}
		if p.ID == "" && p.Name == "" {
			continue // blank line
		}
		providers = append(providers, p)
	}

	return providers, nil
}
