// Package report serializes audit results: the JSON export consumed by
// downstream systems plus the HTML report and dashboard renderings.
package report

import (
	"encoding/json"
	"os"
	"time"

	"github.com/user/esg-auditor/pkg/engine"
)

// ProviderInfo is the provider subset carried in the export
type ProviderInfo struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	CUIT     string `json:"cuit"`
	SitioWeb string `json:"sitio_web,omitempty"`
}

// Criterion is the per-category slice of the export
type Criterion struct {
	Value int    `json:"value"`
	State string `json:"state"`
}

// Result is the wire form of one engine.AuditResult
type Result struct {
	Timestamp       string               `json:"timestamp"`
	Proveedor       ProviderInfo         `json:"proveedor"`
	ScoreTotal      int                  `json:"score_total"`
	Conformidad     bool                 `json:"conformidad"`
	Criterios       map[string]Criterion `json:"criterios"`
	NoConformidades []string             `json:"no_conformidades"`
	TareasProveedor []string             `json:"tareas_proveedor"`
}

// ToWire converts an engine result to its serializable form
func ToWire(r engine.AuditResult) Result {
	criterios := make(map[string]Criterion, len(r.Criteria))
	for cat, score := range r.Criteria {
		criterios[string(cat)] = Criterion{Value: score.Value, State: string(score.State)}
	}
	return Result{
		Timestamp: r.Timestamp.Format(time.RFC3339),
		Proveedor: ProviderInfo{
			ID:       r.Provider.ID,
			Nombre:   r.Provider.Name,
			CUIT:     r.Provider.TaxID,
			SitioWeb: r.Provider.WebsiteURL,
		},
		ScoreTotal:      r.ScoreTotal,
		Conformidad:     r.Conforme,
		Criterios:       criterios,
		NoConformidades: r.NonConformities,
		TareasProveedor: r.Tasks,
	}
}

// WriteJSON exports the ordered result sequence as an indented JSON array
func WriteJSON(path string, results []engine.AuditResult) error {
	wire := make([]Result, 0, len(results))
	for _, r := range results {
		wire = append(wire, ToWire(r))
	}
	data, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// ReadJSON loads a previously exported results file
func ReadJSON(path string) ([]Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var results []Result
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, err
	}
	return results, nil
}
