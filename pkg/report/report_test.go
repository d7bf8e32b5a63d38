package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/user/esg-auditor/pkg/engine"
)

func sampleResult(conforme bool) engine.AuditResult {
	govValue, socValue, envValue := 100, 100, 100
	govState, socState, envState := engine.StatePass, engine.StatePass, engine.StatePass
	total := 100
	ncs := []string{}
	tasks := []string{}
	if !conforme {
		socValue, socState = 0, engine.StateFail
		envValue, envState = 0, engine.StateFail
		total = 40
		ncs = []string{"Sin certificaciones laborales verificables", "Sin reporte de sostenibilidad verificable"}
		tasks = []string{"Obtener certificaciones laborales (ISO 45001, SA8000)"}
	}
	return engine.AuditResult{
		Timestamp: time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC),
		Provider: engine.Provider{
			ID: "001", Name: "Aceros del Sur", TaxID: "30-54668997-9",
			WebsiteURL: "https://acerosdelsur.example.com",
		},
		Criteria: map[engine.Category]engine.CriterionScore{
			engine.Governance:    {Category: engine.Governance, Value: govValue, State: govState},
			engine.Social:        {Category: engine.Social, Value: socValue, State: socState},
			engine.Environmental: {Category: engine.Environmental, Value: envValue, State: envState},
		},
		ScoreTotal:      total,
		Conforme:        conforme,
		NonConformities: ncs,
		Tasks:           tasks,
	}
}

func TestWriteJSONShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auditoria_esg.json")
	if err := WriteJSON(path, []engine.AuditResult{sampleResult(false)}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("export is not a JSON array: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("expected 1 record, got %d", len(raw))
	}

	for _, key := range []string{"timestamp", "proveedor", "score_total", "conformidad", "criterios", "no_conformidades", "tareas_proveedor"} {
		if _, ok := raw[0][key]; !ok {
			t.Errorf("export missing key %q", key)
		}
	}

	var criterios map[string]Criterion
	if err := json.Unmarshal(raw[0]["criterios"], &criterios); err != nil {
		t.Fatal(err)
	}
	for _, cat := range []string{"governance", "social", "environmental"} {
		if _, ok := criterios[cat]; !ok {
			t.Errorf("criterios missing category %q", cat)
		}
	}
	if criterios["governance"].Value != 100 || criterios["governance"].State != "PASS" {
		t.Errorf("governance = %+v", criterios["governance"])
	}
}

func TestReadJSONRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auditoria_esg.json")
	if err := WriteJSON(path, []engine.AuditResult{sampleResult(true), sampleResult(false)}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	results, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].Conformidad || results[1].Conformidad {
		t.Error("conformidad flags did not survive the roundtrip")
	}
	if results[0].Proveedor.CUIT != "30-54668997-9" {
		t.Errorf("cuit = %q", results[0].Proveedor.CUIT)
	}
}

func TestWriteProviderReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reporte_001.html")
	if err := WriteProviderReport(path, sampleResult(false)); err != nil {
		t.Fatalf("WriteProviderReport: %v", err)
	}

	html, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	page := string(html)
	for _, want := range []string{"Aceros del Sur", "30-54668997-9", "NO CONFORME", "Sin reporte de sostenibilidad verificable"} {
		if !strings.Contains(page, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestWriteDashboard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.html")
	results := []engine.AuditResult{sampleResult(true), sampleResult(false)}
	if err := WriteDashboard(path, "run-42", results); err != nil {
		t.Fatalf("WriteDashboard: %v", err)
	}

	html, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	page := string(html)
	for _, want := range []string{"Aceros del Sur", "run-42", "reporte_001.html"} {
		if !strings.Contains(page, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]engine.AuditResult{sampleResult(true), sampleResult(false)})
	if s.Total != 2 || s.Conformes != 1 || s.NoConformes != 1 {
		t.Errorf("counts = %+v", s)
	}
	if s.PctConformes != 50 {
		t.Errorf("pct conformes = %d, want 50", s.PctConformes)
	}
	if s.AvgTotal != 70 {
		t.Errorf("avg total = %d, want 70", s.AvgTotal)
	}
	if s.AvgGovernance != 100 || s.AvgSocial != 50 || s.AvgEnvironmental != 50 {
		t.Errorf("category averages = %+v", s)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 || s.AvgTotal != 0 {
		t.Errorf("empty summary = %+v", s)
	}
}

func TestProviderReportName(t *testing.T) {
	if got := ProviderReportName("007"); got != "reporte_007.html" {
		t.Errorf("ProviderReportName = %q", got)
	}
}
