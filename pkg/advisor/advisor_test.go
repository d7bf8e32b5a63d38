package advisor

import (
	"context"
	"strings"
	"testing"

	"github.com/user/esg-auditor/pkg/report"
)

type stubLLM struct {
	gotSystem string
	gotUser   string
}

func (s *stubLLM) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.gotSystem = systemPrompt
	s.gotUser = userPrompt
	return "plan de remediación", nil
}

func (s *stubLLM) ListModels(ctx context.Context) ([]string, error) {
	return nil, nil
}

func sampleResults() []report.Result {
	return []report.Result{
		{
			Timestamp:  "2026-08-24T10:00:00Z",
			Proveedor:  report.ProviderInfo{ID: "001", Nombre: "Aceros del Sur", CUIT: "30-54668997-9"},
			ScoreTotal: 40,
			Criterios: map[string]report.Criterion{
				"governance":    {Value: 100, State: "PASS"},
				"social":        {Value: 0, State: "FAIL"},
				"environmental": {Value: 0, State: "FAIL"},
			},
			NoConformidades: []string{"Sin certificaciones laborales verificables"},
			TareasProveedor: []string{"Obtener certificaciones laborales (ISO 45001, SA8000)"},
		},
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(sampleResults())
	for _, want := range []string{"Aceros del Sur", "30-54668997-9", "40%", "NO CONFORME", "Sin certificaciones laborales verificables"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestAdvise(t *testing.T) {
	llm := &stubLLM{}
	plan, err := Advise(context.Background(), llm, sampleResults())
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}
	if plan != "plan de remediación" {
		t.Errorf("plan = %q", plan)
	}
	if llm.gotSystem == "" {
		t.Error("system prompt not passed to provider")
	}
	if !strings.Contains(llm.gotUser, "Aceros del Sur") {
		t.Error("user prompt missing audit content")
	}
}

func TestAdviseEmptyResults(t *testing.T) {
	if _, err := Advise(context.Background(), &stubLLM{}, nil); err == nil {
		t.Error("expected error for empty results")
	}
}
