package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

const fullComplianceBody = `<html><body>
<p>Certificaciones vigentes: ISO 45001 y SA 8000.</p>
<a href="/rse/reporte-sostenibilidad-2024.pdf">Memoria RSE 2024</a>
</body></html>`

func newTestAuditor(t *testing.T, fetcher ContentFetcher) *Auditor {
	t.Helper()
	a, err := New(Options{Fetcher: fetcher, Workers: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

// valid CUIT, website unreachable: governance carries the audit alone
func TestAuditProviderUnreachableWebsite(t *testing.T) {
	a := newTestAuditor(t, &fixtureFetcher{err: errors.New("timeout")})
	r := a.AuditProvider(context.Background(), Provider{
		ID: "001", Name: "Aceros del Sur", TaxID: "30-54668997-9",
		WebsiteURL: "https://acerosdelsur.example.com",
	})

	if r.Criteria[Governance].Value != 100 {
		t.Errorf("governance = %d, want 100", r.Criteria[Governance].Value)
	}
	if r.Criteria[Social].State != StateFail || r.Criteria[Environmental].State != StateFail {
		t.Error("social and environmental should FAIL when the site is unreachable")
	}
	if r.ScoreTotal != 40 {
		t.Errorf("total = %d, want 40", r.ScoreTotal)
	}
	if r.Conforme {
		t.Error("score 40 classified conforme")
	}
	if len(r.NonConformities) != 2 {
		t.Errorf("expected social and environmental non-conformities, got %v", r.NonConformities)
	}
}

// invalid CUIT but full web evidence: still below threshold
func TestAuditProviderInvalidCUIT(t *testing.T) {
	a := newTestAuditor(t, &fixtureFetcher{body: fullComplianceBody})
	r := a.AuditProvider(context.Background(), Provider{
		ID: "002", Name: "Textil Norte", TaxID: "30-54668997-8",
		WebsiteURL: "https://textilnorte.example.com",
	})

	if r.Criteria[Governance].State != StateFail {
		t.Error("governance should FAIL for an invalid CUIT")
	}
	if r.Criteria[Social].Value != 100 || r.Criteria[Environmental].Value != 100 {
		t.Errorf("web evidence scored %d/%d, want 100/100",
			r.Criteria[Social].Value, r.Criteria[Environmental].Value)
	}
	if r.ScoreTotal != 60 {
		t.Errorf("total = %d, want 60", r.ScoreTotal)
	}
	if r.Conforme {
		t.Error("score 60 classified conforme")
	}
	if len(r.NonConformities) != 1 {
		t.Errorf("expected a single governance non-conformity, got %v", r.NonConformities)
	}
}

// valid CUIT, one certification, no sustainability evidence
func TestAuditProviderPartialSocial(t *testing.T) {
	a := newTestAuditor(t, &fixtureFetcher{body: "<p>Certificados bajo ISO 45001.</p>"})
	r := a.AuditProvider(context.Background(), Provider{
		ID: "003", Name: "Química Pampa", TaxID: "30-54668997-9",
		WebsiteURL: "https://quimicapampa.example.com",
	})

	if r.Criteria[Social].Value != 50 || r.Criteria[Social].State != StatePartial {
		t.Errorf("social = %d/%s, want 50/PARTIAL", r.Criteria[Social].Value, r.Criteria[Social].State)
	}
	if r.ScoreTotal != 55 {
		t.Errorf("total = %d, want 55", r.ScoreTotal)
	}
	if r.Conforme {
		t.Error("score 55 classified conforme")
	}
}

// fully compliant provider
func TestAuditProviderConforme(t *testing.T) {
	a := newTestAuditor(t, &fixtureFetcher{body: fullComplianceBody})
	r := a.AuditProvider(context.Background(), Provider{
		ID: "004", Name: "Logística Andina", TaxID: "30-54668997-9",
		WebsiteURL: "https://logisticaandina.example.com",
	})

	if r.ScoreTotal != 100 {
		t.Errorf("total = %d, want 100", r.ScoreTotal)
	}
	if !r.Conforme {
		t.Error("perfect provider classified no conforme")
	}
	if len(r.NonConformities) != 0 || len(r.Tasks) != 0 {
		t.Errorf("expected clean result, got NCs=%v tasks=%v", r.NonConformities, r.Tasks)
	}
	if len(r.Criteria) != 3 {
		t.Errorf("expected exactly one score per category, got %d", len(r.Criteria))
	}
}

// identical evidence must always produce an identical score
func TestAuditProviderDeterministic(t *testing.T) {
	a := newTestAuditor(t, &fixtureFetcher{body: fullComplianceBody})
	p := Provider{ID: "005", Name: "Det SA", TaxID: "30-54668997-9", WebsiteURL: "https://det.example.com"}

	first := a.AuditProvider(context.Background(), p)
	second := a.AuditProvider(context.Background(), p)
	if first.ScoreTotal != second.ScoreTotal || first.Conforme != second.Conforme {
		t.Errorf("re-audit diverged: %d/%v vs %d/%v",
			first.ScoreTotal, first.Conforme, second.ScoreTotal, second.Conforme)
	}
}

func TestAuditAllPreservesOrder(t *testing.T) {
	a, err := New(Options{Fetcher: &fixtureFetcher{body: fullComplianceBody}, Workers: 3})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var providers []Provider
	for i := 0; i < 10; i++ {
		providers = append(providers, Provider{
			ID: fmt.Sprintf("%03d", i), Name: fmt.Sprintf("Proveedor %d", i),
			TaxID: "30-54668997-9", WebsiteURL: "https://p.example.com",
		})
	}

	results := a.AuditAll(context.Background(), providers)
	if len(results) != len(providers) {
		t.Fatalf("got %d results for %d providers", len(results), len(providers))
	}
	for i, r := range results {
		if r.Provider.ID != providers[i].ID {
			t.Errorf("results[%d] is provider %s, want %s", i, r.Provider.ID, providers[i].ID)
		}
	}
}

// a provider without a website is audited on governance alone, no fetch
func TestAuditProviderNoWebsite(t *testing.T) {
	fetcher := &fixtureFetcher{body: fullComplianceBody}
	a := newTestAuditor(t, fetcher)
	r := a.AuditProvider(context.Background(), Provider{
		ID: "006", Name: "Sin Web SRL", TaxID: "30-54668997-9",
	})

	if fetcher.calls != 0 {
		t.Errorf("expected no fetch for provider without website, got %d", fetcher.calls)
	}
	if r.ScoreTotal != 40 {
		t.Errorf("total = %d, want 40", r.ScoreTotal)
	}
	for _, f := range r.Criteria[Social].Findings {
		if f.Status != StatusUnreachable {
			t.Errorf("finding %s = %s, want UNREACHABLE", f.Tag, f.Status)
		}
	}
}

func TestNewRejectsBadWeights(t *testing.T) {
	_, err := New(Options{
		Fetcher: &fixtureFetcher{},
		Weights: Weights{Governance: 0.6, Social: 0.3, Environmental: 0.3},
	})
	if err == nil {
		t.Error("expected error for weights summing past 1.0")
	}
}
