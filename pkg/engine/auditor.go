package engine

import (
	"context"
	"sync"
	"time"
)

// DefaultWorkers caps concurrent in-flight fetches across providers
const DefaultWorkers = 4

// Options configures an Auditor. Zero values fall back to the defaults
// (built-in criteria, 40/30/30 weights, threshold 70, 4 workers, HTTP
// fetcher with a 10s timeout).
type Options struct {
	Fetcher   ContentFetcher
	Criteria  []CriterionSpec
	Weights   Weights
	Threshold int
	Workers   int
}

// Auditor runs the full ESG pipeline: identity validation, evidence
// scanning, weighted scoring and conformity classification.
type Auditor struct {
	scanner    *Scanner
	weights    Weights
	classifier *Classifier
	workers    int
}

func New(opts Options) (*Auditor, error) {
	if opts.Fetcher == nil {
		opts.Fetcher = NewHTTPFetcher(DefaultFetchTimeout)
	}
	if opts.Criteria == nil {
		opts.Criteria = DefaultCriteria()
	}
	if opts.Weights == (Weights{}) {
		opts.Weights = DefaultWeights()
	}
	if err := opts.Weights.Validate(); err != nil {
		return nil, err
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	return &Auditor{
		scanner:    NewScanner(opts.Fetcher, opts.Criteria),
		weights:    opts.Weights,
		classifier: NewClassifier(opts.Threshold),
		workers:    opts.Workers,
	}, nil
}

// AuditProvider audits a single provider. All failures are contained in
// the returned result; this never returns an error for degraded evidence.
func (a *Auditor) AuditProvider(ctx context.Context, p Provider) AuditResult {
	check := ValidateCUIT(p.TaxID)
	if !check.Valid {
		Debugf("provider %s: identity validation failed (%s)", p.ID, check.Reason)
	}

	findings := a.scanner.Scan(ctx, p.WebsiteURL)

	var social, environmental []EvidenceFinding
	byTag := make(map[CriterionTag]Category, len(a.scanner.Criteria))
	for _, spec := range a.scanner.Criteria {
		byTag[spec.Tag] = spec.Category
	}
	for _, f := range findings {
		switch byTag[f.Tag] {
		case Social:
			social = append(social, f)
		case Environmental:
			environmental = append(environmental, f)
		}
	}

	criteria := map[Category]CriterionScore{
		Governance:    ScoreGovernance(check),
		Social:        ScoreSocial(social),
		Environmental: ScoreEnvironmental(environmental),
	}

	total := TotalScore(a.weights,
		criteria[Governance].Value,
		criteria[Social].Value,
		criteria[Environmental].Value)

	verdict := a.classifier.Classify(total, criteria)

	return AuditResult{
		Timestamp:       time.Now(),
		Provider:        p,
		Criteria:        criteria,
		ScoreTotal:      total,
		Conforme:        verdict.Conforme,
		NonConformities: verdict.NonConformities,
		Tasks:           verdict.Tasks,
	}
}

// AuditAll audits every provider with a bounded worker pool, preserving
// roster order in the returned slice. Providers are independent: no state
// is shared between audits.
func (a *Auditor) AuditAll(ctx context.Context, providers []Provider) []AuditResult {
	results := make([]AuditResult, len(providers))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < a.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = a.AuditProvider(ctx, providers[i])
			}
		}()
	}

	for i := range providers {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
