package engine

import "time"

// Category is one of the three audited ESG dimensions
type Category string

const (
	Governance    Category = "governance"
	Social        Category = "social"
	Environmental Category = "environmental"
)

// Categories in fixed reporting order
var Categories = []Category{Governance, Social, Environmental}

// CriterionTag identifies a single piece of web evidence the scanner looks for
type CriterionTag string

const (
	CertISO45001         CriterionTag = "CERT_ISO45001"
	CertSA8000           CriterionTag = "CERT_SA8000"
	SustainabilityReport CriterionTag = "SUSTAINABILITY_REPORT"
)

// FindingStatus is the outcome of probing for one criterion
type FindingStatus string

const (
	StatusFound       FindingStatus = "FOUND"
	StatusNotFound    FindingStatus = "NOT_FOUND"
	StatusUnreachable FindingStatus = "UNREACHABLE"
)

// CriterionState is the qualitative result of a scored category
type CriterionState string

const (
	StatePass    CriterionState = "PASS"
	StatePartial CriterionState = "PARTIAL"
	StateFail    CriterionState = "FAIL"
)

// Provider is one supplier row from the roster. It is never mutated during an audit.
type Provider struct {
	ID         string `json:"id"`
	Name       string `json:"nombre"`
	TaxID      string `json:"cuit"`
	Country    string `json:"pais,omitempty"`
	WebsiteURL string `json:"sitio_web,omitempty"`
	Email      string `json:"email,omitempty"`
}

// EvidenceFinding records one observed (or unavailable) proof gathered from
// the provider's website. Snippet keeps a short window of matched text for
// auditability.
type EvidenceFinding struct {
	Tag       CriterionTag  `json:"criterio"`
	Status    FindingStatus `json:"estado"`
	SourceURL string        `json:"source_url,omitempty"`
	Snippet   string        `json:"snippet,omitempty"`
}

// CriterionScore is the scored result for one category, 0-100.
type CriterionScore struct {
	Category Category          `json:"categoria"`
	Value    int               `json:"value"`
	State    CriterionState    `json:"state"`
	Findings []EvidenceFinding `json:"findings,omitempty"`
}

// AuditResult is the full verdict for one provider. Immutable once returned;
// exactly one CriterionScore per category.
type AuditResult struct {
	Timestamp       time.Time
	Provider        Provider
	Criteria        map[Category]CriterionScore
	ScoreTotal      int
	Conforme        bool
	NonConformities []string
	Tasks           []string
}
