package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CriterionSpec describes one piece of evidence the scanner probes for.
// Aliases are substrings matched case-insensitively against the page body.
// When RequiresPDF is set, the criterion instead looks for a PDF link
// carrying one of the Keywords (in the link itself or the surrounding page).
type CriterionSpec struct {
	Tag         CriterionTag `yaml:"tag"`
	Category    Category     `yaml:"category"`
	Aliases     []string     `yaml:"aliases,omitempty"`
	Keywords    []string     `yaml:"keywords,omitempty"`
	RequiresPDF bool         `yaml:"requires_pdf,omitempty"`
}

// CriteriaProfile is one YAML file worth of criterion specs
type CriteriaProfile struct {
	Name     string          `yaml:"name"`
	Criteria []CriterionSpec `yaml:"criteria"`
}

// DefaultCriteria returns the built-in evidence table: the two labor
// certifications feeding SOCIAL and the sustainability disclosure feeding
// ENVIRONMENTAL. Adding a certification is an entry here (or a YAML
// profile), not a new code path.
func DefaultCriteria() []CriterionSpec {
	return []CriterionSpec{
		{
			Tag:      CertISO45001,
			Category: Social,
			Aliases:  []string{"iso 45001", "iso45001"},
		},
		{
			Tag:      CertSA8000,
			Category: Social,
			Aliases:  []string{"sa8000", "sa 8000"},
		},
		{
			Tag:         SustainabilityReport,
			Category:    Environmental,
			Keywords:    []string{"sostenibilidad", "esg", "rse", "responsabilidad social"},
			RequiresPDF: true,
		},
	}
}

// LoadCriteria reads criterion profiles from YAML files in dir and returns
// the combined spec list. An empty dir yields the defaults.
func LoadCriteria(dir string) ([]CriterionSpec, error) {
	if dir == "" {
		return DefaultCriteria(), nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var specs []CriterionSpec
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		var p CriteriaProfile
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %v", entry.Name(), err)
		}
		for _, spec := range p.Criteria {
			if spec.Tag == "" || spec.Category == "" {
				return nil, fmt.Errorf("profile %s: criterion missing tag or category", entry.Name())
			}
		}
		specs = append(specs, p.Criteria...)
		fmt.Printf("Loaded criteria profile: %s\n", p.Name)
	}

	if len(specs) == 0 {
		return DefaultCriteria(), nil
	}
	return specs, nil
}
