package engine

import (
	"fmt"
	"math"
)

// Weights holds the per-category contribution to the total score.
// They must sum to 1.0.
type Weights struct {
	Governance    float64 `yaml:"governance"`
	Social        float64 `yaml:"social"`
	Environmental float64 `yaml:"environmental"`
}

// DefaultWeights is the 40/30/30 split of the audit policy
func DefaultWeights() Weights {
	return Weights{Governance: 0.4, Social: 0.3, Environmental: 0.3}
}

func (w Weights) Validate() error {
	sum := w.Governance + w.Social + w.Environmental
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("category weights must sum to 1.0, got %g", sum)
	}
	return nil
}

// ScoreGovernance maps an identity check to the governance score.
// Governance is binary: a valid identifier scores 100, anything else 0.
func ScoreGovernance(check IdentityCheck) CriterionScore {
	value := 0
	if check.Valid {
		value = 100
	}
	return CriterionScore{
		Category: Governance,
		Value:    value,
		State:    stateFor(value),
	}
}

// ScoreSocial scores the certification findings proportionally: with the
// two default certifications each FOUND one contributes 50 points, so the
// category lands on FAIL (0), PARTIAL (50) or PASS (100).
func ScoreSocial(findings []EvidenceFinding) CriterionScore {
	value := 0
	if len(findings) > 0 {
		found := 0
		for _, f := range findings {
			if f.Status == StatusFound {
				found++
			}
		}
		value = found * 100 / len(findings)
	}
	return CriterionScore{
		Category: Social,
		Value:    value,
		State:    stateFor(value),
		Findings: findings,
	}
}

// ScoreEnvironmental scores the disclosure findings. Environmental is
// binary like governance: PASS only when every finding is FOUND.
func ScoreEnvironmental(findings []EvidenceFinding) CriterionScore {
	value := 0
	if len(findings) > 0 {
		value = 100
		for _, f := range findings {
			if f.Status != StatusFound {
				value = 0
				break
			}
		}
	}
	return CriterionScore{
		Category: Environmental,
		Value:    value,
		State:    stateFor(value),
		Findings: findings,
	}
}

// TotalScore combines the three sub-scores with the given weights,
// rounding half-up and clamping to [0,100].
func TotalScore(w Weights, governance, social, environmental int) int {
	total := float64(governance)*w.Governance +
		float64(social)*w.Social +
		float64(environmental)*w.Environmental
	rounded := int(math.Floor(total + 0.5))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

func stateFor(value int) CriterionState {
	switch {
	case value >= 100:
		return StatePass
	case value <= 0:
		return StateFail
	default:
		return StatePartial
	}
}
