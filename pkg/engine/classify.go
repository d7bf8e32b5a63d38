package engine

// DefaultThreshold is the score a provider must reach to be conforme
const DefaultThreshold = 70

// Verdict is the conformity outcome for one provider
type Verdict struct {
	Conforme        bool
	NonConformities []string
	Tasks           []string
}

// Classifier maps criterion scores to a verdict. The threshold is
// configuration, not a constant buried in the logic.
type Classifier struct {
	Threshold int
}

func NewClassifier(threshold int) *Classifier {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Classifier{Threshold: threshold}
}

// Per-category deficiency descriptions and remediation tasks
var (
	nonConformityText = map[Category]string{
		Governance:    "CUIT inválido o no verificable",
		Social:        "Sin certificaciones laborales verificables",
		Environmental: "Sin reporte de sostenibilidad verificable",
	}
	requiredTaskText = map[Category]string{
		Governance:    "Verificar y corregir el CUIT registrado",
		Social:        "Obtener certificaciones laborales (ISO 45001, SA8000)",
		Environmental: "Publicar el reporte de sostenibilidad en el sitio web corporativo",
	}
	recommendedTaskText = map[Category]string{
		Governance:    "Revisar la documentación del CUIT registrado",
		Social:        "Completar las certificaciones laborales faltantes (ISO 45001, SA8000)",
		Environmental: "Ampliar la información de sostenibilidad publicada",
	}
)

// Classify is a pure function of the criterion scores: every FAIL category
// yields a non-conformity plus a required task; PARTIAL yields only a
// recommended task.
func (c *Classifier) Classify(scoreTotal int, criteria map[Category]CriterionScore) Verdict {
	v := Verdict{
		Conforme:        scoreTotal >= c.Threshold,
		NonConformities: []string{},
		Tasks:           []string{},
	}

	for _, cat := range Categories {
		score, ok := criteria[cat]
		if !ok {
			continue
		}
		switch score.State {
		case StateFail:
			v.NonConformities = append(v.NonConformities, nonConformityText[cat])
			v.Tasks = append(v.Tasks, requiredTaskText[cat])
		case StatePartial:
			v.Tasks = append(v.Tasks, recommendedTaskText[cat])
		}
	}
	return v
}
