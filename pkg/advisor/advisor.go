// Package advisor turns a finished audit run into a narrative remediation
// plan using the configured LLM provider. It lives entirely off the audit
// path: the engine stays deterministic whether or not an advisor is set up.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/user/esg-auditor/pkg/report"
)

// LLMProvider defines the interface for different AI models
type LLMProvider interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	ListModels(ctx context.Context) ([]string, error)
}

// BuildPrompt condenses exported audit results into the user prompt fed to
// the provider. Only scores and deficiencies go out, never raw page bodies.
func BuildPrompt(results []report.Result) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resultados de auditoría ESG para %d proveedores:\n\n", len(results)))
	for _, r := range results {
		estado := "NO CONFORME"
		if r.Conformidad {
			estado = "CONFORME"
		}
		sb.WriteString(fmt.Sprintf("- %s (CUIT %s): score %d%%, %s\n",
			r.Proveedor.Nombre, r.Proveedor.CUIT, r.ScoreTotal, estado))
		for cat, c := range r.Criterios {
			sb.WriteString(fmt.Sprintf("    %s: %d%% (%s)\n", cat, c.Value, c.State))
		}
		for _, nc := range r.NoConformidades {
			sb.WriteString(fmt.Sprintf("    No conformidad: %s\n", nc))
		}
		for _, t := range r.TareasProveedor {
			sb.WriteString(fmt.Sprintf("    Tarea: %s\n", t))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Advise generates the remediation narrative for a batch of results
func Advise(ctx context.Context, llm LLMProvider, results []report.Result) (string, error) {
	if len(results) == 0 {
		return "", fmt.Errorf("no audit results to advise on")
	}
	return llm.Generate(ctx, GetSystemPrompt(), BuildPrompt(results))
}
