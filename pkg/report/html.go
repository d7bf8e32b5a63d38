package report

import (
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/user/esg-auditor/pkg/engine"
)

// Summary aggregates a batch for the dashboard and the console recap
type Summary struct {
	Total            int
	Conformes        int
	NoConformes      int
	PctConformes     int
	AvgTotal         int
	AvgGovernance    int
	AvgSocial        int
	AvgEnvironmental int
}

// Summarize computes fleet statistics over a batch of results
func Summarize(results []engine.AuditResult) Summary {
	s := Summary{Total: len(results)}
	if s.Total == 0 {
		return s
	}
	var total, gov, soc, env int
	for _, r := range results {
		if r.Conforme {
			s.Conformes++
		}
		total += r.ScoreTotal
		gov += r.Criteria[engine.Governance].Value
		soc += r.Criteria[engine.Social].Value
		env += r.Criteria[engine.Environmental].Value
	}
	s.NoConformes = s.Total - s.Conformes
	s.PctConformes = roundDiv(s.Conformes*100, s.Total)
	s.AvgTotal = roundDiv(total, s.Total)
	s.AvgGovernance = roundDiv(gov, s.Total)
	s.AvgSocial = roundDiv(soc, s.Total)
	s.AvgEnvironmental = roundDiv(env, s.Total)
	return s
}

func roundDiv(a, b int) int {
	return (a + b/2) / b
}

var tmplFuncs = template.FuncMap{
	"lower": strings.ToLower,
}

var providerTmpl = template.Must(template.New("provider").Funcs(tmplFuncs).Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<title>Auditoría ESG - {{.Proveedor.Nombre}}</title>
<style>
body { font-family: 'Segoe UI', sans-serif; background: #f5f7fa; padding: 20px; }
.container { max-width: 900px; margin: 0 auto; background: white; border-radius: 10px; padding: 40px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
h1 { color: #2c3e50; border-bottom: 3px solid #3498db; padding-bottom: 15px; }
.info { background: #ecf0f1; padding: 20px; border-radius: 8px; margin: 20px 0; }
.score { text-align: center; padding: 25px; border-radius: 8px; color: white; font-size: 2em; background: {{if .Conformidad}}#27ae60{{else}}#e74c3c{{end}}; }
.criterio { background: #f8f9fa; border-left: 5px solid #3498db; padding: 15px; margin: 15px 0; border-radius: 5px; }
.badge { padding: 4px 12px; border-radius: 12px; color: white; font-size: 0.8em; font-weight: bold; }
.badge-pass { background: #27ae60; } .badge-partial { background: #f39c12; } .badge-fail { background: #e74c3c; }
.alertas { background: #fff3cd; border-left: 5px solid #ffc107; padding: 12px; margin: 15px 0; border-radius: 5px; }
.tareas { background: #d4edda; border-left: 5px solid #28a745; padding: 12px; margin: 15px 0; border-radius: 5px; }
.footer { text-align: center; color: #7f8c8d; margin-top: 25px; font-size: 0.9em; }
</style>
</head>
<body>
<div class="container">
<h1>Auditoría ESG</h1>
<div class="info">
<h2>{{.Proveedor.Nombre}}</h2>
<p><strong>ID:</strong> {{.Proveedor.ID}}</p>
<p><strong>CUIT:</strong> {{.Proveedor.CUIT}}</p>
{{if .Proveedor.SitioWeb}}<p><strong>Sitio Web:</strong> {{.Proveedor.SitioWeb}}</p>{{end}}
<p><strong>Fecha:</strong> {{.Timestamp}}</p>
</div>
<div class="score">{{.ScoreTotal}}% — {{if .Conformidad}}CONFORME{{else}}NO CONFORME{{end}}</div>
{{range $cat, $c := .Criterios}}
<div class="criterio">
<h3>{{$cat}} <span class="badge badge-{{lower $c.State}}">{{$c.State}}</span></h3>
<p>Score: {{$c.Value}}%</p>
</div>
{{end}}
{{if .NoConformidades}}
<div class="alertas">
<h3>No conformidades</h3>
<ul>{{range .NoConformidades}}<li>{{.}}</li>{{end}}</ul>
</div>
{{end}}
{{if .TareasProveedor}}
<div class="tareas">
<h3>Tareas para el proveedor</h3>
<ul>{{range .TareasProveedor}}<li>{{.}}</li>{{end}}</ul>
</div>
{{end}}
<div class="footer">Sistema de Auditoría ESG — Trazabilidad de Proveedores</div>
</div>
</body>
</html>
`))

var dashboardTmpl = template.Must(template.New("dashboard").Funcs(tmplFuncs).Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<title>Dashboard ESG - Auditoría de Proveedores</title>
<style>
body { font-family: 'Segoe UI', sans-serif; background: #f5f7fa; padding: 20px; }
.container { max-width: 1200px; margin: 0 auto; }
.header { text-align: center; background: #34495e; color: white; padding: 30px; border-radius: 10px; margin-bottom: 25px; }
.stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 15px; margin-bottom: 25px; }
.card { background: white; padding: 20px; border-radius: 10px; text-align: center; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
.card h3 { color: #7f8c8d; font-size: 0.85em; text-transform: uppercase; }
.card .num { font-size: 2.5em; font-weight: bold; color: #2c3e50; }
.card.ok .num { color: #27ae60; } .card.bad .num { color: #e74c3c; }
table { width: 100%; border-collapse: collapse; background: white; border-radius: 10px; overflow: hidden; }
th { background: #34495e; color: white; padding: 12px; text-align: left; }
td { padding: 12px; border-bottom: 1px solid #ecf0f1; }
tr.conforme { background: #d4edda; } tr.no-conforme { background: #f8d7da; }
.footer { text-align: center; color: #7f8c8d; margin-top: 25px; font-size: 0.9em; }
</style>
</head>
<body>
<div class="container">
<div class="header"><h1>Dashboard ESG</h1><p>Sistema de Auditoría y Trazabilidad de Proveedores</p></div>
<div class="stats">
<div class="card"><h3>Total Proveedores</h3><div class="num">{{.Summary.Total}}</div></div>
<div class="card ok"><h3>Conformes</h3><div class="num">{{.Summary.Conformes}}</div><p>{{.Summary.PctConformes}}%</p></div>
<div class="card bad"><h3>No Conformes</h3><div class="num">{{.Summary.NoConformes}}</div></div>
<div class="card"><h3>Score Promedio</h3><div class="num">{{.Summary.AvgTotal}}%</div></div>
</div>
<div class="stats">
<div class="card"><h3>Governance</h3><div class="num">{{.Summary.AvgGovernance}}%</div></div>
<div class="card"><h3>Social</h3><div class="num">{{.Summary.AvgSocial}}%</div></div>
<div class="card"><h3>Environmental</h3><div class="num">{{.Summary.AvgEnvironmental}}%</div></div>
</div>
<table>
<thead><tr><th>Proveedor</th><th>CUIT</th><th>Score</th><th>Gov</th><th>Soc</th><th>Env</th><th>Estado</th><th></th></tr></thead>
<tbody>
{{range .Results}}
<tr class="{{if .Conformidad}}conforme{{else}}no-conforme{{end}}">
<td><strong>{{.Proveedor.Nombre}}</strong></td>
<td>{{.Proveedor.CUIT}}</td>
<td>{{.ScoreTotal}}%</td>
<td>{{(index .Criterios "governance").Value}}%</td>
<td>{{(index .Criterios "social").Value}}%</td>
<td>{{(index .Criterios "environmental").Value}}%</td>
<td>{{if .Conformidad}}CONFORME{{else}}NO CONFORME{{end}}</td>
<td><a href="reporte_{{.Proveedor.ID}}.html">Ver detalle</a></td>
</tr>
{{end}}
</tbody>
</table>
<div class="footer">Corrida {{.RunID}} — generado el {{.GeneratedAt}}</div>
</div>
</body>
</html>
`))

// WriteProviderReport renders the per-provider HTML detail report
func WriteProviderReport(path string, r engine.AuditResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return providerTmpl.Execute(f, ToWire(r))
}

type dashboardData struct {
	RunID       string
	GeneratedAt string
	Summary     Summary
	Results     []Result
}

// WriteDashboard renders the fleet dashboard linking to the detail reports
func WriteDashboard(path, runID string, results []engine.AuditResult) error {
	wire := make([]Result, 0, len(results))
	for _, r := range results {
		wire = append(wire, ToWire(r))
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return dashboardTmpl.Execute(f, dashboardData{
		RunID:       runID,
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
		Summary:     Summarize(results),
		Results:     wire,
	})
}

// ProviderReportName returns the conventional detail report filename
func ProviderReportName(providerID string) string {
	return fmt.Sprintf("reporte_%s.html", providerID)
}
