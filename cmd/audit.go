package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/user/esg-auditor/pkg/config"
	"github.com/user/esg-auditor/pkg/engine"
	"github.com/user/esg-auditor/pkg/report"
	"github.com/user/esg-auditor/pkg/roster"
)

var (
	auditRosterPath string
	auditOutDir     string
	auditNoHTML     bool
	auditThreshold  int
	auditWorkers    int
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit every supplier in the roster and export the results",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine.DebugEnabled = DebugMode

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if auditThreshold > 0 {
			cfg.Audit.Threshold = auditThreshold
		}
		if auditWorkers > 0 {
			cfg.Audit.Workers = auditWorkers
		}

		return runAudit(cfg, auditRosterPath, auditOutDir, !auditNoHTML)
	},
}

// runAudit is the shared batch run used by both audit and watch
func runAudit(cfg *config.Config, rosterPath, outDir string, writeHTML bool) error {
	providers, err := roster.Load(rosterPath)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d providers from %s\n", len(providers), rosterPath)

	criteria, err := engine.LoadCriteria(cfg.Audit.CriteriaDir)
	if err != nil {
		return fmt.Errorf("error loading criteria: %w", err)
	}

	auditor, err := engine.New(engine.Options{
		Fetcher:   engine.NewHTTPFetcher(time.Duration(cfg.Audit.FetchTimeoutSeconds) * time.Second),
		Criteria:  criteria,
		Weights:   cfg.Audit.Weights,
		Threshold: cfg.Audit.Threshold,
		Workers:   cfg.Audit.Workers,
	})
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	fmt.Printf("Starting audit run %s (%d workers)\n\n", runID, cfg.Audit.Workers)

	results := auditor.AuditAll(context.Background(), providers)

	for _, r := range results {
		estado := "NO CONFORME"
		if r.Conforme {
			estado = "CONFORME"
		}
		fmt.Printf("%s (%s): G=%d S=%d E=%d -> %d%% [%s]\n",
			r.Provider.Name, r.Provider.ID,
			r.Criteria[engine.Governance].Value,
			r.Criteria[engine.Social].Value,
			r.Criteria[engine.Environmental].Value,
			r.ScoreTotal, estado)
	}

	jsonPath := filepath.Join(outDir, "auditoria_esg.json")
	if err := report.WriteJSON(jsonPath, results); err != nil {
		return fmt.Errorf("error writing results: %w", err)
	}
	fmt.Printf("\nResults exported to %s\n", jsonPath)

	if writeHTML {
		for _, r := range results {
			path := filepath.Join(outDir, report.ProviderReportName(r.Provider.ID))
			if err := report.WriteProviderReport(path, r); err != nil {
				return fmt.Errorf("error writing report for %s: %w", r.Provider.ID, err)
			}
		}
		dashPath := filepath.Join(outDir, "dashboard.html")
		if err := report.WriteDashboard(dashPath, runID, results); err != nil {
			return fmt.Errorf("error writing dashboard: %w", err)
		}
		fmt.Printf("Dashboard generated at %s\n", dashPath)
	}

	s := report.Summarize(results)
	fmt.Printf("\nSummary: %d providers, %d conformes (%d%%), %d no conformes\n",
		s.Total, s.Conformes, s.PctConformes, s.NoConformes)
	fmt.Printf("Averages: total=%d%% governance=%d%% social=%d%% environmental=%d%%\n",
		s.AvgTotal, s.AvgGovernance, s.AvgSocial, s.AvgEnvironmental)

	return nil
}

func init() {
	auditCmd.Flags().StringVarP(&auditRosterPath, "roster", "r", "proveedores.csv", "Provider roster CSV")
	auditCmd.Flags().StringVarP(&auditOutDir, "out", "o", ".", "Output directory")
	auditCmd.Flags().BoolVar(&auditNoHTML, "no-html", false, "Skip HTML report generation")
	auditCmd.Flags().IntVar(&auditThreshold, "threshold", 0, "Conformity threshold override (default from config)")
	auditCmd.Flags().IntVar(&auditWorkers, "workers", 0, "Worker pool size override (default from config)")
	rootCmd.AddCommand(auditCmd)
}
