package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "esg-auditor",
	Short: "ESG supplier audit and traceability tool",
	Long: `esg-auditor audits third-party suppliers against ESG criteria:
it validates the Argentine CUIT (governance), probes the supplier's
public website for labor certifications and sustainability disclosures
(social / environmental), and produces a weighted conformity verdict
per supplier.`,
}

var DebugMode bool

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&DebugMode, "debug", false, "Enable debug logging")
}
