package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/esg-auditor/pkg/advisor"
	"github.com/user/esg-auditor/pkg/config"
	"github.com/user/esg-auditor/pkg/report"
)

var adviseResultsPath string

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Generate an AI remediation plan from an exported results file",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		providerName := cfg.SelectedProvider
		if providerName == "" {
			providerName = "gemini"
		}

		apiKey := cfg.GetAPIKey(providerName)
		if apiKey == "" {
			if providerName == "gemini" {
				apiKey = os.Getenv("GOOGLE_API_KEY")
			}
		}
		if apiKey == "" {
			fmt.Println("Error: API Key not found.")
			fmt.Println("Please run 'esg-auditor config setup' to configure your keys.")
			return
		}

		results, err := report.ReadJSON(adviseResultsPath)
		if err != nil {
			fmt.Printf("Error reading results file: %v\n", err)
			return
		}

		ctx := context.Background()
		fmt.Printf("Connecting to %s (Model: %s)...\n", providerName, cfg.SelectedModel)
		llm, err := advisor.NewProvider(ctx, providerName, apiKey, cfg.SelectedModel)
		if err != nil {
			fmt.Printf("Error creating AI provider: %v\n", err)
			return
		}
		if closer, ok := llm.(interface{ Close() }); ok {
			defer closer.Close()
		}

		fmt.Printf("Generating remediation plan for %d providers...\n\n", len(results))
		plan, err := advisor.Advise(ctx, llm, results)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println(plan)
	},
}

func init() {
	adviseCmd.Flags().StringVarP(&adviseResultsPath, "results", "f", "auditoria_esg.json", "Exported audit results JSON")
	rootCmd.AddCommand(adviseCmd)
}
