package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "legalmind",
	Short: "AI-powered legal document analysis client",
	Long: `LegalMind uploads legal documents (PDFs) to a remote analysis service
and renders a simplified summary with risky clauses highlighted. It can
answer follow-up questions about the analyzed document, keep one saved
analysis for later viewing, and serve a local web UI for the full flow.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".legalmind.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
