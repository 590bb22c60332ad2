package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Krish2786/LegalMind-AI/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize LegalMind configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the analysis service connection and generates a .legalmind.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
