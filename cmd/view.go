package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Krish2786/LegalMind-AI/internal/render"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "View the saved analysis",
	Long: `Prints the saved analysis summary as markdown and clears the saved slot.
Each saved analysis can be viewed exactly once. Use --out to write a
standalone HTML report instead of printing.`,
	RunE: runView,
}

func init() {
	viewCmd.Flags().String("out", "", "write an HTML report to this path instead of printing")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a, closeApp, err := buildApp(cfg)
	if err != nil {
		return err
	}
	defer closeApp()

	view, err := a.RestoreSaved(ctx)
	if err != nil {
		return fmt.Errorf("restoring saved analysis: %w", err)
	}
	if view == nil {
		fmt.Println("No saved analysis. Save one with `legalmind analyze --save`.")
		return nil
	}

	outPath, _ := cmd.Flags().GetString("out")
	if outPath != "" {
		page, err := render.ReportPage(view.Filename, cfg.Model, view.SummaryHTML)
		if err != nil {
			return fmt.Errorf("rendering report: %w", err)
		}
		if err := os.WriteFile(outPath, page, 0644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", outPath)
		return nil
	}

	res := a.LastResult()
	fmt.Printf("# %s\n\n%s\n", view.Filename, res.Summary)
	if view.Notice != "" {
		fmt.Fprintf(os.Stderr, "\nNote: %s\n", view.Notice)
	}
	return nil
}
