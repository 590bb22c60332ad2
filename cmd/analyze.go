package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Krish2786/LegalMind-AI/internal/progress"
	"github.com/Krish2786/LegalMind-AI/internal/render"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.pdf>",
	Short: "Upload a document for analysis and print the simplified summary",
	Long: `Uploads a PDF to the analysis service and prints the simplified summary
as markdown. Use --out to also write a standalone HTML report with risky
clauses highlighted, --ask to ask a follow-up question about the document,
and --save to keep the analysis for later viewing.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("prompt", "", "analysis instruction (overrides config)")
	analyzeCmd.Flags().String("model", "", "analysis model (overrides config)")
	analyzeCmd.Flags().String("out", "", "HTML report path (default <file>.report.html, \"none\" to skip)")
	analyzeCmd.Flags().String("ask", "", "follow-up question to ask after analysis")
	analyzeCmd.Flags().Bool("save", false, "save the analysis for later viewing")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	prompt, _ := cmd.Flags().GetString("prompt")
	if prompt == "" {
		prompt = cfg.Prompt
	}
	model, _ := cmd.Flags().GetString("model")
	if model == "" {
		model = cfg.Model
	}
	outPath, _ := cmd.Flags().GetString("out")
	question, _ := cmd.Flags().GetString("ask")
	save, _ := cmd.Flags().GetBool("save")

	a, closeApp, err := buildApp(cfg)
	if err != nil {
		return err
	}
	defer closeApp()

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	filename := filepath.Base(path)
	reporter := progress.NewReporter()
	reporter.Start(fmt.Sprintf("Analyzing %s", filename))
	view, err := a.Analyze(ctx, filename, f, prompt, model)
	reporter.Finish()
	if err != nil {
		return fmt.Errorf("analyzing document: %w", err)
	}

	res := a.LastResult()
	fmt.Println(res.Summary)

	if outPath == "" {
		outPath = strings.TrimSuffix(path, filepath.Ext(path)) + ".report.html"
	}
	if outPath != "none" {
		page, err := render.ReportPage(view.Filename, model, view.SummaryHTML)
		if err != nil {
			return fmt.Errorf("rendering report: %w", err)
		}
		if err := os.WriteFile(outPath, page, 0644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", outPath)
	}

	if question != "" {
		answer, err := a.Ask(ctx, question)
		if err != nil {
			return fmt.Errorf("asking question: %w", err)
		}
		fmt.Printf("\nQ: %s\nA: %s\n", question, answer)
	}

	if save {
		if err := a.SaveCurrent(ctx); err != nil {
			return fmt.Errorf("saving analysis: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Analysis saved. View it later with `legalmind view`.")
	}

	return nil
}
