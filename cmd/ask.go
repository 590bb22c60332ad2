package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Krish2786/LegalMind-AI/internal/progress"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a question about a document",
	Long: `Asks the analysis service a question about a document. With --file the
document is analyzed first; without it the question runs against the saved
analysis, which is consumed in the process.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().String("file", "", "PDF to analyze before asking")
	askCmd.Flags().String("prompt", "", "analysis instruction (overrides config)")
	askCmd.Flags().String("model", "", "analysis model (overrides config)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	question := strings.Join(args, " ")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a, closeApp, err := buildApp(cfg)
	if err != nil {
		return err
	}
	defer closeApp()

	filePath, _ := cmd.Flags().GetString("file")
	if filePath != "" {
		prompt, _ := cmd.Flags().GetString("prompt")
		if prompt == "" {
			prompt = cfg.Prompt
		}
		model, _ := cmd.Flags().GetString("model")
		if model == "" {
			model = cfg.Model
		}

		f, err := os.Open(filePath)
		if err != nil {
			return fmt.Errorf("opening document: %w", err)
		}
		defer f.Close()

		filename := filepath.Base(filePath)
		reporter := progress.NewReporter()
		reporter.Start(fmt.Sprintf("Analyzing %s", filename))
		_, err = a.Analyze(ctx, filename, f, prompt, model)
		reporter.Finish()
		if err != nil {
			return fmt.Errorf("analyzing document: %w", err)
		}
	} else {
		view, err := a.RestoreSaved(ctx)
		if err != nil {
			return fmt.Errorf("restoring saved analysis: %w", err)
		}
		if view == nil {
			return fmt.Errorf("no saved analysis; analyze a document first with --file or `legalmind analyze --save`")
		}
		if !view.ChatEnabled {
			return fmt.Errorf("the saved analysis has no document text, so questions cannot be answered")
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Asking about saved analysis of %s\n", view.Filename)
		}
	}

	reporter := progress.NewReporter()
	reporter.Start("Waiting for answer")
	answer, err := a.Ask(ctx, question)
	reporter.Finish()
	if err != nil {
		return fmt.Errorf("asking question: %w", err)
	}

	fmt.Println(answer)
	return nil
}
