package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Krish2786/LegalMind-AI/internal/legalmind"
)

// handleAnalyzeDocument uploads a local PDF for analysis.
func (s *Server) handleAnalyzeDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filePath, err := request.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: file_path"), nil
	}

	f, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return mcp.NewToolResultError(fmt.Sprintf("file not found: %s", filePath)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("opening %s: %v", filePath, err)), nil
	}
	defer f.Close()

	prompt := request.GetString("prompt", "")
	model := request.GetString("model", "")

	if _, err := s.app.Analyze(ctx, filepath.Base(filePath), f, prompt, model); err != nil {
		return mcp.NewToolResultError("analysis failed: " + legalmind.UserMessage(err)), nil
	}

	// The view carries rendered HTML; agents want the markdown itself.
	res := s.app.LastResult()
	return mcp.NewToolResultText(res.Summary), nil
}

// handleAskDocument answers a question about the loaded document.
func (s *Server) handleAskDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: question"), nil
	}

	answer, err := s.app.Ask(ctx, question)
	if err != nil {
		return mcp.NewToolResultError("question failed: " + legalmind.UserMessage(err)), nil
	}

	return mcp.NewToolResultText(answer), nil
}

// handleGetSavedAnalysis consumes and returns the saved-view slot.
func (s *Server) handleGetSavedAnalysis(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	view, err := s.app.RestoreSaved(ctx)
	if err != nil {
		return mcp.NewToolResultError("loading saved analysis: " + legalmind.UserMessage(err)), nil
	}
	if view == nil {
		return mcp.NewToolResultText("No saved analysis. Use analyze_document to analyze a PDF."), nil
	}

	res := s.app.LastResult()
	out := fmt.Sprintf("# %s\n\n%s", view.Filename, res.Summary)
	if view.Notice != "" {
		out += "\n\n> " + view.Notice
	}
	return mcp.NewToolResultText(out), nil
}
