package mcp

import "github.com/mark3labs/mcp-go/mcp"

// analyzeDocumentTool defines the analyze_document MCP tool.
var analyzeDocumentTool = mcp.NewTool("analyze_document",
	mcp.WithDescription("Upload a local PDF to the LegalMind analysis service and return its markdown summary. Loads the document for follow-up questions via ask_document."),
	mcp.WithString("file_path",
		mcp.Required(),
		mcp.Description("Path to the PDF file to analyze"),
	),
	mcp.WithString("prompt",
		mcp.Description("Optional instruction for what the analysis should focus on"),
	),
	mcp.WithString("model",
		mcp.Description("Analysis model to use"),
		mcp.Enum("gemini-1.5-pro", "gemini-1.5-flash"),
	),
)

// askDocumentTool defines the ask_document MCP tool.
var askDocumentTool = mcp.NewTool("ask_document",
	mcp.WithDescription("Ask a question about the currently loaded document. Requires a prior analyze_document or get_saved_analysis call that loaded a document."),
	mcp.WithString("question",
		mcp.Required(),
		mcp.Description("The question to answer from the document"),
	),
)

// getSavedAnalysisTool defines the get_saved_analysis MCP tool.
var getSavedAnalysisTool = mcp.NewTool("get_saved_analysis",
	mcp.WithDescription("Retrieve the saved analysis, if any. The saved slot is single-use: retrieving it consumes it."),
)
