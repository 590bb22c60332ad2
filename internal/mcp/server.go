// Package mcp exposes the legalmind flows as MCP tools over stdio, so AI
// agents can analyze documents and ask questions through the same client.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/Krish2786/LegalMind-AI/internal/app"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server over the client flows.
type Server struct {
	app *app.App
	mcp *server.MCPServer
}

// NewServer creates a new MCP server with the given app.
func NewServer(a *app.App) *Server {
	s := &Server{app: a}

	s.mcp = server.NewMCPServer(
		"legalmind",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(analyzeDocumentTool, s.handleAnalyzeDocument)
	s.mcp.AddTool(askDocumentTool, s.handleAskDocument)
	s.mcp.AddTool(getSavedAnalysisTool, s.handleGetSavedAnalysis)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
