package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/Krish2786/LegalMind-AI/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing document analysis tools for AI agents like Claude Code.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		a, closeApp, err := buildApp(cfg)
		if err != nil {
			return err
		}
		defer closeApp()

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "legalmind MCP server started on stdio (service=%s)\n", cfg.ServiceURL)

		return mcpserver.NewServer(a).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
