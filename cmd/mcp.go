package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"paperdesk/internal/draft"
	"paperdesk/internal/llm"
	"paperdesk/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long: `Starts an MCP (Model Context Protocol) server on stdio exposing the
search_literature, suggest_titles, generate_outline and format_latex tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var provider llm.Provider
		if p, err := createProvider(cfg); err != nil {
			// Logging must go to stderr; stdout carries the protocol.
			fmt.Fprintf(os.Stderr, "Warning: no LLM provider available, using fallback content: %v\n", err)
		} else {
			provider = p
		}

		embedder, err := createEmbedder(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: no embedder available, ranking is lexical only: %v\n", err)
		}

		srv := mcp.NewServer(
			draft.NewGenerator(provider, cfg.Model),
			buildSearchService(cfg, embedder),
		)

		fmt.Fprintln(os.Stderr, "paperdesk MCP server listening on stdio")
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
