// Package mcp exposes the drafting and search pipeline as MCP tools so
// agent clients can drive the workflow over stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"paperdesk/internal/draft"
	"paperdesk/internal/search"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes research writing tools.
type Server struct {
	gen      *draft.Generator
	searcher *search.Service
	mcp      *server.MCPServer
}

// NewServer creates an MCP server with the given dependencies.
func NewServer(gen *draft.Generator, searcher *search.Service) *Server {
	s := &Server{
		gen:      gen,
		searcher: searcher,
	}

	s.mcp = server.NewMCPServer(
		"paperdesk",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchLiteratureTool, s.handleSearchLiterature)
	s.mcp.AddTool(suggestTitlesTool, s.handleSuggestTitles)
	s.mcp.AddTool(generateOutlineTool, s.handleGenerateOutline)
	s.mcp.AddTool(formatLatexTool, s.handleFormatLatex)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
