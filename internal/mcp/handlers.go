package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"paperdesk/internal/draft"
	"paperdesk/internal/search"
)

// mcpSession keys the MCP client's result cache in the search service.
const mcpSession = "mcp"

// handleSearchLiterature runs a ranked literature search.
func (s *Server) handleSearchLiterature(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	results, err := s.searcher.Search(ctx, mcpSession, query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	if len(results) == 0 {
		return mcp.NewToolResultText("No results found."), nil
	}

	return mcp.NewToolResultText(formatResults(results)), nil
}

// handleSuggestTitles returns five title suggestions for the topic.
func (s *Server) handleSuggestTitles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic, err := request.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: topic"), nil
	}

	titles := s.gen.SuggestTitles(ctx, topic)

	var b strings.Builder
	for i, title := range titles {
		fmt.Fprintf(&b, "%d. %s\n", i+1, title)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleGenerateOutline generates a markdown outline.
func (s *Server) handleGenerateOutline(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic, err := request.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: topic"), nil
	}
	paperType := request.GetString("paper_type", "standard")

	outline := s.gen.GenerateOutline(ctx, topic, draft.PaperType(paperType))
	return mcp.NewToolResultText(outline), nil
}

// handleFormatLatex assembles sections into a complete LaTeX document.
func (s *Server) handleFormatLatex(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: title"), nil
	}
	sectionsJSON, err := request.RequireString("sections_json")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: sections_json"), nil
	}

	var sections map[string]string
	if err := json.Unmarshal([]byte(sectionsJSON), &sections); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("sections_json is not a valid JSON object: %v", err)), nil
	}
	if len(sections) == 0 {
		return mcp.NewToolResultError("sections_json must contain at least one section"), nil
	}

	paperType := draft.PaperType(request.GetString("paper_type", "standard"))

	// Order known sections by the paper structure, then append extras.
	var order []string
	for _, section := range draft.PaperStructure(paperType) {
		if _, ok := sections[section]; ok {
			order = append(order, section)
		}
	}
	for section := range sections {
		if !slices.Contains(order, section) {
			order = append(order, section)
		}
	}

	paper := &draft.Paper{Type: paperType, Sections: sections, Order: order}
	formatter := draft.NewFormatter("")
	latex := formatter.CompleteDocument(paper, draft.Metadata{
		Title:   title,
		Authors: request.GetString("author", ""),
	}, nil)

	return mcp.NewToolResultText(latex), nil
}

func formatResults(results []search.Result) string {
	var b strings.Builder
	for i, res := range results {
		fmt.Fprintf(&b, "%d. %s (%s, %s)\n   %s | score %.3f\n", i+1, res.Title, res.Authors, res.Year, res.Venue, res.Score)
		if res.Link != "" {
			fmt.Fprintf(&b, "   %s\n", res.Link)
		}
	}
	return b.String()
}
