package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchLiteratureTool defines the search_literature MCP tool.
var searchLiteratureTool = mcp.NewTool("search_literature",
	mcp.WithDescription("Search for related academic literature. Returns ranked results with title, authors, year, venue and relevance score."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Topic or natural language search query"),
	),
)

// suggestTitlesTool defines the suggest_titles MCP tool.
var suggestTitlesTool = mcp.NewTool("suggest_titles",
	mcp.WithDescription("Suggest five academic paper titles for a research topic."),
	mcp.WithString("topic",
		mcp.Required(),
		mcp.Description("The research topic"),
	),
)

// generateOutlineTool defines the generate_outline MCP tool.
var generateOutlineTool = mcp.NewTool("generate_outline",
	mcp.WithDescription("Generate a markdown outline for a paper on the given topic."),
	mcp.WithString("topic",
		mcp.Required(),
		mcp.Description("The research topic"),
	),
	mcp.WithString("paper_type",
		mcp.Description("Section structure to use (default standard)"),
		mcp.Enum("standard", "review", "case_study", "proposal"),
	),
)

// formatLatexTool defines the format_latex MCP tool.
var formatLatexTool = mcp.NewTool("format_latex",
	mcp.WithDescription("Assemble paper sections into a complete LaTeX document."),
	mcp.WithString("title",
		mcp.Required(),
		mcp.Description("The paper title"),
	),
	mcp.WithString("sections_json",
		mcp.Required(),
		mcp.Description(`JSON object mapping section names to body text, e.g. {"abstract": "...", "introduction": "..."}`),
	),
	mcp.WithString("author",
		mcp.Description("Author name"),
	),
	mcp.WithString("paper_type",
		mcp.Description("Section ordering to use (default standard)"),
		mcp.Enum("standard", "review", "case_study", "proposal"),
	),
)
