package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rdocs/rdocs-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// SearchTool handles documentation search requests
type SearchTool struct {
	service types.DocsService
}

// NewSearchTool creates a new documentation search tool
func NewSearchTool(service types.DocsService) *SearchTool {
	return &SearchTool{
		service: service,
	}
}

// GetTool returns the MCP tool definition
func (t *SearchTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolSearch,
		mcp.WithDescription("Search the documentation of an R package for a term"),
		mcp.WithString("package", mcp.Required(), mcp.Description("Name of the R package")),
		mcp.WithString("search_term", mcp.Required(), mcp.Description("Term to search for")),
		mcp.WithBoolean("fuzzy", mcp.Description("Include fuzzy subsequence matches (default false)")),
		mcp.WithString("project_path", mcp.Description("Path to the R project (optional)")),
	)
	return tool
}

// Handle processes the tool request
func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := parseDocQuery(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	term := mcp.ParseString(req, "search_term", "")
	if term == "" {
		return mcp.NewToolResultError("search_term parameter is required"), nil
	}
	fuzzy := mcp.ParseBoolean(req, "fuzzy", false)

	results := t.service.Search(ctx, query, term, fuzzy)

	jsonBytes, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
