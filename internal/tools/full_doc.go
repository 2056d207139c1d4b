package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rdocs/rdocs-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetFullDocTool handles full documentation requests
type GetFullDocTool struct {
	service types.DocsService
}

// NewGetFullDocTool creates a new full documentation tool
func NewGetFullDocTool(service types.DocsService) *GetFullDocTool {
	return &GetFullDocTool{
		service: service,
	}
}

// GetTool returns the MCP tool definition
func (t *GetFullDocTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolGetFullDoc,
		mcp.WithDescription("Get full documentation for an R package or function, including examples"),
		mcp.WithString("package", mcp.Required(), mcp.Description("Name of the R package")),
		mcp.WithString("symbol", mcp.Description("Function or symbol within the package (optional)")),
		mcp.WithString("project_path", mcp.Description("Path to the R project (optional)")),
	)
	return tool
}

// Handle processes the tool request
func (t *GetFullDocTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := parseDocQuery(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := t.service.FullDoc(ctx, query)

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
