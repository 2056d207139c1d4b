package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rdocs/rdocs-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// DescribeTool handles summary documentation requests
type DescribeTool struct {
	service types.DocsService
}

// NewDescribeTool creates a new describe tool
func NewDescribeTool(service types.DocsService) *DescribeTool {
	return &DescribeTool{
		service: service,
	}
}

// GetTool returns the MCP tool definition
func (t *DescribeTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolDescribe,
		mcp.WithDescription("Get summary documentation for an R package or function"),
		mcp.WithString("package", mcp.Required(), mcp.Description("Name of the R package")),
		mcp.WithString("symbol", mcp.Description("Function or symbol within the package (optional)")),
		mcp.WithString("project_path", mcp.Description("Path to the R project (optional)")),
	)
	return tool
}

// Handle processes the tool request
func (t *DescribeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := parseDocQuery(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := t.service.Describe(ctx, query)

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
