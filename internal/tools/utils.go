package tools

import (
	"fmt"

	"github.com/rdocs/rdocs-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// parseDocQuery extracts the documentation query shared by all tools from
// an MCP request.
func parseDocQuery(req mcp.CallToolRequest) (types.DocQuery, error) {
	pkg := mcp.ParseString(req, "package", "")
	if pkg == "" {
		return types.DocQuery{}, fmt.Errorf("package parameter is required")
	}

	query := types.DocQuery{
		Package:     pkg,
		Symbol:      mcp.ParseString(req, "symbol", ""),
		ProjectPath: mcp.ParseString(req, "project_path", ""),
	}
	if err := query.Validate(); err != nil {
		return types.DocQuery{}, err
	}
	return query, nil
}
