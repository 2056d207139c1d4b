package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rdocs/rdocs-mcp/internal/docs"
	"github.com/rdocs/rdocs-mcp/internal/runner"
	"github.com/rdocs/rdocs-mcp/internal/tools"
	"github.com/rdocs/rdocs-mcp/pkg/project"
	"github.com/rdocs/rdocs-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &RDocsServer{}

// RDocsServer represents the R documentation MCP server
type RDocsServer struct {
	mcpServer *server.MCPServer
	facade    *docs.Facade
	config    *types.Config
}

// NewRDocsServer creates a new R documentation MCP server
func NewRDocsServer(config *types.Config) *RDocsServer {
	mcpServer := server.NewMCPServer(project.Name, project.Version)
	rRunner := runner.New(config.RscriptPath)
	facade := docs.NewFacade(rRunner, config.MaxResults, config.SearchWorkers)

	return &RDocsServer{
		mcpServer: mcpServer,
		facade:    facade,
		config:    config,
	}
}

// Start starts the R documentation MCP server on stdio
func (s *RDocsServer) Start(ctx context.Context) error {
	slog.Info("Starting rdocs MCP server", "rscript_path", s.config.RscriptPath)

	s.registerTools()

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}

func (s *RDocsServer) registerTools() {
	describeTool := tools.NewDescribeTool(s.facade)
	s.mcpServer.AddTool(describeTool.GetTool(), describeTool.Handle)

	fullDocTool := tools.NewGetFullDocTool(s.facade)
	s.mcpServer.AddTool(fullDocTool.GetTool(), fullDocTool.Handle)

	searchTool := tools.NewSearchTool(s.facade)
	s.mcpServer.AddTool(searchTool.GetTool(), searchTool.Handle)
}
