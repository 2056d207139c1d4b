package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rdocs/rdocs-mcp/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve MCP over stdio",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	config := loadConfig()
	setupLogging(config.LogLevel)

	mcpServer := server.NewRDocsServer(config)
	return mcpServer.Start(context.Background())
}
