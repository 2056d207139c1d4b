// Package main is the entry point for the rdocs-mcp server, which exposes
// R package documentation over the Model Context Protocol.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rdocs/rdocs-mcp/pkg/project"
	"github.com/rdocs/rdocs-mcp/pkg/types"
)

// rootCmd is the base command; running it without a subcommand serves MCP
// over stdio, which is how MCP clients typically launch the binary.
var rootCmd = &cobra.Command{
	Use:   project.Name,
	Short: "MCP server for R package documentation",
	Long: `rdocs-mcp exposes documentation for installed R packages as MCP tools.
It shells out to Rscript for raw help text, parses the plain-text output
into structured fields, and ranks search matches inside it.`,
	RunE: runServe,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./rdocs-mcp.yaml or ~/.config/rdocs-mcp/config.yaml)")
	rootCmd.PersistentFlags().String("rscript-path", "Rscript", "Path to the Rscript binary")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int("max-results", 0, "Maximum number of search results per query")
	rootCmd.PersistentFlags().Int("search-workers", 0, "Parallel help fetches while building a search corpus")

	for _, key := range []string{"rscript-path", "log-level", "max-results", "search-workers"} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("rdocs-mcp")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "rdocs-mcp"))
		}
	}

	viper.SetEnvPrefix("RDOCS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig materializes the server config from viper.
func loadConfig() *types.Config {
	return &types.Config{
		RscriptPath:   viper.GetString("rscript-path"),
		LogLevel:      viper.GetString("log-level"),
		MaxResults:    viper.GetInt("max-results"),
		SearchWorkers: viper.GetInt("search-workers"),
	}
}

// setupLogging routes slog to stderr at the configured level; stdout is
// reserved for the MCP transport.
func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
