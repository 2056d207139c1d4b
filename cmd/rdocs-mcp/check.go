package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rdocs/rdocs-mcp/internal/runner"
)

var checkCmd = &cobra.Command{
	Use:   "check [package...]",
	Short: "Check that the R runtime (and optionally packages) are available",
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	config := loadConfig()
	setupLogging(config.LogLevel)
	ctx := context.Background()

	rRunner := runner.New(config.RscriptPath)

	if !rRunner.Available(ctx) {
		color.Red("✗ Rscript not found (looked for %q)", config.RscriptPath)
		return fmt.Errorf("R runtime is not available")
	}

	version, err := rRunner.Version(ctx)
	if err != nil {
		color.Yellow("? Rscript found but failed to report a version: %v", err)
	} else {
		color.Green("✓ %s", version)
	}

	failed := 0
	for _, pkg := range args {
		if rRunner.PackageInstalled(ctx, pkg) {
			color.Green("✓ package %s is installed", pkg)
		} else {
			color.Red("✗ package %s is not installed", pkg)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d package(s) missing", failed)
	}
	return nil
}
