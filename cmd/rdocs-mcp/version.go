package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rdocs/rdocs-mcp/pkg/project"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", project.Name, project.Version)
	},
}
