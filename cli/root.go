// Package cli wires the hydrological tools to a shared cobra command
// dispatch layer: one subcommand per tool, uniform raster flags, errors
// surfaced before any output file is written.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "wbt",
	Short:         "hydrological terrain analysis tools",
	Long:          "Priority-flood depression filling and D8 flow-routing tools for raster DEMs.",
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the tool selected on the command line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "wbt: %v\n", err)
		os.Exit(1)
	}
}
