// Package main provides the entry point for the barrelgen CLI tool.
package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"slices"

	"github.com/spf13/cobra"

	"github.com/componentry/barrelgen/cmd/barrelgen/commands"
	"github.com/componentry/barrelgen/pkg/version"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)

			if verboseRequested() {
				os.Stderr.Write(debug.Stack())
			}

			os.Exit(1)
		}
	}()

	rootCmd := commands.NewRootCommand()
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "barrelgen %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}

// verboseRequested scans raw arguments because flag parsing may not have
// completed when a panic unwinds.
func verboseRequested() bool {
	return slices.Contains(os.Args[1:], "-v") || slices.Contains(os.Args[1:], "--verbose")
}
