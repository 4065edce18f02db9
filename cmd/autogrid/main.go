// Package main provides the autogrid command line tool.
//
// Usage:
//
//	autogrid parse <sizes>      Show how a size list is read
//	autogrid plan <file.hcl>    Lay out a grid description and print the result
//	autogrid version            Print version information
//
// Examples:
//
//	autogrid parse "100,*,2*,Auto"
//	autogrid plan dashboard.hcl --width 120 --height 40
//	autogrid plan --debug-log /tmp/autogrid.log dashboard.hcl
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "autogrid",
		Short: "Inspect auto grid layouts",
		Long: `autogrid lays out grid descriptions the same way the autogrid
package does at runtime: children flow through a fixed number of
columns (or rows) and the other axis grows to fit them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		parseCmd(),
		planCmd(),
		versionCmd(),
	)
	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "autogrid version %s\n", version)
		},
	}
}
