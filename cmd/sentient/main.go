// Package main implements the sentient CLI, an industrial equipment
// diagnostic assistant that plans, executes, and revises multi-step
// investigations over SCADA telemetry and technical manuals, with a human
// review gate between iterations.
//
// Usage:
//
//	# Answer a question interactively
//	sentient run "Why is pump P-101 vibrating?"
//
//	# Index manuals into the vector store
//	sentient ingest ./manuals
//
//	# Populate the telemetry database with demo data
//	sentient seed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "sentient",
	Short: "Industrial equipment diagnostic assistant",
	Long: `sentient diagnoses industrial equipment problems by planning and
executing multi-step investigations over SCADA telemetry logs and indexed
technical manuals. A human reviews the plan between iterations and can
continue, force synthesis, edit the remaining steps, or abort.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sentient %s\n", version)
		fmt.Printf("  commit: %s\n", gitCommit)
		fmt.Printf("  built:  %s\n", buildDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "sentient.yaml", "path to config file")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
