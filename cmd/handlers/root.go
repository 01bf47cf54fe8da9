package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"signal/internal/config"
)

var cfgFile string

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "signal",
		Short: "Relevance-scored news briefings for client-facing teams",
		Long: `Signal - News Intelligence Digest Tool

Fetches configured RSS/Atom sources, scores every article against your
interest profile (industries, watched clients, theme keywords) and
produces daily and weekly briefings plus cross-source signals.

Core workflows:
  • Refresh: fetch all sources, score, cluster and write today's digests
  • Sources: manage the RSS/Atom source list
  • Digest: regenerate briefings from the last scored pool

Examples:
  # Fetch, score and write today's briefings
  signal refresh

  # List configured sources
  signal sources list

  # Regenerate the daily briefing without refetching
  signal digest`,
		Version: "1.0.0",
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .signal.yaml)")

	// Add subcommands
	rootCmd.AddCommand(NewRefreshCmd())
	rootCmd.AddCommand(NewSourcesCmd())
	rootCmd.AddCommand(NewDigestCmd())
	rootCmd.AddCommand(NewSignalsCmd())

	// Initialize config before running any command
	cobra.OnInitialize(initConfig)

	return rootCmd
}

// initConfig reads in config file and ENV variables
func initConfig() {
	_, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load config: %v\n", err)
		// Don't exit - allow running with just environment variables
	}
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
