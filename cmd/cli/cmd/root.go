// Package cmd provides the CLI commands for planedeals.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzhaolt/plane-ticket-query/internal/config"
	"github.com/jackzhaolt/plane-ticket-query/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "planedeals",
	Short: "Monitor award flight deals",
	Long: `planedeals watches flight award pricing and alerts on redemptions
that beat a distance-banded award chart.

It combines a fast API backend for broad screening with an optional
slow, high-fidelity backend for verifying promising routes, caching the
expensive lookups.

Examples:
  planedeals search --config config/settings.yaml
  planedeals monitor --config config/settings.yaml
  planedeals distance JFK NRT
  planedeals charts evaluate --distance 6740 --points 45000`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config/settings.yaml when present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(chartsCmd)
	rootCmd.AddCommand(distanceCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		if _, err := os.Stat("config/settings.yaml"); err == nil {
			path = "config/settings.yaml"
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("planedeals version 0.1.0")
	},
}
