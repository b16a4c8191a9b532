// Package cmd provides the CLI commands for bundle-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bundle-cost/internal/config"
	"bundle-cost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bundle-cost",
	Short: "Price telecom and entertainment bundles with discounts",
	Long: `bundle-cost is a discount-aware pricing tool for product bundles.

It evaluates a selection of products, tiers and units against a catalog
of discount rules and produces totals, discount breakdowns and
promotion summaries.

Examples:
  bundle-cost quote --catalog catalog.json --selection selection.yaml
  bundle-cost quote --catalog catalog.hcl --selection selection.json --format json
  bundle-cost promos --catalog catalog.json --selection selection.yaml`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.bundle-cost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(promosCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
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
		fmt.Println("bundle-cost version 0.1.0")
	},
}
