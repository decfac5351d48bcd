// Package cli implements the tlens command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags
var (
	configFlag  string
	noColorFlag bool
)

// rootCmd is the base command. Running tlens with no subcommand starts the
// dashboard, which is what people want nine times out of ten.
var rootCmd = &cobra.Command{
	Use:   "tlens",
	Short: "Terminal dashboard for TrustLens data quality",
	Long: `tlens is a terminal dashboard for the TrustLens data quality API.

It shows your monitored data sources, recent alerts, and a live null-rate
and freshness trend chart, either from a running TrustLens API server or
from locally synthesized demo data.

Examples:
  tlens                     Start the dashboard (mock data by default)
  tlens dashboard --mode remote --api http://localhost:8000
  tlens status              One-shot health and source summary
  tlens init                Create a .tlens.yaml config file`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(dashboardOptions{
			ConfigPath: configFlag,
		})
	},
}

// Execute runs the root command and exits non-zero on failure. Structured
// errors already carry their own formatting and suggestion text.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "config file path (default: .tlens.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
}
