package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/trustlens/tlens/internal/errors"
)

// Command-specific flags
var (
	dashboardModeFlag     string
	dashboardAPIFlag      string
	dashboardIntervalFlag string
	statusModeFlag        string
	statusAPIFlag         string
	initForce             bool
	initNonInteractive    bool
)

// dashboardCmd starts the TUI dashboard.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Real-time data quality dashboard",
	Long: `Start the interactive TUI dashboard showing monitored data sources,
recent alerts, and the null-rate/freshness trend chart.

The trend chart rotates automatically at the configured interval; manual
refresh (r) re-fetches sources and alerts but never touches the trend.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  r           Refresh sources and alerts
  s           Cycle sort order (default/name/status/type/last run)
  up/k        Select previous source
  down/j      Select next source
  ?           Show help

Examples:
  tlens dashboard
  tlens dashboard --mode remote --api http://localhost:8000
  tlens dashboard --interval 10s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, err := parseIntervalFlag(dashboardIntervalFlag)
		if err != nil {
			return err
		}
		return dashboardCommand(dashboardOptions{
			ConfigPath: configFlag,
			Mode:       dashboardModeFlag,
			APIBase:    dashboardAPIFlag,
			Interval:   interval,
		})
	},
}

// statusCmd prints a one-shot health and source summary.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "One-shot health and source summary",
	Long: `Print the API health and a table of monitored data sources, then exit.

Useful for scripts and quick checks without the full dashboard.

Examples:
  tlens status
  tlens status --mode remote --api http://localhost:8000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statusCommand(statusOptions{
			ConfigPath: configFlag,
			Mode:       statusModeFlag,
			APIBase:    statusAPIFlag,
		})
	},
}

// initCmd creates a new .tlens.yaml configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .tlens.yaml configuration",
	Long: `Initialize a new tlens configuration file.

Creates a .tlens.yaml file in the current directory with sensible defaults.
Guides you through mode and API URL selection with interactive prompts.

Examples:
  tlens init
  tlens init --force
  tlens init --non-interactive`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Overwrite:      initForce,
			NonInteractive: initNonInteractive,
		})
	},
}

// completionCmd generates shell completion scripts.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for tlens.

Examples:
  # Bash
  tlens completion bash > /etc/bash_completion.d/tlens

  # Zsh
  tlens completion zsh > "${fpath[1]}/_tlens"

  # Fish
  tlens completion fish > ~/.config/fish/completions/tlens.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrExec,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// dashboard command flags
	dashboardCmd.Flags().StringVar(&dashboardModeFlag, "mode", "", "data mode: mock or remote (default: from config)")
	dashboardCmd.Flags().StringVar(&dashboardAPIFlag, "api", "", "TrustLens API base URL")
	dashboardCmd.Flags().StringVar(&dashboardIntervalFlag, "interval", "", "trend rotation interval (e.g., 6s, 10s, 1m)")

	// status command flags
	statusCmd.Flags().StringVar(&statusModeFlag, "mode", "", "data mode: mock or remote (default: from config)")
	statusCmd.Flags().StringVar(&statusAPIFlag, "api", "", "TrustLens API base URL")

	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "skip prompts, use defaults")

	// Register all commands
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
