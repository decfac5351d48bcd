package cli

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/trustlens/tlens/internal/api"
	"github.com/trustlens/tlens/internal/config"
	"github.com/trustlens/tlens/internal/errors"
	"github.com/trustlens/tlens/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Overwrite      bool // Overwrite existing config without asking
	NonInteractive bool // Skip prompts, use defaults
}

// Init creates a new .tlens.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		var overwrite bool

		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	if !opts.NonInteractive {
		mode := cfg.Mode
		apiBase := cfg.APIBase

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Data mode").
					Description("Mock synthesizes demo data locally; remote talks to a TrustLens API").
					Options(
						huh.NewOption("mock (demo data, no server needed)", config.ModeMock),
						huh.NewOption("remote (live TrustLens API)", config.ModeRemote),
					).
					Value(&mode),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("API base URL").
					Description("Where the TrustLens API is running").
					Placeholder("http://localhost:8000").
					Value(&apiBase).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("API base URL is required")
						}
						u, err := url.Parse(s)
						if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
							return fmt.Errorf("use a full URL like http://localhost:8000")
						}
						return nil
					}),
			).WithHideFunc(func() bool {
				return mode != config.ModeRemote
			}),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --non-interactive")
		}

		cfg.Mode = mode
		cfg.APIBase = apiBase

		// Probe the API before saving a remote config
		if mode == config.ModeRemote {
			if err := probeBeforeSave(cfg.APIBase); err != nil {
				return err
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# tlens configuration
# Run 'tlens' to start the dashboard
# See: https://github.com/trustlens/tlens for documentation

`
	content := header + string(data)

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  tlens         - Start the dashboard")
	fmt.Println("  tlens status  - One-shot health check")

	return nil
}

// probeBeforeSave checks the API is reachable, offering to save anyway when
// it is not.
func probeBeforeSave(apiBase string) error {
	fmt.Println()
	spinner := ui.NewSpinner("Testing connection to " + apiBase)
	spinner.Start()

	ctx, cancel := context.WithTimeout(context.Background(), statusTimeout)
	defer cancel()

	client := api.New(apiBase)
	if _, err := client.Health(ctx); err != nil {
		spinner.Fail()

		var saveAnyway bool
		fmt.Printf("\n%s Connection to '%s' failed: %v\n\n", ui.SymbolFail, apiBase, err)

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Save config anyway? (You can fix the connection later)").
					Value(&saveAnyway),
			),
		)

		if formErr := form.Run(); formErr != nil || !saveAnyway {
			return errors.WrapWithCode(err, errors.ErrAPI,
				fmt.Sprintf("Connection to '%s' failed", apiBase),
				"Check the TrustLens API is running and the URL is correct")
		}
		fmt.Println()
		return nil
	}

	spinner.Success()
	fmt.Println()
	return nil
}
