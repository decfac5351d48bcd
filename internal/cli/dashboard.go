package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trustlens/tlens/internal/api"
	"github.com/trustlens/tlens/internal/config"
	"github.com/trustlens/tlens/internal/dashboard"
	"github.com/trustlens/tlens/internal/errors"
	"github.com/trustlens/tlens/internal/logger"
)

// dashboardOptions collects the flag overrides applied on top of the config.
type dashboardOptions struct {
	ConfigPath string
	Mode       string        // "" means use config
	APIBase    string        // "" means use config
	Interval   time.Duration // 0 means use config
}

// dashboardCommand loads config, builds the dashboard state, and runs the
// TUI program until the user quits.
func dashboardCommand(opts dashboardOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	mode, err := resolveMode(cfg.Mode, opts.Mode)
	if err != nil {
		return err
	}
	if opts.APIBase != "" {
		cfg.APIBase = opts.APIBase
	}
	if opts.Interval > 0 {
		cfg.RotateInterval = opts.Interval
	}
	cfg.Mode = mode
	if err := cfg.Validate(); err != nil {
		return err
	}

	stateOpts := dashboard.Options{
		AlertLimit:  cfg.AlertLimit,
		TrendWindow: cfg.TrendWindow,
		TrendLength: cfg.TrendPoints,
		Logger:      logger.Default(),
	}
	if mode == config.ModeRemote {
		stateOpts.Mode = dashboard.ModeRemote
		stateOpts.Backend = api.New(cfg.APIBase)
	}

	state := dashboard.NewState(stateOpts)
	model := dashboard.NewModel(state, cfg.RotateInterval)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()

	// Belt and braces: quitting via the q key already closed the state
	state.Close()

	if err != nil {
		return errors.WrapWithCode(err, errors.ErrExec,
			"Dashboard terminated unexpectedly",
			"Check terminal compatibility; try a different terminal emulator")
	}

	// Surface a load failure that was showing when the user quit, so a
	// scripted run still exits non-zero on a broken API.
	if m, ok := final.(dashboard.Model); ok && m.Err() != nil {
		return errors.WrapWithCode(m.Err(), errors.ErrAPI,
			"Last data load failed",
			"Check the TrustLens API is reachable: "+cfg.APIBase)
	}

	return nil
}

// loadConfig loads config from an explicit path, or searches for one,
// falling back to defaults when no file exists.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadOrDefault()
}
