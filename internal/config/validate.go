package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/trustlens/tlens/internal/errors"
)

// Minimum rotation interval; faster rotation makes the chart unreadable and
// hammers the rng for nothing.
const MinRotateInterval = time.Second

// Validate checks the config for errors and returns structured error messages.
func (c *Config) Validate() error {
	if c.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but tlens only knows up to %d)", c.Version, CurrentConfigVersion),
			"Grab the latest tlens: https://github.com/trustlens/tlens/releases")
	}

	switch c.Mode {
	case ModeMock, ModeRemote:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown mode '%s'", c.Mode),
			"Use 'mock' for demo data or 'remote' for a live TrustLens API")
	}

	if c.Mode == ModeRemote {
		if c.APIBase == "" {
			return errors.New(errors.ErrConfig,
				"Remote mode needs an api_base URL",
				"Set api_base in .tlens.yaml, e.g. api_base: http://localhost:8000")
		}
		u, err := url.Parse(c.APIBase)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Invalid api_base URL '%s'", c.APIBase),
				"Use a full URL with scheme, e.g. http://localhost:8000")
		}
	}

	if c.RotateInterval < MinRotateInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("rotate_interval %s is too short", c.RotateInterval),
			"Use at least 1s; the default is 6s")
	}

	if c.AlertLimit <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("alert_limit must be positive, got %d", c.AlertLimit),
			"Use a value between 1 and 100; the default is 20")
	}

	if c.TrendPoints <= 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("trend_points must be at least 2, got %d", c.TrendPoints),
			"The default window is 30 points")
	}

	if err := validateOutput(c.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check the 'output' section in your .tlens.yaml.")
	}

	return nil
}

// validateOutput checks the output section.
func validateOutput(out OutputConfig) error {
	switch out.Color {
	case "", "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("invalid color mode '%s' (use auto, always, or never)", out.Color)
	}
}
