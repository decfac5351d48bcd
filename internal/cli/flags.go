package cli

import (
	"fmt"
	"time"

	"github.com/trustlens/tlens/internal/config"
	"github.com/trustlens/tlens/internal/errors"
)

// parseIntervalFlag parses the --interval flag into a duration.
// Returns zero duration if the flag is empty (meaning: use the config value).
func parseIntervalFlag(flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", flag),
			"Try something like 6s, 10s, or 1m.")
	}
	if d < config.MinRotateInterval {
		return 0, errors.New(errors.ErrConfig,
			"Interval too short",
			"Minimum rotation interval is 1s")
	}
	return d, nil
}

// resolveMode applies a --mode flag override to the configured mode.
func resolveMode(cfgMode, flag string) (string, error) {
	if flag == "" {
		return cfgMode, nil
	}
	switch flag {
	case config.ModeMock, config.ModeRemote:
		return flag, nil
	default:
		return "", errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown mode '%s'", flag),
			"Use --mode mock or --mode remote")
	}
}
