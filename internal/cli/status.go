package cli

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/trustlens/tlens/internal/api"
	"github.com/trustlens/tlens/internal/config"
	"github.com/trustlens/tlens/internal/dashboard"
	"github.com/trustlens/tlens/internal/errors"
	"github.com/trustlens/tlens/internal/ui"
)

// statusTimeout bounds the whole one-shot probe.
const statusTimeout = 10 * time.Second

// statusOptions collects the flag overrides applied on top of the config.
type statusOptions struct {
	ConfigPath string
	Mode       string
	APIBase    string
}

// statusCommand prints API health and the source table, then exits.
func statusCommand(opts statusOptions) error {
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
	cfg.Mode = mode
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Monochrome when piped or explicitly requested
	if noColorFlag || !term.IsTerminal(int(os.Stdout.Fd())) {
		ui.DisableColors()
	}

	if mode == config.ModeMock {
		return statusMock()
	}
	return statusRemote(cfg)
}

// statusMock prints a synthesized snapshot, same shape as the dashboard's
// mock mode.
func statusMock() error {
	state := dashboard.NewState(dashboard.Options{
		Mode: dashboard.ModeMock,
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	})
	if err := state.Initialize(context.Background()); err != nil {
		return err
	}

	fmt.Println(ui.RenderHealthLine(true, "trustlens (mock)", ""))
	fmt.Println()
	printSources(state.Sources())
	return nil
}

// statusRemote probes the API and prints the live source table.
func statusRemote(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), statusTimeout)
	defer cancel()

	client := api.New(cfg.APIBase)

	start := time.Now()
	health, err := client.Health(ctx)
	latency := time.Since(start).Round(time.Millisecond)
	if err != nil {
		fmt.Println(ui.RenderHealthLine(false, "", cfg.APIBase))
		return errors.WrapWithCode(err, errors.ErrAPI,
			"TrustLens API health check failed",
			"Check the server is running and api_base is correct: "+cfg.APIBase)
	}

	service := health.Service
	if service == "" {
		service = "trustlens"
	}
	fmt.Println(ui.RenderHealthLine(health.OK, service, latency.String()))
	fmt.Println()

	sources, err := client.DataSources(ctx)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrAPI,
			"Failed to fetch data sources",
			"The API is up but the data-sources endpoint failed; check server logs")
	}

	printSources(sources)
	return nil
}

// printSources renders the source table and the derived count summary.
func printSources(sources []api.Source) {
	rows := make([]ui.SourceTableRow, len(sources))
	for i, src := range sources {
		rows[i] = ui.SourceTableRow{
			Name:    src.Name,
			Type:    src.Type,
			Status:  src.Status,
			LastRun: api.FormatClock(src.LastRun),
		}
	}
	fmt.Println(ui.RenderSourceTable(rows))

	counts := dashboard.CountByStatus(sources)
	fmt.Println(ui.RenderCountSummary(counts.Healthy, counts.Warning, counts.Failing, counts.Unknown))
}
