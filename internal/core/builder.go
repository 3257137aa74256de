package core

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"ggm/config"
	"ggm/internal/metrics"
	"ggm/internal/plugin"
	"ggm/internal/router"
	"ggm/internal/transport"
	"ggm/util"
)

// Deps are the process-wide services Build wires into a Mode.
type Deps struct {
	Logger   *util.Logger
	Metrics  *metrics.Collector
	Registry plugin.Registry
	About    string

	// DryRun selects DryRunMode, which reports to Out instead of
	// connecting.
	DryRun bool
	Out    io.Writer
}

// Build constructs the appropriate Mode from the given configuration.
// Plugins and the router are always built, so a dry run catches the same
// configuration errors a real start would.
func Build(cfg *config.Config, deps Deps) (Mode, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Logger == nil {
		deps.Logger = util.NewLogger(int(util.LogQuiet))
	}

	regs, err := deps.Registry.Build(cfg.Plugins, plugin.Deps{
		Logger:       deps.Logger,
		Metrics:      deps.Metrics,
		FetchTimeout: cfg.Main.FetchTimeout,
		HTTPClient:   &http.Client{Timeout: cfg.Main.FetchTimeout},
	})
	if err != nil {
		return nil, err
	}
	ropts := []router.Option{router.WithLogger(deps.Logger), router.WithMetrics(deps.Metrics)}
	if deps.About != "" {
		ropts = append(ropts, router.WithAbout(deps.About))
	}
	r, err := router.New(regs, ropts...)
	if err != nil {
		return nil, err
	}

	if deps.DryRun {
		out := deps.Out
		if out == nil {
			out = os.Stdout
		}
		return &DryRunMode{Main: cfg.Main, Router: r, Out: out}, nil
	}

	dialer, err := transport.New(&cfg.Main, deps.Logger)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("transport: %w", err)
	}
	return NewSupervisor(&cfg.Main, dialer, r, deps.Logger, deps.Metrics), nil
}
