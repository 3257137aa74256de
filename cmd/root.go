// Package cmd wires up the CLI flags, loads the configuration and runs
// the bot.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"ggm/config"
	"ggm/internal/core"
	ggmerr "ggm/internal/errors"
	"ggm/internal/metrics"
	"ggm/internal/plugins"
	"ggm/internal/telemetry"
	"ggm/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X ggm/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Default account the bot drops to when started as root.
const (
	defaultDropUser  = "ggm"
	defaultDropGroup = "ggm"
)

type options struct {
	configPath string
	envFile    string
	user       string
	group      string
	verbose    int
	dryRun     bool
}

// Execute parses args and runs ggm until ctx is cancelled or a fatal
// error occurs.
func Execute(ctx context.Context, args []string) error {
	return execute(ctx, args, os.Stdout)
}

func execute(ctx context.Context, args []string, stdout io.Writer) error {
	var o options
	fs := flag.NewFlagSet("ggm", flag.ContinueOnError)

	fs.StringVarP(&o.configPath, "config", "c", "ggm.yaml", "Configuration file")
	fs.StringVar(&o.envFile, "env-file", "", "Load KEY=VALUE overrides (e.g. GGM_MAIN_PASSWORD) from this file")

	// ── privileges ───────────────────────────────────────────────
	fs.StringVar(&o.user, "user", "", "User to run as when started as root (default main.drop_user or ggm)")
	fs.StringVar(&o.group, "group", "", "Group to run as when started as root (default main.drop_group or ggm)")

	// ── output ───────────────────────────────────────────────────
	fs.CountVarP(&o.verbose, "verbose", "v", "Increase verbosity (repeatable)")
	fs.BoolVar(&o.dryRun, "dry-run", false, "Validate the configuration, print the plan and exit")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.SetOutput(io.Discard)
	fs.Usage = func() { printUsage(os.Stderr, fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}
	if showHelp {
		printUsage(stdout, fs)
		return nil
	}
	if showVersion {
		fmt.Fprintf(stdout, "ggm %s\n", version)
		return nil
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q (use --help for usage)", fs.Arg(0))
	}

	// ── configuration ────────────────────────────────────────────
	if err := config.LoadEnvFile(o.envFile); err != nil {
		return err
	}
	cfg, err := loadConfig(o.configPath, !o.dryRun)
	if err != nil {
		return err
	}
	m := &cfg.Main
	if fs.Changed("verbose") {
		m.Verbose = int(util.LogNormal) + o.verbose
	}

	// ── logging ──────────────────────────────────────────────────
	logger, err := newLogger(m)
	if err != nil {
		return err
	}
	defer logger.Close()

	// ── privileges ───────────────────────────────────────────────
	if !o.dryRun {
		user := firstNonEmpty(o.user, m.DropUser, defaultDropUser)
		group := firstNonEmpty(o.group, m.DropGroup, defaultDropGroup)
		if err := dropPrivileges(user, group, logger); err != nil {
			return fmt.Errorf("dropping privileges to %s:%s: %w", user, group, err)
		}
	}

	// ── build ────────────────────────────────────────────────────
	stats := metrics.New()
	mode, err := core.Build(cfg, core.Deps{
		Logger:   logger,
		Metrics:  stats,
		Registry: plugins.Registry(),
		About: fmt.Sprintf("ggm %s, a modular IRC command bot. "+
			"Use ?help and ?info for additional information.", version),
		DryRun: o.dryRun,
		Out:    stdout,
	})
	if err != nil {
		return err
	}
	if o.dryRun {
		return mode.Run(ctx)
	}

	// ── observability ────────────────────────────────────────────
	shutdown, err := telemetry.Init(ctx, m.TracingEndpoint, "ggm", version)
	if err != nil {
		logger.Warn("Tracing disabled: %v", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("Tracing shutdown: %v", err)
			}
		}()
	}
	if m.MetricsAddr != "" {
		go func() {
			logger.Verbose("Serving metrics on %s/metrics", m.MetricsAddr)
			if err := stats.Serve(ctx, m.MetricsAddr); err != nil {
				logger.Error("Metrics endpoint: %v", err)
			}
		}()
	}

	logger.Info("ggm %s starting", version)
	return mode.Run(ctx)
}

// loadConfig loads path.  When the only problem is a missing password
// and prompting is allowed on a terminal, the password is read
// interactively.
func loadConfig(path string, prompt bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	var ce *ggmerr.ConfigError
	if err == nil || !prompt || !errors.As(err, &ce) || ce.Field != "main.password" {
		return cfg, err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, err
	}

	fmt.Fprint(os.Stderr, "IRC password: ")
	pw, perr := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if perr != nil {
		return nil, fmt.Errorf("reading password: %w", perr)
	}

	key := config.EnvPrefix + "_MAIN_PASSWORD"
	if err := os.Setenv(key, string(pw)); err != nil {
		return nil, err
	}
	defer os.Unsetenv(key)
	return config.Load(path)
}

func newLogger(m *config.Main) (*util.Logger, error) {
	if m.Log {
		return util.NewFileLogger(m.Verbose, m.LogFile)
	}
	return util.NewLogger(m.Verbose), nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `ggm – a modular IRC command bot v%s

Connects to one IRC network over TLS, authenticates with SASL PLAIN,
joins the configured channels and answers ?commands from its plugins.

Usage:
  ggm [options]

Options:
`, version)
	fs.SetOutput(w)
	fs.PrintDefaults()
	fs.SetOutput(io.Discard)
	fmt.Fprintf(w, `
Examples:
  ggm -c /etc/ggm/ggm.yaml                    Run with a config file
  ggm -c ggm.yaml --dry-run                   Check the config and show the plan
  ggm --env-file secrets.env -vv              Password from a file, verbose logs
`)
}
