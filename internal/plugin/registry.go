package plugin

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"ggm/config"
	ggmerr "ggm/internal/errors"
	"ggm/internal/metrics"
	"ggm/util"
)

// Deps are the shared services handed to every plugin constructor.
type Deps struct {
	Logger       *util.Logger
	Metrics      *metrics.Collector
	FetchTimeout time.Duration
	HTTPClient   *http.Client
	Now          func() time.Time
}

// WithDefaults fills unset fields.
func (d Deps) WithDefaults() Deps {
	if d.Logger == nil {
		d.Logger = util.NewLogger(int(util.LogQuiet))
	}
	if d.FetchTimeout <= 0 {
		d.FetchTimeout = config.DefaultFetchTimeout
	}
	if d.HTTPClient == nil {
		d.HTTPClient = &http.Client{Timeout: d.FetchTimeout}
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// Factory builds a plugin from its configuration section.
type Factory func(opts config.Options, deps Deps) (Plugin, error)

// Registry maps plugin ids to constructors.
type Registry map[string]Factory

// IDs returns the registered plugin ids, sorted.
func (r Registry) IDs() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Build instantiates every configured section in order.  Unknown ids and
// constructor failures are reported as configuration errors.
func (r Registry) Build(sections []config.PluginSection, deps Deps) ([]Registration, error) {
	deps = deps.WithDefaults()
	regs := make([]Registration, 0, len(sections))
	for _, sec := range sections {
		factory, ok := r[sec.Plugin]
		if !ok {
			return nil, &ggmerr.ConfigError{
				Field:   sec.Name + ".plugin",
				Value:   sec.Plugin,
				Message: "unknown plugin",
				Hint:    "available plugins: " + strings.Join(r.IDs(), ", "),
			}
		}
		p, err := factory(sec.Options, deps)
		if err != nil {
			return nil, &ggmerr.ConfigError{
				Field:   sec.Name,
				Message: fmt.Sprintf("plugin %s: %v", sec.Plugin, err),
			}
		}
		deps.Logger.Verbose("Loaded plugin %s (%s): %s", sec.Name, sec.Plugin, strings.Join(p.Commands(), " "))
		regs = append(regs, Registration{Name: sec.Name, Commands: p.Commands(), Plugin: p})
	}
	return regs, nil
}
