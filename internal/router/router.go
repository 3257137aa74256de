// Package router resolves an inbound chat line to exactly one handler.
//
// The built-in commands are consulted first, then every plugin in
// registration order; the first handler whose HasCommand is true owns the
// line.  A line nobody claims gets no reply.
package router

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	ggmerr "ggm/internal/errors"
	"ggm/internal/metrics"
	"ggm/internal/plugin"
	"ggm/internal/telemetry"
	"ggm/util"
)

// Router dispatches lines to the built-in handler and the registered
// plugins.  Registrations are fixed at construction.
type Router struct {
	builtin *builtin
	regs    []plugin.Registration
	owners  map[string]plugin.Registration // command name without Marker
	logger  *util.Logger
	metrics *metrics.Collector
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the log sink.
func WithLogger(l *util.Logger) Option { return func(r *Router) { r.logger = l } }

// WithMetrics records dispatch counts and latency.
func WithMetrics(m *metrics.Collector) Option { return func(r *Router) { r.metrics = m } }

// WithAbout sets the ?about reply.
func WithAbout(text string) Option { return func(r *Router) { r.builtin.about = text } }

// New builds a router over regs.  Two registrations declaring the same
// command, or a plugin shadowing a built-in, is a configuration error.
func New(regs []plugin.Registration, opts ...Option) (*Router, error) {
	r := &Router{
		regs:   append([]plugin.Registration(nil), regs...),
		owners: make(map[string]plugin.Registration),
	}
	r.builtin = newBuiltin(r)
	for _, o := range opts {
		o(r)
	}
	if r.logger == nil {
		r.logger = util.NewLogger(int(util.LogQuiet))
	}

	claimed := make(map[string]string)
	for _, cmd := range r.builtin.Commands() {
		claimed[cmd] = "built-in commands"
	}
	for _, reg := range r.regs {
		for _, cmd := range reg.Commands {
			if !strings.HasPrefix(cmd, plugin.Marker) {
				return nil, &ggmerr.ConfigError{
					Field:   reg.Name,
					Value:   cmd,
					Message: "command does not start with " + plugin.Marker,
				}
			}
			if owner, dup := claimed[cmd]; dup {
				return nil, &ggmerr.ConfigError{
					Field:   reg.Name,
					Value:   cmd,
					Message: "command already registered by " + owner,
					Hint:    "remove one of the sections or disable the duplicate command",
				}
			}
			claimed[cmd] = reg.Name
			r.owners[strings.TrimPrefix(cmd, plugin.Marker)] = reg
		}
	}
	return r, nil
}

// Commands returns every command name, built-in and plugin, sorted.
func (r *Router) Commands() []string {
	cmds := r.builtin.Commands()
	for _, reg := range r.regs {
		cmds = append(cmds, reg.Commands...)
	}
	sort.Strings(cmds)
	return cmds
}

// Close releases plugins that hold resources, such as database
// handles.  Every closer is called; the errors are joined.
func (r *Router) Close() error {
	var errs []error
	for _, reg := range r.regs {
		if c, ok := reg.Plugin.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", reg.Name, err))
			}
		}
	}
	return ggmerr.Join(errs...)
}

// Registrations returns the plugins in routing order.
func (r *Router) Registrations() []plugin.Registration {
	return append([]plugin.Registration(nil), r.regs...)
}

// Route hands text to the first handler that claims it.  handled is false
// when nobody did; a claimed line may still produce an empty reply.
func (r *Router) Route(ctx context.Context, text string) (reply plugin.Reply, handled bool) {
	line := strings.TrimSpace(text)
	if line == "" {
		return plugin.Reply{}, false
	}

	if r.builtin.HasCommand(line) {
		return r.dispatch(ctx, "builtin", r.builtin, line), true
	}
	for _, reg := range r.regs {
		if r.claims(reg, line) {
			return r.dispatch(ctx, reg.Name, reg.Plugin, line), true
		}
	}
	return plugin.Reply{}, false
}

// claims calls HasCommand, treating a panic as "not mine".
func (r *Router) claims(reg plugin.Registration, line string) (ok bool) {
	defer func() {
		if p := recover(); p != nil {
			r.panicked(reg.Name, "HasCommand", p)
			ok = false
		}
	}()
	return reg.Plugin.HasCommand(line)
}

func (r *Router) dispatch(ctx context.Context, name string, p plugin.Plugin, line string) (reply plugin.Reply) {
	ctx, span := telemetry.StartSpan(ctx, "router.dispatch",
		attribute.String("ggm.plugin", name),
		attribute.String("ggm.session", telemetry.SessionID(ctx)))
	start := time.Now()
	defer func() {
		if v := recover(); v != nil {
			r.panicked(name, "ParseCommand", v)
			telemetry.RecordError(span, fmt.Errorf("panic: %v", v))
			reply = plugin.Reply{}
		}
		r.metrics.CommandHandled(name, time.Since(start))
		span.End()
	}()

	r.logger.Debug("%s handles %q", name, line)
	return p.ParseCommand(ctx, line)
}

func (r *Router) panicked(name, method string, v interface{}) {
	r.logger.Error("plugin %s: %s panicked: %v", name, method, v)
	r.metrics.RecordError("panic", fmt.Sprintf("%s.%s: %v", name, method, v))
}

// owner returns the plugin declaring the command name (without Marker).
func (r *Router) owner(name string) (plugin.Registration, bool) {
	reg, ok := r.owners[strings.TrimPrefix(name, plugin.Marker)]
	return reg, ok
}
