// Package metrics tracks runtime statistics of the bot and exposes them
// in Prometheus format.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ggm"

// Collector owns a private Prometheus registry plus a few atomic
// counters for the human-readable Snapshot.
type Collector struct {
	reg *prometheus.Registry

	linesIn    prometheus.Counter
	commands   *prometheus.CounterVec
	replies    *prometheus.CounterVec
	throttled  *prometheus.CounterVec
	refreshes  *prometheus.CounterVec
	reconnects prometheus.Counter
	errors     *prometheus.CounterVec
	connected  prometheus.Gauge
	dispatch   *prometheus.HistogramVec

	linesTotal    atomic.Int64
	commandsTotal atomic.Int64
	repliesTotal  atomic.Int64
	reconnTotal   atomic.Int64
	errorsTotal   atomic.Int64

	mu           sync.RWMutex
	startTime    time.Time
	lastError    time.Time
	lastErrorMsg string
}

// New creates a collector with its own registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Collector{
		reg: reg,
		linesIn: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "lines_received_total", Help: "Chat lines received from the server",
		}),
		commands: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "commands_handled_total", Help: "Lines claimed by a handler",
		}, []string{"plugin"}),
		replies: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "replies_sent_total", Help: "Reply lines sent",
		}, []string{"target"}),
		throttled: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "throttled_requests_total", Help: "Requests rejected by a rate limiter",
		}, []string{"plugin"}),
		refreshes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "cache_refreshes_total", Help: "Freshness cache refresh attempts",
		}, []string{"cache", "result"}),
		reconnects: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "reconnects_total", Help: "Reconnections after a lost connection",
		}),
		errors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "errors_total", Help: "Errors by kind",
		}, []string{"kind"}),
		connected: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "connected", Help: "1 while registered with the server",
		}),
		dispatch: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "dispatch_duration_seconds", Help: "Time spent handling a command",
			Buckets: prometheus.DefBuckets,
		}, []string{"plugin"}),
		startTime: time.Now(),
	}
}

// ── Session metrics ──────────────────────────────────────────────────

// LineReceived counts an inbound chat line.
func (c *Collector) LineReceived() {
	if c == nil {
		return
	}
	c.linesIn.Inc()
	c.linesTotal.Add(1)
}

// ReplySent counts an outbound reply line.
func (c *Collector) ReplySent(private bool) {
	if c == nil {
		return
	}
	target := "channel"
	if private {
		target = "private"
	}
	c.replies.WithLabelValues(target).Inc()
	c.repliesTotal.Add(1)
}

// SetConnected flips the connected gauge.
func (c *Collector) SetConnected(up bool) {
	if c == nil {
		return
	}
	if up {
		c.connected.Set(1)
	} else {
		c.connected.Set(0)
	}
}

// Reconnect records a reconnection attempt.
func (c *Collector) Reconnect() {
	if c == nil {
		return
	}
	c.reconnects.Inc()
	c.reconnTotal.Add(1)
}

// ── Command metrics ──────────────────────────────────────────────────

// CommandHandled records that plugin claimed a line and took d.
func (c *Collector) CommandHandled(plugin string, d time.Duration) {
	if c == nil {
		return
	}
	c.commands.WithLabelValues(plugin).Inc()
	c.dispatch.WithLabelValues(plugin).Observe(d.Seconds())
	c.commandsTotal.Add(1)
}

// Throttled records a rate-limited request.
func (c *Collector) Throttled(plugin string) {
	if c == nil {
		return
	}
	c.throttled.WithLabelValues(plugin).Inc()
}

// Refresh records a freshness cache refresh outcome.
func (c *Collector) Refresh(cache string, ok bool) {
	if c == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "failed"
	}
	c.refreshes.WithLabelValues(cache, result).Inc()
}

// ── Error metrics ────────────────────────────────────────────────────

// RecordError increments the error counter and stores the message.
func (c *Collector) RecordError(kind, msg string) {
	if c == nil {
		return
	}
	c.errors.WithLabelValues(kind).Inc()
	c.errorsTotal.Add(1)
	c.mu.Lock()
	c.lastError = time.Now()
	c.lastErrorMsg = msg
	c.mu.Unlock()
}

// ErrorCount returns the total number of errors recorded.
func (c *Collector) ErrorCount() int64 {
	if c == nil {
		return 0
	}
	return c.errorsTotal.Load()
}

// ── Exposition ───────────────────────────────────────────────────────

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.reg
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (c *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of the headline counters.
type Snapshot struct {
	Uptime           string `json:"uptime"`
	LinesReceived    int64  `json:"lines_received"`
	CommandsHandled  int64  `json:"commands_handled"`
	RepliesSent      int64  `json:"replies_sent"`
	Reconnects       int64  `json:"reconnects"`
	ErrorsTotal      int64  `json:"errors_total"`
	LastError        string `json:"last_error,omitempty"`
	LastErrorMessage string `json:"last_error_message,omitempty"`
}

// Snapshot returns a copy of the headline counters.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Uptime:          time.Since(c.startTime).Truncate(time.Second).String(),
		LinesReceived:   c.linesTotal.Load(),
		CommandsHandled: c.commandsTotal.Load(),
		RepliesSent:     c.repliesTotal.Load(),
		Reconnects:      c.reconnTotal.Load(),
		ErrorsTotal:     c.errorsTotal.Load(),
	}
	if !c.lastError.IsZero() {
		s.LastError = c.lastError.Format(time.RFC3339)
		s.LastErrorMessage = c.lastErrorMsg
	}
	return s
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	data, _ := json.MarshalIndent(c.Snapshot(), "", "  ")
	return string(data)
}
