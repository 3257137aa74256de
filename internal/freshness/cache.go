// Package freshness keeps the last good copy of remotely fetched data and
// refreshes it once it is older than a TTL.
//
// A failed refresh never touches the cached payload or its timestamp, so
// the next request simply tries again.
package freshness

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"

	ggmerr "ggm/internal/errors"
	"ggm/internal/metrics"
	"ggm/internal/telemetry"
	"ggm/util"
)

// DefaultTTL is used when no TTL is configured.
const DefaultTTL = 60 * time.Second

// DefaultTimeout bounds a single fetch.
const DefaultTimeout = 10 * time.Second

// FetchFunc pulls a fresh payload from the source.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Cache holds one payload of type T.
type Cache[T any] struct {
	name    string
	fetch   FetchFunc[T]
	ttl     time.Duration
	timeout time.Duration
	now     func() time.Time
	logger  *util.Logger
	metrics *metrics.Collector

	group singleflight.Group

	mu      sync.RWMutex
	payload T
	fetched time.Time // zero: never fetched
}

// Option configures a Cache.
type Option func(*options)

type options struct {
	ttl     time.Duration
	timeout time.Duration
	now     func() time.Time
	logger  *util.Logger
	metrics *metrics.Collector
}

// WithTTL sets the maximum payload age.
func WithTTL(d time.Duration) Option { return func(o *options) { o.ttl = d } }

// WithTimeout bounds each fetch.
func WithTimeout(d time.Duration) Option { return func(o *options) { o.timeout = d } }

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option { return func(o *options) { o.now = now } }

// WithLogger logs failed refreshes.
func WithLogger(l *util.Logger) Option { return func(o *options) { o.logger = l } }

// WithMetrics records refresh outcomes.
func WithMetrics(m *metrics.Collector) Option { return func(o *options) { o.metrics = m } }

// New returns an empty cache named name, filled by fetch.
func New[T any](name string, fetch FetchFunc[T], opts ...Option) *Cache[T] {
	o := options{ttl: DefaultTTL, timeout: DefaultTimeout, now: time.Now}
	for _, fn := range opts {
		fn(&o)
	}
	if o.ttl <= 0 {
		o.ttl = DefaultTTL
	}
	return &Cache[T]{
		name:    name,
		fetch:   fetch,
		ttl:     o.ttl,
		timeout: o.timeout,
		now:     o.now,
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// Name identifies the cache in logs and metrics.
func (c *Cache[T]) Name() string { return c.name }

// TTL returns the configured maximum age.
func (c *Cache[T]) TTL() time.Duration { return c.ttl }

// IsStale reports whether nothing was ever fetched or the payload is
// older than the TTL.
func (c *Cache[T]) IsStale() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.staleLocked()
}

func (c *Cache[T]) staleLocked() bool {
	return c.fetched.IsZero() || c.now().Sub(c.fetched) > c.ttl
}

// Refresh fetches a new payload and reports whether it succeeded.
// Concurrent callers share one fetch.
func (c *Cache[T]) Refresh(ctx context.Context) bool {
	ch := c.group.DoChan(c.name, func() (interface{}, error) {
		return nil, c.refresh(ctx)
	})
	select {
	case r := <-ch:
		return r.Err == nil
	case <-ctx.Done():
		return false
	}
}

func (c *Cache[T]) refresh(ctx context.Context) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "freshness.refresh", attribute.String("ggm.cache", c.name))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	payload, err := c.fetch(ctx)
	c.metrics.Refresh(c.name, err == nil)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("%s: refresh failed: %v", c.name, err)
		}
		c.metrics.RecordError("refresh", fmt.Sprintf("%s: %v", c.name, err))
		return err
	}

	c.mu.Lock()
	c.payload = payload
	c.fetched = c.now()
	c.mu.Unlock()
	if c.logger != nil {
		c.logger.Verbose("%s: refreshed", c.name)
	}
	return nil
}

// Get returns the payload, refreshing it first when stale.  When the
// refresh fails the error wraps ErrSourceUnavailable and stale data is
// not served.
func (c *Cache[T]) Get(ctx context.Context) (T, error) {
	if c.IsStale() && !c.Refresh(ctx) {
		var zero T
		return zero, fmt.Errorf("%s: %w", c.name, ggmerr.ErrSourceUnavailable)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.payload, nil
}

// Peek returns the cached payload and its fetch time without refreshing.
// A zero time means nothing was fetched yet.
func (c *Cache[T]) Peek() (T, time.Time) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.payload, c.fetched
}
