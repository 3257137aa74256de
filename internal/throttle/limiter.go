// Package throttle implements the fixed-window request limiter shared by
// commands that call out to rate-limited sources.
package throttle

import (
	"sync"
	"time"
)

// Limiter allows at most max requests per window.  The first request
// opens a window; once window has elapsed since its start the next
// request opens a new one.  A full burst right after a reset is allowed,
// so up to 2*max requests can land within one window length.
type Limiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	now    func() time.Time

	start time.Time // zero: no window yet
	count int
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// New returns a limiter allowing max requests per window.
func New(max int, window time.Duration, opts ...Option) *Limiter {
	l := &Limiter{max: max, window: window, now: time.Now}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Allow records a request and reports whether it may proceed.  Rejected
// requests do not count toward the window.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.max <= 0 {
		return false
	}
	now := l.now()
	if l.start.IsZero() || now.Sub(l.start) > l.window {
		l.start = now
		l.count = 1
		return true
	}
	if l.count < l.max {
		l.count++
		return true
	}
	return false
}

// Count returns the requests accepted in the current window.
func (l *Limiter) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

// Max returns the per-window limit.
func (l *Limiter) Max() int { return l.max }

// Window returns the window length.
func (l *Limiter) Window() time.Duration { return l.window }
