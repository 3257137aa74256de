// Package source fetches JSON documents from the external services the
// plugins depend on.  Each Client sits behind its own circuit breaker
// so a dead service is not hammered once per chat line.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	ggmerr "ggm/internal/errors"
	"ggm/internal/retry"
)

// UserAgent is sent with every request.
const UserAgent = "ggm IRC bot"

// maxBody caps how much of a response is read.
const maxBody = 4 << 20

// StatusError reports a non-2xx reply.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Code)
}

// Client fetches JSON from one named service.
type Client struct {
	name    string
	http    *http.Client
	breaker *retry.CircuitBreaker
}

// New returns a Client for the service called name.  A nil hc uses
// http.DefaultClient; a nil cb config uses the defaults.
func New(name string, hc *http.Client, cb *retry.CircuitBreakerConfig) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{name: name, http: hc, breaker: retry.NewCircuitBreaker(cb)}
}

// Name is the service name used in replies such as
// "Cannot reach <name>."
func (c *Client) Name() string { return c.name }

// Breaker exposes the circuit breaker state.
func (c *Client) Breaker() *retry.CircuitBreaker { return c.breaker }

// GetJSON decodes the document at url into v.  Any failure, including a
// non-2xx status or an open circuit, wraps ErrSourceUnavailable.
func (c *Client) GetJSON(ctx context.Context, url string, v interface{}) error {
	err := c.breaker.Execute(func() error {
		body, _, err := c.do(ctx, http.MethodGet, url, "application/json")
		if err != nil {
			return err
		}
		return json.Unmarshal(body, v)
	})
	if err != nil {
		return fmt.Errorf("%s: %w: %w", c.name, ggmerr.ErrSourceUnavailable, err)
	}
	return nil
}

// Get returns the raw body at url.  Non-2xx statuses come back as a
// *StatusError so callers can special-case quota replies.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := c.breaker.Execute(func() error {
		var err error
		body, _, err = c.do(ctx, http.MethodGet, url, "application/json")
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", c.name, ggmerr.ErrSourceUnavailable, err)
	}
	return body, nil
}

// Resolve follows redirects with HEAD requests and returns the final
// URL.
func (c *Client) Resolve(ctx context.Context, url string) (string, error) {
	var final string
	err := c.breaker.Execute(func() error {
		var err error
		_, final, err = c.do(ctx, http.MethodHead, url, "*/*")
		return err
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", c.name, ggmerr.ErrSourceUnavailable, err)
	}
	return final, nil
}

// Page returns the body of an HTML page.
func (c *Client) Page(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := c.breaker.Execute(func() error {
		var err error
		body, _, err = c.do(ctx, http.MethodGet, url, "text/html,application/xhtml+xml")
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", c.name, ggmerr.ErrSourceUnavailable, err)
	}
	return body, nil
}

// do performs one request and returns the body and the URL that was
// finally fetched after redirects.
func (c *Client) do(ctx context.Context, method, url, accept string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, "", retry.Permanent(err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", accept)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	final := resp.Request.URL.String()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return nil, final, &StatusError{URL: url, Code: resp.StatusCode}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	return body, final, err
}

// Unavailable is the reply sent when a source cannot be reached.
func Unavailable(name string) string {
	return fmt.Sprintf("Cannot reach %s. Please contact bot maintainer.", name)
}
