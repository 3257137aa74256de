package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"
	"time"

	ggmerr "ggm/internal/errors"
	"ggm/internal/retry"
)

func TestIsPublic(t *testing.T) {
	tests := map[string]bool{
		"93.184.216.34":    true,
		"2606:4700::1111":  true,
		"127.0.0.1":        false,
		"10.1.2.3":         false,
		"172.16.0.9":       false,
		"192.168.1.1":      false,
		"169.254.169.254":  false,
		"::1":              false,
		"fe80::1":          false,
		"fd00::1":          false,
		"0.0.0.0":          false,
		"::ffff:127.0.0.1": false,
		"224.0.0.1":        false,
	}
	for in, want := range tests {
		if got := isPublic(netip.MustParseAddr(in)); got != want {
			t.Errorf("isPublic(%s) = %v, want %v", in, got, want)
		}
	}
}

// TestPublicOnly_RefusesLoopback verifies a link to the bot's own host
// is never fetched and does not count against the source's breaker.
func TestPublicOnly_RefusesLoopback(t *testing.T) {
	hit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer srv.Close()

	c := New("URL", PublicOnly(time.Second), &retry.CircuitBreakerConfig{MaxFailures: 1, ResetTimeout: time.Minute, HalfOpenMax: 1})
	for i := 0; i < 2; i++ {
		_, err := c.Page(context.Background(), srv.URL)
		if !errors.Is(err, ErrPrivateAddress) || !errors.Is(err, ggmerr.ErrSourceUnavailable) {
			t.Fatalf("expected ErrPrivateAddress, got %v", err)
		}
	}
	if hit {
		t.Error("loopback server was contacted")
	}
	if c.Breaker().CurrentState() != retry.StateClosed {
		t.Errorf("breaker = %s", c.Breaker().CurrentState())
	}
}
