package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ggmerr "ggm/internal/errors"
	"ggm/internal/retry"
)

// TestClient_GetJSON verifies a successful decode and the request
// headers.
func TestClient_GetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != UserAgent {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"value":{"joke":"Chuck Norris counted to infinity. Twice."}}`))
	}))
	defer srv.Close()

	c := New("Chuck Norris API", srv.Client(), nil)
	var doc struct {
		Value struct {
			Joke string `json:"joke"`
		} `json:"value"`
	}
	if err := c.GetJSON(context.Background(), srv.URL, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Value.Joke == "" {
		t.Error("joke not decoded")
	}
}

// TestClient_Status verifies non-2xx replies are ErrSourceUnavailable
// and still expose the status code.
func TestClient_Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := New("GeoIP API", srv.Client(), nil)
	_, err := c.Get(context.Background(), srv.URL)
	if !errors.Is(err, ggmerr.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusForbidden {
		t.Fatalf("expected 403 StatusError, got %v", err)
	}
}

func TestClient_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := New("api", srv.Client(), nil)
	var v map[string]interface{}
	if err := c.GetJSON(context.Background(), srv.URL, &v); !errors.Is(err, ggmerr.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

// TestClient_CircuitOpens verifies repeated failures stop reaching the
// server.
func TestClient_CircuitOpens(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New("api", srv.Client(), &retry.CircuitBreakerConfig{MaxFailures: 2, ResetTimeout: time.Hour})
	for i := 0; i < 4; i++ {
		_, _ = c.Get(context.Background(), srv.URL)
	}
	if hits != 2 {
		t.Errorf("server hit %d times, want 2", hits)
	}
	_, err := c.Get(context.Background(), srv.URL)
	if !errors.Is(err, ggmerr.ErrCircuitOpen) {
		t.Errorf("expected ErrCircuitOpen, got %v", err)
	}
	if c.Breaker().CurrentState() != retry.StateOpen {
		t.Errorf("state = %v", c.Breaker().CurrentState())
	}
}

func TestUnavailable(t *testing.T) {
	want := "Cannot reach Chuck Norris API. Please contact bot maintainer."
	if got := Unavailable("Chuck Norris API"); got != want {
		t.Errorf("got %q", got)
	}
}

// TestClient_Resolve verifies HEAD redirects are followed to the final
// URL.
func TestClient_Resolve(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/short", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("method = %s", r.Method)
		}
		http.Redirect(w, r, "/long/article", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/long/article", func(w http.ResponseWriter, r *http.Request) {})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New("shortener", srv.Client(), nil)
	got, err := c.Resolve(context.Background(), srv.URL+"/short")
	if err != nil {
		t.Fatal(err)
	}
	if got != srv.URL+"/long/article" {
		t.Errorf("Resolve = %q", got)
	}
}

func TestClient_Page(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><title>hi</title></html>"))
	}))
	defer srv.Close()

	body, err := New("page", srv.Client(), nil).Page(context.Background(), srv.URL)
	if err != nil || string(body) != "<html><title>hi</title></html>" {
		t.Fatalf("Page = %q, %v", body, err)
	}
}
