package transport

import (
	"bufio"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ggm/config"
	"ggm/util"
)

// TestTCPDialer_Connect verifies that TCPDialer can reach a local
// TCP server and exchange data.
func TestTCPDialer_Connect(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	// Server: accept, send greeting, close.
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		conn.Write([]byte("hello from server\n")) //nolint:errcheck
	}()

	d := &TCPDialer{Timeout: 2 * time.Second}
	ctx := context.Background()

	conn, err := d.Dial(ctx, "tcp", ln.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	buf := make([]byte, 256)
	n, err := conn.Read(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("read: %v", err)
	}
	if got := string(buf[:n]); got != "hello from server\n" {
		t.Errorf("got %q, want %q", got, "hello from server\n")
	}
}

// TestTCPDialer_ContextCancel verifies that a cancelled context stops the dial.
func TestTCPDialer_ContextCancel(t *testing.T) {
	d := &TCPDialer{Timeout: 5 * time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	_, err := d.Dial(ctx, "tcp", "127.0.0.1:1")
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

// TestTCPDialer_Close verifies Close is a no-op and returns nil.
func TestTCPDialer_Close(t *testing.T) {
	d := &TCPDialer{}
	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

// TestTLSDialer_Handshake verifies a TLS session is established over
// the base dialer when verification is skipped.
func TestTLSDialer_Handshake(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok") //nolint:errcheck
	}))
	defer srv.Close()

	d := &TLSDialer{Base: &TCPDialer{Timeout: 2 * time.Second}, InsecureSkipVerify: true}
	conn, err := d.Dial(context.Background(), "tcp", srv.Listener.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	io.WriteString(conn, "GET / HTTP/1.0\r\n\r\n") //nolint:errcheck
	status, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(status, "HTTP/1.0 200") {
		t.Errorf("status line = %q", status)
	}
}

// TestTLSDialer_VerifyFails verifies an untrusted certificate is
// rejected by default.
func TestTLSDialer_VerifyFails(t *testing.T) {
	srv := httptest.NewTLSServer(http.NotFoundHandler())
	defer srv.Close()

	d := &TLSDialer{Base: &TCPDialer{Timeout: 2 * time.Second}}
	if _, err := d.Dial(context.Background(), "tcp", srv.Listener.Addr().String()); err == nil {
		t.Fatal("expected certificate verification failure")
	}
}

// TestNew_Chain verifies the dialer chain follows the main section.
func TestNew_Chain(t *testing.T) {
	logger := util.NewLogger(0)

	d, err := New(&config.Main{TLS: true}, logger)
	if err != nil {
		t.Fatal(err)
	}
	tlsD, ok := d.(*TLSDialer)
	if !ok {
		t.Fatalf("expected *TLSDialer, got %T", d)
	}
	if _, ok := tlsD.Base.(*TCPDialer); !ok {
		t.Errorf("expected TCP base, got %T", tlsD.Base)
	}

	d, err = New(&config.Main{TLS: false}, logger)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := d.(*TCPDialer); !ok {
		t.Errorf("expected *TCPDialer, got %T", d)
	}

	d, err = New(&config.Main{TLS: true, Gateway: "bot@bastion.example.com:2222"}, logger)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := d.(*TLSDialer).Base.(*SSHDialer); !ok {
		t.Errorf("expected SSH base, got %T", d.(*TLSDialer).Base)
	}

	if _, err := New(&config.Main{Gateway: "bad:port:spec"}, logger); err == nil {
		t.Error("expected error for a bad gateway")
	}
}
