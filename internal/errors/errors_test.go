package errors

import (
	"fmt"
	"io"
	"net"
	"testing"
)

func TestNetworkError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  NetworkError
		want string
	}{
		{
			name: "retryable",
			err:  NetworkError{Op: "dial", Addr: "irc.libera.chat:6697", Err: io.EOF, Retryable: true},
			want: "dial irc.libera.chat:6697: EOF (retryable)",
		},
		{
			name: "non-retryable",
			err:  NetworkError{Op: "handshake", Addr: "irc.example.net:6697", Err: fmt.Errorf("bad certificate")},
			want: "handshake irc.example.net:6697: bad certificate",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	err := &NetworkError{Op: "read", Addr: "x", Err: io.EOF}
	if !Is(err, io.EOF) {
		t.Error("should unwrap to io.EOF")
	}
}

func TestProtocolError(t *testing.T) {
	err := Protocol("904", "SASL authentication failed", ErrAuthFailed)
	want := "irc 904: authentication failed: SASL authentication failed"
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !Is(err, ErrAuthFailed) {
		t.Error("should unwrap to ErrAuthFailed")
	}
	if got := Protocol("CAP", "", ErrCapRejected).Error(); got != "irc CAP: capability negotiation rejected" {
		t.Errorf("no reason: got %q", got)
	}
}

func TestSSHError_Format(t *testing.T) {
	err := WrapSSH("handshake", "bastion.example.com", 22, fmt.Errorf("connection refused"))
	want := "ssh handshake bastion.example.com:22: connection refused"
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestConfigError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  ConfigError
		want string
	}{
		{
			name: "with value and hint",
			err: ConfigError{
				Field:   "main.port",
				Value:   99999,
				Message: "out of range 1-65535",
				Hint:    "IRC over TLS is usually 6697",
			},
			want: "config: main.port=99999: out of range 1-65535\n  hint: IRC over TLS is usually 6697",
		},
		{
			name: "missing value no hint",
			err: ConfigError{
				Field:   "main.nickname",
				Message: "required",
			},
			want: "config: main.nickname: required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"retryable network", &NetworkError{Op: "dial", Addr: "x", Err: io.EOF, Retryable: true}, true},
		{"non-retryable network", &NetworkError{Op: "dial", Addr: "x", Err: io.EOF, Retryable: false}, false},
		{"connection lost", fmt.Errorf("read loop: %w", ErrConnectionLost), true},
		{"plain error", fmt.Errorf("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	if !IsFatal(Protocol("905", "", ErrAuthFailed)) {
		t.Error("auth failure should be fatal")
	}
	if !IsFatal(fmt.Errorf("cap: %w", ErrCapRejected)) {
		t.Error("cap rejection should be fatal")
	}
	if IsFatal(Wrap("read", "x", io.EOF)) {
		t.Error("read error should not be fatal")
	}
}

func TestClassifyRetryable_NetOpError(t *testing.T) {
	opErr := &net.OpError{
		Op:  "dial",
		Net: "tcp",
		Err: &net.DNSError{IsTemporary: true},
	}
	if !classifyRetryable(opErr) {
		t.Error("temporary OpError should be retryable")
	}
}

func TestSentinels(t *testing.T) {
	sentinels := []error{
		ErrNotConnected, ErrCircuitOpen, ErrTimeout, ErrAuthFailed,
		ErrCapRejected, ErrSourceUnavailable, ErrConnectionLost, ErrHostKeyMismatch,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && Is(a, b) {
				t.Errorf("sentinel %d and %d should not match", i, j)
			}
		}
	}
}
