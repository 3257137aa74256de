// Package errors provides domain-specific error types for ggm.
//
// The structured types carry enough context (operation, address,
// retryability) for the supervisor to decide between reconnecting and
// giving up, and give the operator better diagnostics than plain
// string wrapping.
package errors

import (
	"errors"
	"fmt"
	"net"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrNotConnected      = errors.New("not connected")
	ErrCircuitOpen       = errors.New("circuit breaker is open")
	ErrTimeout           = errors.New("operation timed out")
	ErrAuthFailed        = errors.New("authentication failed")
	ErrCapRejected       = errors.New("capability negotiation rejected")
	ErrSourceUnavailable = errors.New("data source unavailable")
	ErrConnectionLost    = errors.New("connection lost")
	ErrHostKeyMismatch   = errors.New("host key mismatch")
)

// ── Structured error types ───────────────────────────────────────────

// NetworkError represents a failure in a network operation.
type NetworkError struct {
	Op        string // "dial", "handshake", "read", "write"
	Addr      string
	Err       error
	Retryable bool
}

func (e *NetworkError) Error() string {
	s := fmt.Sprintf("%s %s: %v", e.Op, e.Addr, e.Err)
	if e.Retryable {
		s += " (retryable)"
	}
	return s
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ProtocolError reports a server reply that ended the session, such as
// a SASL failure numeric.
type ProtocolError struct {
	Command string // IRC command or numeric that triggered the error
	Reason  string // trailing text from the server, if any
	Err     error
}

func (e *ProtocolError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("irc %s: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("irc %s: %v: %s", e.Command, e.Err, e.Reason)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// SSHError represents a failure while using the SSH gateway.
type SSHError struct {
	Op   string // "handshake", "auth", "hostkey", "channel"
	Host string
	Port int
	Err  error
}

func (e *SSHError) Error() string {
	return fmt.Sprintf("ssh %s %s:%d: %v", e.Op, e.Host, e.Port, e.Err)
}

func (e *SSHError) Unwrap() error { return e.Err }

// ConfigError represents an invalid or missing configuration value.
type ConfigError struct {
	Field   string // dotted key, e.g. "main.port"
	Value   interface{}
	Message string
	Hint    string
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: %s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

// ── Constructors ─────────────────────────────────────────────────────

// Wrap creates a NetworkError, detecting retryability from the
// underlying error.
func Wrap(op, addr string, err error) *NetworkError {
	return &NetworkError{
		Op:        op,
		Addr:      addr,
		Err:       err,
		Retryable: classifyRetryable(err),
	}
}

// WrapSSH creates an SSHError.
func WrapSSH(op, host string, port int, err error) *SSHError {
	return &SSHError{Op: op, Host: host, Port: port, Err: err}
}

// Protocol creates a ProtocolError for the given command.
func Protocol(command, reason string, err error) *ProtocolError {
	return &ProtocolError{Command: command, Reason: reason, Err: err}
}

// ── Classification helpers ───────────────────────────────────────────

// IsRetryable reports whether err is worth retrying.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return ne.Retryable
	}
	return classifyRetryable(err)
}

// IsFatal reports whether err ends the bot instead of triggering a
// reconnect: authentication failures and capability rejections.
func IsFatal(err error) bool {
	return errors.Is(err, ErrAuthFailed) || errors.Is(err, ErrCapRejected)
}

func classifyRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConnectionLost) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return opErr.Temporary() //nolint:staticcheck // Temporary is deprecated but still useful
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.Temporary() //nolint:staticcheck
	}
	return false
}

// ── Re-exports for convenience ───────────────────────────────────────

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
