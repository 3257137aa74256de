// Package transport establishes the byte stream the IRC session runs
// over: TLS (the default), plain TCP, or either of those carried through
// an SSH gateway.  What happens over the connection is the session's
// business.
package transport

import (
	"context"
	"net"
	"time"

	"ggm/config"
	"ggm/tunnel"
	"ggm/util"
)

// Dialer opens outbound network connections.
type Dialer interface {
	// Dial establishes a connection to the given network address.
	Dial(ctx context.Context, network, address string) (net.Conn, error)

	// Close releases any long-lived resources held by the dialer
	// (e.g. an SSH session).  Stateless dialers return nil.
	Close() error
}

// New builds the dialer chain described by the main section: an SSH
// gateway or a direct TCP dialer, wrapped in TLS unless tls is off.
func New(m *config.Main, logger *util.Logger) (Dialer, error) {
	var base Dialer = &TCPDialer{Timeout: config.DefaultConnTimeout}

	if m.Gateway != "" {
		user, host, port, err := config.ParseGatewaySpec(m.Gateway)
		if err != nil {
			return nil, err
		}
		if user == "" {
			user = m.Username
		}
		base = NewSSHDialer(&tunnel.SSHConfig{
			User:          user,
			Host:          host,
			Port:          port,
			KeyPath:       m.GatewayKey,
			StrictHostKey: m.StrictHostKey,
			KnownHosts:    m.KnownHosts,
			ConnTimeout:   config.DefaultConnTimeout,
		}, logger)
	}

	if !m.TLS {
		logger.Warn("TLS is disabled; the SASL password crosses the network in the clear")
		return base, nil
	}
	return &TLSDialer{
		Base:               base,
		InsecureSkipVerify: m.TLSInsecure,
		HandshakeTimeout:   config.DefaultConnTimeout,
	}, nil
}

// handshakeDeadline returns the earlier of ctx's deadline and now+d.
func handshakeDeadline(ctx context.Context, d time.Duration) time.Time {
	deadline := time.Now().Add(d)
	if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
		return dl
	}
	return deadline
}
