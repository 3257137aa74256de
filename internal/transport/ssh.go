package transport

import (
	"context"
	"net"

	"ggm/tunnel"
	"ggm/util"
)

// SSHDialer routes connections through an SSH gateway.  The gateway is
// connected lazily and re-dialled when a previous session died.
type SSHDialer struct {
	gateway *tunnel.Gateway
	logger  *util.Logger
}

// NewSSHDialer creates a dialer that forwards through the gateway
// described by cfg.
func NewSSHDialer(cfg *tunnel.SSHConfig, logger *util.Logger) *SSHDialer {
	return &SSHDialer{gateway: tunnel.NewGateway(cfg, logger), logger: logger}
}

// Dial connects to address through the gateway.
func (d *SSHDialer) Dial(ctx context.Context, network, address string) (net.Conn, error) {
	if !d.gateway.IsAlive() {
		d.logger.Verbose("establishing SSH gateway %s", d.gateway.Addr())
	}
	return d.gateway.Dial(ctx, network, address)
}

// Close tears down the gateway.
func (d *SSHDialer) Close() error { return d.gateway.Close() }
