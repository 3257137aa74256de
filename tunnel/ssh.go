// Package tunnel connects to IRC through an SSH gateway.  The bot
// dials the gateway once and opens a direct-tcpip channel to the IRC
// server for every connection attempt; a dead gateway is re-dialled on
// the next attempt.
package tunnel

import (
	"context"
	"net"
	"sync"
	"time"

	"golang.org/x/crypto/ssh"

	ggmerr "ggm/internal/errors"
	"ggm/util"
)

// keepaliveInterval is how often the gateway is probed while idle.
const keepaliveInterval = 30 * time.Second

// SSHConfig holds everything needed to reach the gateway.
type SSHConfig struct {
	User          string
	Host          string
	Port          int
	KeyPath       string
	UseAgent      bool
	StrictHostKey bool
	KnownHosts    string
	ConnTimeout   time.Duration

	// Prompt reads a secret from the operator, e.g. a key passphrase.
	// Nil means the terminal prompt.
	Prompt func(label string) ([]byte, error)
}

// Gateway is an SSH client connection used to reach the IRC server.
type Gateway struct {
	config *SSHConfig
	logger *util.Logger

	mu     sync.RWMutex
	client *ssh.Client
	alive  bool
	done   chan struct{}
}

// NewGateway returns a gateway that connects lazily.
func NewGateway(cfg *SSHConfig, logger *util.Logger) *Gateway {
	if cfg.Port == 0 {
		cfg.Port = 22
	}
	if cfg.ConnTimeout == 0 {
		cfg.ConnTimeout = 30 * time.Second
	}
	if cfg.Prompt == nil {
		cfg.Prompt = TerminalPrompt
	}
	return &Gateway{config: cfg, logger: logger}
}

// Addr is the gateway's host:port.
func (g *Gateway) Addr() string {
	return util.FormatAddr(g.config.Host, g.config.Port)
}

// Connect dials the gateway and completes the SSH handshake.  It is a
// no-op while the gateway is alive.
func (g *Gateway) Connect(ctx context.Context) error {
	if g.IsAlive() {
		return nil
	}

	authMethods, err := BuildAuthMethods(g.config)
	if err != nil {
		return ggmerr.WrapSSH("auth", g.config.Host, g.config.Port, err)
	}
	hkCallback, err := hostKeyCallback(g.config)
	if err != nil {
		return ggmerr.WrapSSH("hostkey", g.config.Host, g.config.Port, err)
	}

	sshCfg := &ssh.ClientConfig{
		User:            g.config.User,
		Auth:            authMethods,
		HostKeyCallback: hkCallback,
		Timeout:         g.config.ConnTimeout,
	}

	addr := g.Addr()
	g.logger.Verbose("SSH: connecting to gateway %s as %s", addr, g.config.User)

	dialer := net.Dialer{Timeout: g.config.ConnTimeout}
	tcpConn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return ggmerr.Wrap("dial", addr, err)
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(tcpConn, addr, sshCfg)
	if err != nil {
		tcpConn.Close()
		return ggmerr.WrapSSH("handshake", g.config.Host, g.config.Port, err)
	}
	client := ssh.NewClient(sshConn, chans, reqs)
	done := make(chan struct{})

	g.mu.Lock()
	g.client = client
	g.alive = true
	g.done = done
	g.mu.Unlock()

	go g.monitor(client, done)
	go g.keepalive(client, done)

	g.logger.Verbose("SSH: gateway %s ready", addr)
	return nil
}

// Dial opens a channel to address through the gateway, connecting or
// reconnecting it first when needed.
func (g *Gateway) Dial(ctx context.Context, network, address string) (net.Conn, error) {
	if err := g.Connect(ctx); err != nil {
		return nil, err
	}

	g.mu.RLock()
	client := g.client
	g.mu.RUnlock()
	if client == nil {
		return nil, ggmerr.ErrNotConnected
	}

	g.logger.Debug("SSH: forwarding to %s", address)
	conn, err := client.DialContext(ctx, network, address)
	if err != nil {
		return nil, ggmerr.WrapSSH("channel", g.config.Host, g.config.Port, err)
	}
	return conn, nil
}

// Close shuts down the SSH connection.
func (g *Gateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.alive = false
	if g.client != nil {
		err := g.client.Close()
		g.client = nil
		return err
	}
	return nil
}

// IsAlive reports whether the SSH connection is up.
func (g *Gateway) IsAlive() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.alive
}

// monitor waits for the connection to end and marks the gateway dead.
func (g *Gateway) monitor(client *ssh.Client, done chan struct{}) {
	err := client.Wait()
	close(done)

	g.mu.Lock()
	if g.client == client {
		g.alive = false
		g.client = nil
	}
	g.mu.Unlock()

	if err != nil {
		g.logger.Warn("SSH: gateway connection closed: %v", err)
	} else {
		g.logger.Verbose("SSH: gateway connection closed")
	}
}

// keepalive probes the server so half-dead connections are noticed
// before the IRC server's ping timeout.
func (g *Gateway) keepalive(client *ssh.Client, done <-chan struct{}) {
	tick := time.NewTicker(keepaliveInterval)
	defer tick.Stop()

	for {
		select {
		case <-done:
			return
		case <-tick.C:
			if _, _, err := client.SendRequest("keepalive@openssh.com", true, nil); err != nil {
				g.logger.Warn("SSH: keepalive failed: %v", err)
				client.Close()
				return
			}
		}
	}
}
