package config

import "time"

// ── Default values ───────────────────────────────────────────────────
//
// Defaults are registered with viper by the loader and reused by the
// CLI and the plugins, so they all live here.

const (
	// DefaultPort is the IRC-over-TLS port.
	DefaultPort = 6697

	// DefaultSSHPort is the standard SSH port for the optional gateway.
	DefaultSSHPort = 22

	// DefaultLineRate is the pause, in seconds, between outbound lines.
	DefaultLineRate = 1.0

	// DefaultFetchTimeout bounds every external data-source request.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultConnTimeout is the TCP/TLS/SSH connection timeout.
	DefaultConnTimeout = 30 * time.Second

	// DefaultFreshnessTTL is how long cached source data stays fresh.
	DefaultFreshnessTTL = 60 * time.Second

	// DefaultQuitMessage is sent with QUIT on shutdown.
	DefaultQuitMessage = "Leaving"

	// DefaultVerbosity is normal logging.
	DefaultVerbosity = 1

	// DefaultMaxReconnectBackoff caps the delay between reconnection
	// attempts.
	DefaultMaxReconnectBackoff = 60 * time.Second

	// EnvPrefix prefixes environment overrides, e.g. GGM_MAIN_PASSWORD.
	EnvPrefix = "GGM"
)
