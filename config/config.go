// Package config defines the runtime configuration for ggm: one required
// main section describing the server connection and identity, followed
// by ordered plugin sections whose options are typed by shape.
package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	ggmerr "ggm/internal/errors"
	"ggm/util"
)

// Config is the whole configuration document.
type Config struct {
	Main    Main
	Plugins []PluginSection // in file order, which is registration order
}

// Main holds the required top-level section.
type Main struct {
	// ── Server ───────────────────────────────────────────────────────
	Server      string `mapstructure:"server"`
	Port        int    `mapstructure:"port"`
	TLS         bool   `mapstructure:"tls"`
	TLSInsecure bool   `mapstructure:"tls_insecure"`

	// ── SSH gateway ──────────────────────────────────────────────────
	Gateway       string `mapstructure:"gateway"` // [user@]host[:port], empty = direct
	GatewayKey    string `mapstructure:"gateway_key"`
	StrictHostKey bool   `mapstructure:"strict_hostkey"`
	KnownHosts    string `mapstructure:"known_hosts"`

	// ── Identity ─────────────────────────────────────────────────────
	Channels []string `mapstructure:"channels"`
	Nickname string   `mapstructure:"nickname"`
	Username string   `mapstructure:"username"`
	Realname string   `mapstructure:"realname"`
	Password string   `mapstructure:"password"`

	// ── Behaviour ────────────────────────────────────────────────────
	LineRate     float64       `mapstructure:"line_rate"` // seconds between outbound lines
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	QuitMessage  string        `mapstructure:"quit_message"`

	// ── Logging / observability ──────────────────────────────────────
	Log             bool   `mapstructure:"log"`
	LogFile         string `mapstructure:"logfile"`
	Verbose         int    `mapstructure:"verbose"`
	MetricsAddr     string `mapstructure:"metrics_addr"`
	TracingEndpoint string `mapstructure:"tracing_endpoint"`

	// ── Privileges ───────────────────────────────────────────────────
	DropUser  string `mapstructure:"drop_user"`
	DropGroup string `mapstructure:"drop_group"`
}

// PluginSection is one non-main section of the document.
type PluginSection struct {
	Name    string  // section key
	Plugin  string  // registry id; the "plugin" option, else Name
	Options Options // remaining options, typed by shape
}

// Addr returns the IRC server address.
func (m *Main) Addr() string {
	return util.FormatAddr(m.Server, m.Port)
}

// LineInterval converts LineRate into the pause between outbound lines.
func (m *Main) LineInterval() time.Duration {
	return time.Duration(m.LineRate * float64(time.Second))
}

// ── Gateway-spec parser ──────────────────────────────────────────────

var gatewayRe = regexp.MustCompile(`^(?:([^@]+)@)?([^:]+)(?::(\d+))?$`)

// ParseGatewaySpec extracts user, host and port from a string such as
// "bot@bastion.example.com:2222".  Port defaults to 22.
func ParseGatewaySpec(spec string) (user, host string, port int, err error) {
	m := gatewayRe.FindStringSubmatch(spec)
	if m == nil {
		return "", "", 0, fmt.Errorf("invalid gateway %q: expected [user@]host[:port]", spec)
	}
	user = m[1]
	host = m[2]
	port = DefaultSSHPort
	if m[3] != "" {
		port, err = strconv.Atoi(m[3])
		if err != nil || port < 1 || port > 65535 {
			return "", "", 0, fmt.Errorf("invalid gateway port %q", m[3])
		}
	}
	return user, host, port, nil
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is complete and consistent.
// The first problem found is returned as a *errors.ConfigError.
func (c *Config) Validate() error {
	m := &c.Main

	required := []struct{ key, val string }{
		{"server", m.Server},
		{"nickname", m.Nickname},
		{"username", m.Username},
		{"realname", m.Realname},
		{"password", m.Password},
	}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			return &ggmerr.ConfigError{Field: "main." + r.key, Message: "required"}
		}
	}
	if strings.ContainsAny(m.Nickname, " ,*?!@") {
		return &ggmerr.ConfigError{Field: "main.nickname", Value: m.Nickname, Message: "contains characters not allowed in a nickname"}
	}
	if m.Port < 1 || m.Port > 65535 {
		return &ggmerr.ConfigError{
			Field: "main.port", Value: m.Port, Message: "out of range 1-65535",
			Hint: "IRC over TLS is usually 6697",
		}
	}
	if len(m.Channels) == 0 {
		return &ggmerr.ConfigError{Field: "main.channels", Message: "at least one channel is required"}
	}
	for _, ch := range m.Channels {
		if strings.TrimSpace(ch) == "" || strings.ContainsAny(ch, " ,\a") {
			return &ggmerr.ConfigError{Field: "main.channels", Value: ch, Message: "invalid channel name"}
		}
	}
	if m.LineRate < 0 {
		return &ggmerr.ConfigError{Field: "main.line_rate", Value: m.LineRate, Message: "must not be negative"}
	}
	if m.FetchTimeout <= 0 {
		return &ggmerr.ConfigError{Field: "main.fetch_timeout", Value: m.FetchTimeout, Message: "must be positive"}
	}
	if m.Log && m.LogFile == "" {
		return &ggmerr.ConfigError{Field: "main.logfile", Message: "required when log is yes"}
	}
	if (m.DropUser == "") != (m.DropGroup == "") {
		return &ggmerr.ConfigError{
			Field: "main.drop_user", Value: m.DropUser, Message: "drop_user and drop_group must be set together",
		}
	}
	if m.Gateway != "" {
		if _, _, _, err := ParseGatewaySpec(m.Gateway); err != nil {
			return &ggmerr.ConfigError{Field: "main.gateway", Value: m.Gateway, Message: err.Error()}
		}
	}
	if m.GatewayKey != "" && m.Gateway == "" {
		return &ggmerr.ConfigError{Field: "main.gateway_key", Message: "set without main.gateway"}
	}

	seen := make(map[string]bool, len(c.Plugins))
	for _, p := range c.Plugins {
		if p.Plugin == "" {
			return &ggmerr.ConfigError{Field: p.Name + ".plugin", Message: "empty plugin id"}
		}
		if seen[p.Name] {
			return &ggmerr.ConfigError{Field: p.Name, Message: "duplicate section"}
		}
		seen[p.Name] = true
	}
	return nil
}
