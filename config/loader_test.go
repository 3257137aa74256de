package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	ggmerr "ggm/internal/errors"
)

const sampleConfig = `
main:
  server: irc.libera.chat
  port: 6697
  channels: [ggm, "#bots"]
  nickname: ggm
  username: ggm
  realname: Gilbert Grape's Mom
  password: hunter2
  line_rate: 0.5
  log: no
  logfile: ""
quotes:
  max_quotes: 5
  time_frame: 60
  fortune_off: yes
bitcoinaverage:
  ttl: 60.5
  currencies: [USD, EUR]
geo:
  plugin: lookup
  forex_app_id: abc123
`

func TestParse_Sample(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	m := cfg.Main
	require.Equal(t, "irc.libera.chat", m.Server)
	require.Equal(t, 6697, m.Port)
	require.True(t, m.TLS, "tls defaults to yes")
	require.Equal(t, []string{"ggm", "#bots"}, m.Channels)
	require.Equal(t, 0.5, m.LineRate)
	require.False(t, m.Log)
	require.Equal(t, DefaultFetchTimeout, m.FetchTimeout)
	require.Equal(t, DefaultQuitMessage, m.QuitMessage)

	require.Len(t, cfg.Plugins, 3)
	names := []string{cfg.Plugins[0].Name, cfg.Plugins[1].Name, cfg.Plugins[2].Name}
	require.Equal(t, []string{"quotes", "bitcoinaverage", "geo"}, names, "sections keep file order")

	q := cfg.Plugins[0].Options
	require.Equal(t, 5, q["max_quotes"])
	require.Equal(t, true, q["fortune_off"])
	require.Equal(t, 60.5, cfg.Plugins[1].Options["ttl"])
	require.Equal(t, []string{"USD", "EUR"}, cfg.Plugins[1].Options.Strings("currencies"))

	geo := cfg.Plugins[2]
	require.Equal(t, "lookup", geo.Plugin)
	require.False(t, geo.Options.Has("plugin"))
	require.Equal(t, "abc123", geo.Options.String("forex_app_id", ""))
}

// TestParse_UnknownMainKey verifies the loader fails fast on typos.
func TestParse_UnknownMainKey(t *testing.T) {
	doc := strings.Replace(sampleConfig, "  port: 6697", "  prot: 6697", 1)
	_, err := Parse([]byte(doc))
	var ce *ggmerr.ConfigError
	require.ErrorAs(t, err, &ce)
	require.Contains(t, ce.Message, "prot")
}

func TestParse_MissingRequired(t *testing.T) {
	doc := strings.Replace(sampleConfig, "  nickname: ggm\n", "", 1)
	_, err := Parse([]byte(doc))
	var ce *ggmerr.ConfigError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "main.nickname", ce.Field)
}

func TestParse_NestedPluginMapping(t *testing.T) {
	doc := sampleConfig + "urlutils:\n  nested:\n    a: b\n"
	_, err := Parse([]byte(doc))
	require.Error(t, err)
}

func TestParse_FetchTimeoutSeconds(t *testing.T) {
	doc := strings.Replace(sampleConfig, "  log: no", "  log: no\n  fetch_timeout: 3", 1)
	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, 3*time.Second, cfg.Main.FetchTimeout)
}

// TestParse_EnvOverride verifies GGM_MAIN_* beats the document.
func TestParse_EnvOverride(t *testing.T) {
	t.Setenv("GGM_MAIN_PASSWORD", "from-env")
	t.Setenv("GGM_MAIN_PORT", "6667")
	t.Setenv("GGM_MAIN_TLS", "no")

	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.Main.Password)
	require.Equal(t, 6667, cfg.Main.Port)
	require.False(t, cfg.Main.TLS)
}

func TestLoad_WithEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("GGM_TEST_APP_ID=zzz\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("GGM_TEST_APP_ID") })

	cfgPath := filepath.Join(dir, "ggm.yaml")
	doc := strings.Replace(sampleConfig, "abc123", "${GGM_TEST_APP_ID}", 1)
	require.NoError(t, os.WriteFile(cfgPath, []byte(doc), 0o600))

	require.NoError(t, LoadEnvFile(envPath))
	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	require.Equal(t, "zzz", cfg.Plugins[2].Options.String("forex_app_id", ""))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Error(t, LoadEnvFile(filepath.Join(t.TempDir(), "nope.env")))
	require.NoError(t, LoadEnvFile(""))
}
