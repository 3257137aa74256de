package bitcoinaverage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ggm/config"
	"ggm/internal/plugin"
)

const allDoc = `{
  "USD": {
    "bitstamp": {"volume_btc": 300, "rates": {"ask": 101, "bid": 99, "last": 100}},
    "btce":     {"volume_btc": 100, "rates": {"ask": 111, "bid": 109, "last": 110}},
    "kraken":   {"volume_btc": 0,   "rates": {"ask": 121, "bid": 119, "last": 120}}
  },
  "EUR": {
    "kraken": {"volume_btc": 10, "rates": {"ask": 91, "bid": 89, "last": 90}}
  },
  "timestamp": "Sat, 01 Nov 2014 12:00:00 -0000"
}`

const ignoredDoc = `{"mtgox": "no trades in 24h", "cryptsy": "volume too small"}`

type fixture struct {
	srv  *httptest.Server
	hits atomic.Int32
	fail atomic.Bool
	now  time.Time
	b    *BitcoinAverage
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{now: time.Unix(1_414_843_200, 0)}
	mux := http.NewServeMux()
	mux.HandleFunc("/exchanges/all", func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		if f.fail.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(allDoc))
	})
	mux.HandleFunc("/ignored", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(ignoredDoc))
	})
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)

	p, err := New(config.Options{
		"api":         f.srv.URL + "/exchanges/all",
		"api_ignored": f.srv.URL + "/ignored",
		"ttl":         60,
	}, plugin.Deps{Now: func() time.Time { return f.now }}.WithDefaults())
	require.NoError(t, err)
	f.b = p.(*BitcoinAverage)
	return f
}

func (f *fixture) run(line string) plugin.Reply {
	return f.b.ParseCommand(context.Background(), line)
}

func TestAvg(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		line string
		want plugin.Reply
	}{
		// (300*100 + 100*110 + 0*120) / 400
		{"?avg", plugin.Say("102.50")},
		{"?avg -t mean", plugin.Say("110.00")},
		{"?avg -r bid -t mean", plugin.Say("109.00")},
		{"?avg btce kraken -t mean", plugin.Say("115.00")},
		{"?avg -btce", plugin.Say("100.00")},
		{"?avg -BTCE -kraken -t mean", plugin.Say("100.00")},
		{"?avg bitstamp btce -btce", plugin.Say("100.00")},
		{"?avg -c eur", plugin.Say("90.00")},
		{"?avg --currency=EUR --rate ask", plugin.Say("91.00")},
		{"?avg -a usd,JPY", plugin.Say("USD is supported | JPY is not supported")},
		{"?avg -c JPY", plugin.Whisper("[Error]: argument -c/--currency: invalid choice: 'JPY'")},
		{"?avg -r high", plugin.Whisper("[Error]: argument -r/--rate: invalid choice: 'high' (choose from ask, bid, last)")},
		{"?avg -t median", plugin.Whisper("[Error]: argument -t/--type: invalid choice: 'median' (choose from weighted, mean)")},
		{"?avg mtgox", plugin.Whisper("[Error]: mtgox is not a valid exchange")},
		{"?avg -bitstamp -btce -kraken", plugin.Whisper("[Error]: no exchanges left to average")},
		{"?avg kraken", plugin.Whisper("[Error]: no trading volume reported by the selected exchanges")},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			require.Equal(t, tt.want, f.run(tt.line))
		})
	}
}

func TestAvg_BadFlag(t *testing.T) {
	f := newFixture(t)
	r := f.run("?avg --volume")
	require.True(t, r.Private)
	require.Contains(t, r.Text, "?avg [-a AVAILABLE] [-c CURRENCY] [-r RATE] [-t TYPE] [exchanges]")
}

// TestAvg_Freshness verifies data is fetched once per TTL and that a
// failed refresh is reported rather than served stale.
func TestAvg_Freshness(t *testing.T) {
	f := newFixture(t)

	f.run("?avg")
	f.run("?avg-exchanges")
	require.EqualValues(t, 1, f.hits.Load())

	f.now = f.now.Add(61 * time.Second)
	f.fail.Store(true)
	require.Equal(t, plugin.Whisper("Cannot reach bitcoin average API. Please contact bot maintainer."), f.run("?avg"))

	f.fail.Store(false)
	require.Equal(t, plugin.Say("102.50"), f.run("?avg"))
}

func TestAvgExchanges(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, plugin.Say("[USD]: bitstamp btce kraken"), f.run("?avg-exchanges"))
	require.Equal(t,
		plugin.Say("[EUR]: kraken\n[XYZ]: Invalid.\nUse ?avg -a CODE to check for supported currency codes"),
		f.run("?avg-exchanges eur xyz"))
}

func TestAvgIgnored(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, plugin.Say("[Ignored exchanges]: cryptsy b/c volume too small | mtgox b/c no trades in 24h"), f.run("?avg-ignored"))
	require.Equal(t,
		plugin.Whisper("cryptsy ignored because volume too small\nmtgox ignored because no trades in 24h"),
		f.b.Info("?info avg-ignored"))
}

func TestHelpAndInfo(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, plugin.Say("[Supported rates]: ask | bid | last"), f.run("?avg-rates"))
	require.Equal(t, plugin.Say("[Supported average types]: weighted | mean"), f.run("?avg-types"))
	require.Equal(t, plugin.Say(plugin.NotAvailable), f.b.Info("?info avg-types"))

	help := f.b.Help("?help avg")
	require.False(t, help.Private)
	require.Contains(t, help.Text, "currency = USD")

	info := f.b.Info("?info avg")
	require.True(t, info.Private)
	require.Contains(t, info.Text, "?avg -btce -bitstamp")
	require.EqualValues(t, 0, f.hits.Load(), "help and info do not fetch")
}
