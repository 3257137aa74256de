// Package bitcoinaverage computes BTC price averages across exchanges
// from the bitcoinaverage.com exchange tickers.
package bitcoinaverage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"ggm/config"
	"ggm/internal/freshness"
	"ggm/internal/plugin"
	"ggm/internal/source"
)

// ID is the registry id.
const ID = "bitcoinaverage"

const (
	defaultAllURL     = "https://api.bitcoinaverage.com/exchanges/all"
	defaultIgnoredURL = "https://api.bitcoinaverage.com/ignored"
	defaultCurrency   = "USD"

	// privateOver is the reply length above which exchange lists are
	// whispered instead of flooding the channel.
	privateOver = 160
)

const avgInfo = "Averages are calculated using data provided by https://bitcoinaverage.com. " +
	"Data is pulled no more than once per refresh interval, so more up-to-date data must be obtained elsewhere.\n" +
	"Volume-weighted averages are the default; a plain mean is available with -t mean.\n" +
	"Exchanges can be given in one of two ways: a list of exchanges means use ONLY those, " +
	"a list of exchanges each prefixed with - means use all EXCEPT those.\n" +
	"For example ?avg btce bitstamp averages just btce and bitstamp, while ?avg -btce -bitstamp leaves them out.\n" +
	"Some exchanges are ignored by the data source; see ?avg-ignored and ?info avg-ignored."

const ratesInfo = "The bid price is the highest price a buyer is willing to pay. " +
	"The ask price is the lowest price a seller will accept. " +
	"The last is the last price a sale was made for.\n" +
	"Full order book data is not available, so be mindful of the inaccuracies introduced " +
	"by using any of these rates for pricing large quantities of BTC."

// BitcoinAverage implements ?avg and its companion commands.
type BitcoinAverage struct {
	*plugin.Table

	data     *freshness.Cache[*snapshot]
	source   string
	currency string
}

// New builds the plugin from its section.
//
//	ttl          seconds the ticker data stays fresh (60)
//	api          exchanges document URL
//	api_ignored  ignored-exchanges document URL
//	currency     default currency for ?avg (USD)
func New(opts config.Options, deps plugin.Deps) (plugin.Plugin, error) {
	ttl := opts.Duration("ttl", time.Second, freshness.DefaultTTL)
	if ttl <= 0 {
		return nil, fmt.Errorf("ttl must be positive")
	}
	client := source.New("bitcoin average API", deps.HTTPClient, nil)
	f := &fetcher{
		client:     client,
		allURL:     opts.String("api", defaultAllURL),
		ignoredURL: opts.String("api_ignored", defaultIgnoredURL),
	}

	b := &BitcoinAverage{
		data: freshness.New(ID, f.fetch,
			freshness.WithTTL(ttl),
			freshness.WithTimeout(deps.FetchTimeout),
			freshness.WithClock(deps.Now),
			freshness.WithLogger(deps.Logger),
			freshness.WithMetrics(deps.Metrics),
		),
		source:   client.Name(),
		currency: strings.ToUpper(opts.String("currency", defaultCurrency)),
	}

	b.Table = plugin.NewTable(
		plugin.Command{
			Name: "avg",
			Usage: plugin.Synopsis(b.avgFlags(new(avgArgs)), "[exchanges]") +
				" (Defaults: exchanges = all for the currency | currency = " + b.currency +
				" | rate = last | type = weighted) (Related commands: ?avg-exchanges, ?avg-ignored, ?avg-rates, ?avg-types)",
			Info:    avgInfo,
			Private: true,
			Run:     b.avg,
		},
		plugin.Command{
			Name: "avg-exchanges",
			Usage: "Exchanges are specific to a currency. Use ?avg-exchanges to view all available (defaults to " +
				b.currency + "). Can provide a space delimited list of currency codes.",
			Run: b.avgExchanges,
		},
		plugin.Command{
			Name:  "avg-ignored",
			Usage: "Gives a list of ignored exchanges. ?info avg-ignored provides the reasons they are ignored.",
			Run:   b.avgIgnored,
		},
		plugin.Command{
			Name:    "avg-rates",
			Usage:   "[Supported rates]: " + strings.Join(rates, " | "),
			Info:    ratesInfo,
			Private: true,
			Run: func(context.Context, string) plugin.Reply {
				return plugin.Say("[Supported rates]: " + strings.Join(rates, " | "))
			},
		},
		plugin.Command{
			Name:  "avg-types",
			Usage: "[Supported average types]: " + strings.Join(types, " | "),
			Run: func(context.Context, string) plugin.Reply {
				return plugin.Say("[Supported average types]: " + strings.Join(types, " | "))
			},
		},
	)
	return b, nil
}

// Name implements plugin.Plugin.
func (b *BitcoinAverage) Name() string { return ID }

// Info answers ?info, listing ignore reasons for avg-ignored.
func (b *BitcoinAverage) Info(line string) plugin.Reply {
	if _, name, ok := plugin.SplitTopic(line); ok && name == "avg-ignored" {
		snap, err := b.data.Get(context.Background())
		if err != nil {
			return plugin.Whisper(source.Unavailable(b.source))
		}
		names := sortedKeys(snap.ignored)
		if len(names) == 0 {
			return plugin.Whisper("No exchanges are ignored.")
		}
		lines := make([]string, len(names))
		for i, n := range names {
			lines[i] = fmt.Sprintf("%s ignored because %s", n, snap.ignored[n])
		}
		return plugin.Whisper(strings.Join(lines, "\n"))
	}
	return b.Table.Info(line)
}

// ParseCommand routes info requests through Info so avg-ignored details
// are live.
func (b *BitcoinAverage) ParseCommand(ctx context.Context, line string) plugin.Reply {
	if variant, _, ok := plugin.SplitTopic(line); ok && variant == "info" {
		return b.Info(line)
	}
	return b.Table.ParseCommand(ctx, line)
}

type avgArgs struct {
	available string
	currency  string
	rate      string
	kind      string
}

func (b *BitcoinAverage) avgFlags(a *avgArgs) *pflag.FlagSet {
	fs := plugin.NewFlagSet("avg")
	fs.StringVarP(&a.available, "available", "a", "", "currency codes to check")
	fs.StringVarP(&a.currency, "currency", "c", b.currency, "currency code")
	fs.StringVarP(&a.rate, "rate", "r", "last", "bid, ask or last")
	fs.StringVarP(&a.kind, "type", "t", "weighted", "weighted or mean")
	return fs
}

func (b *BitcoinAverage) avg(ctx context.Context, args string) plugin.Reply {
	var a avgArgs
	fs := b.avgFlags(&a)
	flags, include, exclude := splitExchanges(fs, strings.Fields(args))
	rest, err := plugin.ParseArgs(fs, strings.Join(flags, " "), "[exchanges]")
	if err != nil {
		return plugin.Whisper(err.Error())
	}
	for _, r := range rest {
		include = append(include, strings.ToLower(r))
	}

	snap, err := b.data.Get(ctx)
	if err != nil {
		return plugin.Whisper(source.Unavailable(b.source))
	}

	if fs.Changed("available") {
		return plugin.Say(available(snap, a.available))
	}

	currency := strings.ToUpper(a.currency)
	if _, ok := snap.markets[currency]; !ok {
		return plugin.Whisper(fmt.Sprintf("[Error]: argument -c/--currency: invalid choice: '%s'", a.currency))
	}
	if !contains(rates, a.rate) {
		return plugin.Whisper(fmt.Sprintf("[Error]: argument -r/--rate: invalid choice: '%s' (choose from %s)",
			a.rate, strings.Join(rates, ", ")))
	}
	if !contains(types, a.kind) {
		return plugin.Whisper(fmt.Sprintf("[Error]: argument -t/--type: invalid choice: '%s' (choose from %s)",
			a.kind, strings.Join(types, ", ")))
	}

	all := snap.exchanges(currency)
	for _, name := range append(append([]string(nil), include...), exclude...) {
		if !contains(all, name) {
			return plugin.Whisper(fmt.Sprintf("[Error]: %s is not a valid exchange", name))
		}
	}

	selected := selectExchanges(all, include, exclude)
	if len(selected) == 0 {
		return plugin.Whisper("[Error]: no exchanges left to average")
	}
	v, err := snap.average(currency, selected, a.rate, a.kind)
	if err != nil {
		return plugin.Whisper("[Error]: " + err.Error())
	}
	return plugin.Say(fmt.Sprintf("%.2f", v))
}

// splitExchanges separates flag tokens from exchange operands before
// flag parsing, since "-btce" names an exchange to leave out rather
// than a flag.
func splitExchanges(fs *pflag.FlagSet, tokens []string) (flags, include, exclude []string) {
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if f := lookupFlag(fs, tok); f != nil {
			flags = append(flags, tok)
			if !strings.Contains(tok, "=") && i+1 < len(tokens) {
				i++
				flags = append(flags, tokens[i])
			}
			continue
		}
		switch {
		case strings.HasPrefix(tok, "--"):
			flags = append(flags, tok)
		case strings.HasPrefix(tok, "-") && len(tok) > 1:
			exclude = append(exclude, strings.ToLower(tok[1:]))
		default:
			include = append(include, strings.ToLower(tok))
		}
	}
	return flags, include, exclude
}

func lookupFlag(fs *pflag.FlagSet, tok string) *pflag.Flag {
	switch {
	case strings.HasPrefix(tok, "--"):
		name, _, _ := strings.Cut(tok[2:], "=")
		return fs.Lookup(name)
	case len(tok) == 2 && tok[0] == '-':
		return fs.ShorthandLookup(tok[1:])
	}
	return nil
}

// selectExchanges applies the inclusion and exclusion lists.  With no
// inclusions every exchange not excluded is used.
func selectExchanges(all, include, exclude []string) []string {
	drop := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		drop[e] = true
	}
	base := all
	if len(include) > 0 {
		base = include
	}
	seen := make(map[string]bool, len(base))
	var out []string
	for _, e := range base {
		if drop[e] || seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}

func available(snap *snapshot, codes string) string {
	fields := strings.FieldsFunc(codes, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 0 {
		return "[Error]: Need a currency code to check."
	}
	parts := make([]string, len(fields))
	for i, c := range fields {
		c = strings.ToUpper(c)
		if _, ok := snap.markets[c]; ok {
			parts[i] = c + " is supported"
		} else {
			parts[i] = c + " is not supported"
		}
	}
	return strings.Join(parts, " | ")
}

func (b *BitcoinAverage) avgExchanges(ctx context.Context, args string) plugin.Reply {
	snap, err := b.data.Get(ctx)
	if err != nil {
		return plugin.Whisper(source.Unavailable(b.source))
	}
	codes := strings.Fields(args)
	if len(codes) == 0 {
		codes = []string{b.currency}
	}

	var lines []string
	invalid := false
	for _, c := range codes {
		c = strings.ToUpper(c)
		if _, ok := snap.markets[c]; ok {
			lines = append(lines, fmt.Sprintf("[%s]: %s", c, strings.Join(snap.exchanges(c), " ")))
		} else {
			lines = append(lines, fmt.Sprintf("[%s]: Invalid.", c))
			invalid = true
		}
	}
	if invalid {
		lines = append(lines, "Use ?avg -a CODE to check for supported currency codes")
	}
	text := strings.Join(lines, "\n")
	return plugin.Reply{Text: text, Private: len(text) > privateOver}
}

func (b *BitcoinAverage) avgIgnored(ctx context.Context, _ string) plugin.Reply {
	snap, err := b.data.Get(ctx)
	if err != nil {
		return plugin.Whisper(source.Unavailable(b.source))
	}
	names := sortedKeys(snap.ignored)
	if len(names) == 0 {
		return plugin.Say("[Ignored exchanges]: None")
	}
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = fmt.Sprintf("%s b/c %s", n, snap.ignored[n])
	}
	return plugin.Say("[Ignored exchanges]: " + strings.Join(parts, " | "))
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
