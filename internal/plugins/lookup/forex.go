package lookup

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"ggm/internal/plugin"
	"ggm/internal/source"
)

const (
	minPairs = 1
	maxPairs = 5
)

const forexInfo = "Forex data is obtained from openexchangerates.org and refreshed at most once per update interval, " +
	"so finer granularity must be sought elsewhere.\n" +
	"?forex takes a space delimited list of ISO currency codes in pairs and returns the rate of the first code " +
	"of each pair in terms of the second, e.g. ?forex USD EUR.\n" +
	"To test whether a currency code is supported use -a; to get the long name of a code use -n."

// forexData is one fetch of the rates and currency names.
type forexData struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
	names map[string]string
}

type forexFetcher struct {
	client        *source.Client
	latestURL     string
	currenciesURL string
}

func (f *forexFetcher) fetch(ctx context.Context) (*forexData, error) {
	var d forexData
	if err := f.client.GetJSON(ctx, f.latestURL, &d); err != nil {
		return nil, err
	}
	if err := f.client.GetJSON(ctx, f.currenciesURL, &d.names); err != nil {
		return nil, err
	}
	if d.Base == "" || len(d.Rates) == 0 {
		return nil, fmt.Errorf("%s: no rates in reply", f.client.Name())
	}
	d.Rates[d.Base] = 1
	return &d, nil
}

func (d *forexData) supported(code string) bool {
	_, ok := d.names[code]
	return ok
}

func (d *forexData) longName(code string) string {
	if n, ok := d.names[code]; ok {
		return n
	}
	return code
}

// rate converts one unit of from into to via the base currency.
func (d *forexData) rate(from, to string) (float64, bool) {
	f, okf := d.Rates[from]
	t, okt := d.Rates[to]
	if !okf || !okt || f == 0 {
		return 0, false
	}
	return math.Round(t/f*100) / 100, true
}

type forexArgs struct {
	available bool
	longName  bool
}

func forexFlags(a *forexArgs) *pflag.FlagSet {
	fs := plugin.NewFlagSet("forex")
	fs.BoolVarP(&a.available, "available", "a", false, "check whether codes are supported")
	fs.BoolVarP(&a.longName, "long-name", "n", false, "long names of codes")
	return fs
}

func (l *Lookup) forexCmd(ctx context.Context, args string) plugin.Reply {
	var a forexArgs
	fs := forexFlags(&a)
	codes, err := plugin.ParseArgs(fs, args, "FROM TO [FROM TO ...]")
	if err != nil {
		return plugin.Whisper(err.Error())
	}
	for i := range codes {
		codes[i] = strings.ToUpper(codes[i])
	}

	if !a.available && !a.longName {
		if len(codes)%2 != 0 {
			return plugin.Whisper("Must supply an even number of currencies to get rates of, " +
				"as the rate is of one currency relative to another")
		}
		if n := len(codes) / 2; n < minPairs || n > maxPairs {
			return plugin.Whisper(fmt.Sprintf("Can only specify between %d and %d pairs, inclusive, "+
				"of currency codes. Use ?help forex for full usage.", minPairs, maxPairs))
		}
	} else if len(codes) == 0 {
		return plugin.Whisper("Need a currency code to check.")
	}

	d, err := l.forex.Get(ctx)
	if err != nil {
		return plugin.Whisper(source.Unavailable(l.forexSource))
	}

	var replies []string
	switch {
	case a.available:
		for _, c := range codes {
			if d.supported(c) {
				replies = append(replies, c+" is supported")
			} else {
				replies = append(replies, c+" is NOT supported")
			}
		}
	case a.longName:
		for _, c := range codes {
			if d.supported(c) {
				replies = append(replies, fmt.Sprintf("[%s]: %s", c, d.longName(c)))
			} else {
				replies = append(replies, fmt.Sprintf("[%s]: Invalid currency code", c))
			}
		}
	default:
		for i := 0; i < len(codes); i += 2 {
			replies = append(replies, pairReply(d, codes[i], codes[i+1]))
		}
	}
	return plugin.Say(strings.Join(replies, " | "))
}

func pairReply(d *forexData, from, to string) string {
	var bad []string
	for _, c := range []string{from, to} {
		if !d.supported(c) {
			bad = append(bad, fmt.Sprintf("[%s]: Invalid currency code", c))
		}
	}
	if len(bad) > 0 {
		return strings.Join(bad, " ")
	}
	r, ok := d.rate(from, to)
	if !ok {
		return fmt.Sprintf("[%s %s]: No rate available", from, to)
	}
	return fmt.Sprintf("1 %s equals %s %s", d.longName(from), strconv.FormatFloat(r, 'f', -1, 64), d.longName(to))
}
