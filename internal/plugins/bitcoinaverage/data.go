package bitcoinaverage

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"ggm/internal/source"
)

// Rates and average types accepted by ?avg.
var (
	rates = []string{"ask", "bid", "last"}
	types = []string{"weighted", "mean"}
)

// market is one exchange's ticker for one currency.
type market struct {
	VolumeBTC float64            `json:"volume_btc"`
	Rates     map[string]float64 `json:"rates"`
}

// snapshot is one fetch of both documents.
type snapshot struct {
	// markets maps currency code to exchange name to ticker.
	markets map[string]map[string]market
	// ignored maps exchange name to the reason it is left out.
	ignored map[string]string
}

// fetcher pulls the exchanges document and the ignored list.
type fetcher struct {
	client     *source.Client
	allURL     string
	ignoredURL string
}

func (f *fetcher) fetch(ctx context.Context) (*snapshot, error) {
	var raw map[string]json.RawMessage
	if err := f.client.GetJSON(ctx, f.allURL, &raw); err != nil {
		return nil, err
	}
	var ignored map[string]string
	if err := f.client.GetJSON(ctx, f.ignoredURL, &ignored); err != nil {
		return nil, err
	}

	snap := &snapshot{markets: make(map[string]map[string]market), ignored: ignored}
	for currency, body := range raw {
		if currency == "timestamp" {
			continue
		}
		var exchanges map[string]json.RawMessage
		if json.Unmarshal(body, &exchanges) != nil {
			continue
		}
		ms := make(map[string]market, len(exchanges))
		for name, eb := range exchanges {
			var m market
			if json.Unmarshal(eb, &m) != nil || m.Rates == nil {
				continue
			}
			ms[name] = m
		}
		if len(ms) > 0 {
			snap.markets[currency] = ms
		}
	}
	if len(snap.markets) == 0 {
		return nil, fmt.Errorf("%s: no currencies in %s", f.client.Name(), f.allURL)
	}
	return snap, nil
}

// exchanges returns the sorted exchange names quoted in currency.
func (s *snapshot) exchanges(currency string) []string {
	names := make([]string, 0, len(s.markets[currency]))
	for name := range s.markets[currency] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// average computes the rate over the named markets, either weighted by
// BTC volume or as a plain mean, rounded to cents.
func (s *snapshot) average(currency string, names []string, rate, kind string) (float64, error) {
	var prices, volumes []float64
	for _, name := range names {
		m := s.markets[currency][name]
		price, ok := m.Rates[rate]
		if !ok {
			continue
		}
		prices = append(prices, price)
		volumes = append(volumes, m.VolumeBTC)
	}
	if len(prices) == 0 {
		return 0, fmt.Errorf("no %s rate reported by the selected exchanges", rate)
	}

	var avg float64
	switch kind {
	case "mean":
		for _, p := range prices {
			avg += p
		}
		avg /= float64(len(prices))
	default:
		var total float64
		for _, v := range volumes {
			total += v
		}
		if total <= 0 {
			return 0, fmt.Errorf("no trading volume reported by the selected exchanges")
		}
		for i, p := range prices {
			avg += volumes[i] / total * p
		}
	}
	return math.Round(avg*100) / 100, nil
}
