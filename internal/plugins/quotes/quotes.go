// Package quotes serves jokes and fortunes, throttled so a channel
// cannot be flooded with them.
package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"ggm/config"
	"ggm/internal/metrics"
	"ggm/internal/plugin"
	"ggm/internal/source"
	"ggm/internal/throttle"
	"ggm/util"
)

// ID is the registry id.
const ID = "quotes"

const (
	defaultChuckNorrisAPI = "https://api.chucknorris.io/jokes/random"
	defaultMaxQuotes      = 5
	defaultTimeFrame      = 60 * time.Second
)

// Quotes implements ?chuck-norris, ?cnq and ?fortune.
type Quotes struct {
	*plugin.Table

	limiter    *throttle.Limiter
	chuck      *source.Client
	chuckURL   string
	fortune    []string
	runTimeout time.Duration
	logger     *util.Logger
	metrics    *metrics.Collector
}

// New builds the plugin from its section.
//
//	max_quotes        requests allowed per window (5)
//	time_frame        window in seconds (60)
//	fortune_off       include offensive fortunes (no)
//	fortune_cmd       fortune binary (fortune)
//	chuck_norris_api  joke endpoint
func New(opts config.Options, deps plugin.Deps) (plugin.Plugin, error) {
	maxQuotes := opts.Int("max_quotes", defaultMaxQuotes)
	if maxQuotes < 1 {
		return nil, fmt.Errorf("max_quotes must be at least 1")
	}
	window := opts.Duration("time_frame", time.Second, defaultTimeFrame)
	if window <= 0 {
		return nil, fmt.Errorf("time_frame must be positive")
	}

	fortune := []string{opts.String("fortune_cmd", "fortune")}
	if opts.Bool("fortune_off", false) {
		fortune = append(fortune, "-a")
	}
	fortune = append(fortune, "-s", "-n", "180")

	q := &Quotes{
		limiter:    throttle.New(maxQuotes, window, throttle.WithClock(deps.Now)),
		chuck:      source.New("Chuck Norris API", deps.HTTPClient, nil),
		chuckURL:   opts.String("chuck_norris_api", defaultChuckNorrisAPI),
		fortune:    fortune,
		runTimeout: deps.FetchTimeout,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
	}
	q.Table = plugin.NewTable(
		plugin.Command{Name: "chuck-norris", Usage: "Returns a random Chuck Norris joke", Run: q.throttled(q.chuckNorris)},
		plugin.Command{Name: "cnq", Usage: "Alias for ?chuck-norris", Run: q.throttled(q.chuckNorris)},
		plugin.Command{Name: "fortune", Usage: "Returns a random fortune from the *NIX command", Run: q.throttled(q.fortuneCmd)},
	)
	return q, nil
}

// Name implements plugin.Plugin.
func (q *Quotes) Name() string { return ID }

// throttled puts every quote command behind the shared limiter.
func (q *Quotes) throttled(run func(context.Context) plugin.Reply) func(context.Context, string) plugin.Reply {
	return func(ctx context.Context, _ string) plugin.Reply {
		if !q.limiter.Allow() {
			q.metrics.Throttled(ID)
			return plugin.Whisper(fmt.Sprintf(
				"To avoid spam, quotes cannot be requested > %d times in %d seconds.",
				q.limiter.Max(), int(q.limiter.Window().Seconds())))
		}
		return run(ctx)
	}
}

// joke accepts both the icndb layout {"value":{"joke":...}} and the
// chucknorris.io layout {"value":"..."}.
type joke struct {
	Value json.RawMessage `json:"value"`
}

func (j joke) text() string {
	var s string
	if json.Unmarshal(j.Value, &s) == nil {
		return s
	}
	var nested struct {
		Joke string `json:"joke"`
	}
	if json.Unmarshal(j.Value, &nested) == nil {
		return nested.Joke
	}
	return ""
}

func (q *Quotes) chuckNorris(ctx context.Context) plugin.Reply {
	var doc joke
	if err := q.chuck.GetJSON(ctx, q.chuckURL, &doc); err != nil {
		q.logger.Error("%v", err)
		return plugin.Whisper(source.Unavailable(q.chuck.Name()))
	}
	text := strings.TrimSpace(doc.text())
	if text == "" {
		q.logger.Error("Chuck Norris API: no joke in reply")
		return plugin.Whisper(source.Unavailable(q.chuck.Name()))
	}
	return plugin.Say(text)
}

func (q *Quotes) fortuneCmd(ctx context.Context) plugin.Reply {
	ctx, cancel := context.WithTimeout(ctx, q.runTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, q.fortune[0], q.fortune[1:]...).Output()
	if err != nil {
		q.logger.Error("fortune: %v", err)
		return plugin.Whisper(source.Unavailable("fortune"))
	}
	text := strings.ReplaceAll(strings.TrimRight(string(out), " \t\r\n"), "\t", "    ")
	if text == "" {
		return plugin.Whisper(source.Unavailable("fortune"))
	}
	return plugin.Say(text)
}
