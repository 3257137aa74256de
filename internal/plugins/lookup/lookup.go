// Package lookup answers reference questions: NANP area codes, foreign
// exchange rates, GeoIP locations and GeoNames city data.
package lookup

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"ggm/config"
	"ggm/internal/freshness"
	"ggm/internal/plugin"
	"ggm/internal/source"
	"ggm/util"
)

// ID is the registry id.
const ID = "lookup"

const (
	defaultForexLatest     = "https://openexchangerates.org/api/latest.json?app_id=%s"
	defaultForexCurrencies = "https://openexchangerates.org/api/currencies.json?app_id=%s"
	defaultForexUpdate     = 60 * time.Minute
	defaultGeoIPAPI        = "https://ipapi.co/%s/json/"
	defaultGeoIPCache      = 60 * time.Minute
	defaultCitiesTable     = "cities"
	defaultCitiesLimit     = 3
)

// Lookup implements ?areacode, ?ac, ?forex, ?geoip and ?city.
type Lookup struct {
	*plugin.Table

	forex       *freshness.Cache[*forexData]
	forexSource string

	geoip    *source.Client
	geoipURL string
	geoCache *gocache.Cache

	cities *citiesDB

	logger *util.Logger
}

// New builds the plugin from its section.
//
//	forex_app_id         openexchangerates.org app id
//	forex_update_mins    minutes the rates stay fresh (60)
//	geoip_api            lookup URL template with one %s for the address
//	geoip_cache_mins     minutes a GeoIP answer is reused (60)
//	cities_db            GeoNames SQLite database
//	cities_db_table      table name (cities)
//	cities_select_limit  rows per city (3)
func New(opts config.Options, deps plugin.Deps) (plugin.Plugin, error) {
	update := opts.Duration("forex_update_mins", time.Minute, defaultForexUpdate)
	if update <= 0 {
		return nil, fmt.Errorf("forex_update_mins must be positive")
	}
	geoTTL := opts.Duration("geoip_cache_mins", time.Minute, defaultGeoIPCache)
	if geoTTL <= 0 {
		return nil, fmt.Errorf("geoip_cache_mins must be positive")
	}
	cities, err := newCitiesDB(
		opts.String("cities_db", ""),
		opts.String("cities_db_table", defaultCitiesTable),
		opts.Int("cities_select_limit", defaultCitiesLimit),
	)
	if err != nil {
		return nil, err
	}

	appID := opts.String("forex_app_id", "")
	fx := &forexFetcher{
		client:        source.New("forex API", deps.HTTPClient, nil),
		latestURL:     fmt.Sprintf(opts.String("forex_latest_api", defaultForexLatest), appID),
		currenciesURL: fmt.Sprintf(opts.String("forex_currencies_api", defaultForexCurrencies), appID),
	}

	l := &Lookup{
		forex: freshness.New("forex", fx.fetch,
			freshness.WithTTL(update),
			freshness.WithTimeout(deps.FetchTimeout),
			freshness.WithClock(deps.Now),
			freshness.WithLogger(deps.Logger),
			freshness.WithMetrics(deps.Metrics),
		),
		forexSource: fx.client.Name(),
		geoip:       source.New("GeoIP API", deps.HTTPClient, nil),
		geoipURL:    opts.String("geoip_api", defaultGeoIPAPI),
		geoCache:    gocache.New(geoTTL, 2*geoTTL),
		cities:      cities,
		logger:      deps.Logger,
	}
	if appID == "" {
		deps.Logger.Warn("lookup: forex_app_id is not set; ?forex will fail")
	}

	l.Table = plugin.NewTable(
		plugin.Command{
			Name:  "areacode",
			Usage: "Gives city information for a space delimited list of area codes. Only contains NANP data.",
			Run:   l.areacode,
		},
		plugin.Command{
			Name:  "ac",
			Usage: "Alias for ?areacode",
			Run:   l.areacode,
		},
		plugin.Command{
			Name:    "city",
			Usage:   plugin.Synopsis(cityFlags(new(cityArgs)), "CITY...") + " | Use ?info city for more details.",
			Info:    cityInfo,
			Private: true,
			Run:     l.city,
		},
		plugin.Command{
			Name:    "forex",
			Usage:   plugin.Synopsis(forexFlags(new(forexArgs)), "FROM TO [FROM TO ...]"),
			Info:    forexInfo,
			Private: true,
			Run:     l.forexCmd,
		},
		plugin.Command{
			Name: "geoip",
			Usage: "Returns GeoIP information for a space delimited list of either hostnames or IP addresses. " +
				"See ?info geoip for more extensive info.",
			Info: "GeoIP data is obtained from " + l.geoip.Name() + " and is cached per address.",
			Run:  l.geoipCmd,
		},
	)
	return l, nil
}

// Name implements plugin.Plugin.
func (l *Lookup) Name() string { return ID }

// Close releases the cities database.
func (l *Lookup) Close() error {
	return l.cities.close()
}
