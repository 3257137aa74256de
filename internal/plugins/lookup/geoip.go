package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"ggm/internal/plugin"
	"ggm/internal/source"
)

const geoipQuota = "[Error]: Maxed out GeoIP per hour limit"

type geoRecord struct {
	IP          string `json:"ip"`
	City        string `json:"city"`
	CountryCode string `json:"country_code"`
}

func (g geoRecord) String() string {
	var parts []string
	for _, kv := range [][2]string{{"ip", g.IP}, {"city", g.City}, {"country_code", g.CountryCode}} {
		if kv[1] != "" {
			parts = append(parts, fmt.Sprintf("[%s]: %s", kv[0], kv[1]))
		}
	}
	return strings.Join(parts, ", ")
}

func (l *Lookup) geoipCmd(ctx context.Context, args string) plugin.Reply {
	hosts := strings.Fields(args)
	if len(hosts) == 0 {
		return plugin.Whisper("Need a hostname or IP address to look up.")
	}

	replies := make([]string, 0, len(hosts))
	for _, h := range hosts {
		key := strings.ToLower(h)
		if v, ok := l.geoCache.Get(key); ok {
			replies = append(replies, v.(string))
			continue
		}

		body, err := l.geoip.Get(ctx, fmt.Sprintf(l.geoipURL, url.PathEscape(h)))
		var se *source.StatusError
		if errors.As(err, &se) && se.Code == http.StatusForbidden {
			l.logger.Error(geoipQuota)
			return plugin.Whisper(geoipQuota)
		}
		var rec geoRecord
		if err == nil {
			err = json.Unmarshal(body, &rec)
		}
		if err != nil {
			l.logger.Error("geoip %s: %v", h, err)
			return plugin.Whisper(source.Unavailable(l.geoip.Name()))
		}

		text := rec.String()
		l.geoCache.Set(key, text, gocache.DefaultExpiration)
		replies = append(replies, text)
	}
	return plugin.Reply{Text: strings.Join(replies, " | "), Private: len(replies) > 3}
}
