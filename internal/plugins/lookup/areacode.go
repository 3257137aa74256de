package lookup

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"ggm/internal/plugin"
)

type areaCode struct {
	State  string
	Cities []string
}

func (l *Lookup) areacode(_ context.Context, args string) plugin.Reply {
	var replies []string
	for _, tok := range strings.Fields(args) {
		code, err := strconv.Atoi(tok)
		if err != nil || code < 0 {
			continue
		}
		ac, ok := areaCodes[code]
		switch {
		case !ok:
			replies = append(replies, fmt.Sprintf("[%d]: Invalid NANP area code", code))
		case len(ac.Cities) == 0:
			replies = append(replies, fmt.Sprintf("[%d]: %s", code, ac.State))
		default:
			replies = append(replies, fmt.Sprintf("[%d]: %s: %s", code, ac.State, strings.Join(ac.Cities, ", ")))
		}
	}
	return plugin.Reply{Text: strings.Join(replies, " | "), Private: len(replies) > 3}
}
