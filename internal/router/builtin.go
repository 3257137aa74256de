package router

import (
	"context"
	"strings"

	"ggm/internal/plugin"
)

const (
	defaultAbout = "ggm, a modular IRC command bot. Use ?help and ?info for additional information."
	helpText     = "?help [command] returns the command's syntax. Use ?commands to see all available."
	infoText     = "?info [command] returns detailed info about a command. Use ?commands to see all available."
)

// builtin answers ?about, ?commands, ?help and ?info.  Help and info
// requests naming a plugin command are forwarded to that plugin.
type builtin struct {
	*plugin.Table
	r     *Router
	about string
}

func newBuiltin(r *Router) *builtin {
	b := &builtin{r: r, about: defaultAbout}
	b.Table = plugin.NewTable(
		plugin.Command{
			Name:  "about",
			Usage: "?about describes the bot.",
			Run:   func(context.Context, string) plugin.Reply { return plugin.Say(b.about) },
		},
		plugin.Command{
			Name:  "commands",
			Usage: "?commands lists every available command.",
			Run:   b.commands,
		},
		plugin.Command{
			Name:  "help",
			Usage: helpText,
			Run:   b.help,
		},
		plugin.Command{
			Name:  "info",
			Usage: infoText,
			Run:   b.info,
		},
	)
	return b
}

func (b *builtin) Name() string { return "builtin" }

func (b *builtin) commands(context.Context, string) plugin.Reply {
	return plugin.Say(strings.Join(b.r.Commands(), ","))
}

func (b *builtin) help(_ context.Context, args string) plugin.Reply {
	if reg, ok := b.topicOwner(args); ok {
		if reply := reg.Plugin.Help(plugin.Marker + "help " + args); !reply.Empty() {
			return reply
		}
	}
	return plugin.Say(helpText)
}

func (b *builtin) info(_ context.Context, args string) plugin.Reply {
	if reg, ok := b.topicOwner(args); ok {
		if reply := reg.Plugin.Info(plugin.Marker + "info " + args); !reply.Empty() {
			return reply
		}
		return plugin.Say(plugin.NotAvailable)
	}
	return plugin.Say(infoText)
}

func (b *builtin) topicOwner(args string) (plugin.Registration, bool) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return plugin.Registration{}, false
	}
	return b.r.owner(fields[0])
}
