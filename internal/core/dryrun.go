package core

import (
	"context"
	"fmt"
	"io"
	"strings"

	"ggm/config"
	"ggm/internal/router"
	"ggm/internal/wire"
)

// DryRunMode prints the resolved connection and command plan and exits
// without touching the network.
type DryRunMode struct {
	Main   config.Main
	Router *router.Router
	Out    io.Writer
}

// Run writes the plan.
func (d *DryRunMode) Run(_ context.Context) error {
	defer d.Router.Close()
	m := d.Main
	w := &planWriter{w: d.Out}

	transport := "tls"
	switch {
	case !m.TLS:
		transport = "plain tcp"
	case m.TLSInsecure:
		transport = "tls (certificate not verified)"
	}
	w.line("server", "%s (%s)", m.Addr(), transport)
	if m.Gateway != "" {
		w.line("gateway", "ssh %s", m.Gateway)
	}
	w.line("nickname", "%s", m.Nickname)
	w.line("username", "%s", m.Username)
	w.line("realname", "%s", m.Realname)

	channels := make([]string, len(m.Channels))
	for i, ch := range m.Channels {
		channels[i] = wire.NormalizeChannel(ch)
	}
	w.line("channels", "%s", strings.Join(channels, " "))
	w.line("line rate", "%v", m.LineInterval())

	for _, reg := range d.Router.Registrations() {
		w.line("plugin", "%s: %s", reg.Name, strings.Join(reg.Commands, " "))
	}
	w.line("commands", "%s", strings.Join(d.Router.Commands(), ","))
	return w.err
}

// planWriter keeps the first write error.
type planWriter struct {
	w   io.Writer
	err error
}

func (p *planWriter) line(key, format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%-10s %s\n", key+":", fmt.Sprintf(format, args...))
}
