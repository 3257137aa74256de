package session

import (
	"gopkg.in/irc.v4"

	"ggm/internal/wire"
)

// InboundLine is one PRIVMSG as seen by the handlers.
type InboundLine struct {
	Nick   string // sender nickname
	Mask   string // nick!user@host
	Target string // channel, or the bot's nick for private messages
	Text   string
}

// ParseInbound extracts an InboundLine from a PRIVMSG.
func ParseInbound(m *irc.Message) (InboundLine, bool) {
	if m.Command != "PRIVMSG" || len(m.Params) < 2 || m.Prefix == nil {
		return InboundLine{}, false
	}
	return InboundLine{
		Nick:   wire.SenderNick(m),
		Mask:   wire.SenderMask(m),
		Target: m.Params[0],
		Text:   wire.Trailing(m),
	}, true
}

// Private reports whether the line was sent to the bot directly.
func (l InboundLine) Private() bool { return !wire.IsChannel(l.Target) }

// ReplyTarget is where an answer goes: the sender for private replies
// and private messages, else the channel.
func (l InboundLine) ReplyTarget(private bool) string {
	if private || l.Private() {
		return l.Nick
	}
	return l.Target
}
