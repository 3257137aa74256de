// Package wire carries IRC lines between the supervisor and the server:
// message constructors, a rate-paced line connection and reply
// splitting.  Parsing and encoding are delegated to gopkg.in/irc.v4.
package wire

import (
	"encoding/base64"
	"strings"

	"gopkg.in/irc.v4"
)

// Numerics and commands the bot reacts to.
const (
	RplWelcome        = "001"
	ErrUnknownCommand = "421"
	ErrNicknameInUse  = "433"
	RplLoggedIn       = "900"
	RplSaslSuccess    = "903"
	ErrSaslFail       = "904"
	ErrSaslTooLong    = "905"
	ErrSaslAborted    = "906"
)

// saslChunk is the maximum AUTHENTICATE argument length.
const saslChunk = 400

func msg(command string, params ...string) *irc.Message {
	return &irc.Message{Command: command, Params: params}
}

func CapReq(capability string) *irc.Message { return msg("CAP", "REQ", capability) }
func CapEnd() *irc.Message                  { return msg("CAP", "END") }
func Nick(nick string) *irc.Message         { return msg("NICK", nick) }
func Join(channel string) *irc.Message      { return msg("JOIN", channel) }
func Pong(token string) *irc.Message        { return msg("PONG", token) }
func Ping(token string) *irc.Message        { return msg("PING", token) }
func Quit(reason string) *irc.Message       { return msg("QUIT", reason) }

// User builds the USER registration line.
func User(username, realname string) *irc.Message {
	return msg("USER", username, "0", "*", realname)
}

// Privmsg sends text to a nick or channel.
func Privmsg(target, text string) *irc.Message {
	return msg("PRIVMSG", target, text)
}

// Authenticate sends one AUTHENTICATE argument.
func Authenticate(arg string) *irc.Message { return msg("AUTHENTICATE", arg) }

// PlainCredentials encodes a SASL PLAIN payload with an empty
// authorization identity and splits it into AUTHENTICATE lines.  A
// payload that is an exact multiple of the chunk size is terminated
// with "AUTHENTICATE +".
func PlainCredentials(nick, password string) []*irc.Message {
	payload := base64.StdEncoding.EncodeToString([]byte("\x00" + nick + "\x00" + password))
	var out []*irc.Message
	for len(payload) >= saslChunk {
		out = append(out, Authenticate(payload[:saslChunk]))
		payload = payload[saslChunk:]
	}
	if payload == "" {
		payload = "+"
	}
	return append(out, Authenticate(payload))
}

// Trailing returns the last parameter, or "".
func Trailing(m *irc.Message) string {
	if len(m.Params) == 0 {
		return ""
	}
	return m.Params[len(m.Params)-1]
}

// SenderNick returns the nick part of the message prefix.
func SenderNick(m *irc.Message) string {
	if m.Prefix == nil {
		return ""
	}
	return m.Prefix.Name
}

// SenderMask returns the full nick!user@host prefix.
func SenderMask(m *irc.Message) string {
	if m.Prefix == nil {
		return ""
	}
	return m.Prefix.String()
}

// IsChannel reports whether target names a channel rather than a nick.
func IsChannel(target string) bool {
	return target != "" && strings.ContainsRune("#&+!", rune(target[0]))
}

// NormalizeChannel prefixes '#' to names lacking a channel sigil.
func NormalizeChannel(name string) string {
	name = strings.TrimSpace(name)
	if IsChannel(name) {
		return name
	}
	return "#" + name
}
