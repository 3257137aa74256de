// Package auth drives IRCv3 capability negotiation and SASL PLAIN
// authentication for one connection.
//
// The Machine is a pure state machine: it consumes server messages and
// returns the lines to send, leaving all I/O to the caller.  It is not
// safe for concurrent use; the session loop owns it.
package auth

import (
	"strings"

	"gopkg.in/irc.v4"

	ggmerr "ggm/internal/errors"
	"ggm/internal/wire"
)

// State is the authentication progress of a connection.
type State int

const (
	Disconnected State = iota
	CapRequested
	Authenticating
	Authenticated
	Failed
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case CapRequested:
		return "cap-requested"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event reports a terminal transition to the session.
type Event int

const (
	EventNone Event = iota
	EventAuthenticated
	EventFailed
)

// Result is what one input produced.
type Result struct {
	Send  []*irc.Message
	Event Event
	Err   error // set with EventFailed
}

const capability = "sasl"

// Machine negotiates the sasl capability and authenticates once.
type Machine struct {
	nick     string
	password string
	state    State
	sent     bool // credential already sent
	quit     string
}

// New returns a Machine for the given account.  quitReason is used for
// the QUIT sent on failure.
func New(nick, password, quitReason string) *Machine {
	return &Machine{nick: nick, password: password, quit: quitReason}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Start requests the sasl capability.  It only acts in Disconnected.
func (m *Machine) Start() Result {
	if m.state != Disconnected {
		return Result{}
	}
	m.state = CapRequested
	return Result{Send: []*irc.Message{wire.CapReq(capability)}}
}

// Handle feeds one server message to the machine.  Messages that are
// irrelevant to the current state produce an empty Result.
func (m *Machine) Handle(msg *irc.Message) Result {
	switch m.state {
	case CapRequested:
		if msg.Command == "CAP" && len(msg.Params) >= 2 {
			return m.handleCap(msg)
		}
		// A server without IRCv3 support rejects CAP outright.
		if msg.Command == wire.ErrUnknownCommand && len(msg.Params) >= 2 && strings.EqualFold(msg.Params[1], "CAP") {
			return m.fail(ggmerr.Protocol("CAP", "server does not support capability negotiation", ggmerr.ErrCapRejected))
		}
	case Authenticating:
		switch msg.Command {
		case "AUTHENTICATE":
			// The credential waits for the server's empty challenge.
			if wire.Trailing(msg) == "+" && !m.sent {
				m.sent = true
				return Result{Send: wire.PlainCredentials(m.nick, m.password)}
			}
		case wire.RplSaslSuccess:
			m.state = Authenticated
			return Result{Send: []*irc.Message{wire.CapEnd()}, Event: EventAuthenticated}
		case wire.ErrSaslFail, wire.ErrSaslTooLong:
			return m.fail(ggmerr.Protocol(msg.Command, wire.Trailing(msg), ggmerr.ErrAuthFailed))
		}
	}
	return Result{}
}

func (m *Machine) handleCap(msg *irc.Message) Result {
	switch strings.ToUpper(msg.Params[1]) {
	case "ACK":
		acked := strings.Fields(wire.Trailing(msg))
		if len(msg.Params) < 3 || len(acked) != 1 || strings.ToLower(acked[0]) != capability {
			return m.fail(ggmerr.Protocol("CAP", "acknowledged "+wire.Trailing(msg), ggmerr.ErrCapRejected))
		}
		m.state = Authenticating
		return Result{Send: []*irc.Message{wire.Authenticate("PLAIN")}}
	case "NAK":
		return m.fail(ggmerr.Protocol("CAP", "server refused "+wire.Trailing(msg), ggmerr.ErrCapRejected))
	}
	return Result{}
}

func (m *Machine) fail(err error) Result {
	m.state = Failed
	return Result{Send: []*irc.Message{wire.Quit(m.quit)}, Event: EventFailed, Err: err}
}
