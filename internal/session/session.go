// Package session runs one IRC connection from registration to
// disconnect.  A Session owns the wire connection, the authentication
// machine and the channel join sequence, and hands every chat line to a
// Handler.  Reconnecting is the caller's job.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/irc.v4"

	"ggm/internal/auth"
	ggmerr "ggm/internal/errors"
	"ggm/internal/metrics"
	"ggm/internal/plugin"
	"ggm/internal/telemetry"
	"ggm/internal/wire"
	"ggm/util"
)

// DefaultIdleTimeout is how long the connection may stay silent before
// the bot sends a PING.  A second silent period ends the session.
const DefaultIdleTimeout = 4 * time.Minute

// Handler answers chat lines.  *router.Router satisfies it.
type Handler interface {
	Route(ctx context.Context, text string) (plugin.Reply, bool)
}

// Config is the identity and membership of the bot on the server.
type Config struct {
	Nick        string
	Username    string
	Realname    string
	Password    string
	Channels    []string
	QuitMessage string
	IdleTimeout time.Duration
}

// Session is the state of one connection.  It is driven by a single
// goroutine inside Run.
type Session struct {
	ID     string
	conn   *wire.Conn
	cfg    Config
	nick   string
	auth   *auth.Machine
	router Handler
	logger *util.Logger
	stats  *metrics.Collector

	authenticated bool
	welcomed      bool
	joined        bool
	awaitingPong  bool
}

// New binds a session to an established connection.
func New(conn *wire.Conn, cfg Config, router Handler, logger *util.Logger, stats *metrics.Collector) *Session {
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = DefaultIdleTimeout
	}
	id := uuid.NewString()
	return &Session{
		ID:     id,
		conn:   conn,
		cfg:    cfg,
		nick:   cfg.Nick,
		auth:   auth.New(cfg.Nick, cfg.Password, cfg.QuitMessage),
		router: router,
		logger: logger.With("session", id[:8]),
		stats:  stats,
	}
}

// Nick is the nickname currently held on the server.
func (s *Session) Nick() string { return s.nick }

// State is the authentication state.
func (s *Session) State() auth.State { return s.auth.State() }

// Registered reports whether the session got as far as joining its
// channels.
func (s *Session) Registered() bool { return s.joined }

// Run registers with the server and processes messages until the
// connection ends.  It returns nil after ctx is cancelled (having sent
// QUIT), a fatal error when authentication fails, and an error wrapping
// ErrConnectionLost otherwise.
func (s *Session) Run(ctx context.Context) error {
	ctx = telemetry.WithSession(ctx, s.ID)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info("Shutting down: %s", s.cfg.QuitMessage)
			_ = s.conn.WriteUrgent(wire.Quit(s.cfg.QuitMessage))
			_ = s.conn.Close()
		case <-stop:
		}
	}()

	if err := s.register(ctx); err != nil {
		return s.exitErr(ctx, err)
	}

	for {
		msg, err := s.conn.ReadMessage(s.cfg.IdleTimeout)
		if err != nil {
			if ctx.Err() == nil && wire.IsTimeout(err) {
				if s.awaitingPong {
					return ggmerr.Wrap("read", s.conn.RemoteAddr(),
						fmt.Errorf("%w: no reply to PING", ggmerr.ErrConnectionLost))
				}
				s.awaitingPong = true
				if err := s.conn.WriteUrgent(wire.Ping(s.nick)); err != nil {
					return s.exitErr(ctx, err)
				}
				continue
			}
			return s.exitErr(ctx, err)
		}
		s.awaitingPong = false

		if err := s.handle(ctx, msg); err != nil {
			return s.exitErr(ctx, err)
		}
	}
}

// exitErr maps errors caused by our own shutdown to nil.
func (s *Session) exitErr(ctx context.Context, err error) error {
	if ctx.Err() != nil && !ggmerr.IsFatal(err) {
		return nil
	}
	return err
}

func (s *Session) register(ctx context.Context) error {
	out := s.auth.Start().Send
	out = append(out, wire.Nick(s.nick), wire.User(s.cfg.Username, s.cfg.Realname))
	return s.send(ctx, out)
}

func (s *Session) send(ctx context.Context, msgs []*irc.Message) error {
	for _, m := range msgs {
		if err := s.conn.WriteMessage(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

// handle processes one server message.  A non-nil error ends the
// session.
func (s *Session) handle(ctx context.Context, msg *irc.Message) error {
	if msg.Command == "PING" {
		return s.conn.WriteUrgent(wire.Pong(wire.Trailing(msg)))
	}

	res := s.auth.Handle(msg)
	switch res.Event {
	case auth.EventFailed:
		s.logger.Error("SASL authentication failed: %v", res.Err)
		for _, m := range res.Send {
			_ = s.conn.WriteUrgent(m)
		}
		return res.Err
	case auth.EventAuthenticated:
		s.logger.Info("Authenticated as %s", s.cfg.Nick)
		s.authenticated = true
	}
	if err := s.send(ctx, res.Send); err != nil {
		return err
	}

	switch msg.Command {
	case wire.RplWelcome:
		if len(msg.Params) > 0 {
			s.nick = msg.Params[0]
		}
		s.welcomed = true
		s.logger.Info("Connection made to %s as %s", s.conn.RemoteAddr(), s.nick)
	case wire.ErrNicknameInUse:
		if !s.welcomed {
			s.nick += "_"
			s.logger.Warn("Nickname in use, trying %s", s.nick)
			return s.conn.WriteMessage(ctx, wire.Nick(s.nick))
		}
	case "NICK":
		if wire.SenderNick(msg) == s.nick && len(msg.Params) > 0 {
			s.nick = msg.Params[0]
		}
	case "JOIN":
		if wire.SenderNick(msg) == s.nick && len(msg.Params) > 0 {
			s.logger.Info("Joined %s", msg.Params[0])
		}
	case "KICK":
		if len(msg.Params) >= 2 && msg.Params[1] == s.nick {
			s.logger.Warn("Kicked from %s by %s [%s]", msg.Params[0], wire.SenderNick(msg), wire.Trailing(msg))
		}
	case "ERROR":
		return ggmerr.Wrap("read", s.conn.RemoteAddr(),
			fmt.Errorf("%w: server closed link: %s", ggmerr.ErrConnectionLost, wire.Trailing(msg)))
	case "PRIVMSG":
		if line, ok := ParseInbound(msg); ok {
			return s.dispatch(ctx, line)
		}
	}
	return s.maybeJoin(ctx)
}

// maybeJoin joins the configured channels once the server has both
// accepted the SASL login and welcomed the client.
func (s *Session) maybeJoin(ctx context.Context) error {
	if s.joined || !s.authenticated || !s.welcomed {
		return nil
	}
	s.joined = true
	s.stats.SetConnected(true)
	for _, ch := range s.cfg.Channels {
		if err := s.conn.WriteMessage(ctx, wire.Join(wire.NormalizeChannel(ch))); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) dispatch(ctx context.Context, line InboundLine) error {
	if line.Nick == s.nick {
		return nil
	}
	s.stats.LineReceived()
	s.logger.Info("[%s@%s]: %s", line.Mask, line.Target, line.Text)

	reply, handled := s.router.Route(ctx, line.Text)
	if !handled || reply.Empty() {
		return nil
	}
	target := line.ReplyTarget(reply.Private)
	for _, text := range wire.SplitText(reply.Text, wire.MaxTextBytes) {
		if err := s.conn.WriteMessage(ctx, wire.Privmsg(target, text)); err != nil {
			return err
		}
		s.stats.ReplySent(target == line.Nick)
	}
	return nil
}
