package core

import (
	"context"
	"fmt"
	"io"
	"time"

	"ggm/config"
	ggmerr "ggm/internal/errors"
	"ggm/internal/metrics"
	"ggm/internal/retry"
	"ggm/internal/session"
	"ggm/internal/transport"
	"ggm/internal/wire"
	"ggm/util"
)

// Supervisor keeps one IRC session alive.  It implements the failure
// policy: the first connection failure and any authentication failure
// are fatal, a lost connection is re-dialled with capped exponential
// backoff, and cancelling ctx quits cleanly.
type Supervisor struct {
	Dialer   transport.Dialer
	Handler  session.Handler
	Session  session.Config
	Address  string
	LineRate time.Duration
	Backoff  *retry.Backoff
	Logger   *util.Logger
	Metrics  *metrics.Collector
}

// NewSupervisor wires a supervisor for the main section.
func NewSupervisor(m *config.Main, dialer transport.Dialer, h session.Handler, logger *util.Logger, stats *metrics.Collector) *Supervisor {
	b := retry.ReconnectBackoff()
	b.MaxDelay = config.DefaultMaxReconnectBackoff
	return &Supervisor{
		Dialer:  dialer,
		Handler: h,
		Session: session.Config{
			Nick:        m.Nickname,
			Username:    m.Username,
			Realname:    m.Realname,
			Password:    m.Password,
			Channels:    m.Channels,
			QuitMessage: m.QuitMessage,
		},
		Address:  m.Addr(),
		LineRate: m.LineInterval(),
		Backoff:  b,
		Logger:   logger,
		Metrics:  stats,
	}
}

// Run connects and serves until ctx is cancelled or a fatal error
// occurs.  The dialer, and the handler if it is an io.Closer, are
// closed when Run returns.
func (s *Supervisor) Run(ctx context.Context) error {
	defer s.Dialer.Close()
	if c, ok := s.Handler.(io.Closer); ok {
		defer c.Close()
	}
	defer func() { s.Logger.Verbose("Session stats: %s", s.Metrics.JSON()) }()

	attempt := 0
	connected := false
	for {
		err := s.connectOnce(ctx, &connected, &attempt)
		if ctx.Err() != nil {
			s.Logger.Info("Disconnected")
			return nil
		}
		if ggmerr.IsFatal(err) {
			return err
		}
		if !connected {
			s.Logger.Error("Connection failed: %v", err)
			return err
		}

		attempt++
		wait := s.Backoff.Delay(attempt)
		s.Logger.Error("Connection lost: %v; re-trying in ~%v", err, wait.Round(time.Second))
		s.Metrics.RecordError("connection", err.Error())
		if err := s.Backoff.Wait(ctx, attempt); err != nil {
			s.Logger.Info("Disconnected")
			return nil
		}
		s.Metrics.Reconnect()
	}
}

// connectOnce dials and runs one session.  connected is set once any
// dial has succeeded; attempt resets once a session got registered.
func (s *Supervisor) connectOnce(ctx context.Context, connected *bool, attempt *int) error {
	s.Logger.Verbose("Connecting to %s", s.Address)
	nc, err := s.Dialer.Dial(ctx, "tcp", s.Address)
	if err != nil {
		if *connected {
			return err
		}
		return fmt.Errorf("connect to %s: %w", s.Address, err)
	}
	*connected = true
	s.Logger.Info("Connection made to %s", nc.RemoteAddr())

	conn := wire.NewConn(nc, s.LineRate, s.Logger)
	defer conn.Close()

	sess := session.New(conn, s.Session, s.Handler, s.Logger, s.Metrics)
	err = sess.Run(ctx)
	s.Metrics.SetConnected(false)
	if sess.Registered() {
		*attempt = 0
	}
	if err == nil && ctx.Err() == nil {
		err = ggmerr.ErrConnectionLost
	}
	return err
}
