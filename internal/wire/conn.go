package wire

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"gopkg.in/irc.v4"

	ggmerr "ggm/internal/errors"
	"ggm/util"
)

const writeTimeout = 30 * time.Second

// Conn is a line-oriented IRC connection.  Reads happen on one
// goroutine; writes may come from any and are paced by a limiter so the
// server never sees more than one line per interval.
type Conn struct {
	nc      net.Conn
	r       *bufio.Reader
	limiter *rate.Limiter
	logger  *util.Logger
	partial string // bytes read before a deadline expired mid-line
	mu      sync.Mutex
}

// NewConn wraps nc.  interval is the minimum gap between paced writes;
// zero disables pacing.
func NewConn(nc net.Conn, interval time.Duration, logger *util.Logger) *Conn {
	lim := rate.NewLimiter(rate.Inf, 1)
	if interval > 0 {
		lim = rate.NewLimiter(rate.Every(interval), 1)
	}
	return &Conn{
		nc:      nc,
		r:       bufio.NewReaderSize(nc, 8192),
		limiter: lim,
		logger:  logger,
	}
}

// RemoteAddr returns the server address.
func (c *Conn) RemoteAddr() string { return c.nc.RemoteAddr().String() }

// ReadMessage returns the next parseable message.  A positive timeout
// sets a read deadline; callers can test for it with IsTimeout.
// Malformed lines are logged and skipped.
func (c *Conn) ReadMessage(timeout time.Duration) (*irc.Message, error) {
	if timeout > 0 {
		_ = c.nc.SetReadDeadline(time.Now().Add(timeout))
	} else {
		_ = c.nc.SetReadDeadline(time.Time{})
	}
	for {
		line, err := c.r.ReadString('\n')
		if err != nil {
			if IsTimeout(err) {
				c.partial += line
				return nil, err
			}
			return nil, ggmerr.Wrap("read", c.RemoteAddr(), fmt.Errorf("%w: %v", ggmerr.ErrConnectionLost, err))
		}
		line = strings.TrimRight(c.partial+line, "\r\n")
		c.partial = ""
		if line == "" {
			continue
		}
		c.logger.Debug("<< %s", line)
		m, err := irc.ParseMessage(line)
		if err != nil {
			c.logger.Debug("skipping malformed line %q: %v", line, err)
			continue
		}
		return m, nil
	}
}

// WriteMessage waits for the pacing limiter and writes m.
func (c *Conn) WriteMessage(ctx context.Context, m *irc.Message) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	return c.write(m)
}

// WriteUrgent writes m immediately, bypassing pacing.  Used for PONG
// and QUIT, which must not queue behind replies.
func (c *Conn) WriteUrgent(m *irc.Message) error {
	return c.write(m)
}

func (c *Conn) write(m *irc.Message) error {
	out := &irc.Message{Tags: m.Tags, Prefix: m.Prefix, Command: m.Command, Params: make([]string, len(m.Params))}
	for i, p := range m.Params {
		out.Params[i] = strings.NewReplacer("\r", " ", "\n", " ").Replace(p)
	}
	line := out.String()

	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.nc.SetWriteDeadline(time.Now().Add(writeTimeout))
	if _, err := c.nc.Write([]byte(line + "\r\n")); err != nil {
		return ggmerr.Wrap("write", c.RemoteAddr(), fmt.Errorf("%w: %v", ggmerr.ErrConnectionLost, err))
	}
	if m.Command == "AUTHENTICATE" && len(m.Params) > 0 && m.Params[0] != "PLAIN" {
		c.logger.Debug(">> AUTHENTICATE <redacted>")
	} else {
		c.logger.Debug(">> %s", line)
	}
	return nil
}

// Close closes the underlying connection.
func (c *Conn) Close() error { return c.nc.Close() }

// IsTimeout reports whether err is a read deadline expiry.
func IsTimeout(err error) bool {
	var ne net.Error
	return ggmerr.As(err, &ne) && ne.Timeout()
}
