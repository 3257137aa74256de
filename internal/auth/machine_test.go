package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/irc.v4"

	ggmerr "ggm/internal/errors"
)

func parse(t *testing.T, line string) *irc.Message {
	t.Helper()
	m, err := irc.ParseMessage(line)
	require.NoError(t, err)
	return m
}

func commands(msgs []*irc.Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Command
		if len(m.Params) > 0 {
			out[i] += " " + m.Params[0]
		}
	}
	return out
}

func TestMachine_HappyPath(t *testing.T) {
	m := New("ggm", "hunter2", "bye")
	require.Equal(t, Disconnected, m.State())

	res := m.Start()
	require.Equal(t, []string{"CAP REQ"}, commands(res.Send))
	require.Equal(t, "sasl", res.Send[0].Params[1])
	require.Equal(t, CapRequested, m.State())

	res = m.Handle(parse(t, ":irc.example.net CAP * ACK :sasl"))
	require.Equal(t, []string{"AUTHENTICATE PLAIN"}, commands(res.Send))
	require.Equal(t, Authenticating, m.State())

	res = m.Handle(parse(t, "AUTHENTICATE +"))
	require.Len(t, res.Send, 1)
	require.Equal(t, "AUTHENTICATE", res.Send[0].Command)
	require.Equal(t, "AGdnbQBodW50ZXIy", res.Send[0].Params[0]) // "\x00ggm\x00hunter2"

	// One attempt only: a second prompt is ignored.
	require.Empty(t, m.Handle(parse(t, "AUTHENTICATE +")).Send)

	res = m.Handle(parse(t, ":irc.example.net 903 ggm :SASL authentication successful"))
	require.Equal(t, EventAuthenticated, res.Event)
	require.Equal(t, []string{"CAP END"}, commands(res.Send))
	require.Equal(t, Authenticated, m.State())

	// Terminal: nothing else has an effect.
	require.Equal(t, Result{}, m.Handle(parse(t, ":irc.example.net 904 ggm :late")))
	require.Equal(t, Result{}, m.Start())
}

// TestMachine_CapMismatch verifies that an acknowledgment other than
// exactly {sasl} fails with QUIT and never sends credentials.
func TestMachine_CapMismatch(t *testing.T) {
	acks := []string{
		":srv CAP * ACK :multi-prefix",
		":srv CAP * ACK :sasl multi-prefix",
		":srv CAP * ACK :",
		":srv CAP * NAK :sasl",
	}
	for _, line := range acks {
		t.Run(line, func(t *testing.T) {
			m := New("ggm", "hunter2", "bye")
			m.Start()

			res := m.Handle(parse(t, line))
			require.Equal(t, Failed, m.State())
			require.Equal(t, EventFailed, res.Event)
			require.ErrorIs(t, res.Err, ggmerr.ErrCapRejected)
			require.Equal(t, []string{"QUIT bye"}, commands(res.Send))

			// Even if the server prompts, no credential goes out.
			res = m.Handle(parse(t, "AUTHENTICATE +"))
			require.Empty(t, res.Send)
		})
	}
}

func TestMachine_SaslFailure(t *testing.T) {
	for _, code := range []string{"904", "905"} {
		t.Run(code, func(t *testing.T) {
			m := New("ggm", "wrong", "bye")
			m.Start()
			m.Handle(parse(t, ":srv CAP ggm ACK :sasl"))
			m.Handle(parse(t, "AUTHENTICATE +"))

			res := m.Handle(parse(t, ":srv "+code+" ggm :SASL authentication failed"))
			require.Equal(t, Failed, m.State())
			require.Equal(t, EventFailed, res.Event)
			require.ErrorIs(t, res.Err, ggmerr.ErrAuthFailed)
			require.True(t, ggmerr.IsFatal(res.Err))
			require.Equal(t, []string{"QUIT bye"}, commands(res.Send))
		})
	}
}

func TestMachine_IgnoresUnrelated(t *testing.T) {
	m := New("ggm", "pw", "bye")
	require.Equal(t, Result{}, m.Handle(parse(t, ":srv CAP * ACK :sasl")), "before Start")

	m.Start()
	require.Equal(t, Result{}, m.Handle(parse(t, ":srv NOTICE * :*** Looking up your hostname")))
	require.Equal(t, Result{}, m.Handle(parse(t, ":srv CAP * LS :sasl multi-prefix")))
	require.Equal(t, Result{}, m.Handle(parse(t, ":srv 903 ggm :early success")))
	require.Equal(t, CapRequested, m.State())
}

func TestState_String(t *testing.T) {
	require.Equal(t, "authenticating", Authenticating.String())
	require.Equal(t, "unknown", State(42).String())
}

// TestMachine_CredentialWaitsForPrompt verifies the ACK only selects the
// mechanism; the credential goes out on the server's "+" challenge.
func TestMachine_CredentialWaitsForPrompt(t *testing.T) {
	m := New("ggm", "hunter2", "bye")
	m.Start()

	res := m.Handle(parse(t, ":srv CAP * ACK :sasl"))
	require.Equal(t, []string{"AUTHENTICATE PLAIN"}, commands(res.Send))
	require.Equal(t, Authenticating, m.State())

	// A failure before the prompt leaves the password unsent.
	res = m.Handle(parse(t, ":srv 904 ggm :SASL authentication failed"))
	require.Equal(t, EventFailed, res.Event)
	require.Equal(t, []string{"QUIT bye"}, commands(res.Send))
	require.Empty(t, m.Handle(parse(t, "AUTHENTICATE +")).Send)
}

// TestMachine_CapUnsupported verifies a 421 for CAP fails like a
// rejected acknowledgment.
func TestMachine_CapUnsupported(t *testing.T) {
	m := New("ggm", "hunter2", "bye")
	m.Start()

	require.Equal(t, Result{}, m.Handle(parse(t, ":srv 421 * FOO :Unknown command")))
	require.Equal(t, CapRequested, m.State())

	res := m.Handle(parse(t, ":srv 421 * CAP :Unknown command"))
	require.Equal(t, Failed, m.State())
	require.Equal(t, EventFailed, res.Event)
	require.ErrorIs(t, res.Err, ggmerr.ErrCapRejected)
	require.Equal(t, []string{"QUIT bye"}, commands(res.Send))

	require.Equal(t, Result{}, m.Handle(parse(t, ":srv 001 ggm :Welcome")))
}
