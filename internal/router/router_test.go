package router

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ggmerr "ggm/internal/errors"
	"ggm/internal/metrics"
	"ggm/internal/plugin"
)

type fakePlugin struct {
	*plugin.Table
	name string
}

func (f *fakePlugin) Name() string { return f.name }

func newFake(name string, cmds ...plugin.Command) plugin.Registration {
	p := &fakePlugin{Table: plugin.NewTable(cmds...), name: name}
	return plugin.Registration{Name: name, Commands: p.Commands(), Plugin: p}
}

func say(text string) func(context.Context, string) plugin.Reply {
	return func(context.Context, string) plugin.Reply { return plugin.Say(text) }
}

// TestRoute_CommandsNoPlugins verifies ?commands lists exactly the
// built-ins when no plugin is registered.
func TestRoute_CommandsNoPlugins(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)

	reply, handled := r.Route(context.Background(), "?commands")
	require.True(t, handled)
	assert.Equal(t, "?about,?commands,?help,?info", reply.Text)
	assert.False(t, reply.Private)
}

// TestRoute_Unknown verifies unclaimed lines produce no reply.
func TestRoute_Unknown(t *testing.T) {
	r, err := New([]plugin.Registration{newFake("quotes", plugin.Command{Name: "fortune", Run: say("x")})})
	require.NoError(t, err)

	for _, line := range []string{"hello there", "?nonsense", "", "   ", "?fortunes"} {
		reply, handled := r.Route(context.Background(), line)
		assert.False(t, handled, line)
		assert.True(t, reply.Empty(), line)
	}
}

// TestRoute_Order verifies the first plugin in registration order wins
// and longest-first matching holds inside a plugin.
func TestRoute_Order(t *testing.T) {
	avg := newFake("bitcoinaverage",
		plugin.Command{Name: "avg", Run: say("average")},
		plugin.Command{Name: "avg-exchanges", Run: say("exchanges")},
	)
	r, err := New([]plugin.Registration{avg})
	require.NoError(t, err)

	reply, _ := r.Route(context.Background(), "?avg-exchanges EUR")
	assert.Equal(t, "exchanges", reply.Text)
	reply, _ = r.Route(context.Background(), "?avg -c EUR")
	assert.Equal(t, "average", reply.Text)

	reply, _ = r.Route(context.Background(), "?commands")
	assert.Equal(t, "?about,?avg,?avg-exchanges,?commands,?help,?info", reply.Text)
}

// TestRoute_HelpDelegation verifies built-in ?help and ?info forward to
// the plugin owning the topic.
func TestRoute_HelpDelegation(t *testing.T) {
	quotes := newFake("quotes",
		plugin.Command{Name: "cnq", Usage: "Alias for ?chuck-norris", Run: say("joke")},
		plugin.Command{Name: "fortune", Usage: "Returns a random fortune", Info: "From fortune(6).", Run: say("f")},
	)
	r, err := New([]plugin.Registration{quotes})
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct{ line, want string }{
		{"?help cnq", "Alias for ?chuck-norris"},
		{"?help ?fortune", "Returns a random fortune"},
		{"?info fortune", "From fortune(6)."},
		{"?info cnq", plugin.NotAvailable},
		{"?help", helpText},
		{"?info", infoText},
		{"?help nothing", helpText},
		{"?help about", "?about describes the bot."},
	}
	for _, tt := range tests {
		reply, handled := r.Route(ctx, tt.line)
		assert.True(t, handled, tt.line)
		assert.Equal(t, tt.want, reply.Text, tt.line)
	}
}

func TestRoute_About(t *testing.T) {
	r, err := New(nil, WithAbout("I am a bot."))
	require.NoError(t, err)
	reply, _ := r.Route(context.Background(), "?about")
	assert.Equal(t, "I am a bot.", reply.Text)
}

// TestNew_Collision verifies duplicate commands are rejected at startup.
func TestNew_Collision(t *testing.T) {
	a := newFake("lookup", plugin.Command{Name: "rate"})
	b := newFake("forex", plugin.Command{Name: "rates"}, plugin.Command{Name: "rate"})
	_, err := New([]plugin.Registration{a, b})

	var ce *ggmerr.ConfigError
	require.True(t, errors.As(err, &ce), "got %v", err)
	assert.Equal(t, "forex", ce.Field)
	assert.Equal(t, "?rate", ce.Value)

	_, err = New([]plugin.Registration{newFake("x", plugin.Command{Name: "help"})})
	require.Error(t, err, "shadowing a built-in")
}

type panicPlugin struct{ *plugin.Table }

func (panicPlugin) Name() string { return "boom" }

// TestRoute_PanicRecovered verifies a panicking plugin yields no reply
// and the next plugin is unaffected.
func TestRoute_PanicRecovered(t *testing.T) {
	p := panicPlugin{plugin.NewTable(plugin.Command{Name: "boom", Run: func(context.Context, string) plugin.Reply {
		panic("kaboom")
	}})}
	m := metrics.New()
	r, err := New([]plugin.Registration{
		{Name: "boom", Commands: p.Commands(), Plugin: p},
		newFake("ok", plugin.Command{Name: "ok", Run: say("fine")}),
	}, WithMetrics(m))
	require.NoError(t, err)

	reply, handled := r.Route(context.Background(), "?boom")
	assert.True(t, handled)
	assert.True(t, reply.Empty())
	assert.EqualValues(t, 1, m.ErrorCount())

	reply, _ = r.Route(context.Background(), "?ok")
	assert.Equal(t, "fine", reply.Text)

	count, err := testutil.GatherAndCount(m.Registry(), "ggm_commands_handled_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

type closingPlugin struct {
	*fakePlugin
	closed int
	err    error
}

func (c *closingPlugin) Close() error {
	c.closed++
	return c.err
}

func TestClose(t *testing.T) {
	a := &closingPlugin{fakePlugin: &fakePlugin{Table: plugin.NewTable(plugin.Command{Name: "a"}), name: "a"}}
	b := &closingPlugin{
		fakePlugin: &fakePlugin{Table: plugin.NewTable(plugin.Command{Name: "b"}), name: "b"},
		err:        errors.New("db busy"),
	}
	r, err := New([]plugin.Registration{
		{Name: "a", Commands: a.Commands(), Plugin: a},
		newFake("plain", plugin.Command{Name: "c"}),
		{Name: "b", Commands: b.Commands(), Plugin: b},
	})
	require.NoError(t, err)

	err = r.Close()
	require.ErrorContains(t, err, "b: db busy")
	assert.Equal(t, 1, a.closed)
	assert.Equal(t, 1, b.closed)
}
