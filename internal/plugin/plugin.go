// Package plugin defines the contract every command handler satisfies
// and the helpers plugins compose to meet it.
package plugin

import "context"

// Marker prefixes every command name.
const Marker = "?"

// NotAvailable answers an info request for a command without details.
const NotAvailable = "Not available for that command. Use help instead."

// Reply is the result of handling one line.  An empty Text means no
// reply; Private sends it to the requesting nick instead of the channel.
type Reply struct {
	Text    string
	Private bool
}

// Empty reports whether there is nothing to send.
func (r Reply) Empty() bool { return r.Text == "" }

// Say is a public reply.
func Say(text string) Reply { return Reply{Text: text} }

// Whisper is a private reply.
func Whisper(text string) Reply { return Reply{Text: text, Private: true} }

// Plugin is a command handler.  HasCommand must be true before
// ParseCommand is called; the router guarantees that.
type Plugin interface {
	// Name identifies the plugin in logs and metrics.
	Name() string
	// Commands returns the command names, each starting with Marker.
	Commands() []string
	// HasCommand reports whether line starts with one of Commands, or
	// is a ?help/?info request for one of them.
	HasCommand(line string) bool
	// ParseCommand executes exactly one command.
	ParseCommand(ctx context.Context, line string) Reply
	// Help returns usage for the command named in "?help <name>".
	Help(line string) Reply
	// Info returns details for the command named in "?info <name>".
	Info(line string) Reply
}

// Registration binds a configured plugin instance to its position in
// the routing chain.
type Registration struct {
	Name     string // configuration section name
	Commands []string
	Plugin   Plugin
}
