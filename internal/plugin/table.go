package plugin

import (
	"context"
	"sort"
	"strings"
)

// Command is one entry of a Table.
type Command struct {
	Name  string // without Marker, e.g. "avg-exchanges"
	Usage string // answer to ?help
	Info  string // answer to ?info; empty means NotAvailable
	Run   func(ctx context.Context, args string) Reply

	// Private sends info replies to the requester only.
	Private bool
}

// Table implements HasCommand, Help, Info and ParseCommand dispatch for a
// plugin's commands.  Names are tried longest first so "?avg-exchanges"
// never lands on "?avg".  Plugins embed a *Table and add Name.
type Table struct {
	byLength []*Command // longest name first
	byName   map[string]*Command
	declared []string // with Marker, declaration order
}

// NewTable builds a table.  Later duplicates of a name are ignored.
func NewTable(cmds ...Command) *Table {
	t := &Table{byName: make(map[string]*Command, len(cmds))}
	for i := range cmds {
		c := &cmds[i]
		if _, dup := t.byName[c.Name]; dup {
			continue
		}
		t.byName[c.Name] = c
		t.byLength = append(t.byLength, c)
		t.declared = append(t.declared, Marker+c.Name)
	}
	sort.SliceStable(t.byLength, func(i, j int) bool {
		return len(t.byLength[i].Name) > len(t.byLength[j].Name)
	})
	return t
}

// Commands returns the command names with Marker.
func (t *Table) Commands() []string {
	return append([]string(nil), t.declared...)
}

// HasCommand reports whether line invokes a command of the table or asks
// for its help or info.
func (t *Table) HasCommand(line string) bool {
	if _, ok := t.topic(line); ok {
		return true
	}
	_, _, ok := t.Match(line)
	return ok
}

// Match finds the command line invokes and the text after its name.
// A command matches when line starts with it followed by whitespace or
// the end of the line.
func (t *Table) Match(line string) (*Command, string, bool) {
	line = strings.TrimSpace(line)
	for _, c := range t.byLength {
		if args, ok := CutCommand(line, Marker+c.Name); ok {
			return c, args, true
		}
	}
	return nil, "", false
}

// ParseCommand runs the matched command, or answers help/info variants.
func (t *Table) ParseCommand(ctx context.Context, line string) Reply {
	if variant, ok := t.topic(line); ok {
		if variant == "help" {
			return t.Help(line)
		}
		return t.Info(line)
	}
	c, args, ok := t.Match(line)
	if !ok || c.Run == nil {
		return Reply{}
	}
	return c.Run(ctx, args)
}

// Help answers "?help <name>".
func (t *Table) Help(line string) Reply {
	c := t.lookupTopic(line)
	if c == nil || c.Usage == "" {
		return Reply{}
	}
	return Say(c.Usage)
}

// Info answers "?info <name>".
func (t *Table) Info(line string) Reply {
	c := t.lookupTopic(line)
	if c == nil {
		return Reply{}
	}
	if c.Info == "" {
		return Say(NotAvailable)
	}
	return Reply{Text: c.Info, Private: c.Private}
}

// Lookup returns the command registered under name, with or without
// Marker.
func (t *Table) Lookup(name string) (*Command, bool) {
	c, ok := t.byName[strings.TrimPrefix(name, Marker)]
	return c, ok
}

// topic reports whether line is "?help <name>" or "?info <name>" for a
// name in this table, returning "help" or "info".
func (t *Table) topic(line string) (string, bool) {
	variant, name, ok := SplitTopic(line)
	if !ok {
		return "", false
	}
	if _, found := t.Lookup(name); !found {
		return "", false
	}
	return variant, true
}

func (t *Table) lookupTopic(line string) *Command {
	_, name, ok := SplitTopic(line)
	if !ok {
		return nil
	}
	c, _ := t.Lookup(name)
	return c
}

// SplitTopic parses "?help <name>" or "?info <name>" into the variant
// ("help" or "info") and the topic without Marker.
func SplitTopic(line string) (variant, name string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", "", false
	}
	switch fields[0] {
	case Marker + "help":
		variant = "help"
	case Marker + "info":
		variant = "info"
	default:
		return "", "", false
	}
	return variant, strings.TrimPrefix(fields[1], Marker), true
}

// CutCommand reports whether line invokes cmd and returns the trimmed
// remainder.
func CutCommand(line, cmd string) (string, bool) {
	if !strings.HasPrefix(line, cmd) {
		return "", false
	}
	rest := line[len(cmd):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return strings.TrimSpace(rest), true
}
