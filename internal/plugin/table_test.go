package plugin

import (
	"context"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func echoTable() *Table {
	run := func(name string) func(context.Context, string) Reply {
		return func(_ context.Context, args string) Reply {
			return Say(name + ":" + args)
		}
	}
	return NewTable(
		Command{Name: "avg", Usage: "?avg [exchanges]", Info: "Averages.", Run: run("avg")},
		Command{Name: "avg-exchanges", Usage: "?avg-exchanges [CUR...]", Run: run("avg-exchanges")},
		Command{Name: "avg-rates", Run: run("avg-rates")},
	)
}

// TestTable_LongestFirst verifies that a longer command wins over a
// shorter one that is its prefix.
func TestTable_LongestFirst(t *testing.T) {
	tbl := echoTable()
	ctx := context.Background()

	tests := []struct {
		line string
		want string
	}{
		{"?avg-exchanges EUR", "avg-exchanges:EUR"},
		{"?avg-exchanges", "avg-exchanges:"},
		{"?avg -c EUR", "avg:-c EUR"},
		{"?avg", "avg:"},
		{"?avg-rates", "avg-rates:"},
	}
	for _, tt := range tests {
		if got := tbl.ParseCommand(ctx, tt.line).Text; got != tt.want {
			t.Errorf("ParseCommand(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

// TestTable_TokenBoundary verifies that a command only matches when
// followed by whitespace or the end of the line.
func TestTable_TokenBoundary(t *testing.T) {
	tbl := echoTable()
	for _, line := range []string{"?avgx", "?avgfoo", "?avg-exchangesfoo", "?avg-exchangesX", "avg", "say ?avg", "?av"} {
		if tbl.HasCommand(line) {
			t.Errorf("HasCommand(%q) = true", line)
		}
	}
	for _, line := range []string{"?avg", "?avg\tEUR", "?avg-exchanges USD"} {
		if !tbl.HasCommand(line) {
			t.Errorf("HasCommand(%q) = false", line)
		}
	}
	if rest, ok := CutCommand("?avg\t-c EUR", "?avg"); !ok || rest != "-c EUR" {
		t.Errorf("CutCommand = %q, %v", rest, ok)
	}
}

// TestTable_HelpInfo verifies help and info variants are claimed and
// answered for known names only.
func TestTable_HelpInfo(t *testing.T) {
	tbl := echoTable()
	ctx := context.Background()

	if !tbl.HasCommand("?help avg-exchanges") || !tbl.HasCommand("?info ?avg") {
		t.Fatal("help/info for known commands should be claimed")
	}
	if tbl.HasCommand("?help fortune") || tbl.HasCommand("?help") {
		t.Fatal("help for unknown or missing topic should not be claimed")
	}
	if got := tbl.ParseCommand(ctx, "?help avg-exchanges").Text; got != "?avg-exchanges [CUR...]" {
		t.Errorf("help = %q", got)
	}
	if got := tbl.ParseCommand(ctx, "?info avg").Text; got != "Averages." {
		t.Errorf("info = %q", got)
	}
	if got := tbl.ParseCommand(ctx, "?info avg-rates").Text; got != NotAvailable {
		t.Errorf("info fallback = %q", got)
	}
}

func TestTable_Commands(t *testing.T) {
	tbl := NewTable(Command{Name: "b"}, Command{Name: "a"}, Command{Name: "b"})
	got := strings.Join(tbl.Commands(), ",")
	if got != "?b,?a" {
		t.Errorf("Commands = %q, want declaration order without duplicates", got)
	}
}

func TestTable_PrivateInfo(t *testing.T) {
	tbl := NewTable(Command{Name: "avg", Usage: "?avg", Info: "Long story.", Private: true})
	if got := tbl.Info("?info avg"); got != Whisper("Long story.") {
		t.Errorf("info = %+v", got)
	}
	if got := tbl.Help("?help avg"); got != Say("?avg") {
		t.Errorf("help = %+v", got)
	}
}

func TestSplitTopic(t *testing.T) {
	tests := []struct {
		line, variant, name string
		ok                  bool
	}{
		{"?help avg", "help", "avg", true},
		{"?info ?forex extra", "info", "forex", true},
		{"?help", "", "", false},
		{"?helpme avg", "", "", false},
	}
	for _, tt := range tests {
		v, n, ok := SplitTopic(tt.line)
		if v != tt.variant || n != tt.name || ok != tt.ok {
			t.Errorf("SplitTopic(%q) = %q, %q, %v", tt.line, v, n, ok)
		}
	}
}

// TestTable_LongestMatchProperty checks that for any set of names, the
// matched command is always the longest declared name the line invokes.
func TestTable_LongestMatchProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := rapid.StringMatching(`[a-z]{1,4}`).Draw(t, "base")
		suffixes := rapid.SliceOfDistinct(rapid.StringMatching(`-[a-z]{1,4}`), rapid.ID[string]).Draw(t, "suffixes")

		cmds := []Command{{Name: base}}
		for _, s := range suffixes {
			cmds = append(cmds, Command{Name: base + s})
		}
		tbl := NewTable(cmds...)

		pick := rapid.IntRange(0, len(cmds)-1).Draw(t, "pick")
		want := cmds[pick].Name
		c, _, ok := tbl.Match(Marker + want + " tail")
		if !ok {
			t.Fatalf("no match for %q", want)
		}
		if c.Name != want {
			t.Fatalf("matched %q, want %q", c.Name, want)
		}
	})
}
