package plugin

import (
	"strings"
	"testing"
)

func TestParseArgs(t *testing.T) {
	fs := NewFlagSet("avg")
	cur := fs.StringP("currency", "c", "USD", "")
	avail := fs.BoolP("available", "a", false, "")

	rest, err := ParseArgs(fs, "-c EUR -a bitstamp kraken", "[exchanges]")
	if err != nil {
		t.Fatal(err)
	}
	if *cur != "EUR" || !*avail {
		t.Errorf("currency=%q available=%v", *cur, *avail)
	}
	if strings.Join(rest, " ") != "bitstamp kraken" {
		t.Errorf("operands = %v", rest)
	}
}

// TestParseArgs_Error verifies parse errors carry the synopsis.
func TestParseArgs_Error(t *testing.T) {
	fs := NewFlagSet("forex")
	fs.StringSliceP("available", "a", nil, "")

	_, err := ParseArgs(fs, "--bogus", "FROM TO")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "?forex [-a AVAILABLE] FROM TO ") {
		t.Errorf("error = %q", err)
	}
}

func TestSynopsis(t *testing.T) {
	fs := NewFlagSet("city")
	fs.Bool("latitude", false, "")
	fs.String("country-code", "", "")
	fs.BoolP("population", "p", false, "")

	want := "?city [--latitude] [--country-code COUNTRY_CODE] [-p] NAME..."
	if got := Synopsis(fs, "NAME..."); got != want {
		t.Errorf("Synopsis = %q, want %q", got, want)
	}
}
