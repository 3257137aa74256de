package plugin

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// NewFlagSet returns a quiet flag set for parsing the arguments of the
// command named cmd (without Marker).  Parse errors are returned, never
// printed.
func NewFlagSet(cmd string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(Marker+cmd, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	fs.Usage = func() {}
	return fs
}

// ParseArgs parses the whitespace-separated args and returns the
// operands.  The error text is suitable for a reply.
func ParseArgs(fs *pflag.FlagSet, args string, operands string) ([]string, error) {
	if err := fs.Parse(strings.Fields(args)); err != nil {
		return nil, fmt.Errorf("%s %s", Synopsis(fs, operands), err)
	}
	return fs.Args(), nil
}

// Synopsis renders a one-line usage such as
// "?avg [-c CURRENCY] [-r RATE] [exchanges]".
func Synopsis(fs *pflag.FlagSet, operands string) string {
	var b strings.Builder
	b.WriteString(fs.Name())
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		b.WriteString(" [")
		if f.Shorthand != "" {
			b.WriteString("-" + f.Shorthand)
		} else {
			b.WriteString("--" + f.Name)
		}
		if f.Value.Type() != "bool" {
			b.WriteString(" " + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_")))
		}
		b.WriteString("]")
	})
	if operands != "" {
		b.WriteString(" " + operands)
	}
	return b.String()
}
