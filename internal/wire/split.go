package wire

import (
	"strings"
	"unicode/utf8"
)

var crlf = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// MaxTextBytes is the PRIVMSG body budget per line.  The 512-byte line
// limit also has to hold the prefix the server prepends when relaying.
const MaxTextBytes = 400

// SplitText breaks a reply into sendable lines: first on newlines, then
// at max bytes, preferring the last space and never cutting a UTF-8
// sequence.  Blank lines are dropped.
func SplitText(text string, max int) []string {
	if max <= 0 {
		max = MaxTextBytes
	}
	var out []string
	for _, line := range strings.Split(crlf.Replace(text), "\n") {
		line = strings.TrimRight(line, " \t\r")
		for len(line) > max {
			cut := max
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			if sp := strings.LastIndexByte(line[:cut], ' '); sp > max/2 {
				cut = sp
			}
			if cut == 0 {
				cut = max
			}
			out = append(out, line[:cut])
			line = strings.TrimLeft(line[cut:], " ")
		}
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
