// Package unescape decodes markup escape sequences embedded in externally
// sourced text, so rendered comments do not show raw escape codes.
package unescape

import (
	"strconv"
	"strings"
)

// Fixed named set, tried before the generic numeric forms.
var named = []struct {
	entity string
	repl   string
}{
	{"&#39;", "'"},
	{"&#x2F;", "/"},
	{"&quot;", `"`},
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
}

// Decode replaces entity escapes in s with their literal characters.
//
// The input is scanned left to right in a single pass and produced output
// is never rescanned, so already-decoded text cannot be decoded a second
// time: "&amp;#39;" becomes "&#39;", not "'". At each '&' the fixed named
// set is tried first, then generic decimal escapes (&#NNN;), then generic
// hexadecimal escapes (&#xHHH;). Anything unrecognized is copied verbatim.
func Decode(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for i < len(s) {
		if s[i] != '&' {
			b.WriteByte(s[i])
			i++
			continue
		}
		repl, width, ok := decodeEntity(s[i:])
		if !ok {
			b.WriteByte(s[i])
			i++
			continue
		}
		b.WriteString(repl)
		i += width
	}

	return b.String()
}

// decodeEntity matches one escape sequence at the start of s and returns
// its replacement and consumed width.
func decodeEntity(s string) (string, int, bool) {
	for _, e := range named {
		if strings.HasPrefix(s, e.entity) {
			return e.repl, len(e.entity), true
		}
	}

	if !strings.HasPrefix(s, "&#") {
		return "", 0, false
	}

	end := strings.IndexByte(s, ';')
	if end < 0 {
		return "", 0, false
	}

	body := s[2:end]
	base := 10
	if len(body) > 1 && (body[0] == 'x' || body[0] == 'X') {
		base = 16
		body = body[1:]
	}

	n, err := strconv.ParseInt(body, base, 32)
	if err != nil || n < 0 || !validRune(rune(n)) {
		return "", 0, false
	}

	return string(rune(n)), end + 1, true
}

func validRune(r rune) bool {
	return r <= '\U0010FFFF' && (r < 0xD800 || r > 0xDFFF)
}
