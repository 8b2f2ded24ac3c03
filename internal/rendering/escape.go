package rendering

import (
	"strings"
	"unicode/utf8"
)

// EscapeXML escapes text for use inside WordprocessingML character data and
// attribute values. Characters that XML 1.0 cannot carry are dropped and
// invalid UTF-8 becomes U+FFFD.
func EscapeXML(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) + len(text)/8)

	for _, r := range text {
		switch r {
		case '&':
			result.WriteString("&amp;")
		case '<':
			result.WriteString("&lt;")
		case '>':
			result.WriteString("&gt;")
		case '"':
			result.WriteString("&quot;")
		case '\'':
			result.WriteString("&apos;")
		case '\t', '\n', '\r':
			result.WriteRune(r)
		case utf8.RuneError:
			result.WriteRune(utf8.RuneError)
		default:
			if r < 0x20 || r == 0xFFFE || r == 0xFFFF {
				continue
			}
			result.WriteRune(r)
		}
	}

	return result.String()
}
