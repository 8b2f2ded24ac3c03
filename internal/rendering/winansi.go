package rendering

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// replacementChar stands in for characters the PDF core fonts cannot show.
const replacementChar = '?'

// winAnsiEncoder converts UTF-8 text to the Windows-1252 bytes expected by
// the PDF core fonts, counting characters it had to replace.
type winAnsiEncoder struct {
	replaced int
}

// encode returns s as a string of Windows-1252 bytes.
func (e *winAnsiEncoder) encode(s string) string {
	if s == "" {
		return ""
	}

	s = norm.NFC.String(s)

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r < 0x80 {
			sb.WriteByte(byte(r))
			continue
		}
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			e.replaced++
			b = replacementChar
		}
		sb.WriteByte(b)
	}
	return sb.String()
}
