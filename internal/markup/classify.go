package markup

import (
	"strings"
	"unicode"
)

// Kind is the structural role of one input line.
type Kind int

const (
	// Plain is an ordinary body line.
	Plain Kind = iota
	// Heading is a section heading introduced by "### ".
	Heading
	// Bullet is a list item introduced by "* ".
	Bullet
	// Emphasized is a body line containing at least one **bold** span.
	Emphasized
	// Blank is an empty or whitespace-only line.
	Blank
)

func (k Kind) String() string {
	switch k {
	case Heading:
		return "heading"
	case Bullet:
		return "bullet"
	case Emphasized:
		return "emphasized"
	case Blank:
		return "blank"
	default:
		return "plain"
	}
}

const (
	headingMarker = "### "
	bulletMarker  = "* "
	boldMarker    = "**"
)

// Run is a contiguous span of text sharing one emphasis state.
type Run struct {
	Text string
	Bold bool
}

// Line is a single classified input line.
type Line struct {
	Kind Kind
	// Text is the line content with structural and bold markers removed.
	Text string
	// Runs is the emphasis decomposition of Text. Empty for Blank lines.
	Runs []Run
}

// Classify determines the kind of a single line. It never fails; every line
// maps to exactly one kind.
func Classify(line string) Line {
	lead := strings.TrimLeftFunc(line, unicode.IsSpace)

	if strings.HasPrefix(lead, headingMarker) {
		text := stripBold(strings.TrimSpace(lead[len(headingMarker):]))
		return Line{Kind: Heading, Text: text, Runs: plainRuns(text)}
	}

	if strings.HasPrefix(lead, bulletMarker) {
		runs := SplitRuns(strings.TrimSpace(lead[len(bulletMarker):]))
		return Line{Kind: Bullet, Text: joinRuns(runs), Runs: runs}
	}

	trimmed := strings.TrimSpace(lead)
	if trimmed == "" {
		return Line{Kind: Blank}
	}

	runs := SplitRuns(trimmed)
	if hasBold(runs) || hasEmptyPair(trimmed) {
		return Line{Kind: Emphasized, Text: joinRuns(runs), Runs: runs}
	}

	return Line{Kind: Plain, Text: trimmed, Runs: plainRuns(trimmed)}
}

// SplitRuns splits text at paired ** markers. Text inside a pair becomes a
// bold run; an unpaired marker is kept as literal text.
func SplitRuns(text string) []Run {
	var runs []Run
	appendRun := func(s string, bold bool) {
		if s == "" {
			return
		}
		if n := len(runs); n > 0 && runs[n-1].Bold == bold {
			runs[n-1].Text += s
			return
		}
		runs = append(runs, Run{Text: s, Bold: bold})
	}

	rest := text
	for {
		open := strings.Index(rest, boldMarker)
		if open < 0 {
			break
		}
		closeAt := strings.Index(rest[open+len(boldMarker):], boldMarker)
		if closeAt < 0 {
			break
		}
		closeAt += open + len(boldMarker)

		appendRun(rest[:open], false)
		appendRun(rest[open+len(boldMarker):closeAt], true)
		rest = rest[closeAt+len(boldMarker):]
	}
	appendRun(rest, false)

	return runs
}

func stripBold(text string) string {
	return joinRuns(SplitRuns(text))
}

func joinRuns(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

func plainRuns(text string) []Run {
	if text == "" {
		return nil
	}
	return []Run{{Text: text}}
}

func hasBold(runs []Run) bool {
	for _, r := range runs {
		if r.Bold {
			return true
		}
	}
	return false
}

// hasEmptyPair reports whether text contains a "****" pair, which SplitRuns
// drops without producing a bold run.
func hasEmptyPair(text string) bool {
	return strings.Contains(text, boldMarker+boldMarker)
}
