package markup

import "strings"

// Options controls document-level classification.
type Options struct {
	// LegacyHeadings promotes plain lines that look like section titles to
	// headings, but only when the text has no explicit "### " heading.
	LegacyHeadings bool
}

// ClassifyText classifies every line of text in order.
func ClassifyText(text string, opts Options) []Line {
	if text == "" {
		return nil
	}

	rawLines := strings.Split(text, "\n")
	lines := make([]Line, 0, len(rawLines))
	explicitHeadings := false
	for _, raw := range rawLines {
		line := Classify(raw)
		if line.Kind == Heading {
			explicitHeadings = true
		}
		lines = append(lines, line)
	}

	if opts.LegacyHeadings && !explicitHeadings {
		for i := range lines {
			if lines[i].Kind == Plain && LooksLikeHeading(lines[i].Text) {
				lines[i].Kind = Heading
			}
		}
	}

	return lines
}

// Blocks applies the spacing rule shared by every output format: blank lines
// before the first content and after the last content are dropped, and
// consecutive blank lines collapse into one.
func Blocks(lines []Line) []Line {
	out := make([]Line, 0, len(lines))
	pendingBlank := false
	for _, line := range lines {
		if line.Kind == Blank {
			pendingBlank = len(out) > 0
			continue
		}
		if pendingBlank {
			out = append(out, Line{Kind: Blank})
			pendingBlank = false
		}
		out = append(out, line)
	}
	return out
}

// Count returns the number of lines of the given kind.
func Count(lines []Line, kind Kind) int {
	n := 0
	for _, line := range lines {
		if line.Kind == kind {
			n++
		}
	}
	return n
}
