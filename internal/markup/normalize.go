// Package markup parses the small markdown dialect used by generated resumes
// into classified lines.
package markup

import (
	"regexp"
	"strings"
)

// blankRunPattern matches a line break followed by one or more blank or
// whitespace-only lines.
var blankRunPattern = regexp.MustCompile(`\n(?:[ \t\f\v]*\n)+`)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Normalize collapses runs of blank lines so that at most one blank line
// separates two non-blank lines. Non-blank lines are returned unchanged.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = lineEndings.Replace(text)
	return blankRunPattern.ReplaceAllString(text, "\n\n")
}
