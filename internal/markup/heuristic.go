package markup

import "strings"

// sectionTitles are the section names recognised by LooksLikeHeading.
var sectionTitles = []string{
	"Experience", "Work Experience", "Employment History",
	"Education",
	"Skills", "Technical Skills", "Professional Skills",
	"Projects",
	"Summary", "Objective", "Profile",
	"Contact", "Personal Information",
}

// maxHeadingLength bounds the length of a line that can be taken for a
// section title.
const maxHeadingLength = 50

var sectionWords = func() map[string]bool {
	words := make(map[string]bool)
	for _, title := range sectionTitles {
		for _, w := range strings.Fields(strings.ToLower(title)) {
			words[w] = true
		}
	}
	return words
}()

// LooksLikeHeading reports whether an unmarked line reads like a resume
// section title: short, and either ending in a colon or naming a known
// section.
func LooksLikeHeading(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) >= maxHeadingLength {
		return false
	}

	lower := strings.ToLower(trimmed)
	if !strings.HasSuffix(trimmed, ":") && !containsSectionTitle(lower) {
		return false
	}

	words := strings.Fields(strings.ReplaceAll(lower, ":", ""))
	if len(words) <= 3 {
		return true
	}
	for _, w := range words {
		if sectionWords[w] {
			return true
		}
	}
	return false
}

func containsSectionTitle(lower string) bool {
	for _, title := range sectionTitles {
		if strings.Contains(lower, strings.ToLower(title)) {
			return true
		}
	}
	return false
}
