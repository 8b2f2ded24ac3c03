package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/markup"
	"github.com/jonathan/resume-builder/internal/styles"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintOutline summarizes the structure found in classified lines.
func (p *Printer) PrintOutline(lines []markup.Line) {
	if len(lines) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Headings:    %d\n", markup.Count(lines, markup.Heading)))
	sb.WriteString(fmt.Sprintf("Bullets:     %d\n", markup.Count(lines, markup.Bullet)))
	sb.WriteString(fmt.Sprintf("Emphasized:  %d\n", markup.Count(lines, markup.Emphasized)))
	sb.WriteString(fmt.Sprintf("Plain:       %d\n", markup.Count(lines, markup.Plain)))
	sb.WriteString(fmt.Sprintf("Spacers:     %d", markup.Count(lines, markup.Blank)))

	var headings []string
	for _, line := range lines {
		if line.Kind == markup.Heading {
			headings = append(headings, line.Text)
		}
	}
	if len(headings) > 0 {
		sb.WriteString("\n\nSections:\n")
		count := min(len(headings), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("• %s\n", headings[i]))
		}
		if len(headings) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more sections", len(headings)-maxItemsToShow))
		}
	}

	p.printBox("DOCUMENT OUTLINE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTemplates lists the available style profiles.
func (p *Printer) PrintTemplates(profiles []styles.Profile) {
	if len(profiles) == 0 {
		return
	}

	var sb strings.Builder
	for i, profile := range profiles {
		sb.WriteString(fmt.Sprintf("%s\n", profile.ID))
		sb.WriteString(fmt.Sprintf("    Fonts:   %s / %s  %.0fpt body, %.0fpt heading\n",
			profile.BodyFont.Word, profile.BodyFont.PDF, profile.BodySize, profile.HeadingSize))

		var deco []string
		if profile.Decoration.Uppercase {
			deco = append(deco, "uppercase")
		}
		if profile.Decoration.DocxRule {
			deco = append(deco, "docx rule")
		}
		if profile.Decoration.PDFRule {
			deco = append(deco, "pdf rule")
		}
		if profile.HeadingColor != "" {
			deco = append(deco, "#"+profile.HeadingColor)
		}
		if len(deco) == 0 {
			deco = append(deco, "bold")
		}
		sb.WriteString(fmt.Sprintf("    Heading: %s\n", strings.Join(deco, ", ")))
		sb.WriteString(fmt.Sprintf("    Bullet:  %q", profile.Bullet.Glyph))
		if i < len(profiles)-1 {
			sb.WriteString("\n\n")
		}
	}

	p.printBox("EXPORT TEMPLATES", sb.String())
}

// PrintDocument reports a written output file.
func (p *Printer) PrintDocument(path, mimeType string, size int) {
	content := fmt.Sprintf("Path: %s\nType: %s\nSize: %d bytes", path, mimeType, size)
	p.printBox("DOCUMENT WRITTEN", content)
}
