package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/markup"
	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format is an output document format.
type Format string

const (
	// FormatDOCX is the Office Open XML word-processing format.
	FormatDOCX Format = "docx"
	// FormatPDF is the Portable Document Format.
	FormatPDF Format = "pdf"
)

// Formats lists the supported output formats.
func Formats() []Format {
	return []Format{FormatDOCX, FormatPDF}
}

// ParseFormat maps a format name to a Format. The match is exact.
func ParseFormat(name string) (Format, bool) {
	switch Format(name) {
	case FormatDOCX:
		return FormatDOCX, true
	case FormatPDF:
		return FormatPDF, true
	default:
		return "", false
	}
}

// Emitter renders classified lines into one document format.
// Implementations must not keep per-call state on the receiver.
type Emitter interface {
	Emit(lines []markup.Line, profile styles.Profile) ([]byte, error)
	ContentType() string
	FileExtension() string
}

// NewEmitter returns the emitter for format.
func NewEmitter(format Format, logger logrus.FieldLogger) (Emitter, error) {
	switch format {
	case FormatDOCX:
		return NewDOCXEmitter(), nil
	case FormatPDF:
		return NewPDFEmitter(logger), nil
	default:
		return nil, fmt.Errorf("unsupported format: %q", format)
	}
}

// headingText applies the profile's heading decoration to text.
func headingText(text string, profile styles.Profile) string {
	if profile.Decoration.Uppercase {
		// Casers are stateful; build one per call.
		return cases.Upper(language.Und).String(text)
	}
	return text
}

// bulletPrefix is the literal prefix written before a bullet item when the
// format does not draw the glyph itself.
func bulletPrefix(profile styles.Profile) string {
	return strings.TrimSpace(profile.Bullet.Glyph) + " "
}
