package rendering

import (
	"bytes"

	"github.com/jonathan/resume-builder/internal/markup"
	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	pdfContentType = "application/pdf"

	// pdfBottomMargin is where automatic page breaks kick in, in mm.
	pdfBottomMargin = 15.0
	// headingCellHeight is the height of a heading line, in mm.
	headingCellHeight = 8.0
	ruleLineWidth     = 0.2
)

// PDFEmitter writes A4 portrait PDF documents using the core fonts.
type PDFEmitter struct {
	logger logrus.FieldLogger
	// Compress enables stream compression. Disabled in tests to inspect page
	// content directly.
	Compress bool
}

// NewPDFEmitter creates a PDF emitter with compressed output.
func NewPDFEmitter(logger logrus.FieldLogger) *PDFEmitter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &PDFEmitter{logger: logger, Compress: true}
}

// ContentType returns the PDF MIME type.
func (e *PDFEmitter) ContentType() string {
	return pdfContentType
}

// FileExtension returns "pdf".
func (e *PDFEmitter) FileExtension() string {
	return string(FormatPDF)
}

// Emit renders lines onto A4 pages. Lines are expected to have been passed
// through markup.Blocks.
func (e *PDFEmitter) Emit(lines []markup.Line, profile styles.Profile) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(e.Compress)
	pdf.SetMargins(profile.PDFMargins.Side, profile.PDFMargins.Top, profile.PDFMargins.Side)
	pdf.SetAutoPageBreak(true, pdfBottomMargin)
	pdf.SetTitle("Resume", false)
	pdf.SetCreator("resume-builder", false)
	pdf.SetLineWidth(ruleLineWidth)
	pdf.AddPage()

	pw := &pageWriter{
		pdf:     pdf,
		profile: profile,
		enc:     &winAnsiEncoder{},
		lh:      profile.Spacing.LineHeightMM,
	}
	pw.bodyFont("")

	for _, line := range lines {
		switch line.Kind {
		case markup.Heading:
			pw.heading(line)
		case markup.Bullet:
			pw.bullet(line)
		case markup.Blank:
			pdf.Ln(pw.lh * profile.Spacing.BlankGap)
		default:
			pw.runs(line.Runs)
			pdf.Ln(pw.lh)
		}
		if pdf.Err() {
			break
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to lay out pdf")
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, errors.Wrap(err, "failed to write pdf")
	}

	if pw.enc.replaced > 0 {
		e.logger.WithFields(logrus.Fields{
			"template":            profile.ID.String(),
			"replaced_characters": pw.enc.replaced,
		}).Warn("PDF export replaced characters outside Windows-1252")
	}

	return out.Bytes(), nil
}

// pageWriter holds the state of one Emit call.
type pageWriter struct {
	pdf     *gofpdf.Fpdf
	profile styles.Profile
	enc     *winAnsiEncoder
	lh      float64
}

func (w *pageWriter) bodyFont(style string) {
	w.pdf.SetFont(w.profile.BodyFont.PDF, style, w.profile.BodySize)
}

func (w *pageWriter) heading(line markup.Line) {
	w.pdf.SetFont(w.profile.HeadingFont.PDF, "B", w.profile.HeadingSize)
	w.pdf.MultiCell(0, headingCellHeight, w.enc.encode(headingText(line.Text, w.profile)), "", "L", false)

	if w.profile.Decoration.PDFRule {
		left, _, right, _ := w.pdf.GetMargins()
		pageWidth, _ := w.pdf.GetPageSize()
		y := w.pdf.GetY()
		w.pdf.Line(left, y, pageWidth-right, y)
	}

	w.pdf.Ln(w.lh * w.profile.Spacing.HeadingGap)
	w.bodyFont("")
}

// bullet draws the glyph at the bullet indent and wraps the item text under
// its first character.
func (w *pageWriter) bullet(line markup.Line) {
	left, _, _, _ := w.pdf.GetMargins()
	glyphX := left + w.profile.Bullet.IndentMM

	w.bodyFont("")
	prefix := w.enc.encode(bulletPrefix(w.profile))
	textX := glyphX + w.pdf.GetStringWidth(prefix)

	w.pdf.SetLeftMargin(textX)
	w.pdf.SetX(glyphX)
	w.pdf.Write(w.lh, prefix)
	w.runs(line.Runs)
	w.pdf.Ln(w.lh)
	w.pdf.SetLeftMargin(left)
	w.pdf.SetX(left)
}

// runs writes text runs as flowing text, switching between regular and bold
// faces at run boundaries.
func (w *pageWriter) runs(runs []markup.Run) {
	for _, r := range runs {
		style := ""
		if r.Bold {
			style = "B"
		}
		w.bodyFont(style)
		w.pdf.Write(w.lh, w.enc.encode(r.Text))
	}
	w.bodyFont("")
}
