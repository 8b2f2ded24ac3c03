package rendering

import (
	"archive/zip"
	"bytes"
	"math"
	"text/template"

	"github.com/jonathan/resume-builder/internal/markup"
	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/pkg/errors"
)

// bulletHangingTwips is the distance between a bullet glyph and its text.
const bulletHangingTwips = 360

var partFuncs = template.FuncMap{
	"xml": EscapeXML,
}

var (
	stylesTmpl    = template.Must(template.New("styles.xml").Funcs(partFuncs).Parse(stylesTemplate))
	numberingTmpl = template.Must(template.New("numbering.xml").Funcs(partFuncs).Parse(numberingTemplate))
	documentTmpl  = template.Must(template.New("document.xml").Funcs(partFuncs).Parse(documentTemplate))
)

// styleData is the data passed to the styles and numbering templates.
type styleData struct {
	BodyFont      string
	HeadingFont   string
	BodySize      int // half-points
	HeadingSize   int // half-points
	HeadingColor  string
	Rule          bool
	HeadingBefore int // twips
	HeadingAfter  int
	BodyAfter     int
	BulletAfter   int
	BulletGlyph   string
	BulletIndent  int
	BulletHanging int
}

type docxRun struct {
	Text string
	Bold bool
}

type docxParagraph struct {
	StyleID string
	Runs    []docxRun
}

// documentData is the data passed to the document template.
type documentData struct {
	Paragraphs   []docxParagraph
	PageWidth    int
	PageHeight   int
	MarginTop    int
	MarginRight  int
	MarginBottom int
	MarginLeft   int
}

// DOCXEmitter writes WordprocessingML packages.
type DOCXEmitter struct{}

// NewDOCXEmitter creates a DOCX emitter.
func NewDOCXEmitter() *DOCXEmitter {
	return &DOCXEmitter{}
}

// ContentType returns the DOCX MIME type.
func (e *DOCXEmitter) ContentType() string {
	return docxContentType
}

// FileExtension returns "docx".
func (e *DOCXEmitter) FileExtension() string {
	return string(FormatDOCX)
}

// Emit renders lines as a DOCX package. Lines are expected to have been
// passed through markup.Blocks; each Blank line becomes one empty spacer
// paragraph.
func (e *DOCXEmitter) Emit(lines []markup.Line, profile styles.Profile) ([]byte, error) {
	sd := newStyleData(profile)

	doc := documentData{
		Paragraphs:   buildParagraphs(lines, profile),
		PageWidth:    a4WidthTwips,
		PageHeight:   a4HeightTwips,
		MarginTop:    inchesToTwips(profile.DocxMargins.Top),
		MarginRight:  inchesToTwips(profile.DocxMargins.Right),
		MarginBottom: inchesToTwips(profile.DocxMargins.Bottom),
		MarginLeft:   inchesToTwips(profile.DocxMargins.Left),
	}

	parts := []struct {
		name string
		tmpl *template.Template
		data any
	}{
		{name: "word/styles.xml", tmpl: stylesTmpl, data: sd},
		{name: "word/numbering.xml", tmpl: numberingTmpl, data: sd},
		{name: "word/document.xml", tmpl: documentTmpl, data: doc},
	}

	rendered := make(map[string][]byte, len(parts))
	for _, part := range parts {
		var buf bytes.Buffer
		if err := part.tmpl.Execute(&buf, part.data); err != nil {
			return nil, &TemplateError{Part: part.name, Cause: err}
		}
		rendered[part.name] = buf.Bytes()
	}

	// [Content_Types].xml goes first so the package starts with it.
	entries := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"docProps/core.xml", []byte(corePropsXML)},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML)},
		{"word/styles.xml", rendered["word/styles.xml"]},
		{"word/numbering.xml", rendered["word/numbering.xml"]},
		{"word/document.xml", rendered["word/document.xml"]},
	}

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	for _, entry := range entries {
		w, err := zw.Create(entry.name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create %s", entry.name)
		}
		if _, err := w.Write(entry.data); err != nil {
			return nil, errors.Wrapf(err, "failed to write %s", entry.name)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize docx package")
	}

	return out.Bytes(), nil
}

func newStyleData(profile styles.Profile) styleData {
	return styleData{
		BodyFont:      profile.BodyFont.Word,
		HeadingFont:   profile.HeadingFont.Word,
		BodySize:      pointsToHalfPoints(profile.BodySize),
		HeadingSize:   pointsToHalfPoints(profile.HeadingSize),
		HeadingColor:  profile.HeadingColor,
		Rule:          profile.Decoration.DocxRule,
		HeadingBefore: pointsToTwips(profile.Spacing.HeadingBefore),
		HeadingAfter:  pointsToTwips(profile.Spacing.HeadingAfter),
		BodyAfter:     pointsToTwips(profile.Spacing.BodyAfter),
		BulletAfter:   pointsToTwips(profile.Spacing.BulletAfter),
		BulletGlyph:   profile.Bullet.Glyph,
		BulletIndent:  profile.Bullet.IndentTwips,
		BulletHanging: bulletHangingTwips,
	}
}

// buildParagraphs maps each line to one paragraph.
func buildParagraphs(lines []markup.Line, profile styles.Profile) []docxParagraph {
	paragraphs := make([]docxParagraph, 0, len(lines))
	for _, line := range lines {
		switch line.Kind {
		case markup.Blank:
			paragraphs = append(paragraphs, docxParagraph{})
		case markup.Heading:
			paragraphs = append(paragraphs, docxParagraph{
				StyleID: headingStyleID,
				Runs:    []docxRun{{Text: headingText(line.Text, profile), Bold: true}},
			})
		case markup.Bullet:
			if profile.Bullet.NativeList {
				paragraphs = append(paragraphs, docxParagraph{
					StyleID: bulletStyleID,
					Runs:    toDocxRuns(line.Runs),
				})
				continue
			}
			runs := append([]docxRun{{Text: bulletPrefix(profile)}}, toDocxRuns(line.Runs)...)
			paragraphs = append(paragraphs, docxParagraph{StyleID: glyphStyleID, Runs: runs})
		default:
			paragraphs = append(paragraphs, docxParagraph{Runs: toDocxRuns(line.Runs)})
		}
	}
	return paragraphs
}

func toDocxRuns(runs []markup.Run) []docxRun {
	out := make([]docxRun, len(runs))
	for i, r := range runs {
		out[i] = docxRun{Text: r.Text, Bold: r.Bold}
	}
	return out
}

func pointsToHalfPoints(pt float64) int {
	return int(math.Round(pt * 2))
}

func pointsToTwips(pt float64) int {
	return int(math.Round(pt * twipsPerPoint))
}

func inchesToTwips(in float64) int {
	return int(math.Round(in * twipsPerInch))
}
