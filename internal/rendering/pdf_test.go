package rendering

import (
	"bytes"
	"io"
	"math"
	"sort"
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/markup"
	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emitRawPDF renders without stream compression so page content can be
// inspected directly.
func emitRawPDF(t *testing.T, text string, id styles.TemplateID) string {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	e := NewPDFEmitter(logger)
	e.Compress = false
	data, err := e.Emit(linesOf(text), styles.Resolve(id))
	require.NoError(t, err)
	return string(data)
}

func extractText(t *testing.T, data []byte) (string, int) {
	t.Helper()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	rs, err := r.GetPlainText()
	require.NoError(t, err)
	text, err := io.ReadAll(rs)
	require.NoError(t, err)
	return string(text), r.NumPage()
}

// pdfRow is one line of extracted text and its baseline in points.
type pdfRow struct {
	text string
	y    float64
}

// pdfRows returns text rows from every page, top to bottom. Characters with
// the same baseline form one row.
func pdfRows(t *testing.T, data []byte) []pdfRow {
	t.Helper()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var rows []pdfRow
	for i := 1; i <= r.NumPage(); i++ {
		var page []pdfRow
		for _, txt := range r.Page(i).Content().Text {
			if n := len(page); n > 0 && math.Abs(page[n-1].y-txt.Y) < 0.5 {
				page[n-1].text += txt.S
				continue
			}
			page = append(page, pdfRow{text: txt.S, y: txt.Y})
		}
		sort.SliceStable(page, func(a, b int) bool { return page[a].y > page[b].y })
		rows = append(rows, page...)
	}
	return rows
}

func TestPDFEmitter_Header(t *testing.T) {
	data, err := NewPDFEmitter(nil).Emit(linesOf(sampleResume), styles.Resolve(styles.Simple))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestPDFEmitter_TextIsExtractable(t *testing.T) {
	data, err := NewPDFEmitter(nil).Emit(linesOf(sampleResume), styles.Resolve(styles.Simple))
	require.NoError(t, err)

	text, pages := extractText(t, data)
	assert.Equal(t, 1, pages)
	assert.Contains(t, text, "Experience")
	assert.Contains(t, text, "Education")
	assert.Contains(t, text, "Computer Science")
	assert.NotContains(t, text, "###")
	assert.NotContains(t, text, "**")
}

func TestPDFEmitter_ClassicDrawsRule(t *testing.T) {
	raw := emitRawPDF(t, sampleResume, styles.Classic)
	assert.Contains(t, raw, "(Experience)Tj")
	assert.Contains(t, raw, " l S")
	assert.Contains(t, raw, "/BaseFont /Times-Bold")
}

func TestPDFEmitter_SimpleDrawsRule(t *testing.T) {
	raw := emitRawPDF(t, "### Experience\nDid work.", styles.Simple)
	assert.Contains(t, raw, "(Experience)Tj")
	assert.Contains(t, raw, " l S")
}

func TestPDFEmitter_NoRuleWithoutHeadings(t *testing.T) {
	raw := emitRawPDF(t, "Did work.", styles.Simple)
	assert.NotContains(t, raw, " l S")
}

func TestPDFEmitter_ModernUppercaseWithoutRule(t *testing.T) {
	raw := emitRawPDF(t, sampleResume, styles.Modern)
	assert.Contains(t, raw, "(EXPERIENCE)Tj")
	assert.Contains(t, raw, "(EDUCATION)Tj")
	assert.Contains(t, raw, "(Jane Doe)Tj")
	assert.NotContains(t, raw, " l S")
	assert.Contains(t, raw, "(- )Tj")

	text, _ := extractText(t, []byte(raw))
	assert.Contains(t, text, "EXPERIENCE")
	assert.NotContains(t, text, "Experience")
}

func TestPDFEmitter_ModernScenario(t *testing.T) {
	data, err := NewPDFEmitter(nil).Emit(linesOf(scenarioResume), styles.Resolve(styles.Modern))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	rows := pdfRows(t, data)
	require.Len(t, rows, 4)
	assert.Equal(t, "EXPERIENCE", rows[0].text)
	assert.Contains(t, rows[1].text, "Built a pipeline")
	assert.Equal(t, "Engineer at Acme", rows[2].text)
	assert.Equal(t, "Did good work.", rows[3].text)
}

func TestPDFEmitter_BoldRunsSwitchFace(t *testing.T) {
	raw := emitRawPDF(t, "Shipped **three** releases", styles.Simple)
	assert.Contains(t, raw, "/BaseFont /Helvetica-Bold")
	assert.Contains(t, raw, "(Shipped )Tj")
	assert.Contains(t, raw, "(three)Tj")
	assert.Contains(t, raw, "( releases)Tj")
	assert.NotContains(t, raw, "**")

	// regular, bold, regular
	assert.Regexp(t, `(?s)/F\d+ [\d.]+ Tf.*\(Shipped \)Tj.*/F\d+ [\d.]+ Tf.*\(three\)Tj.*/F\d+ [\d.]+ Tf.*\( releases\)Tj`, raw)
}

func TestPDFEmitter_StructureRoundTrip(t *testing.T) {
	lines := linesOf(sampleResume)
	headings := markup.Count(lines, markup.Heading)
	bullets := markup.Count(lines, markup.Bullet)
	plain := markup.Count(lines, markup.Plain) + markup.Count(lines, markup.Emphasized)

	data, err := NewPDFEmitter(nil).Emit(lines, styles.Resolve(styles.Simple))
	require.NoError(t, err)

	rows := pdfRows(t, data)
	require.Len(t, rows, headings+bullets+plain)

	var texts []string
	for _, r := range rows {
		texts = append(texts, r.text)
	}
	assert.Equal(t, "Jane Doe", texts[0])
	assert.Equal(t, "Experience", texts[1])
	assert.True(t, strings.HasSuffix(texts[2], "Built APIs in Go"))
	assert.True(t, strings.HasSuffix(texts[3], "Led a team of 4"))
	assert.Equal(t, "Education", texts[4])
	assert.Equal(t, "BSc Computer Science", texts[5])
}

func TestPDFEmitter_SingleSpacerForBlankRun(t *testing.T) {
	emitRows := func(text string) []pdfRow {
		data, err := NewPDFEmitter(nil).Emit(linesOf(text), styles.Resolve(styles.Simple))
		require.NoError(t, err)
		rows := pdfRows(t, data)
		require.Len(t, rows, 2)
		return rows
	}

	many := emitRows("Alpha\n\n\n\n\nBeta")
	one := emitRows("Alpha\n\nBeta")
	none := emitRows("Alpha\nBeta")

	assert.InDelta(t, one[0].y-one[1].y, many[0].y-many[1].y, 0.01)
	assert.Greater(t, many[0].y-many[1].y, none[0].y-none[1].y)
}

func TestPDFEmitter_PageBreaks(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 120; i++ {
		sb.WriteString("* Delivered a measurable improvement to the platform\n")
	}
	data, err := NewPDFEmitter(nil).Emit(linesOf(sb.String()), styles.Resolve(styles.Classic))
	require.NoError(t, err)

	_, pages := extractText(t, data)
	assert.Greater(t, pages, 1)
}

func TestPDFEmitter_ReplacesUnencodableCharacters(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	e := NewPDFEmitter(logger)
	e.Compress = false

	data, err := e.Emit(linesOf("Café 日本"), styles.Resolve(styles.Simple))
	require.NoError(t, err)
	assert.Contains(t, string(data), "(Caf\xe9 ??)Tj")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, 2, entry.Data["replaced_characters"])
}

func TestPDFEmitter_NoWarningForEncodableText(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	_, err := NewPDFEmitter(logger).Emit(linesOf(sampleResume), styles.Resolve(styles.Simple))
	require.NoError(t, err)
	assert.Empty(t, hook.AllEntries())
}

func TestPDFEmitter_EmptyInput(t *testing.T) {
	data, err := NewPDFEmitter(nil).Emit(nil, styles.Resolve(styles.Simple))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestPDFEmitter_Metadata(t *testing.T) {
	e := NewPDFEmitter(nil)
	assert.Equal(t, "application/pdf", e.ContentType())
	assert.Equal(t, "pdf", e.FileExtension())
}
