package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplateID(t *testing.T) {
	tests := []struct {
		name     string
		expected TemplateID
	}{
		{"simple", Simple},
		{"classic", Classic},
		{"modern", Modern},
		{" Classic ", Classic},
		{"MODERN", Modern},
		{"", Simple},
		{"unknownTemplate", Simple},
		{"clasic", Simple},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseTemplateID(tt.name))
		})
	}
}

func TestLookup_FallsBackToSimple(t *testing.T) {
	simple := Lookup("simple")
	assert.Equal(t, simple, Lookup("unknownTemplate"))
	assert.Equal(t, simple, Lookup(""))
	assert.Equal(t, simple, Resolve(TemplateID(42)))
}

func TestResolve_BuiltInProfiles(t *testing.T) {
	simple := Resolve(Simple)
	assert.Equal(t, Simple, simple.ID)
	assert.Equal(t, "Calibri", simple.BodyFont.Word)
	assert.Equal(t, "Helvetica", simple.BodyFont.PDF)
	assert.Equal(t, 11.0, simple.BodySize)
	assert.Equal(t, 12.0, simple.HeadingSize)
	assert.False(t, simple.Decoration.DocxRule)
	assert.True(t, simple.Decoration.PDFRule)
	assert.False(t, simple.Decoration.Uppercase)
	assert.Equal(t, 0.75, simple.DocxMargins.Left)
	assert.Equal(t, "•", simple.Bullet.Glyph)
	assert.True(t, simple.Bullet.NativeList)

	classic := Resolve(Classic)
	assert.Equal(t, Classic, classic.ID)
	assert.Equal(t, "Times New Roman", classic.BodyFont.Word)
	assert.Equal(t, "Times", classic.BodyFont.PDF)
	assert.Equal(t, 11.0, classic.BodySize)
	assert.Equal(t, 13.0, classic.HeadingSize)
	assert.True(t, classic.Decoration.DocxRule)
	assert.True(t, classic.Decoration.PDFRule)
	assert.False(t, classic.Decoration.Uppercase)
	assert.Equal(t, 1.0, classic.DocxMargins.Top)
	assert.Equal(t, 20.0, classic.PDFMargins.Side)
	assert.Equal(t, "•", classic.Bullet.Glyph)
	assert.Greater(t, classic.Bullet.IndentTwips, simple.Bullet.IndentTwips)

	modern := Resolve(Modern)
	assert.Equal(t, Modern, modern.ID)
	assert.Equal(t, "Arial", modern.BodyFont.Word)
	assert.Equal(t, "Helvetica", modern.BodyFont.PDF)
	assert.Equal(t, 10.0, modern.BodySize)
	assert.True(t, modern.Decoration.Uppercase)
	assert.False(t, modern.Decoration.DocxRule)
	assert.False(t, modern.Decoration.PDFRule)
	assert.Equal(t, "2E86C1", modern.HeadingColor)
	assert.Equal(t, "-", modern.Bullet.Glyph)
	assert.False(t, modern.Bullet.NativeList)
}

func TestResolve_ReturnsCopies(t *testing.T) {
	p := Resolve(Classic)
	p.BodySize = 99
	p.Bullet.Glyph = "x"

	fresh := Resolve(Classic)
	assert.Equal(t, 11.0, fresh.BodySize)
	assert.Equal(t, "•", fresh.Bullet.Glyph)
}

func TestTemplateID_String(t *testing.T) {
	for _, id := range Templates() {
		assert.Equal(t, id, ParseTemplateID(id.String()))
	}
}

func TestLoadProfiles_MissingTemplate(t *testing.T) {
	data := []byte(`
simple:
  body_size: 11
  heading_size: 12
  bullet: {glyph: "-"}
  spacing: {line_height_mm: 5}
`)
	_, err := loadProfiles(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"classic" is not defined`)
}

func TestLoadProfiles_InvalidYAML(t *testing.T) {
	_, err := loadProfiles([]byte("simple: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse style profiles")
}

func TestLoadProfiles_RejectsZeroSizes(t *testing.T) {
	data := []byte(`
simple: {body_size: 0, heading_size: 12, bullet: {glyph: "-"}, spacing: {line_height_mm: 5}}
classic: {body_size: 11, heading_size: 12, bullet: {glyph: "-"}, spacing: {line_height_mm: 5}}
modern: {body_size: 11, heading_size: 12, bullet: {glyph: "-"}, spacing: {line_height_mm: 5}}
`)
	_, err := loadProfiles(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-positive sizes")
}
