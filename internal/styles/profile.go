// Package styles holds the built-in visual templates used by the document
// emitters.
package styles

// FontFace names one typeface in each output format. PDF output is limited to
// the standard core fonts.
type FontFace struct {
	Word string `yaml:"word"`
	PDF  string `yaml:"pdf"`
}

// Decoration controls how headings are drawn beyond bold text.
type Decoration struct {
	Uppercase bool `yaml:"uppercase"`
	// DocxRule adds a bottom border to the DOCX heading style.
	DocxRule bool `yaml:"docx_rule"`
	// PDFRule draws a full-width line under PDF headings.
	PDFRule bool `yaml:"pdf_rule"`
}

// Margins are DOCX page margins in inches.
type Margins struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// PDFMargins are PDF page margins in millimetres. The bottom margin is fixed
// by the page emitter.
type PDFMargins struct {
	Top  float64 `yaml:"top"`
	Side float64 `yaml:"side"`
}

// BulletStyle controls list items.
type BulletStyle struct {
	Glyph string `yaml:"glyph"`
	// NativeList renders DOCX bullets through a numbering definition instead
	// of a literal glyph.
	NativeList  bool    `yaml:"native_list"`
	IndentTwips int     `yaml:"indent_twips"`
	IndentMM    float64 `yaml:"indent_mm"`
}

// Spacing holds vertical spacing. Paragraph spacing is in points; PDF values
// are in millimetres or fractions of the PDF line height.
type Spacing struct {
	HeadingBefore float64 `yaml:"heading_before"`
	HeadingAfter  float64 `yaml:"heading_after"`
	BodyAfter     float64 `yaml:"body_after"`
	BulletAfter   float64 `yaml:"bullet_after"`
	LineHeightMM  float64 `yaml:"line_height_mm"`
	HeadingGap    float64 `yaml:"heading_gap"`
	BlankGap      float64 `yaml:"blank_gap"`
}

// Profile is the complete set of visual parameters for one template.
type Profile struct {
	ID           TemplateID  `yaml:"-"`
	BodyFont     FontFace    `yaml:"body_font"`
	HeadingFont  FontFace    `yaml:"heading_font"`
	BodySize     float64     `yaml:"body_size"`
	HeadingSize  float64     `yaml:"heading_size"`
	HeadingColor string      `yaml:"heading_color"`
	Decoration   Decoration  `yaml:"decoration"`
	DocxMargins  Margins     `yaml:"docx_margins"`
	PDFMargins   PDFMargins  `yaml:"pdf_margins"`
	Bullet       BulletStyle `yaml:"bullet"`
	Spacing      Spacing     `yaml:"spacing"`
}
