package rendering

const (
	wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

	docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	// A4 portrait in twentieths of a point.
	a4WidthTwips  = 11906
	a4HeightTwips = 16838

	twipsPerInch  = 1440
	twipsPerPoint = 20

	headingStyleID = "ResumeHeading"
	bulletStyleID  = "ListBullet"
	glyphStyleID   = "ListGlyph"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
  <Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
  <Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>
  <Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>
</Relationships>`

const corePropsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <dc:title>Resume</dc:title>
  <dc:creator>resume-builder</dc:creator>
</cp:coreProperties>`

const stylesTemplate = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="` + wordNamespace + `">
  <w:docDefaults>
    <w:rPrDefault>
      <w:rPr>
        <w:rFonts w:ascii="{{xml .BodyFont}}" w:hAnsi="{{xml .BodyFont}}" w:eastAsia="{{xml .BodyFont}}" w:cs="{{xml .BodyFont}}"/>
        <w:sz w:val="{{.BodySize}}"/>
        <w:szCs w:val="{{.BodySize}}"/>
      </w:rPr>
    </w:rPrDefault>
    <w:pPrDefault>
      <w:pPr>
        <w:spacing w:after="{{.BodyAfter}}" w:line="240" w:lineRule="auto"/>
      </w:pPr>
    </w:pPrDefault>
  </w:docDefaults>
  <w:style w:type="paragraph" w:default="1" w:styleId="Normal">
    <w:name w:val="Normal"/>
    <w:qFormat/>
  </w:style>
  <w:style w:type="paragraph" w:styleId="` + headingStyleID + `">
    <w:name w:val="Resume Heading"/>
    <w:basedOn w:val="Normal"/>
    <w:next w:val="Normal"/>
    <w:qFormat/>
    <w:pPr>
      <w:keepNext/>
      {{- if .Rule}}
      <w:pBdr>
        <w:bottom w:val="single" w:sz="6" w:space="1" w:color="auto"/>
      </w:pBdr>
      {{- end}}
      <w:spacing w:before="{{.HeadingBefore}}" w:after="{{.HeadingAfter}}"/>
      <w:outlineLvl w:val="0"/>
    </w:pPr>
    <w:rPr>
      <w:rFonts w:ascii="{{xml .HeadingFont}}" w:hAnsi="{{xml .HeadingFont}}" w:cs="{{xml .HeadingFont}}"/>
      <w:b/>
      <w:bCs/>
      {{- if .HeadingColor}}
      <w:color w:val="{{xml .HeadingColor}}"/>
      {{- end}}
      <w:sz w:val="{{.HeadingSize}}"/>
      <w:szCs w:val="{{.HeadingSize}}"/>
    </w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="` + bulletStyleID + `">
    <w:name w:val="List Bullet"/>
    <w:basedOn w:val="Normal"/>
    <w:pPr>
      <w:numPr>
        <w:ilvl w:val="0"/>
        <w:numId w:val="1"/>
      </w:numPr>
      <w:spacing w:after="{{.BulletAfter}}"/>
      <w:ind w:left="{{.BulletIndent}}" w:hanging="{{.BulletHanging}}"/>
    </w:pPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="` + glyphStyleID + `">
    <w:name w:val="List Glyph"/>
    <w:basedOn w:val="Normal"/>
    <w:pPr>
      <w:spacing w:after="{{.BulletAfter}}"/>
      <w:ind w:left="{{.BulletIndent}}" w:hanging="{{.BulletHanging}}"/>
    </w:pPr>
  </w:style>
</w:styles>`

const numberingTemplate = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:numbering xmlns:w="` + wordNamespace + `">
  <w:abstractNum w:abstractNumId="0">
    <w:multiLevelType w:val="singleLevel"/>
    <w:lvl w:ilvl="0">
      <w:start w:val="1"/>
      <w:numFmt w:val="bullet"/>
      <w:lvlText w:val="{{xml .BulletGlyph}}"/>
      <w:lvlJc w:val="left"/>
      <w:pPr>
        <w:ind w:left="{{.BulletIndent}}" w:hanging="{{.BulletHanging}}"/>
      </w:pPr>
    </w:lvl>
  </w:abstractNum>
  <w:num w:numId="1">
    <w:abstractNumId w:val="0"/>
  </w:num>
</w:numbering>`

const documentTemplate = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="` + wordNamespace + `">
  <w:body>
{{- range .Paragraphs}}
    <w:p>
      {{- if .StyleID}}<w:pPr><w:pStyle w:val="{{.StyleID}}"/></w:pPr>{{end}}
      {{- range .Runs}}<w:r>{{if .Bold}}<w:rPr><w:b/><w:bCs/></w:rPr>{{end}}<w:t xml:space="preserve">{{xml .Text}}</w:t></w:r>{{end -}}
    </w:p>
{{- end}}
    <w:sectPr>
      <w:pgSz w:w="{{.PageWidth}}" w:h="{{.PageHeight}}"/>
      <w:pgMar w:top="{{.MarginTop}}" w:right="{{.MarginRight}}" w:bottom="{{.MarginBottom}}" w:left="{{.MarginLeft}}" w:header="720" w:footer="720" w:gutter="0"/>
    </w:sectPr>
  </w:body>
</w:document>`
