// Package types provides request and response types shared by the export
// service and its HTTP boundary.
package types

import "github.com/go-playground/validator/v10"

// ExportRequest is a request to render resume text as a document.
type ExportRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
	Format     string `json:"format" validate:"required"`
	// Template names a style profile. Unknown or empty names use "simple".
	Template string `json:"template,omitempty"`
}

// Validate checks that the required fields are present.
func (r *ExportRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// TemplateInfo describes one export template.
type TemplateInfo struct {
	ID          string `json:"id"`
	BodyFont    string `json:"body_font"`
	HeadingFont string `json:"heading_font"`
	Uppercase   bool   `json:"uppercase_headings"`
	DocxRule    bool   `json:"docx_heading_rule"`
	PDFRule     bool   `json:"pdf_heading_rule"`
}

// TemplatesResponse lists the templates and formats the service supports.
type TemplatesResponse struct {
	Templates []TemplateInfo `json:"templates"`
	Formats   []string       `json:"formats"`
	Default   string         `json:"default_template"`
}

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
