// Package rendering turns classified resume lines into DOCX and PDF documents.
package rendering

import "fmt"

// TemplateError represents an error executing one of the WordprocessingML
// part templates
type TemplateError struct {
	Part  string
	Cause error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Part, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Part)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a failure while building an output document
type RenderError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error (%s): %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("render error (%s): %s", e.Format, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
