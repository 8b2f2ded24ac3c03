package export

import "fmt"

const (
	msgMissingInput  = "Missing resume text or format."
	msgInvalidFormat = "Invalid export format specified."
)

// ValidationError represents a request the caller must fix. Message is safe
// to show to clients.
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
