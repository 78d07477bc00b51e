package billing

import "fmt"

// ValidationError reports an invalid input field. Line is the zero-based
// row index, or -1 when the error is not tied to a particular row.
type ValidationError struct {
	Line    int
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Line >= 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line+1, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Line: -1, Field: field, Message: message}
}

// ComputationError reports arithmetic that cannot be carried out, such as
// a reverse derivation with a zero denominator.
type ComputationError struct {
	Line    int
	Message string
}

func (e *ComputationError) Error() string {
	if e.Line >= 0 {
		return fmt.Sprintf("line %d: %s", e.Line+1, e.Message)
	}
	return e.Message
}
