package services

import (
	"errors"
	"fmt"
)

var (
	// ErrPaperNotFound is returned when the paper under analysis does not
	// exist. The message is part of the response contract: orchestrators
	// match on "Analysis failed: Paper not found".
	ErrPaperNotFound = errors.New("Paper not found")

	// ErrAnalysisNotFound is returned when no gap analysis matches the id
	ErrAnalysisNotFound = errors.New("gap analysis not found")

	// ErrGapNotFound is returned when no research gap matches the id
	ErrGapNotFound = errors.New("research gap not found")

	// ErrNotRetryable is returned when retrying an analysis that is not FAILED
	ErrNotRetryable = errors.New("only failed analyses can be retried")
)

// ValidationError wraps field-specific validation errors on inbound requests.
// Field names use the wire casing so the error message points at the JSON
// key the sender actually wrote.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
