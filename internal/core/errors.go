package core

import "fmt"

// ExtractionError indicates the upstream document-to-text conversion
// produced no usable text. The pipeline must not start.
type ExtractionError struct {
	Message string
	Err     error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("document extraction: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation failure.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
