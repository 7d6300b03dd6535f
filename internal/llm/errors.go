package llm

import "fmt"

// LLMError represents an error from the completion client.
type LLMError struct {
	// Type categorizes the error
	Type string

	// Message is a human-readable error message
	Message string

	// Code is the HTTP status code (if applicable)
	Code int

	// Err is the underlying error
	Err error
}

// Error types.
const (
	ErrorTypeNetwork   = "network"
	ErrorTypeAPI       = "api"
	ErrorTypeTimeout   = "timeout"
	ErrorTypeExhausted = "exhausted"
)

// Error implements the error interface.
func (e *LLMError) Error() string {
	if e.Code > 0 {
		return fmt.Sprintf("LLM %s error (code %d): %s", e.Type, e.Code, e.Message)
	}
	return fmt.Sprintf("LLM %s error: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *LLMError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a network error.
func NewNetworkError(err error) *LLMError {
	return &LLMError{
		Type:    ErrorTypeNetwork,
		Message: "failed to reach the completion service",
		Err:     err,
	}
}

// NewAPIError creates an API error with status code.
func NewAPIError(code int, message string) *LLMError {
	return &LLMError{
		Type:    ErrorTypeAPI,
		Code:    code,
		Message: fmt.Sprintf("completion service error: %s", message),
	}
}

// NewExhaustedError creates an error recording that the retry budget ran out.
func NewExhaustedError(attempts int, err error) *LLMError {
	return &LLMError{
		Type:    ErrorTypeExhausted,
		Message: fmt.Sprintf("completion failed after %d attempts", attempts),
		Err:     err,
	}
}

// UnknownRoleError indicates a template was requested for a role outside
// the five recognized roles. This is a programming error, not user input.
type UnknownRoleError struct {
	Role string
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("unknown role: %q", e.Role)
}
