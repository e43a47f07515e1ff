// Package apierrors provides shared error types for the NCBI clients.
package apierrors

import (
	"fmt"
)

// StatusError indicates a non-2xx HTTP response from an upstream
// endpoint. The operation is aborted; nothing is retried.
type StatusError struct {
	Endpoint   string // "esearch", "esummary", "blast", ...
	StatusCode int    // HTTP status code
	Body       string // truncated response body for diagnostics
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s returned HTTP %d: %s", e.Endpoint, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s returned HTTP %d", e.Endpoint, e.StatusCode)
}

// NewStatusError creates a StatusError, truncating the body snippet.
func NewStatusError(endpoint string, statusCode int, body string) *StatusError {
	return &StatusError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Body:       truncate(body, 200),
	}
}

// ShapeError indicates an upstream response that parsed but did not
// have the expected structure.
type ShapeError struct {
	Endpoint string // endpoint whose response was malformed
	Detail   string // what was missing or wrong
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected %s response shape: %s", e.Endpoint, e.Detail)
}

// NewShapeError creates a ShapeError.
func NewShapeError(endpoint, detail string) *ShapeError {
	return &ShapeError{
		Endpoint: endpoint,
		Detail:   detail,
	}
}

// ValidationError indicates invalid input parameters. It is raised
// before any network call is issued.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value (may be empty for long inputs)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// IsStatus returns true if the error is a StatusError.
func IsStatus(err error) bool {
	_, ok := err.(*StatusError)
	return ok
}

// IsShape returns true if the error is a ShapeError.
func IsShape(err error) bool {
	_, ok := err.(*ShapeError)
	return ok
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
