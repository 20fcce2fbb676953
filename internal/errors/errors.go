package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// InvariantViolation indicates a graph construction contract was broken
	InvariantViolation ErrorCode = "INVARIANT_VIOLATION"
	// FactsInvalid indicates the frontend fact file could not be decoded
	FactsInvalid ErrorCode = "FACTS_INVALID"
	// ConfigInvalid indicates the configuration file could not be loaded
	ConfigInvalid ErrorCode = "CONFIG_INVALID"
	// ProfileInvalid indicates a criteria profile file could not be loaded
	ProfileInvalid ErrorCode = "PROFILE_INVALID"
	// UnsupportedFormat indicates an unknown input or output format
	UnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// ExportFailed indicates the snapshot export could not be written
	ExportFailed ErrorCode = "EXPORT_FAILED"
	// InternalError indicates an unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// AnalysisError represents an archlens error with a stable code and message
type AnalysisError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	cause   error       // Underlying error (not exported to JSON)
}

// New creates a new AnalysisError
func New(code ErrorCode, message string, cause error) *AnalysisError {
	return &AnalysisError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Invariant creates an INVARIANT_VIOLATION error. These signal a broken
// Graph Store contract, never a user-facing condition.
func Invariant(format string, args ...interface{}) *AnalysisError {
	return &AnalysisError{
		Code:    InvariantViolation,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface
func (e *AnalysisError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AnalysisError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *AnalysisError) WithDetails(details interface{}) *AnalysisError {
	e.Details = details
	return e
}

// IsCode reports whether err is an AnalysisError with the given code
func IsCode(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}
	ae, ok := err.(*AnalysisError)
	return ok && ae.Code == code
}
