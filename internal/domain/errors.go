package domain

import (
	"errors"
	"fmt"
	"time"
)

// GenerationError represents a standardized error surfaced to callers of the
// documentation pipeline
type GenerationError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`

	cause error
}

// Error implements the error interface
func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains
func (e *GenerationError) Unwrap() error {
	return e.cause
}

// Error codes for different failure scenarios
const (
	ErrConfiguration  = "CONFIGURATION_ERROR"
	ErrGeneration     = "GENERATION_FAILED"
	ErrInvalidInput   = "INVALID_INPUT"
	ErrNotFound       = "NOT_FOUND"
	ErrInternalServer = "INTERNAL_SERVER_ERROR"
)

// NewGenerationError creates a new GenerationError with timestamp
func NewGenerationError(code, message string, cause error) *GenerationError {
	details := ""
	if cause != nil {
		details = cause.Error()
	}
	return &GenerationError{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// NewConfigurationError signals a missing or invalid credential/setting. The
// caller must not have attempted any network I/O before raising this.
func NewConfigurationError(message string) *GenerationError {
	return NewGenerationError(ErrConfiguration, message, nil)
}

// NewGenerationFailure wraps a transport, non-2xx, or malformed-response
// failure from the generation service. Parse failures are the same kind; the
// user sees a single "generation failed" taxonomy.
func NewGenerationFailure(message string, cause error) *GenerationError {
	return NewGenerationError(ErrGeneration, message, cause)
}

// ErrorCode extracts the pipeline error code from err, or empty when err is
// not a GenerationError
func ErrorCode(err error) string {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Code
	}
	return ""
}

// IsConfigurationError reports whether err is a credential/config precondition
// failure
func IsConfigurationError(err error) bool {
	return ErrorCode(err) == ErrConfiguration
}

// IsGenerationFailure reports whether err is a failed generation attempt
func IsGenerationFailure(err error) bool {
	return ErrorCode(err) == ErrGeneration
}

// ValidationError represents input validation errors on API requests
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
	}
}
