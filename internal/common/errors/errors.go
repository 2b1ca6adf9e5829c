// Package errors provides the standardized error taxonomy for the relay pipeline.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// ErrCodeConfiguration signals a missing or placeholder model credential.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	// ErrCodeInvocation signals a transport, auth, or response-shape failure
	// while calling the external model.
	ErrCodeInvocation ErrorCode = "INVOCATION_ERROR"
	// ErrCodeSchema signals that model output was not valid JSON or did not
	// match the itinerary schema.
	ErrCodeSchema ErrorCode = "SCHEMA_ERROR"
	// ErrCodeInvalidRequest signals missing required fields on an incoming
	// request, rejected before any downstream call.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"

	// Envelope codes returned to clients on pipeline failure.
	ErrCodeGeneration    ErrorCode = "GENERATION_ERROR"
	ErrCodeCustomization ErrorCode = "CUSTOMIZATION_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewConfigurationError creates a non-retryable missing-credential error.
func NewConfigurationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfiguration,
		Message:   "Anthropic API key not configured",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvocationError creates a model invocation error carrying the upstream
// HTTP status when one was received (0 for transport failures).
func NewInvocationError(status int, err error) *StandardError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	e := &StandardError{
		Code:      ErrCodeInvocation,
		Message:   "model invocation failed",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
	if status != 0 {
		e.Metadata = map[string]interface{}{"status": status}
	}
	return e
}

// NewSchemaError creates a non-retryable parse/validation error for model output.
func NewSchemaError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSchema,
		Message:   "Invalid response format from AI service",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRequestError creates a non-retryable request validation error.
func NewInvalidRequestError(message string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// CodeOf extracts the ErrorCode from err, or "" when err is not a StandardError.
func CodeOf(err error) ErrorCode {
	var se *StandardError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ""
}

// MessageOf returns the human-readable message for err, falling back to
// err.Error() for plain errors.
func MessageOf(err error) string {
	var se *StandardError
	if stderrors.As(err, &se) {
		return se.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
