package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Pathfile errors
	ErrNoPathfile        ErrorCode = "NO_PATHFILE"
	ErrMalformedPathfile ErrorCode = "MALFORMED_PATHFILE"
	ErrInvalidPath       ErrorCode = "INVALID_PATH"
	ErrPathfileRead      ErrorCode = "PATHFILE_READ"
)

// PathologicalError represents a structured error with code and details
type PathologicalError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PathologicalError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PathologicalError) Unwrap() error {
	return e.Wrapped
}

// Is matches any PathologicalError carrying the same code
func (e *PathologicalError) Is(target error) bool {
	var targetErr *PathologicalError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PathologicalError with the given code and message
func New(code ErrorCode, message string) *PathologicalError {
	return &PathologicalError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PathologicalError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PathologicalError {
	return &PathologicalError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PathologicalError
func Wrap(err error, code ErrorCode, message string) *PathologicalError {
	if err == nil {
		return nil
	}
	return &PathologicalError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PathologicalError {
	if err == nil {
		return nil
	}
	return &PathologicalError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PathologicalError) WithDetail(key string, value interface{}) *PathologicalError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pathErr *PathologicalError
	if errors.As(err, &pathErr) {
		return pathErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PathologicalError
func GetErrorCode(err error) ErrorCode {
	var pathErr *PathologicalError
	if errors.As(err, &pathErr) {
		return pathErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PathologicalError
func GetErrorDetails(err error) map[string]interface{} {
	var pathErr *PathologicalError
	if errors.As(err, &pathErr) {
		return pathErr.Details
	}
	return nil
}
