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

	// Path resolution errors
	ErrUnknownHomeUser ErrorCode = "UNKNOWN_HOME_USER"
	ErrHomeLookup      ErrorCode = "HOME_LOOKUP"
	ErrWorkDir         ErrorCode = "WORKDIR"

	// Backing store errors
	ErrStoreRead  ErrorCode = "STORE_READ"
	ErrStoreWrite ErrorCode = "STORE_WRITE"

	// Input errors
	ErrInputRead ErrorCode = "INPUT_READ"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// XfilesError represents a structured error with code and details
type XfilesError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *XfilesError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *XfilesError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an XfilesError with the same code
func (e *XfilesError) Is(target error) bool {
	var targetErr *XfilesError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new XfilesError with the given code and message
func New(code ErrorCode, message string) *XfilesError {
	return &XfilesError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new XfilesError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *XfilesError {
	return &XfilesError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an XfilesError.
// A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *XfilesError {
	if err == nil {
		return nil
	}
	return &XfilesError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *XfilesError {
	if err == nil {
		return nil
	}
	return &XfilesError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *XfilesError) WithDetail(key string, value interface{}) *XfilesError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *XfilesError) WithDetails(details map[string]interface{}) *XfilesError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var xfErr *XfilesError
	if errors.As(err, &xfErr) {
		return xfErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an XfilesError
func GetErrorCode(err error) ErrorCode {
	var xfErr *XfilesError
	if errors.As(err, &xfErr) {
		return xfErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an XfilesError
func GetErrorDetails(err error) map[string]interface{} {
	var xfErr *XfilesError
	if errors.As(err, &xfErr) {
		return xfErr.Details
	}
	return nil
}
