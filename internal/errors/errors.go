package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeValidation indicates invalid input data.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "internal"
	// ErrCodeUnauthenticated indicates no valid session for the request.
	ErrCodeUnauthenticated ErrorCode = "unauthenticated"
	// ErrCodeForbidden indicates a valid session with insufficient role.
	ErrCodeForbidden ErrorCode = "forbidden"
	// ErrCodeExternalAuth indicates the interactive provider exchange failed
	// (bad/expired code, network failure, misconfiguration).
	ErrCodeExternalAuth ErrorCode = "external_auth"
	// ErrCodeResolutionFailure indicates the OS-identity path could not
	// determine an account. This is an expected negative result that triggers
	// fallback to interactive login, not a user-visible fault.
	ErrCodeResolutionFailure ErrorCode = "resolution_failure"
	// ErrCodeStorageFault indicates the session store was unavailable.
	// Fatal for the current request only.
	ErrCodeStorageFault ErrorCode = "storage_fault"
)

// AppError is a structured application error with a code, message, and
// optional cause. It supports errors.Is / errors.As via Unwrap.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// NotFoundf creates a new NotFound error with formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Unauthenticated creates a new Unauthenticated error.
func Unauthenticated(message string) *AppError {
	return &AppError{Code: ErrCodeUnauthenticated, Message: message}
}

// Forbidden creates a new Forbidden error.
func Forbidden(message string) *AppError {
	return &AppError{Code: ErrCodeForbidden, Message: message}
}

// ExternalAuth creates a new ExternalAuth error.
func ExternalAuth(message string) *AppError {
	return &AppError{Code: ErrCodeExternalAuth, Message: message}
}

// ResolutionFailure creates a new ResolutionFailure error.
func ResolutionFailure(message string) *AppError {
	return &AppError{Code: ErrCodeResolutionFailure, Message: message}
}

// StorageFault creates a new StorageFault error.
func StorageFault(message string) *AppError {
	return &AppError{Code: ErrCodeStorageFault, Message: message}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool { return isCode(err, ErrCodeNotFound) }

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool { return isCode(err, ErrCodeValidation) }

// IsUnauthenticated checks if an error is an Unauthenticated error.
func IsUnauthenticated(err error) bool { return isCode(err, ErrCodeUnauthenticated) }

// IsForbidden checks if an error is a Forbidden error.
func IsForbidden(err error) bool { return isCode(err, ErrCodeForbidden) }

// IsExternalAuth checks if an error is an ExternalAuth error.
func IsExternalAuth(err error) bool { return isCode(err, ErrCodeExternalAuth) }

// IsResolutionFailure checks if an error is a ResolutionFailure error.
func IsResolutionFailure(err error) bool { return isCode(err, ErrCodeResolutionFailure) }

// IsStorageFault checks if an error is a StorageFault error.
func IsStorageFault(err error) bool { return isCode(err, ErrCodeStorageFault) }

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
