package errors

import "fmt"

// ErrorCode represents a twin error code.
type ErrorCode string

const (
	ErrInvalidRequest      ErrorCode = "INVALID_REQUEST"      // 400
	ErrNotFound            ErrorCode = "NOT_FOUND"            // 404
	ErrProfileMissing      ErrorCode = "PROFILE_MISSING"      // 404
	ErrUpstreamUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE" // 503
	ErrInternal            ErrorCode = "INTERNAL"             // 500
)

// TwinError represents a structured error with code, status, and details.
// Answer generation never raises these: the engine degrades to a textual
// response. TwinError covers the surfaces around it (CLI, web, MCP).
type TwinError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *TwinError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *TwinError {
	return &TwinError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for a missing resource.
func NewNotFound(resource string) *TwinError {
	return &TwinError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("not found: %s", resource),
		Details: map[string]any{"resource": resource},
	}
}

// NewProfileMissing creates a 404 error for a missing or unreadable profile.
func NewProfileMissing(path string) *TwinError {
	return &TwinError{
		Code:    ErrProfileMissing,
		Status:  404,
		Message: fmt.Sprintf("profile json missing: %s", path),
		Details: map[string]any{"path": path},
	}
}

// NewUpstreamUnavailable creates a 503 error for a provider that is not
// configured or not reachable.
func NewUpstreamUnavailable(provider string) *TwinError {
	return &TwinError{
		Code:    ErrUpstreamUnavailable,
		Status:  503,
		Message: fmt.Sprintf("upstream provider unavailable: %s", provider),
		Details: map[string]any{"provider": provider},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *TwinError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &TwinError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a TwinError with the given code.
func Is(err error, code ErrorCode) bool {
	if tErr, ok := err.(*TwinError); ok {
		return tErr.Code == code
	}
	return false
}
