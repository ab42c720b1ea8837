// Package service provides application-level services for managing users,
// workspaces, and peg-word entries.
package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for
// with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in ServiceError
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrWorkspaceNotOwned indicates a workspace is owned by a different user
	// than the one making the request. API layer should map this to HTTP 403.
	ErrWorkspaceNotOwned = errors.New("workspace is owned by another user")

	// ErrInvalidCredentials indicates a login attempt with an unknown email or
	// wrong password. Deliberately indistinguishable between the two cases.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSuggestionsDisabled indicates the suggestion feature is not configured.
	// API layer should map this to HTTP 503 Service Unavailable.
	ErrSuggestionsDisabled = errors.New("word suggestions are not configured")
)

// ServiceError wraps unexpected errors from the service layer with context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "create_workspace", "set_word")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError. Nil errors pass through as nil.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
