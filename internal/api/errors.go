package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/pegword-api/internal/api/shared"
	"github.com/phrazzld/pegword-api/internal/domain"
	"github.com/phrazzld/pegword-api/internal/domain/major"
	"github.com/phrazzld/pegword-api/internal/service"
	"github.com/phrazzld/pegword-api/internal/service/auth"
	"github.com/phrazzld/pegword-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrWorkspaceNotOwned):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, major.ErrInvalidKey),
		errors.Is(err, domain.ErrEntryKeyInvalid),
		errors.Is(err, domain.ErrEntryWordTooLong),
		errors.Is(err, domain.ErrWorkspaceNameEmpty),
		errors.Is(err, domain.ErrWorkspaceNameTooLong),
		errors.Is(err, domain.ErrEmailInvalid),
		errors.Is(err, domain.ErrEmailEmpty),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrPasswordTooLong):
		return http.StatusBadRequest

	// Feature availability
	case errors.Is(err, service.ErrSuggestionsDisabled):
		return http.StatusServiceUnavailable

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"

	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid credentials"

	// Authorization errors
	case errors.Is(err, service.ErrWorkspaceNotOwned):
		return "You do not own this workspace"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrWorkspaceNotFound):
		return "Workspace not found"

	case errors.Is(err, store.ErrEntryNotFound):
		return "Entry not found"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrWorkspaceNameExists):
		return "A workspace with that name already exists"

	// Bad request errors
	case errors.Is(err, major.ErrInvalidKey),
		errors.Is(err, domain.ErrEntryKeyInvalid):
		return "Key must be exactly two digits"

	case errors.Is(err, domain.ErrEntryWordTooLong),
		errors.Is(err, domain.ErrWorkspaceNameEmpty),
		errors.Is(err, domain.ErrWorkspaceNameTooLong),
		errors.Is(err, domain.ErrEmailInvalid),
		errors.Is(err, domain.ErrEmailEmpty),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrPasswordTooLong):
		return capitalizeFirst(err.Error())

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	// Feature availability
	case errors.Is(err, service.ErrSuggestionsDisabled):
		return "Word suggestions are not configured"

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// HandleServiceError writes an error response using the standard error
// mapping: status from MapErrorToStatusCode, message from GetSafeErrorMessage,
// with the raw error logged (redacted) rather than exposed.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}

// capitalizeFirst upper-cases the first letter of a message for display.
// Domain validation messages are safe to show verbatim.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
