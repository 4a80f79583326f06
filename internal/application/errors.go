package application

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error kinds. Every error returned by a service wraps exactly one of these
// or is a *ValidationError; anything else is an internal failure.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrBadRequest   = errors.New("bad request")
	ErrUnavailable  = errors.New("service unavailable")
)

var (
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrProjectNotFound    = fmt.Errorf("project %w", ErrNotFound)
	ErrBoardNotFound      = fmt.Errorf("board %w", ErrNotFound)
	ErrColumnNotFound     = fmt.Errorf("column %w", ErrNotFound)
	ErrTicketNotFound     = fmt.Errorf("ticket %w", ErrNotFound)
	ErrCommentNotFound    = fmt.Errorf("comment %w", ErrNotFound)
	ErrAttachmentNotFound = fmt.Errorf("attachment %w", ErrNotFound)
	ErrInvitationNotFound = fmt.Errorf("invitation %w or expired", ErrNotFound)

	ErrNotProjectMember = fmt.Errorf("%w: not a member of this project", ErrForbidden)
	ErrInsufficientRole = fmt.Errorf("%w: role not permitted for this operation", ErrForbidden)

	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	ErrInvalidSession     = fmt.Errorf("%w: invalid or expired session", ErrUnauthorized)

	ErrUsernameTaken = fmt.Errorf("%w: username already taken", ErrConflict)
	ErrEmailTaken    = fmt.Errorf("%w: email already registered", ErrConflict)

	ErrNotAMember         = fmt.Errorf("%w: user is not a member of this project", ErrBadRequest)
	ErrAlreadyMember      = fmt.Errorf("%w: already a member of this project", ErrBadRequest)
	ErrOwnerNotMember     = fmt.Errorf("%w: owner must be a member of the project", ErrBadRequest)
	ErrInvalidResetToken  = fmt.Errorf("%w: invalid or expired reset token", ErrBadRequest)
	ErrMissingOldPassword = fmt.Errorf("%w: old password is required to change password", ErrBadRequest)
	ErrIncorrectPassword  = fmt.Errorf("%w: old password is incorrect", ErrBadRequest)

	ErrStorageDisabled = fmt.Errorf("%w: attachment storage is not configured", ErrUnavailable)

	ErrPasswordHashFailure = errors.New("failed to hash password")
)

// ValidationError reports malformed input with per-field messages.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Kind names the error category for API responses.
func Kind(err error) string {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return "validation_error"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrBadRequest):
		return "bad_request"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	default:
		return "internal"
	}
}
