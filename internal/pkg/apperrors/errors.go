package apperrors

import (
	"errors"
	"net/http"
)

// Error kinds. Every failure surfaced to a client wraps exactly one of these.
var (
	// ErrValidation marks missing or invalid request input. Detected before
	// any store access.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an operation whose target id does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict marks a uniqueness violation or a blocked referential delete.
	ErrConflict = errors.New("conflict")

	// ErrStore marks an unclassified failure from the underlying store.
	ErrStore = errors.New("store failure")
)

// Entity-specific conflict messages, matching what the client already shows
// to users.
const (
	MsgUserDuplicate     = "Username or email already exists"
	MsgStudentDuplicate  = "A student with this email already exists"
	MsgCategoryDuplicate = "Category name already exists"
	MsgCategoryInUse     = "Cannot delete category: It is referenced by products or students"
)

// Error carries an error kind together with a human-readable message and an
// optional explicit HTTP status overriding the kind's default.
type Error struct {
	Kind    error
	Message string
	Status  int
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Kind != nil {
		return e.Kind.Error()
	}
	return "unknown error"
}

// Unwrap lets errors.Is match against the kind sentinels.
func (e *Error) Unwrap() error {
	return e.Kind
}

// NewValidationError creates a validation error with a message.
func NewValidationError(message string) error {
	return &Error{Kind: ErrValidation, Message: message}
}

// NewNotFoundError creates a not-found error with a message.
func NewNotFoundError(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message. Duplicate-key
// conflicts keep the original 500 wire status.
func NewConflictError(message string) error {
	return &Error{Kind: ErrConflict, Message: message}
}

// NewBlockedDeleteError creates a conflict error for a referential-guard
// rejection, reported as 400.
func NewBlockedDeleteError(message string) error {
	return &Error{Kind: ErrConflict, Message: message, Status: http.StatusBadRequest}
}

// NewStoreError wraps a store failure, keeping its native message.
func NewStoreError(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: ErrStore, Message: err.Error()}
}

// HTTPStatus maps an error to the HTTP status its response must carry.
// Unrecognized errors are treated as internal failures.
func HTTPStatus(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return appErr.Status
	}

	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
