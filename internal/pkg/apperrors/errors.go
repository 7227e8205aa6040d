// Package apperrors defines the error taxonomy shared by all services.
// Domain failures carry a stable kind and a human-readable message; storage
// failures are wrapped uniformly so no database error text leaks to callers.
package apperrors

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgconn"
)

// Kind classifies an application error
type Kind int

const (
	// KindInternal is a storage or infrastructure failure
	KindInternal Kind = iota
	// KindValidation is a malformed request shape
	KindValidation
	// KindInvalidRequest is a violated domain rule (self-transfer,
	// non-positive amount, insufficient funds, currency mismatch)
	KindInvalidRequest
	// KindNotFound is an unknown account, user or transaction
	KindNotFound
	// KindConflict is a uniqueness violation
	KindConflict
	// KindAuthentication is a failed credential or token check
	KindAuthentication
)

// AppError is the error type surfaced by usecases to the handler layer
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with the given kind and message
func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// NewValidation creates a malformed-input error
func NewValidation(message string) *AppError {
	return New(KindValidation, message)
}

// NewInvalidRequest creates a domain-rule violation error
func NewInvalidRequest(message string) *AppError {
	return New(KindInvalidRequest, message)
}

// NewNotFound creates a missing-resource error
func NewNotFound(message string) *AppError {
	return New(KindNotFound, message)
}

// NewConflict creates a uniqueness violation error
func NewConflict(message string) *AppError {
	return New(KindConflict, message)
}

// NewAuthentication creates a failed authentication error
func NewAuthentication(message string) *AppError {
	return New(KindAuthentication, message)
}

// NewInternal wraps an infrastructure failure. The wrapped error is kept for
// logging but never serialized to the client.
func NewInternal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// uniqueViolation is the Postgres error code for unique constraint violations
const uniqueViolation = "23505"

// FromDB maps a database error onto the taxonomy: missing rows become
// NotFound, unique violations become Conflict, everything else is wrapped
// as Internal with a neutral message.
func FromDB(err error, notFoundMessage string) *AppError {
	if errors.Is(err, sql.ErrNoRows) {
		return NewNotFound(notFoundMessage)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return NewConflict("resource already exists")
	}

	return NewInternal("database error", err)
}

// AsAppError extracts an *AppError from an error chain, falling back to an
// Internal wrapper for unclassified errors
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal("internal server error", err)
}

// HTTPStatus maps an error kind to an HTTP status code
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindInvalidRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindAuthentication:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
