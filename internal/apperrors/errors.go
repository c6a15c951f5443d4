// Package apperrors carries the error kinds the API distinguishes. Handlers
// and resolvers return these instead of opaque strings so callers can tell a
// missing record from a constraint violation.
package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Kind classifies a failure for the API surface.
type Kind string

const (
	KindUnauthorized     Kind = "UNAUTHORIZED"
	KindNotAuthenticated Kind = "NOT_AUTHENTICATED"
	KindInvalidToken     Kind = "INVALID_TOKEN"
	KindNotFound         Kind = "NOT_FOUND"
	KindConflict         Kind = "CONFLICT"
	KindInvalid          Kind = "INVALID"
	KindInternal         Kind = "INTERNAL"
)

// Error is a classified application error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Extensions exposes the kind as a GraphQL error extension code.
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": string(e.Kind)}
}

// New builds a classified error from a message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error.
func Wrap(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func NotFound(what string) *Error {
	return New(KindNotFound, "%s not found", what)
}

func Unauthorized() *Error {
	return New(KindUnauthorized, "unauthorized: login required")
}

// KindOf extracts the kind from err, defaulting to Internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// FromDB maps a storage error onto the taxonomy. gorm surfaces unique and
// not-null violations as driver errors whose text is the only portable
// signal across sqlite and postgres.
func FromDB(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(what)
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate key") {
		return Wrap(KindConflict, err, fmt.Sprintf("%s violates a unique constraint", what))
	}
	if strings.Contains(msg, "not null") || strings.Contains(msg, "not-null") {
		return Wrap(KindConflict, err, fmt.Sprintf("%s is missing a required field", what))
	}
	if strings.Contains(msg, "foreign key") {
		return Wrap(KindConflict, err, fmt.Sprintf("%s references a missing record", what))
	}
	return Wrap(KindInternal, err, fmt.Sprintf("%s operation failed", what))
}
