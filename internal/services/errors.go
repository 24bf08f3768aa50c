package services

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindInvalidCredentials Kind = "INVALID_CREDENTIALS"
	KindUnauthenticated    Kind = "UNAUTHENTICATED"
	KindForbidden          Kind = "FORBIDDEN"
	KindNotFound           Kind = "NOT_FOUND"
	KindDuplicateEmail     Kind = "DUPLICATE_EMAIL"
	KindConflict           Kind = "CONFLICT"
	KindPasswordMismatch   Kind = "PASSWORD_MISMATCH"
	KindInvalidRole        Kind = "INVALID_ROLE"
	KindValidation         Kind = "VALIDATION_ERROR"
)

// Error is a classified failure. Handlers turn the Kind into a status code;
// the Message is safe to show to clients.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Is matches any *Error of the same kind when the target carries no message,
// so errors.Is(err, ErrNotFound) works for every not-found variant.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Message == "" {
		return e.Kind == t.Kind
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

var (
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials}
	ErrUnauthenticated    = &Error{Kind: KindUnauthenticated}
	ErrForbidden          = &Error{Kind: KindForbidden}
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrDuplicateEmail     = &Error{Kind: KindDuplicateEmail}
	ErrConflict           = &Error{Kind: KindConflict}
	ErrPasswordMismatch   = &Error{Kind: KindPasswordMismatch}
	ErrInvalidRole        = &Error{Kind: KindInvalidRole}
	ErrValidation         = &Error{Kind: KindValidation}
)

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return newError(KindNotFound, format, args...)
}

func Forbidden(format string, args ...interface{}) *Error {
	return newError(KindForbidden, format, args...)
}

func Conflict(format string, args ...interface{}) *Error {
	return newError(KindConflict, format, args...)
}

func InvalidRole(format string, args ...interface{}) *Error {
	return newError(KindInvalidRole, format, args...)
}

func Validation(format string, args ...interface{}) *Error {
	return newError(KindValidation, format, args...)
}

// KindOf reports the classification of err, or "" for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func StatusFor(kind Kind) int {
	switch kind {
	case KindInvalidCredentials, KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindDuplicateEmail, KindConflict:
		return http.StatusConflict
	case KindPasswordMismatch, KindInvalidRole, KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
