// Package apperrors defines the domain error kinds the services return and
// the single place they are mapped to HTTP status codes.
package apperrors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies a domain failure.
type Kind int

const (
	KindValidation Kind = iota // malformed or missing input
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict // duplicate registration
)

// Error is a domain failure with a client-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// IsKind reports whether err is a domain error of the given kind.
func IsKind(err error, kind Kind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == kind
}

// StatusCode maps a domain error to its HTTP status. Conflict maps to 400:
// duplicate registration is reported as a bad request in this API's
// convention, not as 409.
func StatusCode(err error) int {
	var de *Error
	if !errors.As(err, &de) {
		return fiber.StatusInternalServerError
	}
	switch de.Kind {
	case KindValidation, KindConflict:
		return fiber.StatusBadRequest
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
