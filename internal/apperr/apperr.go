// Package apperr carries stable machine-readable error kinds across the
// usecase boundary so handlers map failures to HTTP statuses without
// string matching.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a machine-readable error code.
type Kind string

const (
	// KindInternal represents an unclassified failure.
	KindInternal Kind = "INTERNAL"

	// Intake errors
	KindValidation       Kind = "VALIDATION"
	KindDuplicateRequest Kind = "DUPLICATE_REQUEST"
	KindAlreadyHasRole   Kind = "ALREADY_HAS_ROLE"

	// Review errors
	KindInvalidStatus Kind = "INVALID_STATUS"
	KindProvisioning  Kind = "PROVISIONING"

	// Entitlement errors
	KindInvalidTier   Kind = "INVALID_TIER"
	KindQuotaExceeded Kind = "QUOTA_EXCEEDED"

	// Generic errors
	KindNotFound     Kind = "NOT_FOUND"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindForbidden    Kind = "FORBIDDEN"
)

// Error pairs a Kind with a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an error with the given kind and message.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Newf builds an error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(err error, kind Kind, message string) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain. Unclassified errors
// report KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether the error chain carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps error kinds to HTTP status codes.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindInvalidTier:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden, KindQuotaExceeded:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindDuplicateRequest, KindAlreadyHasRole, KindInvalidStatus:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// StatusOf maps an error to its HTTP status via its kind.
func StatusOf(err error) int {
	return KindOf(err).HTTPStatus()
}
