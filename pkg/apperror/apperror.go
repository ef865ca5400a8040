package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so the HTTP boundary can pick a status code
// without inspecting message text.
type Kind int

const (
	// Internal is any failure not covered below (storage unavailable, bugs).
	Internal Kind = iota
	// NotFound: a referenced entity id / tracking id does not exist.
	NotFound
	// PreconditionFailed: the operation is not allowed in the entity's current state.
	PreconditionFailed
	// Conflict: a uniqueness constraint was violated.
	Conflict
	// Validation: the request shape is malformed.
	Validation
)

// Error carries a kind alongside a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from err, defaulting to Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// HTTPStatus maps an error to the status code the API surfaces:
// NotFound -> 404, PreconditionFailed/Conflict -> 400, Validation -> 422,
// anything else -> 500.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case NotFound:
		return http.StatusNotFound
	case PreconditionFailed, Conflict:
		return http.StatusBadRequest
	case Validation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
