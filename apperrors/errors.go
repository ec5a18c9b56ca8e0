package apperrors

import "errors"

// Kind is the closed set of error categories the API can produce. Every
// error that reaches a handler carries exactly one Kind, and each Kind maps
// to exactly one HTTP status.
type Kind int

const (
	KindInternal       Kind = iota // unexpected failure
	KindValidation                 // missing or malformed input
	KindConflict                   // uniqueness violation
	KindAuthentication             // bad credentials at login
	KindUnauthorized               // missing/invalid/expired token, or not the owner
	KindNotFound                   // resource absent
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds an error of the given kind.
func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain, defaulting to KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus returns the canonical status for an error's kind.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return 400
	case KindConflict:
		return 409
	case KindAuthentication, KindUnauthorized:
		return 401
	case KindNotFound:
		return 404
	default:
		return 500
	}
}
