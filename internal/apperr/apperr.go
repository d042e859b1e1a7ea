package apperr

import (
	"errors"
	"fmt"
)

// Kind tags an error with the class of failure it represents.
// The zero value is KindUnclassified so plain errors map to a server error.
type Kind int

const (
	KindUnclassified Kind = iota
	KindInvalidArgument
	KindNotFound
	KindUnauthorized
	KindInvalidOperation
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindInvalidOperation:
		return "invalid_operation"
	default:
		return "unclassified"
	}
}

// Error is a classified application error.
// Message is safe to show to clients for every kind except KindUnclassified.
type Error struct {
	Kind    Kind
	Message string
	Details any
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Message != "":
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error { return e.Err }

// WithDetails returns a copy of e carrying client-visible details.
func (e *Error) WithDetails(details any) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// InvalidArgument reports a malformed or invalid input.
func InvalidArgument(msg string) *Error { return newError(KindInvalidArgument, msg) }

// NotFound reports that a referenced entity does not exist.
func NotFound(msg string) *Error { return newError(KindNotFound, msg) }

// Unauthorized reports denied access.
func Unauthorized(msg string) *Error { return newError(KindUnauthorized, msg) }

// InvalidOperation reports an operation that is not allowed in the current state.
func InvalidOperation(msg string) *Error { return newError(KindInvalidOperation, msg) }

// Wrap classifies err under kind. A nil err yields nil.
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnclassified
}

// DetailsOf returns the details of the first *Error in err's chain, if any.
func DetailsOf(err error) any {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Details
	}
	return nil
}
