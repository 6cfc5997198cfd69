// Package apperr carries the engine's tagged error kinds. Services return
// *Error values; the controller layer maps kinds onto the response envelope
// and never inspects transport details itself.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	Validation Kind = iota // missing/invalid ids, count mismatches
	NotFound               // no live attempt, unknown skill/question
	Exhausted              // attempt done, expired, or all skills consumed
	Conflict               // duplicate speaking submission
	Internal               // unexpected failure, transaction rolled back
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	case Exhausted:
		return "exhausted"
	case Conflict:
		return "conflict"
	default:
		return "internal"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an error of the given kind.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the kind of err, defaulting to Internal for errors that
// did not originate in the engine.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// MessageOf extracts the engine message of err, or err.Error() for foreign
// errors.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
