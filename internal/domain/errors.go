package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a service error for transport-level status mapping.
type Kind string

const (
	KindValidation   Kind = "validation"    // malformed or missing input
	KindUnauthorized Kind = "unauthorized"  // missing/invalid admin token
	KindForbidden    Kind = "forbidden"     // ownership mismatch
	KindNotFound     Kind = "not_found"     // referenced document absent
	KindConflict     Kind = "conflict"      // duplicate email
	KindUnavailable  Kind = "unavailable"   // required precondition data missing (no season)
	KindPolicy       Kind = "policy"        // cancellation cutoff not met
	KindInternal     Kind = "internal"      // store or collaborator failure
)

// Error carries a kind, a user-facing message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) error   { return &Error{Kind: KindValidation, Message: msg} }
func Unauthorized(msg string) error { return &Error{Kind: KindUnauthorized, Message: msg} }
func Forbidden(msg string) error    { return &Error{Kind: KindForbidden, Message: msg} }
func NotFound(msg string) error     { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) error     { return &Error{Kind: KindConflict, Message: msg} }
func Unavailable(msg string) error  { return &Error{Kind: KindUnavailable, Message: msg} }
func Policy(msg string) error       { return &Error{Kind: KindPolicy, Message: msg} }

// Internal wraps a collaborator failure so the raw error never escapes
// to the caller unclassified.
func Internal(msg string, err error) error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf extracts the kind of err, defaulting to KindInternal for
// anything that is not a *Error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// MessageOf returns the user-facing message of err.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool { return err != nil && KindOf(err) == k }
