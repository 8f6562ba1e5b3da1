// Package apperrors defines the typed errors that domain services return and
// that the HTTP boundary maps to response codes.
package apperrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies an error for the caller.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindNotFound
	KindConflict
	KindForbidden
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindForbidden:
		return "forbidden"
	case KindInvalid:
		return "invalid"
	default:
		return "internal"
	}
}

// Reason codes for conflicts the client may want to tell apart.
const (
	ReasonEmailTaken       = "EMAIL_TAKEN"
	ReasonPasswordMismatch = "PASSWORD_MISMATCH"
	ReasonNameTaken        = "NAME_TAKEN"
)

// Error is the error type returned by domain services.
type Error struct {
	Kind    Kind
	Reason  string
	Entity  string
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports a missing entity, e.g. NotFound("Shop") -> "No Shop Found.".
func NotFound(entity string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Entity:  entity,
		Message: fmt.Sprintf("No %s Found.", entity),
	}
}

// Conflict reports a request that clashes with existing state.
func Conflict(reason, message string) *Error {
	return &Error{Kind: KindConflict, Reason: reason, Message: message}
}

// EmailTaken is the conflict returned when an email address already belongs to a user.
func EmailTaken() *Error {
	return Conflict(ReasonEmailTaken, "The email address that you provided is already taken.")
}

// PasswordMismatch is the conflict returned when password and confirmation differ.
func PasswordMismatch() *Error {
	return Conflict(ReasonPasswordMismatch, "The password that you provided does not match.")
}

// Forbidden reports an operation that is not allowed on the addressed entity.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// Invalid reports malformed input. Fields maps a field name to its problem.
func Invalid(message string, fields map[string]string) *Error {
	return &Error{Kind: KindInvalid, Message: message, Fields: fields}
}

// Unauthenticated never says why; the cause is kept for logs only.
func Unauthenticated(cause error) *Error {
	return &Error{Kind: KindUnauthenticated, Message: "Unauthorized", Err: cause}
}

// Internal wraps an unexpected failure.
func Internal(err error, message string) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: errors.WithStack(err)}
}

// Wrap returns err unchanged when it already is an *Error and wraps it as
// Internal otherwise. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}
	return Internal(err, message)
}

// As finds the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf returns the kind of err, KindInternal for foreign errors.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}
