package apperr

import "errors"

// Kind classifies an application error into one of the four categories the
// rest of the system reacts to.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindDeleteConstraint
	KindDatabase
)

type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Validation reports user-correctable input problems.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound reports that a referenced record does not exist.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// DeleteConstraint reports a deletion blocked by dependent rows.
func DeleteConstraint(message string) *Error {
	return &Error{Kind: KindDeleteConstraint, Message: message}
}

// Database wraps an unclassified backend failure. The original backend
// message is kept so it can be surfaced for diagnosis.
func Database(message string, cause error) *Error {
	return &Error{Kind: KindDatabase, Message: message, cause: cause}
}

func isKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

func IsValidation(err error) bool       { return isKind(err, KindValidation) }
func IsNotFound(err error) bool         { return isKind(err, KindNotFound) }
func IsDeleteConstraint(err error) bool { return isKind(err, KindDeleteConstraint) }
func IsDatabase(err error) bool         { return isKind(err, KindDatabase) }
