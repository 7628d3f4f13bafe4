// Package apperr defines the application error taxonomy shared by services
// and handlers. Services return *Error values; handlers map Kind to an HTTP
// status and the response envelope's error type.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application failure.
type Kind string

const (
	// KindNotFound — a referenced entity id does not resolve.
	KindNotFound Kind = "NOT_FOUND"
	// KindInvalidReference — a foreign id in a request body does not exist.
	KindInvalidReference Kind = "INVALID_REFERENCE"
	// KindSchedulingConflict — two timetable intervals overlap.
	KindSchedulingConflict Kind = "SCHEDULING_CONFLICT"
	// KindIncompletePrerequisite — a course lacks a timetable or crosses
	// college boundaries.
	KindIncompletePrerequisite Kind = "INCOMPLETE_ENROLLMENT_PREREQUISITE"
	// KindDuplicateEnrollment — a requested course is already enrolled.
	KindDuplicateEnrollment Kind = "DUPLICATE_ENROLLMENT"
	// KindValidation — request payload failed validation.
	KindValidation Kind = "VALIDATION_ERROR"
	// KindStoreFailure — unclassified persistence failure.
	KindStoreFailure Kind = "STORE_FAILURE"
)

// Error is a classified application error with a human-readable message and
// optional structured details for the response envelope.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]any
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to a new Error. The cause is logged, never surfaced
// to API clients.
func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, cause: err}
}

// WithDetails attaches structured details and returns the same error.
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

// NotFound builds the standard not-found error for an entity.
func NotFound(entity string) *Error {
	return Newf(KindNotFound, "%s not found", entity)
}

// KindOf extracts the Kind from err, or KindStoreFailure when err is not a
// classified application error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStoreFailure
}

// As unwraps err into *Error when possible.
func As(err error) (*Error, bool) {
	var appErr *Error
	ok := errors.As(err, &appErr)
	return appErr, ok
}
