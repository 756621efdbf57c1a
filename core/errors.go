package core

import "github.com/pkg/errors"

// FieldError ties an error message to a single request field,
// e.g. the batch_id a schedule conflict was detected on.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is a user-facing error; handlers render it as a
// 400 with the field errors as the body.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{Err: err, Fields: flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

func (err ValidationError) Unwrap() error { return err.Err }

// shutdownError marks a failure the service cannot recover from,
// such as the database no longer answering a status check.
type shutdownError struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdownError{message: msg}
}

func (e shutdownError) Error() string {
	return e.message
}

// IsShutdown reports whether err (or its cause) calls for a graceful shutdown.
func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdownError)
	return ok
}
